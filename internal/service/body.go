package service

import (
	"encoding/json"
	"strings"
)

// decodeObject reads a gateway body as a JSON object, falling back to an empty one.
func decodeObject(body []byte) map[string]any {
	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err != nil || obj == nil {
		return map[string]any{}
	}
	return obj
}

// stringAt walks a dotted path through nested objects and returns a non-empty string.
func stringAt(obj map[string]any, path string) string {
	var cur any = obj
	for _, key := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return ""
		}
		cur = m[key]
	}
	s, _ := cur.(string)
	return s
}

// firstString returns the first non-empty string found along paths, in order.
func firstString(obj map[string]any, paths ...string) string {
	for _, path := range paths {
		if s := stringAt(obj, path); s != "" {
			return s
		}
	}
	return ""
}

// bodyDetails renders a gateway body for an error response: parsed JSON when
// possible, the raw text otherwise.
func bodyDetails(body []byte) any {
	var v any
	if err := json.Unmarshal(body, &v); err == nil {
		return v
	}
	return string(body)
}
