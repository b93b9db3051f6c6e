package model

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Number is a numeric field as a storefront frontend sends it: a JSON number, a
// numeric string, a boolean or nothing. Anything that does not read as a number
// leaves Valid false instead of failing the request.
type Number struct {
	Value decimal.Decimal
	Valid bool
}

func NewNumber(v float64) Number {
	return Number{Value: decimal.NewFromFloat(v), Valid: true}
}

func (n *Number) UnmarshalJSON(b []byte) error {
	*n = Number{}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil
	}

	switch t := v.(type) {
	case json.Number:
		n.set(t.String())
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			n.Value, n.Valid = decimal.Zero, true
			return nil
		}
		n.set(s)
	case bool:
		n.Valid = true
		if t {
			n.Value = decimal.NewFromInt(1)
		}
	}
	return nil
}

func (n *Number) set(s string) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return
	}
	n.Value, n.Valid = d, true
}

// Or returns the value, or fallback when the field was missing or unreadable.
func (n Number) Or(fallback decimal.Decimal) decimal.Decimal {
	if !n.Valid {
		return fallback
	}
	return n.Value
}
