package model

import (
	"bytes"
	"encoding/json"
)

type CartItem struct {
	Price    Number `json:"price"`
	Quantity Number `json:"quantity"`
}

// UnmarshalJSON accepts any element. Non-object elements become a zero item.
func (i *CartItem) UnmarshalJSON(b []byte) error {
	*i = CartItem{}
	if !bytes.HasPrefix(bytes.TrimSpace(b), []byte("{")) {
		return nil
	}

	type plain CartItem
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return nil
	}
	*i = CartItem(p)
	return nil
}

// ParseCart reads a cart exactly as received. Anything other than a JSON array
// yields an empty cart.
func ParseCart(raw json.RawMessage) []CartItem {
	trimmed := bytes.TrimSpace(raw)
	if !bytes.HasPrefix(trimmed, []byte("[")) {
		return nil
	}

	var items []CartItem
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil
	}
	return items
}
