// Package pricing turns a cart into the payable amount in cents.
//
// Two rules exist side by side because the gateways were priced differently:
// "flat" charges R60 shipping on every order and counts a missing quantity as 1,
// "tiered" charges by total quantity (0 / R6 / R120) and counts a missing quantity
// as 0. Which rule a gateway uses is configuration.
package pricing

import (
	"fmt"
	"storefront-checkout/internal/model"

	"github.com/shopspring/decimal"
)

const Currency = "ZAR"

type Rule string

const (
	RuleFlat   Rule = "flat"
	RuleTiered Rule = "tiered"
)

var (
	vatRate      = decimal.RequireFromString("0.15")
	flatShipping = decimal.NewFromInt(60)
	oneItemRate  = decimal.NewFromInt(6)
	multiRate    = decimal.NewFromInt(120)
	one          = decimal.NewFromInt(1)
)

// ShippingRule prices shipping from the total number of units in the cart.
type ShippingRule func(totalQuantity decimal.Decimal) decimal.Decimal

func FlatShipping(decimal.Decimal) decimal.Decimal {
	return flatShipping
}

func TieredShipping(q decimal.Decimal) decimal.Decimal {
	switch {
	case q.Equal(one):
		return oneItemRate
	case q.GreaterThan(one):
		return multiRate
	default:
		return decimal.Zero
	}
}

type Profile struct {
	Rule     Rule
	Shipping ShippingRule

	// missing (or zero) quantities count as one unit
	defaultToOne bool
}

func NewProfile(rule Rule) (Profile, error) {
	switch rule {
	case RuleFlat:
		return Profile{Rule: RuleFlat, Shipping: FlatShipping, defaultToOne: true}, nil
	case RuleTiered:
		return Profile{Rule: RuleTiered, Shipping: TieredShipping}, nil
	default:
		return Profile{}, fmt.Errorf("unknown shipping rule %q", rule)
	}
}

func (p Profile) quantity(n model.Number) decimal.Decimal {
	if p.defaultToOne {
		if !n.Valid || n.Value.IsZero() {
			return one
		}
		return n.Value
	}
	return n.Or(decimal.Zero)
}

func (p Profile) Subtotal(items []model.CartItem) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Price.Or(decimal.Zero).Mul(p.quantity(item.Quantity)))
	}
	return subtotal
}

func (p Profile) TotalQuantity(items []model.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(p.quantity(item.Quantity))
	}
	return total
}

// AmountCents is subtotal + 15% VAT + shipping, rounded to the nearest cent.
func (p Profile) AmountCents(items []model.CartItem) int64 {
	subtotal := p.Subtotal(items)
	total := subtotal.
		Add(subtotal.Mul(vatRate)).
		Add(p.Shipping(p.TotalQuantity(items)))

	return total.Shift(2).Round(0).IntPart()
}

// Policy maps a gateway name to the profile it is priced with.
type Policy struct {
	profiles map[string]Profile
}

func NewPolicy(rules map[string]Rule) (*Policy, error) {
	profiles := make(map[string]Profile, len(rules))
	for gateway, rule := range rules {
		profile, err := NewProfile(rule)
		if err != nil {
			return nil, fmt.Errorf("gateway %s: %w", gateway, err)
		}
		profiles[gateway] = profile
	}
	return &Policy{profiles: profiles}, nil
}

// For returns the gateway's profile, flat when the gateway is not configured.
func (p *Policy) For(gateway string) Profile {
	if profile, ok := p.profiles[gateway]; ok {
		return profile
	}
	profile, _ := NewProfile(RuleFlat)
	return profile
}
