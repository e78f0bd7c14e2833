// Package pricing derives unit and line prices for configured menu items.
// Everything here is a pure function over catalog data and a selection map,
// safe to recompute on every toggle while a customer edits a configuration.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/daleelbalady/storefront-gateway/internal/catalog"
	"github.com/daleelbalady/storefront-gateway/internal/selection"
)

// UnitPrice computes the per-unit price of one configuration: the item's base
// price plus the delta of every selected option that resolves within its
// group. Option ids that do not belong to the group are ignored, and negative
// deltas (discount modifiers) are applied as-is, never floored at zero.
func UnitPrice(item catalog.MenuItem, sel selection.Map) decimal.Decimal {
	total := item.BasePrice
	for _, group := range item.ModifierGroups {
		for _, optionID := range sel.Selected(group.ID) {
			if option, ok := group.OptionByID(optionID); ok {
				total = total.Add(option.PriceDelta)
			}
		}
	}
	return total
}

// LinePrice is the unit price multiplied by quantity. Quantity must be a
// positive integer; callers (cart, item configuration) enforce that bound.
func LinePrice(item catalog.MenuItem, quantity int, sel selection.Map) decimal.Decimal {
	return UnitPrice(item, sel).Mul(decimal.NewFromInt(int64(quantity)))
}
