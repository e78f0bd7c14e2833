// Package cart holds the ordered collection of committed line items for one
// browsing session. Totals are derived from the lines on every read and are
// never cached, so they cannot drift from the line data.
package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daleelbalady/storefront-gateway/internal/catalog"
	"github.com/daleelbalady/storefront-gateway/internal/pricing"
	"github.com/daleelbalady/storefront-gateway/internal/selection"
	pkgerrors "github.com/daleelbalady/storefront-gateway/pkg/errors"
)

// Line is one committed, priced, quantity-bearing configuration. The catalog
// item is captured by value at add time: later catalog edits never alter an
// existing line.
type Line struct {
	ID         string          `json:"id"`
	Item       catalog.MenuItem `json:"item"`
	Quantity   int             `json:"quantity"`
	Selections selection.Map   `json:"selections"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Notes      string          `json:"notes,omitempty"`
}

// UnitPrice recomputes the per-unit price from the retained configuration.
// Dividing the stored total by the quantity would accumulate drift across
// repeated adjustments, so the line always reprices from source data.
func (l Line) UnitPrice() decimal.Decimal {
	return pricing.UnitPrice(l.Item, l.Selections)
}

// Cart is an insertion-ordered sequence of lines. Operations are applied
// synchronously by a single session; there is no concurrent writer.
type Cart struct {
	Lines []Line `json:"lines"`
}

// AddLine appends a new line for the given configuration. Selections must
// already have passed selection.ValidateForCommit. Identical configurations
// are never merged: two lines may differ only in their notes.
func (c *Cart) AddLine(item catalog.MenuItem, quantity int, sel selection.Map, notes string) (Line, error) {
	if quantity < 1 {
		return Line{}, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}
	line := Line{
		ID:         uuid.NewString(),
		Item:       item.Clone(),
		Quantity:   quantity,
		Selections: sel.Clone(),
		TotalPrice: pricing.LinePrice(item, quantity, sel),
		Notes:      notes,
	}
	c.Lines = append(c.Lines, line)
	return line, nil
}

// RemoveLine drops the line with the given id; removing an absent line is a
// no-op, not an error.
func (c *Cart) RemoveLine(lineID string) {
	for i, line := range c.Lines {
		if line.ID == lineID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// AdjustQuantity applies a delta to a line's quantity, clamped at 1, and
// reprices the line from its retained item and selections. Callers that want
// decrement-from-one to delete the line route to RemoveLine instead; the cart
// itself never stores a quantity below 1. The updated line and true are
// returned when the line exists.
func (c *Cart) AdjustQuantity(lineID string, delta int) (Line, bool) {
	for i := range c.Lines {
		if c.Lines[i].ID != lineID {
			continue
		}
		quantity := c.Lines[i].Quantity + delta
		if quantity < 1 {
			quantity = 1
		}
		c.Lines[i].Quantity = quantity
		c.Lines[i].TotalPrice = pricing.LinePrice(c.Lines[i].Item, quantity, c.Lines[i].Selections)
		return c.Lines[i], true
	}
	return Line{}, false
}

// Line returns the line with the given id.
func (c *Cart) Line(lineID string) (Line, bool) {
	for _, line := range c.Lines {
		if line.ID == lineID {
			return line, true
		}
	}
	return Line{}, false
}

// Clear empties the cart. Used after a successful submission or a full reset.
func (c *Cart) Clear() {
	c.Lines = nil
}

// Total sums the stored line totals.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.TotalPrice)
	}
	return total
}

// ItemCount sums the line quantities.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
