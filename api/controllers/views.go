package controllers

import (
	"github.com/shopspring/decimal"

	"github.com/daleelbalady/storefront-gateway/internal/cart"
	"github.com/daleelbalady/storefront-gateway/internal/catalog"
	"github.com/daleelbalady/storefront-gateway/internal/checkout"
	"github.com/daleelbalady/storefront-gateway/internal/selection"
	"github.com/daleelbalady/storefront-gateway/internal/session"
	"github.com/daleelbalady/storefront-gateway/pkg/types"
)

type lineView struct {
	ID         string                `json:"id"`
	MenuItemID string                `json:"menuItemId"`
	Name       types.LocalizedString `json:"name"`
	Quantity   int                   `json:"quantity"`
	UnitPrice  decimal.Decimal       `json:"unitPrice"`
	TotalPrice decimal.Decimal       `json:"totalPrice"`
	Selections selection.Map         `json:"selections"`
	Notes      string                `json:"notes,omitempty"`
}

type cartView struct {
	Lines     []lineView      `json:"lines"`
	ItemCount int             `json:"itemCount"`
	Total     decimal.Decimal `json:"total"`
}

func newLineView(line cart.Line) lineView {
	return lineView{
		ID:         line.ID,
		MenuItemID: line.Item.ID,
		Name:       line.Item.Name,
		Quantity:   line.Quantity,
		UnitPrice:  line.UnitPrice(),
		TotalPrice: line.TotalPrice,
		Selections: line.Selections,
		Notes:      line.Notes,
	}
}

func newCartView(c *cart.Cart) cartView {
	view := cartView{
		Lines:     make([]lineView, 0, len(c.Lines)),
		ItemCount: c.ItemCount(),
		Total:     c.Total(),
	}
	for _, line := range c.Lines {
		view.Lines = append(view.Lines, newLineView(line))
	}
	return view
}

type draftView struct {
	Item       catalog.MenuItem `json:"item"`
	Quantity   int             `json:"quantity"`
	Selections selection.Map   `json:"selections"`
	Notes      string          `json:"notes,omitempty"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

func newDraftView(state *session.State) draftView {
	return draftView{
		Item:       state.Draft.Item,
		Quantity:   state.Draft.Quantity,
		Selections: state.Draft.Selections,
		Notes:      state.Draft.Notes,
		TotalPrice: state.DraftTotal(),
	}
}

type checkoutView struct {
	Step       string                   `json:"step"`
	StepNumber int                      `json:"stepNumber"`
	Method     string                   `json:"method,omitempty"`
	CanProceed bool                     `json:"canProceed"`
	DineIn     checkout.DineInDetails   `json:"dineIn"`
	Delivery   checkout.DeliveryDetails `json:"delivery"`
	Cart       cartView                 `json:"cart"`
}

func newCheckoutView(state *session.State) checkoutView {
	w := state.Wizard
	view := checkoutView{
		Step:       w.Step.String(),
		StepNumber: int(w.Step),
		CanProceed: state.Wizard.CanProceed(&state.Cart),
		DineIn:     w.DineIn,
		Delivery:   w.Delivery,
		Cart:       newCartView(&state.Cart),
	}
	if w.Method.IsValid() {
		view.Method = w.Method.String()
	}
	return view
}
