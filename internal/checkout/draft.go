package checkout

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/daleelbalady/storefront-gateway/internal/cart"
	"github.com/daleelbalady/storefront-gateway/internal/selection"
	"github.com/daleelbalady/storefront-gateway/pkg/enums"
	"github.com/daleelbalady/storefront-gateway/pkg/types"
)

// DraftLine is a cart line normalized for submission: catalog item id plus
// the selection map, not the full captured item.
type DraftLine struct {
	MenuItemID        string          `json:"menuItemId"`
	Quantity          int             `json:"quantity"`
	SelectedModifiers selection.Map   `json:"selectedModifiers"`
	Notes             string          `json:"notes,omitempty"`
	TotalPrice        decimal.Decimal `json:"totalPrice"`
}

// OrderDraft is the payload assembled at wizard completion and handed to the
// menu platform's order creation endpoint.
type OrderDraft struct {
	ShopID        string            `json:"shopId"`
	CustomerName  string            `json:"customerName,omitempty"`
	CustomerPhone string            `json:"customerPhone,omitempty"`
	Method        enums.OrderMethod `json:"method"`

	// Dine-in payload.
	TableID string `json:"tableId,omitempty"`
	Guests  int    `json:"guests,omitempty"`

	// Delivery payload.
	DeliveryProvider enums.DeliveryProvider `json:"deliveryProvider,omitempty"`
	DeliveryAddress  string                 `json:"deliveryAddress,omitempty"`
	DeliveryLocation *types.Location        `json:"deliveryLocation,omitempty"`

	Items       []DraftLine     `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// OrderConfirmation is the platform's acknowledgement of a created order.
type OrderConfirmation struct {
	ID          string            `json:"id"`
	Status      enums.OrderStatus `json:"status"`
	TotalAmount decimal.Decimal   `json:"totalAmount"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// BuildDraft normalizes the cart and wizard state into an OrderDraft.
func BuildDraft(shopID string, c *cart.Cart, w *Wizard) OrderDraft {
	draft := OrderDraft{
		ShopID:      shopID,
		Method:      w.Method,
		Items:       make([]DraftLine, 0, len(c.Lines)),
		TotalAmount: c.Total(),
	}

	for _, line := range c.Lines {
		draft.Items = append(draft.Items, DraftLine{
			MenuItemID:        line.Item.ID,
			Quantity:          line.Quantity,
			SelectedModifiers: line.Selections.Clone(),
			Notes:             line.Notes,
			TotalPrice:        line.TotalPrice,
		})
	}

	switch w.Method {
	case enums.OrderMethodDineIn:
		draft.TableID = w.DineIn.TableID
		draft.Guests = w.DineIn.Guests
	case enums.OrderMethodDelivery:
		draft.CustomerName = w.Delivery.Name
		draft.CustomerPhone = w.Delivery.Phone
		draft.DeliveryProvider = w.Delivery.Provider
		draft.DeliveryAddress = w.Delivery.Address
		if w.Delivery.Location != nil {
			loc := *w.Delivery.Location
			draft.DeliveryLocation = &loc
		}
	}

	return draft
}
