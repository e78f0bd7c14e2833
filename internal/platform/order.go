package platform

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/daleelbalady/storefront-gateway/internal/checkout"
	"github.com/daleelbalady/storefront-gateway/pkg/enums"
	"github.com/daleelbalady/storefront-gateway/pkg/types"
)

// Order is the platform's order record as shown on the owner dashboard.
type Order struct {
	ID               string                  `json:"id"`
	ShopID           string                  `json:"shopId"`
	CustomerName     string                  `json:"customerName,omitempty"`
	CustomerPhone    string                  `json:"customerPhone,omitempty"`
	Method           enums.OrderMethod       `json:"orderMethod"`
	Status           enums.OrderStatus       `json:"status"`
	TableID          string                  `json:"tableId,omitempty"`
	Guests           int                     `json:"numberOfGuests,omitempty"`
	DeliveryProvider enums.DeliveryProvider  `json:"deliveryProvider,omitempty"`
	DeliveryAddress  string                  `json:"deliveryAddress,omitempty"`
	DeliveryLocation *types.Location         `json:"deliveryLocation,omitempty"`
	Items            []checkout.DraftLine    `json:"items"`
	TotalAmount      decimal.Decimal         `json:"totalAmount"`
	CreatedAt        time.Time               `json:"createdAt"`
	UpdatedAt        time.Time               `json:"updatedAt,omitempty"`
}
