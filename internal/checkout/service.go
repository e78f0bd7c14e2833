package checkout

import (
	"context"
	"fmt"

	"github.com/daleelbalady/storefront-gateway/internal/cart"
	pkgerrors "github.com/daleelbalady/storefront-gateway/pkg/errors"
	"github.com/daleelbalady/storefront-gateway/pkg/logger"
	"github.com/daleelbalady/storefront-gateway/pkg/metrics"
)

// OrderCreator is the platform boundary the wizard submits through.
type OrderCreator interface {
	CreateOrder(ctx context.Context, draft OrderDraft) (*OrderConfirmation, error)
}

// Service drives the submission side effect of the Details -> Confirmation
// transition. Everything before submission is local validation; the platform
// call is the only asynchronous boundary in the flow.
type Service struct {
	orders  OrderCreator
	metrics *metrics.CheckoutMetrics
	logg    *logger.Logger
}

// NewService builds the checkout service.
func NewService(orders OrderCreator, m *metrics.CheckoutMetrics, logg *logger.Logger) (*Service, error) {
	if orders == nil {
		return nil, fmt.Errorf("order creator required")
	}
	return &Service{orders: orders, metrics: m, logg: logg}, nil
}

// Submit validates the wizard locally, assembles the order draft and sends it
// to the platform. On success the cart is cleared and the wizard advances to
// Confirmation. On failure the wizard stays on Details with the cart intact;
// the gateway never retries on the caller's behalf.
func (s *Service) Submit(ctx context.Context, shopID string, c *cart.Cart, w *Wizard) (*OrderConfirmation, error) {
	if shopID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shop id is required")
	}
	if w.Step != StepDetails {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "submission requires the details step").
			WithDetails(map[string]any{"step": w.Step.String()})
	}
	if c.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}
	if !w.DetailsComplete() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order details are incomplete").
			WithDetails(map[string]any{"method": w.Method.String()})
	}

	draft := BuildDraft(shopID, c, w)

	confirmation, err := s.orders.CreateOrder(ctx, draft)
	if err != nil {
		s.metrics.IncSubmission(w.Method.String(), "failure")
		if s.logg != nil {
			s.logg.Error(ctx, "order submission failed", err)
		}
		if typed := pkgerrors.As(err); typed != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
	}

	c.Clear()
	w.Complete()
	s.metrics.IncSubmission(w.Method.String(), "success")
	if s.logg != nil {
		ctx = s.logg.WithOrderID(ctx, confirmation.ID)
		s.logg.Info(ctx, "order submitted")
	}
	return confirmation, nil
}
