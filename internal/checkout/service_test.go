package checkout

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/daleelbalady/storefront-gateway/internal/cart"
	"github.com/daleelbalady/storefront-gateway/internal/catalog"
	"github.com/daleelbalady/storefront-gateway/pkg/enums"
	pkgerrors "github.com/daleelbalady/storefront-gateway/pkg/errors"
)

type stubOrderCreator struct {
	calls        int
	lastDraft    OrderDraft
	confirmation *OrderConfirmation
	err          error
}

func (s *stubOrderCreator) CreateOrder(_ context.Context, draft OrderDraft) (*OrderConfirmation, error) {
	s.calls++
	s.lastDraft = draft
	if s.err != nil {
		return nil, s.err
	}
	return s.confirmation, nil
}

func readyDineInFlow(t *testing.T) (*cart.Cart, *Wizard) {
	t.Helper()
	w, c := wizardAtDetails(t, enums.OrderMethodDineIn)
	if err := w.SelectTable(catalog.Table{ID: "t-3"}, 2); err != nil {
		t.Fatalf("select table: %v", err)
	}
	return c, w
}

func TestSubmitHappyPath(t *testing.T) {
	creator := &stubOrderCreator{
		confirmation: &OrderConfirmation{
			ID:          "ord-1",
			Status:      enums.OrderStatusPending,
			TotalAmount: decimal.NewFromInt(500),
			CreatedAt:   time.Now(),
		},
	}
	svc, err := NewService(creator, nil, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	c, w := readyDineInFlow(t)
	confirmation, err := svc.Submit(context.Background(), "shop-1", c, w)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if confirmation.ID != "ord-1" {
		t.Fatalf("unexpected confirmation %+v", confirmation)
	}
	if creator.calls != 1 {
		t.Fatalf("expected one platform call, got %d", creator.calls)
	}
	if creator.lastDraft.TableID != "t-3" {
		t.Fatalf("draft not assembled: %+v", creator.lastDraft)
	}
	if !c.IsEmpty() {
		t.Fatal("cart must be cleared exactly on success")
	}
	if w.Step != StepConfirmation {
		t.Fatalf("wizard must land on confirmation, got %s", w.Step)
	}
}

func TestSubmitFailureKeepsCartAndStep(t *testing.T) {
	creator := &stubOrderCreator{err: fmt.Errorf("connection refused")}
	svc, _ := NewService(creator, nil, nil)

	c, w := readyDineInFlow(t)
	_, err := svc.Submit(context.Background(), "shop-1", c, w)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
	if c.IsEmpty() {
		t.Fatal("failed submission must keep the cart")
	}
	if w.Step != StepDetails {
		t.Fatalf("failed submission must stay on details, got %s", w.Step)
	}
}

func TestSubmitPassesThroughTypedPlatformErrors(t *testing.T) {
	creator := &stubOrderCreator{err: pkgerrors.New(pkgerrors.CodeValidation, "platform rejected order")}
	svc, _ := NewService(creator, nil, nil)

	c, w := readyDineInFlow(t)
	_, err := svc.Submit(context.Background(), "shop-1", c, w)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("typed platform error must pass through, got %v", err)
	}
}

func TestSubmitGuards(t *testing.T) {
	creator := &stubOrderCreator{confirmation: &OrderConfirmation{ID: "ord-1"}}
	svc, _ := NewService(creator, nil, nil)
	ctx := context.Background()

	c, w := readyDineInFlow(t)
	if _, err := svc.Submit(ctx, "", c, w); pkgerrors.As(err) == nil {
		t.Fatal("missing shop id must fail")
	}

	// Wrong step.
	c2 := cartWithOneLine(t)
	w2 := NewWizard()
	_, err := svc.Submit(ctx, "shop-1", c2, &w2)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict off the details step, got %v", err)
	}

	// Incomplete details.
	w3, c3 := wizardAtDetails(t, enums.OrderMethodDineIn)
	_, err = svc.Submit(ctx, "shop-1", c3, w3)
	typed = pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for incomplete details, got %v", err)
	}

	if creator.calls != 0 {
		t.Fatalf("guards must fire before the platform call, got %d calls", creator.calls)
	}
}

func TestNewServiceRequiresOrderCreator(t *testing.T) {
	if _, err := NewService(nil, nil, nil); err == nil {
		t.Fatal("expected error for nil order creator")
	}
}
