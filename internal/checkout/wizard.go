package checkout

import (
	"github.com/daleelbalady/storefront-gateway/internal/cart"
	"github.com/daleelbalady/storefront-gateway/internal/catalog"
	"github.com/daleelbalady/storefront-gateway/pkg/enums"
	pkgerrors "github.com/daleelbalady/storefront-gateway/pkg/errors"
	"github.com/daleelbalady/storefront-gateway/pkg/types"
)

// Step is the wizard's position in the checkout flow.
type Step int

const (
	StepCart Step = iota + 1
	StepMethodSelect
	StepDetails
	StepConfirmation
)

var stepNames = map[Step]string{
	StepCart:         "cart",
	StepMethodSelect: "method_select",
	StepDetails:      "details",
	StepConfirmation: "confirmation",
}

// String implements fmt.Stringer.
func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// DineInDetails captures the table choice for a dine-in order.
type DineInDetails struct {
	TableID string `json:"tableId,omitempty"`
	Guests  int    `json:"guests,omitempty"`
}

// DeliveryDetails captures provider, pinned location and contact fields for a
// delivery order.
type DeliveryDetails struct {
	Provider enums.DeliveryProvider `json:"provider,omitempty"`
	Location *types.Location        `json:"location,omitempty"`
	Name     string                 `json:"name,omitempty"`
	Phone    string                 `json:"phone,omitempty"`
	Address  string                 `json:"address,omitempty"`
}

// Wizard is the checkout flow state machine. Confirmation is terminal for the
// session; only Reset leaves it. Backward navigation never discards entered
// details, so a customer returning forward finds their fields intact.
type Wizard struct {
	Step     Step              `json:"step"`
	Method   enums.OrderMethod `json:"method,omitempty"`
	DineIn   DineInDetails     `json:"dineIn"`
	Delivery DeliveryDetails   `json:"delivery"`
}

// NewWizard starts a wizard at the cart review step.
func NewWizard() Wizard {
	return Wizard{Step: StepCart}
}

// CanProceed reports whether the current step's guard is satisfied. The
// presentation layer renders this as the enabled state of the Next / Place
// Order affordance.
func (w *Wizard) CanProceed(c *cart.Cart) bool {
	switch w.Step {
	case StepCart:
		return c != nil && c.ItemCount() > 0
	case StepMethodSelect:
		return w.Method.IsValid()
	case StepDetails:
		return w.DetailsComplete()
	default:
		return false
	}
}

// Next advances from cart review to method selection. It is the only forward
/// transition driven by a bare "next": choosing a method and submitting drive
// the other two.
func (w *Wizard) Next(c *cart.Cart) error {
	if w.Step != StepCart {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "next is only valid from cart review").
			WithDetails(map[string]any{"step": w.Step.String()})
	}
	if c == nil || c.ItemCount() == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}
	w.Step = StepMethodSelect
	return nil
}

// ChooseMethod records the fulfillment method and advances to the details
// step; selecting a method is itself the transition trigger.
func (w *Wizard) ChooseMethod(method enums.OrderMethod) error {
	if w.Step != StepMethodSelect {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "method selection is not the current step").
			WithDetails(map[string]any{"step": w.Step.String()})
	}
	if !method.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown fulfillment method")
	}
	w.Method = method
	w.Step = StepDetails
	return nil
}

// Back returns to the immediately preceding step. Entered details are kept.
func (w *Wizard) Back() error {
	switch w.Step {
	case StepMethodSelect:
		w.Step = StepCart
	case StepDetails:
		w.Step = StepMethodSelect
	default:
		return pkgerrors.New(pkgerrors.CodeStateConflict, "cannot navigate back from this step").
			WithDetails(map[string]any{"step": w.Step.String()})
	}
	return nil
}

// SelectTable records the dine-in table. Occupied tables are rejected here,
// at selection time, not at submission.
func (w *Wizard) SelectTable(table catalog.Table, guests int) error {
	if w.Step != StepDetails || w.Method != enums.OrderMethodDineIn {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "table selection requires the dine-in details step")
	}
	if table.IsOccupied {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "table is occupied").
			WithDetails(map[string]any{"table_id": table.ID})
	}
	if guests < 1 {
		guests = 1
	}
	w.DineIn = DineInDetails{TableID: table.ID, Guests: guests}
	return nil
}

// DeliveryUpdate carries a partial edit of the delivery form; nil fields are
// left untouched so the form survives back-and-forward navigation.
type DeliveryUpdate struct {
	Provider *enums.DeliveryProvider
	Location *types.Location
	Name     *string
	Phone    *string
	Address  *string
}

// UpdateDelivery merges a partial edit into the delivery details.
func (w *Wizard) UpdateDelivery(update DeliveryUpdate) error {
	if w.Step != StepDetails || w.Method != enums.OrderMethodDelivery {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "delivery details require the delivery details step")
	}
	if update.Provider != nil {
		if !update.Provider.IsValid() {
			return pkgerrors.New(pkgerrors.CodeValidation, "unknown delivery provider")
		}
		w.Delivery.Provider = *update.Provider
	}
	if update.Location != nil {
		if err := update.Location.Validate(); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid delivery location")
		}
		loc := *update.Location
		w.Delivery.Location = &loc
	}
	if update.Name != nil {
		w.Delivery.Name = *update.Name
	}
	if update.Phone != nil {
		w.Delivery.Phone = *update.Phone
	}
	if update.Address != nil {
		w.Delivery.Address = *update.Address
	}
	return nil
}

// DetailsComplete reports whether the method-specific details gate passes:
// dine-in needs a selected table; delivery needs a provider, a pinned
// location, and all three contact fields.
func (w *Wizard) DetailsComplete() bool {
	switch w.Method {
	case enums.OrderMethodDineIn:
		return w.DineIn.TableID != ""
	case enums.OrderMethodDelivery:
		return w.Delivery.Provider.IsValid() &&
			w.Delivery.Location != nil &&
			w.Delivery.Name != "" &&
			w.Delivery.Phone != "" &&
			w.Delivery.Address != ""
	default:
		return false
	}
}

// Complete marks the wizard as finished. Only the submission path calls this.
func (w *Wizard) Complete() {
	w.Step = StepConfirmation
}

// Reset returns the wizard to cart review and clears every method, table,
// guest, provider, location and contact field. Closing the drawer mid-flow
// does NOT reset: cancellation keeps the cart and is handled by the caller
// simply abandoning the session state.
func (w *Wizard) Reset() {
	*w = NewWizard()
}
