// Package session owns the per-browsing-session state: the cart aggregate,
// the checkout wizard, and the in-progress item configuration. One session is
// mutated by exactly one logical actor; handlers serialize access per request.
package session

import (
	stdErrors "errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daleelbalady/storefront-gateway/internal/cart"
	"github.com/daleelbalady/storefront-gateway/internal/catalog"
	"github.com/daleelbalady/storefront-gateway/internal/checkout"
	"github.com/daleelbalady/storefront-gateway/internal/pricing"
	"github.com/daleelbalady/storefront-gateway/internal/selection"
	pkgerrors "github.com/daleelbalady/storefront-gateway/pkg/errors"
)

// ItemDraft is the "product modal" state: one catalog item being configured
// before it is committed to the cart.
type ItemDraft struct {
	Item       catalog.MenuItem `json:"item"`
	Quantity   int              `json:"quantity"`
	Selections selection.Map    `json:"selections"`
	Notes      string           `json:"notes,omitempty"`
}

// State is everything the gateway keeps for one customer session.
type State struct {
	ID        string          `json:"id"`
	ShopID    string          `json:"shopId,omitempty"`
	Cart      cart.Cart       `json:"cart"`
	Wizard    checkout.Wizard `json:"wizard"`
	Draft     *ItemDraft      `json:"draft,omitempty"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// NewState creates a fresh session with an empty cart and a wizard at cart
// review. An empty id is replaced with a generated one.
func NewState(id string) *State {
	if id == "" {
		id = uuid.NewString()
	}
	return &State{
		ID:        id,
		Wizard:    checkout.NewWizard(),
		UpdatedAt: time.Now().UTC(),
	}
}

// OpenItem starts configuring a catalog item, discarding any previous draft.
// Exactly-one-required groups come pre-selected with their default option.
func (s *State) OpenItem(item catalog.MenuItem) {
	s.Draft = &ItemDraft{
		Item:       item.Clone(),
		Quantity:   1,
		Selections: selection.Defaults(item),
	}
}

// CloseItem abandons the in-progress configuration without touching the cart.
func (s *State) CloseItem() {
	s.Draft = nil
}

// ToggleOption applies one tap on a modifier option in the open draft.
func (s *State) ToggleOption(groupID, optionID string) error {
	if s.Draft == nil {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "no item is being configured")
	}
	group, ok := s.Draft.Item.GroupByID(groupID)
	if !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, "modifier group not found")
	}
	if _, ok := group.OptionByID(optionID); !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, "modifier option not found")
	}
	s.Draft.Selections = selection.Toggle(s.Draft.Selections, group, optionID)
	return nil
}

// AdjustDraftQuantity steps the draft quantity, clamped at 1.
func (s *State) AdjustDraftQuantity(delta int) error {
	if s.Draft == nil {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "no item is being configured")
	}
	quantity := s.Draft.Quantity + delta
	if quantity < 1 {
		quantity = 1
	}
	s.Draft.Quantity = quantity
	return nil
}

// SetDraftNotes replaces the free-text note on the draft.
func (s *State) SetDraftNotes(notes string) error {
	if s.Draft == nil {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "no item is being configured")
	}
	s.Draft.Notes = notes
	return nil
}

// DraftTotal prices the draft for display, recomputed on every read.
func (s *State) DraftTotal() decimal.Decimal {
	if s.Draft == nil {
		return decimal.Zero
	}
	return pricing.LinePrice(s.Draft.Item, s.Draft.Quantity, s.Draft.Selections)
}

// CommitDraft validates the configuration and appends it to the cart. On a
// minimum-selection failure the offending group is surfaced by id so the UI
// can scroll to it; the draft stays open for the customer to correct.
func (s *State) CommitDraft() (cart.Line, error) {
	if s.Draft == nil {
		return cart.Line{}, pkgerrors.New(pkgerrors.CodeStateConflict, "no item is being configured")
	}
	if err := selection.ValidateForCommit(s.Draft.Item, s.Draft.Selections); err != nil {
		var minErr *selection.MinimumError
		if stdErrors.As(err, &minErr) {
			return cart.Line{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "minimum selection not met").
				WithDetails(map[string]any{
					"group_id":      minErr.GroupID,
					"group_name":    minErr.GroupName,
					"min_selection": minErr.Required,
					"selected":      minErr.Selected,
				})
		}
		return cart.Line{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid configuration")
	}

	line, err := s.Cart.AddLine(s.Draft.Item, s.Draft.Quantity, s.Draft.Selections, s.Draft.Notes)
	if err != nil {
		return cart.Line{}, err
	}
	s.Draft = nil
	return line, nil
}

// ResetWizard returns the flow to cart review, clearing all details fields.
// The cart itself is only cleared by a successful submission.
func (s *State) ResetWizard() {
	s.Wizard.Reset()
}

// Touch refreshes the last-activity timestamp before persisting.
func (s *State) Touch() {
	s.UpdatedAt = time.Now().UTC()
}
