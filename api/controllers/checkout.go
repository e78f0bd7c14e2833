package controllers

import (
	"net/http"

	"github.com/daleelbalady/storefront-gateway/api/responses"
	"github.com/daleelbalady/storefront-gateway/api/validators"
	"github.com/daleelbalady/storefront-gateway/internal/checkout"
	"github.com/daleelbalady/storefront-gateway/internal/platform"
	"github.com/daleelbalady/storefront-gateway/internal/session"
	"github.com/daleelbalady/storefront-gateway/pkg/enums"
	pkgerrors "github.com/daleelbalady/storefront-gateway/pkg/errors"
	"github.com/daleelbalady/storefront-gateway/pkg/logger"
	"github.com/daleelbalady/storefront-gateway/pkg/types"
)

// CheckoutState returns the wizard position, entered details and the cart.
func CheckoutState(store session.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := loadSession(r, store)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCheckoutView(state))
	}
}

// CheckoutNext advances from cart review to method selection.
func CheckoutNext(store session.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := loadSession(r, store)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := state.Wizard.Next(&state.Cart); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := saveSession(r.Context(), store, state); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCheckoutView(state))
	}
}

// CheckoutBack steps to the preceding wizard step, keeping entered details.
func CheckoutBack(store session.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := loadSession(r, store)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := state.Wizard.Back(); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := saveSession(r.Context(), store, state); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCheckoutView(state))
	}
}

type chooseMethodRequest struct {
	Method string `json:"method" validate:"required,oneof=dine_in delivery"`
}

// CheckoutMethod records the fulfillment method and advances to details.
func CheckoutMethod(store session.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload chooseMethodRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		method, err := enums.ParseOrderMethod(payload.Method)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown fulfillment method"))
			return
		}

		state, err := loadSession(r, store)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := state.Wizard.ChooseMethod(method); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := saveSession(r.Context(), store, state); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCheckoutView(state))
	}
}

type selectTableRequest struct {
	TableID string `json:"tableId" validate:"required"`
	Guests  int    `json:"numberOfGuests" validate:"min=0,max=50"`
}

// CheckoutTable records the dine-in table choice. The table is resolved
// against the platform's live list so an occupied table is rejected here
// rather than at submission.
func CheckoutTable(store session.Store, client *platform.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload selectTableRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state, err := loadSession(r, store)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if state.ShopID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeStateConflict, "session has no shop"))
			return
		}

		tables, err := client.GetTables(r.Context(), state.ShopID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		found := false
		for _, table := range tables {
			if table.ID != payload.TableID {
				continue
			}
			found = true
			if err := state.Wizard.SelectTable(table, payload.Guests); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			break
		}
		if !found {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "table not found"))
			return
		}

		if err := saveSession(r.Context(), store, state); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCheckoutView(state))
	}
}

type deliveryDetailsRequest struct {
	Provider *string         `json:"provider,omitempty" validate:"omitempty,oneof=restaurant daleel_balady"`
	Location *types.Location `json:"location,omitempty"`
	Name     *string         `json:"name,omitempty" validate:"omitempty,max=120"`
	Phone    *string         `json:"phone,omitempty" validate:"omitempty,max=20"`
	Address  *string         `json:"address,omitempty" validate:"omitempty,max=500"`
}

// CheckoutDelivery merges a partial edit of the delivery form. Absent fields
// keep their current values.
func CheckoutDelivery(store session.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload deliveryDetailsRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		update := checkout.DeliveryUpdate{
			Location: payload.Location,
			Name:     payload.Name,
			Phone:    payload.Phone,
			Address:  payload.Address,
		}
		if payload.Provider != nil {
			provider, err := enums.ParseDeliveryProvider(*payload.Provider)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown delivery provider"))
				return
			}
			update.Provider = &provider
		}

		state, err := loadSession(r, store)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := state.Wizard.UpdateDelivery(update); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := saveSession(r.Context(), store, state); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCheckoutView(state))
	}
}

// CheckoutSubmit places the order with the platform. On success the cart is
// emptied and the wizard lands on confirmation; on failure both survive so
// the customer can retry.
func CheckoutSubmit(store session.Store, svc *checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := loadSession(r, store)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		confirmation, err := svc.Submit(r.Context(), state.ShopID, &state.Cart, &state.Wizard)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := saveSession(r.Context(), store, state); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{
			"order":    confirmation,
			"checkout": newCheckoutView(state),
		})
	}
}

// CheckoutReset returns the wizard to cart review, clearing entered details.
// The cart is untouched.
func CheckoutReset(store session.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := loadSession(r, store)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state.ResetWizard()
		if err := saveSession(r.Context(), store, state); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCheckoutView(state))
	}
}
