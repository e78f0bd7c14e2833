package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/daleelbalady/storefront-gateway/api/responses"
	"github.com/daleelbalady/storefront-gateway/api/validators"
	"github.com/daleelbalady/storefront-gateway/internal/session"
	pkgerrors "github.com/daleelbalady/storefront-gateway/pkg/errors"
	"github.com/daleelbalady/storefront-gateway/pkg/logger"
)

// CartGet returns the session's cart with derived totals.
func CartGet(store session.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := loadSession(r, store)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartView(&state.Cart))
	}
}

// CartLineRemove deletes a line. Removing an absent line succeeds; the end
// state is the same either way.
func CartLineRemove(store session.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lineID := chi.URLParam(r, "lineID")
		if lineID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "line id required"))
			return
		}

		state, err := loadSession(r, store)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state.Cart.RemoveLine(lineID)
		if err := saveSession(r.Context(), store, state); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartView(&state.Cart))
	}
}

// CartLineQuantity steps a line's quantity. Decrementing a quantity-one line
// removes it instead of holding at one; that is the cart row's minus-button
// behavior, distinct from the draft stepper.
func CartLineQuantity(store session.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lineID := chi.URLParam(r, "lineID")
		if lineID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "line id required"))
			return
		}

		var payload adjustQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state, err := loadSession(r, store)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		line, ok := state.Cart.Line(lineID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "cart line not found"))
			return
		}

		if line.Quantity+payload.Delta < 1 {
			state.Cart.RemoveLine(lineID)
		} else {
			state.Cart.AdjustQuantity(lineID, payload.Delta)
		}

		if err := saveSession(r.Context(), store, state); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartView(&state.Cart))
	}
}

// CartClear empties the cart and returns the wizard to cart review.
func CartClear(store session.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := loadSession(r, store)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state.Cart.Clear()
		state.ResetWizard()
		if err := saveSession(r.Context(), store, state); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartView(&state.Cart))
	}
}
