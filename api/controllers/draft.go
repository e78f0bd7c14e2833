package controllers

import (
	"net/http"

	"github.com/daleelbalady/storefront-gateway/api/responses"
	"github.com/daleelbalady/storefront-gateway/api/validators"
	"github.com/daleelbalady/storefront-gateway/internal/platform"
	"github.com/daleelbalady/storefront-gateway/internal/session"
	pkgerrors "github.com/daleelbalady/storefront-gateway/pkg/errors"
	"github.com/daleelbalady/storefront-gateway/pkg/logger"
	"github.com/daleelbalady/storefront-gateway/pkg/metrics"
)

type openDraftRequest struct {
	ShopID string `json:"shopId" validate:"required"`
	ItemID string `json:"itemId" validate:"required"`
}

// DraftOpen starts configuring a catalog item. Opening an item from a
// different shop than the session's current one empties the cart first: a
// cart never mixes restaurants.
func DraftOpen(store session.Store, cache *platform.MenuCache, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload openDraftRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state, err := loadSession(r, store)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := cache.Item(r.Context(), payload.ShopID, payload.ItemID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if item == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found"))
			return
		}

		if state.ShopID != "" && state.ShopID != payload.ShopID {
			state.Cart.Clear()
			state.ResetWizard()
		}
		state.ShopID = payload.ShopID
		state.OpenItem(*item)

		if err := saveSession(r.Context(), store, state); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newDraftView(state))
	}
}

// DraftGet returns the in-progress item configuration.
func DraftGet(store session.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := loadSession(r, store)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if state.Draft == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "no item is being configured"))
			return
		}
		responses.WriteSuccess(w, newDraftView(state))
	}
}

type toggleOptionRequest struct {
	GroupID  string `json:"groupId" validate:"required"`
	OptionID string `json:"optionId" validate:"required"`
}

// DraftToggle applies one tap on a modifier option.
func DraftToggle(store session.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload toggleOptionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state, err := loadSession(r, store)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := state.ToggleOption(payload.GroupID, payload.OptionID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := saveSession(r.Context(), store, state); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newDraftView(state))
	}
}

type adjustQuantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// DraftQuantity steps the draft quantity by a delta, clamped at 1.
func DraftQuantity(store session.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
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

		if err := state.AdjustDraftQuantity(payload.Delta); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := saveSession(r.Context(), store, state); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newDraftView(state))
	}
}

type draftNotesRequest struct {
	Notes string `json:"notes" validate:"max=500"`
}

// DraftNotes replaces the free-text note on the draft.
func DraftNotes(store session.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload draftNotesRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state, err := loadSession(r, store)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := state.SetDraftNotes(payload.Notes); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := saveSession(r.Context(), store, state); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newDraftView(state))
	}
}

// DraftCommit validates the configuration and appends it to the cart.
func DraftCommit(store session.Store, m *metrics.CheckoutMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := loadSession(r, store)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		line, err := state.CommitDraft()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := saveSession(r.Context(), store, state); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		m.IncLineAdded()
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{
			"line": newLineView(line),
			"cart": newCartView(&state.Cart),
		})
	}
}

// DraftClose abandons the configuration without touching the cart.
func DraftClose(store session.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := loadSession(r, store)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state.CloseItem()
		if err := saveSession(r.Context(), store, state); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "closed"})
	}
}
