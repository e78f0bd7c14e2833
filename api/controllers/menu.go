package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/daleelbalady/storefront-gateway/api/responses"
	"github.com/daleelbalady/storefront-gateway/internal/platform"
	pkgerrors "github.com/daleelbalady/storefront-gateway/pkg/errors"
	"github.com/daleelbalady/storefront-gateway/pkg/logger"
)

// MenuList returns the shop's catalog.
func MenuList(cache *platform.MenuCache, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shopID := chi.URLParam(r, "shopID")
		if shopID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "shop id required"))
			return
		}

		items, err := cache.Menu(r.Context(), shopID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, items)
	}
}

// MenuItemDetails returns one catalog item with its modifier groups.
func MenuItemDetails(cache *platform.MenuCache, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shopID := chi.URLParam(r, "shopID")
		itemID := chi.URLParam(r, "itemID")
		if shopID == "" || itemID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "shop id and item id required"))
			return
		}

		item, err := cache.Item(r.Context(), shopID, itemID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if item == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found"))
			return
		}

		responses.WriteSuccess(w, item)
	}
}
