package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/daleelbalady/storefront-gateway/api/responses"
	"github.com/daleelbalady/storefront-gateway/api/validators"
	"github.com/daleelbalady/storefront-gateway/internal/catalog"
	"github.com/daleelbalady/storefront-gateway/internal/platform"
	pkgerrors "github.com/daleelbalady/storefront-gateway/pkg/errors"
	"github.com/daleelbalady/storefront-gateway/pkg/logger"
)

// TablesList returns the shop's tables, occupancy included, for the dine-in
// table picker.
func TablesList(client *platform.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shopID := chi.URLParam(r, "shopID")
		if shopID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "shop id required"))
			return
		}

		tables, err := client.GetTables(r.Context(), shopID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, tables)
	}
}

type createTableRequest struct {
	Label    string `json:"label" validate:"required"`
	Capacity int    `json:"capacity" validate:"min=1,max=50"`
}

// TableCreate adds a table on behalf of the authenticated owner.
func TableCreate(client *platform.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := adminToken(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload createTableRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := client.CreateTable(r.Context(), token, catalog.Table{
			Label:    payload.Label,
			Capacity: payload.Capacity,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

type tableStatusRequest struct {
	IsOccupied *bool `json:"isOccupied" validate:"required"`
}

// TableStatusUpdate flips a table's occupancy flag.
func TableStatusUpdate(client *platform.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := adminToken(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		tableID := chi.URLParam(r, "tableID")
		if tableID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "table id required"))
			return
		}

		var payload tableStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := client.UpdateTableStatus(r.Context(), token, tableID, *payload.IsOccupied); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"id": tableID, "isOccupied": *payload.IsOccupied})
	}
}

// TableDelete removes a table.
func TableDelete(client *platform.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := adminToken(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		tableID := chi.URLParam(r, "tableID")
		if tableID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "table id required"))
			return
		}

		if err := client.DeleteTable(r.Context(), token, tableID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"id": tableID, "status": "deleted"})
	}
}
