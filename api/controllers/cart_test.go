package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daleelbalady/storefront-gateway/api/middleware"
	"github.com/daleelbalady/storefront-gateway/internal/catalog"
	"github.com/daleelbalady/storefront-gateway/internal/selection"
	"github.com/daleelbalady/storefront-gateway/internal/session"
	"github.com/daleelbalady/storefront-gateway/pkg/types"
)

func seedSession(t *testing.T, store session.Store, quantity int) (*session.State, string) {
	t.Helper()

	state := session.NewState("11111111-1111-4111-8111-111111111111")
	state.ShopID = "shop-1"
	item := catalog.MenuItem{ID: "item-1", BasePrice: decimal.NewFromInt(500)}
	line, err := state.Cart.AddLine(item, quantity, selection.Map{}, "")
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), state))
	return state, line.ID
}

func cartRequest(t *testing.T, sessionID, method, path, body string, params map[string]string) *http.Request {
	t.Helper()

	r := httptest.NewRequest(method, path, strings.NewReader(body))
	ctx := middleware.WithSessionID(r.Context(), sessionID)

	routeCtx := chi.NewRouteContext()
	for key, value := range params {
		routeCtx.URLParams.Add(key, value)
	}
	ctx = context.WithValue(ctx, chi.RouteCtxKey, routeCtx)
	return r.WithContext(ctx)
}

func decodeCartView(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body types.SuccessEnvelope
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	view, ok := body.Data.(map[string]any)
	require.True(t, ok, "expected cart view, got %v", body.Data)
	return view
}

func TestCartLineQuantityIncrement(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	state, lineID := seedSession(t, store, 1)

	w := httptest.NewRecorder()
	r := cartRequest(t, state.ID, "POST", "/cart/lines/"+lineID+"/quantity", `{"delta":1}`, map[string]string{"lineID": lineID})
	CartLineQuantity(store, nil)(w, r)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	view := decodeCartView(t, w)
	assert.Equal(t, float64(2), view["itemCount"])
	assert.Equal(t, float64(1000), view["total"])
}

func TestCartLineQuantityDecrementFromOneRemovesLine(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	state, lineID := seedSession(t, store, 1)

	w := httptest.NewRecorder()
	r := cartRequest(t, state.ID, "POST", "/cart/lines/"+lineID+"/quantity", `{"delta":-1}`, map[string]string{"lineID": lineID})
	CartLineQuantity(store, nil)(w, r)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	view := decodeCartView(t, w)
	assert.Empty(t, view["lines"], "decrement from one must remove the line")

	reloaded, err := store.Get(context.Background(), state.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.True(t, reloaded.Cart.IsEmpty(), "removal must be persisted")
}

func TestCartLineQuantityDecrementAboveOneKeepsLine(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	state, lineID := seedSession(t, store, 2)

	w := httptest.NewRecorder()
	r := cartRequest(t, state.ID, "POST", "/cart/lines/"+lineID+"/quantity", `{"delta":-1}`, map[string]string{"lineID": lineID})
	CartLineQuantity(store, nil)(w, r)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	view := decodeCartView(t, w)
	assert.Equal(t, float64(1), view["itemCount"])
}

func TestCartLineQuantityUnknownLine(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	state, _ := seedSession(t, store, 1)

	w := httptest.NewRecorder()
	r := cartRequest(t, state.ID, "POST", "/cart/lines/absent/quantity", `{"delta":1}`, map[string]string{"lineID": "absent"})
	CartLineQuantity(store, nil)(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
}

func TestCartClearResetsWizardToo(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	state, _ := seedSession(t, store, 1)
	require.NoError(t, state.Wizard.Next(&state.Cart))
	require.NoError(t, store.Save(context.Background(), state))

	w := httptest.NewRecorder()
	r := cartRequest(t, state.ID, "DELETE", "/cart", "", nil)
	CartClear(store, nil)(w, r)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	reloaded, err := store.Get(context.Background(), state.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Cart.IsEmpty(), "cart must be empty")
	assert.Equal(t, "cart", reloaded.Wizard.Step.String(), "wizard must return to cart review")
}
