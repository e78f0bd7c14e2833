package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/daleelbalady/storefront-gateway/internal/checkout"
	pkgerrors "github.com/daleelbalady/storefront-gateway/pkg/errors"
	"github.com/daleelbalady/storefront-gateway/pkg/types"
)

func TestNewClientRequiresBaseURL(t *testing.T) {
	if _, err := NewClient("  "); err == nil {
		t.Fatal("expected error for empty base url")
	}
	client, err := NewClient("http://platform.local/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.baseURL != "http://platform.local" {
		t.Fatalf("trailing slash should be trimmed, got %s", client.baseURL)
	}
}

func TestGetMenuDecodesCatalog(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/menu/shop-1" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"item-1","name":{"en":"Shawarma","ar":"شاورما"},"basePrice":650,"modifierGroups":[{"id":"g-size","minSelection":1,"maxSelection":1,"options":[{"id":"o-l","priceDelta":250,"isDefault":false}]}]}]`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items, err := client.GetMenu(context.Background(), "shop-1")
	if err != nil {
		t.Fatalf("get menu failed: %v", err)
	}
	if len(items) != 1 || items[0].ID != "item-1" {
		t.Fatalf("unexpected items %+v", items)
	}
	if !items[0].BasePrice.Equal(decimal.NewFromInt(650)) {
		t.Fatalf("base price mismatch: %s", items[0].BasePrice)
	}
	if items[0].Name.Get("ar") != "شاورما" {
		t.Fatalf("localized name lost: %+v", items[0].Name)
	}
	if len(items[0].ModifierGroups) != 1 || !items[0].ModifierGroups[0].Options[0].PriceDelta.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("modifier groups not decoded: %+v", items[0].ModifierGroups)
	}
}

func TestCreateOrderSendsDraftAndBearer(t *testing.T) {
	var receivedAuth string
	var receivedDraft checkout.OrderDraft
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&receivedDraft); err != nil {
			t.Fatalf("decode draft: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"ord-77","status":"pending","totalAmount":1800}`))
	}))
	defer server.Close()

	client, _ := NewClient(server.URL)
	confirmation, err := client.CreateOrder(context.Background(), checkout.OrderDraft{
		ShopID:      "shop-1",
		TotalAmount: decimal.NewFromInt(1800),
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if confirmation.ID != "ord-77" {
		t.Fatalf("unexpected confirmation %+v", confirmation)
	}
	if receivedAuth != "" {
		t.Fatalf("guest checkout must not carry credentials, got %q", receivedAuth)
	}
	if receivedDraft.ShopID != "shop-1" || !receivedDraft.TotalAmount.Equal(decimal.NewFromInt(1800)) {
		t.Fatalf("draft not forwarded: %+v", receivedDraft)
	}
}

func TestAdminCallsCarryBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer owner-token" {
			t.Fatalf("missing bearer token, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client, _ := NewClient(server.URL)
	if _, err := client.ListOrders(context.Background(), "owner-token"); err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
}

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		status int
		code   pkgerrors.Code
	}{
		{http.StatusNotFound, pkgerrors.CodeNotFound},
		{http.StatusUnauthorized, pkgerrors.CodeUnauthorized},
		{http.StatusForbidden, pkgerrors.CodeForbidden},
		{http.StatusBadRequest, pkgerrors.CodeValidation},
		{http.StatusBadGateway, pkgerrors.CodeDependency},
	}
	for _, tc := range cases {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			w.Write([]byte("nope"))
		}))
		client, _ := NewClient(server.URL)
		_, err := client.GetShop(context.Background(), "missing")
		server.Close()

		typed := pkgerrors.As(err)
		if typed == nil {
			t.Fatalf("status %d: expected typed error, got %v", tc.status, err)
		}
		if typed.Code() != tc.code {
			t.Fatalf("status %d: expected code %s, got %s", tc.status, tc.code, typed.Code())
		}
	}
}

func TestUpdateTableStatusPayload(t *testing.T) {
	var payload map[string]bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/tables/t-3/status" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&payload)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client, _ := NewClient(server.URL)
	if err := client.UpdateTableStatus(context.Background(), "owner-token", "t-3", true); err != nil {
		t.Fatalf("update table status failed: %v", err)
	}
	if !payload["isOccupied"] {
		t.Fatalf("occupancy flag not sent: %+v", payload)
	}
}

func TestDeliveryLocationRoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"ord-9","shopId":"shop-1","orderMethod":"delivery","status":"confirmed","deliveryLocation":{"lat":24.7136,"lng":46.6753},"items":[],"totalAmount":900,"createdAt":"2026-08-28T10:00:00Z"}`))
	}))
	defer server.Close()

	client, _ := NewClient(server.URL)
	order, err := client.GetOrder(context.Background(), "owner-token", "ord-9")
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	want := types.Location{Lat: 24.7136, Lng: 46.6753}
	if order.DeliveryLocation == nil || *order.DeliveryLocation != want {
		t.Fatalf("location not decoded: %+v", order.DeliveryLocation)
	}
}

var _ checkout.OrderCreator = (*Client)(nil)
