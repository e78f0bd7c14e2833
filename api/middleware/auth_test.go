package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/daleelbalady/storefront-gateway/pkg/config"
)

func adminJWTConfig() config.AdminJWTConfig {
	return config.AdminJWTConfig{Secret: "test-secret", Issuer: "daleel-balady"}
}

func signAdminToken(t *testing.T, cfg config.AdminJWTConfig, shopID string, expiresAt time.Time) string {
	t.Helper()
	claims := AdminClaims{
		ShopID: shopID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestAdminAuthAcceptsValidToken(t *testing.T) {
	cfg := adminJWTConfig()
	token := signAdminToken(t, cfg, "shop-1", time.Now().Add(time.Hour))

	var gotShop, gotToken string
	handler := AdminAuth(cfg, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotShop = AdminShopIDFromContext(r.Context())
		gotToken = AdminTokenFromContext(r.Context())
	}))

	r := httptest.NewRequest("GET", "/admin/orders", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if gotShop != "shop-1" {
		t.Fatalf("shop claim not propagated, got %q", gotShop)
	}
	if gotToken != token {
		t.Fatal("raw token must be kept for platform passthrough")
	}
}

func TestAdminAuthRejectsMissingCredentials(t *testing.T) {
	handler := AdminAuth(adminJWTConfig(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/admin/orders", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAdminAuthRejectsExpiredToken(t *testing.T) {
	cfg := adminJWTConfig()
	token := signAdminToken(t, cfg, "shop-1", time.Now().Add(-time.Hour))

	handler := AdminAuth(cfg, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	r := httptest.NewRequest("GET", "/admin/orders", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAdminAuthRejectsWrongIssuer(t *testing.T) {
	cfg := adminJWTConfig()
	other := config.AdminJWTConfig{Secret: cfg.Secret, Issuer: "someone-else"}
	token := signAdminToken(t, other, "shop-1", time.Now().Add(time.Hour))

	handler := AdminAuth(cfg, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	r := httptest.NewRequest("GET", "/admin/orders", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAdminAuthRejectsMissingShopClaim(t *testing.T) {
	cfg := adminJWTConfig()
	token := signAdminToken(t, cfg, "", time.Now().Add(time.Hour))

	handler := AdminAuth(cfg, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	r := httptest.NewRequest("GET", "/admin/orders", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
