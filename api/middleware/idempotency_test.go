package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type fakeIdempotencyStore struct {
	data map[string]string
}

func newFakeIdempotencyStore() *fakeIdempotencyStore {
	return &fakeIdempotencyStore{data: make(map[string]string)}
}

func (f *fakeIdempotencyStore) Get(_ context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", redis.Nil
	}
	return v, nil
}

func (f *fakeIdempotencyStore) SetNX(_ context.Context, key string, value any, _ time.Duration) (bool, error) {
	if _, exists := f.data[key]; exists {
		return false, nil
	}
	f.data[key] = value.(string)
	return true, nil
}

func (f *fakeIdempotencyStore) IdempotencyKey(scope, key string) string {
	return "test:idempotency:" + scope + ":" + key
}

func submitHandler(calls *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"id":"ord-1"}}`))
	})
}

func TestIdempotencyRequiresKey(t *testing.T) {
	calls := 0
	handler := Idempotency(newFakeIdempotencyStore(), nil)(submitHandler(&calls))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("POST", "/checkout/submit", strings.NewReader(`{}`)))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without key, got %d", w.Code)
	}
	if calls != 0 {
		t.Fatal("handler must not run without idempotency key")
	}
}

func TestIdempotencyReplaysStoredResponse(t *testing.T) {
	calls := 0
	store := newFakeIdempotencyStore()
	handler := Idempotency(store, nil)(submitHandler(&calls))

	for i := 0; i < 2; i++ {
		r := httptest.NewRequest("POST", "/checkout/submit", strings.NewReader(`{"note":"same"}`))
		r.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		if w.Code != http.StatusCreated {
			t.Fatalf("attempt %d: expected 201, got %d", i, w.Code)
		}
		if !strings.Contains(w.Body.String(), "ord-1") {
			t.Fatalf("attempt %d: unexpected body %s", i, w.Body.String())
		}
	}
	if calls != 1 {
		t.Fatalf("handler should run once, ran %d times", calls)
	}
}

func TestIdempotencyRejectsKeyReuseWithDifferentBody(t *testing.T) {
	calls := 0
	store := newFakeIdempotencyStore()
	handler := Idempotency(store, nil)(submitHandler(&calls))

	first := httptest.NewRequest("POST", "/checkout/submit", strings.NewReader(`{"note":"a"}`))
	first.Header.Set("Idempotency-Key", "key-1")
	handler.ServeHTTP(httptest.NewRecorder(), first)

	second := httptest.NewRequest("POST", "/checkout/submit", strings.NewReader(`{"note":"b"}`))
	second.Header.Set("Idempotency-Key", "key-1")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, second)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for body mismatch, got %d", w.Code)
	}
	if calls != 1 {
		t.Fatalf("handler should run once, ran %d times", calls)
	}
}

func TestIdempotencyPassthroughWithoutStore(t *testing.T) {
	calls := 0
	handler := Idempotency(nil, nil)(submitHandler(&calls))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("POST", "/checkout/submit", strings.NewReader(`{}`)))

	if w.Code != http.StatusCreated || calls != 1 {
		t.Fatalf("passthrough failed: status=%d calls=%d", w.Code, calls)
	}
}
