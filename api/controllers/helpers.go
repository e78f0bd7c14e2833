// Package controllers holds the HTTP handlers for the storefront gateway.
// Customer-facing handlers operate on the caller's session state; admin
// handlers proxy to the platform with the owner's bearer token.
package controllers

import (
	"context"
	"net/http"

	"github.com/daleelbalady/storefront-gateway/api/middleware"
	"github.com/daleelbalady/storefront-gateway/internal/session"
	pkgerrors "github.com/daleelbalady/storefront-gateway/pkg/errors"
)

// loadSession resolves the caller's session state, creating a fresh one for
// first-time or expired sessions.
func loadSession(r *http.Request, store session.Store) (*session.State, error) {
	sessionID := middleware.SessionIDFromContext(r.Context())
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session middleware missing")
	}
	state, err := store.Get(r.Context(), sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load session")
	}
	if state == nil {
		state = session.NewState(sessionID)
	}
	return state, nil
}

func saveSession(ctx context.Context, store session.Store, state *session.State) error {
	state.Touch()
	if err := store.Save(ctx, state); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist session")
	}
	return nil
}

// adminToken returns the owner's raw bearer token for platform passthrough.
func adminToken(r *http.Request) (string, error) {
	token := middleware.AdminTokenFromContext(r.Context())
	if token == "" {
		return "", pkgerrors.New(pkgerrors.CodeUnauthorized, "admin context missing")
	}
	return token, nil
}
