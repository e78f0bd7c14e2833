package controllers

import (
	"context"
	"net/http"

	"github.com/daleelbalady/storefront-gateway/api/responses"
	"github.com/daleelbalady/storefront-gateway/pkg/config"
	pkgerrors "github.com/daleelbalady/storefront-gateway/pkg/errors"
	"github.com/daleelbalady/storefront-gateway/pkg/logger"
)

// PlatformPinger is the readiness slice of the platform client.
type PlatformPinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness; the gateway is not ready when the menu
// platform is unreachable.
func HealthReady(cfg *config.Config, platform PlatformPinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)
		if platform != nil {
			if err := platform.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "platform unreachable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
