package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/daleelbalady/storefront-gateway/api/controllers"
	"github.com/daleelbalady/storefront-gateway/api/middleware"
	checkoutsvc "github.com/daleelbalady/storefront-gateway/internal/checkout"
	"github.com/daleelbalady/storefront-gateway/internal/platform"
	"github.com/daleelbalady/storefront-gateway/internal/session"
	"github.com/daleelbalady/storefront-gateway/pkg/config"
	"github.com/daleelbalady/storefront-gateway/pkg/logger"
	"github.com/daleelbalady/storefront-gateway/pkg/metrics"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config          *config.Config
	Logger          *logger.Logger
	Sessions        session.Store
	Platform        *platform.Client
	Menu            *platform.MenuCache
	Checkout        *checkoutsvc.Service
	CheckoutMetrics *metrics.CheckoutMetrics
	Idempotency     middleware.IdempotencyStore
	MetricsHandler  http.Handler
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(d.Logger),
		middleware.RequestID(d.Logger),
		middleware.Logging(d.Logger),
		middleware.CORS(d.Config.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(d.Config))
		r.Get("/ready", controllers.HealthReady(d.Config, d.Platform, d.Logger))
	})

	metricsHandler := d.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	// Public storefront reads: no session required.
	r.Route("/api/v1/shops", func(r chi.Router) {
		r.Get("/{identifier}", controllers.ShopDetails(d.Menu, d.Logger))
		r.Get("/{shopID}/menu", controllers.MenuList(d.Menu, d.Logger))
		r.Get("/{shopID}/menu/{itemID}", controllers.MenuItemDetails(d.Menu, d.Logger))
		r.Get("/{shopID}/tables", controllers.TablesList(d.Platform, d.Logger))
	})

	// Session-scoped storefront state: the item draft, the cart and the
	// checkout wizard.
	r.Route("/api/v1/session", func(r chi.Router) {
		r.Use(middleware.Session(d.Config.Session, d.Config.App.IsProd(), d.Logger))

		r.Route("/draft", func(r chi.Router) {
			r.Post("/", controllers.DraftOpen(d.Sessions, d.Menu, d.Logger))
			r.Get("/", controllers.DraftGet(d.Sessions, d.Logger))
			r.Post("/toggle", controllers.DraftToggle(d.Sessions, d.Logger))
			r.Post("/quantity", controllers.DraftQuantity(d.Sessions, d.Logger))
			r.Put("/notes", controllers.DraftNotes(d.Sessions, d.Logger))
			r.Post("/commit", controllers.DraftCommit(d.Sessions, d.CheckoutMetrics, d.Logger))
			r.Delete("/", controllers.DraftClose(d.Sessions, d.Logger))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartGet(d.Sessions, d.Logger))
			r.Delete("/", controllers.CartClear(d.Sessions, d.Logger))
			r.Delete("/lines/{lineID}", controllers.CartLineRemove(d.Sessions, d.Logger))
			r.Post("/lines/{lineID}/quantity", controllers.CartLineQuantity(d.Sessions, d.Logger))
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/", controllers.CheckoutState(d.Sessions, d.Logger))
			r.Post("/next", controllers.CheckoutNext(d.Sessions, d.Logger))
			r.Post("/back", controllers.CheckoutBack(d.Sessions, d.Logger))
			r.Post("/method", controllers.CheckoutMethod(d.Sessions, d.Logger))
			r.Post("/table", controllers.CheckoutTable(d.Sessions, d.Platform, d.Logger))
			r.Put("/delivery", controllers.CheckoutDelivery(d.Sessions, d.Logger))
			r.With(middleware.Idempotency(d.Idempotency, d.Logger)).
				Post("/submit", controllers.CheckoutSubmit(d.Sessions, d.Checkout, d.Logger))
			r.Post("/reset", controllers.CheckoutReset(d.Sessions, d.Logger))
		})
	})

	// Owner proxy: authenticated against the platform-issued JWT, calls
	// forwarded with the raw bearer token.
	r.Route("/api/v1/admin", func(r chi.Router) {
		r.Use(middleware.AdminAuth(d.Config.AdminJWT, d.Logger))

		r.Route("/tables", func(r chi.Router) {
			r.Post("/", controllers.TableCreate(d.Platform, d.Logger))
			r.Put("/{tableID}/status", controllers.TableStatusUpdate(d.Platform, d.Logger))
			r.Delete("/{tableID}", controllers.TableDelete(d.Platform, d.Logger))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.AdminOrdersList(d.Platform, d.Logger))
			r.Get("/{orderID}", controllers.AdminOrderGet(d.Platform, d.Logger))
			r.Put("/{orderID}/status", controllers.AdminOrderStatus(d.Platform, d.Logger))
			r.Delete("/{orderID}", controllers.AdminOrderCancel(d.Platform, d.Logger))
		})
	})

	return r
}
