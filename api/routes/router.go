// Package routes assembles the shop API router.
package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/larekshop/storefront/api/controllers"
	ordercontrollers "github.com/larekshop/storefront/api/controllers/orders"
	productcontrollers "github.com/larekshop/storefront/api/controllers/products"
	"github.com/larekshop/storefront/api/middleware"
	"github.com/larekshop/storefront/internal/shop"
	"github.com/larekshop/storefront/pkg/config"
	"github.com/larekshop/storefront/pkg/logger"
	"github.com/larekshop/storefront/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP controllers.Pinger,
	httpMetrics *metrics.HTTPMetrics,
	metricsGatherer prometheus.Gatherer,
	shopService shop.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	if metricsGatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(metricsGatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/product", func(r chi.Router) {
			r.Get("/", productcontrollers.List(shopService, logg))
			r.Get("/{id}", productcontrollers.Get(shopService, logg))
		})
		r.Post("/order", ordercontrollers.Create(shopService, logg))
	})

	return r
}
