package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/shopfront/api/handlers"
	"github.com/angelmondragon/shopfront/api/middleware"
	"github.com/angelmondragon/shopfront/internal/catalog"
	"github.com/angelmondragon/shopfront/pkg/config"
	"github.com/angelmondragon/shopfront/pkg/logger"
)

// NewRouter wires the catalog stub. gatherer may be nil, in which case
// /metrics is not mounted.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	source catalog.ProductSource,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.Stub.AllowedOrigins),
	)

	r.Get("/healthz", handlers.Healthz(cfg, logg))

	path := cfg.Catalog.ProductsPath
	if path == "" {
		path = "/api/products"
	}
	r.Route(path, func(r chi.Router) {
		r.Get("/", handlers.ListProducts(source, logg))
		r.Get("/{productId}", handlers.GetProduct(source, logg))
	})

	if cfg.Stub.MetricsEnabled && gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return r
}
