package api

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/angelmondragon/shopfront/api/routes"
	"github.com/angelmondragon/shopfront/internal/catalog"
	"github.com/angelmondragon/shopfront/pkg/config"
	"github.com/angelmondragon/shopfront/pkg/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 60 * time.Second
)

// NewServer returns the catalog stub's HTTP server listening on the
// configured stub port.
func NewServer(cfg *config.Config, logg *logger.Logger, source catalog.ProductSource, gatherer prometheus.Gatherer) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.Stub.Port,
		Handler:           routes.NewRouter(cfg, logg, source, gatherer),
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}
}
