package handlers

import (
	"net/http"

	"github.com/angelmondragon/shopfront/api/responses"
	"github.com/angelmondragon/shopfront/pkg/config"
	"github.com/angelmondragon/shopfront/pkg/logger"
)

const envHeader = "X-Shopfront-Env"

func Healthz(cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if logg != nil {
			ctx := logg.WithField(r.Context(), "env", cfg.App.Env)
			logg.Debug(ctx, "health.check")
		}

		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "ok"})
	}
}
