package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/lokoloapp/lokolo-backend/api/responses"
	"github.com/lokoloapp/lokolo-backend/pkg/config"
	pkgerrors "github.com/lokoloapp/lokolo-backend/pkg/errors"
	"github.com/lokoloapp/lokolo-backend/pkg/logger"
)

const readinessTimeout = 5 * time.Second

// HealthPinger is the dependency surface the readiness probe checks.
type HealthPinger interface {
	Ping(ctx context.Context) error
}

// HealthLive reports process liveness only.
func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Lokolo-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings every wired dependency and fails on the first one down.
func HealthReady(cfg *config.Config, logg *logger.Logger, deps map[string]HealthPinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Lokolo-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		checks := make(map[string]string, len(deps))
		for name, dep := range deps {
			if dep == nil {
				checks[name] = "skipped"
				continue
			}
			if err := dep.Ping(ctx); err != nil {
				if logg != nil {
					logg.Error(logg.WithField(ctx, "dependency", name), "health.ready.failed", err)
				}
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, name+" unavailable"))
				return
			}
			checks[name] = "ok"
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
