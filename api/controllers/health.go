package controllers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/multierr"

	"github.com/Walid-EM/restaurantsitev0-sub000/api/responses"
	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/config"
	pkgerrors "github.com/Walid-EM/restaurantsitev0-sub000/pkg/errors"
	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/logger"
)

const envHeader = "X-Resto-Env"

// Pinger is the readiness surface a dependency exposes.
type Pinger interface {
	Ping(context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports 200 only when every wired dependency answers a
// ping. A nil pinger means the dependency is not configured and is
// skipped rather than failed.
func HealthReady(cfg *config.Config, logg *logger.Logger, deps map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		checks := map[string]string{}
		var combined error
		for name, dep := range deps {
			if dep == nil {
				checks[name] = "skipped"
				continue
			}
			if err := dep.Ping(ctx); err != nil {
				checks[name] = "down"
				combined = multierr.Append(combined, err)
				continue
			}
			checks[name] = "up"
		}

		if combined != nil {
			err := pkgerrors.Wrap(pkgerrors.CodeDependency, combined, "dependency not ready").
				WithDetails(checks)
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
