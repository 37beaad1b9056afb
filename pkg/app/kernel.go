package app

import (
	"context"
	"net/http"
	"time"

	"github.com/shashiranjanraj/kashvi-products/pkg/metrics"
	"github.com/shashiranjanraj/kashvi-products/pkg/middleware"
	"github.com/shashiranjanraj/kashvi-products/pkg/reqid"
	"github.com/shashiranjanraj/kashvi-products/pkg/response"
	"github.com/shashiranjanraj/kashvi-products/pkg/router"
)

// Handler builds the router: global middleware, /metrics, /healthz, then
// every route callback.
func (a *Application) Handler() http.Handler {
	return a.router().Handler()
}

func (a *Application) router() *router.Router {
	r := router.New()

	// outermost first: metrics sees total latency, recovery wraps everything
	// that can panic, the request id exists before anything logs
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))

	r.HandleFunc("/metrics", metrics.Handler())
	r.Get("/healthz", "health", a.healthz)

	for _, fn := range a.routesFns {
		fn(r)
	}
	return r
}

func (a *Application) healthz(w http.ResponseWriter, r *http.Request) {
	if a.health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := a.health(ctx); err != nil {
			response.JSON(w, http.StatusServiceUnavailable, response.Body{"status": "unavailable"})
			return
		}
	}
	response.JSON(w, http.StatusOK, response.Body{"status": "ok"})
}
