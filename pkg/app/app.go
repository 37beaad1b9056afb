// Package app assembles the HTTP handler, the gRPC server and the database
// commands from project-supplied pieces. It has no imports of models,
// routes or services; cmd/server injects those:
//
//	app.New().
//	    Routes(func(r *router.Router) { routes.RegisterAPI(r, svc) }).
//	    Health(database.Ping).
//	    Serve(ctx)
package app

import (
	"context"

	"github.com/shashiranjanraj/kashvi-products/pkg/router"
)

// Application collects route callbacks and the readiness check.
type Application struct {
	routesFns []func(*router.Router)
	health    func(ctx context.Context) error
}

// New creates an empty Application.
func New() *Application {
	return &Application{}
}

// Routes registers a route callback, run in order when the handler is built.
func (a *Application) Routes(fn func(*router.Router)) *Application {
	a.routesFns = append(a.routesFns, fn)
	return a
}

// Health sets the readiness check behind GET /healthz and the gRPC health
// service. Without one both always report healthy.
func (a *Application) Health(check func(ctx context.Context) error) *Application {
	a.health = check
	return a
}
