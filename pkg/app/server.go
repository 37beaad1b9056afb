package app

import (
	"context"

	"github.com/shashiranjanraj/kashvi-products/internal/server"
	"github.com/shashiranjanraj/kashvi-products/pkg/grpc"
)

// Serve runs the HTTP and gRPC servers until ctx is cancelled or either
// server fails.
func (a *Application) Serve(ctx context.Context) error {
	return server.Start(ctx, a.Handler(), grpc.NewServer(a.health))
}
