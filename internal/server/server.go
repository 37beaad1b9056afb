// Package server owns the listen/serve/shutdown lifecycle of the HTTP and
// gRPC servers.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/shashiranjanraj/kashvi-products/config"
	"github.com/shashiranjanraj/kashvi-products/pkg/logger"
	productsgrpc "github.com/shashiranjanraj/kashvi-products/pkg/grpc"
)

// Start serves handler on APP_PORT and grpcSrv on GRPC_PORT. It returns when
// ctx is cancelled (after a graceful shutdown bounded by SHUTDOWN_TIMEOUT) or
// as soon as either server fails.
func Start(ctx context.Context, handler http.Handler, grpcSrv *grpc.Server) error {
	httpLis, err := net.Listen("tcp", ":"+config.AppPort())
	if err != nil {
		return fmt.Errorf("http: listen: %w", err)
	}
	grpcLis, err := net.Listen("tcp", ":"+config.GRPCPort())
	if err != nil {
		_ = httpLis.Close()
		return fmt.Errorf("grpc: listen: %w", err)
	}
	return Serve(ctx, httpLis, grpcLis, handler, grpcSrv)
}

// Serve is Start on listeners the caller already opened.
func Serve(ctx context.Context, httpLis, grpcLis net.Listener, handler http.Handler, grpcSrv *grpc.Server) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("HTTP server starting", "addr", httpLis.Addr().String(), "env", config.AppEnv())
		if err := srv.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http: serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("gRPC server starting", "addr", grpcLis.Addr().String())
		if err := grpcSrv.Serve(grpcLis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("grpc: serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		timeout := config.ShutdownTimeout()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		productsgrpc.Stop(grpcSrv, timeout)
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http: shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
