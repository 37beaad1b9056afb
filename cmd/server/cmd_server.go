package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/kashvi-products/app/repositories"
	"github.com/shashiranjanraj/kashvi-products/app/routes"
	"github.com/shashiranjanraj/kashvi-products/app/services"
	"github.com/shashiranjanraj/kashvi-products/pkg/app"
	"github.com/shashiranjanraj/kashvi-products/pkg/database"
	"github.com/shashiranjanraj/kashvi-products/pkg/logger"
	"github.com/shashiranjanraj/kashvi-products/pkg/router"
)

func application(svc *services.ProductService) *app.Application {
	return app.New().
		Routes(func(r *router.Router) { routes.RegisterAPI(r, svc) }).
		Health(database.Ping)
}

// products serve — HTTP + gRPC until SIGINT/SIGTERM.
var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"run", "start"},
	Short:   "Start the HTTP and gRPC servers",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		defer database.Close() //nolint:errcheck

		closeLogs, err := logger.Setup()
		if err != nil {
			return err
		}
		defer closeLogs()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		svc := services.NewProductService(repositories.NewProductRepository(database.DB))
		return application(svc).Serve(ctx)
	},
}

// products route:list — print every named route. No database needed.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return application(services.NewProductService(repositories.NewMemoryProductRepository())).
			WriteRoutes(cmd.OutOrStdout())
	},
}
