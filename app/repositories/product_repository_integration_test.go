//go:build integration

package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/shashiranjanraj/kashvi-products/app/models"
	"github.com/shashiranjanraj/kashvi-products/app/repositories"
	"github.com/shashiranjanraj/kashvi-products/pkg/database"
)

func TestProductRepositoryPostgres(t *testing.T) {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:17.5-alpine",
		postgres.WithDatabase("products"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Minute),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.Open("postgres", dsn)
	require.NoError(t, err)

	runContract(t, func(t *testing.T) repositories.ProductRepository {
		require.NoError(t, db.Migrator().DropTable(&models.Product{}))
		require.NoError(t, db.AutoMigrate(&models.Product{}))
		return repositories.NewProductRepository(db)
	})
}
