package seeders_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/kashvi-products/app/models"
	"github.com/shashiranjanraj/kashvi-products/database/seeders"
	"github.com/shashiranjanraj/kashvi-products/pkg/database"
)

func TestSeedIsRepeatable(t *testing.T) {
	db, err := database.Open("sqlite", filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))

	ctx := context.Background()
	var out bytes.Buffer
	require.NoError(t, seeders.RunAll(ctx, db, &out))
	require.NoError(t, seeders.RunAll(ctx, db, &out))
	assert.Contains(t, out.String(), "Running seeder: products")

	var products []models.Product
	require.NoError(t, db.Order("id").Find(&products).Error)
	require.Len(t, products, 2)
	assert.Equal(t, "Mango Sagoo", products[0].Name)
	assert.Equal(t, int64(25000), products[0].Price)
	assert.True(t, products[0].IsPromo)
	assert.Equal(t, "Nasi Kuning", products[1].Name)
	assert.False(t, products[1].IsPromo)
}
