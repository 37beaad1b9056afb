package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/kashvi-products/pkg/database"
)

func TestOpenSQLite(t *testing.T) {
	db, err := database.Open("sqlite", filepath.Join(t.TempDir(), "open.db"))
	require.NoError(t, err)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := database.Open("oracle", "whatever")
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}

func TestPingWithoutConnection(t *testing.T) {
	prev := database.DB
	database.DB = nil
	t.Cleanup(func() { database.DB = prev })

	assert.Error(t, database.Ping(context.Background()))
	assert.NoError(t, database.Close())
}
