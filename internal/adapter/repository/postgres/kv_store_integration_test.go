//go:build integration

package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// getDBConnectionString returns the connection string for the test database
func getDBConnectionString() string {
	if connStr := os.Getenv("DB_CONN_STR"); connStr != "" {
		return connStr
	}
	return "host=localhost port=5432 user=postgres password=postgres dbname=networth sslmode=disable"
}

func TestKeyValueStore_Postgres(t *testing.T) {
	ctx := context.Background()

	db, err := NewDB(getDBConnectionString())
	require.NoError(t, err)
	defer db.Close()

	store := NewKeyValueStore(db)

	// Unique key so reruns against the same database stay independent
	key := "test-" + uuid.NewString()
	defer db.ExecContext(ctx, `DELETE FROM kv_store WHERE name = $1`, key)

	_, found, err := store.Load(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Save(ctx, key, "[]"))
	require.NoError(t, store.Save(ctx, key, `[{"name":"Home"}]`))

	value, found, err := store.Load(ctx, key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"name":"Home"}]`, value)
}
