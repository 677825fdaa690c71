package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/database"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestStore opens a seeded document store over in-memory storage.
func setupTestStore(t *testing.T) (*store.Store, *database.KeyValue) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&database.Entry{})
	require.NoError(t, err)

	kv := database.NewKeyValue(db)
	st, err := store.Open(kv)
	require.NoError(t, err)

	return st, kv
}
