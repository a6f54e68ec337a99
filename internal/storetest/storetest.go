// Package storetest opens fully migrated stores for tests.
package storetest

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/service-scheduler/internal/db"
	"github.com/BruksfildServices01/service-scheduler/internal/migration"
)

type Store struct {
	SQL  *sql.DB
	Gorm *gorm.DB
}

// New returns a store in t.TempDir() with every released migration applied.
func New(t testing.TB) *Store {
	t.Helper()

	sqlDB, err := db.Open(filepath.Join(t.TempDir(), "programari.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	engine, err := migration.NewEngine(sqlDB, migration.History(),
		migration.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)
	_, err = engine.Run(context.Background())
	require.NoError(t, err)

	gdb, err := db.NewGorm(sqlDB)
	require.NoError(t, err)

	return &Store{SQL: sqlDB, Gorm: gdb}
}
