package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesDirectoryAndEnablesForeignKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "store.db")

	sqlDB, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	var fk int
	require.NoError(t, sqlDB.QueryRow("PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk)

	var mode string
	require.NoError(t, sqlDB.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestOpen_Memory(t *testing.T) {
	sqlDB, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	var fk int
	require.NoError(t, sqlDB.QueryRow("PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestConstraintClassification(t *testing.T) {
	sqlDB, err := Open(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	_, err = sqlDB.Exec(`
		CREATE TABLE parent (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT NOT NULL UNIQUE);
		CREATE TABLE child (id INTEGER PRIMARY KEY AUTOINCREMENT, parent_id INT NOT NULL REFERENCES parent (id));
	`)
	require.NoError(t, err)

	_, err = sqlDB.Exec(`INSERT INTO parent (name) VALUES ('a')`)
	require.NoError(t, err)

	_, err = sqlDB.Exec(`INSERT INTO parent (name) VALUES ('a')`)
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
	assert.False(t, IsForeignKeyViolation(err))

	_, err = sqlDB.Exec(`INSERT INTO child (parent_id) VALUES (42)`)
	require.Error(t, err)
	assert.True(t, IsForeignKeyViolation(err))
	assert.False(t, IsUniqueViolation(err))
}

func TestNewGorm(t *testing.T) {
	sqlDB, err := Open(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := NewGorm(sqlDB)
	require.NoError(t, err)

	var one int
	require.NoError(t, gdb.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}
