package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/service-scheduler/internal/migration"
)

func migrate(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(args, &out)
	return out.String(), err
}

func TestMigrateCommands(t *testing.T) {
	t.Setenv("BACKUP_S3_BUCKET", "")
	db := filepath.Join(t.TempDir(), "programari.db")
	history := migration.History()

	out, err := migrate(t, "pending", "-db", db)
	require.NoError(t, err)
	assert.Equal(t, len(history), strings.Count(out, "\n"))

	out, err = migrate(t, "apply", "-db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "applied "+history[len(history)-1].Version)

	out, err = migrate(t, "apply", "-db", db)
	require.NoError(t, err)
	assert.Equal(t, "schema up to date\n", out)

	out, err = migrate(t, "status", "-db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Pending (0)")
	assert.Contains(t, out, history[0].Version)

	out, err = migrate(t, "plan", "-db", db, "-table", "Persoane")
	require.NoError(t, err)
	assert.Contains(t, out, `CREATE TABLE "new_Persoane"`)
	assert.Contains(t, out, `ALTER TABLE "new_Persoane" RENAME TO "Persoane"`)

	_, err = migrate(t, "plan", "-db", db, "-table", "Nope")
	assert.Error(t, err)

	latest := history[len(history)-1].Version
	out, err = migrate(t, "downgrade", "-db", db, "-version", latest)
	require.NoError(t, err)
	assert.Equal(t, "reverted "+latest+"\n", out)

	out, err = migrate(t, "pending", "-db", db)
	require.NoError(t, err)
	assert.Equal(t, latest+"\n", out)
}

func TestMigrateUsageErrors(t *testing.T) {
	db := filepath.Join(t.TempDir(), "programari.db")

	_, err := migrate(t)
	assert.Error(t, err)

	_, err = migrate(t, "frobnicate", "-db", db)
	assert.Error(t, err)

	_, err = migrate(t, "downgrade", "-db", db)
	assert.Error(t, err)
}
