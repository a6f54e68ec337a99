package migration

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/BruksfildServices01/service-scheduler/internal/schema"
)

// LedgerTable keeps the row shape used by existing deployments.
const LedgerTable = "aerich"

const emptyContent = "{}"

// LedgerEntry is one applied migration.
type LedgerEntry struct {
	ID      int64  `json:"id"`
	Version string `json:"version"`
	App     string `json:"app"`
	Content string `json:"content"`
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func ledgerDDL() string {
	e := schema.Current().MustEntity(schema.EntityLedger)
	return schema.CreateTableSQL(e, LedgerTable, true)
}

func ensureLedger(ctx context.Context, ex execer) error {
	if _, err := ex.ExecContext(ctx, ledgerDDL()); err != nil {
		return fmt.Errorf("create ledger: %w", err)
	}
	return nil
}

func ledgerExists(ctx context.Context, q queryer) (bool, error) {
	var n int
	err := q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, LedgerTable).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("look up ledger: %w", err)
	}
	return n > 0, nil
}

func readLedger(ctx context.Context, q queryer, app string) ([]LedgerEntry, error) {
	ok, err := ledgerExists(ctx, q)
	if err != nil || !ok {
		return nil, err
	}

	rows, err := q.QueryContext(ctx,
		`SELECT "id", "version", "app", "content" FROM "aerich" WHERE "app" = ? ORDER BY "id"`, app)
	if err != nil {
		return nil, fmt.Errorf("query ledger: %w", err)
	}
	defer rows.Close()

	var out []LedgerEntry
	for rows.Next() {
		var e LedgerEntry
		if err := rows.Scan(&e.ID, &e.Version, &e.App, &e.Content); err != nil {
			return nil, fmt.Errorf("scan ledger: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func isRecorded(ctx context.Context, q queryer, app, version string) (bool, error) {
	var n int
	err := q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM "aerich" WHERE "app" = ? AND "version" = ?`, app, version).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check ledger: %w", err)
	}
	return n > 0, nil
}

func record(ctx context.Context, ex execer, app, version string) error {
	_, err := ex.ExecContext(ctx,
		`INSERT INTO "aerich" ("version", "app", "content") VALUES (?, ?, ?)`, version, app, emptyContent)
	if err != nil {
		return fmt.Errorf("record ledger: %w", err)
	}
	return nil
}

func unrecord(ctx context.Context, ex execer, app, version string) error {
	_, err := ex.ExecContext(ctx,
		`DELETE FROM "aerich" WHERE "app" = ? AND "version" = ?`, app, version)
	if err != nil {
		return fmt.Errorf("remove ledger row: %w", err)
	}
	return nil
}

func foreignKeyCheck(ctx context.Context, q queryer) error {
	rows, err := q.QueryContext(ctx, "PRAGMA foreign_key_check")
	if err != nil {
		return fmt.Errorf("foreign_key_check: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		var (
			table  string
			rowid  sql.NullInt64
			parent string
			fkid   int
		)
		if err := rows.Scan(&table, &rowid, &parent, &fkid); err != nil {
			return fmt.Errorf("scan foreign_key_check: %w", err)
		}
		return fmt.Errorf("foreign key violation: %s row %d references missing %s", table, rowid.Int64, parent)
	}
	return rows.Err()
}
