package schema

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"
)

// Querier is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Column is one row of PRAGMA table_info.
type Column struct {
	Name    string
	Type    string
	NotNull bool
	Default sql.NullString
	PK      bool
}

// Introspect reads the physical column set of table. A missing table yields
// no columns and no error.
func Introspect(ctx context.Context, q Querier, table string) ([]Column, error) {
	rows, err := q.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", quote(table)))
	if err != nil {
		return nil, fmt.Errorf("table_info %s: %w", table, err)
	}
	defer rows.Close()

	var cols []Column
	for rows.Next() {
		var (
			cid     int
			c       Column
			notNull int
			pk      int
		)
		if err := rows.Scan(&cid, &c.Name, &c.Type, &notNull, &c.Default, &pk); err != nil {
			return nil, fmt.Errorf("scan table_info %s: %w", table, err)
		}
		c.NotNull = notNull != 0
		c.PK = pk != 0
		cols = append(cols, c)
	}
	return cols, rows.Err()
}

// ColumnNames returns the names of cols in physical order.
func ColumnNames(cols []Column) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}

func indexNames(ctx context.Context, q Querier, table string) (map[string]bool, error) {
	rows, err := q.QueryContext(ctx, fmt.Sprintf("PRAGMA index_list(%s)", quote(table)))
	if err != nil {
		return nil, fmt.Errorf("index_list %s: %w", table, err)
	}
	defer rows.Close()

	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	out := make(map[string]bool)
	for rows.Next() {
		dest := make([]any, len(colTypes))
		var name string
		for i := range dest {
			if i == 1 {
				dest[i] = &name
				continue
			}
			dest[i] = new(any)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan index_list %s: %w", table, err)
		}
		out[name] = true
	}
	return out, rows.Err()
}

// indexColumns lists the columns an index covers in key order. Expression
// terms come back as "<expr>" so they never match a declared column.
func indexColumns(ctx context.Context, q Querier, index string) ([]string, error) {
	rows, err := q.QueryContext(ctx, fmt.Sprintf("PRAGMA index_info(%s)", quote(index)))
	if err != nil {
		return nil, fmt.Errorf("index_info %s: %w", index, err)
	}
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var (
			seq, cid int
			name     sql.NullString
		)
		if err := rows.Scan(&seq, &cid, &name); err != nil {
			return nil, fmt.Errorf("scan index_info %s: %w", index, err)
		}
		if !name.Valid {
			cols = append(cols, "<expr>")
			continue
		}
		cols = append(cols, name.String)
	}
	return cols, rows.Err()
}

// sameType reports whether a physical column type satisfies the declared one.
// JSON columns are stored as text, so a TEXT column is accepted for them.
func sameType(f Field, physical string) bool {
	want := f.Type.SQLType(f.Size)
	if f.PrimaryKey {
		want = "INTEGER"
	}
	if strings.EqualFold(physical, want) {
		return true
	}
	return f.Type == JSON && strings.EqualFold(physical, "TEXT")
}

// DriftError lists every difference between the registry and the store.
type DriftError struct {
	Problems []string
}

func (e *DriftError) Error() string {
	return "schema drift: " + strings.Join(e.Problems, "; ")
}

// Verify compares the physical store against the registry.
func Verify(ctx context.Context, q Querier, r *Registry) error {
	var problems []string

	for _, e := range r.entities {
		cols, err := Introspect(ctx, q, e.Table)
		if err != nil {
			return err
		}
		if len(cols) == 0 {
			problems = append(problems, fmt.Sprintf("table %s is missing", e.Table))
			continue
		}

		physical := make(map[string]Column, len(cols))
		for _, c := range cols {
			physical[c.Name] = c
		}

		for _, f := range e.Fields {
			c, ok := physical[f.Column]
			if !ok {
				problems = append(problems, fmt.Sprintf("%s.%s is missing", e.Table, f.Column))
				continue
			}
			delete(physical, f.Column)

			if !sameType(f, c.Type) {
				want := f.Type.SQLType(f.Size)
				if f.PrimaryKey {
					want = "INTEGER"
				}
				problems = append(problems, fmt.Sprintf("%s.%s has type %s, want %s", e.Table, f.Column, c.Type, want))
			}
			if c.NotNull == f.Nullable && !f.PrimaryKey {
				problems = append(problems, fmt.Sprintf("%s.%s nullability differs", e.Table, f.Column))
			}
		}
		for _, c := range cols {
			if _, extra := physical[c.Name]; extra {
				problems = append(problems, fmt.Sprintf("%s.%s is not in the registry", e.Table, c.Name))
			}
		}

		if len(e.Indexes) > 0 {
			idx, err := indexNames(ctx, q, e.Table)
			if err != nil {
				return err
			}
			for _, want := range e.Indexes {
				if !idx[want.Name] {
					problems = append(problems, fmt.Sprintf("index %s on %s is missing", want.Name, e.Table))
					continue
				}
				got, err := indexColumns(ctx, q, want.Name)
				if err != nil {
					return err
				}
				if !slices.Equal(got, want.Columns) {
					problems = append(problems, fmt.Sprintf("index %s on %s covers %v, want %v", want.Name, e.Table, got, want.Columns))
				}
			}
		}
	}

	if len(problems) > 0 {
		return &DriftError{Problems: problems}
	}
	return nil
}
