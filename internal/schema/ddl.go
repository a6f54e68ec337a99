package schema

import (
	"fmt"
	"strings"
)

func quote(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func quoteAll(names []string) string {
	q := make([]string, len(names))
	for i, n := range names {
		q[i] = quote(n)
	}
	return strings.Join(q, ", ")
}

// ColumnSQL renders a single column definition.
func ColumnSQL(f Field) string {
	if f.PrimaryKey {
		return quote(f.Column) + " INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL"
	}

	var b strings.Builder
	b.WriteString(quote(f.Column))
	b.WriteString(" ")
	b.WriteString(f.Type.SQLType(f.Size))
	if !f.Nullable {
		b.WriteString(" NOT NULL")
	}
	if f.Unique {
		b.WriteString(" UNIQUE")
	}
	if f.Default != "" {
		b.WriteString(" DEFAULT ")
		b.WriteString(f.Default)
	}
	if f.Ref != nil {
		table := f.Ref.Table
		if table == "" {
			table = f.Ref.Entity
		}
		fmt.Fprintf(&b, " REFERENCES %s (\"id\") ON DELETE %s", quote(table), f.Ref.OnDelete)
	}
	return b.String()
}

// CreateTableSQL renders the CREATE TABLE statement for e under the given
// table name. ifNotExists adds the create-if-absent guard.
func CreateTableSQL(e Entity, table string, ifNotExists bool) string {
	lines := make([]string, 0, len(e.Fields)+len(e.Uniques))
	for _, f := range e.Fields {
		lines = append(lines, "    "+ColumnSQL(f))
	}
	for _, u := range e.Uniques {
		lines = append(lines, fmt.Sprintf("    CONSTRAINT %s UNIQUE (%s)", quote(u.Name), quoteAll(u.Columns)))
	}

	guard := ""
	if ifNotExists {
		guard = "IF NOT EXISTS "
	}
	return fmt.Sprintf("CREATE TABLE %s%s (\n%s\n)", guard, quote(table), strings.Join(lines, ",\n"))
}

// CreateIndexSQL renders the secondary indexes of e.
func CreateIndexSQL(e Entity) []string {
	out := make([]string, 0, len(e.Indexes))
	for _, idx := range e.Indexes {
		out = append(out, fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s)",
			quote(idx.Name), quote(e.Table), quoteAll(idx.Columns)))
	}
	return out
}

// DDL renders every entity of the registry as create-if-absent statements.
func (r *Registry) DDL() []string {
	var out []string
	for _, e := range r.entities {
		out = append(out, CreateTableSQL(e, e.Table, true))
		out = append(out, CreateIndexSQL(e)...)
	}
	return out
}

// ShadowTable is the name used for the intermediate table of a rebuild.
func ShadowTable(table string) string {
	return "new_" + table
}

// Rebuild generates the create-copy-drop-rename script that changes the
// column set of to.Table from fromColumns to the columns of to. Columns of to
// are filled from exprs when given, otherwise from the same-named source
// column; source columns not in to are discarded. The statements must run
// inside one transaction with foreign key enforcement off.
func Rebuild(to Entity, fromColumns []string, exprs map[string]string) ([]string, error) {
	have := make(map[string]bool, len(fromColumns))
	for _, c := range fromColumns {
		have[c] = true
	}

	var dst, src []string
	for _, f := range to.Fields {
		if expr, ok := exprs[f.Column]; ok {
			dst = append(dst, quote(f.Column))
			src = append(src, expr)
			continue
		}
		if have[f.Column] {
			dst = append(dst, quote(f.Column))
			src = append(src, quote(f.Column))
			continue
		}
		if f.Required() {
			return nil, fmt.Errorf("schema: rebuild %s: new column %q has no source and no default", to.Table, f.Column)
		}
	}
	if len(dst) == 0 {
		return nil, fmt.Errorf("schema: rebuild %s: no columns to copy", to.Table)
	}

	shadow := ShadowTable(to.Table)
	stmts := []string{
		CreateTableSQL(to, shadow, false),
		fmt.Sprintf("INSERT INTO %s (%s)\nSELECT %s FROM %s", quote(shadow), strings.Join(dst, ", "), strings.Join(src, ", "), quote(to.Table)),
		fmt.Sprintf("DROP TABLE %s", quote(to.Table)),
		fmt.Sprintf("ALTER TABLE %s RENAME TO %s", quote(shadow), quote(to.Table)),
	}
	return append(stmts, CreateIndexSQL(to)...), nil
}
