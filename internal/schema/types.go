// Package schema is the registry of entities, fields and relationships that
// make up the scheduling store. Migration scripts are checked against it and
// the query layer consults it for legal joins and field limits.
package schema

import "fmt"

// FieldType is the semantic type of a column.
type FieldType int

const (
	Integer FieldType = iota
	Text
	FreeText
	Date
	TimeOfDay
	Timestamp
	Status
	JSON
)

// SQLType renders the declared column type.
func (t FieldType) SQLType(size int) string {
	switch t {
	case Integer:
		return "INT"
	case Text, Status:
		return fmt.Sprintf("VARCHAR(%d)", size)
	case FreeText:
		return "TEXT"
	case Date:
		return "DATE"
	case TimeOfDay:
		return "TIME"
	case Timestamp:
		return "TIMESTAMP"
	case JSON:
		return "JSON"
	}
	return "TEXT"
}

// DeletePolicy is what happens to dependent rows when the referenced row goes away.
type DeletePolicy int

const (
	NoAction DeletePolicy = iota
	Cascade
	SetNull
)

func (p DeletePolicy) String() string {
	switch p {
	case Cascade:
		return "CASCADE"
	case SetNull:
		return "SET NULL"
	}
	return "NO ACTION"
}

// Reference marks a field as a foreign key to another entity's id.
type Reference struct {
	Entity   string
	Table    string
	OnDelete DeletePolicy
}

type Field struct {
	Column     string
	Type       FieldType
	Size       int
	Nullable   bool
	Unique     bool
	PrimaryKey bool
	Default    string
	Values     []string
	Ref        *Reference
}

// Required reports whether callers must supply a value on insert.
func (f Field) Required() bool {
	return !f.Nullable && !f.PrimaryKey && f.Default == ""
}

type Index struct {
	Name    string
	Columns []string
}

type Unique struct {
	Name    string
	Columns []string
}

type Entity struct {
	Name    string
	Table   string
	Fields  []Field
	Indexes []Index
	Uniques []Unique
}

// Field looks up a field by column name.
func (e Entity) Field(column string) (Field, bool) {
	for _, f := range e.Fields {
		if f.Column == column {
			return f, true
		}
	}
	return Field{}, false
}

// Columns returns the column names in declaration order.
func (e Entity) Columns() []string {
	cols := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		cols = append(cols, f.Column)
	}
	return cols
}

// Cardinality of a relationship seen from the referenced side.
type Cardinality int

const (
	OneToMany Cardinality = iota
	ManyToManyCardinality
)

// Relationship links a referenced entity (One) to its dependents (Many).
// For many-to-many relationships Through names the junction entity and
// Column/ThroughColumn are the junction's two foreign keys.
type Relationship struct {
	One           string
	Many          string
	Cardinality   Cardinality
	Column        string
	Through       string
	ThroughColumn string
	OnDelete      DeletePolicy
}

// ManyToMany declares a junction between two entities.
type ManyToMany struct {
	Left    string
	Right   string
	Through string
}
