package schema

import (
	"fmt"
	"sort"
)

type Registry struct {
	entities []Entity
	byName   map[string]int
	rels     []Relationship
}

// New builds a registry and derives its relationships from field references.
func New(entities []Entity, junctions ...ManyToMany) (*Registry, error) {
	r := &Registry{
		entities: entities,
		byName:   make(map[string]int, len(entities)),
	}

	for i, e := range entities {
		if _, dup := r.byName[e.Name]; dup {
			return nil, fmt.Errorf("schema: duplicate entity %q", e.Name)
		}
		r.byName[e.Name] = i
	}

	for _, e := range entities {
		for _, f := range e.Fields {
			if f.Ref == nil {
				continue
			}
			if _, ok := r.byName[f.Ref.Entity]; !ok {
				return nil, fmt.Errorf("schema: %s.%s references unknown entity %q", e.Name, f.Column, f.Ref.Entity)
			}
			if f.Ref.OnDelete == SetNull && !f.Nullable {
				return nil, fmt.Errorf("schema: %s.%s is SET NULL but not nullable", e.Name, f.Column)
			}
			r.rels = append(r.rels, Relationship{
				One:         f.Ref.Entity,
				Many:        e.Name,
				Cardinality: OneToMany,
				Column:      f.Column,
				OnDelete:    f.Ref.OnDelete,
			})
		}
	}

	for _, j := range junctions {
		through, ok := r.Entity(j.Through)
		if !ok {
			return nil, fmt.Errorf("schema: unknown junction %q", j.Through)
		}
		left := referenceTo(through, j.Left)
		right := referenceTo(through, j.Right)
		if left == "" || right == "" {
			return nil, fmt.Errorf("schema: junction %q must reference %q and %q", j.Through, j.Left, j.Right)
		}
		r.rels = append(r.rels,
			Relationship{One: j.Left, Many: j.Right, Cardinality: ManyToManyCardinality, Column: left, Through: j.Through, ThroughColumn: right, OnDelete: Cascade},
			Relationship{One: j.Right, Many: j.Left, Cardinality: ManyToManyCardinality, Column: right, Through: j.Through, ThroughColumn: left, OnDelete: Cascade},
		)
	}

	return r, nil
}

func referenceTo(e Entity, target string) string {
	for _, f := range e.Fields {
		if f.Ref != nil && f.Ref.Entity == target {
			return f.Column
		}
	}
	return ""
}

func (r *Registry) Entities() []Entity {
	out := make([]Entity, len(r.entities))
	copy(out, r.entities)
	return out
}

func (r *Registry) Entity(name string) (Entity, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Entity{}, false
	}
	return r.entities[i], true
}

func (r *Registry) MustEntity(name string) Entity {
	e, ok := r.Entity(name)
	if !ok {
		panic(fmt.Sprintf("schema: unknown entity %q", name))
	}
	return e
}

func (r *Registry) Relationships() []Relationship {
	out := make([]Relationship, len(r.rels))
	copy(out, r.rels)
	return out
}

// Relation returns the relationship that makes a join from one to many legal.
func (r *Registry) Relation(one, many string) (Relationship, bool) {
	for _, rel := range r.rels {
		if rel.One == one && rel.Many == many {
			return rel, true
		}
	}
	return Relationship{}, false
}

// Junction returns the many-to-many relationship from one to many. Column
// is the junction column naming one, ThroughColumn the one naming many.
func (r *Registry) Junction(one, many string) (Relationship, bool) {
	for _, rel := range r.rels {
		if rel.One == one && rel.Many == many && rel.Cardinality == ManyToManyCardinality {
			return rel, true
		}
	}
	return Relationship{}, false
}

// Dependents lists the relationships affected when a row of entity is deleted,
// ordered by dependent entity name.
func (r *Registry) Dependents(entity string) []Relationship {
	var out []Relationship
	for _, rel := range r.rels {
		if rel.One != entity {
			continue
		}
		if rel.Cardinality == ManyToManyCardinality {
			out = append(out, Relationship{
				One: entity, Many: rel.Through, Cardinality: OneToMany,
				Column: rel.Column, OnDelete: rel.OnDelete,
			})
			continue
		}
		out = append(out, rel)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Many < out[j].Many })
	return dedupe(out)
}

func dedupe(rels []Relationship) []Relationship {
	seen := make(map[string]bool, len(rels))
	out := rels[:0]
	for _, rel := range rels {
		key := rel.Many + "." + rel.Column
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, rel)
	}
	return out
}
