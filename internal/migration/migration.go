// Package migration applies the versioned schema history to the store and
// records every applied version in the ledger table.
package migration

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultApp is the schema group recorded in the ledger's app column.
const DefaultApp = "models"

var (
	ErrDuplicateVersion = errors.New("migration: duplicate version")
	ErrUnordered        = errors.New("migration: units are not in ascending version order")
	ErrOutOfOrder       = errors.New("migration: pending version is older than an applied version")
	ErrUnknownVersion   = errors.New("migration: unknown version")
	ErrNotApplied       = errors.New("migration: version is not applied")
	ErrNotLatest        = errors.New("migration: only the latest applied version can be downgraded")
	ErrNoDowngrade      = errors.New("migration: version has no downgrade script")
)

// Unit is one released schema change. Upgrade statements run in order inside
// a single transaction. A released unit must never be edited.
type Unit struct {
	Version   string
	Upgrade   []string
	Downgrade []string
}

// Error reports the version whose script failed.
type Error struct {
	Version string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("migration %s: %v", e.Version, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CompareVersions orders version tokens of the form "<n>_<rest>" by their
// numeric prefix, then by the remainder. Tokens without a numeric prefix are
// compared as plain strings.
func CompareVersions(a, b string) int {
	an, arest, aok := splitVersion(a)
	bn, brest, bok := splitVersion(b)
	if aok && bok {
		if c := cmp.Compare(an, bn); c != 0 {
			return c
		}
		return strings.Compare(arest, brest)
	}
	return strings.Compare(a, b)
}

func splitVersion(v string) (uint64, string, bool) {
	head, rest, _ := strings.Cut(v, "_")
	n, err := strconv.ParseUint(head, 10, 64)
	if err != nil {
		return 0, "", false
	}
	return n, rest, true
}

func checkOrder(units []Unit) error {
	for i := 1; i < len(units); i++ {
		switch c := CompareVersions(units[i-1].Version, units[i].Version); {
		case c == 0:
			return fmt.Errorf("%w: %s", ErrDuplicateVersion, units[i].Version)
		case c > 0:
			return fmt.Errorf("%w: %s after %s", ErrUnordered, units[i].Version, units[i-1].Version)
		}
	}
	for _, u := range units {
		if strings.TrimSpace(u.Version) == "" {
			return fmt.Errorf("%w: empty version", ErrUnknownVersion)
		}
	}
	return nil
}
