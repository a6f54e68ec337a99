package migration

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Hook runs after the pending set is known and before the first unit is
// applied. A hook error aborts the run.
type Hook func(ctx context.Context, pending []Unit) error

type Option func(*Engine)

func WithApp(app string) Option {
	return func(e *Engine) { e.app = app }
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithTimeout bounds a whole Run or Downgrade.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) { e.timeout = d }
}

func WithBeforeApply(h Hook) Option {
	return func(e *Engine) { e.hooks = append(e.hooks, h) }
}

// Engine brings the store up to the last released unit. It must have
// exclusive use of the store while running.
type Engine struct {
	db      *sql.DB
	units   []Unit
	app     string
	timeout time.Duration
	hooks   []Hook
	logger  *slog.Logger

	mu sync.Mutex
}

// NewEngine validates that units are unique and in ascending version order.
func NewEngine(db *sql.DB, units []Unit, opts ...Option) (*Engine, error) {
	if err := checkOrder(units); err != nil {
		return nil, err
	}

	e := &Engine{
		db:     db,
		units:  append([]Unit(nil), units...),
		app:    DefaultApp,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *Engine) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.timeout > 0 {
		return context.WithTimeout(ctx, e.timeout)
	}
	return context.WithCancel(ctx)
}

// Applied returns the ledger rows of the engine's app in insertion order.
func (e *Engine) Applied(ctx context.Context) ([]LedgerEntry, error) {
	return readLedger(ctx, e.db, e.app)
}

// AppliedVersions returns just the version tokens of Applied.
func (e *Engine) AppliedVersions(ctx context.Context) ([]string, error) {
	entries, err := e.Applied(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(entries))
	for i, entry := range entries {
		out[i] = entry.Version
	}
	return out, nil
}

// Pending returns the units not yet in the ledger, in the order they will run.
func (e *Engine) Pending(ctx context.Context) ([]Unit, error) {
	entries, err := e.Applied(ctx)
	if err != nil {
		return nil, err
	}
	return e.pending(entries)
}

func (e *Engine) pending(entries []LedgerEntry) ([]Unit, error) {
	applied := make(map[string]bool, len(entries))
	highest := ""
	for _, entry := range entries {
		applied[entry.Version] = true
		if highest == "" || CompareVersions(entry.Version, highest) > 0 {
			highest = entry.Version
		}
	}

	var out []Unit
	for _, u := range e.units {
		if applied[u.Version] {
			continue
		}
		if highest != "" && CompareVersions(u.Version, highest) < 0 {
			return nil, fmt.Errorf("%w: %s is pending but %s is applied", ErrOutOfOrder, u.Version, highest)
		}
		out = append(out, u)
	}
	return out, nil
}

// Run applies every pending unit in ascending order and returns the versions
// it applied. It stops at the first failing unit; that unit leaves neither
// schema changes nor a ledger row behind.
func (e *Engine) Run(ctx context.Context) ([]string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	pending, err := e.Pending(ctx)
	if err != nil {
		return nil, err
	}
	if len(pending) == 0 {
		e.logger.Info("schema up to date", "app", e.app)
		return nil, nil
	}

	for _, h := range e.hooks {
		if err := h(ctx, pending); err != nil {
			return nil, fmt.Errorf("before migrate: %w", err)
		}
	}

	var applied []string
	err = e.withConn(ctx, func(conn *sql.Conn) error {
		if err := ensureLedger(ctx, conn); err != nil {
			return err
		}
		for _, u := range pending {
			e.logger.Info("applying migration", "app", e.app, "version", u.Version)

			done, err := e.apply(ctx, conn, u)
			if err != nil {
				return &Error{Version: u.Version, Err: err}
			}
			if !done {
				e.logger.Warn("migration already recorded, skipping", "app", e.app, "version", u.Version)
				continue
			}
			applied = append(applied, u.Version)
			e.logger.Info("migration applied", "app", e.app, "version", u.Version)
		}
		return nil
	})
	return applied, err
}

// withConn pins one connection with foreign key enforcement off, as table
// rebuilds require, and restores enforcement before releasing it.
func (e *Engine) withConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := e.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "PRAGMA foreign_keys=OFF"); err != nil {
		return fmt.Errorf("disable foreign keys: %w", err)
	}
	defer func() {
		if _, err := conn.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
			e.logger.Error("re-enable foreign keys", "error", err)
		}
	}()

	return fn(conn)
}

func (e *Engine) apply(ctx context.Context, conn *sql.Conn, u Unit) (bool, error) {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	recorded, err := isRecorded(ctx, tx, e.app, u.Version)
	if err != nil {
		return false, err
	}
	if recorded {
		return false, nil
	}

	if err := execAll(ctx, tx, u.Upgrade); err != nil {
		return false, err
	}
	if err := foreignKeyCheck(ctx, tx); err != nil {
		return false, err
	}
	if err := record(ctx, tx, e.app, u.Version); err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}
	return true, nil
}

func execAll(ctx context.Context, tx *sql.Tx, stmts []string) error {
	for i, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("statement %d: %w", i+1, err)
		}
	}
	return nil
}

// Downgrade runs the downgrade script of the most recently applied version
// and removes its ledger row so a later Run can apply it again. It is only
// ever invoked by operator tooling.
func (e *Engine) Downgrade(ctx context.Context, version string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	var unit *Unit
	for i := range e.units {
		if e.units[i].Version == version {
			unit = &e.units[i]
			break
		}
	}
	if unit == nil {
		return fmt.Errorf("%w: %s", ErrUnknownVersion, version)
	}
	if len(unit.Downgrade) == 0 {
		return fmt.Errorf("%w: %s", ErrNoDowngrade, version)
	}

	entries, err := e.Applied(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 || !containsVersion(entries, version) {
		return fmt.Errorf("%w: %s", ErrNotApplied, version)
	}
	for _, entry := range entries {
		if CompareVersions(entry.Version, version) > 0 {
			return fmt.Errorf("%w: %s is applied after %s", ErrNotLatest, entry.Version, version)
		}
	}

	e.logger.Info("downgrading migration", "app", e.app, "version", version)

	return e.withConn(ctx, func(conn *sql.Conn) error {
		tx, err := conn.BeginTx(ctx, nil)
		if err != nil {
			return &Error{Version: version, Err: fmt.Errorf("begin: %w", err)}
		}
		defer tx.Rollback()

		if err := execAll(ctx, tx, unit.Downgrade); err != nil {
			return &Error{Version: version, Err: err}
		}
		if err := foreignKeyCheck(ctx, tx); err != nil {
			return &Error{Version: version, Err: err}
		}
		if err := unrecord(ctx, tx, e.app, version); err != nil {
			return &Error{Version: version, Err: err}
		}
		if err := tx.Commit(); err != nil {
			return &Error{Version: version, Err: fmt.Errorf("commit: %w", err)}
		}
		return nil
	})
}

func containsVersion(entries []LedgerEntry, version string) bool {
	for _, entry := range entries {
		if entry.Version == version {
			return true
		}
	}
	return false
}
