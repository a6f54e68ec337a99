package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/BruksfildServices01/service-scheduler/internal/backup"
	"github.com/BruksfildServices01/service-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/service-scheduler/internal/db"
	"github.com/BruksfildServices01/service-scheduler/internal/migration"
	"github.com/BruksfildServices01/service-scheduler/internal/schema"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	cfg := config.Load()

	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	dbPath := fs.String("db", cfg.DBPath, "path to the SQLite database file")
	version := fs.String("version", "", "version to downgrade (downgrade only)")
	table := fs.String("table", "", "physical table to plan a rebuild for (plan only)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), `Usage: migrate <subcommand> [options]

Subcommands:
  status     Show applied and pending migrations
  pending    List pending versions
  apply      Apply pending migrations
  downgrade  Revert the latest applied migration (-version)
  plan       Print the rebuild script that brings -table to its registry shape

Options:
`)
		fs.PrintDefaults()
	}

	if len(args) == 0 {
		fs.Usage()
		return fmt.Errorf("subcommand required: status, pending, apply, downgrade or plan")
	}
	subcmd := args[0]
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	sqlDB, err := dbpkg.Open(*dbPath)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	opts := []migration.Option{
		migration.WithLogger(logger),
		migration.WithTimeout(cfg.MigrationTimeout),
	}
	if cfg.BackupEnabled() {
		snap := backup.NewSnapshotter(sqlDB, backup.NewS3Client(cfg), cfg.BackupBucket, cfg.BackupPrefix, logger)
		opts = append(opts, migration.WithBeforeApply(snap.BeforeMigrate))
	}

	engine, err := migration.NewEngine(sqlDB, migration.History(), opts...)
	if err != nil {
		return err
	}

	ctx := context.Background()

	switch subcmd {
	case "status":
		return status(ctx, engine, out)

	case "pending":
		pending, err := engine.Pending(ctx)
		if err != nil {
			return err
		}
		for _, u := range pending {
			fmt.Fprintln(out, u.Version)
		}
		return nil

	case "apply":
		applied, err := engine.Run(ctx)
		if err != nil {
			return err
		}
		if len(applied) == 0 {
			fmt.Fprintln(out, "schema up to date")
			return nil
		}
		for _, v := range applied {
			fmt.Fprintf(out, "applied %s\n", v)
		}
		return nil

	case "downgrade":
		if *version == "" {
			return fmt.Errorf("downgrade requires -version")
		}
		if err := engine.Downgrade(ctx, *version); err != nil {
			return err
		}
		fmt.Fprintf(out, "reverted %s\n", *version)
		return nil

	case "plan":
		if *table == "" {
			return fmt.Errorf("plan requires -table")
		}
		return plan(ctx, sqlDB, *table, out)

	default:
		fs.Usage()
		return fmt.Errorf("unknown subcommand %q", subcmd)
	}
}

func status(ctx context.Context, engine *migration.Engine, out io.Writer) error {
	applied, err := engine.Applied(ctx)
	if err != nil {
		return err
	}
	pending, err := engine.Pending(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Applied (%d):\n", len(applied))
	for _, e := range applied {
		fmt.Fprintf(out, "  %-40s app=%s\n", e.Version, e.App)
	}
	fmt.Fprintf(out, "Pending (%d):\n", len(pending))
	for _, u := range pending {
		fmt.Fprintf(out, "  %s\n", u.Version)
	}
	return nil
}

func plan(ctx context.Context, q schema.Querier, table string, out io.Writer) error {
	var target *schema.Entity
	for _, e := range schema.Current().Entities() {
		if e.Table == table {
			target = &e
			break
		}
	}
	if target == nil {
		return fmt.Errorf("table %q is not in the registry", table)
	}

	cols, err := schema.Introspect(ctx, q, table)
	if err != nil {
		return err
	}
	if len(cols) == 0 {
		fmt.Fprintln(out, schema.CreateTableSQL(*target, table, true)+";")
		for _, stmt := range schema.CreateIndexSQL(*target) {
			fmt.Fprintln(out, stmt+";")
		}
		return nil
	}

	stmts, err := schema.Rebuild(*target, schema.ColumnNames(cols), nil)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, strings.Join(stmts, ";\n")+";")
	return nil
}
