package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-scheduler/internal/audit"
	"github.com/BruksfildServices01/service-scheduler/internal/backup"
	"github.com/BruksfildServices01/service-scheduler/internal/cache"
	"github.com/BruksfildServices01/service-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/service-scheduler/internal/db"
	"github.com/BruksfildServices01/service-scheduler/internal/migration"
	"github.com/BruksfildServices01/service-scheduler/internal/routes"
	"github.com/BruksfildServices01/service-scheduler/internal/schema"
	"github.com/BruksfildServices01/service-scheduler/internal/timezone"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg := config.Load()
	ctx := context.Background()

	if !timezone.IsValid(cfg.Timezone) {
		logger.Warn("unknown timezone, using default", "timezone", cfg.Timezone, "default", timezone.DefaultTimezone)
		cfg.Timezone = timezone.DefaultTimezone
	}

	// ======================================================
	// STORE + MIGRATIONS
	// ======================================================
	sqlDB, err := dbpkg.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

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
	if _, err := engine.Run(ctx); err != nil {
		return err
	}

	registry := schema.Current()
	if err := schema.Verify(ctx, sqlDB, registry); err != nil {
		return err
	}

	gdb, err := dbpkg.NewGorm(sqlDB)
	if err != nil {
		return err
	}

	// ======================================================
	// SUPPORTING INFRA
	// ======================================================
	var c cache.Cache = cache.Nop{}
	if cfg.CacheEnabled() {
		rc, err := cache.NewRedis(ctx, cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			logger.Warn("cache disabled", "error", err)
		} else {
			defer rc.Close()
			c = rc
		}
	}

	dispatcher := audit.NewDispatcher(audit.New(logger))
	defer dispatcher.Close()

	// ======================================================
	// HTTP
	// ======================================================
	r := gin.Default()
	routes.RegisterRoutes(r, routes.Deps{
		DB:         gdb,
		Config:     cfg,
		Registry:   registry,
		Clock:      timezone.NewClock(cfg.Timezone),
		Cache:      c,
		Audit:      dispatcher,
		Migrations: engine,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
