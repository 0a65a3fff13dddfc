package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "jobads/internal/adapter/http"
	"jobads/internal/adapter/postgres"
	"jobads/internal/adapter/usecase"
	"jobads/internal/compiler"
	"jobads/internal/config"
	"jobads/internal/core/port"
	"jobads/internal/db"
	"jobads/internal/metrics"
	"jobads/internal/taxonomy"
)

// main is the entry point of the ad compilation service. It loads
// configuration, the taxonomy tables and (optionally) the audit database,
// then serves the HTTP API. SIGHUP reloads the taxonomy; SIGINT and SIGTERM
// shut the server down gracefully.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	m := metrics.New()

	store, err := taxonomy.NewStore(taxonomy.Source(cfg.Taxonomy.Dir), logger)
	if err != nil {
		logger.Error("taxonomy load error", slog.Any("error", err))
		return
	}
	logger.Info("taxonomy loaded",
		slog.String("version", store.Load().Version()),
		slog.String("dir", cfg.Taxonomy.Dir))

	if cfg.Taxonomy.Watch && cfg.Taxonomy.Dir != "" {
		w, err := taxonomy.NewWatcher(store, cfg.Taxonomy.Dir, logger)
		if err != nil {
			logger.Error("taxonomy watcher error", slog.Any("error", err))
			return
		}
		w.OnReload(m.ObserveReload)
		w.Start(ctx)
		defer func() {
			cancel()
			w.Wait()
		}()
	}

	var repo port.CompilationRepository
	if cfg.Psql.Audit {
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
			logger.Info("migrations applied successfully")
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()
		repo = postgres.NewCompilationRepository(pool)
	}

	engine := compiler.NewEngine(store, logger, compiler.WithConcurrency(cfg.Engine.Concurrency))
	svc := usecase.NewCompileUseCase(engine, repo, cfg.Platforms(), m, logger)

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-hup:
				// failures are logged by the store and counted by the use case
				_, _ = svc.ReloadTaxonomy(ctx)
			}
		}
	}()

	handler := httpadapter.NewHandler(svc, logger, m)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
