// Package app wires configuration, storage, providers, services, and the
// HTTP server together, and owns the process lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/wordvault-backend/internal/adapter/postgres"
	historyrepo "github.com/heartmarshall/wordvault-backend/internal/adapter/postgres/history"
	wordrepo "github.com/heartmarshall/wordvault-backend/internal/adapter/postgres/word"
	"github.com/heartmarshall/wordvault-backend/internal/adapter/provider/claude"
	"github.com/heartmarshall/wordvault-backend/internal/adapter/provider/speech"
	"github.com/heartmarshall/wordvault-backend/internal/config"
	"github.com/heartmarshall/wordvault-backend/internal/service/dictionary"
	historyservice "github.com/heartmarshall/wordvault-backend/internal/service/history"
	"github.com/heartmarshall/wordvault-backend/internal/transport/middleware"
	"github.com/heartmarshall/wordvault-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations, assembles services and the HTTP server,
// and blocks until the context is cancelled or the server fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := runMigrations(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	words := wordrepo.New(pool)
	history := historyrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	lookupProvider := claude.NewProvider(cfg.Provider, logger)
	speechProvider := speech.NewProvider(cfg.TTS, logger)

	dictSvc := dictionary.NewService(logger, words, history, tx, lookupProvider)
	histSvc := historyservice.NewService(logger, history, cfg.History)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	router := rest.NewRouter(rest.Handlers{
		Dictionary: rest.NewDictionaryHandler(dictSvc, logger),
		History:    rest.NewHistoryHandler(histSvc, logger),
		TTS:        rest.NewTTSHandler(speechProvider, cfg.TTS.MaxTextLen, logger),
		Health:     rest.NewHealthHandler(pool, BuildVersion()),
	},
		limiter.Limit(cfg.RateLimit.LookupPerMinute),
		limiter.Limit(cfg.RateLimit.TTSPerMinute),
	)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
