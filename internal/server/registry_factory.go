package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	appplayers "github.com/preston-bernstein/team-draw-service/internal/app/players"
	"github.com/preston-bernstein/team-draw-service/internal/config"
	"github.com/preston-bernstein/team-draw-service/internal/http/handlers"
	"github.com/preston-bernstein/team-draw-service/internal/logging"
	"github.com/preston-bernstein/team-draw-service/internal/store"
)

// registry bundles the player store with its lifecycle hooks.
type registry struct {
	store   appplayers.Store
	backend string
	ready   handlers.ReadyFunc
	close   func() error
}

const defaultConnectAttempts = 3

// connectBackoff grows linearly per attempt; a var so tests can shorten it.
var connectBackoff = 200 * time.Millisecond

// postgresOpener remains a var so tests can avoid a live database.
var postgresOpener = func(ctx context.Context, dsn string) (postgresRegistry, error) {
	return store.NewPostgresStore(ctx, dsn)
}

type postgresRegistry interface {
	appplayers.Store
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}

func buildRegistry(ctx context.Context, cfg config.RegistryConfig, logger *slog.Logger) (registry, error) {
	switch cfg.Backend {
	case "", config.BackendMemory:
		return registry{store: store.NewMemoryStore(), backend: config.BackendMemory}, nil
	case config.BackendFile:
		fs, err := store.NewFileStore(cfg.File)
		if err != nil {
			return registry{}, fmt.Errorf("open player file: %w", err)
		}
		logging.Info(logger, "player registry loaded", logging.FieldBackend, config.BackendFile, "path", fs.Path())
		return registry{store: fs, backend: config.BackendFile}, nil
	case config.BackendPostgres:
		if cfg.DatabaseURL == "" {
			return registry{}, errors.New("postgres registry requires DATABASE_URL")
		}
		pg, err := openPostgres(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return registry{}, fmt.Errorf("connect postgres: %w", err)
		}
		if err := pg.Migrate(ctx); err != nil {
			_ = pg.Close()
			return registry{}, fmt.Errorf("migrate postgres: %w", err)
		}
		logging.Info(logger, "player registry connected", logging.FieldBackend, config.BackendPostgres)
		return registry{store: pg, backend: config.BackendPostgres, ready: pg.Ping, close: pg.Close}, nil
	}
	return registry{}, fmt.Errorf("unknown registry backend %q", cfg.Backend)
}

// openPostgres retries the initial connection so the service can start
// alongside a database that is still booting.
func openPostgres(ctx context.Context, dsn string, logger *slog.Logger) (postgresRegistry, error) {
	var lastErr error

	for attempt := 1; attempt <= defaultConnectAttempts; attempt++ {
		pg, err := postgresOpener(ctx, dsn)
		if err == nil {
			return pg, nil
		}
		lastErr = err

		if attempt == defaultConnectAttempts {
			break
		}

		logging.Warn(logger, "postgres connect retry", "attempt", attempt, "max_attempts", defaultConnectAttempts, "err", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt) * connectBackoff):
		}
	}

	return nil, lastErr
}

func (r registry) shutdown() error {
	if r.close == nil {
		return nil
	}
	return r.close()
}
