// @title        Job Board
// @version      1.0
// @description  Server-rendered job board: accounts, sessions, job postings and applications.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/jobboard/internal/api"
	"github.com/99minutos/jobboard/internal/core/ports"
	"github.com/99minutos/jobboard/internal/core/service"
	"github.com/99minutos/jobboard/internal/infrastructure/config"
	"github.com/99minutos/jobboard/internal/infrastructure/db/memory"
	"github.com/99minutos/jobboard/internal/infrastructure/db/mongo"
	"github.com/99minutos/jobboard/internal/infrastructure/db/redis"
	"github.com/99minutos/jobboard/internal/infrastructure/db/sqlite"
	"github.com/99minutos/jobboard/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// repositories is the storage backend chosen by STORE_DRIVER.
type repositories struct {
	users        ports.UserRepository
	jobs         ports.JobRepository
	applications ports.ApplicationRepository
	pinger       ports.Pinger
	close        func(ctx context.Context) error
}

func run(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: cfg.Service,
		Env:     cfg.Env,
	})

	repos, err := openStore(ctx, cfg, logger.Component(log, "store"))
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := repos.close(closeCtx); err != nil {
			log.Error().Err(err).Msg("store close failed")
		}
	}()

	sessionStore, sessionPinger, closeSessions, err := openSessionStore(ctx, cfg, logger.Component(log, "sessions"))
	if err != nil {
		return err
	}
	defer closeSessions()

	e, err := api.NewRouter(api.Deps{
		Logger:       log,
		Auth:         service.NewAuthService(repos.users, logger.Component(log, "auth")),
		Jobs:         service.NewJobService(repos.jobs, logger.Component(log, "jobs")),
		Applications: service.NewApplicationService(repos.applications, logger.Component(log, "applications")),
		Sessions:     service.NewSessionService(sessionStore, cfg.Session.Secret, cfg.Session.TTL, logger.Component(log, "sessions")),
		Readiness: map[string]ports.Pinger{
			cfg.Store.Driver:    repos.pinger,
			cfg.Session.Backend: sessionPinger,
		},
		SessionTTL:   cfg.Session.TTL,
		CookieSecure: cfg.Session.CookieSecure,
		CSRFEnabled:  cfg.Session.CSRFEnabled,
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.Store.Driver).Str("sessions", cfg.Session.Backend).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*repositories, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		_, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		store := mongo.NewStore(db)
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = store.Close(ctx)
			return nil, err
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("mongo store ready")
		return &repositories{
			users:        store.Users,
			jobs:         store.Jobs,
			applications: store.Applications,
			pinger:       store,
			close:        store.Close,
		}, nil
	default:
		store, err := sqlite.Open(ctx, cfg.Store.SQLiteDSN, log)
		if err != nil {
			return nil, err
		}
		log.Info().Str("dsn", cfg.Store.SQLiteDSN).Msg("sqlite store ready")
		return &repositories{
			users:        store.Users,
			jobs:         store.Jobs,
			applications: store.Applications,
			pinger:       store,
			close:        func(context.Context) error { return store.Close() },
		}, nil
	}
}

func openSessionStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.SessionStore, ports.Pinger, func(), error) {
	if cfg.Session.Backend == config.SessionStoreRedis {
		client, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			DB:       cfg.Redis.DB,
			Password: cfg.Redis.Password,
		})
		if err != nil {
			return nil, nil, nil, err
		}
		store := redis.NewSessionStore(client)
		return store, store, func() { _ = client.Close() }, nil
	}

	if !cfg.IsDevelopment() {
		log.Warn().Msg("in-memory sessions do not survive restarts or span replicas")
	}
	store := memory.NewSessionStore()
	return store, store, func() {}, nil
}
