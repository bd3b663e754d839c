package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/campuslife/campus-api/internal/api"
	"github.com/campuslife/campus-api/internal/config"
	"github.com/campuslife/campus-api/internal/db"
	"github.com/campuslife/campus-api/internal/logger"
	"github.com/campuslife/campus-api/internal/realtime"
	"github.com/campuslife/campus-api/internal/seed"
)

const configPath = "./cmd/app/config.yml"

func Start() error {
	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	defer func() {
		_ = zap.L().Sync()
	}()
	if err = logger.SetLevel(conf.API.LogLevel); err != nil {
		return fmt.Errorf("failed to set log level -> %w", err)
	}

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		conf.Database.Driver = "postgres"
		conf.Database.DSN = dbURL
	}

	database, err := db.Open(conf.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if conf.Seed.Enabled {
		if err = runSeed(ctx, database, conf.Seed); err != nil {
			return fmt.Errorf("failed to seed database -> %w", err)
		}
	}

	hub := realtime.NewHub()
	s := api.NewServer(conf, database, hub)

	err = config.Watch(configPath, func(c *config.AppConfig) {
		s.CORS.Set(c.API.AllowedCORSDomains)
		s.LoginLimiter.SetLimit(c.RateLimit.LoginPerMinute, c.RateLimit.Burst)
		if err := logger.SetLevel(c.API.LogLevel); err != nil {
			zap.L().Warn("ignoring invalid log level", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to watch config -> %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + conf.API.Port,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hub.Run(gctx)
		return nil
	})
	g.Go(func() error {
		zap.L().Info(fmt.Sprintf("starting server at %v", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start the server -> %w", err)
		}

		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		zap.L().Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.API.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("srv.Shutdown -> %w", err)
		}

		return nil
	})

	return g.Wait()
}

func runSeed(ctx context.Context, database *gorm.DB, conf *config.SeedConfig) error {
	fixtures, err := seed.Load(conf.File)
	if err != nil {
		return fmt.Errorf("seed.Load -> %w", err)
	}

	if _, err = seed.NewSeeder(database).Run(ctx, fixtures); err != nil {
		return fmt.Errorf("seeder.Run -> %w", err)
	}

	return nil
}
