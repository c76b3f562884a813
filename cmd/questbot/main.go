package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/questbot/internal/ai"
	"github.com/udisondev/questbot/internal/behavior"
	"github.com/udisondev/questbot/internal/config"
	"github.com/udisondev/questbot/internal/db"
)

const (
	ConfigPath = "config/questbot.yaml"
	profileID  = "profile"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load config FIRST to determine log level
	cfgPath := ConfigPath
	if p := os.Getenv("QUESTBOT_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadBot(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := parseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))

	// Per-tick AI logs only at debug level or when forced by config
	ai.EnableDebugLogging(logLevel == slog.LevelDebug || cfg.Debug)

	slog.Info("questbot starting", "config", cfgPath, "log_level", cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	w, quests, err := buildWorld(cfg)
	if err != nil {
		return fmt.Errorf("building world: %w", err)
	}
	slog.Info("world ready",
		"objects", w.ObjectCount(),
		"quests", quests.Count(),
		"start", w.Position())

	var journal behavior.Journal
	if cfg.Database.Enabled {
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()

		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		journal = db.NewRunRepository(database.Pool())
		slog.Info("behavior journal enabled", "host", cfg.Database.Host, "dbname", cfg.Database.DBName)
	}

	deps := behavior.Deps{
		Agent:   w,
		Quests:  quests,
		Journal: journal,
	}
	profile, err := buildProfile(cfg.Behaviors, deps)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	mgr := ai.NewTickManager(cfg.TickInterval)
	if err := mgr.Register(ctx, profileID, profile); err != nil {
		return fmt.Errorf("registering profile: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return mgr.Start(gctx)
	})

	g.Go(func() error {
		return w.Run(gctx, cfg.World.StepInterval)
	})

	// Shut everything down once the profile is finished
	g.Go(func() error {
		if err := mgr.Wait(gctx); err != nil {
			return err
		}
		if gctx.Err() == nil {
			slog.Info("profile finished", "behaviors", profile.Len())
		}
		cancel()
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	slog.Info("questbot stopped")
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
