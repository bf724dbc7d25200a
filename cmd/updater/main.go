package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/quantfold/price-updater/internal/alpaca"
	"github.com/quantfold/price-updater/internal/config"
	"github.com/quantfold/price-updater/internal/database"
	"github.com/quantfold/price-updater/internal/provider"
	"github.com/quantfold/price-updater/internal/store"
	"github.com/quantfold/price-updater/internal/updater"
	"github.com/quantfold/price-updater/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/updater.yaml", "path to config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)

	logger.Info("starting updater",
		"version", version.String(),
		"config", *configPath,
		"provider", cfg.Updater.Provider,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Connect to database
	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	logger.Info("database connected")

	factory, err := buildFactory(cfg, logger)
	if err != nil {
		logger.Error("failed to build provider", "error", err)
		os.Exit(1)
	}

	runCfg := updater.DefaultConfig()
	runCfg.Pace = time.Duration(cfg.Updater.PaceSeconds * float64(time.Second))
	runCfg.MaxRetries = cfg.Updater.MaxRetries
	runCfg.FlushThreshold = cfg.Updater.FlushThreshold

	u := updater.New(runCfg, store.NewPostgres(pool, logger), factory, logger)

	// Run once unless a cron schedule is configured.
	if cfg.Schedule.Cron == "" {
		if err := u.Run(ctx); err != nil {
			logger.Error("run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	// A run that outlasts the schedule interval must not overlap the next
	// one; overlapping ticks are skipped, not queued.
	sched := cron.New(cron.WithChain(cron.SkipIfStillRunning(cronLogger{logger})))
	if _, err := sched.AddFunc(cfg.Schedule.Cron, func() {
		if err := u.Run(ctx); err != nil {
			logger.Error("scheduled run failed", "error", err)
		}
	}); err != nil {
		logger.Error("invalid cron schedule", "cron", cfg.Schedule.Cron, "error", err)
		os.Exit(1)
	}

	sched.Start()
	logger.Info("updater scheduled", "cron", cfg.Schedule.Cron)

	<-ctx.Done()

	logger.Info("shutting down...")
	// Let an in-flight run finish before exiting.
	<-sched.Stop().Done()
	logger.Info("updater stopped")
}

// buildFactory selects the configured provider.
func buildFactory(cfg *config.Config, logger *slog.Logger) (provider.Factory, error) {
	switch cfg.Updater.Provider {
	case "alpaca":
		if cfg.Alpaca.BaseURL != "" {
			return provider.NewAlpacaFactory(cfg.Alpaca.KeyID, cfg.Alpaca.SecretKey, logger,
				alpaca.WithBaseURL(cfg.Alpaca.BaseURL)), nil
		}
		return provider.NewAlpacaFactory(cfg.Alpaca.KeyID, cfg.Alpaca.SecretKey, logger), nil
	case "polygon":
		return provider.NewPolygonFactory(cfg.Polygon.APIKey), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Updater.Provider)
	}
}

// cronLogger adapts slog to the cron.Logger interface.
type cronLogger struct {
	l *slog.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Info(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Error(msg, append(keysAndValues, "error", err)...)
}

// parseLevel converts a config string to a slog.Level. Unknown → info.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
