package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"

	"github.com/karski/cashboard/internal/api"
	"github.com/karski/cashboard/internal/config"
	"github.com/karski/cashboard/internal/session"
	"github.com/karski/cashboard/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/cashboard.yaml", "path to config file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		pterm.Println(version.String())
		return
	}

	// Set up structured logging on top of the terminal printer
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", "error", err)
	}

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("starting cashboard",
		"version", version.Version,
		"commit", version.Commit,
		"api_url", cfg.API.BaseURL,
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

	sess := session.New()
	client := api.NewClient(
		cfg.API.BaseURL,
		api.WithTokenSource(sess),
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout.Std()),
		api.WithRetries(cfg.API.MaxRetries, time.Second),
	)

	app := newApp(cfg, client, sess, logger)
	if err := app.run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("cashboard exited with error", "error", err)
		os.Exit(1)
	}
}
