package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/relayform/go-attio/internal/app"
	"github.com/relayform/go-attio/internal/config"
	"github.com/relayform/go-attio/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "attio-demo failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	logger.InfoObj("attio-demo starting", "config", map[string]any{
		"base_url":     cfg.BaseURL,
		"timeout":      cfg.Timeout.String(),
		"fixture_file": cfg.FixtureFile,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	demo, err := app.NewDemo(cfg, log)
	if err != nil {
		logger.ErrorObj("failed to initialize demo", "error", err)
		return err
	}

	if err := demo.Run(ctx); err != nil {
		return fmt.Errorf("demo run: %w", err)
	}

	return nil
}
