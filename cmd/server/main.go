// Package main runs the freelance-rate HTTP API as a standalone server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"freelance-rate/api"
	"freelance-rate/core/catalog"
	"freelance-rate/core/engine"
	"freelance-rate/internal/config"
	"freelance-rate/internal/logging"
	"freelance-rate/internal/server"
)

const version = "0.1.0"

func main() {
	cfgFile := flag.String("config", "", "config file (default is $HOME/.freelance-rate.json)")
	addr := flag.String("addr", "", "server address (overrides config)")
	flag.Parse()

	if err := run(*cfgFile, *addr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cfgFile, addr string) error {
	if cfgFile == "" {
		cfgFile = config.DefaultPath()
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer logging.Sync()

	cat := catalog.Default()
	if cfg.Catalog.Path != "" {
		cat, err = catalog.Load(cfg.Catalog.Path)
		if err != nil {
			return fmt.Errorf("catalog initialization error: %w", err)
		}
	}
	logging.Info("catalog loaded",
		zap.String("path", cfg.Catalog.Path),
		zap.Int("tiers", len(cat.Tiers())),
	)

	eng := engine.NewEngine(cat, engine.EngineConfig{
		StrictReferral: cfg.Validation.StrictReferral,
	}, logging.Named("engine"))

	handler := api.NewServer(eng, api.Options{
		Version:      version,
		SharePhone:   cfg.Share.Phone,
		ShareBaseURL: cfg.Share.BaseURL,
	}, logging.Named("api"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, server.Options{
		Addr:            cfg.Server.Addr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout(),
	}, handler, logging.Named("server"))
}
