// Package cmd - serve command
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"freelance-rate/api"
	"freelance-rate/internal/config"
	"freelance-rate/internal/logging"
	"freelance-rate/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve the quote API until interrupted.

Endpoints:
  POST /api/quote      compute a quote
  GET  /api/tiers      list tiers
  GET  /api/countries  list countries
  GET  /api/health     liveness
  GET  /api/version    version information`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}

	handler := api.NewServer(eng, api.Options{
		Version:      version,
		SharePhone:   cfg.Share.Phone,
		ShareBaseURL: cfg.Share.BaseURL,
	}, logging.Named("api"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer logging.Sync()

	return server.Run(ctx, server.Options{
		Addr:            cfg.Server.Addr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout(),
	}, handler, logging.Named("server"))
}
