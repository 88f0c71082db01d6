package main

import (
	"fmt"

	"github.com/nao1215/passmeter/internal/config"
	passlog "github.com/nao1215/passmeter/internal/log"
	"github.com/nao1215/passmeter/internal/server"
	"github.com/spf13/cobra"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the password analysis HTTP API",
		Long: `Serve starts an HTTP server exposing the analyzer:

  POST /api/analyze   analyze {"password": "..."}
  GET  /api/health    health check
  GET  /api/docs      endpoint documentation
  GET  /metrics       Prometheus metrics

Passwords are never logged. Request bodies are limited to --max-body
bytes. The server stops gracefully on SIGINT or SIGTERM.

Examples:
  # Listen on the default address (:5000)
  passmeter serve

  # Listen on localhost only and allow one browser origin
  passmeter serve --addr 127.0.0.1:8080 --allowed-origin https://example.com`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	cmd.Flags().StringP("addr", "a", config.DefaultListenAddress,
		"Address to listen on")
	cmd.Flags().Int64("max-body", config.DefaultMaxBodySize,
		"Maximum request body size in bytes")
	cmd.Flags().StringSlice("allowed-origin", nil,
		"Allowed CORS origin (repeatable; default: any origin)")
	addConfigFlag(cmd)

	return cmd
}

// runServeCmd executes the serve command.
func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := passlog.NewSecureJSONLogger(cmd.ErrOrStderr(), cfg.Verbose)

	m, err := newMeter(cfg, logger)
	if err != nil {
		return err
	}

	srv := server.New(m,
		server.WithLogger(logger),
		server.WithMaxBodySize(cfg.MaxBodySize),
		server.WithMaxConnections(cfg.MaxConnections),
		server.WithAllowedOrigins(cfg.AllowedOrigins),
		server.WithVersion(getVersion()),
		server.WithShutdownTimeout(cfg.ShutdownTimeout),
	)

	ctx, cancel := signalContext(cmd)
	defer cancel()

	fmt.Fprintf(cmd.ErrOrStderr(), "passmeter %s listening on %s\n", getVersion(), cfg.ListenAddress)
	return srv.ListenAndServe(ctx, cfg.ListenAddress)
}
