package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mfenderov/docqa/internal/api"
)

var apiAddr string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the HTTP API",
	Long: `Start the HTTP JSON API.

Endpoints:
  GET  /health
  POST /api/query      {"query": "...", "documents": [...]}
  POST /api/summaries  {"documents": [...]}

Example:
  docqa api --addr :8080`,
	RunE: runAPI,
}

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiAddr, "addr", "", "listen address (default from api.addr)")
}

func runAPI(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := GetConfig()
	addr := cfg.API.Addr
	if apiAddr != "" {
		addr = apiAddr
	}

	service, err := newService(cfg)
	if err != nil {
		return err
	}

	server, err := api.New(api.Config{
		Addr:         addr,
		Timeout:      cfg.Gemini.Timeout,
		MaxBodyBytes: cfg.API.MaxBodyBytes,
	}, service)
	if err != nil {
		return fmt.Errorf("failed to create HTTP API: %w", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "HTTP API listening on %s\n", addr)

	return server.ListenAndServe(ctx)
}
