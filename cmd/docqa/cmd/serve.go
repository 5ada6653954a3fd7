package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfenderov/docqa/internal/loader"
	"github.com/mfenderov/docqa/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the MCP server for document research.

The server communicates via stdio and provides two tools:
  - answer_query: Answer a question from documents or local paths
  - summarize_documents: Summarize documents or local paths

Local paths are only read from inside mcp.root (the working directory by
default); an empty mcp.root disables them.

Example:
  docqa serve`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	service, err := newService(cfg)
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(mcp.Config{
		Name:    cfg.MCP.Name,
		Version: cfg.MCP.Version,
		Timeout: cfg.Gemini.Timeout,
		Root:    cfg.MCP.Root,
	}, service, loader.New(loader.Config{MaxFileBytes: cfg.Loader.MaxFileBytes}))
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	fmt.Fprintln(cmd.ErrOrStderr(), "Starting MCP server...")

	return server.ServeStdio()
}
