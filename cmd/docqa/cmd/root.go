package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mfenderov/docqa/internal/config"
)

var (
	cfgFile string
	verbose bool
	cfg     config.Config
)

// GetConfig returns the loaded configuration.
func GetConfig() config.Config {
	return cfg
}

var rootCmd = &cobra.Command{
	Use:   "docqa",
	Short: "docqa: answer research questions from documents",
	Long: `docqa answers research questions over a set of documents with Gemini,
citing the passages it used and grouping findings into themes. When the model
is unavailable or replies with something unusable, a deterministic synthetic
answer is returned instead.

Documents come from local files, web pages (--url) or an S3 bucket (--prefix).

Commands:
  ask        Answer a question from documents
  summarize  Summarize each document
  serve      Start the MCP server
  api        Start the HTTP API`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		initLogger()
		return initConfig()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

func initLogger() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func initConfig() error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg = loaded

	if cfg.Gemini.APIKey == "" {
		slog.Warn("no Gemini API key configured, answers will be synthetic")
	}
	return nil
}
