package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	summarizeSources sourceFlags
	summarizeFormat  string
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [files...]",
	Short: "Summarize each document",
	Long: `Summarize every ready document: a summary, key points, topics and a
word count. Documents are summarized concurrently, bounded by
research.max_parallel.

Examples:
  docqa summarize reports/
  docqa summarize --url https://example.com/handbook --format json`,
	RunE: runSummarize,
}

func init() {
	rootCmd.AddCommand(summarizeCmd)

	summarizeSources.register(summarizeCmd)
	summarizeCmd.Flags().StringVar(&summarizeFormat, "format", "text", "Output format: text or json")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	if err := checkFormat(summarizeFormat); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := GetConfig()

	docs, err := summarizeSources.collect(ctx, cfg, args)
	if err != nil {
		return err
	}

	service, err := newService(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, cfg)
	defer cancel()

	summaries, err := service.SummarizeDocuments(ctx, docs)
	if err != nil {
		return fmt.Errorf("summarize failed: %w", err)
	}

	if summarizeFormat == "json" {
		return writeJSON(cmd.OutOrStdout(), map[string]any{"summaries": summaries})
	}
	renderSummaries(cmd.OutOrStdout(), summaries)
	return nil
}
