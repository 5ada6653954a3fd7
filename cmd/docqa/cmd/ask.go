package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	askSources sourceFlags
	askFormat  string
)

var askCmd = &cobra.Command{
	Use:   "ask <query> [files...]",
	Short: "Answer a question from documents",
	Long: `Answer a research question over documents.

Each ready document gets an answer with citations and a confidence;
themes group findings that span several documents.

Examples:
  # Ask across local files and directories
  docqa ask "What is the single responsibility principle?" SE_Unit3.pdf notes/

  # Include web pages
  docqa ask "How do I rotate keys?" --url https://example.com/docs/keys

  # Everything under a bucket prefix, as JSON
  docqa ask "Summarize the leave policy" --prefix policies/ --format json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)

	askSources.register(askCmd)
	askCmd.Flags().StringVar(&askFormat, "format", "text", "Output format: text or json")
}

func runAsk(cmd *cobra.Command, args []string) error {
	if err := checkFormat(askFormat); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := GetConfig()
	query := args[0]

	docs, err := askSources.collect(ctx, cfg, args[1:])
	if err != nil {
		return err
	}

	service, err := newService(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, cfg)
	defer cancel()

	resp, err := service.AnswerQuery(ctx, query, docs)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if askFormat == "json" {
		return writeJSON(cmd.OutOrStdout(), resp)
	}
	renderQuery(cmd.OutOrStdout(), query, resp)
	return nil
}
