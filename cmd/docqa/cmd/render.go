package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/mfenderov/docqa/pkg/models"
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	label   = color.New(color.FgGreen, color.Bold)
	faint   = color.New(color.Faint)
)

func checkFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("unknown format %q: want text or json", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

func renderQuery(w io.Writer, query string, resp models.QueryResponse) {
	heading.Fprintf(w, "Q: %s\n\n", query)

	if len(resp.Results) == 0 {
		fmt.Fprintln(w, "No answers found.")
	}
	for i, r := range resp.Results {
		label.Fprintf(w, "─── %d. %s ", i+1, r.DocumentName)
		faint.Fprintf(w, "(confidence %s)\n", percent(r.Confidence))
		fmt.Fprintln(w, r.Answer)
		if r.Summary != "" {
			faint.Fprintln(w, r.Summary)
		}
		for _, c := range r.Citations {
			fmt.Fprintf(w, "  [%s] %s\n", location(c), c.Text)
		}
		fmt.Fprintln(w)
	}

	if len(resp.Themes) > 0 {
		heading.Fprintln(w, "Themes")
	}
	for _, t := range resp.Themes {
		label.Fprintf(w, "• %s ", t.Title)
		faint.Fprintf(w, "(confidence %s)\n", percent(t.Confidence))
		fmt.Fprintf(w, "  %s\n", t.Summary)
		if len(t.SupportingDocuments) > 0 {
			faint.Fprintf(w, "  Sources: %s\n", strings.Join(t.SupportingDocuments, ", "))
		}
	}
}

func renderSummaries(w io.Writer, summaries []models.DocumentSummary) {
	for i, s := range summaries {
		if i > 0 {
			fmt.Fprintln(w)
		}
		heading.Fprintf(w, "%s ", s.DocumentName)
		faint.Fprintf(w, "(%d words, confidence %s)\n", s.WordCount, percent(s.Confidence))
		fmt.Fprintln(w, s.Summary)
		for _, p := range s.KeyPoints {
			fmt.Fprintf(w, "  • %s\n", p)
		}
		if len(s.Topics) > 0 {
			label.Fprintf(w, "Topics: ")
			fmt.Fprintln(w, strings.Join(s.Topics, ", "))
		}
	}
}

func location(c models.Citation) string {
	if c.Page > 0 {
		return fmt.Sprintf("p. %d, ¶ %d", c.Page, c.Paragraph)
	}
	return fmt.Sprintf("¶ %d", c.Paragraph)
}

func percent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}
