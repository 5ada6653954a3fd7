package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mfenderov/docqa/internal/config"
	"github.com/mfenderov/docqa/internal/loader"
	"github.com/mfenderov/docqa/internal/scraper"
	"github.com/mfenderov/docqa/internal/storage"
	"github.com/mfenderov/docqa/pkg/models"
)

// sourceFlags selects where documents come from, besides positional files.
type sourceFlags struct {
	urls   []string
	prefix string
	bucket bool
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.urls, "url", nil, "web page to include as a document (repeatable)")
	cmd.Flags().StringVar(&f.prefix, "prefix", "", "include every object under this prefix of the storage bucket")
	cmd.Flags().BoolVar(&f.bucket, "bucket", false, "include every object of the storage bucket")
}

// collect gathers documents from files, web pages and the storage bucket,
// in that order.
func (f *sourceFlags) collect(ctx context.Context, cfg config.Config, paths []string) ([]models.Document, error) {
	var docs []models.Document

	if len(paths) > 0 {
		ld := loader.New(loader.Config{MaxFileBytes: cfg.Loader.MaxFileBytes})
		docs = append(docs, ld.Load(paths...)...)
	}

	if len(f.urls) > 0 {
		s := scraper.New(scraper.Config{
			Delay:       cfg.Scraper.Delay,
			MaxDepth:    cfg.Scraper.MaxDepth,
			FollowLinks: cfg.Scraper.FollowLinks,
			Timeout:     cfg.Scraper.Timeout,
			UserAgent:   cfg.Scraper.UserAgent,
		})
		pages, err := s.Fetch(ctx, f.urls...)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch web pages: %w", err)
		}
		docs = append(docs, pages...)
	}

	if f.prefix != "" || f.bucket {
		client, err := storage.New(storage.Config{
			Endpoint:        cfg.Storage.Endpoint,
			Bucket:          cfg.Storage.Bucket,
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
			UseSSL:          cfg.Storage.UseSSL,
			Region:          cfg.Storage.Region,
			MaxObjectBytes:  cfg.Storage.MaxObjectBytes,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		objects, err := client.LoadDocuments(ctx, f.prefix)
		if err != nil {
			return nil, fmt.Errorf("failed to load documents from bucket %s: %w", client.Bucket(), err)
		}
		docs = append(docs, objects...)
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("no documents given: pass files, --url, --prefix or --bucket")
	}

	for _, d := range docs {
		if !d.Ready() {
			slog.Warn("document not ready, skipping", "name", d.Name, "status", d.Status)
		}
	}
	return docs, nil
}
