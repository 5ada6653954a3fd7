// Package scraper collects web pages as documents.
package scraper

import (
	"context"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/mfenderov/docqa/internal/processor"
	"github.com/mfenderov/docqa/pkg/models"
)

// Config holds scraper configuration.
type Config struct {
	Delay       time.Duration
	MaxDepth    int
	FollowLinks bool
	UserAgent   string
	Timeout     time.Duration
	MaxBodySize int // bytes; 0 keeps the colly default
}

// Scraper fetches web pages and returns them as ready documents.
type Scraper struct {
	config    Config
	processor *processor.Processor
}

// New creates a new Scraper with the given configuration.
func New(config Config) *Scraper {
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.UserAgent == "" {
		config.UserAgent = "docqa/1.0"
	}
	if config.MaxDepth <= 0 {
		config.MaxDepth = 1
	}
	return &Scraper{config: config, processor: processor.New()}
}

// Fetch scrapes every URL and returns the pages in visit order. A URL that
// cannot be fetched is logged and skipped. The only error is ctx.Err() when
// the context is cancelled mid-scrape; pages fetched so far are returned.
func (s *Scraper) Fetch(ctx context.Context, urls ...string) ([]models.Document, error) {
	var docs []models.Document
	seen := make(map[string]bool)

	for _, u := range urls {
		pages, err := s.Scrape(ctx, u)
		for _, p := range pages {
			if !seen[p.ID] {
				seen[p.ID] = true
				docs = append(docs, p)
			}
		}
		if err != nil {
			return docs, err
		}
	}
	return docs, nil
}

// Scrape fetches startURL and, when FollowLinks is set, same-host links up
// to MaxDepth.
func (s *Scraper) Scrape(ctx context.Context, startURL string) ([]models.Document, error) {
	var docs []models.Document
	var mu sync.Mutex
	var cancelled bool

	slog.Debug("starting scrape", "url", startURL, "max_depth", s.config.MaxDepth)

	parsedURL, err := url.Parse(startURL)
	if err != nil {
		slog.Warn("failed to parse URL", "url", startURL, "error", err)
		return nil, nil
	}

	c := colly.NewCollector(
		colly.MaxDepth(s.config.MaxDepth),
		colly.UserAgent(s.config.UserAgent),
	)
	if s.config.MaxBodySize > 0 {
		c.MaxBodySize = s.config.MaxBodySize
	}

	c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Delay:       s.config.Delay,
		Parallelism: 2,
	})
	c.SetRequestTimeout(s.config.Timeout)

	c.OnRequest(func(r *colly.Request) {
		if ctx.Err() != nil {
			slog.Debug("scrape cancelled", "url", r.URL.String())
			r.Abort()
			mu.Lock()
			cancelled = true
			mu.Unlock()
		}
	})

	c.OnError(func(r *colly.Response, err error) {
		slog.Warn("failed to fetch page", "url", r.Request.URL.String(), "status", r.StatusCode, "error", err)
	})

	c.OnResponse(func(r *colly.Response) {
		if r.StatusCode >= 400 {
			return
		}
		doc := s.toDocument(r.Request.URL.String(), r.Headers.Get("Content-Type"), r.Body)

		mu.Lock()
		docs = append(docs, doc)
		mu.Unlock()
	})

	if s.config.FollowLinks {
		c.OnHTML("a[href]", func(e *colly.HTMLElement) {
			absoluteURL := e.Request.AbsoluteURL(e.Attr("href"))
			linkURL, err := url.Parse(absoluteURL)
			if err != nil {
				return
			}
			if linkURL.Host == parsedURL.Host {
				e.Request.Visit(absoluteURL)
			}
		})
	}

	if err := c.Visit(startURL); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		slog.Warn("visit failed", "url", startURL, "error", err)
		return nil, nil
	}
	c.Wait()

	if cancelled {
		slog.Info("scrape cancelled by context", "pages_scraped", len(docs))
		return docs, ctx.Err()
	}

	slog.Debug("scrape complete", "url", startURL, "pages", len(docs))
	return docs, nil
}

func (s *Scraper) toDocument(pageURL, contentType string, body []byte) models.Document {
	text, err := s.processor.Extract(pageURL, contentType, body)
	if err != nil {
		slog.Warn("failed to extract page", "url", pageURL, "error", err)
	}

	name := s.processor.Title(pageURL, contentType, string(body))
	if name == "" {
		name = pageURL
	}

	return models.Document{
		ID:      models.GenerateDocumentID(pageURL),
		Name:    name,
		Type:    contentType,
		Size:    int64(len(body)),
		Status:  models.StatusReady,
		Content: text,
		Source:  pageURL,
	}
}
