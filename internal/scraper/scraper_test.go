package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mfenderov/docqa/pkg/models"
)

func TestScraper_FetchSingleURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`
			<html>
			<head><title>Remote Work Policy</title></head>
			<body>
				<h1>Eligibility</h1>
				<p>Employees may work remotely two days a week.</p>
			</body>
			</html>
		`))
	}))
	defer server.Close()

	s := New(Config{
		Delay:     10 * time.Millisecond,
		MaxDepth:  1,
		UserAgent: "test-agent",
	})

	docs, err := s.Fetch(t.Context(), server.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}

	doc := docs[0]
	if doc.Name != "Remote Work Policy" {
		t.Errorf("Name = %q, want page title", doc.Name)
	}
	if doc.Status != models.StatusReady {
		t.Errorf("Status = %q, want ready", doc.Status)
	}
	if !strings.HasPrefix(doc.Source, server.URL) {
		t.Errorf("Source = %q, want prefix %q", doc.Source, server.URL)
	}
	if !strings.Contains(doc.Content, "# Eligibility") {
		t.Errorf("Content should be markdown, got:\n%s", doc.Content)
	}
	if strings.Contains(doc.Content, "<p>") {
		t.Error("Content should not contain raw HTML")
	}
	if doc.ID != models.GenerateDocumentID(doc.Source) {
		t.Errorf("ID = %q, want hash of source", doc.ID)
	}
	if doc.Size == 0 {
		t.Error("Size should be set")
	}
}

func TestScraper_NameFallsBackToURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body><p>untitled</p></body></html>`))
	}))
	defer server.Close()

	docs, err := New(Config{}).Fetch(t.Context(), server.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(docs) != 1 || docs[0].Name != docs[0].Source {
		t.Fatalf("expected name to fall back to URL, got %+v", docs)
	}
}

func TestScraper_FollowsLinksWithinDomain(t *testing.T) {
	pages := map[string]string{
		"/": `<html><head><title>Home</title></head><body>
			<a href="/page1">Page 1</a>
			<a href="/page2">Page 2</a>
			<a href="https://elsewhere.invalid/x">External</a>
		</body></html>`,
		"/page1": `<html><head><title>Page 1</title></head><body><h1>Page 1 Content</h1></body></html>`,
		"/page2": `<html><head><title>Page 2</title></head><body><h1>Page 2 Content</h1></body></html>`,
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		if content, ok := pages[r.URL.Path]; ok {
			w.Write([]byte(content))
		} else {
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	s := New(Config{
		Delay:       10 * time.Millisecond,
		MaxDepth:    2,
		FollowLinks: true,
		UserAgent:   "test-agent",
	})

	docs, err := s.Fetch(t.Context(), server.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(docs) != 3 {
		t.Errorf("expected 3 documents, got %d: %v", len(docs), models.Names(docs))
	}

	names := make(map[string]bool)
	for _, doc := range docs {
		names[doc.Name] = true
	}
	for _, want := range []string{"Home", "Page 1", "Page 2"} {
		if !names[want] {
			t.Errorf("should have scraped %q", want)
		}
	}
}

func TestScraper_RespectsMaxDepth(t *testing.T) {
	pages := map[string]string{
		"/":       `<html><body><a href="/level1">Level 1</a></body></html>`,
		"/level1": `<html><body><a href="/level2">Level 2</a></body></html>`,
		"/level2": `<html><body><a href="/level3">Level 3</a></body></html>`,
		"/level3": `<html><body>Deep content</body></html>`,
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		if content, ok := pages[r.URL.Path]; ok {
			w.Write([]byte(content))
		}
	}))
	defer server.Close()

	s := New(Config{
		Delay:       10 * time.Millisecond,
		MaxDepth:    2, // root and level1 only
		FollowLinks: true,
		UserAgent:   "test-agent",
	})

	docs, err := s.Fetch(t.Context(), server.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	sources := make(map[string]bool)
	for _, doc := range docs {
		sources[doc.Source] = true
	}
	if !sources[server.URL+"/level1"] {
		t.Error("should have scraped /level1 (depth 2)")
	}
	if sources[server.URL+"/level3"] {
		t.Error("should NOT have scraped /level3 (beyond max depth)")
	}
}

func TestScraper_FetchDeduplicates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("plain body"))
	}))
	defer server.Close()

	docs, err := New(Config{}).Fetch(t.Context(), server.URL+"/a", server.URL+"/a", server.URL+"/b")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].Content != "plain body" {
		t.Errorf("plain text should pass through, got %q", docs[0].Content)
	}
}

func TestScraper_HandlesErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Internal Error", http.StatusInternalServerError)
	}))
	defer server.Close()

	s := New(Config{
		Delay:     10 * time.Millisecond,
		MaxDepth:  1,
		UserAgent: "test-agent",
	})

	docs, err := s.Fetch(t.Context(), server.URL, "://not a url")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(docs) > 0 {
		t.Errorf("expected 0 documents for error responses, got %d", len(docs))
	}
}

func TestScraper_Cancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>never</body></html>`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	docs, err := New(Config{}).Fetch(ctx, server.URL)
	if err == nil {
		t.Fatal("expected context error")
	}
	if len(docs) != 0 {
		t.Errorf("expected no documents, got %d", len(docs))
	}
}

func TestScraper_SetsUserAgent(t *testing.T) {
	var receivedUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body>Test</body></html>`))
	}))
	defer server.Close()

	s := New(Config{UserAgent: "docqa-test/2.0"})

	if _, err := s.Fetch(t.Context(), server.URL); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if receivedUA != "docqa-test/2.0" {
		t.Errorf("User-Agent = %q, want %q", receivedUA, "docqa-test/2.0")
	}
}
