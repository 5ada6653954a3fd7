// Package processor turns raw document bytes into prompt-ready text.
package processor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	"github.com/mfenderov/docqa/internal/markdown"
)

// Processor extracts text from documents.
type Processor struct {
	policy *bluemonday.Policy
}

// New creates a new Processor. HTML is sanitized with the bluemonday UGC
// policy before conversion, which drops scripts, styles and event handlers.
func New() *Processor {
	return &Processor{policy: bluemonday.UGCPolicy()}
}

// Extract returns the text of a document. Markdown and plain text pass
// through, HTML is converted to Markdown. Binary bodies yield "" since no
// OCR or format decoding is attempted.
func (p *Processor) Extract(name, contentType string, raw []byte) (string, error) {
	if len(raw) == 0 || !utf8.Valid(raw) {
		return "", nil
	}
	body := string(raw)

	if markdown.Detect(name, contentType, body) || !markdown.DetectHTML(name, contentType, body) {
		return strings.TrimSpace(body), nil
	}

	md, err := p.Convert(body)
	if err != nil {
		return "", fmt.Errorf("failed to convert %s: %w", name, err)
	}
	return md, nil
}

// Convert transforms HTML content into Markdown.
func (p *Processor) Convert(htmlContent string) (string, error) {
	if htmlContent == "" {
		return "", nil
	}

	md, err := htmltomarkdown.ConvertString(p.policy.Sanitize(htmlContent))
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(md), nil
}

// Title returns the best display title for a document body: the HTML
// <title>, else the first Markdown H1.
func (p *Processor) Title(name, contentType, body string) string {
	if markdown.DetectHTML(name, contentType, body) {
		return p.ExtractTitle(body)
	}
	return ExtractMarkdownTitle(body)
}

// ExtractTitle extracts the <title> content from HTML.
func (p *Processor) ExtractTitle(htmlContent string) string {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return ""
	}

	var title string
	var findTitle func(*html.Node) bool
	findTitle = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "title" {
			if n.FirstChild != nil {
				title = n.FirstChild.Data
			}
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if findTitle(c) {
				return true
			}
		}
		return false
	}
	findTitle(doc)

	return strings.TrimSpace(title)
}

// ExtractMarkdownTitle returns the first H1 heading of markdown content.
func ExtractMarkdownTitle(content string) string {
	for line := range strings.Lines(content) {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return ""
}
