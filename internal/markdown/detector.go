// Package markdown classifies document bodies as Markdown, HTML or neither.
package markdown

import (
	"path"
	"regexp"
	"strings"
)

var (
	headerPattern = regexp.MustCompile(`(?m)^#{1,6}\s+\S`)
	listPattern   = regexp.MustCompile(`(?m)^[\-\*]\s+\S`)
	linkPattern   = regexp.MustCompile(`\[.+?\]\(.+?\)`)
	fencePattern  = regexp.MustCompile("(?m)^```")
)

// IsMarkdownContentType checks if a MIME type indicates markdown.
func IsMarkdownContentType(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.HasPrefix(ct, "text/markdown") ||
		strings.HasPrefix(ct, "text/x-markdown")
}

// IsHTMLContentType checks if a MIME type indicates HTML.
func IsHTMLContentType(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.HasPrefix(ct, "text/html") ||
		strings.HasPrefix(ct, "application/xhtml+xml")
}

// IsMarkdownName checks if a file name, object key or URL has a markdown
// extension.
func IsMarkdownName(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".md", ".markdown", ".mdown":
		return true
	}
	return false
}

// IsHTMLName checks if a name has an HTML extension.
func IsHTMLName(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}

// IsMarkdownContent uses heuristics to detect if content is markdown.
func IsMarkdownContent(content string) bool {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" || LooksLikeHTML(trimmed) {
		return false
	}
	return headerPattern.MatchString(trimmed) ||
		listPattern.MatchString(trimmed) ||
		linkPattern.MatchString(trimmed) ||
		fencePattern.MatchString(trimmed)
}

// LooksLikeHTML checks if content opens like an HTML document.
func LooksLikeHTML(content string) bool {
	lower := strings.ToLower(strings.TrimSpace(content))
	return strings.HasPrefix(lower, "<!doctype") ||
		strings.HasPrefix(lower, "<html") ||
		strings.HasPrefix(lower, "<head") ||
		strings.HasPrefix(lower, "<body")
}

// Detect reports whether a document is markdown. Checks in order:
// content type, name, then content heuristics.
func Detect(name, contentType, content string) bool {
	if IsMarkdownContentType(contentType) {
		return true
	}
	if IsMarkdownName(name) {
		return true
	}
	return IsMarkdownContent(content)
}

// DetectHTML reports whether a document is HTML.
func DetectHTML(name, contentType, content string) bool {
	return IsHTMLContentType(contentType) || IsHTMLName(name) || LooksLikeHTML(content)
}
