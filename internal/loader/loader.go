// Package loader turns local files into documents.
package loader

import (
	"io/fs"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/mfenderov/docqa/internal/processor"
	"github.com/mfenderov/docqa/pkg/models"
)

// DefaultMaxFileBytes bounds how much of a single file is read.
const DefaultMaxFileBytes = 10 << 20

// Config holds loader configuration.
type Config struct {
	MaxFileBytes int64
}

// Loader reads files from disk.
type Loader struct {
	config    Config
	processor *processor.Processor
}

// New creates a Loader.
func New(config Config) *Loader {
	if config.MaxFileBytes <= 0 {
		config.MaxFileBytes = DefaultMaxFileBytes
	}
	return &Loader{config: config, processor: processor.New()}
}

// Load returns one document per file. Directories are walked, skipping
// hidden entries. A file that cannot be read still yields a document, with
// status error, so callers see every input.
func (l *Loader) Load(paths ...string) []models.Document {
	var docs []models.Document
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			docs = append(docs, l.loadFile(p))
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				slog.Warn("skipping unreadable path", "path", path, "error", err)
				return nil
			}
			if path != p && strings.HasPrefix(d.Name(), ".") {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.Type().IsRegular() {
				docs = append(docs, l.loadFile(path))
			}
			return nil
		})
		if err != nil {
			slog.Warn("failed to walk directory", "path", p, "error", err)
		}
	}
	return docs
}

func (l *Loader) loadFile(path string) models.Document {
	id := path
	if abs, err := filepath.Abs(path); err == nil {
		id = abs
	}

	doc := models.Document{
		ID:     models.GenerateDocumentID("file://" + id),
		Name:   filepath.Base(path),
		Source: id,
		Type:   mime.TypeByExtension(strings.ToLower(filepath.Ext(path))),
		Status: models.StatusError,
	}

	info, err := os.Stat(path)
	if err != nil {
		slog.Warn("failed to stat file", "path", path, "error", err)
		return doc
	}
	doc.Size = info.Size()
	if doc.Size > l.config.MaxFileBytes {
		slog.Warn("file too large", "path", path, "size", doc.Size, "max", l.config.MaxFileBytes)
		return doc
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("failed to read file", "path", path, "error", err)
		return doc
	}
	if doc.Type == "" {
		doc.Type = http.DetectContentType(raw)
	}

	text, err := l.processor.Extract(doc.Name, doc.Type, raw)
	if err != nil {
		slog.Warn("failed to extract text", "path", path, "error", err)
	}

	doc.Content = text
	doc.Status = models.StatusReady
	slog.Debug("loaded file", "path", path, "type", doc.Type, "chars", len(text))
	return doc
}
