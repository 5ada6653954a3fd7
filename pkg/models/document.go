package models

import (
	"crypto/sha256"
	"encoding/hex"
)

// Status is the processing state of an uploaded document.
type Status string

const (
	StatusProcessing Status = "processing"
	StatusReady      Status = "ready"
	StatusError      Status = "error"
)

// Document is a caller-owned document. The core only reads it.
type Document struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"` // MIME type
	Size    int64  `json:"size"` // bytes
	Status  Status `json:"status"`
	Content string `json:"content,omitempty"` // extracted text, if a collector produced any
	Source  string `json:"source,omitempty"`  // path, URL or s3:// URI the document came from
}

// Ready reports whether the document can be queried or summarized.
func (d Document) Ready() bool {
	return d.Status == StatusReady
}

// ReadyDocuments returns the ready documents in input order.
func ReadyDocuments(docs []Document) []Document {
	var ready []Document
	for _, d := range docs {
		if d.Ready() {
			ready = append(ready, d)
		}
	}
	return ready
}

// Names returns the document names in order.
func Names(docs []Document) []string {
	names := make([]string, len(docs))
	for i, d := range docs {
		names[i] = d.Name
	}
	return names
}

// GenerateDocumentID creates a deterministic ID from a source locator
// (file path, URL, or object key).
// The ID is a SHA-256 hash (first 16 chars) of the source.
func GenerateDocumentID(source string) string {
	hash := sha256.Sum256([]byte(source))
	return hex.EncodeToString(hash[:])[:16]
}
