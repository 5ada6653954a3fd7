// Package response turns free-text model replies into validated results.
package response

import (
	"fmt"
	"strings"
)

// ParseError reports a reply that holds no usable JSON object.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("response: %s: %v", e.Reason, e.Err)
	}
	return "response: " + e.Reason
}

func (e *ParseError) Unwrap() error { return e.Err }

// ExtractJSON returns the span from the first '{' to the last '}' in raw.
// Models often wrap JSON in prose or code fences; the span is everything
// between them.
func ExtractJSON(raw string) (string, error) {
	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start < 0 || end < start {
		return "", &ParseError{Reason: "no JSON object in reply"}
	}
	return raw[start : end+1], nil
}
