package gemini

import "fmt"

// TransportError means the request never completed or its body could not
// be read as a generateContent response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("gemini: transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// UpstreamError means the backend answered with a non-success status.
type UpstreamError struct {
	StatusCode int
	StatusText string
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("gemini: API error (status %d %s): %s", e.StatusCode, e.StatusText, e.Body)
}

// EmptyResponseError means the backend succeeded but returned no candidate text.
type EmptyResponseError struct {
	Reason string
}

func (e *EmptyResponseError) Error() string {
	return "gemini: empty response: " + e.Reason
}
