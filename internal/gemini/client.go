// Package gemini is the Model Gateway: one generateContent call per prompt.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// Defaults for the generateContent endpoint.
const (
	DefaultBaseURL         = "https://generativelanguage.googleapis.com/v1"
	DefaultModel           = "gemini-1.5-flash"
	DefaultTemperature     = 0.2
	DefaultTopK            = 40
	DefaultTopP            = 0.9
	DefaultMaxOutputTokens = 4096
)

// Config holds Gemini client configuration. Zero numeric fields take the
// package defaults.
type Config struct {
	APIKey          string
	BaseURL         string
	Model           string
	Temperature     float64
	TopK            int
	TopP            float64
	MaxOutputTokens int
	HTTPClient      *http.Client // optional; no client-side timeout by default
}

// Client calls the Gemini generateContent API.
type Client struct {
	httpClient *http.Client
	apiKey     string
	endpoint   string
	generation generationConfig
}

// New creates a new Gemini client. An empty API key is accepted: Generate
// then reports an UpstreamError so callers degrade to their fallback path.
func New(config Config) (*Client, error) {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.Temperature == 0 {
		config.Temperature = DefaultTemperature
	}
	if config.TopK == 0 {
		config.TopK = DefaultTopK
	}
	if config.TopP == 0 {
		config.TopP = DefaultTopP
	}
	if config.MaxOutputTokens == 0 {
		config.MaxOutputTokens = DefaultMaxOutputTokens
	}

	switch {
	case config.Temperature < 0 || config.Temperature > 2:
		return nil, fmt.Errorf("temperature must be in [0, 2], got %v", config.Temperature)
	case config.TopP < 0 || config.TopP > 1:
		return nil, fmt.Errorf("topP must be in (0, 1], got %v", config.TopP)
	case config.TopK < 1:
		return nil, fmt.Errorf("topK must be positive, got %d", config.TopK)
	case config.MaxOutputTokens < 1:
		return nil, fmt.Errorf("maxOutputTokens must be positive, got %d", config.MaxOutputTokens)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		httpClient: httpClient,
		apiKey:     config.APIKey,
		endpoint:   strings.TrimSuffix(config.BaseURL, "/") + "/models/" + config.Model + ":generateContent",
		generation: generationConfig{
			Temperature:     config.Temperature,
			TopK:            config.TopK,
			TopP:            config.TopP,
			MaxOutputTokens: config.MaxOutputTokens,
		},
	}, nil
}

// generateRequest is the request payload for generateContent.
type generateRequest struct {
	Contents         []requestContent `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
	SafetySettings   []safetySetting  `json:"safetySettings"`
}

type requestContent struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

var safetySettings = []safetySetting{
	{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
}

// generateResponse is the subset of the generateContent response we read.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate sends a prompt and returns candidates[0].content.parts[0].text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", &UpstreamError{
			StatusCode: http.StatusUnauthorized,
			StatusText: http.StatusText(http.StatusUnauthorized),
			Body:       "API key not configured",
		}
	}

	body, err := json.Marshal(generateRequest{
		Contents:         []requestContent{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: c.generation,
		SafetySettings:   safetySettings,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	slog.Debug("calling gemini", "endpoint", c.endpoint, "prompt_len", len(prompt))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &UpstreamError{
			StatusCode: resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			Body:       string(respBody),
		}
	}

	var genResp generateResponse
	if err := json.Unmarshal(respBody, &genResp); err != nil {
		return "", &TransportError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	if len(genResp.Candidates) == 0 {
		return "", &EmptyResponseError{Reason: "no candidates"}
	}
	parts := genResp.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", &EmptyResponseError{Reason: "candidate has no parts"}
	}
	text := strings.TrimSpace(parts[0].Text)
	if text == "" {
		return "", &EmptyResponseError{Reason: "candidate text is empty"}
	}

	return text, nil
}
