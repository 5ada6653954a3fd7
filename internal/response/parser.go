package response

import (
	"encoding/json"
	"hash/fnv"
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/mfenderov/docqa/internal/fallback"
	"github.com/mfenderov/docqa/pkg/models"
)

// Field defaults applied when the model omits or garbles a value.
const (
	DefaultDocumentName     = "Unknown Document"
	DefaultCitationText     = "Supporting evidence from document"
	DefaultThemeSummary     = "Theme identified across documents"
	DefaultDocumentSummary  = "Document summary not available"
	DefaultResultConfidence = 0.7
	DefaultThemeConfidence  = 0.75
	DefaultSummaryConf      = 0.8

	maxRepairPage      = 10
	maxRepairParagraph = 5
)

// Parser validates model replies. Decode* report malformed replies as
// errors; Parse* substitute the fallback response instead and never fail.
type Parser struct {
	fallback *fallback.Synthesizer
	seed     uint64
}

// NewParser creates a Parser. A nil fallback uses the default synthesizer
// with the same seed.
func NewParser(fb *fallback.Synthesizer, seed uint64) *Parser {
	if fb == nil {
		fb = fallback.New(nil, seed)
	}
	return &Parser{fallback: fb, seed: seed}
}

// ParseQuery decodes raw or falls back to a synthetic answer for docs.
func (p *Parser) ParseQuery(raw, query string, docs []models.Document) models.QueryResponse {
	resp, err := p.DecodeQuery(raw, docs)
	if err != nil {
		slog.Warn("unusable query reply, using fallback", "error", err)
		return p.fallback.Query(query, docs).Normalize()
	}
	return resp
}

// ParseSummary decodes raw or falls back to the canned summary for doc.
func (p *Parser) ParseSummary(raw string, doc models.Document, synthesized string) models.DocumentSummary {
	sum, err := p.DecodeSummary(raw, doc)
	if err != nil {
		slog.Warn("unusable summary reply, using fallback", "document", doc.Name, "error", err)
		return p.fallback.Summary(doc, synthesized).Normalize()
	}
	return sum
}

// DecodeQuery extracts and validates a query reply.
func (p *Parser) DecodeQuery(raw string, docs []models.Document) (models.QueryResponse, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return models.QueryResponse{}, err
	}

	rawResults, ok := array(obj, "results")
	if !ok {
		return models.QueryResponse{}, &ParseError{Reason: "results is not an array"}
	}
	rawThemes, ok := array(obj, "themes")
	if !ok {
		return models.QueryResponse{}, &ParseError{Reason: "themes is not an array"}
	}

	known := make(map[string]bool, len(docs))
	for _, d := range docs {
		known[d.ID] = true
	}

	rng := p.rng(raw)
	resp := models.QueryResponse{
		Results: []models.QueryResult{},
		Themes:  []models.Theme{},
	}

	for _, item := range rawResults {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		id := stringField(m, "documentId")
		answer := stringField(m, "answer")
		if id == "" || answer == "" {
			continue
		}
		if !known[id] {
			slog.Debug("result references unknown document", "document_id", id)
		}

		resp.Results = append(resp.Results, models.QueryResult{
			DocumentID:   id,
			DocumentName: stringOr(m, "documentName", DefaultDocumentName),
			Answer:       answer,
			Summary:      stringField(m, "summary"),
			Citations:    citations(m, rng),
			Confidence:   models.ResultConfidence.Clamp(numberOr(m, "confidence", DefaultResultConfidence)),
		})
	}

	for _, item := range rawThemes {
		if len(resp.Themes) == models.MaxThemes {
			break
		}
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		title := stringField(m, "title")
		if title == "" {
			continue
		}
		resp.Themes = append(resp.Themes, models.Theme{
			Title:               title,
			Summary:             stringOr(m, "summary", DefaultThemeSummary),
			SupportingDocuments: stringList(m, "supportingDocuments", models.MaxSupportingDocuments),
			Confidence:          models.ThemeConfidence.Clamp(numberOr(m, "confidence", DefaultThemeConfidence)),
		})
	}

	return resp, nil
}

// DecodeSummary extracts and validates a summary reply for doc.
func (p *Parser) DecodeSummary(raw string, doc models.Document) (models.DocumentSummary, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return models.DocumentSummary{}, err
	}

	wordCount := 0
	if n, ok := number(obj, "wordCount"); ok && n > 0 {
		wordCount = int(min(n, math.MaxInt32))
	}

	return models.DocumentSummary{
		DocumentID:   stringOr(obj, "documentId", doc.ID),
		DocumentName: stringOr(obj, "documentName", doc.Name),
		Summary:      stringOr(obj, "summary", DefaultDocumentSummary),
		KeyPoints:    stringList(obj, "keyPoints", models.MaxKeyPoints),
		WordCount:    wordCount,
		Topics:       stringList(obj, "topics", models.MaxTopics),
		Confidence:   models.SummaryConfidence.Clamp(numberOr(obj, "confidence", DefaultSummaryConf)),
	}, nil
}

func (p *Parser) rng(raw string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(raw))
	return rand.New(rand.NewPCG(p.seed, h.Sum64()))
}

func decodeObject(raw string) (map[string]any, error) {
	text, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return nil, &ParseError{Reason: "invalid JSON", Err: err}
	}
	return obj, nil
}

func citations(m map[string]any, rng *rand.Rand) []models.Citation {
	items, _ := m["citations"].([]any)
	out := []models.Citation{}
	for _, item := range items {
		if len(out) == models.MaxCitations {
			break
		}
		c, _ := item.(map[string]any)

		page := positiveInt(c, "page")
		if page == 0 {
			page = rng.IntN(maxRepairPage) + 1
		}
		paragraph := positiveInt(c, "paragraph")
		if paragraph == 0 {
			paragraph = rng.IntN(maxRepairParagraph) + 1
		}

		out = append(out, models.Citation{
			Page:      page,
			Paragraph: paragraph,
			Text:      stringOr(c, "text", DefaultCitationText),
		})
	}
	return out
}

// array reports false only when key holds a non-array value.
func array(m map[string]any, key string) ([]any, bool) {
	v, present := m[key]
	if !present || v == nil {
		return nil, true
	}
	items, ok := v.([]any)
	return items, ok
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func stringOr(m map[string]any, key, def string) string {
	if s := stringField(m, key); s != "" {
		return s
	}
	return def
}

// stringList keeps the string elements of an array field, cut to limit.
func stringList(m map[string]any, key string, limit int) []string {
	items, _ := m[key].([]any)
	out := []string{}
	for _, item := range items {
		if len(out) == limit {
			break
		}
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func number(m map[string]any, key string) (float64, bool) {
	n, ok := m[key].(float64)
	if !ok || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

func numberOr(m map[string]any, key string, def float64) float64 {
	if n, ok := number(m, key); ok {
		return n
	}
	return def
}

// positiveInt returns 0 for missing, non-numeric or non-positive values.
func positiveInt(m map[string]any, key string) int {
	n, ok := number(m, key)
	if !ok || n < 1 {
		return 0
	}
	return int(min(n, math.MaxInt32))
}
