package models

// Collection limits enforced on every response.
const (
	MaxCitations           = 3
	MaxThemes              = 3
	MaxSupportingDocuments = 4
	MaxKeyPoints           = 5
	MaxTopics              = 4
)

// Range is a closed confidence interval.
type Range struct {
	Min float64
	Max float64
}

// Clamp pins x into the range.
func (r Range) Clamp(x float64) float64 {
	if x < r.Min {
		return r.Min
	}
	if x > r.Max {
		return r.Max
	}
	return x
}

// Contains reports whether x lies inside the range.
func (r Range) Contains(x float64) bool {
	return x >= r.Min && x <= r.Max
}

// Published confidence ranges.
var (
	ResultConfidence  = Range{Min: 0.5, Max: 0.95}
	ThemeConfidence   = Range{Min: 0.6, Max: 0.95}
	SummaryConfidence = Range{Min: 0.6, Max: 0.95}
)

// Citation points at supporting evidence inside a document.
type Citation struct {
	Page      int    `json:"page,omitempty"` // 0 when unknown
	Paragraph int    `json:"paragraph"`
	Text      string `json:"text"`
}

// QueryResult is the answer drawn from a single document.
type QueryResult struct {
	DocumentID   string     `json:"documentId"`
	DocumentName string     `json:"documentName"`
	Answer       string     `json:"answer"`
	Summary      string     `json:"summary,omitempty"`
	Citations    []Citation `json:"citations"`
	Confidence   float64    `json:"confidence"`
}

// Theme is a pattern observed across documents.
type Theme struct {
	Title               string   `json:"title"`
	Summary             string   `json:"summary"`
	SupportingDocuments []string `json:"supportingDocuments"`
	Confidence          float64  `json:"confidence"`
}

// QueryResponse is the outcome of answering a query.
type QueryResponse struct {
	Results []QueryResult `json:"results"`
	Themes  []Theme       `json:"themes"`
}

// Normalize replaces nil collections with empty ones so the JSON form
// always carries arrays.
func (r QueryResponse) Normalize() QueryResponse {
	if r.Results == nil {
		r.Results = []QueryResult{}
	}
	if r.Themes == nil {
		r.Themes = []Theme{}
	}
	for i := range r.Results {
		if r.Results[i].Citations == nil {
			r.Results[i].Citations = []Citation{}
		}
	}
	for i := range r.Themes {
		if r.Themes[i].SupportingDocuments == nil {
			r.Themes[i].SupportingDocuments = []string{}
		}
	}
	return r
}

// DocumentSummary is the analysis of one document.
type DocumentSummary struct {
	DocumentID   string   `json:"documentId"`
	DocumentName string   `json:"documentName"`
	Summary      string   `json:"summary"`
	KeyPoints    []string `json:"keyPoints"`
	WordCount    int      `json:"wordCount"`
	Topics       []string `json:"topics"`
	Confidence   float64  `json:"confidence"`
}

// Normalize replaces nil collections with empty ones.
func (s DocumentSummary) Normalize() DocumentSummary {
	if s.KeyPoints == nil {
		s.KeyPoints = []string{}
	}
	if s.Topics == nil {
		s.Topics = []string{}
	}
	return s
}
