// Package content produces placeholder document text keyed by the document's
// name. It stands in for a real ingestion stage: swap the Classifier (or the
// whole Synthesizer) for an extraction backend without touching the prompt or
// validation code.
package content

import (
	"fmt"
	"strings"
)

// Category is the coarse kind of a document.
type Category int

const (
	General Category = iota
	SoftwareEngineering
	Research
	Policy
)

func (c Category) String() string {
	switch c {
	case SoftwareEngineering:
		return "software-engineering"
	case Research:
		return "research"
	case Policy:
		return "policy"
	default:
		return "general"
	}
}

// Classifier maps a document name to a Category.
type Classifier interface {
	Classify(name string) Category
}

// KeywordClassifier matches case-insensitive substrings of the name.
type KeywordClassifier struct{}

// Classify implements Classifier.
func (KeywordClassifier) Classify(name string) Category {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "unit") && strings.Contains(lower, "se"):
		return SoftwareEngineering
	case strings.Contains(lower, "research") || strings.Contains(lower, "paper"):
		return Research
	case strings.Contains(lower, "policy") || strings.Contains(lower, "guideline"):
		return Policy
	default:
		return General
	}
}

// Profile is the canned material for one category.
type Profile struct {
	Category     Category
	Content      string // full template; General carries a %s for the name
	QuickSummary string
	Summary      string
	KeyPoints    []string
	Topics       []string
}

// Synthesizer renders placeholder content for documents.
type Synthesizer struct {
	classifier Classifier
}

// NewSynthesizer returns a Synthesizer using the given classifier.
// A nil classifier means KeywordClassifier.
func NewSynthesizer(classifier Classifier) *Synthesizer {
	if classifier == nil {
		classifier = KeywordClassifier{}
	}
	return &Synthesizer{classifier: classifier}
}

// Classify returns the category of the named document.
func (s *Synthesizer) Classify(name string) Category {
	return s.classifier.Classify(name)
}

// Profile returns a copy of the canned material for the named document.
func (s *Synthesizer) Profile(name string) Profile {
	p := profiles[s.Classify(name)]
	p.KeyPoints = append([]string(nil), p.KeyPoints...)
	p.Topics = append([]string(nil), p.Topics...)
	return p
}

// Content returns the full placeholder text for a document. The document
// type is accepted for interface stability; only the name drives the output.
func (s *Synthesizer) Content(name, docType string) string {
	cat := s.Classify(name)
	if cat == General {
		return fmt.Sprintf(generalContent, name)
	}
	return profiles[cat].Content
}

// QuickSummary returns a one-sentence description of a document.
func (s *Synthesizer) QuickSummary(name, docType string) string {
	return profiles[s.Classify(name)].QuickSummary
}
