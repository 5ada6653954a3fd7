package fallback

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mfenderov/docqa/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeDocs(n int) []models.Document {
	docs := make([]models.Document, n)
	for i := range docs {
		docs[i] = models.Document{
			ID:     fmt.Sprintf("doc-%d", i+1),
			Name:   fmt.Sprintf("file%d.pdf", i+1),
			Status: models.StatusReady,
		}
	}
	return docs
}

func TestQuery_ResultCount(t *testing.T) {
	s := New(nil, 1)

	for _, n := range []int{1, 2, 4, 6} {
		t.Run(fmt.Sprintf("%d docs", n), func(t *testing.T) {
			resp := s.Query("design patterns", makeDocs(n))
			assert.Len(t, resp.Results, min(4, n))
			assert.Len(t, resp.Themes, 2)
		})
	}
}

func TestQuery_Invariants(t *testing.T) {
	s := New(nil, 42)
	resp := s.Query("What are SOLID principles?", makeDocs(5))

	for _, r := range resp.Results {
		assert.GreaterOrEqual(t, r.Confidence, 0.72)
		assert.LessOrEqual(t, r.Confidence, 0.90)
		assert.True(t, models.ResultConfidence.Contains(r.Confidence))
		require.Len(t, r.Citations, 2)
		for _, c := range r.Citations {
			assert.GreaterOrEqual(t, c.Page, 1)
			assert.LessOrEqual(t, c.Page, 15)
			assert.GreaterOrEqual(t, c.Paragraph, 1)
			assert.LessOrEqual(t, c.Paragraph, 12)
			assert.Contains(t, c.Text, r.DocumentName)
		}
		assert.Contains(t, r.Answer, `"What are SOLID principles?"`)
		assert.Contains(t, r.Summary, r.DocumentName)
	}

	primary, method := resp.Themes[0], resp.Themes[1]
	assert.Equal(t, "Primary Research Theme: What are SOLID principles?", primary.Title)
	assert.Equal(t, []string{"file1.pdf", "file2.pdf", "file3.pdf"}, primary.SupportingDocuments)
	assert.Equal(t, 0.84, primary.Confidence)
	assert.Contains(t, method.Title, "What are SOLID principles?")
	assert.Equal(t, []string{"file2.pdf", "file3.pdf", "file4.pdf"}, method.SupportingDocuments)
	assert.Equal(t, 0.76, method.Confidence)
}

func TestQuery_SingleDocumentThemes(t *testing.T) {
	resp := New(nil, 0).Query("q", makeDocs(1))

	assert.Equal(t, []string{"file1.pdf"}, resp.Themes[0].SupportingDocuments)
	assert.NotNil(t, resp.Themes[1].SupportingDocuments)
	assert.Empty(t, resp.Themes[1].SupportingDocuments)
}

func TestQuery_Deterministic(t *testing.T) {
	docs := makeDocs(3)

	a := New(nil, 7).Query("q", docs)
	b := New(nil, 7).Query("q", docs)
	assert.Equal(t, a, b)

	c := New(nil, 8).Query("q", docs)
	assert.NotEqual(t, a.Results, c.Results, "different seeds should draw different values")
}

func TestSummary(t *testing.T) {
	s := New(nil, 0)

	tests := []struct {
		name      string
		doc       models.Document
		wantTopic string
		wantWords int
	}{
		{
			name:      "software engineering estimate",
			doc:       models.Document{ID: "1", Name: "SE_Unit3.pdf"},
			wantTopic: "Design Patterns",
			wantWords: len(strings.Repeat("x", 500)) / 5,
		},
		{
			name:      "policy with extracted text",
			doc:       models.Document{ID: "2", Name: "hr-policy.docx", Content: "one two  three\nfour"},
			wantTopic: "Compliance",
			wantWords: 4,
		},
		{
			name:      "general",
			doc:       models.Document{ID: "3", Name: "notes.txt"},
			wantTopic: "Best Practices",
			wantWords: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := s.Summary(tt.doc, strings.Repeat("x", 500))

			assert.Equal(t, tt.doc.ID, sum.DocumentID)
			assert.Equal(t, tt.doc.Name, sum.DocumentName)
			assert.NotEmpty(t, sum.Summary)
			assert.Contains(t, sum.Topics, tt.wantTopic)
			assert.LessOrEqual(t, len(sum.KeyPoints), models.MaxKeyPoints)
			assert.LessOrEqual(t, len(sum.Topics), models.MaxTopics)
			assert.Equal(t, tt.wantWords, sum.WordCount)
			assert.Equal(t, 0.85, sum.Confidence)
		})
	}
}
