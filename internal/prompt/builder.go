package prompt

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/mfenderov/docqa/internal/content"
	"github.com/mfenderov/docqa/pkg/models"
)

// DefaultMaxContentChars limits extracted text embedded per document.
// Gemini 1.5 Flash has a 1M token context; 20k chars per document keeps
// multi-document prompts well inside it.
const DefaultMaxContentChars = 20000

// Builder renders prompts for the generative model.
type Builder struct {
	synth           *content.Synthesizer
	maxContentChars int
}

// New creates a Builder. maxContentChars <= 0 selects DefaultMaxContentChars.
func New(synth *content.Synthesizer, maxContentChars int) *Builder {
	if synth == nil {
		synth = content.NewSynthesizer(nil)
	}
	if maxContentChars <= 0 {
		maxContentChars = DefaultMaxContentChars
	}
	return &Builder{synth: synth, maxContentChars: maxContentChars}
}

// Query builds the research prompt for a query over ready documents.
// Callers must filter out non-ready documents and reject an empty set first.
func (b *Builder) Query(query string, docs []models.Document) string {
	blocks := make([]string, len(docs))
	for i, doc := range docs {
		blocks[i] = b.documentBlock(i+1, doc)
	}

	return fmt.Sprintf(queryTemplate, query, strings.Join(blocks, "\n\n"))
}

func (b *Builder) documentBlock(n int, doc models.Document) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== DOCUMENT %d ===\n", n)
	fmt.Fprintf(&sb, "Document ID: %s\n", doc.ID)
	fmt.Fprintf(&sb, "Document Name: %s\n", doc.Name)
	fmt.Fprintf(&sb, "Document Type: %s\n", doc.Type)
	fmt.Fprintf(&sb, "Document Size: %s\n", formatSize(doc.Size))
	fmt.Fprintf(&sb, "Content Analysis: %s\n", b.synth.Content(doc.Name, doc.Type))
	fmt.Fprintf(&sb, "Content Summary: %s\n", b.synth.QuickSummary(doc.Name, doc.Type))
	if text := b.truncate(doc.Content); text != "" {
		fmt.Fprintf(&sb, "Extracted Text:\n%s\n", text)
	}
	sb.WriteString("===========================")
	return sb.String()
}

// Summary builds the analysis prompt for a single document.
func (b *Builder) Summary(doc models.Document) string {
	body := b.synth.Content(doc.Name, doc.Type)
	if text := b.truncate(doc.Content); text != "" {
		body += "\n\nExtracted Text:\n" + text
	}

	return fmt.Sprintf(summaryTemplate,
		doc.Name, doc.Type, body,
		doc.ID, doc.Name,
		len(body)/5,
	)
}

func (b *Builder) truncate(text string) string {
	text = strings.TrimSpace(text)
	if len(text) <= b.maxContentChars {
		return text
	}
	// cut on a rune boundary so the prompt stays valid UTF-8
	end := b.maxContentChars
	for end > 0 && !utf8.RuneStart(text[end]) {
		end--
	}
	return text[:end]
}

func formatSize(size int64) string {
	if size <= 0 {
		return "Unknown"
	}
	return fmt.Sprintf("%dKB", int64(math.Round(float64(size)/1024)))
}

const queryTemplate = `You are an expert research analyst with advanced document analysis capabilities. Your task is to provide precise, evidence-based answers to research queries by thoroughly analyzing the provided documents.

RESEARCH QUERY: "%s"

DOCUMENT COLLECTION FOR ANALYSIS:
%s

ANALYSIS INSTRUCTIONS:
1. Carefully read and understand the user's research question
2. Analyze each document for relevant information that directly addresses the query
3. Extract specific evidence, data points, and insights from each relevant document
4. Provide detailed, accurate answers with proper source attribution
5. Identify cross-document themes and patterns
6. Assign confidence scores based on evidence quality and relevance

RESPONSE FORMAT (JSON ONLY):
{
  "results": [
    {
      "documentId": "document_id",
      "documentName": "document_name",
      "answer": "Comprehensive, detailed answer addressing the query based on this specific document. Include specific facts, figures, and insights found in the document.",
      "summary": "Brief 1-sentence summary of what this document contributes to answering the query",
      "citations": [
        {
          "page": 1,
          "paragraph": 2,
          "text": "Direct quote or paraphrase from the document that supports the answer"
        },
        {
          "page": 2,
          "paragraph": 1,
          "text": "Additional supporting evidence from the document"
        }
      ],
      "confidence": 0.87
    }
  ],
  "themes": [
    {
      "title": "Primary Theme Title",
      "summary": "Detailed explanation of this theme and how it emerges across multiple documents. Include specific examples and evidence.",
      "supportingDocuments": ["document1.pdf", "document2.txt"],
      "confidence": 0.91
    },
    {
      "title": "Secondary Theme Title",
      "summary": "Explanation of secondary patterns or themes found across the document collection.",
      "supportingDocuments": ["document2.txt", "document3.docx"],
      "confidence": 0.78
    }
  ]
}

QUALITY REQUIREMENTS:
- Only include documents that contain relevant information for the query
- Provide specific, factual answers backed by document evidence
- Include 2-3 precise citations per relevant document
- Extract meaningful, contextual text excerpts for citations
- Assign realistic confidence scores (0.6-0.95 range)
- Identify 2-4 meaningful themes with cross-document analysis
- Ensure all JSON is properly formatted and complete

Return ONLY the JSON response with no additional text or formatting.`

const summaryTemplate = `You are an expert document analyst. Analyze the following document and provide a comprehensive summary.

DOCUMENT TO ANALYZE:
Document Name: %s
Document Type: %s
Content: %s

Please provide your analysis in the following JSON format:
{
  "documentId": "%s",
  "documentName": "%s",
  "summary": "A comprehensive 2-3 sentence summary of the document's main content and purpose",
  "keyPoints": [
    "First key point or finding from the document",
    "Second key point or finding from the document",
    "Third key point or finding from the document",
    "Fourth key point or finding from the document"
  ],
  "wordCount": %d,
  "topics": [
    "Primary topic or theme",
    "Secondary topic or theme",
    "Tertiary topic or theme"
  ],
  "confidence": 0.92
}

ANALYSIS REQUIREMENTS:
1. Provide an accurate, concise summary that captures the document's essence
2. Extract 3-5 key points that represent the most important information
3. Identify 2-4 main topics or themes covered
4. Assign confidence based on content clarity and completeness
5. Ensure all JSON is properly formatted and valid

Return ONLY the JSON response, no additional text.`
