// Package research answers queries and summarizes documents: it builds the
// prompt, calls the model and validates the reply, substituting a synthetic
// response whenever any step fails.
package research

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/iter"

	"github.com/mfenderov/docqa/internal/content"
	"github.com/mfenderov/docqa/internal/events"
	"github.com/mfenderov/docqa/internal/fallback"
	"github.com/mfenderov/docqa/internal/prompt"
	"github.com/mfenderov/docqa/internal/response"
	"github.com/mfenderov/docqa/pkg/models"
)

// PreconditionError reports a request that cannot be served at all.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string { return e.Reason }

// ErrNoReadyDocuments is returned when no input document has status ready.
var ErrNoReadyDocuments = &PreconditionError{Reason: "no documents ready for querying"}

// ErrGeneratorDisabled is the recorded cause when no Generator is configured.
var ErrGeneratorDisabled = errors.New("generator disabled")

// Generator produces model text for a prompt. *gemini.Client implements it.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Options tune a Service. The zero value is usable.
type Options struct {
	Seed            uint64             // fixes fallback and citation-repair randomness
	MaxParallel     int                // concurrent summaries; <= 0 selects GOMAXPROCS
	MaxContentChars int                // extracted text per document in prompts
	Classifier      content.Classifier // nil selects the keyword classifier
	Observer        events.Observer    // optional
}

// Service runs query and summary requests.
type Service struct {
	gen         Generator
	content     *content.Synthesizer
	prompts     *prompt.Builder
	parser      *response.Parser
	fallback    *fallback.Synthesizer
	maxParallel int
	observer    events.Observer
}

// New creates a Service. A nil gen sends every request to the fallback.
func New(gen Generator, opts Options) *Service {
	synth := content.NewSynthesizer(opts.Classifier)
	fb := fallback.New(synth, opts.Seed)

	maxParallel := opts.MaxParallel
	if maxParallel <= 0 {
		maxParallel = runtime.GOMAXPROCS(0)
	}

	return &Service{
		gen:         gen,
		content:     synth,
		prompts:     prompt.New(synth, opts.MaxContentChars),
		parser:      response.NewParser(fb, opts.Seed),
		fallback:    fb,
		maxParallel: maxParallel,
		observer:    opts.Observer,
	}
}

// AnswerQuery answers query over the ready subset of docs. The only error
// returned is ErrNoReadyDocuments; model and parse failures yield the
// fallback response.
func (s *Service) AnswerQuery(ctx context.Context, query string, docs []models.Document) (models.QueryResponse, error) {
	ready := models.ReadyDocuments(docs)
	if len(ready) == 0 {
		return models.QueryResponse{}, ErrNoReadyDocuments
	}

	req := s.begin(events.KindQuery, "")
	p := s.prompts.Query(query, ready)
	slog.Debug("answering query", "request_id", req.id, "documents", len(ready), "prompt_len", len(p))

	raw, err := s.generate(ctx, req, p)
	if err != nil {
		return s.queryFallback(req, query, ready, err), nil
	}

	req.emit(events.StateParsing, nil)
	resp, err := s.parser.DecodeQuery(raw, ready)
	if err != nil {
		return s.queryFallback(req, query, ready, err), nil
	}

	req.finish(false)
	return resp, nil
}

func (s *Service) queryFallback(req *request, query string, ready []models.Document, cause error) models.QueryResponse {
	slog.Warn("query failed, using fallback", "request_id", req.id, "error", cause)
	req.emit(events.StateFallback, cause)
	resp := s.fallback.Query(query, ready).Normalize()
	req.finish(true)
	return resp
}

// SummarizeDocument summarizes one document. It never fails.
func (s *Service) SummarizeDocument(ctx context.Context, doc models.Document) models.DocumentSummary {
	req := s.begin(events.KindSummary, doc.ID)
	synthesized := s.content.Content(doc.Name, doc.Type)
	p := s.prompts.Summary(doc)

	raw, err := s.generate(ctx, req, p)
	if err != nil {
		return s.summaryFallback(req, doc, synthesized, err)
	}

	req.emit(events.StateParsing, nil)
	sum, err := s.parser.DecodeSummary(raw, doc)
	if err != nil {
		return s.summaryFallback(req, doc, synthesized, err)
	}

	req.finish(false)
	return sum
}

func (s *Service) summaryFallback(req *request, doc models.Document, synthesized string, cause error) models.DocumentSummary {
	slog.Warn("summary failed, using fallback", "request_id", req.id, "document", doc.Name, "error", cause)
	req.emit(events.StateFallback, cause)
	sum := s.fallback.Summary(doc, synthesized).Normalize()
	req.finish(true)
	return sum
}

// SummarizeDocuments summarizes every ready document concurrently. Results
// follow input order.
func (s *Service) SummarizeDocuments(ctx context.Context, docs []models.Document) ([]models.DocumentSummary, error) {
	ready := models.ReadyDocuments(docs)
	if len(ready) == 0 {
		return nil, ErrNoReadyDocuments
	}

	mapper := iter.Mapper[models.Document, models.DocumentSummary]{MaxGoroutines: s.maxParallel}
	return mapper.Map(ready, func(doc *models.Document) models.DocumentSummary {
		return s.SummarizeDocument(ctx, *doc)
	}), nil
}

func (s *Service) generate(ctx context.Context, req *request, p string) (string, error) {
	if s.gen == nil {
		return "", ErrGeneratorDisabled
	}
	req.emit(events.StateCallingModel, nil)
	return s.gen.Generate(ctx, p)
}

// request tracks one run through the state machine.
type request struct {
	id         string
	kind       events.Kind
	documentID string
	start      time.Time
	observer   events.Observer
}

func (s *Service) begin(kind events.Kind, documentID string) *request {
	req := &request{
		id:         uuid.NewString(),
		kind:       kind,
		documentID: documentID,
		start:      time.Now(),
		observer:   s.observer,
	}
	req.emit(events.StateBuildingPrompt, nil)
	return req
}

func (r *request) emit(state events.State, err error) {
	r.publish(events.Event{State: state, Err: err})
}

func (r *request) finish(usedFallback bool) {
	r.publish(events.Event{
		State:    events.StateResult,
		Fallback: usedFallback,
		Duration: time.Since(r.start),
	})
}

func (r *request) publish(e events.Event) {
	if r.observer == nil {
		return
	}
	e.RequestID = r.id
	e.Kind = r.kind
	e.DocumentID = r.documentID
	e.Timestamp = time.Now()
	r.observer(e)
}
