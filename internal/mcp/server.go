package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mfenderov/docqa/internal/loader"
	"github.com/mfenderov/docqa/internal/research"
	"github.com/mfenderov/docqa/pkg/models"
)

// Config holds MCP server configuration.
type Config struct {
	Name    string
	Version string
	Timeout time.Duration // per tool call; 0 disables
	Root    string        // directory the paths argument may read from; "" disables paths
}

// Server exposes the research service as MCP tools.
type Server struct {
	mcpServer *server.MCPServer
	service   *research.Service
	loader    *loader.Loader
	timeout   time.Duration
	root      string
}

// NewServer creates a new MCP server with query and summary tools.
func NewServer(config Config, service *research.Service, ld *loader.Loader) (*Server, error) {
	if service == nil {
		return nil, fmt.Errorf("research service is required")
	}
	if ld == nil {
		ld = loader.New(loader.Config{})
	}

	mcpServer := server.NewMCPServer(
		config.Name,
		config.Version,
		server.WithToolCapabilities(true),
	)

	root := ""
	if config.Root != "" {
		abs, err := resolve(config.Root)
		if err != nil {
			return nil, fmt.Errorf("invalid root %q: %w", config.Root, err)
		}
		root = abs
	}

	s := &Server{
		mcpServer: mcpServer,
		service:   service,
		loader:    ld,
		timeout:   config.Timeout,
		root:      root,
	}

	answerTool := mcp.NewTool("answer_query",
		mcp.WithDescription("Answer a research question from a set of documents. Returns per-document answers with citations and cross-document themes as JSON."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("The research question"),
		),
		mcp.WithString("documents",
			mcp.Description(`JSON array of documents: [{"id","name","type","size","status","content"}]`),
		),
		mcp.WithString("paths",
			mcp.Description("Comma-separated local file or directory paths to load as documents. Paths must lie inside the server's configured root; their contents are sent to the model."),
		),
	)
	mcpServer.AddTool(answerTool, s.answerHandler)

	summarizeTool := mcp.NewTool("summarize_documents",
		mcp.WithDescription("Summarize each ready document: summary, key points, topics and word count as JSON."),
		mcp.WithString("documents",
			mcp.Description(`JSON array of documents: [{"id","name","type","size","status","content"}]`),
		),
		mcp.WithString("paths",
			mcp.Description("Comma-separated local file or directory paths to load as documents. Paths must lie inside the server's configured root; their contents are sent to the model."),
		),
	)
	mcpServer.AddTool(summarizeTool, s.summarizeHandler)

	return s, nil
}

// answerHandler handles the answer_query tool call.
func (s *Server) answerHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil || strings.TrimSpace(query) == "" {
		return mcp.NewToolResultError("query parameter is required"), nil
	}

	docs, err := s.collectDocuments(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.service.AnswerQuery(ctx, query, docs)
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(resp)
}

// summarizeHandler handles the summarize_documents tool call.
func (s *Server) summarizeHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	docs, err := s.collectDocuments(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	summaries, err := s.service.SummarizeDocuments(ctx, docs)
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(map[string]any{"summaries": summaries})
}

// collectDocuments merges the inline documents with the loaded paths.
func (s *Server) collectDocuments(req mcp.CallToolRequest) ([]models.Document, error) {
	var docs []models.Document

	if raw := req.GetString("documents", ""); strings.TrimSpace(raw) != "" {
		if err := json.Unmarshal([]byte(raw), &docs); err != nil {
			return nil, fmt.Errorf("documents must be a JSON array of documents: %v", err)
		}
	}

	var paths []string
	for p := range strings.SplitSeq(req.GetString("paths", ""), ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	if len(paths) > 0 {
		if err := s.checkPaths(paths); err != nil {
			return nil, err
		}
		docs = append(docs, s.loader.Load(paths...)...)
	}

	if len(docs) == 0 {
		return nil, errors.New("provide documents or paths")
	}
	return docs, nil
}

// checkPaths rejects paths outside the root, after resolving symlinks.
func (s *Server) checkPaths(paths []string) error {
	if s.root == "" {
		return errors.New("paths are disabled: no root configured")
	}
	for _, p := range paths {
		abs, err := resolve(p)
		if err != nil {
			return fmt.Errorf("invalid path %q: %v", p, err)
		}
		rel, err := filepath.Rel(s.root, abs)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return fmt.Errorf("path %q is outside the allowed root", p)
		}
	}
	return nil
}

// resolve returns the absolute form of p with symlinks evaluated when p
// exists.
func resolve(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}

func (s *Server) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func toolError(err error) *mcp.CallToolResult {
	var perr *research.PreconditionError
	if errors.As(err, &perr) {
		return mcp.NewToolResultError(perr.Reason)
	}
	return mcp.NewToolResultError(fmt.Sprintf("request failed: %v", err))
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// ServeStdio starts the MCP server using stdio transport.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
