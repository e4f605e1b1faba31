// Package mcpserver exposes a model adapter to external evaluation harnesses
// as MCP tools, using the official MCP Go SDK.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/germanamz/evalbridge/pkg/modeladapter"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	generateTool  = "generate"
	modelNameTool = "model_name"
)

var generateSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"prompt": {"type": "string", "description": "Prompt sent as a single user message."}
	},
	"required": ["prompt"]
}`)

// Server serves a Generator over the MCP protocol.
type Server struct {
	server *mcp.Server
	gen    modeladapter.Generator
}

// New creates a Server with the given name and version that answers tool
// calls with gen.
func New(name, version string, gen modeladapter.Generator) *Server {
	s := &Server{
		server: mcp.NewServer(&mcp.Implementation{
			Name:    name,
			Version: version,
		}, nil),
		gen: gen,
	}

	s.server.AddTool(&mcp.Tool{
		Name:        generateTool,
		Description: fmt.Sprintf("Generate a completion for a prompt with %s and return its text.", gen.GetModelName()),
		InputSchema: generateSchema,
	}, s.handleGenerate)

	s.server.AddTool(&mcp.Tool{
		Name:        modelNameTool,
		Description: "Return the identifier of the model answering generate calls.",
		InputSchema: json.RawMessage(`{"type":"object"}`),
	}, s.handleModelName)

	return s
}

// Serve starts serving MCP requests. It reads requests from in and writes
// responses to out. It blocks until ctx is cancelled or the transport closes.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	transport := &mcp.IOTransport{
		Reader: io.NopCloser(in),
		Writer: nopWriteCloser{out},
	}

	return s.run(ctx, transport)
}

// run starts the server with the given transport. Exported via Serve for
// production use; called directly by tests with InMemoryTransport.
func (s *Server) run(ctx context.Context, transport mcp.Transport) error {
	return s.server.Run(ctx, transport)
}

type generateArgs struct {
	Prompt *string `json:"prompt"`
}

func (s *Server) handleGenerate(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args generateArgs
	if len(req.Params.Arguments) > 0 {
		if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
			return toolError(fmt.Errorf("invalid arguments: %w", err)), nil
		}
	}

	if args.Prompt == nil {
		return toolError(errors.New("prompt is required")), nil
	}

	text, err := s.gen.Generate(ctx, *args.Prompt)
	if err != nil {
		return toolError(err), nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}, nil
}

func (s *Server) handleModelName(_ context.Context, _ *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: s.gen.GetModelName()}},
	}, nil
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
		IsError: true,
	}
}

// nopWriteCloser wraps an io.Writer as an io.WriteCloser with a no-op Close.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
