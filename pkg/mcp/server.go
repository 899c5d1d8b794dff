package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// maxLineBytes bounds a single JSON-RPC line. Tool calls carry whole
// spreadsheets inline, so the limit is generous.
const maxLineBytes = 16 * 1024 * 1024

// Server dispatches JSON-RPC requests read from a stream to registered tools.
type Server struct {
	info   ServerInfo
	logger *log.Logger

	mu     sync.Mutex // guards writes to out
	out    io.Writer
	tools  []Tool
	byName map[string]Tool
}

// NewServer creates a server writing responses to out.
func NewServer(info ServerInfo, out io.Writer, logger *log.Logger) *Server {
	return &Server{
		info:   info,
		logger: logger,
		out:    out,
		byName: make(map[string]Tool),
	}
}

// Register adds a tool to the server. Registering the same name twice
// replaces the earlier definition but keeps its list position.
func (s *Server) Register(t Tool) {
	if _, ok := s.byName[t.Name]; ok {
		for i := range s.tools {
			if s.tools[i].Name == t.Name {
				s.tools[i] = t
				break
			}
		}
	} else {
		s.tools = append(s.tools, t)
	}
	s.byName[t.Name] = t
}

// RegisterAll registers each tool in order.
func (s *Server) RegisterAll(tools []Tool) {
	for _, t := range tools {
		s.Register(t)
	}
}

// Run reads newline-delimited requests from in until EOF or context
// cancellation. Requests are handled sequentially in arrival order.
func (s *Server) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		s.dispatch(ctx, line)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read request stream: %w", err)
	}
	s.logger.Info("stdin closed, shutting down")
	return nil
}

func (s *Server) dispatch(ctx context.Context, line []byte) {
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		s.logger.Error("malformed request", "err", err)
		// A parse error has no usable id; answer with null per JSON-RPC.
		s.send(Response{
			JSONRPC: "2.0",
			ID:      json.RawMessage("null"),
			Error:   &Error{Code: CodeParseError, Message: "parse error: invalid JSON"},
		})
		return
	}

	switch req.Method {
	case "initialize":
		s.respond(req.ID, InitializeResult{
			ProtocolVersion: ProtocolVersion,
			ServerInfo:      s.info,
			Capabilities:    map[string]any{"tools": map[string]any{}},
		})
	case "tools/list":
		s.respond(req.ID, toolsListResult{Tools: s.tools})
	case "tools/call":
		s.handleCall(ctx, req)
	default:
		// Notifications for unknown methods are dropped silently.
		if req.ID != nil {
			s.respondError(req.ID, CodeMethodNotFound, fmt.Sprintf("method not found: %s", req.Method))
		}
	}
}

func (s *Server) handleCall(ctx context.Context, req Request) {
	var params callParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		s.respondError(req.ID, CodeInvalidParams, "invalid tools/call params")
		return
	}

	tool, ok := s.byName[params.Name]
	if !ok {
		s.respondError(req.ID, CodeToolError, fmt.Sprintf("unknown tool: %s", params.Name))
		return
	}

	result, err := tool.Handler(ctx, params.Arguments)
	if err != nil {
		s.logger.Error("tool call failed", "tool", params.Name, "err", err)
		s.respondError(req.ID, CodeToolError, err.Error())
		return
	}

	text, err := json.Marshal(result)
	if err != nil {
		s.respondError(req.ID, CodeToolError, fmt.Sprintf("encode result: %v", err))
		return
	}
	s.respond(req.ID, callResult{Content: []content{{Type: "text", Text: string(text)}}})
}

func (s *Server) respond(id json.RawMessage, result any) {
	if id == nil {
		return
	}
	s.send(Response{JSONRPC: "2.0", ID: id, Result: result})
}

func (s *Server) respondError(id json.RawMessage, code int, message string) {
	if id == nil {
		return
	}
	s.send(Response{JSONRPC: "2.0", ID: id, Error: &Error{Code: code, Message: message}})
}

func (s *Server) send(resp Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		s.logger.Error("encode response", "err", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.out.Write(append(data, '\n')); err != nil {
		s.logger.Error("write response", "err", err)
	}
}
