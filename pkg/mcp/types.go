// Package mcp implements a Model Context Protocol server over stdio.
//
// The transport is newline-delimited JSON-RPC 2.0: one request per line on
// stdin, one response per line on stdout. Diagnostics never touch stdout.
package mcp

import (
	"context"
	"encoding/json"
)

// ProtocolVersion is the MCP protocol revision this server speaks.
const ProtocolVersion = "2024-11-05"

// JSON-RPC 2.0 error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeToolError      = -32000
)

// Request represents an incoming JSON-RPC request or notification.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	// ID is the request id, kept raw so number and string ids round-trip.
	// Nil for notifications, which must not be answered.
	ID     json.RawMessage `json:"id,omitempty"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

// Response represents an outgoing JSON-RPC response.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// Error is a JSON-RPC error object.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ServerInfo identifies the server in the initialize handshake.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// InitializeResult is the payload returned for the initialize method.
type InitializeResult struct {
	ProtocolVersion string         `json:"protocolVersion"`
	ServerInfo      ServerInfo     `json:"serverInfo"`
	Capabilities    map[string]any `json:"capabilities"`
}

// Property describes a single field of a tool's input schema.
type Property struct {
	Type        string    `json:"type,omitempty"`
	Description string    `json:"description,omitempty"`
	Default     any       `json:"default,omitempty"`
	Items       *Property `json:"items,omitempty"`
}

// InputSchema is the JSON schema advertised for a tool's arguments.
type InputSchema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required,omitempty"`
}

// Handler executes a tool call. The returned value is JSON-serialized into
// the text content of the tool result. A non-nil error becomes a JSON-RPC
// error response with CodeToolError.
type Handler func(ctx context.Context, args json.RawMessage) (any, error)

// Tool binds an advertised tool definition to its handler.
type Tool struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema InputSchema `json:"inputSchema"`
	Handler     Handler     `json:"-"`
}

// toolsListResult is the payload returned for tools/list.
type toolsListResult struct {
	Tools []Tool `json:"tools"`
}

// content is a single content block of a tool call result.
type content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// callResult wraps a tool's output for tools/call.
type callResult struct {
	Content []content `json:"content"`
}

// callParams are the params of a tools/call request.
type callParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}
