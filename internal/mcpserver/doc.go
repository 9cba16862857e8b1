// Package mcpserver provides the Model Context Protocol (MCP) server for
// deskmcp using mcp-go.
//
// This package implements an MCP server that lets AI assistants operate a
// service-desk backend through a standardized protocol. Every tool wraps
// exactly one authenticated REST call against the backend and renders the
// outcome as a JSON text payload.
//
// # Implementation
//
// The package uses the mcp-go library (github.com/mark3labs/mcp-go).
//
// # Tool Contract
//
// Tools never raise protocol-level faults for domain failures. A tool call
// always yields a JSON payload: on success the serialized backend record
// (or array, or counter), on any failure an object of the shape
//
//	{"error": "<message>"}
//
// so that the calling assistant can always parse what it gets back. Input
// validation is limited to presence and non-blankness of required
// parameters; enumerations such as status and priority names are owned by
// the backend.
//
// # Usage
//
// The MCP server is typically started as a subprocess by AI assistants that
// support MCP integration. It can also be started manually for testing:
//
//	deskmcp
//
// The server reads JSON-RPC requests from stdin and writes responses to
// stdout until it receives EOF or is terminated. Logs go to stderr or to a
// debug file, never to stdout.
//
// # Architecture
//
// The Server struct contains:
//   - cfg: resolved runtime configuration (backend URL, token, timeout)
//   - logger: application logger for debugging and audit
//   - requests: typed client for the service-request endpoints
//   - issues: typed client for the issue-ticket endpoints
//   - mcp: the underlying mcp-go server instance
package mcpserver
