package mcpserver

import (
	"context"
	"fmt"
	"time"

	"deskmcp/internal/config"
	"deskmcp/internal/logging"
	"deskmcp/internal/servicedesk"
	"deskmcp/internal/version"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server represents the deskmcp MCP server instance using mcp-go
type Server struct {
	cfg      config.Config
	logger   *logging.AppLogger
	requests *servicedesk.ServiceRequestClient
	issues   *servicedesk.IssueTicketClient
	mcp      *server.MCPServer
	tools    int
}

// NewServer builds the server, wires both resource clients over one
// shared authenticated HTTP client, and registers every tool.
func NewServer(cfg config.Config, logger *logging.AppLogger) *Server {
	auth := servicedesk.NewAuthenticator(cfg.APIToken)
	logger.Debug("Authenticator configured", "token_length", len(auth.Token()))

	s := &Server{
		cfg:      cfg,
		logger:   logger,
		requests: servicedesk.NewServiceRequestClient(cfg, auth),
		issues:   servicedesk.NewIssueTicketClient(cfg, auth),
	}

	s.mcp = server.NewMCPServer(
		"deskmcp",
		version.Get(),
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	s.registerTools()

	return s
}

// Start serves the MCP protocol on stdio until EOF or termination.
func (s *Server) Start() error {
	s.logger.Info("MCP server starting on stdio",
		"backend", s.cfg.BaseURL,
		"tools", s.tools,
	)

	if err := server.ServeStdio(s.mcp); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the MCP server
func (s *Server) Stop() error {
	s.logger.Info("Stopping MCP server")
	// The mcp-go server handles cleanup when the stdio stream closes
	return nil
}

// ToolCount reports how many tools are registered, for startup logs and
// smoke tests.
func (s *Server) ToolCount() int {
	return s.tools
}

func (s *Server) registerTools() {
	s.registerServiceRequestTools()
	s.registerIssueTicketTools()
	s.registerSummaryTools()
}

// addTool registers a tool with invocation logging wrapped around its
// handler.
func (s *Server) addTool(tool mcp.Tool, h server.ToolHandlerFunc) {
	s.mcp.AddTool(tool, s.withLogging(tool.Name, h))
	s.tools++
}

// withLogging tags every invocation with a correlation id and records
// duration. Handlers render their own failures, so a Go error escaping
// here means the handler itself is broken.
func (s *Server) withLogging(name string, h server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := s.logger.With("tool", name, "call_id", uuid.NewString())
		log.Debug("Tool invoked")
		start := time.Now()

		res, err := h(ctx, req)

		switch {
		case err != nil:
			log.Error("Tool handler failed", "error", err, "duration", time.Since(start))
		case res != nil && res.IsError:
			log.Warn("Tool returned error payload", "duration", time.Since(start))
		default:
			log.LogPerformance("tool "+name, start)
		}

		return res, err
	}
}
