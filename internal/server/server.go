// Package server exposes the engine as MCP tools so an agent can trigger a
// save, inspect windows or dry-run a search without shelling out.
package server

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mj1618/autosave-cli/internal/engine"
)

// Transports supported by Serve.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "streamable-http"
)

// Server wraps the MCP server. Tool calls are serialized: only one attempt
// touches the accessibility tree at a time.
type Server struct {
	engine *engine.Engine
	logger *slog.Logger
	mu     sync.Mutex
	mcp    *mcpserver.MCPServer
}

// New creates a Server with all tools registered.
func New(eng *engine.Engine, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		engine: eng,
		logger: logger,
		mcp:    mcpserver.NewMCPServer("autosave", version),
	}
	s.registerTools()
	return s
}

// Serve starts the server on the given transport. addr is only used by
// streamable-http.
func (s *Server) Serve(transport, addr string) error {
	s.logger.Info("mcp server starting", "transport", transport, "addr", addr)
	switch transport {
	case TransportStdio, "":
		return mcpserver.ServeStdio(s.mcp)
	case TransportHTTP:
		return mcpserver.NewStreamableHTTPServer(s.mcp).Start(addr)
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("save_now",
			mcp.WithDescription("Find the save button in the target application and press it once. Returns the reported status and every attempt run."),
			mcp.WithString("mode",
				mcp.Description("Override the configured mode: auto, background-only, force-focus"),
				mcp.Enum("auto", "background-only", "force-focus"),
			),
		),
		s.handleSaveNow,
	)

	s.mcp.AddTool(
		mcp.NewTool("list_windows",
			mcp.WithDescription("List the target application's windows and which one would be searched"),
			mcp.WithBoolean("focus", mcp.Description("Activate the application before reading its windows")),
		),
		s.handleListWindows,
	)

	s.mcp.AddTool(
		mcp.NewTool("probe",
			mcp.WithDescription("Dry run: walk the selected window and report every element with its match decision, without pressing anything"),
			mcp.WithBoolean("focus", mcp.Description("Activate the application before reading its windows")),
		),
		s.handleProbe,
	)
}
