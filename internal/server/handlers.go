package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/autosave-cli/internal/model"
)

// toText serializes a tool result to YAML for the MCP response.
func toText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}

func (s *Server) handleSaveNow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	mode := s.engine.Options().Mode
	if raw := stringParam(params, "mode", ""); raw != "" {
		m, err := model.ParseMode(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		mode = m
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.engine.RunMode(context.WithoutCancel(ctx), mode)
	s.logger.Info("save_now", "label", out.Label, "status", out.Status, "attempts", len(out.Attempts))
	if !out.Status.OK() {
		return mcp.NewToolResultError(toText(out)), nil
	}
	return mcp.NewToolResultText(toText(out)), nil
}

func (s *Server) handleListWindows(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	focus := boolParam(request.GetArguments(), "focus", false)

	s.mu.Lock()
	defer s.mu.Unlock()

	report := s.engine.Windows(ctx, focus)
	if report.Status == model.StatusNoProcess {
		return mcp.NewToolResultError(toText(report)), nil
	}
	return mcp.NewToolResultText(toText(report)), nil
}

func (s *Server) handleProbe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	focus := boolParam(request.GetArguments(), "focus", false)

	s.mu.Lock()
	defer s.mu.Unlock()

	report := s.engine.Probe(ctx, focus)
	return mcp.NewToolResultText(toText(report)), nil
}

// Parameter extraction helpers for tool arguments

func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

func boolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}
