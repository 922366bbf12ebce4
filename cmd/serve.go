package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mj1618/autosave-cli/internal/server"
	"github.com/mj1618/autosave-cli/internal/version"
)

// Serve flag names.
const (
	FlagTransport = "transport"
	FlagAddr      = "addr"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing save_now, list_windows and probe",
	Long: `Start a Model Context Protocol (MCP) server so agents can trigger a save or
inspect the target application. Calls are handled one at a time.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  autosave serve
  autosave serve --transport streamable-http --addr :8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addTargetFlags(serveCmd)
	serveCmd.Flags().String(FlagTransport, "", "Transport: stdio, streamable-http (default stdio)")
	serveCmd.Flags().String(FlagAddr, "", "Listen address for streamable-http (default localhost:8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	srv := server.New(s.engine, version.Version, s.logger)
	if err := srv.Serve(s.cfg.Serve.Transport, s.cfg.Serve.Addr); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
