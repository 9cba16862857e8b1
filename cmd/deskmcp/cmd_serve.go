package main

import (
	"deskmcp/internal/logging"
	"deskmcp/internal/mcpserver"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server on stdio",
	Long: `Start the MCP server. The server speaks the MCP protocol on
stdin/stdout and forwards every tool call to the service desk backend.

Logs go to stderr, or to deskmcp.log when DEBUG is set. Press Ctrl+C or
close stdin to stop.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	appLogger := logging.NewAppLogger()

	cfg, err := loadConfig()
	if err != nil {
		appLogger.Error("Error loading config", "error", err)
		return err
	}
	appLogger.Info("Configuration loaded successfully.", "backend", cfg.BaseURL, "timeout", cfg.Timeout)

	srv := mcpserver.NewServer(*cfg, appLogger)
	if err := srv.Start(); err != nil {
		appLogger.Error("Server stopped with error", "error", err)
		return err
	}
	return srv.Stop()
}
