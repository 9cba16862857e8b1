package main

import (
	"fmt"
	"os"

	"deskmcp/internal/config"
	"deskmcp/internal/version"

	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd starts the MCP server when invoked without a subcommand, so
// MCP client configurations can point at the bare binary.
var rootCmd = &cobra.Command{
	Use:   "deskmcp",
	Short: "MCP server for a service desk backend",
	Long: `deskmcp exposes service requests and issue tickets from a service
desk backend as MCP tools over stdio.

Point an MCP client (Claude Desktop, VS Code, ...) at the binary:

  {
    "mcpServers": {
      "deskmcp": {
        "command": "/path/to/deskmcp"
      }
    }
  }

Configuration is read from the config file, environment variables and
the system keyring. Run "deskmcp init" to write a starter config file
and "deskmcp token set" to store the API token.`,
	Version:      version.Get(),
	RunE:         runServe,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/deskmcp/config.yaml)")
}

// loadConfig resolves the effective configuration, honoring --config.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFrom(cfgFile)
	}
	return config.Load()
}
