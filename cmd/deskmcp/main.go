// Package main is the entry point for the deskmcp command.
//
// deskmcp bridges MCP (Model Context Protocol) clients and a service
// desk backend. The default command starts the MCP server on stdio;
// subcommands manage the stored API token and the configuration file.
// The startup sequence for the server is:
//
// 1. Resolve configuration (file, environment, keyring)
// 2. Initialize logging to stderr or a debug log file
// 3. Build the authenticated backend clients
// 4. Register the ticket tools and serve stdio until the client hangs up
//
// Stdout belongs to the MCP transport, so nothing else in the process
// is allowed to write to it while the server runs.
package main

func main() {
	Execute()
}
