package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"deskmcp/internal/credentials"

	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage the service desk API token",
	Long: `Manage the API token in the system keyring.

The server resolves its token from the DESKMCP_API_TOKEN environment
variable, the config file, or the keyring, in that order. Storing the
token here keeps it out of config files and MCP client configurations.`,
}

var tokenSetCmd = &cobra.Command{
	Use:   "set [token]",
	Short: "Store the API token in the system keyring",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := readToken(cmd, args)
		if err != nil {
			return err
		}

		if err := credentials.NewCredentialManager().StoreToken(token); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "API token stored.")
		return nil
	},
}

var tokenShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored API token, masked",
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := credentials.NewCredentialManager().GetToken()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "API token: %s (%d characters)\n", maskToken(token), len(token))
		return nil
	},
}

var tokenClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the API token from the system keyring",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := credentials.NewCredentialManager().DeleteToken(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "API token removed.")
		return nil
	},
}

var tokenStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check keyring availability and whether a token is stored",
	RunE: func(cmd *cobra.Command, args []string) error {
		cm := credentials.NewCredentialManager()
		status := cm.CheckStore()

		out := cmd.OutOrStdout()
		if status.Usable {
			fmt.Fprintln(out, "Credential store: usable")
		} else {
			fmt.Fprintln(out, "Credential store: not usable")
		}
		if status.Fault != "" {
			fmt.Fprintf(out, "  fault: %s\n", status.Fault)
		}
		if status.Note != "" {
			fmt.Fprintf(out, "  note: %s\n", status.Note)
		}

		if cm.HasToken() {
			fmt.Fprintln(out, "Stored API token: yes")
		} else {
			fmt.Fprintln(out, "Stored API token: no")
		}
		return nil
	},
}

func init() {
	tokenCmd.AddCommand(tokenSetCmd)
	tokenCmd.AddCommand(tokenShowCmd)
	tokenCmd.AddCommand(tokenClearCmd)
	tokenCmd.AddCommand(tokenStatusCmd)
	rootCmd.AddCommand(tokenCmd)
}

// readToken takes the token from the argument when given, otherwise
// reads one line from stdin so the token can be piped in.
func readToken(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read token from stdin: %w", err)
	}

	token := strings.TrimSpace(line)
	if token == "" {
		return "", fmt.Errorf("no token provided - pass it as an argument or pipe it on stdin")
	}
	return token, nil
}

// maskToken hides the middle of a token, keeping just enough of the
// ends to recognize it. Tokens at the minimum length are fully masked.
func maskToken(token string) string {
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", len(token)-8) + token[len(token)-4:]
}
