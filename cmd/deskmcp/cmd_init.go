package main

import (
	"fmt"

	"deskmcp/internal/config"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Long: `Write a starter config file with default values to the XDG config
directory. Edit base_url to point at your service desk backend, then
store the API token with "deskmcp token set".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if existing, ok := config.FindConfigFile(); ok {
			return fmt.Errorf("config file already exists at %s", existing)
		}

		path, err := config.ConfigPath()
		if err != nil {
			return err
		}

		cfg := config.DefaultConfig()
		if err := cfg.SaveTo(path); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		fmt.Fprintln(cmd.OutOrStdout(), "Set base_url to your service desk backend and run \"deskmcp token set\".")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
