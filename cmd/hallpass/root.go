package main

import (
	"github.com/spf13/cobra"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the Hallpass CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hallpass",
		Short: "Hallpass - a simulated web app with sessions",
		Long: `Hallpass simulates a small web application on the terminal:
registration, login, and a session-protected profile page, driven by
typed paths instead of HTTP requests.`,
	}

	// Global flag for config file path
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	// Add subcommands
	cmd.AddCommand(NewConsoleCmd())
	cmd.AddCommand(NewRoutesCmd())

	return cmd
}
