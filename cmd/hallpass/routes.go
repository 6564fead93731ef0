// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hallpass Contributors

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hallpass/hallpass/internal/web"
	"github.com/hallpass/hallpass/internal/web/handlers"
)

// NewRoutesCmd creates the routes subcommand.
func NewRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the registered routes",
		Long:  `List every path the console app responds to, with its source and description.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			routes := web.NewRouteTable()
			handlers.RegisterAll(routes)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PATH\tSOURCE\tDESCRIPTION")
			for _, entry := range routes.All() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", entry.Path, entry.Source, entry.Help)
			}
			if err := w.Flush(); err != nil {
				return fmt.Errorf("failed to write route table: %w", err)
			}
			return nil
		},
	}
}
