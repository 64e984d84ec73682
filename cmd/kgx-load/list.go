package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/turbot/kgx-ingest-sdk/loader"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered loaders",
		Run: func(cmd *cobra.Command, args []string) {
			for _, id := range loader.Factory.Identifiers() {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
		},
	}
}
