package main

import (
	"github.com/spf13/cobra"
)

var exitCode int

// Build the cobra command that handles our command line tool.
func rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kgx-load COMMAND [args]",
		Short: "Load biomedical source files into KGX nodes and edges",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		runCmd(),
		listCmd(),
	)

	return rootCmd
}

func Execute() int {
	rootCmd := rootCommand()
	if err := rootCmd.Execute(); err != nil {
		exitCode = -1
	}
	return exitCode
}
