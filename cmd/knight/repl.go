package main

import (
	"os"

	"github.com/spf13/cobra"

	"knight/internal/repl"
)

func init() {
	rootCmd.AddCommand(newReplCmd())
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive Knight session",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			os.Exit(repl.Start())
		},
	}
}
