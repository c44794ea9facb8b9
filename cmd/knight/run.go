package main

import (
	"os"

	"github.com/spf13/cobra"

	"knight/internal/environment"
	"knight/internal/errors"
	"knight/internal/evaluator"
)

func init() {
	rootCmd.AddCommand(newRunCmd())
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "Run a Knight program from a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(args[0])
		},
	}
}

func runFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	env := environment.New()
	v, err := evaluator.Play(source, env)
	if err != nil {
		if q, ok := err.(*errors.Quit); ok {
			maybePrintStats(env)
			os.Exit(q.Code)
		}
		return err
	}
	v.Decrement()
	maybePrintStats(env)
	env.Release()
	return nil
}
