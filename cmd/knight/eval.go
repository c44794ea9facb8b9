package main

import (
	"os"

	"github.com/spf13/cobra"

	"knight/internal/environment"
	"knight/internal/errors"
	"knight/internal/evaluator"
)

var evalExpr string

func init() {
	cmd := newEvalCmd()
	cmd.Flags().StringVarP(&evalExpr, "expr", "e", "", "Knight program text to evaluate")
	_ = cmd.MarkFlagRequired("expr")
	rootCmd.AddCommand(cmd)
}

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval",
		Short: "Evaluate a Knight program given on the command line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return evalString(evalExpr)
		},
	}
}

func evalString(src string) error {
	env := environment.New()
	v, err := evaluator.Play([]byte(src), env)
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
