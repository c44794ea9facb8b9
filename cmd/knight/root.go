package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	statsFlag bool
)

var rootCmd = &cobra.Command{
	Use:     "knight",
	Short:   "A tree-walking interpreter for the Knight language",
	Long:    `knight parses and evaluates programs written in the Knight language: a small, dynamically-typed language with a fixed set of one-character prefix operators.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&statsFlag, "stats", false, "print variable and interned-string counts after running")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
