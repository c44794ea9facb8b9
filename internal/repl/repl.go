// internal/repl/repl.go
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"knight/internal/environment"
	"knight/internal/errors"
	"knight/internal/evaluator"
)

// Start runs an interactive Knight session: one line of input is one
// Play call against a single Environment shared across the whole
// session, so variable assignments persist line to line. The ">>> "
// prompt is suppressed when stdin/stdout aren't an interactive
// terminal, so piping a script through the REPL entry point behaves
// like a plain batch run.
func Start() int {
	interactive := isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
	if interactive {
		fmt.Println("knight REPL | Ctrl-D to quit")
	}

	env := environment.New()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		if interactive {
			fmt.Print(">>> ")
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		v, err := evaluator.Play([]byte(line), env)
		if err != nil {
			if q, ok := err.(*errors.Quit); ok {
				env.Release()
				return q.Code
			}
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if interactive {
			fmt.Println(v.DebugString())
		}
		v.Decrement()
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		fmt.Fprintln(os.Stderr, err)
		env.Release()
		return 1
	}
	env.Release()
	return 0
}
