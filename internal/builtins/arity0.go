package builtins

import (
	"bufio"
	"os"
	"strings"

	"knight/internal/value"
)

var stdin = bufio.NewReader(os.Stdin)

// prompt implements "P": read one line from stdin, stripping the
// trailing newline and a preceding '\r' if present (tolerating
// Windows-style line endings per spec.md §4.6). End of input yields
// the null constant rather than an error.
func prompt(args []value.Value, env value.Env) (value.Value, error) {
	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		return value.Null(), nil
	}
	if strings.HasSuffix(line, "\n") {
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
	}
	return value.Str(env.Interner().Fetch([]byte(line))), nil
}

// random implements "R": the next PRNG draw, masked into Knight's
// logical non-negative integer range so it can never read back out of
// bounds regardless of the width env.NextRandom() actually returns.
func random(args []value.Value, env value.Env) (value.Value, error) {
	n := int64(env.NextRandom() & uint64(value.MaxInt))
	return value.Int(n), nil
}
