// Package evaluator is Knight's outermost external interface
// (spec.md §6): Play parses one program from a byte slice and
// evaluates it to completion against a caller-supplied Environment.
//
// evaluator depends on both parser and builtins, but neither of those
// may import evaluator back (parser only needs builtins' function
// table; builtins only needs a recursive-evaluation hook for "E").
// That hook is wired here, once, in init — the same
// register-into-a-package-you-don't-import shape database/sql uses
// for drivers.
package evaluator

import (
	"knight/internal/builtins"
	"knight/internal/parser"
	"knight/internal/value"
)

func init() {
	builtins.Play = Play
}

// Play parses exactly one expression out of source, evaluates it, and
// releases the parsed tree (spec.md §2's "parses, evaluates, and
// releases"), returning only the owned result Value. This is the entry
// point "E", the REPL, and cmd/knight all funnel through.
func Play(source []byte, env value.Env) (value.Value, error) {
	tree, err := parser.Parse(source, env)
	if err != nil {
		return value.Value{}, err
	}
	return Run(tree, env)
}

// Run evaluates an already-parsed Value tree and releases it, exactly
// once, before returning. Exposed separately from Play for callers
// that already hold a parsed tree rather than raw source text.
func Run(tree value.Value, env value.Env) (value.Value, error) {
	result, err := tree.Run(env)
	tree.Decrement()
	return result, err
}
