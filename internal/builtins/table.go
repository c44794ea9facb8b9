// Package builtins implements Knight's fixed function table: the 29
// built-in operators described in spec.md §4.6, each as a
// *value.Function descriptor registered under its one-character name.
//
// Every operator here follows the same discipline spec.md §7 demands:
// each argument path and each return path accounts for exactly one net
// refcount transition. Arguments are value.Value (the parser's
// unevaluated node); an operator calls arg.Run(env) itself, exactly
// when and in the order spec.md prescribes, and is responsible for
// releasing (Decrement) every intermediate it forces but does not
// return.
package builtins

import "knight/internal/value"

var table = make(map[byte]*value.Function, 32)

func register(name byte, arity int, fn func(args []value.Value, env value.Env) (value.Value, error)) *value.Function {
	f := &value.Function{Name: name, Arity: arity, Fn: fn}
	table[name] = f
	return f
}

// Lookup returns the Function descriptor for a one-character operator
// name, and whether it exists. Used by the parser to build Block
// nodes.
func Lookup(name byte) (*value.Function, bool) {
	f, ok := table[name]
	return f, ok
}

// Arity-0
var (
	Prompt = register('P', 0, prompt)
	Random = register('R', 0, random)
)

// Arity-1
var (
	Eval   = register('E', 1, eval)
	Block  = register('B', 1, block)
	Call   = register('C', 1, call)
	Shell  = register('`', 1, shell)
	Quit   = register('Q', 1, quit)
	Not    = register('!', 1, not)
	Length = register('L', 1, length)
	Dump   = register('D', 1, dump)
	Output = register('O', 1, output)
	Ascii  = register('A', 1, ascii)
)

// Arity-2
var (
	Add    = register('+', 2, add)
	Sub    = register('-', 2, sub)
	Mul    = register('*', 2, mul)
	Div    = register('/', 2, div)
	Mod    = register('%', 2, mod)
	Pow    = register('^', 2, pow)
	Lt     = register('<', 2, lessThan)
	Gt     = register('>', 2, greaterThan)
	Eq     = register('?', 2, equals)
	And    = register('&', 2, and)
	Or     = register('|', 2, or)
	Seq    = register(';', 2, seq)
	While  = register('W', 2, while)
	Assign = register('=', 2, assign)
)

// Arity-3
var (
	If  = register('I', 3, ifOp)
	Get = register('G', 3, get)
)

// Arity-4
var (
	Set = register('S', 4, set)
)
