package builtins

import "knight/internal/value"

// Play is set by internal/evaluator during wiring. The "E" operator
// needs to parse-and-run a string as a brand new Knight program, which
// would otherwise require builtins to import evaluator while evaluator
// already imports builtins to wire the function table — the same
// registration-hook shape database/sql uses to let drivers register
// into a package they don't import.
var Play func(source []byte, env value.Env) (value.Value, error)
