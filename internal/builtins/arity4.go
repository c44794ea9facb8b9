package builtins

import (
	"knight/internal/errors"
	"knight/internal/value"
)

// set implements "S": replace the [start, start+length) range of the
// evaluated string argument with the evaluated replacement, returning
// the concatenation of the untouched prefix, the replacement, and the
// untouched suffix. Same bounds rules as "G".
func set(args []value.Value, env value.Env) (value.Value, error) {
	sv, err := args[0].Run(env)
	if err != nil {
		return value.Value{}, err
	}
	s, err := sv.ToKString(env.Interner())
	sv.Decrement()
	if err != nil {
		return value.Value{}, err
	}

	startV, err := args[1].Run(env)
	if err != nil {
		s.Decrement()
		return value.Value{}, err
	}
	start, err := startV.ToInt()
	startV.Decrement()
	if err != nil {
		s.Decrement()
		return value.Value{}, err
	}

	lenV, err := args[2].Run(env)
	if err != nil {
		s.Decrement()
		return value.Value{}, err
	}
	length, err := lenV.ToInt()
	lenV.Decrement()
	if err != nil {
		s.Decrement()
		return value.Value{}, err
	}

	replV, err := args[3].Run(env)
	if err != nil {
		s.Decrement()
		return value.Value{}, err
	}
	repl, err := replV.ToKString(env.Interner())
	replV.Decrement()
	if err != nil {
		s.Decrement()
		return value.Value{}, err
	}

	if start < 0 || length < 0 {
		s.Decrement()
		repl.Decrement()
		return value.Value{}, errors.New(errors.DomainError, "'S' requires non-negative start/length, got start=%d length=%d", start, length)
	}
	if start+length > int64(s.Len()) {
		s.Decrement()
		repl.Decrement()
		return value.Value{}, errors.New(errors.OutOfBounds, "'S' range [%d,%d) exceeds string length %d", start, start+length, s.Len())
	}

	prefix := env.Interner().Substring(s, 0, int(start))
	suffix := env.Interner().Substring(s, int(start+length), s.Len()-int(start+length))
	s.Decrement()

	withRepl := env.Interner().Concat(prefix, repl)
	prefix.Decrement()
	repl.Decrement()

	result := env.Interner().Concat(withRepl, suffix)
	withRepl.Decrement()
	suffix.Decrement()

	return value.Str(result), nil
}
