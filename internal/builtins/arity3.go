package builtins

import (
	"knight/internal/errors"
	"knight/internal/value"
)

// ifOp implements "I": evaluate the condition, then evaluate and
// return exactly one of the two branches — the other is never
// touched.
func ifOp(args []value.Value, env value.Env) (value.Value, error) {
	cond, err := args[0].Run(env)
	if err != nil {
		return value.Value{}, err
	}
	b, err := cond.ToBool()
	cond.Decrement()
	if err != nil {
		return value.Value{}, err
	}
	if b {
		return args[1].Run(env)
	}
	return args[2].Run(env)
}

// get implements "G": a [start, start+length) substring of the
// evaluated string argument. Negative start/length is a domain error;
// a range exceeding the string's length is out of bounds.
func get(args []value.Value, env value.Env) (value.Value, error) {
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

	if start < 0 || length < 0 {
		s.Decrement()
		return value.Value{}, errors.New(errors.DomainError, "'G' requires non-negative start/length, got start=%d length=%d", start, length)
	}
	if start+length > int64(s.Len()) {
		s.Decrement()
		return value.Value{}, errors.New(errors.OutOfBounds, "'G' range [%d,%d) exceeds string length %d", start, start+length, s.Len())
	}

	result := env.Interner().Substring(s, int(start), int(length))
	s.Decrement()
	return value.Str(result), nil
}
