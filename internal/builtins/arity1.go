package builtins

import (
	"fmt"
	"os/exec"

	"knight/internal/errors"
	"knight/internal/value"
)

// eval implements "E": coerce the evaluated argument to a string and
// feed it to Play as a brand-new program, recursively.
func eval(args []value.Value, env value.Env) (value.Value, error) {
	v, err := args[0].Run(env)
	if err != nil {
		return value.Value{}, err
	}
	s, err := v.ToKString(env.Interner())
	v.Decrement()
	if err != nil {
		return value.Value{}, err
	}
	result, err := Play(s.Bytes(), env)
	s.Decrement()
	return result, err
}

// block implements "B": return the argument unevaluated, bumping its
// refcount since the caller now holds an independent reference to the
// same node.
func block(args []value.Value, env value.Env) (value.Value, error) {
	args[0].Increment()
	return args[0], nil
}

// call implements "C": evaluate the argument once (which, for a
// BLOCK-wrapped node, yields the wrapped node itself rather than its
// result), then evaluate whatever that produced.
func call(args []value.Value, env value.Env) (value.Value, error) {
	v, err := args[0].Run(env)
	if err != nil {
		return value.Value{}, err
	}
	result, err := v.Run(env)
	v.Decrement()
	return result, err
}

// shell implements "`": coerce the evaluated argument to a string,
// execute it via the system shell, and return its captured stdout.
func shell(args []value.Value, env value.Env) (value.Value, error) {
	v, err := args[0].Run(env)
	if err != nil {
		return value.Value{}, err
	}
	s, err := v.ToKString(env.Interner())
	v.Decrement()
	if err != nil {
		return value.Value{}, err
	}
	out, runErr := exec.Command("sh", "-c", string(s.Bytes())).Output()
	s.Decrement()
	if runErr != nil {
		return value.Value{}, errors.New(errors.DomainError, "shell command failed: %v", runErr)
	}
	return value.Str(env.Interner().Fetch(out)), nil
}

// quit implements "Q": coerce the evaluated argument to an integer
// exit code in [0, 255] and unwind the interpreter with errors.Quit.
func quit(args []value.Value, env value.Env) (value.Value, error) {
	v, err := args[0].Run(env)
	if err != nil {
		return value.Value{}, err
	}
	n, err := v.ToInt()
	v.Decrement()
	if err != nil {
		return value.Value{}, err
	}
	if n < 0 || n > 255 {
		return value.Value{}, errors.New(errors.DomainError, "quit code %d out of range [0,255]", n)
	}
	return value.Value{}, &errors.Quit{Code: int(n)}
}

// not implements "!": logical negation of the evaluated argument's
// boolean coercion.
func not(args []value.Value, env value.Env) (value.Value, error) {
	v, err := args[0].Run(env)
	if err != nil {
		return value.Value{}, err
	}
	b, err := v.ToBool()
	v.Decrement()
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(!b), nil
}

// length implements "L": the byte length of the evaluated argument's
// string coercion.
func length(args []value.Value, env value.Env) (value.Value, error) {
	v, err := args[0].Run(env)
	if err != nil {
		return value.Value{}, err
	}
	s, err := v.ToKString(env.Interner())
	v.Decrement()
	if err != nil {
		return value.Value{}, err
	}
	n := s.Len()
	s.Decrement()
	return value.Int(int64(n)), nil
}

// dump implements "D": print the evaluated argument's debug form
// (spec.md §6) to stdout and return it unchanged, un-decremented since
// ownership passes straight through to the caller.
func dump(args []value.Value, env value.Env) (value.Value, error) {
	v, err := args[0].Run(env)
	if err != nil {
		return value.Value{}, err
	}
	fmt.Print(v.DebugString())
	return v, nil
}

// output implements "O": print the evaluated argument's string
// coercion followed by a newline, unless the string ends in a
// backslash, in which case the backslash is dropped and no newline is
// printed.
func output(args []value.Value, env value.Env) (value.Value, error) {
	v, err := args[0].Run(env)
	if err != nil {
		return value.Value{}, err
	}
	s, err := v.ToKString(env.Interner())
	v.Decrement()
	if err != nil {
		return value.Value{}, err
	}
	b := s.Bytes()
	if len(b) > 0 && b[len(b)-1] == '\\' {
		fmt.Print(string(b[:len(b)-1]))
	} else {
		fmt.Println(string(b))
	}
	s.Decrement()
	return value.Null(), nil
}

// ascii implements "A": integer -> one-byte string, string -> its
// first byte as an integer.
func ascii(args []value.Value, env value.Env) (value.Value, error) {
	v, err := args[0].Run(env)
	if err != nil {
		return value.Value{}, err
	}
	defer v.Decrement()

	switch v.Tag() {
	case value.TagInteger:
		n := v.AsInt()
		if n < 0 || n > 255 {
			return value.Value{}, errors.New(errors.NotAnAsciiInteger, "ascii code %d out of range [0,255]", n)
		}
		return value.Str(env.Interner().Fetch([]byte{byte(n)})), nil
	case value.TagString:
		s := v.AsString()
		if s.Len() == 0 {
			return value.Value{}, errors.New(errors.EmptyString, "ascii of empty string")
		}
		return value.Int(int64(s.Bytes()[0])), nil
	default:
		return value.Value{}, errors.New(errors.InvalidType, "'A' expects an integer or string, got %s", v.TypeName())
	}
}
