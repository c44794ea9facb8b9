package builtins

import (
	"knight/internal/errors"
	"knight/internal/kstring"
	"knight/internal/value"
)

func checkedAdd(a, b int64) (int64, error) {
	n := a + b
	if n > value.MaxInt || n < value.MinInt {
		return 0, errors.New(errors.Overflow, "integer overflow: %d + %d", a, b)
	}
	return n, nil
}

func checkedSub(a, b int64) (int64, error) {
	n := a - b
	if n > value.MaxInt || n < value.MinInt {
		return 0, errors.New(errors.Overflow, "integer overflow: %d - %d", a, b)
	}
	return n, nil
}

func checkedMul(a, b int64) (int64, error) {
	n := a * b
	if a != 0 && n/a != b {
		return 0, errors.New(errors.Overflow, "integer overflow: %d * %d", a, b)
	}
	if n > value.MaxInt || n < value.MinInt {
		return 0, errors.New(errors.Overflow, "integer overflow: %d * %d", a, b)
	}
	return n, nil
}

// add implements "+": integer sum, or string concatenation when the
// evaluated left-hand side is a string (the right-hand side is then
// coerced to string, not required to already be one).
func add(args []value.Value, env value.Env) (value.Value, error) {
	lhs, err := args[0].Run(env)
	if err != nil {
		return value.Value{}, err
	}
	switch lhs.Tag() {
	case value.TagInteger:
		rhs, err := args[1].Run(env)
		if err != nil {
			return value.Value{}, err
		}
		rn, err := rhs.ToInt()
		rhs.Decrement()
		if err != nil {
			return value.Value{}, err
		}
		n, err := checkedAdd(lhs.AsInt(), rn)
		if err != nil {
			return value.Value{}, err
		}
		return value.Int(n), nil
	case value.TagString:
		ls := lhs.AsString()
		rhs, err := args[1].Run(env)
		if err != nil {
			ls.Decrement()
			return value.Value{}, err
		}
		rs, err := rhs.ToKString(env.Interner())
		rhs.Decrement()
		if err != nil {
			ls.Decrement()
			return value.Value{}, err
		}
		result := env.Interner().Concat(ls, rs)
		ls.Decrement()
		rs.Decrement()
		return value.Str(result), nil
	default:
		lhs.Decrement()
		return value.Value{}, errors.New(errors.InvalidType, "'+' requires an integer or string left-hand side, got %s", lhs.TypeName())
	}
}

// sub implements "-": integer difference only.
func sub(args []value.Value, env value.Env) (value.Value, error) {
	lhs, err := args[0].Run(env)
	if err != nil {
		return value.Value{}, err
	}
	if lhs.Tag() != value.TagInteger {
		lhs.Decrement()
		return value.Value{}, errors.New(errors.InvalidType, "'-' requires an integer left-hand side, got %s", lhs.TypeName())
	}
	rhs, err := args[1].Run(env)
	if err != nil {
		return value.Value{}, err
	}
	rn, err := rhs.ToInt()
	rhs.Decrement()
	if err != nil {
		return value.Value{}, err
	}
	n, err := checkedSub(lhs.AsInt(), rn)
	if err != nil {
		return value.Value{}, err
	}
	return value.Int(n), nil
}

// mul implements "*": integer product, or string repetition when the
// evaluated left-hand side is a string and the right-hand side
// coerces to a non-negative integer count.
func mul(args []value.Value, env value.Env) (value.Value, error) {
	lhs, err := args[0].Run(env)
	if err != nil {
		return value.Value{}, err
	}
	switch lhs.Tag() {
	case value.TagInteger:
		rhs, err := args[1].Run(env)
		if err != nil {
			return value.Value{}, err
		}
		rn, err := rhs.ToInt()
		rhs.Decrement()
		if err != nil {
			return value.Value{}, err
		}
		n, err := checkedMul(lhs.AsInt(), rn)
		if err != nil {
			return value.Value{}, err
		}
		return value.Int(n), nil
	case value.TagString:
		ls := lhs.AsString()
		rhs, err := args[1].Run(env)
		if err != nil {
			ls.Decrement()
			return value.Value{}, err
		}
		rn, err := rhs.ToInt()
		rhs.Decrement()
		if err != nil {
			ls.Decrement()
			return value.Value{}, err
		}
		if rn < 0 {
			ls.Decrement()
			return value.Value{}, errors.New(errors.DomainError, "'*' requires a non-negative repeat count, got %d", rn)
		}
		result := env.Interner().Repeat(ls, int(rn))
		ls.Decrement()
		return value.Str(result), nil
	default:
		lhs.Decrement()
		return value.Value{}, errors.New(errors.InvalidType, "'*' requires an integer or string left-hand side, got %s", lhs.TypeName())
	}
}

func intPair(args []value.Value, env value.Env) (int64, int64, error) {
	lhs, err := args[0].Run(env)
	if err != nil {
		return 0, 0, err
	}
	a, err := lhs.ToInt()
	lhs.Decrement()
	if err != nil {
		return 0, 0, err
	}
	rhs, err := args[1].Run(env)
	if err != nil {
		return 0, 0, err
	}
	b, err := rhs.ToInt()
	rhs.Decrement()
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// div implements "/": integer division, truncating toward zero.
func div(args []value.Value, env value.Env) (value.Value, error) {
	a, b, err := intPair(args, env)
	if err != nil {
		return value.Value{}, err
	}
	if b == 0 {
		return value.Value{}, errors.New(errors.DivisionByZero, "division by zero")
	}
	if a == value.MinInt && b == -1 {
		return value.Value{}, errors.New(errors.Overflow, "integer overflow: %d / %d", a, b)
	}
	return value.Int(a / b), nil
}

// mod implements "%": integer remainder; the divisor must be
// strictly positive.
func mod(args []value.Value, env value.Env) (value.Value, error) {
	a, b, err := intPair(args, env)
	if err != nil {
		return value.Value{}, err
	}
	if b == 0 {
		return value.Value{}, errors.New(errors.DivisionByZero, "modulo by zero")
	}
	if b < 0 {
		return value.Value{}, errors.New(errors.NegativeDenominator, "modulo requires a positive denominator, got %d", b)
	}
	return value.Int(a % b), nil
}

// pow implements "^": integer exponentiation via repeated checked
// multiplication; negative exponents have no integer-valued inverse
// in Knight's arithmetic and are a domain error.
func pow(args []value.Value, env value.Env) (value.Value, error) {
	a, b, err := intPair(args, env)
	if err != nil {
		return value.Value{}, err
	}
	if b < 0 {
		return value.Value{}, errors.New(errors.DomainError, "'^' requires a non-negative exponent, got %d", b)
	}
	result := int64(1)
	for i := int64(0); i < b; i++ {
		result, err = checkedMul(result, a)
		if err != nil {
			return value.Value{}, err
		}
	}
	return value.Int(result), nil
}

// compare implements the ordering rule shared by "<" and ">": the
// evaluated left-hand side's tag selects the comparison (integer,
// boolean, or string order); the right-hand side is coerced to match.
// Returns -1, 0, or 1.
func compare(lhs value.Value, rawRHS value.Value, env value.Env) (int, error) {
	switch {
	case lhs.Tag() == value.TagInteger:
		rhs, err := rawRHS.Run(env)
		if err != nil {
			return 0, err
		}
		rn, err := rhs.ToInt()
		rhs.Decrement()
		if err != nil {
			return 0, err
		}
		a := lhs.AsInt()
		switch {
		case a < rn:
			return -1, nil
		case a > rn:
			return 1, nil
		default:
			return 0, nil
		}
	case lhs.Tag() == value.TagConstant && lhs.IsBool():
		rhs, err := rawRHS.Run(env)
		if err != nil {
			return 0, err
		}
		rb, err := rhs.ToBool()
		rhs.Decrement()
		if err != nil {
			return 0, err
		}
		lb := lhs.AsBool()
		switch {
		case !lb && rb:
			return -1, nil
		case lb && !rb:
			return 1, nil
		default:
			return 0, nil
		}
	case lhs.Tag() == value.TagString:
		ls := lhs.AsString()
		rhs, err := rawRHS.Run(env)
		if err != nil {
			return 0, err
		}
		rs, err := rhs.ToKString(env.Interner())
		rhs.Decrement()
		if err != nil {
			return 0, err
		}
		var cmp int
		switch {
		case kstring.Equal(ls, rs):
			cmp = 0
		case kstring.Less(ls, rs):
			cmp = -1
		default:
			cmp = 1
		}
		rs.Decrement()
		return cmp, nil
	default:
		return 0, errors.New(errors.InvalidType, "'<'/'>' not defined for %s", lhs.TypeName())
	}
}

func lessThan(args []value.Value, env value.Env) (value.Value, error) {
	lhs, err := args[0].Run(env)
	if err != nil {
		return value.Value{}, err
	}
	cmp, err := compare(lhs, args[1], env)
	lhs.Decrement()
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(cmp < 0), nil
}

func greaterThan(args []value.Value, env value.Env) (value.Value, error) {
	lhs, err := args[0].Run(env)
	if err != nil {
		return value.Value{}, err
	}
	cmp, err := compare(lhs, args[1], env)
	lhs.Decrement()
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(cmp > 0), nil
}

// equals implements "?": structural equality with no cross-tag
// equality, per value.Equal.
func equals(args []value.Value, env value.Env) (value.Value, error) {
	lhs, err := args[0].Run(env)
	if err != nil {
		return value.Value{}, err
	}
	rhs, err := args[1].Run(env)
	if err != nil {
		lhs.Decrement()
		return value.Value{}, err
	}
	eq := value.Equal(lhs, rhs)
	lhs.Decrement()
	rhs.Decrement()
	return value.Bool(eq), nil
}

// and implements "&": short-circuits on a falsy left-hand side,
// returning it directly (ownership transfers straight through);
// otherwise discards it and evaluates the right-hand side.
func and(args []value.Value, env value.Env) (value.Value, error) {
	lhs, err := args[0].Run(env)
	if err != nil {
		return value.Value{}, err
	}
	b, err := lhs.ToBool()
	if err != nil {
		lhs.Decrement()
		return value.Value{}, err
	}
	if !b {
		return lhs, nil
	}
	lhs.Decrement()
	return args[1].Run(env)
}

// or implements "|": short-circuits on a truthy left-hand side.
func or(args []value.Value, env value.Env) (value.Value, error) {
	lhs, err := args[0].Run(env)
	if err != nil {
		return value.Value{}, err
	}
	b, err := lhs.ToBool()
	if err != nil {
		lhs.Decrement()
		return value.Value{}, err
	}
	if b {
		return lhs, nil
	}
	lhs.Decrement()
	return args[1].Run(env)
}

// seq implements ";": evaluate and discard the left-hand side,
// evaluate and return the right-hand side.
func seq(args []value.Value, env value.Env) (value.Value, error) {
	lhs, err := args[0].Run(env)
	if err != nil {
		return value.Value{}, err
	}
	lhs.Decrement()
	return args[1].Run(env)
}

// while implements "W": evaluate the condition; while truthy,
// evaluate and discard the body. Returns null.
func while(args []value.Value, env value.Env) (value.Value, error) {
	for {
		cond, err := args[0].Run(env)
		if err != nil {
			return value.Value{}, err
		}
		b, err := cond.ToBool()
		cond.Decrement()
		if err != nil {
			return value.Value{}, err
		}
		if !b {
			break
		}
		body, err := args[1].Run(env)
		if err != nil {
			return value.Value{}, err
		}
		body.Decrement()
	}
	return value.Null(), nil
}

// assign implements "=": the left-hand side must be an unevaluated
// variable node; the right-hand side is evaluated and its refcount
// bumped once so both the cell and the returned value own a
// reference, and the cell's previous value is released.
func assign(args []value.Value, env value.Env) (value.Value, error) {
	if !args[0].IsVariable() {
		return value.Value{}, errors.New(errors.InvalidType, "'=' requires a variable left-hand side, got %s", args[0].TypeName())
	}
	cell := args[0].AsVariable()
	rhs, err := args[1].Run(env)
	if err != nil {
		return value.Value{}, err
	}
	rhs.Increment()
	cell.Value.Decrement()
	cell.Value = rhs
	return rhs, nil
}
