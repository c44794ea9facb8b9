package value

import (
	"strconv"

	"knight/internal/errors"
	"knight/internal/kstring"
)

// TypeName returns a short lowercase name for error messages, e.g.
// "InvalidType: cannot add integer and block".
func (v Value) TypeName() string {
	switch v.tag {
	case TagConstant:
		switch ConstKind(v.i) {
		case ConstNull:
			return "null"
		case ConstTrue, ConstFalse:
			return "boolean"
		default:
			return "undefined"
		}
	case TagInteger:
		return "integer"
	case TagString:
		return "string"
	case TagVariable:
		return "variable"
	case TagBlock:
		return "block"
	default:
		return "unknown"
	}
}

// ToInt implements the Integer column of spec.md §4.3's coercion
// table. Variables and blocks are not coercible.
func (v Value) ToInt() (int64, error) {
	switch v.tag {
	case TagConstant:
		switch ConstKind(v.i) {
		case ConstNull, ConstFalse:
			return 0, nil
		case ConstTrue:
			return 1, nil
		}
	case TagInteger:
		return v.i, nil
	case TagString:
		return v.AsString().ParseInt(), nil
	}
	return 0, errors.New(errors.InvalidConversion, "cannot convert %s to integer", v.TypeName())
}

// ToBool implements the Boolean column of spec.md §4.3's coercion
// table.
func (v Value) ToBool() (bool, error) {
	switch v.tag {
	case TagConstant:
		switch ConstKind(v.i) {
		case ConstNull, ConstFalse:
			return false, nil
		case ConstTrue:
			return true, nil
		}
	case TagInteger:
		return v.i != 0, nil
	case TagString:
		return v.AsString().Len() != 0, nil
	}
	return false, errors.New(errors.InvalidConversion, "cannot convert %s to boolean", v.TypeName())
}

// ToKString implements the String column of spec.md §4.3's coercion
// table. The returned *kstring.String already carries one reference
// the caller owns (either a freshly interned formatted integer, a
// shared literal singleton, or the original string with its refcount
// bumped).
func (v Value) ToKString(in *kstring.Interner) (*kstring.String, error) {
	switch v.tag {
	case TagConstant:
		switch ConstKind(v.i) {
		case ConstNull:
			kstring.Null.Increment()
			return kstring.Null, nil
		case ConstFalse:
			kstring.False.Increment()
			return kstring.False, nil
		case ConstTrue:
			kstring.True.Increment()
			return kstring.True, nil
		}
	case TagInteger:
		return in.Fetch(formatInt(v.i)), nil
	case TagString:
		s := v.AsString()
		s.Increment()
		return s, nil
	}
	return nil, errors.New(errors.InvalidConversion, "cannot convert %s to string", v.TypeName())
}

// formatInt renders n in plain base-10 with a leading '-' for
// negatives and no leading zeros — including spec.md §9's Open
// Question on minInt: strconv.FormatInt computes the magnitude via
// unsigned arithmetic internally, so -2^60 formats correctly without
// the usual negate-then-format trick (which would overflow if Value's
// integer payload were truly limited to 61 bits; see value.go's
// package doc for why ours is a full int64 instead).
func formatInt(n int64) []byte {
	return []byte(strconv.FormatInt(n, 10))
}

// DebugString renders v in the exact form spec.md §6 specifies for
// the "D" operator: Boolean(true|false), Null(), Integer(n),
// String(bytes), Variable(name), Block(X) where X is the operator
// byte.
func (v Value) DebugString() string {
	switch v.tag {
	case TagConstant:
		switch ConstKind(v.i) {
		case ConstNull:
			return "Null()"
		case ConstTrue:
			return "Boolean(true)"
		case ConstFalse:
			return "Boolean(false)"
		default:
			return "Undefined()"
		}
	case TagInteger:
		return "Integer(" + strconv.FormatInt(v.i, 10) + ")"
	case TagString:
		return "String(" + string(v.AsString().Bytes()) + ")"
	case TagVariable:
		return "Variable(" + v.AsVariable().Name + ")"
	case TagBlock:
		return "Block(" + string(v.AsBlock().Function.Name) + ")"
	default:
		return "Undefined()"
	}
}
