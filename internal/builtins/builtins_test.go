package builtins

import (
	"testing"

	"knight/internal/environment"
	"knight/internal/errors"
	"knight/internal/value"
)

func TestAddIntegerOverflow(t *testing.T) {
	env := environment.New()
	args := []value.Value{value.Int(value.MaxInt), value.Int(1)}
	_, err := Add.Fn(args, env)
	if !errors.Is(err, errors.Overflow) {
		t.Fatalf("got err=%v, want Overflow", err)
	}
}

func TestAddStringConcatShortCircuitsOnEmpty(t *testing.T) {
	env := environment.New()
	s := env.Interner().Fetch([]byte("abc"))
	args := []value.Value{value.Str(s), value.Str(env.Interner().Fetch(nil))}
	v, err := Add.Fn(args, env)
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if string(v.AsString().Bytes()) != "abc" {
		t.Fatalf("got %q, want \"abc\"", v.AsString().Bytes())
	}
	v.Decrement()
}

func TestMulStringRepeat(t *testing.T) {
	env := environment.New()
	s := env.Interner().Fetch([]byte("ab"))
	args := []value.Value{value.Str(s), value.Int(3)}
	v, err := Mul.Fn(args, env)
	if err != nil {
		t.Fatalf("Mul error: %v", err)
	}
	if string(v.AsString().Bytes()) != "ababab" {
		t.Fatalf("got %q, want \"ababab\"", v.AsString().Bytes())
	}
	v.Decrement()
}

func TestDivByZero(t *testing.T) {
	env := environment.New()
	args := []value.Value{value.Int(7), value.Int(0)}
	_, err := Div.Fn(args, env)
	if !errors.Is(err, errors.DivisionByZero) {
		t.Fatalf("got err=%v, want DivisionByZero", err)
	}
}

func TestModNegativeDenominator(t *testing.T) {
	env := environment.New()
	args := []value.Value{value.Int(7), value.Int(-3)}
	_, err := Mod.Fn(args, env)
	if !errors.Is(err, errors.NegativeDenominator) {
		t.Fatalf("got err=%v, want NegativeDenominator", err)
	}
}

func TestPowZeroExponent(t *testing.T) {
	env := environment.New()
	args := []value.Value{value.Int(5), value.Int(0)}
	v, err := Pow.Fn(args, env)
	if err != nil {
		t.Fatalf("Pow error: %v", err)
	}
	if !v.IsInteger() || v.AsInt() != 1 {
		t.Fatalf("5^0 got %+v, want Integer(1)", v)
	}
}

func TestLessThanStringOrder(t *testing.T) {
	env := environment.New()
	args := []value.Value{value.Str(env.Interner().Fetch([]byte("abc"))), value.Str(env.Interner().Fetch([]byte("abd")))}
	v, err := Lt.Fn(args, env)
	if err != nil {
		t.Fatalf("Lt error: %v", err)
	}
	if !v.AsBool() {
		t.Fatal("\"abc\" < \"abd\" should be true")
	}
}

func TestAndShortCircuitsOnFalse(t *testing.T) {
	env := environment.New()
	args := []value.Value{value.False(), value.Int(5)}
	v, err := And.Fn(args, env)
	if err != nil {
		t.Fatalf("And error: %v", err)
	}
	if v.AsBool() {
		t.Fatal("FALSE & anything should short-circuit to FALSE")
	}
}

func TestAssignRequiresVariableLHS(t *testing.T) {
	env := environment.New()
	args := []value.Value{value.Int(1), value.Int(2)}
	_, err := Assign.Fn(args, env)
	if !errors.Is(err, errors.InvalidType) {
		t.Fatalf("got err=%v, want InvalidType", err)
	}
}

func TestAssignBumpsRefcountForCellAndReturn(t *testing.T) {
	env := environment.New()
	cell := env.Lookup("x")
	s := env.Interner().Fetch([]byte("hi"))
	args := []value.Value{value.Var(cell), value.Str(s)}
	v, err := Assign.Fn(args, env)
	if err != nil {
		t.Fatalf("Assign error: %v", err)
	}
	if v.AsString().RefCount() != 2 {
		t.Fatalf("refcount after assign = %d, want 2 (cell + return)", v.AsString().RefCount())
	}
	if cell.Value.AsString() != v.AsString() {
		t.Fatal("cell must hold the assigned value")
	}
}

func TestGetSubstring(t *testing.T) {
	env := environment.New()
	s := env.Interner().Fetch([]byte("hello world"))
	args := []value.Value{value.Str(s), value.Int(6), value.Int(5)}
	v, err := Get.Fn(args, env)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if string(v.AsString().Bytes()) != "world" {
		t.Fatalf("got %q, want \"world\"", v.AsString().Bytes())
	}
	v.Decrement()
}

func TestGetOutOfBounds(t *testing.T) {
	env := environment.New()
	s := env.Interner().Fetch([]byte("hi"))
	args := []value.Value{value.Str(s), value.Int(0), value.Int(10)}
	_, err := Get.Fn(args, env)
	if !errors.Is(err, errors.OutOfBounds) {
		t.Fatalf("got err=%v, want OutOfBounds", err)
	}
}

func TestGetNegativeStartIsDomainError(t *testing.T) {
	env := environment.New()
	s := env.Interner().Fetch([]byte("hi"))
	args := []value.Value{value.Str(s), value.Int(-1), value.Int(1)}
	_, err := Get.Fn(args, env)
	if !errors.Is(err, errors.DomainError) {
		t.Fatalf("got err=%v, want DomainError", err)
	}
}

func TestSetReplacesRange(t *testing.T) {
	env := environment.New()
	s := env.Interner().Fetch([]byte("hello world"))
	repl := env.Interner().Fetch([]byte("there"))
	args := []value.Value{value.Str(s), value.Int(6), value.Int(5), value.Str(repl)}
	v, err := Set.Fn(args, env)
	if err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if string(v.AsString().Bytes()) != "hello there" {
		t.Fatalf("got %q, want \"hello there\"", v.AsString().Bytes())
	}
	v.Decrement()
}

func TestAsciiRoundTrip(t *testing.T) {
	env := environment.New()
	v, err := Ascii.Fn([]value.Value{value.Int(65)}, env)
	if err != nil {
		t.Fatalf("Ascii error: %v", err)
	}
	if string(v.AsString().Bytes()) != "A" {
		t.Fatalf("ascii(65) = %q, want \"A\"", v.AsString().Bytes())
	}
	v.Decrement()

	back, err := Ascii.Fn([]value.Value{value.Str(env.Interner().Fetch([]byte("A")))}, env)
	if err != nil {
		t.Fatalf("Ascii error: %v", err)
	}
	if back.AsInt() != 65 {
		t.Fatalf("ascii(\"A\") = %d, want 65", back.AsInt())
	}
}

func TestAsciiEmptyStringErrors(t *testing.T) {
	env := environment.New()
	_, err := Ascii.Fn([]value.Value{value.Str(env.Interner().Fetch(nil))}, env)
	if !errors.Is(err, errors.EmptyString) {
		t.Fatalf("got err=%v, want EmptyString", err)
	}
}

func TestIfOpEvaluatesOnlySelectedBranch(t *testing.T) {
	env := environment.New()
	taken := value.Int(1)
	untaken := value.Blk(value.NewBlock(Quit, []value.Value{value.Int(99)})) // would QUIT(99) if ever run
	v, err := If.Fn([]value.Value{value.True(), taken, untaken}, env)
	if err != nil {
		t.Fatalf("If error: %v", err)
	}
	if !v.IsInteger() || v.AsInt() != 1 {
		t.Fatalf("got %+v, want Integer(1)", v)
	}
}

func TestWhileLoopsUntilFalse(t *testing.T) {
	env := environment.New()
	cell := env.Lookup("i")
	cell.Value = value.Int(0)

	cond := value.Blk(value.NewBlock(Lt, []value.Value{value.Var(cell), value.Int(3)}))
	body := value.Blk(value.NewBlock(Assign, []value.Value{value.Var(cell), value.Blk(value.NewBlock(Add, []value.Value{value.Var(cell), value.Int(1)}))}))

	_, err := While.Fn([]value.Value{cond, body}, env)
	if err != nil {
		t.Fatalf("While error: %v", err)
	}
	if cell.Value.AsInt() != 3 {
		t.Fatalf("loop counter = %d, want 3", cell.Value.AsInt())
	}
}
