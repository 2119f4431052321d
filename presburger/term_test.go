package presburger

import "testing"

func TestTermEvalConstant(t *testing.T) {
	term := Const(5)
	if got := term.Eval(Env{}); got != 5 {
		t.Errorf("Const(5).Eval() = %d, want 5", got)
	}
}

func TestTermEvalMissingVariableIsZero(t *testing.T) {
	term := Var("x")
	if got := term.Eval(Env{"y": 10}); got != 0 {
		t.Errorf("Eval with missing var = %d, want 0", got)
	}
}

func TestTermAdd(t *testing.T) {
	sum := VarCoeff("x", 2).Add(VarCoeff("x", 3))
	env := Env{"x": 4}
	if got := sum.Eval(env); got != 20 {
		t.Errorf("2x+3x at x=4 = %d, want 20", got)
	}
	if !sum.HasVar("x") {
		t.Error("expected sum to reference x")
	}
}

func TestTermAddCancelsZeroCoefficient(t *testing.T) {
	sum := VarCoeff("x", 5).Add(VarCoeff("x", -5))
	if sum.HasVar("x") {
		t.Error("expected x to be dropped once its coefficient cancels to zero")
	}
	if got := sum.Eval(Env{"x": 100}); got != 0 {
		t.Errorf("cancelled term should evaluate to 0, got %d", got)
	}
}

func TestTermScale(t *testing.T) {
	term := VarCoeff("x", 2).Add(Const(3)).Scale(4)
	if got := term.Eval(Env{"x": 1}); got != 20 {
		t.Errorf("4*(2x+3) at x=1 = %d, want 20", got)
	}
}

func TestTermScaleByZeroDropsVariables(t *testing.T) {
	term := Var("x").Scale(0)
	if term.HasVar("x") {
		t.Error("scaling by zero should drop the variable")
	}
	if got := term.Eval(Env{"x": 99}); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestTermNegateRoundTrip(t *testing.T) {
	term := VarCoeff("x", 3).Add(Const(7))
	env := Env{"x": 5}
	if got, want := term.Negate().Eval(env), -term.Eval(env); got != want {
		t.Errorf("eval(Negate(t)) = %d, want %d", got, want)
	}
}

func TestTermAddEvalDistributes(t *testing.T) {
	a := VarCoeff("x", 2).Add(Const(1))
	b := VarCoeff("y", 3).Add(Const(-1))
	env := Env{"x": 4, "y": 5}
	if got, want := a.Add(b).Eval(env), a.Eval(env)+b.Eval(env); got != want {
		t.Errorf("eval(t1+t2) = %d, want %d", got, want)
	}
}

func TestTermSub(t *testing.T) {
	term := VarCoeff("x", 5).Sub(VarCoeff("x", 2))
	if got := term.Eval(Env{"x": 10}); got != 30 {
		t.Errorf("(5x - 2x) at x=10 = %d, want 30", got)
	}
}

func TestTermVars(t *testing.T) {
	term := VarCoeff("x", 2).Add(VarCoeff("y", 1))
	vars := term.Vars()
	if len(vars) != 2 {
		t.Fatalf("expected 2 vars, got %d (%v)", len(vars), vars)
	}
}

func TestTermString(t *testing.T) {
	term := VarCoeff("time", 2).Add(Const(1))
	if got, want := term.String(), "2*time + 1"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
