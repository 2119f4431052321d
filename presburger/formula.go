package presburger

import (
	"fmt"
	"strings"
)

// Kind tags the variant cases of a Formula. A single recursive Eval
// switches on Kind rather than dispatching through an interface per case —
// the AST is small and closed, so a tagged variant is simpler and faster
// than per-case Eval methods.
type Kind int

const (
	KindTrue Kind = iota
	KindFalse
	KindEqual
	KindLe
	KindLt
	KindGe
	KindGt
	KindMod
	KindAnd
	KindOr
	KindNot
	KindExists
)

// X_MAX bounds the enumeration used to resolve a bounded existential. This
// is a deliberate undecidability escape documented at the public surface:
// full Presburger quantifier elimination is out of scope, so Exists tries
// every witness in [0, X_MAX] and nothing wider. Corpora with witnesses
// beyond this range will see a true formula evaluate to false.
const X_MAX = 10

// Formula is a Presburger-arithmetic formula over Terms: comparisons,
// modular congruence, boolean connectives, and a bounded existential.
// Values are immutable once constructed. The zero Formula has kind
// KindTrue and evaluates as True; every other formula is built with the
// constructors below.
type Formula struct {
	kind     Kind
	left     Term
	right    Term
	modulus  int64
	remainder int64
	children []Formula
	exVar    string
}

// True is the trivially-true formula.
var True = Formula{kind: KindTrue}

// False is the trivially-false formula.
var False = Formula{kind: KindFalse}

// Equal builds l == r.
func Equal(l, r Term) Formula { return Formula{kind: KindEqual, left: l, right: r} }

// Le builds l <= r.
func Le(l, r Term) Formula { return Formula{kind: KindLe, left: l, right: r} }

// Lt builds l < r.
func Lt(l, r Term) Formula { return Formula{kind: KindLt, left: l, right: r} }

// Ge builds l >= r.
func Ge(l, r Term) Formula { return Formula{kind: KindGe, left: l, right: r} }

// Gt builds l > r.
func Gt(l, r Term) Formula { return Formula{kind: KindGt, left: l, right: r} }

// Mod builds the congruence eval(t) mod m == r. m must be positive and r
// must lie in [0, m); violating either is a FormulaBuildError.
func Mod(t Term, m, r int64) (Formula, error) {
	if m <= 0 {
		return Formula{}, &FormulaBuildError{Reason: fmt.Sprintf("modulus must be positive, got %d", m)}
	}
	if r < 0 || r >= m {
		return Formula{}, &FormulaBuildError{Reason: fmt.Sprintf("remainder %d out of range [0, %d)", r, m)}
	}
	return Formula{kind: KindMod, left: t, modulus: m, remainder: r}, nil
}

// And builds the conjunction of fs. An empty conjunction is True.
func And(fs ...Formula) Formula {
	if len(fs) == 0 {
		return True
	}
	return Formula{kind: KindAnd, children: fs}
}

// Or builds the disjunction of fs. An empty disjunction is False.
func Or(fs ...Formula) Formula {
	if len(fs) == 0 {
		return False
	}
	return Formula{kind: KindOr, children: fs}
}

// Not builds the negation of f.
func Not(f Formula) Formula {
	return Formula{kind: KindNot, children: []Formula{f}}
}

// Exists builds the bounded existential ∃x ∈ [0, X_MAX]. f, binding x in
// the scope of f.
func Exists(x string, f Formula) Formula {
	return Formula{kind: KindExists, children: []Formula{f}, exVar: x}
}

// Eval recurses structurally over the formula, returning its truth value
// under env. Eval never errors: malformed formulas are rejected at
// construction (Mod), and every other case is total.
func (f Formula) Eval(env Env) bool {
	switch f.kind {
	case KindTrue:
		return true
	case KindFalse:
		return false
	case KindEqual:
		return f.left.Eval(env) == f.right.Eval(env)
	case KindLe:
		return f.left.Eval(env) <= f.right.Eval(env)
	case KindLt:
		return f.left.Eval(env) < f.right.Eval(env)
	case KindGe:
		return f.left.Eval(env) >= f.right.Eval(env)
	case KindGt:
		return f.left.Eval(env) > f.right.Eval(env)
	case KindMod:
		v := f.left.Eval(env)
		return normalizeMod(v, f.modulus) == f.remainder
	case KindAnd:
		for _, child := range f.children {
			if !child.Eval(env) {
				return false
			}
		}
		return true
	case KindOr:
		for _, child := range f.children {
			if child.Eval(env) {
				return true
			}
		}
		return false
	case KindNot:
		return !f.children[0].Eval(env)
	case KindExists:
		return f.evalExists(env)
	default:
		panic(fmt.Sprintf("presburger: unhandled formula kind %d", f.kind))
	}
}

func (f Formula) evalExists(env Env) bool {
	inner := f.children[0]
	extended := make(Env, len(env)+1)
	for k, v := range env {
		extended[k] = v
	}
	for n := int64(0); n <= X_MAX; n++ {
		extended[f.exVar] = n
		if inner.Eval(extended) {
			return true
		}
	}
	return false
}

// normalizeMod returns v mod m normalised into [0, m), per the sign
// convention ((v % m) + m) % m.
func normalizeMod(v, m int64) int64 {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}

// Kind reports the formula's variant tag, chiefly useful for diagnostics.
func (f Formula) Kind() Kind { return f.kind }

// Support returns the set of free variable names referenced anywhere in f,
// excluding names bound by an enclosing Exists within f itself.
func (f Formula) Support() map[string]bool {
	support := make(map[string]bool)
	f.collectSupport(support, nil)
	return support
}

func (f Formula) collectSupport(support map[string]bool, bound map[string]bool) {
	addTerm := func(t Term) {
		for _, v := range t.Vars() {
			if bound == nil || !bound[v] {
				support[v] = true
			}
		}
	}
	switch f.kind {
	case KindTrue, KindFalse:
		return
	case KindEqual, KindLe, KindLt, KindGe, KindGt:
		addTerm(f.left)
		addTerm(f.right)
	case KindMod:
		addTerm(f.left)
	case KindAnd, KindOr:
		for _, c := range f.children {
			c.collectSupport(support, bound)
		}
	case KindNot:
		f.children[0].collectSupport(support, bound)
	case KindExists:
		inner := make(map[string]bool, len(bound)+1)
		for k := range bound {
			inner[k] = true
		}
		inner[f.exVar] = true
		f.children[0].collectSupport(support, inner)
	}
}

// String renders f as a readable constraint expression, used by --verbose
// and --debug diagnostics.
func (f Formula) String() string {
	switch f.kind {
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	case KindEqual:
		return f.left.String() + " == " + f.right.String()
	case KindLe:
		return f.left.String() + " <= " + f.right.String()
	case KindLt:
		return f.left.String() + " < " + f.right.String()
	case KindGe:
		return f.left.String() + " >= " + f.right.String()
	case KindGt:
		return f.left.String() + " > " + f.right.String()
	case KindMod:
		return fmt.Sprintf("%s mod %d == %d", f.left.String(), f.modulus, f.remainder)
	case KindAnd:
		return joinFormulas(f.children, " && ")
	case KindOr:
		return joinFormulas(f.children, " || ")
	case KindNot:
		return "!(" + f.children[0].String() + ")"
	case KindExists:
		return fmt.Sprintf("exists %s: (%s)", f.exVar, f.children[0].String())
	default:
		return "<unknown formula>"
	}
}

func joinFormulas(fs []Formula, sep string) string {
	parts := make([]string, len(fs))
	for i, c := range fs {
		parts[i] = "(" + c.String() + ")"
	}
	return strings.Join(parts, sep)
}

// FormulaBuildError is returned by constructors that can fail — currently
// only Mod, for a non-positive modulus or an out-of-range remainder.
type FormulaBuildError struct {
	Reason string
}

func (e *FormulaBuildError) Error() string {
	return "presburger: formula build error: " + e.Reason
}
