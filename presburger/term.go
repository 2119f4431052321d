// Package presburger implements the linear-arithmetic fragment the games
// run on: terms over named integer variables, a small formula variant, and
// a total evaluator. Existentials are resolved by bounded enumeration
// rather than quantifier elimination; see Formula.Eval.
package presburger

import (
	"fmt"
	"sort"
	"strings"
)

// Term is a linear expression constant + Σ coeff_i * var_i. Variables with
// a zero coefficient are never stored — Add and Scale both drop them.
type Term struct {
	coeffs   map[string]int64
	constant int64
}

// Const builds the constant term k.
func Const(k int64) Term {
	return Term{constant: k}
}

// Var builds the term 1*name.
func Var(name string) Term {
	return Term{coeffs: map[string]int64{name: 1}}
}

// VarCoeff builds the term coeff*name, dropping the variable entirely if
// coeff is zero (keeping the Term's no-zero-coefficient invariant).
func VarCoeff(name string, coeff int64) Term {
	if coeff == 0 {
		return Term{}
	}
	return Term{coeffs: map[string]int64{name: coeff}}
}

// Add returns t + other, merging coefficients pointwise and dropping any
// variable whose combined coefficient cancels to zero.
func (t Term) Add(other Term) Term {
	result := Term{
		coeffs:   make(map[string]int64, len(t.coeffs)+len(other.coeffs)),
		constant: t.constant + other.constant,
	}
	for v, c := range t.coeffs {
		result.coeffs[v] = c
	}
	for v, c := range other.coeffs {
		result.coeffs[v] += c
	}
	for v, c := range result.coeffs {
		if c == 0 {
			delete(result.coeffs, v)
		}
	}
	return result
}

// Negate returns -t.
func (t Term) Negate() Term {
	return t.Scale(-1)
}

// Sub returns t - other.
func (t Term) Sub(other Term) Term {
	return t.Add(other.Negate())
}

// Scale returns k*t, dropping any variable whose coefficient becomes zero.
func (t Term) Scale(k int64) Term {
	if k == 0 {
		return Term{}
	}
	result := Term{
		coeffs:   make(map[string]int64, len(t.coeffs)),
		constant: t.constant * k,
	}
	for v, c := range t.coeffs {
		result.coeffs[v] = c * k
	}
	return result
}

// Env is a finite map of variable name to integer value, consulted by Eval.
// Variables absent from Env contribute 0.
type Env map[string]int64

// Eval returns constant + Σ coeff_i * env[var_i], treating any variable
// missing from env as 0.
func (t Term) Eval(env Env) int64 {
	result := t.constant
	for v, c := range t.coeffs {
		result += c * env[v]
	}
	return result
}

// Vars returns the set of variable names with a nonzero coefficient.
func (t Term) Vars() []string {
	names := make([]string, 0, len(t.coeffs))
	for v := range t.coeffs {
		names = append(names, v)
	}
	return names
}

// HasVar reports whether name carries a nonzero coefficient in t.
func (t Term) HasVar(name string) bool {
	_, ok := t.coeffs[name]
	return ok
}

// String renders t with variable terms in sorted order, then the
// constant (always shown if the term has no variable terms at all).
func (t Term) String() string {
	names := t.Vars()
	sort.Strings(names)

	var sb strings.Builder
	first := true
	for _, v := range names {
		c := t.coeffs[v]
		switch {
		case !first && c > 0:
			sb.WriteString(" + ")
		case c < 0:
			sb.WriteString(" - ")
		}
		abs := c
		if abs < 0 {
			abs = -abs
		}
		if abs == 1 {
			sb.WriteString(v)
		} else {
			fmt.Fprintf(&sb, "%d*%s", abs, v)
		}
		first = false
	}

	if t.constant != 0 || first {
		if !first && t.constant > 0 {
			sb.WriteString(" + ")
		} else if !first && t.constant < 0 {
			sb.WriteString(" - ")
		}
		if !first && t.constant < 0 {
			fmt.Fprintf(&sb, "%d", -t.constant)
		} else {
			fmt.Fprintf(&sb, "%d", t.constant)
		}
		first = false
	}

	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}
