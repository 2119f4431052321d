package constraint

import (
	"fmt"

	"github.com/dmoraite/ptgame/presburger"
)

// ParseFormula parses s and interprets it directly into a presburger.Formula.
// `!=` desugars to Not(Equal(...)) since Formula has no NotEqual case.
func ParseFormula(s string) (presburger.Formula, error) {
	ast, err := Parse(s)
	if err != nil {
		return presburger.Formula{}, fmt.Errorf("constraint: %w", err)
	}
	return interpretExpr(ast)
}

func interpretExpr(e *Expr) (presburger.Formula, error) {
	left, err := interpretAnd(e.Left)
	if err != nil {
		return presburger.Formula{}, err
	}
	disjuncts := []presburger.Formula{left}
	for i := range e.Right {
		f, err := interpretAnd(&e.Right[i])
		if err != nil {
			return presburger.Formula{}, err
		}
		disjuncts = append(disjuncts, f)
	}
	if len(disjuncts) == 1 {
		return disjuncts[0], nil
	}
	return presburger.Or(disjuncts...), nil
}

func interpretAnd(a *AndExpr) (presburger.Formula, error) {
	left, err := interpretUnary(a.Left)
	if err != nil {
		return presburger.Formula{}, err
	}
	conjuncts := []presburger.Formula{left}
	for i := range a.Right {
		f, err := interpretUnary(&a.Right[i])
		if err != nil {
			return presburger.Formula{}, err
		}
		conjuncts = append(conjuncts, f)
	}
	if len(conjuncts) == 1 {
		return conjuncts[0], nil
	}
	return presburger.And(conjuncts...), nil
}

func interpretUnary(u *UnaryExpr) (presburger.Formula, error) {
	switch {
	case u.Not != nil:
		inner, err := interpretUnary(u.Not)
		if err != nil {
			return presburger.Formula{}, err
		}
		return presburger.Not(inner), nil
	case u.Group != nil:
		return interpretExpr(u.Group)
	case u.Exists != nil:
		body, err := interpretExpr(u.Exists.Body)
		if err != nil {
			return presburger.Formula{}, err
		}
		return presburger.Exists(u.Exists.Var, body), nil
	case u.Atom != nil:
		return interpretAtom(u.Atom)
	default:
		return presburger.Formula{}, fmt.Errorf("constraint: empty unary expression")
	}
}

func interpretAtom(a *Atom) (presburger.Formula, error) {
	switch {
	case a.True:
		return presburger.True, nil
	case a.False:
		return presburger.False, nil
	case a.Comparison != nil:
		return interpretComparison(a.Comparison)
	default:
		return presburger.Formula{}, fmt.Errorf("constraint: empty atom")
	}
}

func interpretComparison(c *Comparison) (presburger.Formula, error) {
	left := interpretTerm(c.Left)

	if c.Rel.Mod != nil {
		m := c.Rel.Mod
		return presburger.Mod(left, m.Modulus, m.Remainder)
	}

	cmp := c.Rel.Cmp
	right := interpretTerm(cmp.Right)
	switch cmp.Op {
	case "==":
		return presburger.Equal(left, right), nil
	case "!=":
		return presburger.Not(presburger.Equal(left, right)), nil
	case "<=":
		return presburger.Le(left, right), nil
	case ">=":
		return presburger.Ge(left, right), nil
	case "<":
		return presburger.Lt(left, right), nil
	case ">":
		return presburger.Gt(left, right), nil
	default:
		return presburger.Formula{}, fmt.Errorf("constraint: unknown comparison operator %q", cmp.Op)
	}
}

func interpretTerm(t *Term) presburger.Term {
	term := interpretElement(t.Left)
	for _, op := range t.Right {
		next := interpretElement(op.Val)
		if op.Op == "-" {
			term = term.Sub(next)
		} else {
			term = term.Add(next)
		}
	}
	return term
}

func interpretElement(e *Element) presburger.Term {
	switch {
	case e.CoeffIdent != nil:
		return presburger.VarCoeff(e.CoeffIdent.Var, e.CoeffIdent.Coeff)
	case e.Ident != nil:
		return presburger.Var(*e.Ident)
	case e.Const != nil:
		return presburger.Const(*e.Const)
	default:
		return presburger.Const(0)
	}
}
