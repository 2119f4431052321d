// Package constraint parses the quoted constraint mini-language that
// appears on edge lines of a graph description into a presburger.Formula.
// The grammar is a struct-tag grammar built on participle.
package constraint

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var constraintLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Op", Pattern: `==|!=|<=|>=|&&|\|\||[<>()!*+\-%.:]`},
})

// Expr is the grammar's top level: a left-associative disjunction of
// AndExpr, so "||" binds loosest as required.
type Expr struct {
	Left  *AndExpr  `@@`
	Right []AndExpr `("||" @@)*`
}

// AndExpr is a left-associative conjunction of UnaryExpr.
type AndExpr struct {
	Left  *UnaryExpr  `@@`
	Right []UnaryExpr `("&&" @@)*`
}

// UnaryExpr covers negation, parenthesisation, existential binding, and
// the leaf atoms, in that precedence order.
type UnaryExpr struct {
	Not    *UnaryExpr  `"!" @@`
	Group  *Expr       `| "(" @@ ")"`
	Exists *ExistsExpr `| @@`
	Atom   *Atom       `| @@`
}

// ExistsExpr binds an integer variable over the remainder of an Expr.
type ExistsExpr struct {
	Keyword string `"exists"`
	Var     string `@Ident`
	Sep     string `(":" | ".")`
	Body    *Expr  `@@`
}

// Atom is a boolean literal or a comparison/modulus equation over terms.
type Atom struct {
	True       bool        `@"true"`
	False      bool        `| @"false"`
	Comparison *Comparison `| @@`
}

// Comparison is a Term followed by either a relational operator and a
// second Term, or a modulus tail.
type Comparison struct {
	Left *Term    `@@`
	Rel  *RelTail `@@`
}

// RelTail is the comparison/modulus continuation after the left Term.
type RelTail struct {
	Mod *ModTail `@@`
	Cmp *CmpTail `| @@`
}

// ModTail encodes `(% | mod) int == int`.
type ModTail struct {
	Operator  string `("%" | "mod")`
	Modulus   int64  `@Int`
	EqKeyword string `"=="`
	Remainder int64  `@Int`
}

// CmpTail encodes a relational operator and the right-hand Term.
type CmpTail struct {
	Op    string `@("==" | "!=" | "<=" | ">=" | "<" | ">")`
	Right *Term  `@@`
}

// Term is a left-associative sum/difference of Elements.
type Term struct {
	Left  *Element    `@@`
	Right []OpElement `@@*`
}

// OpElement is a signed continuation of a Term.
type OpElement struct {
	Op  string   `@("+" | "-")`
	Val *Element `@@`
}

// Element is a single summand: a coefficient-identifier product, a bare
// identifier, or a bare integer.
type Element struct {
	CoeffIdent *CoeffIdent `@@`
	Ident      *string     `| @Ident`
	Const      *int64      `| @Int`
}

// CoeffIdent is `int '*' ident`.
type CoeffIdent struct {
	Coeff int64  `@Int "*"`
	Var   string `@Ident`
}

var grammarParser = participle.MustBuild[Expr](
	participle.Lexer(constraintLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(64),
)

// Parse parses s into the grammar's AST, without interpreting it into a
// presburger.Formula. Exported mainly for tests.
func Parse(s string) (*Expr, error) {
	return grammarParser.ParseString("", s)
}
