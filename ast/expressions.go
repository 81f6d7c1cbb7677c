package ast

import (
	"github.com/risor-io/tsgen/internal/token"
	"github.com/risor-io/tsgen/types"
)

// Ident is a reference to a previously bound name. References are plain
// values: they hold no link back to the declaration that introduced them.
//
// A reference minted for an operator or member expression keeps that
// expression in Of, so reusing it as an operand keeps its grouping.
type Ident struct {
	Name string
	Type types.Type // nil when the binding is untyped
	Of   Expr       // nil for references to bindings
}

func (x *Ident) exprNode()      {}
func (x *Ident) String() string { return x.Name }

// Call is a call of an arbitrary callee expression.
type Call struct {
	Fun  Expr
	Args []Expr
}

func (x *Call) exprNode()      {}
func (x *Call) String() string { return Format(x, "") }

// MethodCall is a call of a named method on an object, e.g. "o.m(a)".
type MethodCall struct {
	X      Expr
	Method string
	Args   []Expr
}

func (x *MethodCall) exprNode()      {}
func (x *MethodCall) String() string { return Format(x, "") }

// Raw is opaque source text emitted verbatim. An empty Raw renders as a
// blank line. Raw is valid in both statement and expression position.
type Raw struct {
	Text string
}

func (x *Raw) exprNode()      {}
func (x *Raw) stmtNode()      {}
func (x *Raw) String() string { return Format(x, "") }

// Binary is an arithmetic or comparison operator expression.
type Binary struct {
	X  Expr
	Op token.Type
	Y  Expr
}

func (x *Binary) exprNode()      {}
func (x *Binary) String() string { return Format(x, "") }

// Logical is a short-circuiting operator expression ("&&" or "||").
type Logical struct {
	X  Expr
	Op token.Type
	Y  Expr
}

func (x *Logical) exprNode()      {}
func (x *Logical) String() string { return Format(x, "") }

// Unary is a prefix or postfix operator expression. Examples include "!x",
// "-x", "++x" and "x++".
type Unary struct {
	Op     token.Type
	X      Expr
	Prefix bool
}

func (x *Unary) exprNode()      {}
func (x *Unary) String() string { return Format(x, "") }

// Member is a property access. When Computed is false, Property is expected
// to be an *Ident naming the property ("o.p"); otherwise it is an arbitrary
// expression ("o[p]").
type Member struct {
	X        Expr
	Property Expr
	Computed bool
}

func (x *Member) exprNode()      {}
func (x *Member) String() string { return Format(x, "") }

// Name returns the property name of a non-computed access.
func (x *Member) Name() (string, bool) {
	if x.Computed {
		return "", false
	}
	ident, ok := x.Property.(*Ident)
	if !ok {
		return "", false
	}
	return ident.Name, true
}
