package ast

import "github.com/risor-io/tsgen/types"

// Number is a numeric literal, optionally annotated with a type.
type Number struct {
	Value float64
	Type  types.Type // nil when unannotated
}

func (x *Number) exprNode()      {}
func (x *Number) String() string { return Format(x, "") }

// String is a string literal, optionally annotated with a type.
type String struct {
	Value string
	Type  types.Type
}

func (x *String) exprNode()      {}
func (x *String) String() string { return Format(x, "") }

// Bool is a boolean literal, optionally annotated with a type.
type Bool struct {
	Value bool
	Type  types.Type
}

func (x *Bool) exprNode()      {}
func (x *Bool) String() string { return Format(x, "") }

// Value wraps a bare host value that was supplied where a node was
// expected. It is rendered through JSON serialization.
type Value struct {
	V any
}

func (x *Value) exprNode()      {}
func (x *Value) String() string { return Format(x, "") }

// Property is a single key/value entry of an object literal.
type Property struct {
	Key   string
	Value Expr
}

// Object is an object literal. Properties keep their insertion order.
type Object struct {
	Props []Property
	Type  types.Type
}

func (x *Object) exprNode()      {}
func (x *Object) String() string { return Format(x, "") }

// Array is an array literal.
type Array struct {
	Elems []Expr
	Type  types.Type
}

func (x *Array) exprNode()      {}
func (x *Array) String() string { return Format(x, "") }

// Param is a function parameter.
type Param struct {
	Name string
	Type types.Type
}

// Func is an arrow function literal. Body holds the statements emitted by
// the body producer; Result holds its completion value, which becomes the
// trailing return statement. A nil Result means no return is emitted.
type Func struct {
	TypeParams types.Params
	Params     []Param
	Body       []Node
	Result     Expr
	Returns    types.Type
}

func (x *Func) exprNode()      {}
func (x *Func) String() string { return Format(x, "") }

// Template is a template literal. Quasis always has exactly one more
// element than Exprs: `q0${e0}q1${e1}q2`.
type Template struct {
	Quasis []string
	Exprs  []Expr
}

func (x *Template) exprNode()      {}
func (x *Template) String() string { return Format(x, "") }
