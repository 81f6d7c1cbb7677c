// Package seq drives statement producers. A producer emits nodes in program
// order and receives back references to the names it binds, so that
// construction order doubles as scope order.
package seq

import (
	"github.com/risor-io/tsgen/ast"
	"github.com/risor-io/tsgen/internal/token"
	"github.com/risor-io/tsgen/types"
)

// Producer is a construction block. It emits statements through the
// builder and may finish with a completion value.
type Producer func(b *Builder)

// Result is what a producer leaves behind once driven to completion.
type Result struct {
	// Stmts holds the emitted nodes in emit order.
	Stmts []ast.Node

	// Value is the completion value, or nil if the producer did not call
	// Finish.
	Value ast.Expr
}

// Builder accumulates the nodes emitted by one producer run. A Builder is
// owned by the Run call driving it and is not safe for concurrent use.
type Builder struct {
	stmts    []ast.Node
	value    ast.Expr
	finished bool
}

// Run drives p to completion and returns what it emitted.
func Run(p Producer) Result {
	b := &Builder{}
	if p != nil {
		p(b)
	}
	b.finished = true
	return Result{Stmts: b.stmts, Value: b.value}
}

// Emit appends n to the sequence and returns the reference it completes
// with: a fresh reference for declarations, a typed reference for operators
// and member accesses, and nil for everything else.
func (b *Builder) Emit(n ast.Node) *ast.Ident {
	if b.finished {
		panic("seq: emit after finish")
	}
	b.stmts = append(b.stmts, n)
	switch n := n.(type) {
	case *ast.Let:
		return &ast.Ident{Name: n.Name, Type: n.Type}
	case *ast.Binary, *ast.Logical, *ast.Member:
		return RefOf(n.(ast.Expr))
	}
	return nil
}

// Finish records the completion value. Bare host values are lifted. Once
// finished, the builder accepts no further nodes.
func (b *Builder) Finish(v any) {
	if b.finished {
		panic("seq: finish called twice")
	}
	b.finished = true
	if v != nil {
		b.value = Lift(v)
	}
}

// Len returns the number of nodes emitted so far.
func (b *Builder) Len() int {
	return len(b.stmts)
}

// RefOf mints a reference standing for the value of e without emitting
// anything. The reference is named by the printed expression, typed by the
// expression's result and carries e so that both backends render it with
// e's precedence.
func RefOf(e ast.Expr) *ast.Ident {
	if id, ok := e.(*ast.Ident); ok {
		return &ast.Ident{Name: id.Name, Type: id.Type, Of: id.Of}
	}
	return &ast.Ident{Name: e.String(), Type: TypeOf(e), Of: e}
}

// TypeOf reports the statically known result type of e. It returns nil
// for untyped literals and references, and types.Unknown where a type is
// expected but cannot be tracked.
func TypeOf(e ast.Expr) types.Type {
	switch e := e.(type) {
	case *ast.Ident:
		return e.Type
	case *ast.Number:
		return orDefault(e.Type, types.Number)
	case *ast.String:
		return orDefault(e.Type, types.String)
	case *ast.Bool:
		return orDefault(e.Type, types.Boolean)
	case *ast.Template:
		return types.String
	case *ast.Binary:
		if token.ClassifyBinary(e.Op) == token.Comparison {
			return types.Boolean
		}
		return types.Number
	case *ast.Logical:
		return types.Boolean
	case *ast.Unary:
		if e.Op == token.BANG {
			return types.Boolean
		}
		return types.Number
	case *ast.Member:
		return memberType(e)
	}
	return nil
}

// memberType follows an explicit schema attached to the object reference.
func memberType(m *ast.Member) types.Type {
	switch schema := TypeOf(m.X).(type) {
	case *types.Object:
		if name, ok := m.Name(); ok {
			if t, ok := schema.Lookup(name); ok {
				return t
			}
		}
	case *types.Array:
		if m.Computed && schema.Elem != nil {
			return schema.Elem
		}
	}
	return types.Unknown
}

// ElemType returns the element type of an iterable source, or nil.
func ElemType(source ast.Expr) types.Type {
	if arr, ok := TypeOf(source).(*types.Array); ok {
		return arr.Elem
	}
	return nil
}

// Lift converts a bare host value into an expression. Expressions pass
// through; Go numbers, strings and booleans become literals; anything else
// is wrapped in an *ast.Value.
func Lift(v any) ast.Expr {
	switch v := v.(type) {
	case ast.Expr:
		return v
	case string:
		return &ast.String{Value: v}
	case bool:
		return &ast.Bool{Value: v}
	case int:
		return &ast.Number{Value: float64(v)}
	case int8:
		return &ast.Number{Value: float64(v)}
	case int16:
		return &ast.Number{Value: float64(v)}
	case int32:
		return &ast.Number{Value: float64(v)}
	case int64:
		return &ast.Number{Value: float64(v)}
	case uint:
		return &ast.Number{Value: float64(v)}
	case uint8:
		return &ast.Number{Value: float64(v)}
	case uint16:
		return &ast.Number{Value: float64(v)}
	case uint32:
		return &ast.Number{Value: float64(v)}
	case uint64:
		return &ast.Number{Value: float64(v)}
	case float32:
		return &ast.Number{Value: float64(v)}
	case float64:
		return &ast.Number{Value: v}
	}
	return &ast.Value{V: v}
}

// LiftAll lifts each value in vs.
func LiftAll(vs []any) []ast.Expr {
	out := make([]ast.Expr, 0, len(vs))
	for _, v := range vs {
		out = append(out, Lift(v))
	}
	return out
}

func orDefault(t, def types.Type) types.Type {
	if t != nil {
		return t
	}
	return def
}
