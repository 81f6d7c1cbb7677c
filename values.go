package tsgen

import (
	"github.com/risor-io/tsgen/ast"
	"github.com/risor-io/tsgen/internal/tmpl"
	"github.com/risor-io/tsgen/seq"
	"github.com/risor-io/tsgen/types"
)

// Num returns a number literal.
func Num(v float64) *ast.Number { return &ast.Number{Value: v} }

// NumT returns a number literal annotated with t.
func NumT(v float64, t types.Type) *ast.Number { return &ast.Number{Value: v, Type: t} }

// Str returns a string literal.
func Str(v string) *ast.String { return &ast.String{Value: v} }

// StrT returns a string literal annotated with t.
func StrT(v string, t types.Type) *ast.String { return &ast.String{Value: v, Type: t} }

// Bool returns a boolean literal.
func Bool(v bool) *ast.Bool { return &ast.Bool{Value: v} }

// Null returns the null literal.
func Null() ast.Expr { return &ast.Value{} }

// Lift converts a bare host value into an expression.
func Lift(v any) ast.Expr { return seq.Lift(v) }

// Ref returns a reference to a name bound elsewhere, such as a function
// parameter or a global.
func Ref(name string) *ast.Ident { return &ast.Ident{Name: name} }

// RefT returns a typed reference.
func RefT(name string, t types.Type) *ast.Ident { return &ast.Ident{Name: name, Type: t} }

// Let declares a mutable binding.
func Let(name string, value any) *ast.Let {
	return &ast.Let{Name: name, Value: optional(value)}
}

// LetT declares a mutable binding annotated with t.
func LetT(name string, t types.Type, value any) *ast.Let {
	return &ast.Let{Name: name, Type: t, Value: optional(value)}
}

// Const declares an immutable binding.
func Const(name string, value any) *ast.Let {
	return &ast.Let{Name: name, Value: optional(value), Const: true}
}

// ConstT declares an immutable binding annotated with t.
func ConstT(name string, t types.Type, value any) *ast.Let {
	return &ast.Let{Name: name, Type: t, Value: optional(value), Const: true}
}

// Block runs body and wraps what it emits in a block statement.
func Block(body Producer) *ast.Block {
	return &ast.Block{Stmts: seq.Run(body).Stmts}
}

// If returns a conditional. A nil els produces no else branch.
func If(cond any, then Producer, els Producer) *ast.If {
	n := &ast.If{Cond: seq.Lift(cond), Then: Block(then)}
	if els != nil {
		n.Else = Block(els)
	}
	return n
}

// LoopBody is a loop body that receives a reference to the loop variable.
type LoopBody func(b *Builder, v *ast.Ident)

// ForOf iterates over the elements of source. The element reference is
// typed when source carries an array type.
func ForOf(name string, source any, body LoopBody) *ast.ForOf {
	src := seq.Lift(source)
	item := &ast.Ident{Name: name, Type: seq.ElemType(src)}
	return &ast.ForOf{Name: name, Source: src, Body: loopBlock(body, item)}
}

// ForIn iterates over the keys of source.
func ForIn(name string, source any, body LoopBody) *ast.ForIn {
	key := &ast.Ident{Name: name, Type: types.String}
	return &ast.ForIn{Name: name, Source: seq.Lift(source), Body: loopBlock(body, key)}
}

// For returns a three-part loop. Any of init, cond and post may be nil.
func For(init ast.Node, cond, post any, body Producer) *ast.For {
	return &ast.For{Init: init, Cond: optional(cond), Post: optional(post), Body: Block(body)}
}

// While returns a loop that runs body while cond holds.
func While(cond any, body Producer) *ast.While {
	return &ast.While{Cond: seq.Lift(cond), Body: Block(body)}
}

// Return returns a return statement. A nil value returns nothing.
func Return(v any) *ast.Return {
	return &ast.Return{Value: optional(v)}
}

// KV returns one object property.
func KV(key string, value any) ast.Property {
	return ast.Property{Key: key, Value: seq.Lift(value)}
}

// Object returns an object literal.
func Object(props ...ast.Property) *ast.Object {
	return &ast.Object{Props: props}
}

// ObjectT returns an object literal annotated with t.
func ObjectT(t types.Type, props ...ast.Property) *ast.Object {
	return &ast.Object{Props: props, Type: t}
}

// Array returns an array literal.
func Array(elems ...any) *ast.Array {
	return &ast.Array{Elems: seq.LiftAll(elems)}
}

// ArrayT returns an array literal annotated with t.
func ArrayT(t types.Type, elems ...any) *ast.Array {
	return &ast.Array{Elems: seq.LiftAll(elems), Type: t}
}

// Call calls callee with args. A string callee is taken as raw text, so
// Call("console.log", x) calls console.log.
func Call(callee any, args ...any) *ast.Call {
	return &ast.Call{Fun: receiver(callee), Args: seq.LiftAll(args)}
}

// MethodCall calls method on obj. A string obj is taken as raw text.
func MethodCall(obj any, method string, args ...any) *ast.MethodCall {
	return &ast.MethodCall{X: receiver(obj), Method: method, Args: seq.LiftAll(args)}
}

// Property accesses a named member of obj.
func Property(obj any, name string) *ast.Member {
	return &ast.Member{X: receiver(obj), Property: &ast.Ident{Name: name}}
}

// Index accesses a computed member of obj.
func Index(obj any, key any) *ast.Member {
	return &ast.Member{X: receiver(obj), Property: seq.Lift(key), Computed: true}
}

// Raw returns opaque source text.
func Raw(text string) *ast.Raw { return &ast.Raw{Text: text} }

// Newline returns an empty raw node, rendered as a blank line.
func Newline() *ast.Raw { return &ast.Raw{} }

// Template returns a template literal. quasis must have one more element
// than exprs.
func Template(quasis []string, exprs ...any) *ast.Template {
	return &ast.Template{Quasis: quasis, Exprs: seq.LiftAll(exprs)}
}

// Tmpl parses s as a template string. Each ${...} placeholder becomes a
// raw expression holding its contents.
func Tmpl(s string) (*ast.Template, error) {
	parsed, err := tmpl.Parse(s)
	if err != nil {
		return nil, err
	}
	t := &ast.Template{Quasis: []string{""}}
	for _, f := range parsed.Fragments() {
		if f.IsVariable() {
			t.Exprs = append(t.Exprs, &ast.Raw{Text: f.Value()})
			t.Quasis = append(t.Quasis, "")
			continue
		}
		t.Quasis[len(t.Quasis)-1] += f.Value()
	}
	return t, nil
}

// MustTmpl is like Tmpl but panics if s cannot be parsed.
func MustTmpl(s string) *ast.Template {
	t, err := Tmpl(s)
	if err != nil {
		panic(err)
	}
	return t
}

// FuncOption configures a function literal.
type FuncOption func(*ast.Func)

// Param appends an untyped parameter.
func Param(name string) FuncOption {
	return func(f *ast.Func) {
		f.Params = append(f.Params, ast.Param{Name: name})
	}
}

// ParamT appends a typed parameter.
func ParamT(name string, t types.Type) FuncOption {
	return func(f *ast.Func) {
		f.Params = append(f.Params, ast.Param{Name: name, Type: t})
	}
}

// Returns sets the declared result type.
func Returns(t types.Type) FuncOption {
	return func(f *ast.Func) {
		f.Returns = t
	}
}

// TypeParams sets the generic type parameters.
func TypeParams(params ...types.Param) FuncOption {
	return func(f *ast.Func) {
		f.TypeParams = append(f.TypeParams, params...)
	}
}

// Func returns a function literal. Parameters are bound by name, so the
// body refers to them with Ref. A completion value set with Finish becomes
// the function's result.
func Func(body Producer, opts ...FuncOption) *ast.Func {
	f := &ast.Func{}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	res := seq.Run(body)
	f.Body = res.Stmts
	f.Result = res.Value
	return f
}

func loopBlock(body LoopBody, v *ast.Ident) *ast.Block {
	if body == nil {
		return &ast.Block{}
	}
	return Block(func(b *Builder) { body(b, v) })
}

func optional(v any) ast.Expr {
	if v == nil {
		return nil
	}
	return seq.Lift(v)
}

func receiver(v any) ast.Expr {
	if s, ok := v.(string); ok {
		return &ast.Raw{Text: s}
	}
	return seq.Lift(v)
}
