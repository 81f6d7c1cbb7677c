// Package jsgen serializes syntax trees into the node vocabulary of
// github.com/tdewolff/parse/v2/js, whose unparser produces the final text.
//
// Unlike the pretty-printer in package ast, the serializer is strict: host
// values, nodes and operators without a conversion fail the whole call.
package jsgen

import (
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tdewolff/parse/v2/js"

	"github.com/risor-io/tsgen/ast"
	"github.com/risor-io/tsgen/errz"
	"github.com/risor-io/tsgen/internal/jsonx"
	"github.com/risor-io/tsgen/internal/token"
)

// Braces are only written around blocks whose scope has a parent.
var moduleScope js.Scope

// Generator converts nodes. It holds only configuration and may be reused.
type Generator struct {
	logger zerolog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used to report recovered problems, such as
// raw text that does not parse.
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// New returns a Generator configured with the given options.
func New(opts ...Option) *Generator {
	g := &Generator{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Node converts n into exactly one external node.
func (g *Generator) Node(n ast.Node) (js.INode, error) {
	return g.node(n)
}

// Stmts converts a statement list. Expressions are wrapped in expression
// statements and raw text holding several statements is spliced into the
// list.
func (g *Generator) Stmts(nodes []ast.Node) ([]js.IStmt, error) {
	out := make([]js.IStmt, 0, len(nodes))
	for _, n := range nodes {
		if raw, ok := n.(*ast.Raw); ok {
			out = append(out, g.rawStmts(raw)...)
			continue
		}
		s, err := g.stmt(n)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Program converts a top-level statement list into a module.
func (g *Generator) Program(nodes []ast.Node) (*js.AST, error) {
	stmts, err := g.Stmts(nodes)
	if err != nil {
		return nil, err
	}
	return &js.AST{BlockStmt: js.BlockStmt{List: stmts}}, nil
}

// Generate converts nodes and unparses the result.
func (g *Generator) Generate(nodes []ast.Node) (string, error) {
	prog, err := g.Program(nodes)
	if err != nil {
		return "", err
	}
	return prog.JS(), nil
}

func (g *Generator) stmt(n ast.Node) (js.IStmt, error) {
	out, err := g.node(n)
	if err != nil {
		return nil, err
	}
	switch out := out.(type) {
	case js.IStmt:
		return out, nil
	case js.IExpr:
		return &js.ExprStmt{Value: out}, nil
	}
	return nil, errz.Newf(errz.T1002, "%T is neither a statement nor an expression", out).WithNode(n.String())
}

func (g *Generator) expr(n ast.Node) (js.IExpr, error) {
	if raw, ok := n.(*ast.Raw); ok {
		return g.rawExpr(raw)
	}
	out, err := g.node(n)
	if err != nil {
		return nil, err
	}
	if _, isStmt := n.(ast.Stmt); !isStmt {
		if e, ok := out.(js.IExpr); ok {
			return e, nil
		}
	}
	return nil, errz.New(errz.T1004, "statement used where an expression is required").WithNode(n.String())
}

func (g *Generator) exprs(nodes []ast.Expr) ([]js.IExpr, error) {
	out := make([]js.IExpr, 0, len(nodes))
	for _, n := range nodes {
		e, err := g.expr(n)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (g *Generator) node(n ast.Node) (js.INode, error) {
	switch n := n.(type) {
	case nil:
		return nil, errz.New(errz.T1002, "missing node")
	case *ast.Program:
		return g.Program(n.Stmts)

	// Literals
	case *ast.Number:
		return number(n.Value), nil
	case *ast.String:
		return str(n.Value), nil
	case *ast.Bool:
		return boolean(n.Value), nil
	case *ast.Value:
		return value(n)
	case *ast.Object:
		return g.object(n)
	case *ast.Array:
		elems, err := g.exprs(n.Elems)
		if err != nil {
			return nil, err
		}
		arr := &js.ArrayExpr{List: make([]js.Element, 0, len(elems))}
		for _, e := range elems {
			arr.List = append(arr.List, js.Element{Value: e})
		}
		return arr, nil
	case *ast.Func:
		return g.fn(n)
	case *ast.Template:
		return g.template(n)

	// Expressions
	case *ast.Ident:
		if n.Of != nil {
			return g.node(n.Of)
		}
		return ident(n.Name), nil
	case *ast.Raw:
		return g.raw(n)
	case *ast.Call:
		fun, err := g.primary(n.Fun)
		if err != nil {
			return nil, err
		}
		args, err := g.args(n.Args)
		if err != nil {
			return nil, err
		}
		return &js.CallExpr{X: fun, Args: args}, nil
	case *ast.MethodCall:
		x, err := g.primary(n.X)
		if err != nil {
			return nil, err
		}
		args, err := g.args(n.Args)
		if err != nil {
			return nil, err
		}
		return &js.CallExpr{X: &js.DotExpr{X: x, Y: name(n.Method)}, Args: args}, nil
	case *ast.Binary:
		return g.binary(n, n.X, n.Op, n.Y)
	case *ast.Logical:
		return g.binary(n, n.X, n.Op, n.Y)
	case *ast.Unary:
		return g.unary(n)
	case *ast.Member:
		return g.member(n)

	// Statements
	case *ast.Let:
		return g.let(n)
	case *ast.Block:
		return g.block(n)
	case *ast.If:
		return g.ifStmt(n)
	case *ast.ForOf:
		source, err := g.expr(n.Source)
		if err != nil {
			return nil, err
		}
		body, err := g.block(n.Body)
		if err != nil {
			return nil, err
		}
		return &js.ForOfStmt{Init: constDecl(n.Name), Value: source, Body: body}, nil
	case *ast.ForIn:
		source, err := g.expr(n.Source)
		if err != nil {
			return nil, err
		}
		body, err := g.block(n.Body)
		if err != nil {
			return nil, err
		}
		return &js.ForInStmt{Init: constDecl(n.Name), Value: source, Body: body}, nil
	case *ast.For:
		return g.forStmt(n)
	case *ast.While:
		cond, err := g.expr(n.Cond)
		if err != nil {
			return nil, err
		}
		body, err := g.block(n.Body)
		if err != nil {
			return nil, err
		}
		return &js.WhileStmt{Cond: cond, Body: body}, nil
	case *ast.Return:
		ret := &js.ReturnStmt{}
		if n.Value != nil {
			v, err := g.expr(n.Value)
			if err != nil {
				return nil, err
			}
			ret.Value = v
		}
		return ret, nil
	case *ast.TypeAlias:
		// The ES vocabulary has no type declarations; carry the text as is.
		return &js.Comment{Value: []byte(strings.TrimSuffix(n.String(), ";"))}, nil
	case *ast.Interface:
		return &js.Comment{Value: []byte(n.String())}, nil
	}
	return nil, errz.Newf(errz.T1002, "no conversion for %T", n).WithNode(n.String())
}

func (g *Generator) let(n *ast.Let) (*js.VarDecl, error) {
	elem := js.BindingElement{Binding: ident(n.Name)}
	if n.Value != nil {
		v, err := g.expr(n.Value)
		if err != nil {
			return nil, err
		}
		elem.Default = v
	}
	tt := js.LetToken
	if n.Const {
		tt = js.ConstToken
	}
	return &js.VarDecl{TokenType: tt, List: []js.BindingElement{elem}}, nil
}

func (g *Generator) block(b *ast.Block) (*js.BlockStmt, error) {
	if b == nil {
		return blockOf(nil), nil
	}
	stmts, err := g.Stmts(b.Stmts)
	if err != nil {
		return nil, err
	}
	return blockOf(stmts), nil
}

func (g *Generator) ifStmt(n *ast.If) (*js.IfStmt, error) {
	cond, err := g.expr(n.Cond)
	if err != nil {
		return nil, err
	}
	then, err := g.block(n.Then)
	if err != nil {
		return nil, err
	}
	out := &js.IfStmt{Cond: cond, Body: then}
	if n.Else != nil {
		els, err := g.block(n.Else)
		if err != nil {
			return nil, err
		}
		out.Else = els
	}
	return out, nil
}

func (g *Generator) forStmt(n *ast.For) (*js.ForStmt, error) {
	out := &js.ForStmt{}
	var err error
	switch init := n.Init.(type) {
	case nil:
	case *ast.Let:
		if out.Init, err = g.let(init); err != nil {
			return nil, err
		}
	default:
		if out.Init, err = g.expr(init); err != nil {
			return nil, err
		}
	}
	if n.Cond != nil {
		if out.Cond, err = g.expr(n.Cond); err != nil {
			return nil, err
		}
	}
	if n.Post != nil {
		if out.Post, err = g.expr(n.Post); err != nil {
			return nil, err
		}
	}
	if out.Body, err = g.block(n.Body); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *Generator) object(n *ast.Object) (*js.ObjectExpr, error) {
	out := &js.ObjectExpr{List: make([]js.Property, 0, len(n.Props))}
	for _, prop := range n.Props {
		v, err := g.expr(prop.Value)
		if err != nil {
			return nil, err
		}
		key := js.LiteralExpr{TokenType: js.IdentifierToken, Data: []byte(prop.Key)}
		if !token.IsIdentifier(prop.Key) {
			key = js.LiteralExpr{TokenType: js.StringToken, Data: []byte(jsonx.Quote(prop.Key))}
		}
		out.List = append(out.List, js.Property{Name: &js.PropertyName{Literal: key}, Value: v})
	}
	return out, nil
}

func (g *Generator) fn(n *ast.Func) (*js.ArrowFunc, error) {
	params := js.Params{List: make([]js.BindingElement, 0, len(n.Params))}
	for _, p := range n.Params {
		params.List = append(params.List, js.BindingElement{Binding: ident(p.Name)})
	}
	body, err := g.Stmts(n.Body)
	if err != nil {
		return nil, err
	}
	if n.Result != nil {
		v, err := g.expr(n.Result)
		if err != nil {
			return nil, err
		}
		body = append(body, &js.ReturnStmt{Value: v})
	}
	return &js.ArrowFunc{Params: params, Body: *blockOf(body)}, nil
}

// template requires exactly one more text segment than expressions.
func (g *Generator) template(n *ast.Template) (*js.TemplateExpr, error) {
	if len(n.Quasis) != len(n.Exprs)+1 {
		return nil, errz.Newf(errz.T1002, "template has %d text segments for %d expressions",
			len(n.Quasis), len(n.Exprs)).WithNode(n.String())
	}
	exprs, err := g.exprs(n.Exprs)
	if err != nil {
		return nil, err
	}
	quasis := n.Quasis
	out := &js.TemplateExpr{}
	open := "`"
	for i, e := range exprs {
		out.List = append(out.List, js.TemplatePart{
			Value: []byte(open + ast.EscapeTemplate(quasis[i]) + "${"),
			Expr:  e,
		})
		open = "}"
	}
	out.Tail = []byte(open + ast.EscapeTemplate(quasis[len(exprs)]) + "`")
	return out, nil
}

func (g *Generator) args(nodes []ast.Expr) (js.Args, error) {
	exprs, err := g.exprs(nodes)
	if err != nil {
		return js.Args{}, err
	}
	args := js.Args{List: make([]js.Arg, 0, len(exprs))}
	for _, e := range exprs {
		args.List = append(args.List, js.Arg{Value: e})
	}
	return args, nil
}

// primary converts the object of a call or member access.
func (g *Generator) primary(x ast.Expr) (js.IExpr, error) {
	e, err := g.expr(x)
	if err != nil {
		return nil, err
	}
	if ast.Precedence(x) < token.PRIMARY {
		return &js.GroupExpr{X: e}, nil
	}
	return e, nil
}

func (g *Generator) binary(n ast.Expr, x ast.Expr, op token.Type, y ast.Expr) (*js.BinaryExpr, error) {
	tt, ok := binaryOps[op]
	if !ok {
		return nil, errz.Newf(errz.T1003, "unknown binary operator %q", op).WithNode(n.String())
	}
	left, err := g.expr(x)
	if err != nil {
		return nil, err
	}
	right, err := g.expr(y)
	if err != nil {
		return nil, err
	}
	if ast.OperandNeedsParens(x, op, false) {
		left = &js.GroupExpr{X: left}
	}
	if ast.OperandNeedsParens(y, op, true) {
		right = &js.GroupExpr{X: right}
	}
	return &js.BinaryExpr{Op: tt, X: left, Y: right}, nil
}

func (g *Generator) unary(n *ast.Unary) (*js.UnaryExpr, error) {
	ops := prefixOps
	if !n.Prefix {
		ops = postfixOps
	}
	tt, ok := ops[n.Op]
	if !ok {
		return nil, errz.Newf(errz.T1003, "unknown unary operator %q", n.Op).WithNode(n.String())
	}
	x, err := g.expr(n.X)
	if err != nil {
		return nil, err
	}
	limit := token.PREFIX
	if !n.Prefix {
		limit = token.POSTFIX
	}
	prec := ast.Precedence(n.X)
	if prec < limit || (n.Prefix && prec == token.PREFIX && (tt == js.NegToken || tt == js.PosToken)) {
		x = &js.GroupExpr{X: x}
	}
	return &js.UnaryExpr{Op: tt, X: x}, nil
}

func (g *Generator) member(n *ast.Member) (js.IExpr, error) {
	x, err := g.primary(n.X)
	if err != nil {
		return nil, err
	}
	if n.Computed {
		y, err := g.expr(n.Property)
		if err != nil {
			return nil, err
		}
		return &js.IndexExpr{X: x, Y: y}, nil
	}
	prop, ok := n.Name()
	if !ok {
		if n.Property == nil {
			return nil, errz.New(errz.T1002, "member access without a property").WithNode(n.String())
		}
		prop = n.Property.String()
	}
	return &js.DotExpr{X: x, Y: name(prop)}, nil
}

var binaryOps = map[token.Type]js.TokenType{
	token.PLUS:          js.AddToken,
	token.MINUS:         js.SubToken,
	token.ASTERISK:      js.MulToken,
	token.SLASH:         js.DivToken,
	token.MOD:           js.ModToken,
	token.POW:           js.ExpToken,
	token.GT:            js.GtToken,
	token.LT:            js.LtToken,
	token.GT_EQUALS:     js.GtEqToken,
	token.LT_EQUALS:     js.LtEqToken,
	token.EQ:            js.EqEqToken,
	token.NOT_EQ:        js.NotEqToken,
	token.EQ_STRICT:     js.EqEqEqToken,
	token.NOT_EQ_STRICT: js.NotEqEqToken,
	token.AND:           js.AndToken,
	token.OR:            js.OrToken,
}

var prefixOps = map[token.Type]js.TokenType{
	token.BANG:        js.NotToken,
	token.MINUS:       js.NegToken,
	token.PLUS:        js.PosToken,
	token.PLUS_PLUS:   js.PreIncrToken,
	token.MINUS_MINUS: js.PreDecrToken,
}

var postfixOps = map[token.Type]js.TokenType{
	token.PLUS_PLUS:   js.PostIncrToken,
	token.MINUS_MINUS: js.PostDecrToken,
}

func blockOf(stmts []js.IStmt) *js.BlockStmt {
	return &js.BlockStmt{List: stmts, Scope: js.Scope{Parent: &moduleScope}}
}

func ident(s string) *js.Var {
	return &js.Var{Data: []byte(s)}
}

func name(s string) js.LiteralExpr {
	return js.LiteralExpr{TokenType: js.IdentifierToken, Data: []byte(s)}
}

func constDecl(s string) *js.VarDecl {
	return &js.VarDecl{
		TokenType: js.ConstToken,
		List:      []js.BindingElement{{Binding: ident(s)}},
	}
}

func number(v float64) js.IExpr {
	switch {
	case math.IsNaN(v):
		return ident("NaN")
	case math.IsInf(v, 0):
		inf := ident("Infinity")
		if v < 0 {
			return &js.UnaryExpr{Op: js.NegToken, X: inf}
		}
		return inf
	case v < 0 || math.Signbit(v):
		return &js.UnaryExpr{Op: js.NegToken, X: number(-v)}
	}
	return &js.LiteralExpr{TokenType: js.DecimalToken, Data: []byte(strconv.FormatFloat(v, 'f', -1, 64))}
}

func str(s string) *js.LiteralExpr {
	return &js.LiteralExpr{TokenType: js.StringToken, Data: []byte(jsonx.Quote(s))}
}

func boolean(b bool) *js.LiteralExpr {
	if b {
		return &js.LiteralExpr{TokenType: js.TrueToken, Data: []byte("true")}
	}
	return &js.LiteralExpr{TokenType: js.FalseToken, Data: []byte("false")}
}

// value converts a bare host value. Only numbers, strings, booleans and nil
// have a conversion.
func value(n *ast.Value) (js.IExpr, error) {
	switch v := n.V.(type) {
	case nil:
		return &js.LiteralExpr{TokenType: js.NullToken, Data: []byte("null")}, nil
	case string:
		return str(v), nil
	case bool:
		return boolean(v), nil
	case int:
		return number(float64(v)), nil
	case int8:
		return number(float64(v)), nil
	case int16:
		return number(float64(v)), nil
	case int32:
		return number(float64(v)), nil
	case int64:
		return number(float64(v)), nil
	case uint:
		return number(float64(v)), nil
	case uint8:
		return number(float64(v)), nil
	case uint16:
		return number(float64(v)), nil
	case uint32:
		return number(float64(v)), nil
	case uint64:
		return number(float64(v)), nil
	case float32:
		return number(float64(v)), nil
	case float64:
		return number(v), nil
	}
	return nil, errz.Newf(errz.T1001, "cannot convert value of type %T", n.V).WithNode(n.String())
}
