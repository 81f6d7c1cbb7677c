package jsgen

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/parse/v2/js"

	"github.com/risor-io/tsgen/ast"
	"github.com/risor-io/tsgen/errz"
	"github.com/risor-io/tsgen/internal/token"
	"github.com/risor-io/tsgen/types"
)

func ref(name string) *ast.Ident { return &ast.Ident{Name: name} }

func num(v float64) *ast.Number { return &ast.Number{Value: v} }

func logCall(args ...ast.Expr) *ast.Call {
	return &ast.Call{Fun: &ast.Raw{Text: "console.log"}, Args: args}
}

func generate(t *testing.T, nodes ...ast.Node) string {
	t.Helper()
	out, err := New().Generate(nodes)
	require.NoError(t, err)
	return out
}

func TestGenerateStatements(t *testing.T) {
	tests := []struct {
		name string
		node ast.Node
		want string
	}{
		{"let", &ast.Let{Name: "a", Value: num(10)}, "let a = 10; "},
		{"const", &ast.Let{Name: "a", Value: &ast.String{Value: "x"}, Const: true}, `const a = "x"; `},
		{"typed let drops annotation", &ast.Let{Name: "a", Type: types.Number, Value: num(1)}, "let a = 1; "},
		{"bare let", &ast.Let{Name: "a"}, "let a; "},
		{"expression statement", logCall(ref("a")), "console.log(a); "},
		{"binary", &ast.Binary{X: ref("a"), Op: token.PLUS, Y: num(5)}, "a + 5; "},
		{"return", &ast.Return{Value: ref("a")}, "return a; "},
		{"if", &ast.If{
			Cond: &ast.Binary{X: ref("a"), Op: token.GT, Y: num(1)},
			Then: &ast.Block{Stmts: []ast.Node{logCall(ref("a"))}},
		}, "if (a > 1) { console.log(a); }; "},
		{"if else", &ast.If{
			Cond: &ast.Bool{Value: true},
			Then: &ast.Block{},
			Else: &ast.Block{Stmts: []ast.Node{&ast.Return{}}},
		}, "if (true) { } else { return; }; "},
		{"while", &ast.While{
			Cond: &ast.Logical{X: ref("a"), Op: token.AND, Y: ref("b")},
			Body: &ast.Block{Stmts: []ast.Node{&ast.Unary{Op: token.MINUS_MINUS, X: ref("a")}}},
		}, "while (a && b) { a--; }; "},
		{"for", &ast.For{
			Init: &ast.Let{Name: "i", Value: num(0)},
			Cond: &ast.Binary{X: ref("i"), Op: token.LT, Y: num(10)},
			Post: &ast.Unary{Op: token.PLUS_PLUS, X: ref("i")},
			Body: &ast.Block{Stmts: []ast.Node{logCall(ref("i"))}},
		}, "for (let i = 0; i < 10; i++) { console.log(i); }; "},
		{"for in", &ast.ForIn{
			Name:   "k",
			Source: ref("obj"),
			Body:   &ast.Block{Stmts: []ast.Node{logCall(ref("k"))}},
		}, "for (const k in obj) { console.log(k); }; "},
		{"block", &ast.Block{Stmts: []ast.Node{logCall()}}, "{ console.log(); }; "},
		{"type alias", &ast.TypeAlias{Name: "ID", Type: types.String}, "type ID = string; "},
		{"interface", &ast.Interface{
			Name:   "P",
			Fields: []types.Field{{Name: "x", Type: types.Number}},
		}, "interface P { x: number; }; "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, generate(t, tt.node))
		})
	}
}

func TestGenerateForOf(t *testing.T) {
	loop := &ast.ForOf{
		Name:   "item",
		Source: ref("items"),
		Body:   &ast.Block{Stmts: []ast.Node{logCall(ref("item"))}},
	}
	out := generate(t, loop)
	assert.Contains(t, out, "for (const item of items)")
	assert.Contains(t, out, "console.log(item)")
	assert.Equal(t, "for (const item of items) { console.log(item); }; ", out)
}

func TestGenerateExpressions(t *testing.T) {
	a, b, c := ref("a"), ref("b"), ref("c")
	tests := []struct {
		name string
		node ast.Expr
		want string
	}{
		{"negative", num(-3), "-3"},
		{"float", num(0.25), "0.25"},
		{"string", &ast.String{Value: "say \"hi\""}, `"say \"hi\""`},
		{"bool", &ast.Bool{Value: false}, "false"},
		{"null", &ast.Value{V: nil}, "null"},
		{"value number", &ast.Value{V: 7}, "7"},
		{"object", &ast.Object{Props: []ast.Property{
			{Key: "name", Value: &ast.String{Value: "sai"}},
			{Key: "age", Value: num(23423)},
			{Key: "content-type", Value: &ast.String{Value: "json"}},
		}}, `{name: "sai", age: 23423, "content-type": "json"}`},
		{"array", &ast.Array{Elems: []ast.Expr{num(1), num(2)}}, "[1, 2]"},
		{"grouping", &ast.Binary{X: &ast.Binary{X: a, Op: token.PLUS, Y: b}, Op: token.ASTERISK, Y: c}, "(a + b) * c"},
		{"right grouping", &ast.Binary{X: a, Op: token.MINUS, Y: &ast.Binary{X: b, Op: token.MINUS, Y: c}}, "a - (b - c)"},
		{"reused sum", &ast.Binary{X: &ast.Ident{Name: "a + b", Of: &ast.Binary{X: a, Op: token.PLUS, Y: b}}, Op: token.ASTERISK, Y: c}, "(a + b) * c"},
		{"not reused or", &ast.Unary{Op: token.BANG, X: &ast.Ident{Name: "a || b", Of: &ast.Logical{X: a, Op: token.OR, Y: b}}, Prefix: true}, "!(a || b)"},
		{"strict equality", &ast.Binary{X: a, Op: token.EQ_STRICT, Y: b}, "a === b"},
		{"or", &ast.Logical{X: a, Op: token.OR, Y: b}, "a || b"},
		{"not", &ast.Unary{Op: token.BANG, X: &ast.Logical{X: a, Op: token.AND, Y: b}, Prefix: true}, "!(a && b)"},
		{"negate negative", &ast.Unary{Op: token.MINUS, X: num(-1), Prefix: true}, "-(-1)"},
		{"pre increment", &ast.Unary{Op: token.PLUS_PLUS, X: a, Prefix: true}, "++a"},
		{"property", &ast.Member{X: a, Property: ref("length")}, "a.length"},
		{"index", &ast.Member{X: a, Property: num(0), Computed: true}, "a[0]"},
		{"method call", &ast.MethodCall{X: a, Method: "push", Args: []ast.Expr{num(1)}}, "a.push(1)"},
		{"call", &ast.Call{Fun: ref("f"), Args: []ast.Expr{a, num(2)}}, "f(a, 2)"},
		{"template", &ast.Template{Quasis: []string{"Hello, ", "!"}, Exprs: []ast.Expr{ref("name")}}, "`Hello, ${name}!`"},
		{"template two", &ast.Template{Quasis: []string{"", "-", ""}, Exprs: []ast.Expr{a, b}}, "`${a}-${b}`"},
		{"template plain", &ast.Template{Quasis: []string{"a`b"}}, "`a\\`b`"},
		{"arrow", &ast.Func{
			Params: []ast.Param{{Name: "x", Type: types.Number}},
			Body:   []ast.Node{&ast.Let{Name: "y", Value: &ast.Binary{X: ref("x"), Op: token.ASTERISK, Y: num(2)}}},
			Result: ref("y"),
		}, "(x) => { let y = x * 2; return y; }"},
		{"empty arrow", &ast.Func{}, "() => { }"},
	}
	g := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := g.Node(tt.node)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.JS())
		})
	}
}

func TestNodeKinds(t *testing.T) {
	g := New()

	out, err := g.Node(&ast.Raw{Text: "console.log"})
	require.NoError(t, err)
	assert.IsType(t, &js.DotExpr{}, out)

	out, err = g.Node(ref("x"))
	require.NoError(t, err)
	assert.IsType(t, &js.Var{}, out)

	out, err = g.Node(&ast.Ident{Name: "x + 1", Of: &ast.Binary{X: ref("x"), Op: token.PLUS, Y: num(1)}})
	require.NoError(t, err)
	assert.IsType(t, &js.BinaryExpr{}, out)

	out, err = g.Node(&ast.Let{Name: "x", Value: num(1)})
	require.NoError(t, err)
	assert.IsType(t, &js.VarDecl{}, out)

	out, err = g.Node(&ast.Func{})
	require.NoError(t, err)
	assert.IsType(t, &js.ArrowFunc{}, out)
}

func TestStmtsWrapExpressions(t *testing.T) {
	stmts, err := New().Stmts([]ast.Node{
		&ast.Let{Name: "a", Value: num(1)},
		&ast.Binary{X: ref("a"), Op: token.PLUS, Y: num(1)},
	})
	require.NoError(t, err)
	require.Len(t, stmts, 2)
	assert.IsType(t, &js.VarDecl{}, stmts[0])
	assert.IsType(t, &js.ExprStmt{}, stmts[1])
}

func TestRaw(t *testing.T) {
	t.Run("malformed degrades to string literal", func(t *testing.T) {
		stmts, err := New().Stmts([]ast.Node{&ast.Raw{Text: "let = ;"}})
		require.NoError(t, err)
		require.Len(t, stmts, 1)
		es, ok := stmts[0].(*js.ExprStmt)
		require.True(t, ok)
		lit, ok := es.Value.(*js.LiteralExpr)
		require.True(t, ok)
		assert.Equal(t, js.StringToken, lit.TokenType)
		assert.Equal(t, `"let = ;"`, string(lit.Data))
	})

	t.Run("statement", func(t *testing.T) {
		stmts, err := New().Stmts([]ast.Node{&ast.Raw{Text: "let x = 1"}})
		require.NoError(t, err)
		assert.IsType(t, &js.VarDecl{}, stmts[0])
	})

	t.Run("several statements", func(t *testing.T) {
		assert.Equal(t, "a(); b(); ", generate(t, &ast.Raw{Text: "a(); b()"}))

		stmts, err := New().Stmts([]ast.Node{&ast.Raw{Text: "a(); b()"}, logCall(ref("c"))})
		require.NoError(t, err)
		assert.Len(t, stmts, 3)

		out, err := New().Node(&ast.Block{Stmts: []ast.Node{&ast.Raw{Text: "a(); let x = 1"}}})
		require.NoError(t, err)
		assert.Equal(t, "{ a(); let x = 1; }", out.JS())
	})

	t.Run("empty is a blank statement", func(t *testing.T) {
		stmts, err := New().Stmts([]ast.Node{&ast.Raw{}})
		require.NoError(t, err)
		assert.IsType(t, &js.EmptyStmt{}, stmts[0])
		assert.Equal(t, "", generate(t, &ast.Raw{}))
	})

	t.Run("statement in expression position", func(t *testing.T) {
		_, err := New().Node(logCall(&ast.Raw{Text: "let x = 1"}))
		require.Error(t, err)
		kind, ok := errz.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, errz.ErrUnsupportedNode, kind)
	})

	t.Run("logs recovered failures", func(t *testing.T) {
		var buf bytes.Buffer
		logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
		_, err := New(WithLogger(logger)).Generate([]ast.Node{&ast.Raw{Text: "let = ;"}})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "raw text did not parse")
	})
}

func TestUnsupportedValue(t *testing.T) {
	tests := []struct {
		name string
		v    any
	}{
		{"func", func() {}},
		{"map", map[string]int{"a": 1}},
		{"slice", []int{1}},
		{"complex", complex(1, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			let := &ast.Let{Name: "a", Value: &ast.Value{V: tt.v}}
			_, err := New().Generate([]ast.Node{let})
			require.Error(t, err)
			assert.True(t, errors.Is(err, errz.ErrUnsupported))

			// The printer falls back instead of failing.
			assert.NotPanics(t, func() { _ = let.String() })
		})
	}
	assert.Equal(t, "let a = undefined;", (&ast.Let{Name: "a", Value: &ast.Value{V: func() {}}}).String())
}

func TestStatementInExpressionPosition(t *testing.T) {
	_, err := New().Node(&ast.Call{Fun: ref("f"), Args: []ast.Expr{&ast.Raw{Text: ""}}})
	require.Error(t, err)

	var e *errz.Error
	_, err = New().Node(&ast.Member{X: ref("o"), Property: ref("p"), Computed: true})
	require.NoError(t, err)

	_, err = New().Node(&ast.Object{Props: []ast.Property{{Key: "k", Value: &ast.Raw{Text: "if (x) {}"}}}})
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errz.T1004, e.Code)
}

func TestTemplateSegmentMismatch(t *testing.T) {
	tests := []struct {
		name   string
		quasis []string
		exprs  []ast.Expr
	}{
		{"extra segment", []string{"a", "b", "c"}, []ast.Expr{ref("x")}},
		{"missing segment", []string{"a"}, []ast.Expr{ref("x")}},
		{"no segments", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Node(&ast.Template{Quasis: tt.quasis, Exprs: tt.exprs})
			require.Error(t, err)
			var e *errz.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, errz.T1002, e.Code)
		})
	}
}

func TestUnknownOperator(t *testing.T) {
	_, err := New().Node(&ast.Binary{X: ref("a"), Op: "^", Y: ref("b")})
	var e *errz.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errz.T1003, e.Code)

	_, err = New().Node(&ast.Unary{Op: token.BANG, X: ref("a")})
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errz.T1003, e.Code)
}

func TestProgram(t *testing.T) {
	prog, err := New().Program([]ast.Node{
		&ast.Let{Name: "a", Value: num(10)},
		logCall(&ast.Binary{X: ref("a"), Op: token.PLUS, Y: num(5)}),
	})
	require.NoError(t, err)
	require.Len(t, prog.List, 2)
	assert.Equal(t, "let a = 10; console.log(a + 5); ", prog.JS())

	node, err := New().Node(&ast.Program{Stmts: []ast.Node{&ast.Return{}}})
	require.NoError(t, err)
	assert.Equal(t, "return; ", node.JS())
}
