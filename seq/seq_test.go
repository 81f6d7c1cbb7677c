package seq

import (
	"testing"

	"github.com/risor-io/tsgen/ast"
	"github.com/risor-io/tsgen/internal/token"
	"github.com/risor-io/tsgen/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclarationThenReference(t *testing.T) {
	var sum ast.Expr
	res := Run(func(b *Builder) {
		a := b.Emit(&ast.Let{Name: "a", Value: &ast.Number{Value: 10}})
		sum = &ast.Binary{X: a, Op: token.PLUS, Y: &ast.Number{Value: 5}}
	})
	require.Len(t, res.Stmts, 1)
	assert.Equal(t, "a + 5", sum.String())
	assert.Nil(t, res.Value)
}

func TestEmitMintsFreshReferences(t *testing.T) {
	var first, second *ast.Ident
	Run(func(b *Builder) {
		first = b.Emit(&ast.Let{Name: "x", Type: types.Number, Value: &ast.Number{Value: 1}})
		second = b.Emit(&ast.Let{Name: "x", Value: &ast.Number{Value: 2}})
	})
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.NotSame(t, first, second)
	assert.Equal(t, types.Number, first.Type)
	assert.Nil(t, second.Type)
}

func TestEmitOrder(t *testing.T) {
	res := Run(func(b *Builder) {
		b.Emit(&ast.Raw{Text: "one()"})
		b.Emit(&ast.Let{Name: "two", Value: &ast.Number{Value: 2}})
		b.Emit(&ast.Raw{Text: "one()"})
		assert.Equal(t, 3, b.Len())
	})
	require.Len(t, res.Stmts, 3)
	assert.Equal(t, "one();\nlet two = 2;\none();", ast.FormatStmts(res.Stmts))
}

func TestEmitOperatorReferences(t *testing.T) {
	a := &ast.Ident{Name: "a"}
	tests := []struct {
		name     string
		node     ast.Node
		wantName string
		wantType types.Type
	}{
		{"arithmetic", &ast.Binary{X: a, Op: token.ASTERISK, Y: &ast.Number{Value: 2}}, "a * 2", types.Number},
		{"comparison", &ast.Binary{X: a, Op: token.GT, Y: &ast.Number{Value: 2}}, "a > 2", types.Boolean},
		{"logical", &ast.Logical{X: a, Op: token.AND, Y: &ast.Bool{Value: true}}, "a && true", types.Boolean},
		{"member without schema", &ast.Member{X: a, Property: &ast.Ident{Name: "p"}}, "a.p", types.Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ref *ast.Ident
			Run(func(b *Builder) {
				ref = b.Emit(tt.node)
			})
			require.NotNil(t, ref)
			assert.Equal(t, tt.wantName, ref.Name)
			assert.Equal(t, tt.wantType, ref.Type)
		})
	}
}

func TestOperatorReferenceKeepsExpression(t *testing.T) {
	a := &ast.Ident{Name: "a"}
	sum := &ast.Binary{X: a, Op: token.PLUS, Y: &ast.Number{Value: 5}}
	var ref *ast.Ident
	Run(func(b *Builder) {
		ref = b.Emit(sum)
	})
	require.NotNil(t, ref)
	assert.Same(t, sum, ref.Of)
	assert.Equal(t, token.Precedence(token.PLUS), ast.Precedence(ref))

	again := RefOf(ref)
	assert.Same(t, sum, again.Of)
	assert.Nil(t, RefOf(a).Of)

	scaled := &ast.Binary{X: ref, Op: token.ASTERISK, Y: &ast.Number{Value: 2}}
	assert.Equal(t, "(a + 5) * 2", scaled.String())
}

func TestEmitOtherNodesYieldNil(t *testing.T) {
	Run(func(b *Builder) {
		assert.Nil(t, b.Emit(&ast.Raw{Text: "x()"}))
		assert.Nil(t, b.Emit(&ast.If{Cond: &ast.Bool{Value: true}}))
	})
}

func TestMemberSchema(t *testing.T) {
	user := &types.Object{Fields: []types.Field{
		{Name: "id", Type: types.Number},
		{Name: "name", Type: types.String},
	}}
	Run(func(b *Builder) {
		u := b.Emit(&ast.Let{Name: "u", Type: user, Value: &ast.Raw{Text: "load()"}})
		name := b.Emit(&ast.Member{X: u, Property: &ast.Ident{Name: "name"}})
		assert.Equal(t, types.String, name.Type)
		missing := b.Emit(&ast.Member{X: u, Property: &ast.Ident{Name: "email"}})
		assert.Equal(t, types.Unknown, missing.Type)

		list := b.Emit(&ast.Let{Name: "list", Type: &types.Array{Elem: user}, Value: &ast.Array{}})
		first := b.Emit(&ast.Member{X: list, Property: &ast.Number{Value: 0}, Computed: true})
		assert.Equal(t, user, first.Type)
		assert.Equal(t, "list[0]", first.Name)
	})
}

func TestElemType(t *testing.T) {
	items := &ast.Ident{Name: "items", Type: &types.Array{Elem: types.String}}
	assert.Equal(t, types.String, ElemType(items))
	assert.Nil(t, ElemType(&ast.Ident{Name: "items"}))
}

func TestFinish(t *testing.T) {
	res := Run(func(b *Builder) {
		y := b.Emit(&ast.Let{Name: "y", Value: &ast.Number{Value: 1}})
		b.Finish(y)
	})
	require.NotNil(t, res.Value)
	assert.Equal(t, "y", res.Value.String())

	res = Run(func(b *Builder) { b.Finish(42) })
	assert.Equal(t, &ast.Number{Value: 42}, res.Value)
}

func TestConstructionOrderMisuse(t *testing.T) {
	assert.Panics(t, func() {
		Run(func(b *Builder) {
			b.Finish(nil)
			b.Emit(&ast.Raw{Text: "late()"})
		})
	})
	assert.Panics(t, func() {
		Run(func(b *Builder) {
			b.Finish(1)
			b.Finish(2)
		})
	})

	var leaked *Builder
	Run(func(b *Builder) { leaked = b })
	assert.Panics(t, func() { leaked.Emit(&ast.Raw{Text: "x"}) })
}

func TestRunNil(t *testing.T) {
	res := Run(nil)
	assert.Empty(t, res.Stmts)
	assert.Nil(t, res.Value)
}

func TestLift(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"int", 7, "7"},
		{"float", 2.5, "2.5"},
		{"uint8", uint8(3), "3"},
		{"string", "hi", `"hi"`},
		{"bool", false, "false"},
		{"nil", nil, "null"},
		{"slice", []int{1, 2}, "[1,2]"},
		{"expr", &ast.Ident{Name: "z"}, "z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lift(tt.in).String())
		})
	}
	assert.Len(t, LiftAll([]any{1, "a"}), 2)
}
