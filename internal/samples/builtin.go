package samples

import (
	"github.com/risor-io/tsgen"
	"github.com/risor-io/tsgen/ast"
	"github.com/risor-io/tsgen/types"
)

func init() {
	Register(Sample{
		Name:        "declare",
		Description: "declare a binding and use its reference",
		Program: func(b *tsgen.Builder) {
			a := b.Emit(tsgen.Let("a", 10))
			b.Emit(tsgen.Call("console.log", tsgen.Add(a, 5)))
		},
	})
	Register(Sample{
		Name:        "for-of",
		Description: "iterate over an array",
		Program: func(b *tsgen.Builder) {
			items := b.Emit(tsgen.Const("items", tsgen.Array("a", "b")))
			b.Emit(tsgen.ForOf("item", items, func(b *tsgen.Builder, item *ast.Ident) {
				b.Emit(tsgen.Call("console.log", item))
			}))
		},
	})
	Register(Sample{
		Name:        "nested-loops",
		Description: "two levels of typed iteration",
		Program: func(b *tsgen.Builder) {
			grid := tsgen.TArray(tsgen.TArray(tsgen.TNumber))
			rows := b.Emit(tsgen.LetT("rows", grid, tsgen.Array(tsgen.Array(1, 2), tsgen.Array(3))))
			b.Emit(tsgen.ForOf("row", rows, func(b *tsgen.Builder, row *ast.Ident) {
				b.Emit(tsgen.Call("console.log", row))
				b.Emit(tsgen.ForOf("cell", row, func(b *tsgen.Builder, cell *ast.Ident) {
					b.Emit(tsgen.Call("console.log", cell))
				}))
			}))
		},
	})
	Register(Sample{
		Name:        "object",
		Description: "object literal properties keep insertion order",
		Program: func(b *tsgen.Builder) {
			user := b.Emit(tsgen.Const("user", tsgen.Object(
				tsgen.KV("name", "sai"),
				tsgen.KV("age", 23423),
				tsgen.KV("count", 2342),
			)))
			b.Emit(tsgen.Call("console.log", tsgen.Property(user, "name")))
		},
	})
	Register(Sample{
		Name:        "function",
		Description: "function body completing with a declared reference",
		Program: func(b *tsgen.Builder) {
			double := b.Emit(tsgen.Const("double", tsgen.Func(func(b *tsgen.Builder) {
				y := b.Emit(tsgen.Let("y", tsgen.Mul(tsgen.Ref("x"), 2)))
				b.Finish(y)
			}, tsgen.ParamT("x", tsgen.TNumber))))
			b.Emit(tsgen.Call("console.log", tsgen.Call(double, 21)))
		},
	})
	Register(Sample{
		Name:        "no-return",
		Description: "function body without a completion value",
		Program: func(b *tsgen.Builder) {
			b.Emit(tsgen.Const("log", tsgen.Func(func(b *tsgen.Builder) {
				b.Emit(tsgen.Call("console.log", tsgen.Ref("msg")))
			}, tsgen.Param("msg"))))
		},
	})
	Register(Sample{
		Name:        "control-flow",
		Description: "while, if/else and counted loops",
		Program: func(b *tsgen.Builder) {
			i := b.Emit(tsgen.Let("i", 0))
			b.Emit(tsgen.While(tsgen.Lt(i, 3), func(b *tsgen.Builder) {
				b.Emit(tsgen.PostIncr(i))
			}))
			b.Emit(tsgen.If(tsgen.Gte(i, 3), func(b *tsgen.Builder) {
				b.Emit(tsgen.Call("console.log", "done"))
			}, func(b *tsgen.Builder) {
				b.Emit(tsgen.Call("console.log", "not yet"))
			}))
			j := tsgen.Ref("j")
			b.Emit(tsgen.For(tsgen.Let("j", 0), tsgen.Lt(j, 2), tsgen.PostIncr(j), func(b *tsgen.Builder) {
				b.Emit(tsgen.Call("console.log", j))
			}))
		},
	})
	Register(Sample{
		Name:        "operators",
		Description: "operator precedence and grouping",
		Program: func(b *tsgen.Builder) {
			a := b.Emit(tsgen.Let("a", 2))
			bb := b.Emit(tsgen.Let("b", tsgen.Mul(tsgen.Add(a, 1), 3)))
			b.Emit(tsgen.Let("c", tsgen.Pow(a, tsgen.Pow(2, 3))))
			b.Emit(tsgen.Let("ok", tsgen.And(tsgen.Not(tsgen.Gt(a, bb)), tsgen.StrictNeq(bb, 0))))
		},
	})
	Register(Sample{
		Name:        "types",
		Description: "type aliases, interfaces and annotated bindings",
		Program: func(b *tsgen.Builder) {
			b.Emit(tsgen.TypeAlias("ID", tsgen.TUnion(tsgen.TString, tsgen.TNumber)))
			b.Emit(tsgen.Interface("User", []types.Field{
				tsgen.Field("id", tsgen.TVar("ID")),
				tsgen.Field("name", tsgen.TString),
				tsgen.OptField("email", tsgen.TString),
			}))
			b.Emit(tsgen.TypeAlias("Box", tsgen.TObject(tsgen.Field("value", tsgen.TVar("T"))), tsgen.TParam("T", nil)))
			b.Emit(tsgen.LetT("box", tsgen.TGeneric("Box", tsgen.TNumber), tsgen.Object(tsgen.KV("value", 1))))
		},
	})
	Register(Sample{
		Name:        "template",
		Description: "template literal with a placeholder",
		Program: func(b *tsgen.Builder) {
			b.Emit(tsgen.Const("name", "sai"))
			b.Emit(tsgen.Call("console.log", tsgen.MustTmpl("Hello, ${name}!")))
		},
	})
	Register(Sample{
		Name:        "raw",
		Description: "opaque source fragments and blank lines",
		Program: func(b *tsgen.Builder) {
			b.Emit(tsgen.Raw(`console.time("run")`))
			b.Emit(tsgen.Newline())
			b.Emit(tsgen.Raw(`console.timeEnd("run");`))
		},
	})
}
