// Package tsgen builds syntax trees of TypeScript-flavoured programs from
// plain Go calls and renders them as formatted source text or, through
// github.com/tdewolff/parse/v2/js, as JavaScript.
//
// A program is written as a producer: a function that emits statements
// through a Builder and receives back references to the names it binds.
//
//	src, err := tsgen.Text(func(b *tsgen.Builder) {
//		a := b.Emit(tsgen.Let("a", 10))
//		b.Emit(tsgen.Call("console.log", tsgen.Add(a, 5)))
//	})
package tsgen

import (
	"github.com/tdewolff/parse/v2/js"

	"github.com/risor-io/tsgen/ast"
	"github.com/risor-io/tsgen/check"
	"github.com/risor-io/tsgen/jsgen"
	"github.com/risor-io/tsgen/seq"
)

// Builder collects the statements emitted by a producer.
type Builder = seq.Builder

// Producer is a construction block.
type Producer = seq.Producer

// Result holds the statements a producer emitted and its completion value.
type Result = seq.Result

// Build drives p to completion.
func Build(p Producer) Result {
	return seq.Run(p)
}

// Text renders the statements emitted by p as formatted source text. The
// completion value of a top-level producer is not rendered.
func Text(p Producer, opts ...Option) (string, error) {
	o := collectOptions(opts...)
	res := seq.Run(p)
	if err := o.check(res.Stmts); err != nil {
		return "", err
	}
	out := ast.FormatStmts(res.Stmts, ast.WithIndentUnit(o.indent))
	o.logger.Debug().Int("statements", len(res.Stmts)).Msg("rendered text")
	return out, nil
}

// JS converts the statements emitted by p to the external tree and
// unparses it. Type annotations are erased.
func JS(p Producer, opts ...Option) (string, error) {
	o := collectOptions(opts...)
	res := seq.Run(p)
	if err := o.check(res.Stmts); err != nil {
		return "", err
	}
	out, err := o.generator().Generate(res.Stmts)
	if err != nil {
		return "", err
	}
	o.logger.Debug().Int("statements", len(res.Stmts)).Msg("rendered javascript")
	return out, nil
}

// Statements converts the statements emitted by p to external statement
// nodes, ready to be spliced into a parsed program.
func Statements(p Producer, opts ...Option) ([]js.IStmt, error) {
	o := collectOptions(opts...)
	res := seq.Run(p)
	if err := o.check(res.Stmts); err != nil {
		return nil, err
	}
	return o.generator().Stmts(res.Stmts)
}

func (o *options) check(stmts []ast.Node) error {
	if !o.validate {
		return nil
	}
	if err := check.Validate(stmts); err != nil {
		o.logger.Debug().Err(err).Msg("validation failed")
		return err
	}
	return nil
}

func (o *options) generator() *jsgen.Generator {
	return jsgen.New(jsgen.WithLogger(o.logger))
}
