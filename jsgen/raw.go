package jsgen

import (
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"

	"github.com/risor-io/tsgen/ast"
	"github.com/risor-io/tsgen/errz"
)

// raw converts opaque text by handing it to the external parser. Text
// holding several statements becomes a brace-less block.
func (g *Generator) raw(n *ast.Raw) (js.INode, error) {
	stmts := g.rawStmts(n)
	if len(stmts) == 1 {
		if es, ok := stmts[0].(*js.ExprStmt); ok {
			return es.Value, nil
		}
		return stmts[0], nil
	}
	return &js.BlockStmt{List: stmts}, nil
}

// rawStmts parses opaque text into the statements it holds. Text that does
// not parse degrades to a string literal holding the text.
func (g *Generator) rawStmts(n *ast.Raw) []js.IStmt {
	if n.Text == "" {
		return []js.IStmt{&js.EmptyStmt{}}
	}
	stmts, err := parseRaw(n.Text)
	if err != nil {
		g.logger.Debug().
			Err(err).
			Str("text", n.Text).
			Msg("raw text did not parse; emitting it as a string literal")
		return []js.IStmt{&js.ExprStmt{Value: str(n.Text)}}
	}
	if len(stmts) == 0 {
		return []js.IStmt{&js.EmptyStmt{}}
	}
	return stmts
}

// rawExpr converts opaque text in expression position.
func (g *Generator) rawExpr(n *ast.Raw) (js.IExpr, error) {
	out, err := g.raw(n)
	if err != nil {
		return nil, err
	}
	switch out := out.(type) {
	case js.IStmt:
		return nil, errz.New(errz.T1004, "raw text is not an expression").WithNode(n.Text)
	case js.IExpr:
		return out, nil
	}
	return nil, errz.New(errz.T1002, "no conversion for raw text").WithNode(n.Text)
}

func parseRaw(text string) ([]js.IStmt, error) {
	tree, err := js.Parse(parse.NewInputString(text), js.Options{})
	if err != nil {
		return nil, errz.New(errz.T1005, "cannot parse raw text").WithNode(text).WithCause(err)
	}
	return tree.List, nil
}
