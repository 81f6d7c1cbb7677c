package check

import (
	"fmt"

	"github.com/risor-io/tsgen/ast"
	"github.com/risor-io/tsgen/errz"
	"github.com/risor-io/tsgen/internal/token"
	"github.com/risor-io/tsgen/types"
)

// Structural checks names, operators and duplicate keys.
type Structural struct{}

// Validate implements the Validator interface.
func (Structural) Validate(nodes []ast.Node) []ValidationError {
	var errs []ValidationError
	report := func(n ast.Node, code errz.Code, format string, args ...any) {
		errs = append(errs, ValidationError{
			Code:    code,
			Message: fmt.Sprintf(format, args...),
			Node:    n,
		})
	}
	for node := range ast.Preorder(&ast.Program{Stmts: nodes}) {
		checkNode(node, report)
	}
	return errs
}

type reporter func(n ast.Node, code errz.Code, format string, args ...any)

func checkNode(node ast.Node, report reporter) {
	switch n := node.(type) {
	case *ast.Let:
		checkName(n, n.Name, "variable", report)
		checkType(n, n.Type, report)
	case *ast.ForOf:
		checkName(n, n.Name, "loop variable", report)
	case *ast.ForIn:
		checkName(n, n.Name, "loop variable", report)
	case *ast.Func:
		seen := make(map[string]bool, len(n.Params))
		for _, p := range n.Params {
			checkName(n, p.Name, "parameter", report)
			if p.Name != "" && seen[p.Name] {
				report(n, errz.T2004, "duplicate parameter %q", p.Name)
			}
			seen[p.Name] = true
			checkType(n, p.Type, report)
		}
		checkTypeParams(n, n.TypeParams, report)
		checkType(n, n.Returns, report)
	case *ast.Object:
		seen := make(map[string]bool, len(n.Props))
		for _, p := range n.Props {
			if seen[p.Key] {
				report(n, errz.T2005, "duplicate property %q", p.Key)
			}
			seen[p.Key] = true
		}
		checkType(n, n.Type, report)
	case *ast.Array:
		checkType(n, n.Type, report)
	case *ast.Binary:
		if c := token.ClassifyBinary(n.Op); c != token.Arithmetic && c != token.Comparison {
			report(n, errz.T2007, "%q is not an arithmetic or comparison operator", n.Op)
		}
		checkOperands(n, report, n.X, n.Y)
	case *ast.Logical:
		if token.ClassifyBinary(n.Op) != token.Logical {
			report(n, errz.T2007, "%q is not a logical operator", n.Op)
		}
		checkOperands(n, report, n.X, n.Y)
	case *ast.Unary:
		c := token.ClassifyUnary(n.Op)
		switch {
		case c == token.Invalid:
			report(n, errz.T2007, "%q is not a unary operator", n.Op)
		case !n.Prefix && c != token.Update:
			report(n, errz.T2007, "%q cannot be used as a postfix operator", n.Op)
		}
		checkOperands(n, report, n.X)
	case *ast.Member:
		if name, ok := n.Name(); ok && !token.IsIdentifier(name) {
			report(n, errz.T2001, "invalid property name %q", name)
		}
		checkOperands(n, report, n.X, n.Property)
	case *ast.MethodCall:
		if !token.IsIdentifier(n.Method) {
			report(n, errz.T2001, "invalid method name %q", n.Method)
		}
		checkOperands(n, report, n.X)
	case *ast.Call:
		checkOperands(n, report, n.Fun)
	case *ast.TypeAlias:
		checkName(n, n.Name, "type", report)
		checkTypeParams(n, n.Params, report)
		checkType(n, n.Type, report)
	case *ast.Interface:
		checkName(n, n.Name, "interface", report)
		checkTypeParams(n, n.Params, report)
		checkFields(n, n.Fields, report)
		for _, f := range n.Fields {
			checkType(n, f.Type, report)
		}
	}
}

func checkName(n ast.Node, name, what string, report reporter) {
	switch {
	case name == "":
		report(n, errz.T2003, "%s name is empty", what)
	case !token.IsIdentifier(name):
		report(n, errz.T2001, "invalid %s name %q", what, name)
	case token.IsKeyword(name):
		report(n, errz.T2002, "%s name %q is a reserved word", what, name)
	}
}

func checkOperands(n ast.Node, report reporter, operands ...ast.Expr) {
	for _, x := range operands {
		if x == nil {
			report(n, errz.T2008, "missing operand")
			return
		}
	}
}

func checkTypeParams(n ast.Node, params types.Params, report reporter) {
	for _, p := range params {
		checkName(n, p.Name, "type parameter", report)
		checkType(n, p.Constraint, report)
	}
}

func checkFields(n ast.Node, fields []types.Field, report reporter) {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if seen[f.Name] {
			report(n, errz.T2006, "duplicate field %q", f.Name)
		}
		seen[f.Name] = true
	}
}

// checkType looks for duplicate fields anywhere inside t.
func checkType(n ast.Node, t types.Type, report reporter) {
	switch t := t.(type) {
	case *types.Object:
		checkFields(n, t.Fields, report)
		for _, f := range t.Fields {
			checkType(n, f.Type, report)
		}
	case *types.Array:
		checkType(n, t.Elem, report)
	case *types.Function:
		for _, p := range t.Params {
			checkType(n, p, report)
		}
		checkType(n, t.Return, report)
	case *types.Generic:
		for _, a := range t.Args {
			checkType(n, a, report)
		}
	case *types.Union:
		for _, m := range t.Types {
			checkType(n, m, report)
		}
	case *types.Intersection:
		for _, m := range t.Types {
			checkType(n, m, report)
		}
	}
}
