// Package splice inserts generated statements into existing JavaScript
// source.
package splice

import (
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"

	"github.com/risor-io/tsgen/errz"
)

// Into parses src, finds the first function named funcName and prepends
// stmts to its body. The modified program is returned unparsed.
//
// Functions are matched by declaration name, through export statements,
// through let/const/var bindings initialized with a function or arrow
// function, and by class method name. Nested blocks, function and method
// bodies, try/catch/finally, switch cases, labelled statements and loops are
// searched depth first. Functions nested inside expressions, such as a
// callback argument, are not searched.
func Into(src []byte, funcName string, stmts []js.IStmt) (string, error) {
	tree, err := js.Parse(parse.NewInputBytes(src), js.Options{})
	if err != nil {
		return "", errz.New(errz.T3001, "cannot parse source").WithCause(err)
	}
	f := &finder{name: funcName}
	body := f.stmts(tree.List)
	if body == nil {
		msg := "function " + funcName + " not found"
		if hint := errz.Hint(funcName, f.seen); hint != "" {
			msg += ". " + hint
		}
		return "", errz.New(errz.T3002, msg)
	}
	list := make([]js.IStmt, 0, len(stmts)+len(body.List))
	list = append(list, stmts...)
	body.List = append(list, body.List...)
	return tree.JS(), nil
}

type finder struct {
	name string
	seen []string
}

func (f *finder) stmts(list []js.IStmt) *js.BlockStmt {
	for _, s := range list {
		if body := f.stmt(s); body != nil {
			return body
		}
	}
	return nil
}

func (f *finder) stmt(s js.IStmt) *js.BlockStmt {
	switch s := s.(type) {
	case *js.FuncDecl:
		return f.fn(s)
	case *js.VarDecl:
		return f.varDecl(s)
	case *js.ExportStmt:
		switch decl := s.Decl.(type) {
		case *js.FuncDecl:
			return f.fn(decl)
		case *js.VarDecl:
			return f.varDecl(decl)
		case *js.ClassDecl:
			return f.class(decl)
		}
	case *js.ClassDecl:
		return f.class(s)
	case *js.BlockStmt:
		return f.stmts(s.List)
	case *js.IfStmt:
		if body := f.stmt(s.Body); body != nil {
			return body
		}
		if s.Else != nil {
			return f.stmt(s.Else)
		}
	case *js.WhileStmt:
		return f.stmt(s.Body)
	case *js.ForStmt:
		return f.stmts(s.Body.List)
	case *js.ForInStmt:
		return f.stmts(s.Body.List)
	case *js.ForOfStmt:
		return f.stmts(s.Body.List)
	case *js.DoWhileStmt:
		return f.stmt(s.Body)
	case *js.LabelledStmt:
		return f.stmt(s.Value)
	case *js.SwitchStmt:
		for _, clause := range s.List {
			if body := f.stmts(clause.List); body != nil {
				return body
			}
		}
	case *js.TryStmt:
		for _, b := range []*js.BlockStmt{s.Body, s.Catch, s.Finally} {
			if b == nil {
				continue
			}
			if body := f.stmts(b.List); body != nil {
				return body
			}
		}
	}
	return nil
}

func (f *finder) class(decl *js.ClassDecl) *js.BlockStmt {
	for _, elem := range decl.List {
		switch {
		case elem.Method != nil:
			m := elem.Method
			if !m.Name.IsComputed() {
				name := string(m.Name.Literal.Data)
				if name == f.name {
					return &m.Body
				}
				f.seen = append(f.seen, name)
			}
			if body := f.stmts(m.Body.List); body != nil {
				return body
			}
		case elem.StaticBlock != nil:
			if body := f.stmts(elem.StaticBlock.List); body != nil {
				return body
			}
		}
	}
	return nil
}

func (f *finder) fn(decl *js.FuncDecl) *js.BlockStmt {
	if decl.Name != nil {
		name := string(decl.Name.Name())
		if name == f.name {
			return &decl.Body
		}
		f.seen = append(f.seen, name)
	}
	return f.stmts(decl.Body.List)
}

func (f *finder) varDecl(decl *js.VarDecl) *js.BlockStmt {
	for i := range decl.List {
		elem := &decl.List[i]
		v, ok := elem.Binding.(*js.Var)
		if !ok {
			continue
		}
		var body *js.BlockStmt
		switch fn := elem.Default.(type) {
		case *js.ArrowFunc:
			body = &fn.Body
		case *js.FuncDecl:
			body = &fn.Body
		default:
			continue
		}
		name := string(v.Name())
		if name == f.name {
			return body
		}
		f.seen = append(f.seen, name)
		if found := f.stmts(body.List); found != nil {
			return found
		}
	}
	return nil
}
