package ast

import "iter"

// Visitor defines the interface for tree traversal. If Visit returns nil,
// children of the node are not visited. Otherwise, the returned Visitor
// is used to visit children.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses a tree in depth-first order. It starts by calling
// v.Visit(node); if the returned visitor w is not nil, Walk is invoked
// recursively with visitor w for each of the non-nil children of node.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	for _, child := range Children(node) {
		Walk(v, child)
	}
}

// Inspect traverses a tree in depth-first order. It calls f(node) for each
// node; if f returns true, Inspect invokes f recursively for each of the
// non-nil children of node.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Preorder returns an iterator over all the nodes of the tree rooted at
// root in depth-first preorder.
func Preorder(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		var visit func(Node) bool
		visit = func(n Node) bool {
			if !yield(n) {
				return false
			}
			for _, child := range Children(n) {
				if !visit(child) {
					return false
				}
			}
			return true
		}
		if root != nil {
			visit(root)
		}
	}
}

// Children returns the non-nil direct children of n in source order.
func Children(n Node) []Node {
	var out []Node
	add := func(children ...Node) {
		for _, c := range children {
			if c != nil {
				out = append(out, c)
			}
		}
	}
	switch n := n.(type) {
	case *Program:
		add(n.Stmts...)
	case *Object:
		for _, prop := range n.Props {
			add(prop.Value)
		}
	case *Array:
		for _, e := range n.Elems {
			add(e)
		}
	case *Func:
		add(n.Body...)
		add(n.Result)
	case *Template:
		for _, e := range n.Exprs {
			add(e)
		}
	case *Call:
		add(n.Fun)
		for _, a := range n.Args {
			add(a)
		}
	case *MethodCall:
		add(n.X)
		for _, a := range n.Args {
			add(a)
		}
	case *Binary:
		add(n.X, n.Y)
	case *Logical:
		add(n.X, n.Y)
	case *Unary:
		add(n.X)
	case *Member:
		add(n.X, n.Property)
	case *Let:
		add(n.Value)
	case *Block:
		add(n.Stmts...)
	case *If:
		add(n.Cond)
		if n.Then != nil {
			add(n.Then)
		}
		if n.Else != nil {
			add(n.Else)
		}
	case *ForOf:
		add(n.Source)
		if n.Body != nil {
			add(n.Body)
		}
	case *ForIn:
		add(n.Source)
		if n.Body != nil {
			add(n.Body)
		}
	case *For:
		add(n.Init, n.Cond, n.Post)
		if n.Body != nil {
			add(n.Body)
		}
	case *While:
		add(n.Cond)
		if n.Body != nil {
			add(n.Body)
		}
	case *Return:
		add(n.Value)
	}
	return out
}
