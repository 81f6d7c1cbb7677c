// Package ast defines the syntax tree of generated programs. Nodes are built
// once, never mutated, and rendered either by String (see print.go) or by an
// external tree serializer.
package ast

// Node represents a portion of the syntax tree.
type Node interface {
	// String returns the source text of the node, formatted as if it
	// appeared at the top level.
	String() string
}

// Stmt represents a statement node. Statements are only valid in statement
// position: at the top level of a program or inside a block.
type Stmt interface {
	Node
	stmtNode()
}

// Expr represents an expression node. Expressions may also appear in
// statement position, in which case they are terminated with a semicolon.
type Expr interface {
	Node
	exprNode()
}

// Program is an ordered list of top-level statements.
type Program struct {
	Stmts []Node
}

// First returns the first statement in the program, or nil if empty.
func (p *Program) First() Node {
	if len(p.Stmts) > 0 {
		return p.Stmts[0]
	}
	return nil
}

func (p *Program) String() string { return Format(p, "") }
