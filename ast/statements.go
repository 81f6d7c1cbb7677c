package ast

import "github.com/risor-io/tsgen/types"

// Let declares a variable with an initial value. This is used for both
// "let x = value" and, when Const is set, "const x = value".
type Let struct {
	Name  string
	Type  types.Type // nil when unannotated
	Value Expr
	Const bool
}

func (s *Let) stmtNode()      {}
func (s *Let) String() string { return Format(s, "") }

// Keyword returns the declaration keyword.
func (s *Let) Keyword() string {
	if s.Const {
		return "const"
	}
	return "let"
}

// Block is a braced list of statements.
type Block struct {
	Stmts []Node
}

func (s *Block) stmtNode()      {}
func (s *Block) String() string { return Format(s, "") }

// If is a conditional statement. Else may be nil.
type If struct {
	Cond Expr
	Then *Block
	Else *Block
}

func (s *If) stmtNode()      {}
func (s *If) String() string { return Format(s, "") }

// ForOf iterates over the values of Source, binding each to Name.
type ForOf struct {
	Name   string
	Source Expr
	Body   *Block
}

func (s *ForOf) stmtNode()      {}
func (s *ForOf) String() string { return Format(s, "") }

// ForIn iterates over the keys of Source, binding each to Name.
type ForIn struct {
	Name   string
	Source Expr
	Body   *Block
}

func (s *ForIn) stmtNode()      {}
func (s *ForIn) String() string { return Format(s, "") }

// For is a counted loop. Init is a *Let or an expression; any of Init, Cond
// and Post may be nil.
type For struct {
	Init Node
	Cond Expr
	Post Expr
	Body *Block
}

func (s *For) stmtNode()      {}
func (s *For) String() string { return Format(s, "") }

// While loops while Cond holds.
type While struct {
	Cond Expr
	Body *Block
}

func (s *While) stmtNode()      {}
func (s *While) String() string { return Format(s, "") }

// Return exits the enclosing function. Value may be nil.
type Return struct {
	Value Expr
}

func (s *Return) stmtNode()      {}
func (s *Return) String() string { return Format(s, "") }

// TypeAlias declares a named type: "type N<P> = T;".
type TypeAlias struct {
	Name   string
	Params types.Params
	Type   types.Type
}

func (s *TypeAlias) stmtNode()      {}
func (s *TypeAlias) String() string { return Format(s, "") }

// Interface declares a named object shape: "interface N<P> { k: T; }".
type Interface struct {
	Name   string
	Params types.Params
	Fields []types.Field
}

func (s *Interface) stmtNode()      {}
func (s *Interface) String() string { return Format(s, "") }
