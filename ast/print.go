package ast

import (
	"math"
	"strconv"
	"strings"

	"github.com/risor-io/tsgen/internal/jsonx"
	"github.com/risor-io/tsgen/internal/token"
	"github.com/risor-io/tsgen/types"
)

// DefaultIndent is the indentation unit used by String and Format.
const DefaultIndent = "  "

// precedence of an arrow function used as an operand
const funcPrec = 2

// PrintOption configures FormatStmts.
type PrintOption func(*printer)

// WithIndentUnit sets the string added per nesting level.
func WithIndentUnit(unit string) PrintOption {
	return func(p *printer) {
		p.unit = unit
	}
}

type printer struct {
	unit string
}

func newPrinter(opts ...PrintOption) *printer {
	p := &printer{unit: DefaultIndent}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Format renders n as source text. The first line is not indented; any
// following lines are indented relative to indent.
func Format(n Node, indent string) string {
	return newPrinter().node(n, indent)
}

// FormatStmts renders a top-level statement list, one statement per line.
func FormatStmts(stmts []Node, opts ...PrintOption) string {
	return newPrinter(opts...).stmts(stmts, "")
}

func (p *printer) stmts(stmts []Node, indent string) string {
	lines := make([]string, 0, len(stmts))
	for _, s := range stmts {
		lines = append(lines, p.stmt(s, indent))
	}
	return strings.Join(lines, "\n"+indent)
}

// stmt renders n in statement position.
func (p *printer) stmt(n Node, indent string) string {
	switch n := n.(type) {
	case nil:
		return ""
	case *Raw:
		text := strings.TrimRight(n.Text, "\r\n")
		if text == "" {
			return ""
		}
		return terminate(reindent(text, indent))
	case Stmt:
		return p.node(n, indent)
	default:
		return terminate(p.node(n, indent))
	}
}

func (p *printer) node(n Node, indent string) string {
	switch n := n.(type) {
	case nil:
		return ""
	case *Program:
		return p.stmts(n.Stmts, indent)

	// Literals
	case *Number:
		return annotate(formatNumber(n.Value), n.Type)
	case *String:
		return annotate(jsonx.Quote(n.Value), n.Type)
	case *Bool:
		return annotate(strconv.FormatBool(n.Value), n.Type)
	case *Value:
		if s, ok := jsonx.Marshal(n.V); ok {
			return s
		}
		return "undefined"
	case *Object:
		return annotate(p.object(n, indent), n.Type)
	case *Array:
		return annotate(p.array(n, indent), n.Type)
	case *Func:
		return p.fn(n, indent)
	case *Template:
		return p.template(n, indent)

	// Expressions
	case *Ident:
		if n.Of != nil {
			return p.node(n.Of, indent)
		}
		return n.Name
	case *Raw:
		return n.Text
	case *Call:
		return p.primary(n.Fun, indent) + p.args(n.Args, indent)
	case *MethodCall:
		return p.primary(n.X, indent) + "." + n.Method + p.args(n.Args, indent)
	case *Binary:
		return p.binary(n.X, n.Op, n.Y, indent)
	case *Logical:
		return p.binary(n.X, n.Op, n.Y, indent)
	case *Unary:
		return p.unary(n, indent)
	case *Member:
		x := p.primary(n.X, indent)
		if n.Computed {
			return x + "[" + p.node(n.Property, indent) + "]"
		}
		return x + "." + p.node(n.Property, indent)

	// Statements
	case *Let:
		return p.let(n, indent) + ";"
	case *Block:
		return p.block(n, indent)
	case *If:
		out := "if (" + p.node(n.Cond, indent) + ") " + p.block(n.Then, indent)
		if n.Else != nil {
			out += " else " + p.block(n.Else, indent)
		}
		return out
	case *ForOf:
		return "for (const " + n.Name + " of " + p.node(n.Source, indent) + ") " + p.block(n.Body, indent)
	case *ForIn:
		return "for (const " + n.Name + " in " + p.node(n.Source, indent) + ") " + p.block(n.Body, indent)
	case *For:
		return p.forLoop(n, indent)
	case *While:
		return "while (" + p.node(n.Cond, indent) + ") " + p.block(n.Body, indent)
	case *Return:
		if n.Value == nil {
			return "return;"
		}
		return "return " + p.node(n.Value, indent) + ";"
	case *TypeAlias:
		return "type " + n.Name + n.Params.String() + " = " + typeString(n.Type) + ";"
	case *Interface:
		return p.iface(n)
	}
	// Nodes defined outside this package render themselves.
	return n.String()
}

func (p *printer) let(n *Let, indent string) string {
	var out strings.Builder
	out.WriteString(n.Keyword())
	out.WriteString(" ")
	out.WriteString(n.Name)
	if n.Type != nil {
		out.WriteString(": ")
		out.WriteString(n.Type.String())
	}
	if n.Value != nil {
		out.WriteString(" = ")
		out.WriteString(p.node(n.Value, indent))
	}
	return out.String()
}

func (p *printer) block(b *Block, indent string) string {
	if b == nil || len(b.Stmts) == 0 {
		return "{}"
	}
	return p.body(b.Stmts, nil, indent)
}

// body renders a braced statement list followed by an optional return.
func (p *printer) body(stmts []Node, result Expr, indent string) string {
	inner := indent + p.unit
	var out strings.Builder
	out.WriteString("{\n")
	for _, s := range stmts {
		if line := p.stmt(s, inner); line != "" {
			out.WriteString(inner)
			out.WriteString(line)
		}
		out.WriteString("\n")
	}
	if result != nil {
		out.WriteString(inner)
		out.WriteString("return ")
		out.WriteString(p.node(result, inner))
		out.WriteString(";\n")
	}
	out.WriteString(indent)
	out.WriteString("}")
	return out.String()
}

func (p *printer) forLoop(n *For, indent string) string {
	var out strings.Builder
	out.WriteString("for (")
	switch init := n.Init.(type) {
	case nil:
	case *Let:
		out.WriteString(p.let(init, indent))
	default:
		out.WriteString(p.node(init, indent))
	}
	out.WriteString(";")
	if n.Cond != nil {
		out.WriteString(" ")
		out.WriteString(p.node(n.Cond, indent))
	}
	out.WriteString(";")
	if n.Post != nil {
		out.WriteString(" ")
		out.WriteString(p.node(n.Post, indent))
	}
	out.WriteString(") ")
	out.WriteString(p.block(n.Body, indent))
	return out.String()
}

func (p *printer) object(n *Object, indent string) string {
	if len(n.Props) == 0 {
		return "{}"
	}
	props := make([]string, 0, len(n.Props))
	for _, prop := range n.Props {
		props = append(props, PropertyKey(prop.Key)+": "+p.node(prop.Value, indent))
	}
	return "{ " + strings.Join(props, ", ") + " }"
}

func (p *printer) array(n *Array, indent string) string {
	if len(n.Elems) == 0 {
		return "[]"
	}
	elems := make([]string, 0, len(n.Elems))
	for _, e := range n.Elems {
		elems = append(elems, p.node(e, indent))
	}
	return "[ " + strings.Join(elems, ", ") + " ]"
}

func (p *printer) fn(n *Func, indent string) string {
	var out strings.Builder
	out.WriteString(n.TypeParams.String())
	out.WriteString("(")
	for i, param := range n.Params {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(param.Name)
		if param.Type != nil {
			out.WriteString(": ")
			out.WriteString(param.Type.String())
		}
	}
	out.WriteString(")")
	if n.Returns != nil {
		out.WriteString(": ")
		out.WriteString(n.Returns.String())
	}
	out.WriteString(" => ")
	if len(n.Body) == 0 && n.Result == nil {
		out.WriteString("{}")
	} else {
		out.WriteString(p.body(n.Body, n.Result, indent))
	}
	return out.String()
}

func (p *printer) args(args []Expr, indent string) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, p.node(a, indent))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (p *printer) template(n *Template, indent string) string {
	var out strings.Builder
	out.WriteString("`")
	for i, q := range n.Quasis {
		out.WriteString(EscapeTemplate(q))
		if i < len(n.Exprs) {
			out.WriteString("${")
			out.WriteString(p.node(n.Exprs[i], indent))
			out.WriteString("}")
		}
	}
	for i := len(n.Quasis); i < len(n.Exprs); i++ {
		out.WriteString("${")
		out.WriteString(p.node(n.Exprs[i], indent))
		out.WriteString("}")
	}
	out.WriteString("`")
	return out.String()
}

func (p *printer) iface(n *Interface) string {
	head := "interface " + n.Name + n.Params.String()
	if len(n.Fields) == 0 {
		return head + " {}"
	}
	var out strings.Builder
	out.WriteString(head)
	out.WriteString(" {")
	for _, f := range n.Fields {
		out.WriteString(" ")
		out.WriteString(f.String())
		out.WriteString(";")
	}
	out.WriteString(" }")
	return out.String()
}

// primary renders the object of a call or member access.
func (p *printer) primary(x Expr, indent string) string {
	s := p.node(x, indent)
	if Precedence(x) < token.PRIMARY {
		return "(" + s + ")"
	}
	return s
}

func (p *printer) binary(x Expr, op token.Type, y Expr, indent string) string {
	return p.operand(x, op, false, indent) + " " + string(op) + " " + p.operand(y, op, true, indent)
}

func (p *printer) operand(x Expr, op token.Type, right bool, indent string) string {
	s := p.node(x, indent)
	if OperandNeedsParens(x, op, right) {
		return "(" + s + ")"
	}
	return s
}

// OperandNeedsParens reports whether x must be parenthesized as the left
// (or right) operand of op.
func OperandNeedsParens(x Expr, op token.Type, right bool) bool {
	prec, parent := Precedence(x), token.Precedence(op)
	if prec == parent {
		return right != token.RightAssociative(op)
	}
	// -a ** b is a syntax error
	if op == token.POW && !right && prec == token.PREFIX {
		return true
	}
	return prec < parent
}

func (p *printer) unary(n *Unary, indent string) string {
	s := p.node(n.X, indent)
	if !n.Prefix {
		if Precedence(n.X) < token.POSTFIX {
			s = "(" + s + ")"
		}
		return s + string(n.Op)
	}
	op := string(n.Op)
	if Precedence(n.X) < token.PREFIX || (s != "" && (op[len(op)-1] == '-' || op[len(op)-1] == '+') && s[0] == op[len(op)-1]) {
		s = "(" + s + ")"
	}
	return op + s
}

// Precedence returns the binding power of an expression when it appears
// as an operand.
func Precedence(x Expr) int {
	switch x := x.(type) {
	case *Ident:
		if x.Of != nil {
			return Precedence(x.Of)
		}
	case *Binary:
		return token.Precedence(x.Op)
	case *Logical:
		return token.Precedence(x.Op)
	case *Unary:
		if x.Prefix {
			return token.PREFIX
		}
		return token.POSTFIX
	case *Func:
		return funcPrec
	case *Number:
		if x.Value < 0 || math.Signbit(x.Value) {
			return token.PREFIX
		}
	}
	return token.PRIMARY
}

// PropertyKey spells an object literal key, quoting it when it is not a
// valid identifier.
func PropertyKey(key string) string {
	if token.IsIdentifier(key) {
		return key
	}
	return jsonx.Quote(key)
}

// EscapeTemplate escapes the characters that are significant inside a
// template literal segment.
func EscapeTemplate(s string) string {
	r := strings.NewReplacer("\\", "\\\\", "`", "\\`", "${", "\\${")
	return r.Replace(s)
}

func formatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.IsNaN(v):
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func annotate(s string, t types.Type) string {
	if t == nil {
		return s
	}
	return s + ": " + t.String()
}

func typeString(t types.Type) string {
	if t == nil {
		return types.Unknown.String()
	}
	return t.String()
}

// terminate appends a semicolon unless s already ends a statement.
func terminate(s string) string {
	if strings.HasSuffix(s, ";") || strings.HasSuffix(s, "}") {
		return s
	}
	return s + ";"
}

// reindent indents every non-empty line of s after the first.
func reindent(s, indent string) string {
	if indent == "" || !strings.Contains(s, "\n") {
		return s
	}
	lines := strings.Split(s, "\n")
	for i := 1; i < len(lines); i++ {
		if lines[i] != "" {
			lines[i] = indent + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
