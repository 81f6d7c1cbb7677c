// Package token defines the operators and reserved words of the generated
// language, along with the precedence table shared by both renderers.
package token

import "unicode"

// Type describes an operator by its source spelling.
type Type string

// Operators
const (
	AND           Type = "&&"
	ASTERISK      Type = "*"
	BANG          Type = "!"
	EQ            Type = "=="
	EQ_STRICT     Type = "==="
	GT            Type = ">"
	GT_EQUALS     Type = ">="
	LT            Type = "<"
	LT_EQUALS     Type = "<="
	MINUS         Type = "-"
	MINUS_MINUS   Type = "--"
	MOD           Type = "%"
	NOT_EQ        Type = "!="
	NOT_EQ_STRICT Type = "!=="
	OR            Type = "||"
	PLUS          Type = "+"
	PLUS_PLUS     Type = "++"
	POW           Type = "**"
	SLASH         Type = "/"
)

// Class groups operators by the kind of node that may carry them.
type Class int

const (
	Invalid Class = iota
	Arithmetic
	Comparison
	Logical
	Unary
	Update
)

func (c Class) String() string {
	switch c {
	case Arithmetic:
		return "arithmetic"
	case Comparison:
		return "comparison"
	case Logical:
		return "logical"
	case Unary:
		return "unary"
	case Update:
		return "update"
	default:
		return "invalid"
	}
}

// Precedence levels. Higher values bind tighter.
const (
	LOWEST  = 0
	PREFIX  = 14
	POSTFIX = 15
	PRIMARY = 17
)

var binary = map[Type]struct {
	class Class
	prec  int
}{
	OR:            {Logical, 3},
	AND:           {Logical, 4},
	EQ:            {Comparison, 8},
	NOT_EQ:        {Comparison, 8},
	EQ_STRICT:     {Comparison, 8},
	NOT_EQ_STRICT: {Comparison, 8},
	LT:            {Comparison, 9},
	GT:            {Comparison, 9},
	LT_EQUALS:     {Comparison, 9},
	GT_EQUALS:     {Comparison, 9},
	PLUS:          {Arithmetic, 11},
	MINUS:         {Arithmetic, 11},
	ASTERISK:      {Arithmetic, 12},
	SLASH:         {Arithmetic, 12},
	MOD:           {Arithmetic, 12},
	POW:           {Arithmetic, 13},
}

// ClassifyBinary returns the class of a binary operator, or Invalid.
func ClassifyBinary(op Type) Class {
	if info, ok := binary[op]; ok {
		return info.class
	}
	return Invalid
}

// ClassifyUnary returns the class of a unary operator, or Invalid.
func ClassifyUnary(op Type) Class {
	switch op {
	case BANG, MINUS, PLUS:
		return Unary
	case PLUS_PLUS, MINUS_MINUS:
		return Update
	default:
		return Invalid
	}
}

// Precedence returns the binding power of a binary operator. Unknown
// operators report LOWEST.
func Precedence(op Type) int {
	if info, ok := binary[op]; ok {
		return info.prec
	}
	return LOWEST
}

// RightAssociative reports whether op groups right to left.
func RightAssociative(op Type) bool {
	return op == POW
}

// Reserved words of the generated language (ECMAScript plus the strict mode
// and TypeScript declaration keywords).
var keywords = map[string]struct{}{
	"await": {}, "break": {}, "case": {}, "catch": {}, "class": {},
	"const": {}, "continue": {}, "debugger": {}, "default": {}, "delete": {},
	"do": {}, "else": {}, "enum": {}, "export": {}, "extends": {},
	"false": {}, "finally": {}, "for": {}, "function": {}, "if": {},
	"implements": {}, "import": {}, "in": {}, "instanceof": {}, "interface": {},
	"let": {}, "new": {}, "null": {}, "package": {}, "private": {},
	"protected": {}, "public": {}, "return": {}, "static": {}, "super": {},
	"switch": {}, "this": {}, "throw": {}, "true": {}, "try": {},
	"typeof": {}, "var": {}, "void": {}, "while": {}, "with": {},
	"yield": {},
}

// IsKeyword reports whether name is a reserved word.
func IsKeyword(name string) bool {
	_, ok := keywords[name]
	return ok
}

// IsIdentifier reports whether name is a syntactically valid identifier.
// Reserved words are valid identifiers here; check IsKeyword separately.
func IsIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r == '$' || r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
