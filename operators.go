package tsgen

import (
	"github.com/risor-io/tsgen/ast"
	"github.com/risor-io/tsgen/internal/token"
	"github.com/risor-io/tsgen/seq"
)

func binary(op token.Type, x, y any) *ast.Binary {
	return &ast.Binary{X: seq.Lift(x), Op: op, Y: seq.Lift(y)}
}

func logical(op token.Type, x, y any) *ast.Logical {
	return &ast.Logical{X: seq.Lift(x), Op: op, Y: seq.Lift(y)}
}

func prefix(op token.Type, x any) *ast.Unary {
	return &ast.Unary{Op: op, X: seq.Lift(x), Prefix: true}
}

func postfix(op token.Type, x any) *ast.Unary {
	return &ast.Unary{Op: op, X: seq.Lift(x)}
}

// Add returns x + y.
func Add(x, y any) *ast.Binary { return binary(token.PLUS, x, y) }

// Sub returns x - y.
func Sub(x, y any) *ast.Binary { return binary(token.MINUS, x, y) }

// Mul returns x * y.
func Mul(x, y any) *ast.Binary { return binary(token.ASTERISK, x, y) }

// Div returns x / y.
func Div(x, y any) *ast.Binary { return binary(token.SLASH, x, y) }

// Mod returns x % y.
func Mod(x, y any) *ast.Binary { return binary(token.MOD, x, y) }

// Pow returns x ** y.
func Pow(x, y any) *ast.Binary { return binary(token.POW, x, y) }

// Gt returns x > y.
func Gt(x, y any) *ast.Binary { return binary(token.GT, x, y) }

// Lt returns x < y.
func Lt(x, y any) *ast.Binary { return binary(token.LT, x, y) }

// Gte returns x >= y.
func Gte(x, y any) *ast.Binary { return binary(token.GT_EQUALS, x, y) }

// Lte returns x <= y.
func Lte(x, y any) *ast.Binary { return binary(token.LT_EQUALS, x, y) }

// Eq returns x == y.
func Eq(x, y any) *ast.Binary { return binary(token.EQ, x, y) }

// Neq returns x != y.
func Neq(x, y any) *ast.Binary { return binary(token.NOT_EQ, x, y) }

// StrictEq returns x === y.
func StrictEq(x, y any) *ast.Binary { return binary(token.EQ_STRICT, x, y) }

// StrictNeq returns x !== y.
func StrictNeq(x, y any) *ast.Binary { return binary(token.NOT_EQ_STRICT, x, y) }

// And returns x && y.
func And(x, y any) *ast.Logical { return logical(token.AND, x, y) }

// Or returns x || y.
func Or(x, y any) *ast.Logical { return logical(token.OR, x, y) }

// Not returns !x.
func Not(x any) *ast.Unary { return prefix(token.BANG, x) }

// Negate returns -x.
func Negate(x any) *ast.Unary { return prefix(token.MINUS, x) }

// Plus returns +x.
func Plus(x any) *ast.Unary { return prefix(token.PLUS, x) }

// Incr returns ++x.
func Incr(x any) *ast.Unary { return prefix(token.PLUS_PLUS, x) }

// Decr returns --x.
func Decr(x any) *ast.Unary { return prefix(token.MINUS_MINUS, x) }

// PostIncr returns x++.
func PostIncr(x any) *ast.Unary { return postfix(token.PLUS_PLUS, x) }

// PostDecr returns x--.
func PostDecr(x any) *ast.Unary { return postfix(token.MINUS_MINUS, x) }
