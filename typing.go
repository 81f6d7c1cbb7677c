package tsgen

import (
	"github.com/risor-io/tsgen/ast"
	"github.com/risor-io/tsgen/types"
)

// Predeclared primitive types.
var (
	TNumber    types.Type = types.Number
	TString    types.Type = types.String
	TBoolean   types.Type = types.Boolean
	TAny       types.Type = types.Any
	TUnknown   types.Type = types.Unknown
	TVoid      types.Type = types.Void
	TNull      types.Type = types.Null
	TUndefined types.Type = types.Undefined
	TNever     types.Type = types.Never
)

// Prim returns a named primitive type.
func Prim(name string) *types.Primitive { return &types.Primitive{Name: name} }

// TVar returns a reference to a type variable.
func TVar(name string) *types.TypeVar { return &types.TypeVar{Name: name} }

// TGeneric applies a named generic type to args.
func TGeneric(name string, args ...types.Type) *types.Generic {
	return &types.Generic{Name: name, Args: args}
}

// Field returns a required object type field.
func Field(name string, t types.Type) types.Field {
	return types.Field{Name: name, Type: t}
}

// OptField returns an optional object type field.
func OptField(name string, t types.Type) types.Field {
	return types.Field{Name: name, Type: t, Optional: true}
}

// TObject returns an object type with the given fields in order.
func TObject(fields ...types.Field) *types.Object {
	return &types.Object{Fields: fields}
}

// TArray returns an array type.
func TArray(elem types.Type) *types.Array { return &types.Array{Elem: elem} }

// TFunc returns a function type.
func TFunc(ret types.Type, params ...types.Type) *types.Function {
	return &types.Function{Params: params, Return: ret}
}

// TUnion returns a union of ts.
func TUnion(ts ...types.Type) *types.Union { return &types.Union{Types: ts} }

// TIntersection returns an intersection of ts.
func TIntersection(ts ...types.Type) *types.Intersection {
	return &types.Intersection{Types: ts}
}

// TLit returns a literal type.
func TLit(v any) *types.Literal { return &types.Literal{Value: v} }

// TParam returns a generic type parameter. constraint may be nil.
func TParam(name string, constraint types.Type) types.Param {
	return types.Param{Name: name, Constraint: constraint}
}

// TypeAlias declares a named type.
func TypeAlias(name string, t types.Type, params ...types.Param) *ast.TypeAlias {
	return &ast.TypeAlias{Name: name, Params: params, Type: t}
}

// Interface declares a named object type.
func Interface(name string, fields []types.Field, params ...types.Param) *ast.Interface {
	return &ast.Interface{Name: name, Params: params, Fields: fields}
}
