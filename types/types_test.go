package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		want string
	}{
		{"primitive", Number, "number"},
		{"custom primitive", &Primitive{Name: "bigint"}, "bigint"},
		{"type var", &TypeVar{Name: "T"}, "T"},
		{"generic", &Generic{Name: "Promise", Args: []Type{&TypeVar{Name: "T"}}}, "Promise<T>"},
		{"generic two args", &Generic{Name: "Map", Args: []Type{String, Number}}, "Map<string, number>"},
		{"generic no args", &Generic{Name: "Date"}, "Date"},
		{"object", &Object{Fields: []Field{{Name: "x", Type: Number}}}, "{ x: number }"},
		{"object fields", &Object{Fields: []Field{
			{Name: "x", Type: Number},
			{Name: "label", Type: String, Optional: true},
		}}, "{ x: number; label?: string }"},
		{"object literal field", &Object{Fields: []Field{{Name: "kind", Type: &Literal{Value: "circle"}}}}, `{ kind: "circle" }`},
		{"empty object", &Object{}, "{}"},
		{"array", &Array{Elem: String}, "string[]"},
		{"array of union", &Array{Elem: &Union{Types: []Type{String, Number}}}, "(string | number)[]"},
		{"function", &Function{Params: []Type{Number, String}, Return: Boolean}, "(arg0: number, arg1: string) => boolean"},
		{"function no return", &Function{}, "() => void"},
		{"union", &Union{Types: []Type{String, Null}}, "string | null"},
		{"intersection", &Intersection{Types: []Type{&TypeVar{Name: "A"}, &TypeVar{Name: "B"}}}, "A & B"},
		{"intersection of union", &Intersection{Types: []Type{
			&Union{Types: []Type{String, Number}},
			&TypeVar{Name: "B"},
		}}, "(string | number) & B"},
		{"literal number", &Literal{Value: 42}, "42"},
		{"literal bool", &Literal{Value: true}, "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.String())
			// Rendering is pure.
			assert.Equal(t, tt.typ.String(), tt.typ.String())
		})
	}
}

func TestObjectLookup(t *testing.T) {
	obj := &Object{Fields: []Field{
		{Name: "id", Type: Number},
		{Name: "name", Type: String},
	}}
	typ, ok := obj.Lookup("name")
	require.True(t, ok)
	assert.Equal(t, String, typ)

	_, ok = obj.Lookup("missing")
	assert.False(t, ok)
}

func TestParams(t *testing.T) {
	assert.Equal(t, "", Params(nil).String())
	assert.Equal(t, "<T, U>", ParamsOf("T", "U").String())
	ps := Params{
		{Name: "K", Constraint: String},
		{Name: "V"},
	}
	assert.Equal(t, "<K extends string, V>", ps.String())
}
