// Package types defines the type expressions that can annotate generated
// code. Types are only printed, never checked.
package types

import (
	"strconv"
	"strings"

	"github.com/risor-io/tsgen/internal/jsonx"
)

// Type is the interface implemented by all type expressions.
type Type interface {
	// String returns the source spelling of the type.
	String() string

	// typeNode keeps the set of types closed to this package.
	typeNode()
}

// Primitive is a named, non-composite type.
type Primitive struct {
	Name string
}

func (p *Primitive) typeNode()      {}
func (p *Primitive) String() string { return p.Name }

// Predeclared primitives.
var (
	Number    = &Primitive{Name: "number"}
	String    = &Primitive{Name: "string"}
	Boolean   = &Primitive{Name: "boolean"}
	Any       = &Primitive{Name: "any"}
	Unknown   = &Primitive{Name: "unknown"}
	Void      = &Primitive{Name: "void"}
	Null      = &Primitive{Name: "null"}
	Undefined = &Primitive{Name: "undefined"}
	Never     = &Primitive{Name: "never"}
)

// TypeVar refers to a type parameter by name.
type TypeVar struct {
	Name string
}

func (v *TypeVar) typeNode()      {}
func (v *TypeVar) String() string { return v.Name }

// Generic is a named type applied to type arguments, e.g. Promise<T>.
type Generic struct {
	Name string
	Args []Type
}

func (g *Generic) typeNode() {}

func (g *Generic) String() string {
	if len(g.Args) == 0 {
		return g.Name
	}
	return g.Name + "<" + join(g.Args, ", ") + ">"
}

// Field is one named property of an object type.
type Field struct {
	Name     string
	Type     Type
	Optional bool
}

func (f Field) String() string {
	var out strings.Builder
	out.WriteString(f.Name)
	if f.Optional {
		out.WriteString("?")
	}
	out.WriteString(": ")
	out.WriteString(str(f.Type))
	return out.String()
}

// Object is a structural record type. Fields keep their declaration order.
type Object struct {
	Fields []Field
}

func (o *Object) typeNode() {}

func (o *Object) String() string {
	if len(o.Fields) == 0 {
		return "{}"
	}
	fields := make([]string, 0, len(o.Fields))
	for _, f := range o.Fields {
		fields = append(fields, f.String())
	}
	return "{ " + strings.Join(fields, "; ") + " }"
}

// Lookup returns the type of the named field.
func (o *Object) Lookup(name string) (Type, bool) {
	for _, f := range o.Fields {
		if f.Name == name {
			return f.Type, true
		}
	}
	return nil, false
}

// Array is a homogeneous array type.
type Array struct {
	Elem Type
}

func (a *Array) typeNode() {}

func (a *Array) String() string {
	switch a.Elem.(type) {
	case *Union, *Intersection, *Function:
		return "(" + str(a.Elem) + ")[]"
	}
	return str(a.Elem) + "[]"
}

// Function is the type of a callable. Parameters are positional and are
// given generated names when printed.
type Function struct {
	Params []Type
	Return Type
}

func (f *Function) typeNode() {}

func (f *Function) String() string {
	var out strings.Builder
	out.WriteString("(")
	for i, p := range f.Params {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString("arg")
		out.WriteString(strconv.Itoa(i))
		out.WriteString(": ")
		out.WriteString(str(p))
	}
	out.WriteString(") => ")
	if f.Return == nil {
		out.WriteString(Void.String())
	} else {
		out.WriteString(f.Return.String())
	}
	return out.String()
}

// Union represents a value of any one of its member types (e.g. string | number).
type Union struct {
	Types []Type
}

func (u *Union) typeNode()      {}
func (u *Union) String() string { return join(u.Types, " | ") }

// Intersection represents a value of all of its member types.
type Intersection struct {
	Types []Type
}

func (it *Intersection) typeNode() {}

func (it *Intersection) String() string {
	parts := make([]string, 0, len(it.Types))
	for _, t := range it.Types {
		if _, ok := t.(*Union); ok {
			parts = append(parts, "("+t.String()+")")
			continue
		}
		parts = append(parts, str(t))
	}
	return strings.Join(parts, " & ")
}

// Literal is a literal value used as a type, e.g. "admin" or 42.
type Literal struct {
	Value any
}

func (l *Literal) typeNode() {}

func (l *Literal) String() string {
	if s, ok := jsonx.Marshal(l.Value); ok {
		return s
	}
	return Unknown.String()
}

// Param is a type parameter with an optional constraint.
type Param struct {
	Name       string
	Constraint Type
}

func (p Param) String() string {
	if p.Constraint == nil {
		return p.Name
	}
	return p.Name + " extends " + p.Constraint.String()
}

// Params is an ordered type parameter list.
type Params []Param

// String renders the list in angle brackets, or nothing when empty.
func (ps Params) String() string {
	if len(ps) == 0 {
		return ""
	}
	parts := make([]string, 0, len(ps))
	for _, p := range ps {
		parts = append(parts, p.String())
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

// ParamsOf builds an unconstrained parameter list from names.
func ParamsOf(names ...string) Params {
	ps := make(Params, 0, len(names))
	for _, name := range names {
		ps = append(ps, Param{Name: name})
	}
	return ps
}

func str(t Type) string {
	if t == nil {
		return Unknown.String()
	}
	return t.String()
}

func join(ts []Type, sep string) string {
	parts := make([]string, 0, len(ts))
	for _, t := range ts {
		parts = append(parts, str(t))
	}
	return strings.Join(parts, sep)
}
