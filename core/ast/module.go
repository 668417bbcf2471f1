package ast

import "strings"

// StorageClass distinguishes the variable declaration keywords.
type StorageClass int8

const (
	StorageVar StorageClass = iota
	StorageConst
	StorageStatic
)

// String returns the source spelling of the storage class.
func (s StorageClass) String() string {
	switch s {
	case StorageConst:
		return "const"
	case StorageStatic:
		return "static"
	default:
		return "var"
	}
}

// Variable is a declaration of the form `var name: type = init;`. The
// initializer is kept as the raw lexeme span; expression parsing is not
// implemented yet.
type Variable struct {
	Storage StorageClass
	Name    string
	VarType Type
	Init    string
}

// Equal reports structural equality.
func (v Variable) Equal(o Variable) bool {
	return v.Storage == o.Storage &&
		v.Name == o.Name &&
		v.VarType.Equal(o.VarType) &&
		v.Init == o.Init
}

// String renders the declaration in source form.
func (v Variable) String() string {
	var sb strings.Builder
	sb.WriteString(v.Storage.String())
	sb.WriteByte(' ')
	sb.WriteString(v.Name)
	sb.WriteString(": ")
	sb.WriteString(v.VarType.String())
	if v.Init != "" {
		sb.WriteString(" = ")
		sb.WriteString(v.Init)
	}
	sb.WriteByte(';')
	return sb.String()
}

// Param is one function parameter. Variadic parameters are written with an
// ellipsis before the type.
type Param struct {
	Name     string
	Variadic bool
	PType    Type
}

// Equal reports structural equality.
func (p Param) Equal(o Param) bool {
	return p.Name == o.Name &&
		p.Variadic == o.Variadic &&
		p.PType.Equal(o.PType)
}

// String renders the parameter in source form.
func (p Param) String() string {
	prefix := ""
	if p.Variadic {
		prefix = "..."
	}
	return p.Name + ": " + prefix + p.PType.String()
}

// Function is a declaration of the form `name(params): type { body }`. The
// body is kept as the raw lexeme span between the braces; statement parsing
// is not implemented yet.
type Function struct {
	Name   string
	Params []Param
	Output Type
	Body   string
}

// Equal reports structural equality, ignoring the unparsed body.
func (f Function) Equal(o Function) bool {
	if f.Name != o.Name || len(f.Params) != len(o.Params) {
		return false
	}
	for i := range f.Params {
		if !f.Params[i].Equal(o.Params[i]) {
			return false
		}
	}
	return f.Output.Equal(o.Output)
}

// String renders the signature in source form.
func (f Function) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	return f.Name + "(" + strings.Join(parts, ", ") + ") : " + f.Output.String()
}

// Object is a user type declaration holding variables, functions, and
// nested objects.
type Object struct {
	Name      string
	Variables []Variable
	Functions []Function
	Objects   []Object
}

// Equal reports structural equality.
func (ob Object) Equal(o Object) bool {
	if ob.Name != o.Name ||
		len(ob.Variables) != len(o.Variables) ||
		len(ob.Functions) != len(o.Functions) ||
		len(ob.Objects) != len(o.Objects) {
		return false
	}
	for i := range ob.Variables {
		if !ob.Variables[i].Equal(o.Variables[i]) {
			return false
		}
	}
	for i := range ob.Functions {
		if !ob.Functions[i].Equal(o.Functions[i]) {
			return false
		}
	}
	for i := range ob.Objects {
		if !ob.Objects[i].Equal(o.Objects[i]) {
			return false
		}
	}
	return true
}

// Enumeration is declared for taxonomy completeness; no surface syntax
// produces it yet.
type Enumeration struct{}

// Equal reports structural equality.
func (Enumeration) Equal(Enumeration) bool {
	return true
}

// Extension extends an existing type: `extend name { … }`. The body is not
// modeled yet.
type Extension struct {
	Name string
}

// Equal reports structural equality.
func (e Extension) Equal(o Extension) bool {
	return e.Name == o.Name
}

// Module groups the declarations that follow one `module a.b;` header. The
// six sequences each preserve source order.
type Module struct {
	Name         SimplePath
	Aliases      []Alias
	Enumerations []Enumeration
	Extensions   []Extension
	Functions    []Function
	Objects      []Object
	Variables    []Variable
}

// Equal reports structural equality across all six sequences.
func (m Module) Equal(o Module) bool {
	if !m.Name.Equal(o.Name) ||
		len(m.Aliases) != len(o.Aliases) ||
		len(m.Enumerations) != len(o.Enumerations) ||
		len(m.Extensions) != len(o.Extensions) ||
		len(m.Functions) != len(o.Functions) ||
		len(m.Objects) != len(o.Objects) ||
		len(m.Variables) != len(o.Variables) {
		return false
	}
	for i := range m.Aliases {
		if !m.Aliases[i].Equal(o.Aliases[i]) {
			return false
		}
	}
	for i := range m.Extensions {
		if !m.Extensions[i].Equal(o.Extensions[i]) {
			return false
		}
	}
	for i := range m.Functions {
		if !m.Functions[i].Equal(o.Functions[i]) {
			return false
		}
	}
	for i := range m.Objects {
		if !m.Objects[i].Equal(o.Objects[i]) {
			return false
		}
	}
	for i := range m.Variables {
		if !m.Variables[i].Equal(o.Variables[i]) {
			return false
		}
	}
	return true
}
