package ast

import "strings"

// PrimitiveKind enumerates the built-in type names a Segment can stand for.
type PrimitiveKind int8

const (
	PBool PrimitiveKind = iota
	PChar
	PInt8
	PInt16
	PInt32
	PInt64
	PUint8
	PUint16
	PUint32
	PUint64
	PSingle
	PDouble
	PString
	PVoid
)

// String returns the source spelling of the primitive.
func (p PrimitiveKind) String() string {
	switch p {
	case PBool:
		return "bool"
	case PChar:
		return "char"
	case PInt8:
		return "int8"
	case PInt16:
		return "int16"
	case PInt32:
		return "int32"
	case PInt64:
		return "int64"
	case PUint8:
		return "uint8"
	case PUint16:
		return "uint16"
	case PUint32:
		return "uint32"
	case PUint64:
		return "uint64"
	case PSingle:
		return "single"
	case PDouble:
		return "double"
	case PString:
		return "string"
	case PVoid:
		return "void"
	default:
		return "unknown"
	}
}

// SimplePath is a dotted chain of plain identifiers, as written in imports
// and module headers. It always has at least one segment; segments are views
// into the owning source buffer.
type SimplePath struct {
	Segments []string
}

// Equal reports structural equality.
func (p SimplePath) Equal(o SimplePath) bool {
	if len(p.Segments) != len(o.Segments) {
		return false
	}
	for i := range p.Segments {
		if p.Segments[i] != o.Segments[i] {
			return false
		}
	}
	return true
}

// String renders the path in dotted source form.
func (p SimplePath) String() string {
	return strings.Join(p.Segments, ".")
}

// Segment is one element of a path expression: either a primitive type name
// or a named segment that may carry generic type arguments.
type Segment interface {
	segment()
	Equal(o Segment) bool
	String() string
}

// Primitive is a segment standing for a built-in type name.
type Primitive struct {
	Kind PrimitiveKind
}

func (Primitive) segment() {}

func (p Primitive) Equal(o Segment) bool {
	op, ok := o.(Primitive)
	return ok && p.Kind == op.Kind
}

func (p Primitive) String() string {
	return p.Kind.String()
}

// Generic is a named segment with optional type arguments. Inputs is empty
// both when no angle brackets were written and for an explicit empty pair.
type Generic struct {
	Name   string
	Inputs []Type
}

func (Generic) segment() {}

func (g Generic) Equal(o Segment) bool {
	og, ok := o.(Generic)
	if !ok || g.Name != og.Name || len(g.Inputs) != len(og.Inputs) {
		return false
	}
	for i := range g.Inputs {
		if !g.Inputs[i].Equal(og.Inputs[i]) {
			return false
		}
	}
	return true
}

func (g Generic) String() string {
	if len(g.Inputs) == 0 {
		return g.Name
	}
	parts := make([]string, len(g.Inputs))
	for i, in := range g.Inputs {
		parts[i] = in.String()
	}
	return g.Name + "<" + strings.Join(parts, ",") + ">"
}

// PathExpr is a dotted chain of segments, the base of every type
// expression. It always has at least one segment.
type PathExpr struct {
	Segments []Segment
}

// Equal reports structural equality.
func (p PathExpr) Equal(o PathExpr) bool {
	return segmentsEqual(p.Segments, o.Segments)
}

// String renders the path in dotted source form.
func (p PathExpr) String() string {
	parts := make([]string, len(p.Segments))
	for i, s := range p.Segments {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}

func segmentsEqual(a, b []Segment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
