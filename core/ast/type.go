package ast

import "strings"

// TypeKind discriminates the four structural variants of a parsed type.
type TypeKind int8

const (
	RawType TypeKind = iota
	FnType
	ArrType
	RefType
)

// String returns the symbolic name of the variant.
func (k TypeKind) String() string {
	switch k {
	case RawType:
		return "raw"
	case FnType:
		return "fn"
	case ArrType:
		return "arr"
	case RefType:
		return "ref"
	default:
		return "unknown"
	}
}

// Type is a parsed type expression. Every type carries its path segments;
// the variant fields are meaningful only for the matching Kind:
//
//	FnType:  Inputs and Output, parameter order preserved left to right
//	ArrType: Dimensions, unpopulated until expressions are parsed
//	RefType: Depth, one entry per sigil in source order, true for '*'
type Type struct {
	Segments []Segment
	Kind     TypeKind

	Inputs     []Type
	Output     *Type
	Dimensions []Expr
	Depth      []bool
}

// Equal reports structural equality, descending through the variant fields
// of the matching kind.
func (t Type) Equal(o Type) bool {
	if t.Kind != o.Kind || !segmentsEqual(t.Segments, o.Segments) {
		return false
	}
	switch t.Kind {
	case FnType:
		if len(t.Inputs) != len(o.Inputs) {
			return false
		}
		for i := range t.Inputs {
			if !t.Inputs[i].Equal(o.Inputs[i]) {
				return false
			}
		}
		if (t.Output == nil) != (o.Output == nil) {
			return false
		}
		if t.Output != nil && !t.Output.Equal(*o.Output) {
			return false
		}
	case ArrType:
		// TODO: compare dimensions once expressions are parsed.
	case RefType:
		if len(t.Depth) != len(o.Depth) {
			return false
		}
		for i := range t.Depth {
			if t.Depth[i] != o.Depth[i] {
				return false
			}
		}
	}
	return true
}

// String renders the type in canonical source-like form: the dotted segment
// path followed by the variant suffix.
func (t Type) String() string {
	var sb strings.Builder
	for i, seg := range t.Segments {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(seg.String())
	}
	switch t.Kind {
	case FnType:
		sb.WriteByte('(')
		for i, in := range t.Inputs {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(in.String())
		}
		sb.WriteByte(')')
		if t.Output != nil {
			sb.WriteByte(':')
			sb.WriteString(t.Output.String())
		}
	case ArrType:
		sb.WriteString("[]")
	case RefType:
		for _, ptr := range t.Depth {
			if ptr {
				sb.WriteByte('*')
			} else {
				sb.WriteByte('&')
			}
		}
	}
	return sb.String()
}
