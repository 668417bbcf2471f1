package ast

import "strings"

// Document is the root of one parsed source file: its imports followed by
// its module sections, each in source order. The document exclusively owns
// the whole tree; dropping it releases every node.
type Document struct {
	Imports []Import
	Modules []Module
}

// Equal reports structural equality.
func (d Document) Equal(o Document) bool {
	if len(d.Imports) != len(o.Imports) || len(d.Modules) != len(o.Modules) {
		return false
	}
	for i := range d.Imports {
		if !d.Imports[i].Equal(o.Imports[i]) {
			return false
		}
	}
	for i := range d.Modules {
		if !d.Modules[i].Equal(o.Modules[i]) {
			return false
		}
	}
	return true
}

// String renders a source-like outline of the document.
func (d Document) String() string {
	var sb strings.Builder
	for _, imp := range d.Imports {
		sb.WriteString(imp.String())
		sb.WriteByte('\n')
	}
	for _, mod := range d.Modules {
		if len(mod.Name.Segments) > 0 {
			sb.WriteString("module ")
			sb.WriteString(mod.Name.String())
			sb.WriteString(";\n")
		}
		for _, al := range mod.Aliases {
			sb.WriteString(al.String())
			sb.WriteByte('\n')
		}
		for _, ext := range mod.Extensions {
			sb.WriteString("extend ")
			sb.WriteString(ext.Name)
			sb.WriteString(" { }\n")
		}
		for _, fn := range mod.Functions {
			sb.WriteString(fn.String())
			sb.WriteByte('\n')
		}
		for _, ob := range mod.Objects {
			sb.WriteString("object ")
			sb.WriteString(ob.Name)
			sb.WriteString(" { }\n")
		}
		for _, v := range mod.Variables {
			sb.WriteString(v.String())
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
