package ast

// Visitor is the uniform read-only traversal contract over the AST
// variants. Accept methods descend into owned children in declaration
// order; they do not visit the receiver itself, so a traversal starts by
// handing the root to the matching Visit method and recursing through
// Accept from there.
type Visitor interface {
	VisitDocument(d *Document)
	VisitImport(i *Import)
	VisitModule(m *Module)
	VisitAlias(a *Alias)
	VisitEnumeration(e *Enumeration)
	VisitExtension(x *Extension)
	VisitFunction(f *Function)
	VisitObject(o *Object)
	VisitVariable(v *Variable)
	VisitSimplePath(p *SimplePath)
	VisitType(t *Type)
	VisitSegment(s Segment)
}

// Accept visits the document's imports, then its modules, in source order.
func (d *Document) Accept(v Visitor) {
	for i := range d.Imports {
		v.VisitImport(&d.Imports[i])
	}
	for i := range d.Modules {
		v.VisitModule(&d.Modules[i])
	}
}

// Accept visits the module's declarations: aliases, enumerations,
// extensions, functions, objects, variables, each in declaration order.
func (m *Module) Accept(v Visitor) {
	for i := range m.Aliases {
		v.VisitAlias(&m.Aliases[i])
	}
	for i := range m.Enumerations {
		v.VisitEnumeration(&m.Enumerations[i])
	}
	for i := range m.Extensions {
		v.VisitExtension(&m.Extensions[i])
	}
	for i := range m.Functions {
		v.VisitFunction(&m.Functions[i])
	}
	for i := range m.Objects {
		v.VisitObject(&m.Objects[i])
	}
	for i := range m.Variables {
		v.VisitVariable(&m.Variables[i])
	}
}

// Accept visits the imported path.
func (i *Import) Accept(v Visitor) {
	v.VisitSimplePath(&i.Path)
}

// Accept visits the aliased type.
func (a *Alias) Accept(v Visitor) {
	v.VisitType(&a.Aliased)
}

// Accept visits the declared type.
func (vr *Variable) Accept(v Visitor) {
	v.VisitType(&vr.VarType)
}

// Accept visits each parameter type, then the output type.
func (f *Function) Accept(v Visitor) {
	for i := range f.Params {
		v.VisitType(&f.Params[i].PType)
	}
	v.VisitType(&f.Output)
}

// Accept visits the object's members: variables, functions, then nested
// objects, each in declaration order.
func (o *Object) Accept(v Visitor) {
	for i := range o.Variables {
		v.VisitVariable(&o.Variables[i])
	}
	for i := range o.Functions {
		v.VisitFunction(&o.Functions[i])
	}
	for i := range o.Objects {
		v.VisitObject(&o.Objects[i])
	}
}

// Accept visits each segment of the type's path.
func (t *Type) Accept(v Visitor) {
	for _, seg := range t.Segments {
		v.VisitSegment(seg)
	}
}

// Accept visits each generic argument type in order.
func (g *Generic) Accept(v Visitor) {
	for i := range g.Inputs {
		v.VisitType(&g.Inputs[i])
	}
}
