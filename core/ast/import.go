package ast

// Import brings a module path into scope: `using std.io;`.
type Import struct {
	Path SimplePath
}

// Equal reports structural equality.
func (i Import) Equal(o Import) bool {
	return i.Path.Equal(o.Path)
}

// String renders the import in source form.
func (i Import) String() string {
	return "using " + i.Path.String() + ";"
}
