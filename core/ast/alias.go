package ast

// Alias names an existing type: `alias handle = uint64;`.
type Alias struct {
	Name    string
	Aliased Type
}

// Equal reports structural equality.
func (a Alias) Equal(o Alias) bool {
	return a.Name == o.Name && a.Aliased.Equal(o.Aliased)
}

// String renders the alias in source form.
func (a Alias) String() string {
	return "alias " + a.Name + " = " + a.Aliased.String() + ";"
}
