package grammar

import (
	"fmt"

	"github.com/cherry-lang/cherry/runtime/lexer"
)

// Symbol is the unified view over terminals and non-terminals. Values below
// lexer.LeafUpperLimit are leaves (convert a lexer.Leaf directly); values at
// or above it are roots. Symbols are value-equal and cheap to copy.
type Symbol int16

// Epsilon marks the empty production body and Final the end-of-input
// sentinel in FOLLOW sets. Epsilon shares its value with lexer.EOS, which
// never appears inside a production body, so the two cannot collide.
const (
	Epsilon Symbol = -1
	Final   Symbol = -2
)

// IsLeaf reports whether the symbol is a terminal.
func (s Symbol) IsLeaf() bool {
	return s < lexer.LeafUpperLimit
}

// String renders the symbol: sentinels, then leaves by their taxonomy name,
// then roots.
func (s Symbol) String() string {
	switch s {
	case Epsilon:
		return "ε"
	case Final:
		return "$"
	}
	if s.IsLeaf() {
		return lexer.Leaf(s).String()
	}
	return Root(s).String()
}

// Root enumerates the non-terminals of the document grammar. Values start
// at the leaf upper limit so that Symbol comparison alone discriminates
// them from terminals.
type Root int16

const (
	DOCUMENT Root = lexer.LeafUpperLimit + iota
	DOCBODY
	INCLUDES
	IMPORT
	MODULE
	VARIABLE
	OBJECT
	OBJBODY
	OBJCONT
	IDCHAIN
	ACCCHAIN
	VARTYPE
)

// Sym converts the root to its symbol.
func (r Root) Sym() Symbol {
	return Symbol(r)
}

// String returns the symbolic name of the root.
func (r Root) String() string {
	switch r {
	case DOCUMENT:
		return "DOCUMENT"
	case DOCBODY:
		return "DOCBODY"
	case INCLUDES:
		return "INCLUDES"
	case IMPORT:
		return "IMPORT"
	case MODULE:
		return "MODULE"
	case VARIABLE:
		return "VARIABLE"
	case OBJECT:
		return "OBJECT"
	case OBJBODY:
		return "OBJBODY"
	case OBJCONT:
		return "OBJCONT"
	case IDCHAIN:
		return "IDCHAIN"
	case ACCCHAIN:
		return "ACCCHAIN"
	case VARTYPE:
		return "VARTYPE"
	default:
		return fmt.Sprintf("ROOT(%d)", int16(r))
	}
}
