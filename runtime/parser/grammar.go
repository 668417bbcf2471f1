package parser

import (
	"sync"

	"github.com/cherry-lang/cherry/core/grammar"
	"github.com/cherry-lang/cherry/runtime/lexer"
)

// The grammar rules below describe the document skeleton that the
// recursive-descent parsers in this package accept. They are separate types
// from those parsers; each contributes its productions so the engine can
// compute FIRST and FOLLOW as static data for table-driven parser
// construction.

func leaf(l lexer.Leaf) grammar.Symbol {
	return grammar.Symbol(l)
}

// DocumentRule: a document is its includes followed by its body.
type DocumentRule struct{}

func (DocumentRule) Productions() []grammar.Production {
	return []grammar.Production{
		{Head: grammar.DOCUMENT.Sym(), Body: []grammar.Symbol{
			grammar.INCLUDES.Sym(), grammar.DOCBODY.Sym(),
		}},
		{Head: grammar.INCLUDES.Sym(), Body: []grammar.Symbol{
			grammar.IMPORT.Sym(), grammar.INCLUDES.Sym(),
		}},
		{Head: grammar.INCLUDES.Sym(), Body: []grammar.Symbol{grammar.Epsilon}},
		{Head: grammar.DOCBODY.Sym(), Body: []grammar.Symbol{
			grammar.MODULE.Sym(), grammar.DOCBODY.Sym(),
		}},
		{Head: grammar.DOCBODY.Sym(), Body: []grammar.Symbol{grammar.Epsilon}},
	}
}

// ImportRule: `using a.b.c;`.
type ImportRule struct{}

func (ImportRule) Productions() []grammar.Production {
	return []grammar.Production{
		{Head: grammar.IMPORT.Sym(), Body: []grammar.Symbol{
			leaf(lexer.KW_USING), grammar.IDCHAIN.Sym(), leaf(lexer.DC_TERMINATOR),
		}},
	}
}

// ModuleRule: `module a.b.c;`.
type ModuleRule struct{}

func (ModuleRule) Productions() []grammar.Production {
	return []grammar.Production{
		{Head: grammar.MODULE.Sym(), Body: []grammar.Symbol{
			leaf(lexer.KW_MODULE), grammar.IDCHAIN.Sym(), leaf(lexer.DC_TERMINATOR),
		}},
	}
}

// PathRule: dotted identifier chains.
type PathRule struct{}

func (PathRule) Productions() []grammar.Production {
	return []grammar.Production{
		{Head: grammar.IDCHAIN.Sym(), Body: []grammar.Symbol{
			leaf(lexer.IDENTIFIER), grammar.ACCCHAIN.Sym(),
		}},
		{Head: grammar.ACCCHAIN.Sym(), Body: []grammar.Symbol{
			leaf(lexer.OP_ACCESS), leaf(lexer.IDENTIFIER), grammar.ACCCHAIN.Sym(),
		}},
		{Head: grammar.ACCCHAIN.Sym(), Body: []grammar.Symbol{grammar.Epsilon}},
	}
}

// VariableRule: storage keyword, name, typed tail, terminator.
type VariableRule struct{}

func (VariableRule) Productions() []grammar.Production {
	heads := []lexer.Leaf{lexer.KW_VAR, lexer.KW_CONST, lexer.KW_STATIC}
	prods := make([]grammar.Production, 0, len(heads)+1)
	for _, kw := range heads {
		prods = append(prods, grammar.Production{
			Head: grammar.VARIABLE.Sym(),
			Body: []grammar.Symbol{
				leaf(kw), leaf(lexer.IDENTIFIER),
				grammar.VARTYPE.Sym(), leaf(lexer.DC_TERMINATOR),
			},
		})
	}
	prods = append(prods, grammar.Production{
		Head: grammar.VARTYPE.Sym(),
		Body: []grammar.Symbol{leaf(lexer.DC_COLON), grammar.IDCHAIN.Sym()},
	})
	return prods
}

// ObjectRule: `object name { members }`.
type ObjectRule struct{}

func (ObjectRule) Productions() []grammar.Production {
	return []grammar.Production{
		{Head: grammar.OBJECT.Sym(), Body: []grammar.Symbol{
			leaf(lexer.KW_OBJECT), leaf(lexer.IDENTIFIER),
			leaf(lexer.DC_LBRACE), grammar.OBJBODY.Sym(), leaf(lexer.DC_RBRACE),
		}},
		{Head: grammar.OBJBODY.Sym(), Body: []grammar.Symbol{grammar.OBJCONT.Sym()}},
		{Head: grammar.OBJBODY.Sym(), Body: []grammar.Symbol{grammar.Epsilon}},
		{Head: grammar.OBJCONT.Sym(), Body: []grammar.Symbol{
			grammar.VARIABLE.Sym(), grammar.OBJCONT.Sym(),
		}},
		{Head: grammar.OBJCONT.Sym(), Body: []grammar.Symbol{
			grammar.OBJECT.Sym(), grammar.OBJCONT.Sym(),
		}},
		{Head: grammar.OBJCONT.Sym(), Body: []grammar.Symbol{grammar.Epsilon}},
	}
}

// documentGrammar holds the process-wide grammar instance. The sets inside
// are themselves computed once and read-only afterwards, so sharing the
// instance across goroutines is safe.
var documentGrammar = sync.OnceValue(func() *grammar.Grammar {
	return grammar.New(
		grammar.DOCUMENT.Sym(),
		DocumentRule{},
		ImportRule{},
		ModuleRule{},
		PathRule{},
		VariableRule{},
		ObjectRule{},
	)
})

// DocumentGrammar returns the document-skeleton grammar with DOCUMENT as
// the start symbol.
func DocumentGrammar() *grammar.Grammar {
	return documentGrammar()
}
