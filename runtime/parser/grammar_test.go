package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/cherry-lang/cherry/core/grammar"
	"github.com/cherry-lang/cherry/runtime/lexer"
)

func TestDocumentGrammarFirstSets(t *testing.T) {
	g := DocumentGrammar()

	expected := map[grammar.Symbol]grammar.SymbolSet{
		grammar.DOCUMENT.Sym(): grammar.NewSet(
			grammar.Epsilon, leaf(lexer.KW_USING), leaf(lexer.KW_MODULE)),
		grammar.INCLUDES.Sym(): grammar.NewSet(grammar.Epsilon, leaf(lexer.KW_USING)),
		grammar.IMPORT.Sym():   grammar.NewSet(leaf(lexer.KW_USING)),
		grammar.DOCBODY.Sym():  grammar.NewSet(grammar.Epsilon, leaf(lexer.KW_MODULE)),
		grammar.MODULE.Sym():   grammar.NewSet(leaf(lexer.KW_MODULE)),
		grammar.IDCHAIN.Sym():  grammar.NewSet(leaf(lexer.IDENTIFIER)),
		grammar.ACCCHAIN.Sym(): grammar.NewSet(grammar.Epsilon, leaf(lexer.OP_ACCESS)),
		grammar.VARIABLE.Sym(): grammar.NewSet(
			leaf(lexer.KW_VAR), leaf(lexer.KW_CONST), leaf(lexer.KW_STATIC)),
		grammar.VARTYPE.Sym(): grammar.NewSet(leaf(lexer.DC_COLON)),
		grammar.OBJECT.Sym():  grammar.NewSet(leaf(lexer.KW_OBJECT)),
		grammar.OBJBODY.Sym(): grammar.NewSet(
			grammar.Epsilon, leaf(lexer.KW_VAR), leaf(lexer.KW_CONST),
			leaf(lexer.KW_STATIC), leaf(lexer.KW_OBJECT)),
		grammar.OBJCONT.Sym(): grammar.NewSet(
			grammar.Epsilon, leaf(lexer.KW_VAR), leaf(lexer.KW_CONST),
			leaf(lexer.KW_STATIC), leaf(lexer.KW_OBJECT)),
	}

	if diff := cmp.Diff(expected, g.FirstSets()); diff != "" {
		t.Errorf("FIRST mismatch (-expected +actual):\n%s", diff)
	}
}

func TestDocumentGrammarFollowSets(t *testing.T) {
	g := DocumentGrammar()

	declFollow := []grammar.Symbol{
		leaf(lexer.KW_VAR), leaf(lexer.KW_CONST), leaf(lexer.KW_STATIC),
		leaf(lexer.KW_OBJECT), leaf(lexer.DC_RBRACE),
	}
	expected := map[grammar.Symbol]grammar.SymbolSet{
		grammar.DOCUMENT.Sym(): grammar.NewSet(grammar.Final),
		grammar.INCLUDES.Sym(): grammar.NewSet(grammar.Final, leaf(lexer.KW_MODULE)),
		grammar.IMPORT.Sym(): grammar.NewSet(
			grammar.Final, leaf(lexer.KW_USING), leaf(lexer.KW_MODULE)),
		grammar.DOCBODY.Sym(): grammar.NewSet(grammar.Final),
		grammar.MODULE.Sym():  grammar.NewSet(grammar.Final, leaf(lexer.KW_MODULE)),
		grammar.IDCHAIN.Sym():  grammar.NewSet(leaf(lexer.DC_TERMINATOR)),
		grammar.ACCCHAIN.Sym(): grammar.NewSet(leaf(lexer.DC_TERMINATOR)),
		grammar.VARIABLE.Sym(): grammar.NewSet(declFollow...),
		grammar.VARTYPE.Sym():  grammar.NewSet(leaf(lexer.DC_TERMINATOR)),
		grammar.OBJECT.Sym():   grammar.NewSet(declFollow...),
		grammar.OBJBODY.Sym():  grammar.NewSet(leaf(lexer.DC_RBRACE)),
		grammar.OBJCONT.Sym():  grammar.NewSet(leaf(lexer.DC_RBRACE)),
	}

	if diff := cmp.Diff(expected, g.FollowSets()); diff != "" {
		t.Errorf("FOLLOW mismatch (-expected +actual):\n%s", diff)
	}
}

func TestDocumentGrammarStart(t *testing.T) {
	g := DocumentGrammar()
	assert.Equal(t, grammar.DOCUMENT.Sym(), g.Start())
	assert.NotEmpty(t, g.Productions())
}
