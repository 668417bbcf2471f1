package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// tokenExpectation is the flattened form of a token for table-driven tests.
type tokenExpectation struct {
	Type   Leaf
	Lexeme string
	Line   uint64
	Column uint64
}

// assertTokens lexes the whole input and compares the stream, EOS included,
// against the expectations.
func assertTokens(t *testing.T, name, input string, expected []tokenExpectation) {
	t.Helper()

	st := NewState(input)
	tokens, err := NewAnalyzer().TokenizeAll(st)
	if err != Success {
		t.Fatalf("%s: tokenize failed with %s", name, err)
	}

	var actual []tokenExpectation
	for _, tkn := range tokens {
		actual = append(actual, tokenExpectation{
			Type:   tkn.Type,
			Lexeme: tkn.Lexeme,
			Line:   tkn.Line,
			Column: tkn.Column,
		})
	}

	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("%s: token mismatch (-expected +actual):\n%s", name, diff)
	}
}

// assertLexError lexes the input expecting the analyzer to fail with the
// given kind.
func assertLexError(t *testing.T, name, input string, want Errc) {
	t.Helper()

	st := NewState(input)
	_, err := NewAnalyzer().TokenizeAll(st)
	if err != want {
		t.Errorf("%s: got %s, want %s", name, err, want)
	}
}
