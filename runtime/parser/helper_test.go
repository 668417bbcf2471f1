package parser

import (
	"testing"

	"github.com/cherry-lang/cherry/runtime/lexer"
)

// scriptedTokenizer replays a fixed token sequence, standing in for the
// lexical analyzer the way the syntax parsers see it. Past the end it keeps
// producing EOS.
type scriptedTokenizer struct {
	tokens []lexer.Token
	index  int
}

func (s *scriptedTokenizer) Tokenize(*lexer.State) (lexer.Token, lexer.Errc) {
	if s.index >= len(s.tokens) {
		return lexer.Token{Type: lexer.EOS}, lexer.Success
	}
	tkn := s.tokens[s.index]
	s.index++
	return tkn, lexer.Success
}

// newTestState builds a parse state over the real lexer and primes the
// first token, the way a parent parser would before handing off.
func newTestState(t *testing.T, source string) *State {
	t.Helper()
	ctx := NewState("test.ch", source)
	if err := ctx.NextToken(); err != lexer.Success {
		t.Fatalf("priming token failed: %s", err)
	}
	return ctx
}
