package parser

import "github.com/cherry-lang/cherry/runtime/lexer"

// Tokenizer is what a parse state pulls tokens from. The production
// implementation is lexer.Analyzer; tests substitute scripted ones.
type Tokenizer interface {
	Tokenize(st *lexer.State) (lexer.Token, lexer.Errc)
}

// State is the parser's cursor: it owns the lex state (and with it the
// source buffer every lexeme borrows from), the file path for diagnostics,
// and the single token of lookahead. Parsers inspect Current and advance
// with NextToken.
type State struct {
	Lex     lexer.State
	Path    string
	Current lexer.Token

	// Err holds the last lexical error, if any. When the lexer fails,
	// Current degrades to an UNKNOWN token at the failure position so
	// parsers terminate through their normal mismatch paths.
	Err lexer.Errc

	tokenizer Tokenizer
}

// NewState builds a parse state over the source buffer using the default
// lexical analyzer. Current is zero until the first NextToken: ParseDocument
// reads its first token itself, while the other parsers inspect Current and
// expect it to be primed by the caller.
func NewState(path, source string) *State {
	return &State{
		Lex:       lexer.State{Code: source},
		Path:      path,
		tokenizer: lexer.NewAnalyzer(),
	}
}

// NewStateWith builds a parse state over a custom tokenizer.
func NewStateWith(path, source string, t Tokenizer) *State {
	return &State{
		Lex:       lexer.State{Code: source},
		Path:      path,
		tokenizer: t,
	}
}

// NextToken pulls one token into Current and reports the lexer's result
// kind.
func (st *State) NextToken() lexer.Errc {
	tkn, err := st.tokenizer.Tokenize(&st.Lex)
	if err != lexer.Success {
		st.Err = err
		st.Current = lexer.Token{
			Type:   lexer.UNKNOWN,
			Line:   st.Lex.Line,
			Column: st.Lex.Column,
		}
		return err
	}
	st.Current = tkn
	return lexer.Success
}
