package lexer

import "strings"

// CommentRule scans '#' line comments up to, but not including, the newline.
type CommentRule struct{}

func (CommentRule) Litmus(source string) bool {
	return strings.HasPrefix(source, "#")
}

func (CommentRule) Tokenize(st *State) (Token, Errc) {
	st.StartToken()
	st.ReadChar()
	for !st.EndOfSource() && st.CurrChar() != '\n' {
		st.ReadChar()
	}
	return st.ExtractToken(COMMENT), Success
}
