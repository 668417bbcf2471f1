package lexer

import "strings"

// BinaryRule scans "0b"-prefixed integers. The prefix must be followed by at
// least one binary digit.
type BinaryRule struct{}

func (BinaryRule) Litmus(source string) bool {
	return strings.HasPrefix(source, "0b")
}

func (BinaryRule) Tokenize(st *State) (Token, Errc) {
	st.StartToken()
	st.ReadChar()
	st.ReadChar()
	if st.EndOfSource() || !isBinary(st.CurrChar()) {
		return Token{}, InvalidBinary
	}
	for !st.EndOfSource() && isBinary(st.CurrChar()) {
		st.ReadChar()
	}
	return st.ExtractToken(LV_SIGNED), Success
}
