package lexer

import "strings"

// HexadecimalRule scans "0x"-prefixed integers. The prefix must be followed
// by at least one hexadecimal digit.
type HexadecimalRule struct{}

func (HexadecimalRule) Litmus(source string) bool {
	return strings.HasPrefix(source, "0x")
}

func (HexadecimalRule) Tokenize(st *State) (Token, Errc) {
	st.StartToken()
	st.ReadChar()
	st.ReadChar()
	if st.EndOfSource() || !isHex(st.CurrChar()) {
		return Token{}, InvalidHexadecimal
	}
	for !st.EndOfSource() && isHex(st.CurrChar()) {
		st.ReadChar()
	}
	return st.ExtractToken(LV_SIGNED), Success
}
