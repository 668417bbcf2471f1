package lexer

// OctalRule scans "0"-prefixed integers whose second character is an octal
// digit. A lone "0" is claimed by the decimal rule instead; the litmus
// checks here keep the two disjoint.
type OctalRule struct{}

func (OctalRule) Litmus(source string) bool {
	return len(source) > 1 && source[0] == '0' && isOctal(rune(source[1]))
}

func (OctalRule) Tokenize(st *State) (Token, Errc) {
	st.StartToken()
	st.ReadChar()
	if st.EndOfSource() || !isOctal(st.CurrChar()) {
		return Token{}, InvalidOctal
	}
	for !st.EndOfSource() && isOctal(st.CurrChar()) {
		st.ReadChar()
	}
	return st.ExtractToken(LV_SIGNED), Success
}
