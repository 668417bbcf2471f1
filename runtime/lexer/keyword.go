package lexer

import "strings"

// KeywordRule scans identifier-shaped runs and classifies them against the
// keyword table. Anything the table does not know becomes IDENTIFIER, so
// this rule never fails. A raw string opener r""" is left to the string
// rule.
type KeywordRule struct{}

func (KeywordRule) Litmus(source string) bool {
	if len(source) == 0 || strings.HasPrefix(source, `r"""`) {
		return false
	}
	ch := rune(source[0])
	return isAlpha(ch) || ch == '_'
}

func (KeywordRule) Tokenize(st *State) (Token, Errc) {
	st.StartToken()
	st.ReadChar()
	for !st.EndOfSource() && isKeywordChar(st.CurrChar()) {
		st.ReadChar()
	}
	tkn := st.ExtractToken(UNKNOWN)
	tkn.Type = classify(tkn.Lexeme)
	return tkn, Success
}

func isKeywordChar(ch rune) bool {
	return isAlnum(ch) || ch == '_'
}

func classify(lexeme string) Leaf {
	if kind, ok := Keywords[lexeme]; ok {
		return kind
	}
	return IDENTIFIER
}
