package lexer

import "strings"

// StringRule scans the three string forms: single-line literals "…",
// multiline literals delimited by exactly three quotes, and raw multiline
// literals r"""…""" where the r prefix disables multiline semantics but
// keeps the triple delimiter. An unescaped '{' in the body promotes the
// token to its interpolated counterpart; escape handling is syntactic only,
// no unescaping happens here.
type StringRule struct{}

func (StringRule) Litmus(source string) bool {
	return strings.HasPrefix(source, `r"""`) ||
		strings.HasPrefix(source, `"`)
}

func (StringRule) Tokenize(st *State) (Token, Errc) {
	start := st.Index
	st.StartToken()
	if st.CurrChar() == 'r' {
		st.ReadChar()
		// The litmus already verified three quotes.
		readOpener(st)
		return analyzeRaw(st)
	}
	quotes := readOpener(st)
	// Two quotes and nothing between them is the empty string.
	if st.Index-start == 2 {
		return st.ExtractToken(LV_RAW_STRING), Success
	}
	if quotes == 3 {
		return analyzeMultiline(st)
	}
	return analyzeLiteral(st)
}

// readOpener consumes the run of opening quotes, up to four, and returns how
// many it consumed.
func readOpener(st *State) int {
	count := 0
	for st.CurrChar() == '"' && count < 4 {
		st.ReadChar()
		count++
	}
	return count
}

// readClosure consumes a run of quotes and reports whether it was exactly
// the three-quote delimiter.
func readClosure(st *State) bool {
	count := 0
	for st.CurrChar() == '"' && count < 4 {
		st.ReadChar()
		count++
	}
	return count == 3
}

// handleInterpolation promotes the token type on an unescaped '{' and
// consumes one code unit either way.
func handleInterpolation(st *State, kind *Leaf) {
	if st.CurrChar() == '{' && st.PrevChar() != '\\' {
		switch *kind {
		case LV_RAW_STRING:
			*kind = LV_INT_STRING
		case LV_ML_STRING:
			*kind = LV_MLI_STRING
		}
	}
	st.ReadChar()
}

func analyzeLiteral(st *State) (Token, Errc) {
	kind := LV_RAW_STRING
	for !st.EndOfSource() && st.CurrChar() != '\n' && st.CurrChar() != '"' {
		handleInterpolation(st, &kind)
	}
	// Single-line strings must terminate before the end of the line.
	if st.EndOfSource() || st.CurrChar() == '\n' {
		return Token{}, InvalidRawString
	}
	st.ReadChar() // closing quote
	return st.ExtractToken(kind), Success
}

func analyzeMultiline(st *State) (Token, Errc) {
	kind := LV_ML_STRING
	for !st.EndOfSource() && st.CurrChar() != '"' {
		handleInterpolation(st, &kind)
	}
	if st.EndOfSource() || !readClosure(st) {
		return Token{}, InvalidMlString
	}
	return st.ExtractToken(kind), Success
}

func analyzeRaw(st *State) (Token, Errc) {
	kind := LV_RAW_STRING
	for !st.EndOfSource() && st.CurrChar() != '"' {
		handleInterpolation(st, &kind)
	}
	if st.EndOfSource() || !readClosure(st) {
		return Token{}, InvalidRawString
	}
	return st.ExtractToken(kind), Success
}
