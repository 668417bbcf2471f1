package lexer

// State is the mutable cursor a lexer drives over one source buffer. It owns
// the buffer and tracks the read position plus the origin of the token being
// scanned. Rules advance it with ReadChar and slice lexemes out of Code, so
// every produced Token borrows from the buffer held here.
//
// Invariants: Index <= len(Code); Column resets to zero on '\n'; the pending
// lexeme start never passes Index.
type State struct {
	Code   string
	Line   uint64
	Column uint64
	Index  uint64

	tokenLine   uint64
	tokenColumn uint64
	lexemeStart uint64
}

// NewState wraps a source buffer in a fresh cursor.
func NewState(code string) *State {
	return &State{Code: code}
}

// EndOfSource reports whether the cursor has consumed the whole buffer.
func (st *State) EndOfSource() bool {
	return st.Index == uint64(len(st.Code))
}

// CurrChar returns the code unit under the cursor, or 0 at the end.
func (st *State) CurrChar() rune {
	if st.Index >= uint64(len(st.Code)) {
		return 0
	}
	return rune(st.Code[st.Index])
}

// NextChar returns the code unit after the cursor, or 0 past the end.
func (st *State) NextChar() rune {
	if st.Index+1 >= uint64(len(st.Code)) {
		return 0
	}
	return rune(st.Code[st.Index+1])
}

// PrevChar returns the code unit before the cursor, or 0 at the start.
func (st *State) PrevChar() rune {
	if st.Index == 0 || st.Index > uint64(len(st.Code)) {
		return 0
	}
	return rune(st.Code[st.Index-1])
}

// ReadChar consumes and returns the code unit under the cursor. A newline
// bumps Line and resets Column; any other unit, including '\r' and form
// feed, advances Column. At the end it returns 0 without advancing.
func (st *State) ReadChar() rune {
	if st.Index == uint64(len(st.Code)) {
		return 0
	}
	ch := rune(st.Code[st.Index])
	st.Index++
	if ch == '\n' {
		st.Line++
		st.Column = 0
	} else {
		st.Column++
	}
	return ch
}

// RemainingSource returns the unread tail of the buffer.
func (st *State) RemainingSource() string {
	return st.Code[st.Index:]
}

// StartToken snapshots the current position as the origin of the next token.
func (st *State) StartToken() {
	st.tokenLine = st.Line
	st.tokenColumn = st.Column
	st.lexemeStart = st.Index
}

// ExtractToken produces the token spanning from the last StartToken to the
// cursor, typed as kind.
func (st *State) ExtractToken(kind Leaf) Token {
	return Token{
		Lexeme: st.Code[st.lexemeStart:st.Index],
		Type:   kind,
		Line:   st.tokenLine,
		Column: st.tokenColumn,
	}
}
