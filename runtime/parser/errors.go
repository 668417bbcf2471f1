package parser

import (
	"fmt"
	"strings"

	"github.com/cherry-lang/cherry/runtime/lexer"
)

// Errc is the result kind of a parse attempt. NotMySyntax is a soft
// decline: the first token did not match the parser's start set and an
// alternative may try. Every other non-success kind is a hard error raised
// after the parser committed. Errors are values, never panics.
type Errc int16

const (
	Unrecoverable Errc = iota - 1
	Success
	Failure
	NotMySyntax
	ExpectedIdentifier
	ExpectedTerminator
	ExpectedColon
	ExpectedAssign
	ExpectedType
	ExpectedLBrace
	ExpectedRBrace
)

// String returns the symbolic name of the error kind.
func (e Errc) String() string {
	switch e {
	case Unrecoverable:
		return "unrecoverable"
	case Success:
		return "success"
	case Failure:
		return "failure"
	case NotMySyntax:
		return "not_my_syntax"
	case ExpectedIdentifier:
		return "expected_identifier"
	case ExpectedTerminator:
		return "expected_terminator"
	case ExpectedColon:
		return "expected_colon"
	case ExpectedAssign:
		return "expected_assign"
	case ExpectedType:
		return "expected_type"
	case ExpectedLBrace:
		return "expected_lbrace"
	case ExpectedRBrace:
		return "expected_rbrace"
	default:
		return fmt.Sprintf("unknown(%d)", int16(e))
	}
}

// Message returns the human readable description of the error kind.
func (e Errc) Message() string {
	switch e {
	case Unrecoverable:
		return "Unrecoverable"
	case Success:
		return "Success"
	case Failure:
		return "Failure"
	case NotMySyntax:
		return "No Parser Accepted Input"
	case ExpectedIdentifier:
		return "Expected Identifier"
	case ExpectedTerminator:
		return "Expected ';'"
	case ExpectedColon:
		return "Expected ':'"
	case ExpectedAssign:
		return "Expected '='"
	case ExpectedType:
		return "Expected Type Expression"
	case ExpectedLBrace:
		return "Expected '{'"
	case ExpectedRBrace:
		return "Expected '}'"
	}
	return "Unknown"
}

// Error makes Errc usable as an error value by hosts that want one.
func (e Errc) Error() string {
	return e.Message()
}

// Diagnostic pairs an error kind with the offending token and enough
// context to render a caret snippet. Positions print 1-based even though
// tokens count from zero.
type Diagnostic struct {
	Code        Errc
	Token       lexer.Token
	Path        string
	Source      string
	Suggestions []string
}

// NewDiagnostic captures the state's current token as the offending one and
// attaches keyword suggestions when the lexeme looks like a typo.
func NewDiagnostic(code Errc, ctx *State) Diagnostic {
	d := Diagnostic{
		Code:   code,
		Token:  ctx.Current,
		Path:   ctx.Path,
		Source: ctx.Lex.Code,
	}
	if ctx.Current.Type == lexer.IDENTIFIER {
		d.Suggestions = keywordSuggestions(ctx.Current.Lexeme)
	}
	return d
}

// Error renders the diagnostic with location, source line, and caret.
func (d Diagnostic) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s\n", d.Code.String(), d.Code.Message())
	sb.WriteString(d.snippet())
	for _, s := range d.Suggestions {
		fmt.Fprintf(&sb, "\n   = did you mean %q?", s)
	}
	return sb.String()
}

func (d Diagnostic) snippet() string {
	line, col := d.Token.Line+1, d.Token.Column+1
	lines := strings.Split(d.Source, "\n")
	if d.Source == "" || d.Token.Line >= uint64(len(lines)) {
		return fmt.Sprintf("  --> %s:%d:%d", d.Path, line, col)
	}
	content := lines[d.Token.Line]
	var sb strings.Builder
	fmt.Fprintf(&sb, "  --> %s:%d:%d\n", d.Path, line, col)
	sb.WriteString("   |\n")
	fmt.Fprintf(&sb, "%2d | %s\n", line, content)
	sb.WriteString("   | ")
	if int(col) <= len(content)+1 {
		sb.WriteString(strings.Repeat(" ", int(col)-1) + "^")
	}
	return sb.String()
}
