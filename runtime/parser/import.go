package parser

import (
	"github.com/cherry-lang/cherry/core/ast"
	"github.com/cherry-lang/cherry/runtime/lexer"
)

// ParseImport parses `using SimplePath ;`. It declines softly unless the
// current token is the using keyword; after that a missing path is an
// identifier error and a missing terminator a terminator error. On success
// Current points past the semicolon.
func ParseImport(ctx *State) (ast.Import, Errc) {
	if ctx.Current.Type != lexer.KW_USING {
		return ast.Import{}, NotMySyntax
	}
	ctx.NextToken()
	path, err := ParseSimplePath(ctx)
	if err != Success {
		if err == NotMySyntax {
			return ast.Import{}, ExpectedIdentifier
		}
		return ast.Import{}, err
	}
	if ctx.Current.Type != lexer.DC_TERMINATOR {
		return ast.Import{}, ExpectedTerminator
	}
	ctx.NextToken()
	return ast.Import{Path: path}, Success
}
