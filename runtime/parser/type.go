package parser

import (
	"github.com/cherry-lang/cherry/core/ast"
	"github.com/cherry-lang/cherry/runtime/lexer"
)

// ParseType parses a full type expression: a path expression base, then one
// of the structural variants by lookahead. '(' opens a function type, '['
// an array type, '*' or '&' a reference type; anything else leaves the base
// as a raw type. On success Current holds the first token past the type.
func ParseType(ctx *State) (ast.Type, Errc) {
	pe, err := ParsePathExpr(ctx)
	if err != Success {
		return ast.Type{}, err
	}
	node := ast.Type{Segments: pe.Segments, Kind: ast.RawType}
	switch ctx.Current.Type {
	case lexer.DC_LPAREN:
		return parseFn(ctx, node)
	case lexer.DC_LBRACKET:
		return parseArr(ctx, node)
	case lexer.OP_MUL, lexer.OP_BITAND, lexer.OP_LOGAND:
		return parseRef(ctx, node)
	}
	return node, Success
}

func parseFn(ctx *State, node ast.Type) (ast.Type, Errc) {
	node.Kind = ast.FnType
	ctx.NextToken()
	for ctx.Current.Type != lexer.DC_RPAREN {
		if ctx.Current.Type == lexer.EOS {
			return ast.Type{}, Failure
		}
		in, err := ParseType(ctx)
		if err != Success {
			if err == NotMySyntax {
				return ast.Type{}, ExpectedType
			}
			return ast.Type{}, err
		}
		node.Inputs = append(node.Inputs, in)
		if ctx.Current.Type == lexer.DC_COMMA {
			ctx.NextToken()
		}
	}
	ctx.NextToken()
	if ctx.Current.Type != lexer.DC_COLON {
		return node, Success
	}
	ctx.NextToken()
	out, err := ParseType(ctx)
	if err != Success {
		if err == NotMySyntax {
			return ast.Type{}, ExpectedType
		}
		return ast.Type{}, err
	}
	node.Output = &out
	return node, Success
}

// parseArr consumes the bracketed dimension list without building
// expression nodes; dimension parsing waits on the expression parser.
func parseArr(ctx *State, node ast.Type) (ast.Type, Errc) {
	node.Kind = ast.ArrType
	ctx.NextToken()
	for ctx.Current.Type != lexer.DC_RBRACKET {
		if ctx.Current.Type == lexer.EOS {
			return ast.Type{}, Failure
		}
		ctx.NextToken()
	}
	ctx.NextToken()
	return node, Success
}

// parseRef collects the sigil run left to right. The lexer greedily pairs
// adjacent ampersands into a logical-and token, so that token counts as two
// reference sigils here.
func parseRef(ctx *State, node ast.Type) (ast.Type, Errc) {
	node.Kind = ast.RefType
	for {
		switch ctx.Current.Type {
		case lexer.OP_MUL:
			node.Depth = append(node.Depth, true)
		case lexer.OP_BITAND:
			node.Depth = append(node.Depth, false)
		case lexer.OP_LOGAND:
			node.Depth = append(node.Depth, false, false)
		default:
			return node, Success
		}
		ctx.NextToken()
	}
}
