package parser

import (
	"github.com/cherry-lang/cherry/core/ast"
	"github.com/cherry-lang/cherry/runtime/lexer"
)

// ParseSimplePath parses `IDENT ('.' IDENT)*`. It declines softly when the
// current token is not an identifier; once a dot has been consumed the next
// token must be an identifier.
func ParseSimplePath(ctx *State) (ast.SimplePath, Errc) {
	if ctx.Current.Type != lexer.IDENTIFIER {
		return ast.SimplePath{}, NotMySyntax
	}
	node := ast.SimplePath{Segments: []string{ctx.Current.Lexeme}}
	ctx.NextToken()
	for ctx.Current.Type == lexer.OP_ACCESS {
		ctx.NextToken()
		if ctx.Current.Type != lexer.IDENTIFIER {
			return ast.SimplePath{}, ExpectedIdentifier
		}
		node.Segments = append(node.Segments, ctx.Current.Lexeme)
		ctx.NextToken()
	}
	return node, Success
}

// ParseSegment parses one path segment: a primitive keyword, or an
// identifier optionally followed by angle-bracketed generic arguments. An
// empty `<>` yields an empty inputs list.
func ParseSegment(ctx *State) (ast.Segment, Errc) {
	if ctx.Current.Type == lexer.IDENTIFIER {
		return parseGeneric(ctx)
	}
	if primitive(ctx.Current.Type) {
		kind := primitiveKind(ctx.Current.Type)
		ctx.NextToken()
		return ast.Primitive{Kind: kind}, Success
	}
	return nil, NotMySyntax
}

func parseGeneric(ctx *State) (ast.Segment, Errc) {
	segm := ast.Generic{Name: ctx.Current.Lexeme}
	ctx.NextToken()
	if ctx.Current.Type != lexer.OP_LOGLESS {
		return segm, Success
	}
	ctx.NextToken()
	for !closingAngle(ctx) {
		if ctx.Current.Type == lexer.EOS {
			return nil, Failure
		}
		arg, err := ParseType(ctx)
		if err != Success {
			return nil, Failure
		}
		segm.Inputs = append(segm.Inputs, arg)
		if ctx.Current.Type == lexer.DC_COMMA {
			ctx.NextToken()
		}
	}
	consumeAngle(ctx)
	return segm, Success
}

// closingAngle reports whether Current closes a generic argument list. The
// lexer greedily pairs adjacent closers into a shift token, which closes
// two nested lists.
func closingAngle(ctx *State) bool {
	return ctx.Current.Type == lexer.OP_LOGMORE ||
		ctx.Current.Type == lexer.OP_BITRSH
}

// consumeAngle consumes one closer. A paired shift token leaves a single
// '>' behind for the enclosing list.
func consumeAngle(ctx *State) {
	if ctx.Current.Type == lexer.OP_BITRSH {
		ctx.Current = lexer.Token{
			Lexeme: ctx.Current.Lexeme[1:],
			Type:   lexer.OP_LOGMORE,
			Line:   ctx.Current.Line,
			Column: ctx.Current.Column + 1,
		}
		return
	}
	ctx.NextToken()
}

// ParsePathExpr parses `Segment ('.' Segment)*`. Every dot must be followed
// by a parseable segment.
func ParsePathExpr(ctx *State) (ast.PathExpr, Errc) {
	if ctx.Current.Type != lexer.IDENTIFIER && !primitive(ctx.Current.Type) {
		return ast.PathExpr{}, NotMySyntax
	}
	node := ast.PathExpr{}
	segm, err := ParseSegment(ctx)
	if err != Success {
		if err == NotMySyntax {
			return ast.PathExpr{}, err
		}
		return ast.PathExpr{}, Failure
	}
	node.Segments = append(node.Segments, segm)
	for ctx.Current.Type == lexer.OP_ACCESS {
		ctx.NextToken()
		segm, err = ParseSegment(ctx)
		if err != Success {
			return ast.PathExpr{}, Failure
		}
		node.Segments = append(node.Segments, segm)
	}
	return node, Success
}

func primitive(t lexer.Leaf) bool {
	switch t {
	case lexer.KW_BOOL, lexer.KW_CHAR,
		lexer.KW_INT8, lexer.KW_INT16, lexer.KW_INT32, lexer.KW_INT64,
		lexer.KW_UINT8, lexer.KW_UINT16, lexer.KW_UINT32, lexer.KW_UINT64,
		lexer.KW_SINGLE, lexer.KW_DOUBLE, lexer.KW_STRING, lexer.KW_VOID:
		return true
	}
	return false
}

func primitiveKind(t lexer.Leaf) ast.PrimitiveKind {
	switch t {
	case lexer.KW_BOOL:
		return ast.PBool
	case lexer.KW_CHAR:
		return ast.PChar
	case lexer.KW_INT8:
		return ast.PInt8
	case lexer.KW_INT16:
		return ast.PInt16
	case lexer.KW_INT32:
		return ast.PInt32
	case lexer.KW_INT64:
		return ast.PInt64
	case lexer.KW_UINT8:
		return ast.PUint8
	case lexer.KW_UINT16:
		return ast.PUint16
	case lexer.KW_UINT32:
		return ast.PUint32
	case lexer.KW_UINT64:
		return ast.PUint64
	case lexer.KW_SINGLE:
		return ast.PSingle
	case lexer.KW_DOUBLE:
		return ast.PDouble
	case lexer.KW_STRING:
		return ast.PString
	default:
		return ast.PVoid
	}
}
