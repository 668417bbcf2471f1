package parser

import (
	"strings"

	"github.com/cherry-lang/cherry/core/ast"
	"github.com/cherry-lang/cherry/runtime/lexer"
)

// ParseDocument parses a whole source file: imports first, then module
// sections whose declarations attach to the most recent `module` header.
// Declarations before any header go into an implicit unnamed module.
// Comments are skipped wherever a declaration could start.
func ParseDocument(ctx *State) (ast.Document, Errc) {
	ctx.NextToken()
	doc := ast.Document{}
	skipComments(ctx)
	for ctx.Current.Type == lexer.KW_USING {
		imp, err := ParseImport(ctx)
		if err != Success {
			return ast.Document{}, err
		}
		doc.Imports = append(doc.Imports, imp)
		skipComments(ctx)
	}
	var current *ast.Module
	section := func() *ast.Module {
		if current == nil {
			doc.Modules = append(doc.Modules, ast.Module{})
			current = &doc.Modules[len(doc.Modules)-1]
		}
		return current
	}
	for ctx.Current.Type != lexer.EOS {
		skipComments(ctx)
		switch ctx.Current.Type {
		case lexer.EOS:
			// Trailing comments.
		case lexer.KW_MODULE:
			name, err := parseModuleHeader(ctx)
			if err != Success {
				return ast.Document{}, err
			}
			doc.Modules = append(doc.Modules, ast.Module{Name: name})
			current = &doc.Modules[len(doc.Modules)-1]
		case lexer.KW_VAR, lexer.KW_CONST, lexer.KW_STATIC:
			v, err := ParseVariable(ctx)
			if err != Success {
				return ast.Document{}, err
			}
			m := section()
			m.Variables = append(m.Variables, v)
		case lexer.KW_ALIAS:
			a, err := ParseAlias(ctx)
			if err != Success {
				return ast.Document{}, err
			}
			m := section()
			m.Aliases = append(m.Aliases, a)
		case lexer.KW_OBJECT:
			o, err := ParseObject(ctx)
			if err != Success {
				return ast.Document{}, err
			}
			m := section()
			m.Objects = append(m.Objects, o)
		case lexer.KW_EXTEND:
			x, err := ParseExtension(ctx)
			if err != Success {
				return ast.Document{}, err
			}
			m := section()
			m.Extensions = append(m.Extensions, x)
		case lexer.IDENTIFIER:
			f, err := ParseFunction(ctx)
			if err != Success {
				return ast.Document{}, err
			}
			m := section()
			m.Functions = append(m.Functions, f)
		default:
			return ast.Document{}, Failure
		}
	}
	return doc, Success
}

// parseModuleHeader parses `module SimplePath ;`.
func parseModuleHeader(ctx *State) (ast.SimplePath, Errc) {
	ctx.NextToken()
	name, err := ParseSimplePath(ctx)
	if err != Success {
		if err == NotMySyntax {
			return ast.SimplePath{}, ExpectedIdentifier
		}
		return ast.SimplePath{}, err
	}
	if ctx.Current.Type != lexer.DC_TERMINATOR {
		return ast.SimplePath{}, ExpectedTerminator
	}
	ctx.NextToken()
	return name, Success
}

// ParseVariable parses `(var|const|static) IDENT : Type [= init] ;`. The
// initializer is collected as raw lexemes; expression parsing is not
// implemented yet.
func ParseVariable(ctx *State) (ast.Variable, Errc) {
	var storage ast.StorageClass
	switch ctx.Current.Type {
	case lexer.KW_VAR:
		storage = ast.StorageVar
	case lexer.KW_CONST:
		storage = ast.StorageConst
	case lexer.KW_STATIC:
		storage = ast.StorageStatic
	default:
		return ast.Variable{}, NotMySyntax
	}
	ctx.NextToken()
	if ctx.Current.Type != lexer.IDENTIFIER {
		return ast.Variable{}, ExpectedIdentifier
	}
	node := ast.Variable{Storage: storage, Name: ctx.Current.Lexeme}
	ctx.NextToken()
	if ctx.Current.Type != lexer.DC_COLON {
		return ast.Variable{}, ExpectedColon
	}
	ctx.NextToken()
	vt, err := ParseType(ctx)
	if err != Success {
		if err == NotMySyntax {
			return ast.Variable{}, ExpectedType
		}
		return ast.Variable{}, err
	}
	node.VarType = vt
	if ctx.Current.Type == lexer.OP_ASSIGN {
		ctx.NextToken()
		var parts []string
		for ctx.Current.Type != lexer.DC_TERMINATOR {
			if ctx.Current.Type == lexer.EOS {
				return ast.Variable{}, ExpectedTerminator
			}
			parts = append(parts, ctx.Current.Lexeme)
			ctx.NextToken()
		}
		node.Init = strings.Join(parts, " ")
	}
	if ctx.Current.Type != lexer.DC_TERMINATOR {
		return ast.Variable{}, ExpectedTerminator
	}
	ctx.NextToken()
	return node, Success
}

// ParseAlias parses `alias IDENT = Type ;`.
func ParseAlias(ctx *State) (ast.Alias, Errc) {
	if ctx.Current.Type != lexer.KW_ALIAS {
		return ast.Alias{}, NotMySyntax
	}
	ctx.NextToken()
	if ctx.Current.Type != lexer.IDENTIFIER {
		return ast.Alias{}, ExpectedIdentifier
	}
	node := ast.Alias{Name: ctx.Current.Lexeme}
	ctx.NextToken()
	if ctx.Current.Type != lexer.OP_ASSIGN {
		return ast.Alias{}, ExpectedAssign
	}
	ctx.NextToken()
	t, err := ParseType(ctx)
	if err != Success {
		if err == NotMySyntax {
			return ast.Alias{}, ExpectedType
		}
		return ast.Alias{}, err
	}
	node.Aliased = t
	if ctx.Current.Type != lexer.DC_TERMINATOR {
		return ast.Alias{}, ExpectedTerminator
	}
	ctx.NextToken()
	return node, Success
}

// ParseFunction parses `IDENT ( params ) : Type { body }`. Parameters are
// `IDENT : [...] Type`; an ellipsis marks the parameter variadic. The body
// is collected as a raw balanced-brace span; statement parsing is not
// implemented yet.
func ParseFunction(ctx *State) (ast.Function, Errc) {
	if ctx.Current.Type != lexer.IDENTIFIER {
		return ast.Function{}, NotMySyntax
	}
	node := ast.Function{Name: ctx.Current.Lexeme}
	ctx.NextToken()
	if ctx.Current.Type != lexer.DC_LPAREN {
		return ast.Function{}, Failure
	}
	ctx.NextToken()
	for ctx.Current.Type != lexer.DC_RPAREN {
		if ctx.Current.Type != lexer.IDENTIFIER {
			return ast.Function{}, ExpectedIdentifier
		}
		param := ast.Param{Name: ctx.Current.Lexeme}
		ctx.NextToken()
		if ctx.Current.Type != lexer.DC_COLON {
			return ast.Function{}, ExpectedColon
		}
		ctx.NextToken()
		if ctx.Current.Type == lexer.OP_ELLIPSIS {
			param.Variadic = true
			ctx.NextToken()
		}
		pt, err := ParseType(ctx)
		if err != Success {
			if err == NotMySyntax {
				return ast.Function{}, ExpectedType
			}
			return ast.Function{}, err
		}
		param.PType = pt
		node.Params = append(node.Params, param)
		if ctx.Current.Type == lexer.DC_COMMA {
			ctx.NextToken()
		} else if ctx.Current.Type != lexer.DC_RPAREN {
			return ast.Function{}, Failure
		}
	}
	ctx.NextToken()
	if ctx.Current.Type != lexer.DC_COLON {
		return ast.Function{}, ExpectedColon
	}
	ctx.NextToken()
	out, err := ParseType(ctx)
	if err != Success {
		if err == NotMySyntax {
			return ast.Function{}, ExpectedType
		}
		return ast.Function{}, err
	}
	node.Output = out
	body, berr := parseRawBody(ctx)
	if berr != Success {
		return ast.Function{}, berr
	}
	node.Body = body
	return node, Success
}

// ParseObject parses `object IDENT { members }` where members are
// variables, functions, and nested objects.
func ParseObject(ctx *State) (ast.Object, Errc) {
	if ctx.Current.Type != lexer.KW_OBJECT {
		return ast.Object{}, NotMySyntax
	}
	ctx.NextToken()
	if ctx.Current.Type != lexer.IDENTIFIER {
		return ast.Object{}, ExpectedIdentifier
	}
	node := ast.Object{Name: ctx.Current.Lexeme}
	ctx.NextToken()
	if ctx.Current.Type != lexer.DC_LBRACE {
		return ast.Object{}, ExpectedLBrace
	}
	ctx.NextToken()
	for {
		skipComments(ctx)
		switch ctx.Current.Type {
		case lexer.DC_RBRACE:
			ctx.NextToken()
			return node, Success
		case lexer.EOS:
			return ast.Object{}, ExpectedRBrace
		case lexer.KW_VAR, lexer.KW_CONST, lexer.KW_STATIC:
			v, err := ParseVariable(ctx)
			if err != Success {
				return ast.Object{}, err
			}
			node.Variables = append(node.Variables, v)
		case lexer.KW_OBJECT:
			o, err := ParseObject(ctx)
			if err != Success {
				return ast.Object{}, err
			}
			node.Objects = append(node.Objects, o)
		case lexer.IDENTIFIER:
			f, err := ParseFunction(ctx)
			if err != Success {
				return ast.Object{}, err
			}
			node.Functions = append(node.Functions, f)
		default:
			return ast.Object{}, Failure
		}
	}
}

// ParseExtension parses `extend IDENT { … }`, skipping the body.
func ParseExtension(ctx *State) (ast.Extension, Errc) {
	if ctx.Current.Type != lexer.KW_EXTEND {
		return ast.Extension{}, NotMySyntax
	}
	ctx.NextToken()
	if ctx.Current.Type != lexer.IDENTIFIER {
		return ast.Extension{}, ExpectedIdentifier
	}
	node := ast.Extension{Name: ctx.Current.Lexeme}
	ctx.NextToken()
	if _, err := parseRawBody(ctx); err != Success {
		return ast.Extension{}, err
	}
	return node, Success
}

// parseRawBody consumes a balanced-brace span starting at '{' and returns
// the joined lexemes between the outer braces. On success Current points
// past the closing brace.
func parseRawBody(ctx *State) (string, Errc) {
	if ctx.Current.Type != lexer.DC_LBRACE {
		return "", ExpectedLBrace
	}
	ctx.NextToken()
	depth := 1
	var parts []string
	for depth > 0 {
		switch ctx.Current.Type {
		case lexer.EOS:
			return "", ExpectedRBrace
		case lexer.DC_LBRACE:
			depth++
		case lexer.DC_RBRACE:
			depth--
		}
		if depth > 0 {
			parts = append(parts, ctx.Current.Lexeme)
		}
		ctx.NextToken()
	}
	return strings.Join(parts, " "), Success
}

func skipComments(ctx *State) {
	for ctx.Current.Type == lexer.COMMENT {
		ctx.NextToken()
	}
}
