package lexer

import "math"

// Leaf identifies the terminal class of a token. Every token the analyzer
// produces is a leaf of the grammar, so the parser only ever needs this one
// taxonomy. Values stay below LeafUpperLimit so that grammar symbols can
// discriminate terminals from non-terminals by comparison alone.
type Leaf int16

// LeafUpperLimit is the exclusive upper bound for terminal values. Grammar
// non-terminals start at this value.
const LeafUpperLimit = math.MaxInt16 / 2

const (
	// EOS marks the end of the source code.
	EOS Leaf = iota - 1

	// UNKNOWN is produced when a token cannot be classified at all. It
	// represents an error within the source.
	UNKNOWN

	// COMMENT tokens are commonly ignored by the parser but are produced
	// anyway so that documentation tooling can pick them up.
	COMMENT

	// IDENTIFIER is any alphanumeric/underscore run that is not a keyword.
	IDENTIFIER

	// Literals.
	LV_SIGNED
	LV_UNSIGNED
	LV_DECIMAL
	LV_CHARACTER
	LV_RAW_STRING
	LV_INT_STRING
	LV_ML_STRING
	LV_MLI_STRING
	LV_NULL
	LV_TRUE
	LV_FALSE

	// Keywords.
	KW_VAR
	KW_CONST
	KW_STATIC
	KW_OBJECT
	KW_EXTEND
	KW_DEF
	KW_ALIAS
	KW_BOOL
	KW_CHAR
	KW_INT8
	KW_INT16
	KW_INT32
	KW_INT64
	KW_UINT8
	KW_UINT16
	KW_UINT32
	KW_UINT64
	KW_SINGLE
	KW_DOUBLE
	KW_STRING
	KW_VOID
	KW_USING
	KW_MODULE
	KW_EXTERN

	// Control flow.
	CF_IF
	CF_ELSE
	CF_FOR
	CF_DO
	CF_WHILE
	CF_MATCH
	CF_NEXT
	CF_BREAK
	CF_AS
	CF_IS
	CF_RETURN

	// Operators.
	OP_ADD
	OP_SUB
	OP_MUL
	OP_DIV
	OP_MOD
	OP_ADD_EQ
	OP_SUB_EQ
	OP_MUL_EQ
	OP_DIV_EQ
	OP_MOD_EQ
	OP_INC
	OP_DEC
	OP_ASSIGN
	OP_ACCESS
	OP_TERNARY
	OP_CASCADE
	OP_ELLIPSIS
	OP_BITNOT
	OP_BITAND
	OP_BITOR
	OP_BITXOR
	OP_BITLSH
	OP_BITRSH
	OP_BITNOT_EQ
	OP_BITAND_EQ
	OP_BITOR_EQ
	OP_BITXOR_EQ
	OP_BITLSH_EQ
	OP_BITRSH_EQ
	OP_LOGNOT
	OP_LOGAND
	OP_LOGOR
	OP_LOGLESS
	OP_LOGMORE
	OP_LOGEQUALS
	OP_LOGNOT_EQ
	OP_LOGAND_EQ
	OP_LOGOR_EQ
	OP_LOGLESS_EQ
	OP_LOGMORE_EQ

	// Delimiters.
	DC_LPAREN
	DC_RPAREN
	DC_LBRACKET
	DC_RBRACKET
	DC_LBRACE
	DC_RBRACE
	DC_COMMA
	DC_TERMINATOR
	DC_COLON
)

// String returns the symbolic name of the leaf.
func (l Leaf) String() string {
	switch l {
	case EOS:
		return "EOS"
	case UNKNOWN:
		return "UNKNOWN"
	case COMMENT:
		return "COMMENT"
	case IDENTIFIER:
		return "IDENTIFIER"
	case LV_SIGNED:
		return "LV_SIGNED"
	case LV_UNSIGNED:
		return "LV_UNSIGNED"
	case LV_DECIMAL:
		return "LV_DECIMAL"
	case LV_CHARACTER:
		return "LV_CHARACTER"
	case LV_RAW_STRING:
		return "LV_RAW_STRING"
	case LV_INT_STRING:
		return "LV_INT_STRING"
	case LV_ML_STRING:
		return "LV_ML_STRING"
	case LV_MLI_STRING:
		return "LV_MLI_STRING"
	case LV_NULL:
		return "LV_NULL"
	case LV_TRUE:
		return "LV_TRUE"
	case LV_FALSE:
		return "LV_FALSE"
	case KW_VAR:
		return "KW_VAR"
	case KW_CONST:
		return "KW_CONST"
	case KW_STATIC:
		return "KW_STATIC"
	case KW_OBJECT:
		return "KW_OBJECT"
	case KW_EXTEND:
		return "KW_EXTEND"
	case KW_DEF:
		return "KW_DEF"
	case KW_ALIAS:
		return "KW_ALIAS"
	case KW_BOOL:
		return "KW_BOOL"
	case KW_CHAR:
		return "KW_CHAR"
	case KW_INT8:
		return "KW_INT8"
	case KW_INT16:
		return "KW_INT16"
	case KW_INT32:
		return "KW_INT32"
	case KW_INT64:
		return "KW_INT64"
	case KW_UINT8:
		return "KW_UINT8"
	case KW_UINT16:
		return "KW_UINT16"
	case KW_UINT32:
		return "KW_UINT32"
	case KW_UINT64:
		return "KW_UINT64"
	case KW_SINGLE:
		return "KW_SINGLE"
	case KW_DOUBLE:
		return "KW_DOUBLE"
	case KW_STRING:
		return "KW_STRING"
	case KW_VOID:
		return "KW_VOID"
	case KW_USING:
		return "KW_USING"
	case KW_MODULE:
		return "KW_MODULE"
	case KW_EXTERN:
		return "KW_EXTERN"
	case CF_IF:
		return "CF_IF"
	case CF_ELSE:
		return "CF_ELSE"
	case CF_FOR:
		return "CF_FOR"
	case CF_DO:
		return "CF_DO"
	case CF_WHILE:
		return "CF_WHILE"
	case CF_MATCH:
		return "CF_MATCH"
	case CF_NEXT:
		return "CF_NEXT"
	case CF_BREAK:
		return "CF_BREAK"
	case CF_AS:
		return "CF_AS"
	case CF_IS:
		return "CF_IS"
	case CF_RETURN:
		return "CF_RETURN"
	case OP_ADD:
		return "OP_ADD"
	case OP_SUB:
		return "OP_SUB"
	case OP_MUL:
		return "OP_MUL"
	case OP_DIV:
		return "OP_DIV"
	case OP_MOD:
		return "OP_MOD"
	case OP_ADD_EQ:
		return "OP_ADD_EQ"
	case OP_SUB_EQ:
		return "OP_SUB_EQ"
	case OP_MUL_EQ:
		return "OP_MUL_EQ"
	case OP_DIV_EQ:
		return "OP_DIV_EQ"
	case OP_MOD_EQ:
		return "OP_MOD_EQ"
	case OP_INC:
		return "OP_INC"
	case OP_DEC:
		return "OP_DEC"
	case OP_ASSIGN:
		return "OP_ASSIGN"
	case OP_ACCESS:
		return "OP_ACCESS"
	case OP_TERNARY:
		return "OP_TERNARY"
	case OP_CASCADE:
		return "OP_CASCADE"
	case OP_ELLIPSIS:
		return "OP_ELLIPSIS"
	case OP_BITNOT:
		return "OP_BITNOT"
	case OP_BITAND:
		return "OP_BITAND"
	case OP_BITOR:
		return "OP_BITOR"
	case OP_BITXOR:
		return "OP_BITXOR"
	case OP_BITLSH:
		return "OP_BITLSH"
	case OP_BITRSH:
		return "OP_BITRSH"
	case OP_BITNOT_EQ:
		return "OP_BITNOT_EQ"
	case OP_BITAND_EQ:
		return "OP_BITAND_EQ"
	case OP_BITOR_EQ:
		return "OP_BITOR_EQ"
	case OP_BITXOR_EQ:
		return "OP_BITXOR_EQ"
	case OP_BITLSH_EQ:
		return "OP_BITLSH_EQ"
	case OP_BITRSH_EQ:
		return "OP_BITRSH_EQ"
	case OP_LOGNOT:
		return "OP_LOGNOT"
	case OP_LOGAND:
		return "OP_LOGAND"
	case OP_LOGOR:
		return "OP_LOGOR"
	case OP_LOGLESS:
		return "OP_LOGLESS"
	case OP_LOGMORE:
		return "OP_LOGMORE"
	case OP_LOGEQUALS:
		return "OP_LOGEQUALS"
	case OP_LOGNOT_EQ:
		return "OP_LOGNOT_EQ"
	case OP_LOGAND_EQ:
		return "OP_LOGAND_EQ"
	case OP_LOGOR_EQ:
		return "OP_LOGOR_EQ"
	case OP_LOGLESS_EQ:
		return "OP_LOGLESS_EQ"
	case OP_LOGMORE_EQ:
		return "OP_LOGMORE_EQ"
	case DC_LPAREN:
		return "DC_LPAREN"
	case DC_RPAREN:
		return "DC_RPAREN"
	case DC_LBRACKET:
		return "DC_LBRACKET"
	case DC_RBRACKET:
		return "DC_RBRACKET"
	case DC_LBRACE:
		return "DC_LBRACE"
	case DC_RBRACE:
		return "DC_RBRACE"
	case DC_COMMA:
		return "DC_COMMA"
	case DC_TERMINATOR:
		return "DC_TERMINATOR"
	case DC_COLON:
		return "DC_COLON"
	default:
		return "UNKNOWN"
	}
}

// Keywords maps reserved lexemes to their leaves. Lexemes missing from this
// table classify as IDENTIFIER.
var Keywords = map[string]Leaf{
	"null":   LV_NULL,
	"true":   LV_TRUE,
	"false":  LV_FALSE,
	"var":    KW_VAR,
	"const":  KW_CONST,
	"static": KW_STATIC,
	"object": KW_OBJECT,
	"extend": KW_EXTEND,
	"def":    KW_DEF,
	"alias":  KW_ALIAS,
	"bool":   KW_BOOL,
	"char":   KW_CHAR,
	"int8":   KW_INT8,
	"int16":  KW_INT16,
	"int32":  KW_INT32,
	"int64":  KW_INT64,
	"uint8":  KW_UINT8,
	"uint16": KW_UINT16,
	"uint32": KW_UINT32,
	"uint64": KW_UINT64,
	"single": KW_SINGLE,
	"double": KW_DOUBLE,
	"string": KW_STRING,
	"void":   KW_VOID,
	"using":  KW_USING,
	"module": KW_MODULE,
	"extern": KW_EXTERN,
	"if":     CF_IF,
	"else":   CF_ELSE,
	"for":    CF_FOR,
	"do":     CF_DO,
	"while":  CF_WHILE,
	"match":  CF_MATCH,
	"next":   CF_NEXT,
	"break":  CF_BREAK,
	"as":     CF_AS,
	"is":     CF_IS,
	"return": CF_RETURN,
}

// KeywordNames returns every reserved lexeme. Used by diagnostics to rank
// near-miss identifiers against the keyword table.
func KeywordNames() []string {
	names := make([]string, 0, len(Keywords))
	for name := range Keywords {
		names = append(names, name)
	}
	return names
}
