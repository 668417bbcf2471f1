package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cherry-lang/cherry/core/ast"
	"github.com/cherry-lang/cherry/runtime/lexer"
)

func TestImport(t *testing.T) {
	ctx := newTestState(t, "using std;")
	imp, err := ParseImport(ctx)
	require.Equal(t, Success, err)
	assert.True(t, imp.Equal(ast.Import{Path: ast.SimplePath{Segments: []string{"std"}}}))
	assert.Equal(t, lexer.EOS, ctx.Current.Type)
}

func TestImportDottedPath(t *testing.T) {
	ctx := newTestState(t, "using std.io.file;")
	imp, err := ParseImport(ctx)
	require.Equal(t, Success, err)
	assert.True(t, imp.Equal(ast.Import{
		Path: ast.SimplePath{Segments: []string{"std", "io", "file"}},
	}))
}

func TestImportDeclines(t *testing.T) {
	ctx := newTestState(t, "module std;")
	_, err := ParseImport(ctx)
	assert.Equal(t, NotMySyntax, err)
}

func TestImportMissingPath(t *testing.T) {
	ctx := newTestState(t, "using ;")
	_, err := ParseImport(ctx)
	assert.Equal(t, ExpectedIdentifier, err)
}

func TestImportMissingTerminator(t *testing.T) {
	ctx := newTestState(t, "using std")
	_, err := ParseImport(ctx)
	assert.Equal(t, ExpectedTerminator, err)
}

func TestImportDanglingAccess(t *testing.T) {
	ctx := newTestState(t, "using std.;")
	_, err := ParseImport(ctx)
	assert.Equal(t, ExpectedIdentifier, err)
}
