package grammar

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cherry-lang/cherry/runtime/lexer"
)

// The classical expression grammar:
//
//	E  → T EP
//	EP → + T EP | ε
//	T  → F TP
//	TP → * F TP | ε
//	F  → ( E ) | id
const (
	tIdent Symbol = iota
	tAdd
	tMul
	tLparen
	tRparen
)

const (
	ntE Symbol = lexer.LeafUpperLimit + 100 + iota
	ntEP
	ntT
	ntTP
	ntF
)

type exprRule struct{}

func (exprRule) Productions() []Production {
	return []Production{
		{Head: ntE, Body: []Symbol{ntT, ntEP}},
	}
}

type exprPrimeRule struct{}

func (exprPrimeRule) Productions() []Production {
	return []Production{
		{Head: ntEP, Body: []Symbol{tAdd, ntT, ntEP}},
		{Head: ntEP, Body: []Symbol{Epsilon}},
	}
}

type termRule struct{}

func (termRule) Productions() []Production {
	return []Production{
		{Head: ntT, Body: []Symbol{ntF, ntTP}},
	}
}

type termPrimeRule struct{}

func (termPrimeRule) Productions() []Production {
	return []Production{
		{Head: ntTP, Body: []Symbol{tMul, ntF, ntTP}},
		{Head: ntTP, Body: []Symbol{Epsilon}},
	}
}

type factRule struct{}

func (factRule) Productions() []Production {
	return []Production{
		{Head: ntF, Body: []Symbol{tLparen, ntE, tRparen}},
		{Head: ntF, Body: []Symbol{tIdent}},
	}
}

func exprGrammar() *Grammar {
	return New(ntE, exprRule{}, exprPrimeRule{}, termRule{}, termPrimeRule{}, factRule{})
}

func TestCollectsProductions(t *testing.T) {
	expected := []Production{
		{Head: ntE, Body: []Symbol{ntT, ntEP}},
		{Head: ntEP, Body: []Symbol{tAdd, ntT, ntEP}},
		{Head: ntEP, Body: []Symbol{Epsilon}},
		{Head: ntT, Body: []Symbol{ntF, ntTP}},
		{Head: ntTP, Body: []Symbol{tMul, ntF, ntTP}},
		{Head: ntTP, Body: []Symbol{Epsilon}},
		{Head: ntF, Body: []Symbol{tLparen, ntE, tRparen}},
		{Head: ntF, Body: []Symbol{tIdent}},
	}
	if diff := cmp.Diff(expected, exprGrammar().Productions()); diff != "" {
		t.Errorf("production mismatch (-expected +actual):\n%s", diff)
	}
}

func TestFirstSets(t *testing.T) {
	expected := map[Symbol]SymbolSet{
		ntE:  NewSet(tIdent, tLparen),
		ntEP: NewSet(Epsilon, tAdd),
		ntT:  NewSet(tIdent, tLparen),
		ntTP: NewSet(Epsilon, tMul),
		ntF:  NewSet(tIdent, tLparen),
	}
	if diff := cmp.Diff(expected, exprGrammar().FirstSets()); diff != "" {
		t.Errorf("FIRST mismatch (-expected +actual):\n%s", diff)
	}
}

func TestFollowSets(t *testing.T) {
	expected := map[Symbol]SymbolSet{
		ntE:  NewSet(Final, tRparen),
		ntEP: NewSet(Final, tRparen),
		ntT:  NewSet(Final, tAdd, tRparen),
		ntTP: NewSet(Final, tAdd, tRparen),
		ntF:  NewSet(Final, tAdd, tMul, tRparen),
	}
	if diff := cmp.Diff(expected, exprGrammar().FollowSets()); diff != "" {
		t.Errorf("FOLLOW mismatch (-expected +actual):\n%s", diff)
	}
}

func TestSetsMemoized(t *testing.T) {
	g := exprGrammar()
	firsts := g.FirstSets()
	follows := g.FollowSets()
	// The fix point is computed once; later calls observe the same maps.
	require.Equal(t, firsts, g.FirstSets())
	require.Equal(t, follows, g.FollowSets())
	assert.NotNil(t, firsts)
	assert.NotNil(t, follows)
}

func TestSymbolDiscrimination(t *testing.T) {
	assert.True(t, tIdent.IsLeaf())
	assert.True(t, Epsilon.IsLeaf())
	assert.False(t, ntE.IsLeaf())
	assert.False(t, DOCUMENT.Sym().IsLeaf())
	assert.True(t, Symbol(lexer.KW_USING).IsLeaf())
}

func TestSymbolString(t *testing.T) {
	assert.Equal(t, "ε", Epsilon.String())
	assert.Equal(t, "$", Final.String())
	assert.Equal(t, "KW_USING", Symbol(lexer.KW_USING).String())
	assert.Equal(t, "DOCUMENT", DOCUMENT.Sym().String())
}

func TestSymbolSet(t *testing.T) {
	s := NewSet(tMul, tAdd)
	assert.True(t, s.Contains(tAdd))
	assert.False(t, s.Contains(tIdent))
	assert.False(t, s.Add(tAdd))
	assert.True(t, s.Add(tIdent))
	assert.Equal(t, []Symbol{tIdent, tAdd, tMul}, s.Sorted())
}
