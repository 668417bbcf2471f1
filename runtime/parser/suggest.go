package parser

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/cherry-lang/cherry/runtime/lexer"
)

// maxSuggestions bounds how many near-miss keywords a diagnostic carries.
const maxSuggestions = 3

// keywordSuggestions ranks the lexeme against the keyword table and returns
// the closest spellings, best first. An identifier nothing ranks against
// yields no suggestions.
func keywordSuggestions(lexeme string) []string {
	ranks := fuzzy.RankFindFold(lexeme, lexer.KeywordNames())
	if len(ranks) == 0 {
		return nil
	}
	sort.Sort(ranks)
	n := len(ranks)
	if n > maxSuggestions {
		n = maxSuggestions
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = ranks[i].Target
	}
	return out
}
