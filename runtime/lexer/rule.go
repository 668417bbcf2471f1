package lexer

// Rule is one pluggable scanner. Litmus is a cheap prefix check over the
// remaining source and must not advance the state; Tokenize may advance and
// either produces a token or reports the rule's own error kind. The analyzer
// never calls Tokenize without Litmus having accepted the same remaining
// source first.
type Rule interface {
	Litmus(source string) bool
	Tokenize(st *State) (Token, Errc)
}

// DefaultRules returns the ruleset in dispatch order; the first accepting
// rule wins. The litmus checks of these rules are disjoint (the keyword rule
// declines r""" and the decimal rule declines 0b, 0x and a zero before a
// digit), so no input is accepted by two of them.
func DefaultRules() []Rule {
	return []Rule{
		CommentRule{},
		KeywordRule{},
		BinaryRule{},
		OctalRule{},
		DecimalRule{},
		HexadecimalRule{},
		CharacterRule{},
		StringRule{},
		OperatorRule{},
	}
}
