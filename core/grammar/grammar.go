package grammar

import (
	"sort"
	"sync"
)

// Production is one rewrite rule. A body of exactly one Epsilon symbol is
// the empty production.
type Production struct {
	Head Symbol
	Body []Symbol
}

// Rule contributes a batch of productions to a grammar, so the engine can
// collect the whole grammar from several rule objects.
type Rule interface {
	Productions() []Production
}

// SymbolSet is an unordered set of symbols.
type SymbolSet map[Symbol]struct{}

// Add inserts the symbol and reports whether it was new.
func (s SymbolSet) Add(sym Symbol) bool {
	if _, ok := s[sym]; ok {
		return false
	}
	s[sym] = struct{}{}
	return true
}

// Contains reports membership.
func (s SymbolSet) Contains(sym Symbol) bool {
	_, ok := s[sym]
	return ok
}

// Sorted returns the members in ascending order.
func (s SymbolSet) Sorted() []Symbol {
	out := make([]Symbol, 0, len(s))
	for sym := range s {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// NewSet builds a set from the given symbols.
func NewSet(syms ...Symbol) SymbolSet {
	s := make(SymbolSet, len(syms))
	for _, sym := range syms {
		s.Add(sym)
	}
	return s
}

// Grammar holds the merged production set of its rules and computes FIRST
// and FOLLOW sets as static data for parser-table construction. Both
// computations are pure functions of the production set, memoized on first
// use; the memoization is guarded so concurrent first-callers observe one
// consistent result, after which the sets are read-only.
type Grammar struct {
	start Symbol
	prods []Production

	firstOnce  sync.Once
	followOnce sync.Once
	firsts     map[Symbol]SymbolSet
	follows    map[Symbol]SymbolSet
}

// New merges the productions of every rule, in rule order, into a grammar
// whose start symbol seeds the FOLLOW computation.
func New(start Symbol, rules ...Rule) *Grammar {
	g := &Grammar{start: start}
	for _, rule := range rules {
		g.prods = append(g.prods, rule.Productions()...)
	}
	return g
}

// Start returns the start symbol.
func (g *Grammar) Start() Symbol {
	return g.start
}

// Productions returns the merged production set in collection order.
func (g *Grammar) Productions() []Production {
	return g.prods
}

// FirstSets returns FIRST for every production head.
func (g *Grammar) FirstSets() map[Symbol]SymbolSet {
	g.firstOnce.Do(g.computeFirsts)
	return g.firsts
}

// FollowSets returns FOLLOW for the start symbol and every non-terminal that
// appears in a production body, whether or not it is reachable from the
// start symbol. Sets that stay empty are left out.
func (g *Grammar) FollowSets() map[Symbol]SymbolSet {
	g.followOnce.Do(g.computeFollows)
	return g.follows
}

// firstsOf computes FIRST of a symbol sequence against the sets gathered so
// far. An exhausted sequence whose every member derives epsilon yields
// epsilon itself.
func firstsOf(seq []Symbol, firsts map[Symbol]SymbolSet) SymbolSet {
	result := make(SymbolSet)
	for _, sym := range seq {
		if sym.IsLeaf() {
			result.Add(sym)
			return result
		}
		set := firsts[sym]
		for member := range set {
			if member != Epsilon {
				result.Add(member)
			}
		}
		if !set.Contains(Epsilon) {
			return result
		}
	}
	result.Add(Epsilon)
	return result
}

// computeFirsts iterates the production set in reverse order to a fix
// point. The reverse order converges faster on grammars whose start rules
// come first; correctness does not depend on it.
func (g *Grammar) computeFirsts() {
	firsts := make(map[Symbol]SymbolSet)
	for _, p := range g.prods {
		if _, ok := firsts[p.Head]; !ok {
			firsts[p.Head] = make(SymbolSet)
		}
	}
	for changed := true; changed; {
		changed = false
		for i := len(g.prods) - 1; i >= 0; i-- {
			p := g.prods[i]
			set := firsts[p.Head]
			for member := range firstsOf(p.Body, firsts) {
				if set.Add(member) {
					changed = true
				}
			}
		}
	}
	g.firsts = firsts
}

// computeFollows seeds the start symbol with the end-of-input sentinel and
// propagates through every production to a fix point.
func (g *Grammar) computeFollows() {
	firsts := g.FirstSets()
	follows := map[Symbol]SymbolSet{
		g.start: NewSet(Final),
	}
	ensure := func(sym Symbol) SymbolSet {
		set, ok := follows[sym]
		if !ok {
			set = make(SymbolSet)
			follows[sym] = set
		}
		return set
	}
	for changed := true; changed; {
		changed = false
		for i := len(g.prods) - 1; i >= 0; i-- {
			head, body := g.prods[i].Head, g.prods[i].Body
			for pos, sym := range body {
				if sym.IsLeaf() {
					continue
				}
				set := ensure(sym)
				rest := firstsOf(body[pos+1:], firsts)
				for member := range rest {
					if member == Epsilon {
						continue
					}
					if set.Add(member) {
						changed = true
					}
				}
				if rest.Contains(Epsilon) {
					for member := range ensure(head) {
						if set.Add(member) {
							changed = true
						}
					}
				}
			}
		}
	}
	// Entries created only as propagation scaffolding stay empty; drop
	// them so callers see exactly the populated sets.
	for sym, set := range follows {
		if len(set) == 0 {
			delete(follows, sym)
		}
	}
	g.follows = follows
}
