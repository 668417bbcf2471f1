package grammar

import (
	"sort"

	"github.com/fxamacker/cbor/v2"
)

// ProductionEntry is one production flattened to raw symbol values.
type ProductionEntry struct {
	Head int16   `cbor:"head" json:"head"`
	Body []int16 `cbor:"body" json:"body"`
}

// SetEntry is one FIRST or FOLLOW set flattened to sorted raw values.
type SetEntry struct {
	Symbol  int16   `cbor:"symbol" json:"symbol"`
	Members []int16 `cbor:"members" json:"members"`
}

// Tables is the stable, serializable form of a grammar: productions in
// collection order, set entries sorted by symbol, members sorted ascending.
// Encoding the same grammar twice yields identical bytes.
type Tables struct {
	Start       int16             `cbor:"start" json:"start"`
	Productions []ProductionEntry `cbor:"productions" json:"productions"`
	Firsts      []SetEntry        `cbor:"firsts" json:"firsts"`
	Follows     []SetEntry        `cbor:"follows" json:"follows"`
}

// Export flattens the grammar and both set families into Tables.
func (g *Grammar) Export() Tables {
	t := Tables{Start: int16(g.start)}
	for _, p := range g.prods {
		body := make([]int16, len(p.Body))
		for i, sym := range p.Body {
			body[i] = int16(sym)
		}
		t.Productions = append(t.Productions, ProductionEntry{
			Head: int16(p.Head),
			Body: body,
		})
	}
	t.Firsts = flattenSets(g.FirstSets())
	t.Follows = flattenSets(g.FollowSets())
	return t
}

// CBOR encodes the tables with the cbor codec's default encoding options.
func (t Tables) CBOR() ([]byte, error) {
	return cbor.Marshal(t)
}

// DecodeTables restores tables from their cbor encoding.
func DecodeTables(data []byte) (Tables, error) {
	var t Tables
	err := cbor.Unmarshal(data, &t)
	return t, err
}

func flattenSets(sets map[Symbol]SymbolSet) []SetEntry {
	entries := make([]SetEntry, 0, len(sets))
	for sym, set := range sets {
		sorted := set.Sorted()
		members := make([]int16, len(sorted))
		for i, m := range sorted {
			members[i] = int16(m)
		}
		entries = append(entries, SetEntry{
			Symbol:  int16(sym),
			Members: members,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Symbol < entries[j].Symbol
	})
	return entries
}
