// File: builder.go
// Role: Graph construction from a rate table (map) or an ordered quote sequence.
// Determinism:
//   - Build visits map keys in sorted order.
//   - FromQuotes keeps edge order exactly as supplied.
//   - Node order is first appearance: a quote contributes From, then To.
// Concurrency:
//   - Construction is single-goroutine; the returned Graph is read-only.

package core

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Build parses a rate table keyed by 6-letter pairs into a Graph.
//
// Implementation:
//   - Stage 1: Sort the keys so that edge insertion order does not depend on map iteration.
//   - Stage 2: Parse each key/rate into a Quote (ErrInvalidPairFormat, ErrNonPositiveRate).
//   - Stage 3: Delegate to FromQuotes.
//
// Errors:
//   - ErrInvalidPairFormat, ErrNonPositiveRate (wrapped, naming the key).
//
// Complexity:
//   - Time O(E log E), Space O(V + E).
func Build(table map[string]decimal.Decimal) (*Graph, error) {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	quotes := make([]Quote, 0, len(keys))
	for _, k := range keys {
		q, err := ParseQuote(k, table[k])
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}

	return FromQuotes(quotes)
}

// FromQuotes builds a Graph from quotes in the given order.
//
// Every quote is validated again, since a Quote may be assembled by hand.
// A second quote for the same directed pair is rejected with ErrDuplicateRate
// rather than overwriting the first.
//
// Complexity:
//   - Time O(E), Space O(V + E).
func FromQuotes(quotes []Quote) (*Graph, error) {
	g := newGraph(len(quotes))
	seen := make(map[pairKey]struct{}, len(quotes))
	for i, q := range quotes {
		if !isCode(string(q.From)) || !isCode(string(q.To)) {
			return nil, fmt.Errorf("%w: quote #%d %q", ErrInvalidPairFormat, i, q.Pair())
		}
		if !q.Rate.IsPositive() {
			return nil, fmt.Errorf("%w: %s = %s", ErrNonPositiveRate, q.Pair(), q.Rate)
		}
		key := pairKey{q.From, q.To}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRate, q.Pair())
		}
		seen[key] = struct{}{}

		from := g.ensureNode(q.From)
		g.ensureNode(q.To)
		g.nodes[from].edges = append(g.nodes[from].edges, Edge{From: q.From, To: q.To, Rate: q.Rate})
		g.edgeN++
	}

	return g, nil
}

// pairKey identifies a directed pair regardless of its rate.
type pairKey struct{ from, to Code }

// ensureNode returns the arena slot of c, appending a new node on first sight.
func (g *Graph) ensureNode(c Code) int {
	if i, ok := g.index[c]; ok {
		return i
	}
	g.nodes = append(g.nodes, node{code: c})
	i := len(g.nodes) - 1
	g.index[c] = i

	return i
}
