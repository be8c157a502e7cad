// Package core defines the currency graph: codes, quotes, directed conversion
// edges and the immutable Graph built from a rate table.
//
// The Graph G = (V,E) is an arena of currency nodes:
//
//   - Every distinct code seen on either side of a quote becomes a node,
//     so destination-only currencies are valid lookup targets.
//   - Edges are directed; "EURUSD" yields EUR→USD only. A reverse edge exists
//     only if the table also carries "USDEUR".
//   - Edges reference their target by Code, not by pointer, so the graph holds
//     no reference cycles.
//   - Nodes keep their outgoing edges in insertion order.
//
// Why an immutable arena?
//
//	Search bookkeeping (visited, distance, predecessor) never lives on a node.
//	Once Build or FromQuotes returns, the Graph is read-only and may be shared
//	by any number of goroutines without locking.
//
// Construction:
//
//	// From a map; keys are visited in sorted order for reproducibility.
//	g, err := core.Build(map[string]decimal.Decimal{
//	    "EURUSD": decimal.RequireFromString("1.0842"),
//	    "USDJPY": decimal.RequireFromString("151.37"),
//	})
//
//	// From an ordered sequence; edge order is exactly input order.
//	g, err := core.FromQuotes([]core.Quote{q1, q2})
//
// Errors:
//
//	ErrInvalidPairFormat - a pair is not two 3-letter uppercase codes.
//	ErrNonPositiveRate   - a rate is zero or negative.
//	ErrDuplicateRate     - the same directed pair is supplied twice.
//	ErrUnknownCurrency   - a lookup names a code absent from the graph.
//
// Complexity:
//
//	Build/FromQuotes: O(E log E) for Build (key sort), O(E) for FromQuotes.
//	HasCode, Edge lookups: O(1) and O(deg(v)) respectively.
package core
