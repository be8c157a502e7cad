// File: methods.go
// Role: Read-only queries over an immutable Graph.
// Determinism:
//   - Codes() returns first-appearance order.
//   - Edges() and Quotes() return insertion order.
// Concurrency:
//   - No locks; nothing here writes to the Graph.
//   - Slices handed out are fresh copies, so callers may mutate them freely.

package core

import "fmt"

// HasCode reports whether c is a node of the graph.
// Complexity: O(1).
func (g *Graph) HasCode(c Code) bool {
	_, ok := g.index[c]
	return ok
}

// NodeCount returns the number of distinct currencies.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of directed conversion edges.
func (g *Graph) EdgeCount() int { return g.edgeN }

// Codes returns every currency in first-appearance order.
// Complexity: O(V).
func (g *Graph) Codes() []Code {
	out := make([]Code, len(g.nodes))
	for i := range g.nodes {
		out[i] = g.nodes[i].code
	}

	return out
}

// Edges returns a copy of the outgoing edges of c in insertion order.
//
// Errors:
//   - ErrUnknownCurrency if c is not a node.
//
// Complexity: O(deg(c)).
func (g *Graph) Edges(c Code) ([]Edge, error) {
	i, ok := g.index[c]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCurrency, c)
	}
	out := make([]Edge, len(g.nodes[i].edges))
	copy(out, g.nodes[i].edges)

	return out, nil
}

// Edge returns the directed edge from→to, if present.
// Complexity: O(deg(from)).
func (g *Graph) Edge(from, to Code) (Edge, bool) {
	i, ok := g.index[from]
	if !ok {
		return Edge{}, false
	}
	for _, e := range g.nodes[i].edges {
		if e.To == to {
			return e, true
		}
	}

	return Edge{}, false
}

// Neighbors returns the targets of c's outgoing edges in insertion order
// without copying edge rates. It is the hot path of breadth-first search.
//
// Errors:
//   - ErrUnknownCurrency if c is not a node.
func (g *Graph) Neighbors(c Code) ([]Code, error) {
	i, ok := g.index[c]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCurrency, c)
	}
	out := make([]Code, len(g.nodes[i].edges))
	for j, e := range g.nodes[i].edges {
		out[j] = e.To
	}

	return out, nil
}

// Quotes returns every edge as a Quote, grouped by source node in
// first-appearance order and, within a node, in insertion order.
// For a graph built by FromQuotes the result holds the same quotes as the input.
func (g *Graph) Quotes() []Quote {
	out := make([]Quote, 0, g.edgeN)
	for i := range g.nodes {
		for _, e := range g.nodes[i].edges {
			out = append(out, Quote{From: e.From, To: e.To, Rate: e.Rate})
		}
	}

	return out
}
