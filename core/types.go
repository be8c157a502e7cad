// Package core defines the central Code, Quote, Edge and Graph types.
//
// This file declares the sentinel errors, the value types and the Graph arena.
package core

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Sentinel errors for graph construction and lookups.
var (
	// ErrInvalidPairFormat indicates a pair key is not exactly two 3-letter uppercase codes.
	ErrInvalidPairFormat = errors.New("core: invalid currency pair format")

	// ErrInvalidCode indicates a single currency code is not 3 uppercase letters.
	ErrInvalidCode = errors.New("core: invalid currency code")

	// ErrNonPositiveRate indicates a rate less than or equal to zero.
	ErrNonPositiveRate = errors.New("core: rate must be positive")

	// ErrDuplicateRate indicates the same directed pair appeared twice in the input.
	ErrDuplicateRate = errors.New("core: duplicate rate for currency pair")

	// ErrUnknownCurrency indicates a lookup referenced a code absent from the graph.
	ErrUnknownCurrency = errors.New("core: unknown currency")
)

// CodeLen is the length of a currency code; a pair key is twice as long.
const CodeLen = 3

// Code is a 3-letter uppercase currency identifier, e.g. "GEL".
type Code string

// String implements fmt.Stringer.
func (c Code) String() string { return string(c) }

// Quote is one row of a rate table: converting one unit of From yields Rate units of To.
type Quote struct {
	From Code
	To   Code
	Rate decimal.Decimal
}

// Pair returns the 6-letter key of the quote, e.g. "GELEGP".
func (q Quote) Pair() string { return string(q.From) + string(q.To) }

// String implements fmt.Stringer.
func (q Quote) String() string { return fmt.Sprintf("%s->%s@%s", q.From, q.To, q.Rate) }

// Edge is a directed conversion From→To.
//
// To names the target node by code; the Graph owns every node.
// Edges are returned by value and never mutated after construction.
type Edge struct {
	// From is the source currency.
	From Code

	// To is the destination currency.
	To Code

	// Rate is the multiplicative factor applied when converting From into To.
	Rate decimal.Decimal
}

// node is one arena slot: a currency and its outgoing edges in insertion order.
type node struct {
	code  Code
	edges []Edge
}

// Graph is an immutable directed currency graph.
//
// nodes is the arena in first-appearance order; index maps a code to its slot.
// No field is written after Build/FromQuotes returns, so a *Graph is safe for
// concurrent readers.
type Graph struct {
	nodes []node
	index map[Code]int
	edgeN int
}

// newGraph allocates an empty graph sized for roughly n quotes.
func newGraph(n int) *Graph {
	return &Graph{
		nodes: make([]node, 0, n),
		index: make(map[Code]int, n),
	}
}
