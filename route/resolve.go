package route

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/fxroute/bfs"
	"github.com/katalvlaran/fxroute/core"
)

// Resolve reconstructs the forward route from state and compounds its rate.
//
// Implementation:
//   - Stage 1: source == destination ⇒ Rate 1, Codes [source]; the code must be in g when g is given.
//   - Stage 2: destination absent from state ⇒ ErrNoRouteFound.
//   - Stage 3: walk predecessors back to source, then reverse.
//   - Stage 4: multiply the rate of each consecutive edge into an accumulator starting at 1.
//
// Errors:
//   - ErrNoRouteFound (wrapped, naming both codes).
//   - core.ErrUnknownCurrency (wrapped) for an identity query on a code absent from g.
//   - ErrStateMismatch if state is nil, was computed for another source or
//     destination, or its predecessor chain is broken or leaves the graph.
//
// Complexity:
//   - Time O(H·d) for H hops and out-degree d of the visited nodes, Space O(H).
func Resolve(g *core.Graph, state *bfs.SearchState, source, destination core.Code) (Route, error) {
	if source == destination {
		if g != nil && !g.HasCode(source) {
			return Route{}, fmt.Errorf("%w: %s", core.ErrUnknownCurrency, source)
		}
		return Route{
			Source:      source,
			Destination: destination,
			Codes:       []core.Code{source},
			Rate:        decimal.NewFromInt(1),
		}, nil
	}
	if g == nil || state == nil {
		return Route{}, fmt.Errorf("%w: nil graph or state", ErrStateMismatch)
	}
	if state.Source != source {
		return Route{}, fmt.Errorf("%w: state searched from %s, query from %s", ErrStateMismatch, state.Source, source)
	}
	// an early-stopped search for another destination says nothing about this one
	if state.Destination != destination {
		return Route{}, fmt.Errorf("%w: state searched for %s, query for %s", ErrStateMismatch, state.Destination, destination)
	}
	hops, ok := state.Distance[destination]
	if !ok {
		return Route{}, fmt.Errorf("%w: %s -> %s", ErrNoRouteFound, source, destination)
	}

	codes, err := walkBack(state, source, destination, hops)
	if err != nil {
		return Route{}, err
	}
	rate, err := compound(g, codes)
	if err != nil {
		return Route{}, err
	}

	return Route{Source: source, Destination: destination, Codes: codes, Rate: rate}, nil
}

// walkBack follows predecessor links from destination to source and returns
// the forward sequence. The chain may not be longer than hops.
func walkBack(state *bfs.SearchState, source, destination core.Code, hops int) ([]core.Code, error) {
	codes := make([]core.Code, hops+1)
	cur := destination
	for i := hops; i > 0; i-- {
		codes[i] = cur
		prev, ok := state.Predecessor[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %s has no predecessor", ErrStateMismatch, cur)
		}
		cur = prev
	}
	if cur != source {
		return nil, fmt.Errorf("%w: chain from %s ends at %s, not %s", ErrStateMismatch, destination, cur, source)
	}
	codes[0] = source

	return codes, nil
}

// compound multiplies the rate of every consecutive pair in codes.
func compound(g *core.Graph, codes []core.Code) (decimal.Decimal, error) {
	rate := decimal.NewFromInt(1)
	for i := 0; i+1 < len(codes); i++ {
		e, ok := g.Edge(codes[i], codes[i+1])
		if !ok {
			return decimal.Decimal{}, fmt.Errorf("%w: no edge %s -> %s", ErrStateMismatch, codes[i], codes[i+1])
		}
		rate = rate.Mul(e.Rate)
	}

	return rate, nil
}

// Legs returns the individual conversions of r with their rates, looked up in g.
func Legs(g *core.Graph, r Route) ([]core.Quote, error) {
	legs := make([]core.Quote, 0, r.Hops())
	for i := 0; i+1 < len(r.Codes); i++ {
		e, ok := g.Edge(r.Codes[i], r.Codes[i+1])
		if !ok {
			return nil, fmt.Errorf("%w: no edge %s -> %s", ErrStateMismatch, r.Codes[i], r.Codes[i+1])
		}
		legs = append(legs, core.Quote{From: e.From, To: e.To, Rate: e.Rate})
	}

	return legs, nil
}
