// Package bfs provides breadth-first search over a core.Graph, returning
// minimum hop-count distances, predecessor links, and visit order in a
// per-query SearchState.
//
// What
//
//   - Explore currencies in non-decreasing conversion count from a source.
//   - Returns a SearchState containing:
//   - Order: visit sequence
//   - Distance: map from code → hops from the source
//   - Predecessor: map from code → the code it was first reached from
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a currency is first discovered)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Honors a MaxHops limit (n>0) or explicit "no limit" (n==0).
//   - Can stop as soon as the destination is discovered.
//
// Why
//
//   - Every conversion costs one hop, so BFS yields the route with the
//     fewest intermediate currencies in O(V + E) time.
//   - All bookkeeping lives in the SearchState, never on the graph, so one
//     immutable graph can serve any number of concurrent searches.
//
// Determinism
//
//	Outgoing edges are relaxed in the order they were added to the graph,
//	and the frontier is a FIFO queue, so among several equally short routes
//	the same one is chosen on every run.
//
// Complexity (V = |currencies|, E = |conversions|)
//
//   - Time:   O(V + E)   (each currency dequeued once, each edge relaxed once)
//   - Memory: O(V)       (queue, Distance and Predecessor maps)
//
// Usage
//
//	state, err := bfs.Search(g, "GEL", "HKD")
//	if err != nil {
//	    // ErrGraphNil, core.ErrUnknownCurrency, ErrOptionViolation,
//	    // context errors, or hook errors
//	}
//	if !state.Reached("HKD") {
//	    // unreachable
//	}
//
//	// With functional options:
//	state, err := bfs.Search(
//	    g, "GEL", "HKD",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxHops(4),
//	    bfs.WithStopAtDestination(),
//	    bfs.WithOnEnqueue(func(c core.Code, hops int) { /* ... */ }),
//	)
//
// Errors
//
//   - ErrGraphNil              if the graph pointer is nil.
//   - core.ErrUnknownCurrency  if source or destination is not in the graph.
//   - ErrOptionViolation       if an Option is invalid (e.g. negative MaxHops).
//   - ctx.Err()                if the context is cancelled mid-search.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
