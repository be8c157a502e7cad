// Package bfs provides breadth-first search over a core.Graph,
// returning minimum hop-count distances, predecessor links, and visit order.
//
// Search explores currencies in increasing distance from a source,
// with optional hooks, a hop limit, and early exit at the destination.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/fxroute/core"
)

// queueItem pairs a code with its hop distance.
type queueItem struct {
	code core.Code
	hops int
}

// walker encapsulates mutable search state for one call.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	head  int
	done  bool
	res   *SearchState
}

// Search runs breadth-first search on g from source, recording hop distances
// and predecessors until the frontier is exhausted.
//
// If source == destination the state holds only the source at distance 0
// and no traversal is performed. An unreachable destination simply has no
// entry in the returned state.
//
// Returns ErrGraphNil for a nil graph, core.ErrUnknownCurrency (wrapped) if
// source or destination is not a node, ErrOptionViolation for bad options,
// the context error on cancellation, or any OnVisit error.
func Search(g *core.Graph, source, destination core.Code, opts ...Option) (*SearchState, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate endpoints
	if !g.HasCode(source) {
		return nil, fmt.Errorf("%w: source %s", core.ErrUnknownCurrency, source)
	}
	if !g.HasCode(destination) {
		return nil, fmt.Errorf("%w: destination %s", core.ErrUnknownCurrency, destination)
	}

	n := g.NodeCount()
	res := &SearchState{
		Source:      source,
		Destination: destination,
		Order:       make([]core.Code, 0, n),
		Distance:    make(map[core.Code]int, n),
		Predecessor: make(map[core.Code]core.Code, n),
	}
	if source == destination {
		res.Distance[source] = 0
		res.Order = append(res.Order, source)
		return res, nil
	}

	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res:   res,
	}
	// Seed queue with the source (no predecessor)
	w.enqueue(source, 0, "")

	return w.res, w.loop()
}

// enqueue records c's distance and predecessor, calls OnEnqueue,
// and appends it to the queue.
func (w *walker) enqueue(c core.Code, hops int, pred core.Code) {
	w.res.Distance[c] = hops
	if pred != "" {
		w.res.Predecessor[c] = pred
	}
	w.opts.OnEnqueue(c, hops)
	w.queue = append(w.queue, queueItem{code: c, hops: hops})
	if c == w.res.Destination && w.opts.StopAtDestination {
		w.done = true
	}
}

// loop processes the queue until empty, error, cancellation, or early exit.
func (w *walker) loop() error {
	for w.head < len(w.queue) && !w.done {
		// cancellation check (once per dequeue)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.relax(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the head of the FIFO, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[w.head]
	w.head++
	w.opts.OnDequeue(item.code, item.hops)
	return item
}

// visit records the currency in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.code)
	if err := w.opts.OnVisit(item.code, item.hops); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.code, err)
	}
	return nil
}

// relax walks item's outgoing edges in insertion order and enqueues every
// target seen for the first time. First discovery wins: with unit edge cost
// the first assignment is already minimal.
func (w *walker) relax(item queueItem) error {
	next := item.hops + 1
	if w.opts.MaxHops > 0 && next > w.opts.MaxHops {
		return nil
	}
	neighbors, err := w.graph.Neighbors(item.code)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", item.code, err)
	}
	for _, nbr := range neighbors {
		if _, seen := w.res.Distance[nbr]; seen {
			continue
		}
		w.enqueue(nbr, next, item.code)
		if w.done {
			return nil
		}
	}
	return nil
}
