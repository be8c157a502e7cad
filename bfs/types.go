// Package bfs provides tunable options, error definitions and the per-query
// SearchState for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/fxroute/core"
)

// Sentinel errors for search execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures Search behavior via functional arguments.
// If an Option is invalid (e.g. negative hop limit), it will be recorded
// internally and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a currency is discovered and enqueued.
	// Receives the code and its hop distance from the source.
	OnEnqueue func(code core.Code, hops int)

	// OnDequeue is called immediately before visiting a currency.
	OnDequeue func(code core.Code, hops int)

	// OnVisit is called when visiting a currency. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(code core.Code, hops int) error

	// MaxHops, if > 0, stops exploring beyond this many conversions.
	// A value of 0 disables the limit.
	MaxHops int

	// StopAtDestination ends the search as soon as the destination is discovered.
	StopAtDestination bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no hop limit (MaxHops == 0)
//   - exhaustive search (StopAtDestination == false)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(core.Code, int) {},
		OnDequeue: func(core.Code, int) {},
		OnVisit:   func(core.Code, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(code core.Code, hops int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(code core.Code, hops int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(code core.Code, hops int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxHops bounds the length of any discovered route.
//
//	n > 0: limit to n conversions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxHops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxHops cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxHops = n
	}
}

// WithStopAtDestination ends the search once the destination is discovered.
// The destination's distance and predecessor are final at discovery, so the
// resulting route is the same as with an exhaustive search.
func WithStopAtDestination() Option {
	return func(o *Options) { o.StopAtDestination = true }
}

// SearchState is the per-query result of Search.
//
// It is created fresh for every call and never shared with the graph,
// so concurrent searches on one graph cannot interfere.
type SearchState struct {
	// Source and Destination are the query endpoints.
	Source      core.Code
	Destination core.Code

	// Order is the visit sequence.
	Order []core.Code

	// Distance maps each discovered code to its hop count from Source.
	Distance map[core.Code]int

	// Predecessor maps each discovered code (except Source) to the code it was reached from.
	Predecessor map[core.Code]core.Code
}

// Reached reports whether c was discovered.
func (s *SearchState) Reached(c core.Code) bool {
	_, ok := s.Distance[c]
	return ok
}

// DistanceTo returns the hop count of c, if discovered.
func (s *SearchState) DistanceTo(c core.Code) (int, bool) {
	d, ok := s.Distance[c]
	return d, ok
}

// PredecessorOf returns the code c was reached from. Source has none.
func (s *SearchState) PredecessorOf(c core.Code) (core.Code, bool) {
	p, ok := s.Predecessor[c]
	return p, ok
}

// PathTo reconstructs the code sequence from Source to dest.
// Returns an error if dest was not reached.
func (s *SearchState) PathTo(dest core.Code) ([]core.Code, error) {
	if _, ok := s.Distance[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	// build reversed path
	path := make([]core.Code, 0, s.Distance[dest]+1)
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := s.Predecessor[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
