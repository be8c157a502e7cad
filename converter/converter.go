// Package converter is the entry point for rate-and-route lookups.
//
// A Converter wraps one immutable core.Graph and answers any number of
// concurrent queries against it: each query runs its own breadth-first
// search and resolves the result into a route.Route with an exact
// compounded rate.
//
//	c, err := converter.NewFromTable(rates, converter.WithCache(1024))
//	defer c.Close()
//	r, err := c.Convert(ctx, "GELHKD")
//	fmt.Println(r.Rate, r) // 2.538… GEL EGP GMD CRC SEK HKD
//
// For one-off calls FindRateAndRoute does all of it in a single step.
package converter

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/fxroute/bfs"
	"github.com/katalvlaran/fxroute/config"
	"github.com/katalvlaran/fxroute/core"
	"github.com/katalvlaran/fxroute/logging"
	"github.com/katalvlaran/fxroute/ratetable"
	"github.com/katalvlaran/fxroute/route"
)

// ErrNoRates is returned by NewFromConfig when no rate file is configured.
var ErrNoRates = errors.New("converter: no rate table configured")

// Converter answers lookups over a shared read-only graph.
type Converter struct {
	graph   *core.Graph
	log     *logrus.Entry
	cache   *routeCache
	maxHops int
}

// New wraps g. The graph must not be modified afterwards; core graphs never are.
func New(g *core.Graph, opts ...Option) (*Converter, error) {
	if g == nil {
		return nil, bfs.ErrGraphNil
	}
	o := options{logger: logging.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	c := &Converter{
		graph:   g,
		log:     o.logger.WithField("component", "converter"),
		maxHops: o.maxHops,
	}
	if o.cacheSize > 0 {
		rc, err := newRouteCache(o.cacheSize)
		if err != nil {
			return nil, err
		}
		c.cache = rc
	}

	c.log.WithFields(logrus.Fields{
		"currencies":  g.NodeCount(),
		"conversions": g.EdgeCount(),
		"cache":       c.cache != nil,
		"max_hops":    c.maxHops,
	}).Info("currency graph ready")

	return c, nil
}

// NewFromTable builds the graph from a rate table and wraps it.
func NewFromTable(table map[string]decimal.Decimal, opts ...Option) (*Converter, error) {
	g, err := core.Build(table)
	if err != nil {
		return nil, err
	}

	return New(g, opts...)
}

// NewFromConfig loads cfg.Rates.File and applies the logging, cache and search settings.
func NewFromConfig(cfg *config.Config) (*Converter, error) {
	if cfg == nil || cfg.Rates.File == "" {
		return nil, ErrNoRates
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g, err := ratetable.LoadGraph(cfg.Rates.File)
	if err != nil {
		return nil, err
	}

	opts := []Option{
		WithLogger(logging.New(cfg.Log)),
		WithMaxHops(cfg.Search.MaxHops),
	}
	if cfg.Cache.Enabled {
		opts = append(opts, WithCache(cfg.Cache.MaxItems))
	}

	return New(g, opts...)
}

// Graph returns the underlying graph.
func (c *Converter) Graph() *core.Graph { return c.graph }

// Close releases the route cache, if any.
func (c *Converter) Close() {
	if c.cache != nil {
		c.cache.close()
	}
}

// Lookup finds the fewest-conversion route from → to and its compounded rate.
//
// Errors:
//   - core.ErrUnknownCurrency if either code is not in the graph.
//   - route.ErrNoRouteFound if to is unreachable (or only reachable beyond the hop limit).
//   - ctx.Err() if ctx is cancelled during the search.
func (c *Converter) Lookup(ctx context.Context, from, to core.Code) (route.Route, error) {
	fields := logrus.Fields{"from": from, "to": to}
	if c.cache != nil {
		if r, ok := c.cache.get(from, to); ok {
			c.log.WithFields(fields).Debug("route served from cache")
			return r, nil
		}
	}

	opts := []bfs.Option{
		bfs.WithContext(ctx),
		bfs.WithMaxHops(c.maxHops),
		bfs.WithStopAtDestination(),
	}
	if c.log.Logger.IsLevelEnabled(logrus.TraceLevel) {
		opts = append(opts,
			bfs.WithOnEnqueue(func(code core.Code, hops int) {
				c.log.WithFields(fields).WithFields(logrus.Fields{"code": code, "hops": hops}).Trace("frontier enqueue")
			}),
			bfs.WithOnDequeue(func(code core.Code, hops int) {
				c.log.WithFields(fields).WithFields(logrus.Fields{"code": code, "hops": hops}).Trace("frontier dequeue")
			}),
		)
	}

	state, err := bfs.Search(c.graph, from, to, opts...)
	if err != nil {
		c.log.WithError(err).WithFields(fields).Debug("route search failed")
		return route.Route{}, err
	}
	r, err := route.Resolve(c.graph, state, from, to)
	if err != nil {
		c.log.WithError(err).WithFields(fields).Debug("route not resolved")
		return route.Route{}, err
	}

	c.log.WithFields(fields).WithFields(logrus.Fields{
		"hops":  r.Hops(),
		"rate":  r.Rate.String(),
		"route": r.String(),
	}).Debug("route resolved")
	if c.cache != nil {
		c.cache.set(r)
	}

	return r, nil
}

// Convert parses a 6-letter pair such as "GELHKD" and looks it up.
func (c *Converter) Convert(ctx context.Context, pair string) (route.Route, error) {
	from, to, err := core.ParsePair(pair)
	if err != nil {
		return route.Route{}, err
	}

	return c.Lookup(ctx, from, to)
}

// ConvertAll converts every pair concurrently and returns the routes in input order.
// Every pair is evaluated; if any fail, the error of the lowest-index failing
// pair is returned, naming its pair. Cancelling ctx stops the remaining lookups.
func (c *Converter) ConvertAll(ctx context.Context, pairs []string) ([]route.Route, error) {
	out := make([]route.Route, len(pairs))
	errs := make([]error, len(pairs))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, pair := range pairs {
		g.Go(func() error {
			r, err := c.Convert(ctx, pair)
			if err != nil {
				errs[i] = fmt.Errorf("converter: %s: %w", pair, err)
				return nil
			}
			out[i] = r
			return nil
		})
	}
	_ = g.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// FindRateAndRoute builds a graph from table and returns the compounded rate
// and the space-separated route for pair, e.g. "GELHKD" ⇒ "GEL EGP GMD CRC SEK HKD".
//
// An unreachable destination is reported as route.ErrNoRouteFound, never as
// a zero rate with an empty route.
func FindRateAndRoute(pair string, table map[string]decimal.Decimal) (decimal.Decimal, string, error) {
	from, to, err := core.ParsePair(pair)
	if err != nil {
		return decimal.Decimal{}, "", err
	}
	c, err := NewFromTable(table)
	if err != nil {
		return decimal.Decimal{}, "", err
	}
	defer c.Close()

	r, err := c.Lookup(context.Background(), from, to)
	if err != nil {
		return decimal.Decimal{}, "", err
	}

	return r.Rate, r.String(), nil
}
