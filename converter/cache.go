package converter

import (
	"fmt"

	"github.com/dgraph-io/ristretto"

	"github.com/katalvlaran/fxroute/core"
	"github.com/katalvlaran/fxroute/route"
)

// routeCache memoises resolved routes per directed pair.
// Safe because the graph behind a Converter never changes.
type routeCache struct {
	cache *ristretto.Cache
}

func newRouteCache(maxItems int64) (*routeCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
		// cost counts routes, not bytes
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("converter: create route cache: %w", err)
	}
	return &routeCache{cache: c}, nil
}

// get returns a copy of the cached route so callers cannot alias the entry.
func (c *routeCache) get(from, to core.Code) (route.Route, bool) {
	if v, ok := c.cache.Get(toKey(from, to)); ok {
		r, ok := v.(route.Route)
		return r.Clone(), ok
	}
	return route.Route{}, false
}

func (c *routeCache) set(r route.Route) {
	c.cache.Set(toKey(r.Source, r.Destination), r.Clone(), 1)
}

// wait blocks until buffered writes are applied.
func (c *routeCache) wait() { c.cache.Wait() }

func (c *routeCache) close() { c.cache.Close() }

func toKey(from, to core.Code) string { return string(from) + ":" + string(to) }
