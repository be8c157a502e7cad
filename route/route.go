// Package route turns a breadth-first SearchState into a forward currency
// route and folds the edge rates along it into one compounded rate.
//
// Rates are multiplied with github.com/shopspring/decimal, which keeps every
// digit: the product of n rates with k fractional digits each carries n·k
// fractional digits and is never rounded.
package route

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/fxroute/core"
)

var (
	// ErrNoRouteFound is returned when the destination is unreachable from the source.
	ErrNoRouteFound = errors.New("route: no route found")

	// ErrStateMismatch is returned when a SearchState does not belong to the
	// query or its predecessor chain does not follow real graph edges.
	ErrStateMismatch = errors.New("route: search state does not match query")
)

// Route is a resolved conversion path with its compounded rate.
type Route struct {
	// Source and Destination are the route endpoints.
	Source      core.Code
	Destination core.Code

	// Codes lists every currency from Source to Destination inclusive.
	Codes []core.Code

	// Rate is the product of all edge rates along Codes.
	Rate decimal.Decimal
}

// Hops returns the number of conversions in the route.
func (r Route) Hops() int {
	if len(r.Codes) == 0 {
		return 0
	}
	return len(r.Codes) - 1
}

// String joins the codes with single spaces, e.g. "GEL EGP GMD".
func (r Route) String() string { return r.join(" ") }

// Concat joins the codes without a delimiter, e.g. "GELEGPGMD".
func (r Route) Concat() string { return r.join("") }

func (r Route) join(sep string) string {
	parts := make([]string, len(r.Codes))
	for i, c := range r.Codes {
		parts[i] = string(c)
	}
	return strings.Join(parts, sep)
}

// Clone returns a copy whose Codes slice does not alias r's.
func (r Route) Clone() Route {
	out := r
	out.Codes = append([]core.Code(nil), r.Codes...)
	return out
}
