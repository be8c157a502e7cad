package converter

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("converter: invalid option supplied")

// Option configures a Converter via functional arguments.
// An invalid Option is recorded and surfaced by New.
type Option func(*options)

type options struct {
	logger    *logrus.Logger
	cacheSize int64
	maxHops   int
	err       error
}

// WithLogger sets the logger; by default nothing is logged.
// Search frontier tracing is emitted only when the logger is at trace level.
func WithLogger(l *logrus.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCache memoises up to maxItems resolved routes.
// maxItems <= 0 is an ErrOptionViolation.
func WithCache(maxItems int64) Option {
	return func(o *options) {
		if maxItems <= 0 {
			o.err = fmt.Errorf("%w: cache size must be positive (%d)", ErrOptionViolation, maxItems)
			return
		}
		o.cacheSize = maxItems
	}
}

// WithMaxHops rejects routes longer than n conversions; 0 means unlimited.
func WithMaxHops(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max hops cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.maxHops = n
	}
}
