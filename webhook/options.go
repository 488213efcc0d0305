package webhook

import "time"

// DefaultTolerance is the maximum clock drift accepted between the delivery
// timestamp and the local clock.
const DefaultTolerance = 300 * time.Second

type config struct {
	tolerance time.Duration
	now       func() time.Time
	strict    bool
}

type Option func(*config)

// WithTolerance overrides DefaultTolerance for Verify.
func WithTolerance(d time.Duration) Option {
	return func(c *config) { c.tolerance = d }
}

// WithClock replaces time.Now, both for the tolerance check and for the
// timestamp fallback of lenient parsing.
func WithClock(now func() time.Time) Option {
	return func(c *config) { c.now = now }
}

// WithStrict makes Parse report malformed payloads, missing event types and
// unparseable timestamps as errors instead of substituting defaults.
func WithStrict() Option {
	return func(c *config) { c.strict = true }
}

func newConfig(opts []Option) config {
	c := config{
		tolerance: DefaultTolerance,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
