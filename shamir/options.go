package shamir

import (
	"crypto/rand"
	"io"
	"log/slog"
)

// DefaultMaxLeadingAttempts bounds the rejection sampling of the leading coefficient.
const DefaultMaxLeadingAttempts = 128

type config struct {
	rand               io.Reader
	logger             *slog.Logger
	maxLeadingAttempts int
	primeWorkers       int
}

// Option tunes session construction.
type Option func(*config)

// WithRand sets the randomness source for coefficients and prime generation.
// Production code should keep the default crypto/rand.Reader.
func WithRand(r io.Reader) Option {
	return func(c *config) {
		if r != nil {
			c.rand = r
		}
	}
}

// WithLogger sets the logger used for session events. Secret material is never logged.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMaxLeadingAttempts caps the draws for a non-zero leading coefficient.
func WithMaxLeadingAttempts(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxLeadingAttempts = n
		}
	}
}

// WithPrimeWorkers sets how many goroutines search for a safe prime when
// the session does not use a fixed prime.
func WithPrimeWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.primeWorkers = n
		}
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		rand:               rand.Reader,
		logger:             slog.New(slog.DiscardHandler),
		maxLeadingAttempts: DefaultMaxLeadingAttempts,
		primeWorkers:       1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
