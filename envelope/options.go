// SPDX-License-Identifier: MIT
// Package: hull/envelope
//
// options.go — functional options shared by all containers.
//
// Contract:
//   • Option constructors validate and panic on meaningless input; the
//     containers themselves never panic on caller data.
//   • Defaults: no logging, unchecked monotonic order.

package envelope

import "log/slog"

// Option customizes a container at construction time.
type Option func(*config)

// config aggregates container knobs. It is resolved once by newConfig.
type config struct {
	// logger receives Debug records about pruning; nil disables logging.
	logger *slog.Logger
	// strict enables ErrOrderViolation checks in Monotonic.
	strict bool
}

// WithLogger routes pruning diagnostics to l at Debug level.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("envelope: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithStrictOrder makes Monotonic reject decreasing slopes and decreasing
// query positions with ErrOrderViolation instead of leaving them undefined.
// Other containers ignore it.
func WithStrictOrder() Option {
	return func(c *config) {
		c.strict = true
	}
}

// newConfig applies opts in order; later options win.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
