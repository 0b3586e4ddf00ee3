// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors.
// Defaults are documented constants-of-behavior: with no options applied,
// the default cell value is the zero value of V.
package matrix

// Option configures a constructor. Safe to apply repeatedly; the last
// write wins.
type Option[V comparable] func(*config[V])

// config carries gathered constructor options. Fields are unexported;
// public APIs consume ...Option.
type config[V comparable] struct {
	def V
}

// WithDefault sets the value every unwritten cell reads back as.
// Absent this option, constructors use the zero value of V.
func WithDefault[V comparable](v V) Option[V] {
	return func(c *config[V]) {
		c.def = v
	}
}

// gatherOptions folds the option list over the zero-value defaults.
func gatherOptions[V comparable](opts []Option[V]) config[V] {
	var c config[V]
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
