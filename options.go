// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ribbon

// Option configures a Generator during creation.
//
// Example:
//
//	// 8px ribbon with round end caps
//	g := ribbon.NewGenerator(ribbon.WithWidth(8), ribbon.WithCapEnds(true))
type Option func(*config)

// config holds the generator configuration.
type config struct {
	width             float64
	capEnds           bool
	capSegments       int
	resetOnNewGesture bool
	capacity          int
}

const (
	// DefaultWidth is the ribbon width used when no width is configured.
	DefaultWidth = 8.0

	// DefaultCapSegments is the number of triangles in a round end cap.
	DefaultCapSegments = 4

	defaultCapacity = 256
)

// defaultConfig returns the default generator configuration.
func defaultConfig() config {
	return config{
		width:       DefaultWidth,
		capSegments: DefaultCapSegments,
		capacity:    defaultCapacity,
	}
}

func newConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithWidth sets the ribbon width used for key points that carry no width
// of their own. Non-positive values and values that do not fit a float32
// are ignored.
func WithWidth(width float64) Option {
	return func(c *config) {
		if width > 0 && finite32(width) {
			c.width = width
		}
	}
}

// WithCapEnds enables round caps at both ends of the ribbon, emitted by Stop.
func WithCapEnds(enabled bool) Option {
	return func(c *config) {
		c.capEnds = enabled
	}
}

// WithCapSegments sets the number of triangles per end cap.
// Odd values are rounded up so that a cap adds an even number of vertices
// and a multiple of 6 indices. Values below 2 are ignored.
func WithCapSegments(n int) Option {
	return func(c *config) {
		if n < 2 {
			return
		}
		if n%2 != 0 {
			n++
		}
		c.capSegments = n
	}
}

// WithResetOnNewGesture controls what happens to the mesh when a point
// arrives after Stop. When false (the default), the new gesture's geometry is
// appended after the previous one. When true, the mesh is cleared first.
func WithResetOnNewGesture(enabled bool) Option {
	return func(c *config) {
		c.resetOnNewGesture = enabled
	}
}

// WithInitialCapacity preallocates room for n vertices.
// Negative values are ignored.
func WithInitialCapacity(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.capacity = n
		}
	}
}
