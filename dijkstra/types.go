// File: types.go
// Role: functional options and validation for the weighted search.

package dijkstra

import (
	"fmt"
	"math"
)

// Option configures a Search via functional arguments.
// Invalid values panic at construction, since FindPath exposes no error
// channel.
type Option func(*Options)

// Options holds parameters customizing Dijkstra execution.
//
// MaxDistance      — vertices whose distance from the source would exceed
// this value are not explored. Must be ≥ 0; default +Inf (no cap).
// InfEdgeThreshold — edges with weight ≥ this threshold are treated as
// impassable walls. Must be > 0; default +Inf (no walls).
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64
}

// DefaultOptions returns Options with no distance cap and no impassable
// edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// WithMaxDistance caps exploration at distance d from the source.
// Panics on negative or NaN values.
func WithMaxDistance(d float64) Option {
	if d < 0 || math.IsNaN(d) {
		panic(fmt.Sprintf("dijkstra: MaxDistance must be non-negative (%v)", d))
	}

	return func(o *Options) { o.MaxDistance = d }
}

// WithInfEdgeThreshold treats edges with weight ≥ t as impassable.
// Panics on t ≤ 0 or NaN, which would make every edge (including
// zero-weight ones) a wall.
func WithInfEdgeThreshold(t float64) Option {
	if t <= 0 || math.IsNaN(t) {
		panic(fmt.Sprintf("dijkstra: InfEdgeThreshold must be positive (%v)", t))
	}

	return func(o *Options) { o.InfEdgeThreshold = t }
}
