// File: types.go
// Role: functional options and validation for breadth-first search.

package bfs

import "fmt"

// Option configures a Search via functional arguments.
// Invalid values (e.g. a negative depth) panic at construction, since
// FindPath exposes no error channel.
type Option[V comparable] func(*Options[V])

// Options holds parameters and callbacks customizing BFS execution.
type Options[V comparable] struct {
	// MaxDepth, if > 0, stops exploring beyond this many hops from the
	// source. Zero disables the limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called once per traversed edge curr→neighbor.
	FilterNeighbor func(curr, neighbor V) bool

	// OnVisit is called when a vertex is dequeued, with its hop distance
	// from the source. Observation only; it cannot alter the traversal.
	OnVisit func(id V, depth int)
}

// DefaultOptions returns Options with no depth limit, no filtering, and
// no-op hooks.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{
		MaxDepth:       0,
		FilterNeighbor: func(V, V) bool { return true },
		OnVisit:        func(V, int) {},
	}
}

// WithMaxDepth limits exploration to d hops from the source.
//
//	d > 0:  explore at most d hops
//	d == 0: explicit no limit
//	d < 0:  invalid; panics
func WithMaxDepth[V comparable](d int) Option[V] {
	if d < 0 {
		panic(fmt.Sprintf("bfs: MaxDepth cannot be negative (%d)", d))
	}

	return func(o *Options[V]) { o.MaxDepth = d }
}

// WithFilterNeighbor skips edges for which fn returns false.
func WithFilterNeighbor[V comparable](fn func(curr, neighbor V) bool) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithOnVisit registers a callback invoked on each dequeued vertex.
func WithOnVisit[V comparable](fn func(id V, depth int)) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
