// File: methods.go
// Role: Vertex lifecycle, edge insertion, and read-only queries.
//
// Determinism:
//   - Vertices() and Vertex.Neighbors() enumerate in insertion order.

package core

import (
	"fmt"
	"math"
)

// ID returns the identity wrapped by this vertex.
func (v *Vertex[V]) ID() V { return v.id }

// Neighbors returns the identities adjacent to v in edge-insertion order.
// The returned slice is a copy; callers may retain or modify it freely.
// Complexity: O(deg(v)).
func (v *Vertex[V]) Neighbors() []V {
	out := make([]V, len(v.order))
	copy(out, v.order)

	return out
}

// Weight returns the weight of the outgoing edge v→to, reporting whether
// such an edge exists. Complexity: O(1).
func (v *Vertex[V]) Weight(to V) (float64, bool) {
	w, ok := v.adjacent[to]

	return w, ok
}

// Degree returns the number of outgoing edges of v. Complexity: O(1).
func (v *Vertex[V]) Degree() int { return len(v.adjacent) }

// AddVertex inserts a vertex for id if absent. Idempotent: re-adding an
// existing identity is a no-op and never resets its adjacency.
// Complexity: O(1) amortized.
func (g *Graph[V]) AddVertex(id V) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = &Vertex[V]{
		id:       id,
		adjacent: make(map[V]float64),
	}
	g.order = append(g.order, id)
}

// HasVertex reports whether id is registered in the graph.
// Complexity: O(1).
func (g *Graph[V]) HasVertex(id V) bool {
	_, ok := g.vertices[id]

	return ok
}

// Vertex looks up the vertex for id; the second result is false if id was
// never registered. The returned pointer refers to live graph state and
// must be treated as read-only. Complexity: O(1).
func (g *Graph[V]) Vertex(id V) (*Vertex[V], bool) {
	v, ok := g.vertices[id]

	return v, ok
}

// AddEdge records the directed edge from→to with the given weight,
// overwriting the weight if the edge already exists.
//
// Both endpoints must already be registered via AddVertex, and the weight
// must be finite and non-negative; violations surface as wrapped
// ErrVertexNotFound / ErrBadWeight sentinels (match with errors.Is).
// Complexity: O(1) amortized.
func (g *Graph[V]) AddEdge(from, to V, weight float64) error {
	src, ok := g.vertices[from]
	if !ok {
		return fmt.Errorf("%w: source %v", ErrVertexNotFound, from)
	}
	if _, ok = g.vertices[to]; !ok {
		return fmt.Errorf("%w: destination %v", ErrVertexNotFound, to)
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %v→%v weight=%v", ErrBadWeight, from, to, weight)
	}

	if _, seen := src.adjacent[to]; !seen {
		src.order = append(src.order, to)
		g.edgeCount++
	}
	src.adjacent[to] = weight

	return nil
}

// Weight returns the weight of the directed edge from→to, reporting
// whether such an edge exists. Complexity: O(1).
func (g *Graph[V]) Weight(from, to V) (float64, bool) {
	src, ok := g.vertices[from]
	if !ok {
		return 0, false
	}

	return src.Weight(to)
}

// Vertices returns all vertex identities in insertion order.
// The returned slice is a copy. Complexity: O(V).
func (g *Graph[V]) Vertices() []V {
	out := make([]V, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of registered vertices. Complexity: O(1).
func (g *Graph[V]) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of distinct directed edges. Overwriting an
// existing edge's weight does not change the count. Complexity: O(1).
func (g *Graph[V]) EdgeCount() int { return g.edgeCount }
