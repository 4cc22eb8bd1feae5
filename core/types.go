// File: types.go
// Role: Graph and Vertex type declarations, sentinel errors, constructor.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an edge operation referenced a vertex
	// that was never registered with AddVertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates an edge weight that is negative, NaN, or
	// infinite. Weights must be finite and non-negative so that Dijkstra's
	// precondition holds by construction.
	ErrBadWeight = errors.New("core: edge weight must be finite and non-negative")
)

// Vertex is a node in the graph: one identity plus its outgoing weighted
// adjacency. Adjacency is keyed by neighbor identity, never by *Vertex,
// so vertex equality is defined solely by identity and stays stable as
// edges are added.
type Vertex[V comparable] struct {
	id       V
	adjacent map[V]float64 // neighbor identity → edge weight
	order    []V           // neighbor insertion order, for deterministic iteration
}

// Graph is the in-memory store of vertices and directed weighted edges.
//
// Edges are directed: AddEdge(a, b, w) does not imply an edge b→a.
// At most one edge exists per ordered vertex pair; re-adding overwrites
// the weight. Self-loops are permitted.
//
// Graph is not safe for concurrent writers and must not be mutated while
// a search is iterating over it.
type Graph[V comparable] struct {
	vertices  map[V]*Vertex[V]
	order     []V // vertex insertion order
	edgeCount int
}

// New creates an empty Graph keyed by identity type V.
// Complexity: O(1).
func New[V comparable]() *Graph[V] {
	return &Graph[V]{
		vertices: make(map[V]*Vertex[V]),
	}
}
