// Package core defines the central Graph and Vertex types: an in-memory
// store of directed, weighted edges keyed by an arbitrary comparable
// identity type.
//
// A Graph is created empty, populated by repeated AddVertex/AddEdge calls,
// and then shared (by pointer) with one or more search strategies. The
// store provides no internal locking: callers using a graph from multiple
// goroutines must finish all mutation before the first concurrent read,
// and must never mutate it while a search is running.
//
// Enumeration order is deterministic: Vertices and Vertex.Neighbors return
// identities in insertion order, so repeated searches over an unmodified
// graph yield identical results.
//
// Errors:
//
//	ErrVertexNotFound — AddEdge referenced an unregistered vertex.
//	ErrBadWeight      — edge weight is negative, NaN, or infinite.
package core
