package bfs

import (
	"github.com/maraley/waypath/core"
	"github.com/maraley/waypath/search"
)

// Search is the breadth-first path-search strategy, bound to one graph.
// It implements search.Pathfinder.
type Search[V comparable] struct {
	graph *core.Graph[V]
	opts  Options[V]
}

// compile-time interface check
var _ search.Pathfinder[int] = (*Search[int])(nil)

// New binds a breadth-first Search to g, applying any functional options.
// The graph is read, never mutated; it must not change while FindPath
// is running.
func New[V comparable](g *core.Graph[V], opts ...Option[V]) *Search[V] {
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}

	return &Search[V]{graph: g, opts: o}
}

// queueItem pairs a vertex identity with its hop distance from the source.
type queueItem[V comparable] struct {
	id    V
	depth int
}

// FindPath returns a fewest-hop path from source to dest inclusive, or
// nil when either endpoint is unknown or no directed path exists.
// Edge direction is respected; weights are ignored. Ties between equal-hop
// paths resolve by edge-insertion order.
//
// A same-vertex query on a registered vertex returns the one-element path:
// the destination test happens at dequeue, so the seeded source matches
// immediately.
func (s *Search[V]) FindPath(source, dest V) []V {
	if s == nil || s.graph == nil {
		return nil
	}
	if !s.graph.HasVertex(source) || !s.graph.HasVertex(dest) {
		return nil
	}

	// prev records, for each discovered vertex, the vertex that first
	// reached it; the source is deliberately absent (its sentinel).
	prev := make(map[V]V)
	visited := map[V]bool{source: true}
	queue := []queueItem[V]{{id: source}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		s.opts.OnVisit(cur.id, cur.depth)

		if cur.id == dest {
			return search.Reconstruct(prev, source, dest)
		}
		if s.opts.MaxDepth > 0 && cur.depth+1 > s.opts.MaxDepth {
			continue
		}

		v, _ := s.graph.Vertex(cur.id)
		for _, nbr := range v.Neighbors() {
			if !s.opts.FilterNeighbor(cur.id, nbr) {
				continue
			}
			// mark visited at enqueue time to avoid duplicate enqueues
			if !visited[nbr] {
				visited[nbr] = true
				prev[nbr] = cur.id
				queue = append(queue, queueItem[V]{id: nbr, depth: cur.depth + 1})
			}
		}
	}

	return nil
}
