package dijkstra

import (
	"container/heap"

	"github.com/maraley/waypath/core"
	"github.com/maraley/waypath/search"
)

// Search is the weighted shortest-path strategy, bound to one graph.
// It implements search.Pathfinder.
type Search[V comparable] struct {
	graph *core.Graph[V]
	opts  Options
}

// compile-time interface check
var _ search.Pathfinder[int] = (*Search[int])(nil)

// New binds a Dijkstra Search to g, applying any functional options.
// The graph is read, never mutated; it must not change while FindPath
// is running.
func New[V comparable](g *core.Graph[V], opts ...Option) *Search[V] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Search[V]{graph: g, opts: o}
}

// FindPath returns a minimum-weight path from source to dest inclusive,
// or nil when either endpoint is unknown, no directed path exists, or the
// destination lies beyond MaxDistance.
//
// Weights are non-negative by core.AddEdge's insertion contract, so no
// weight validation happens here. A same-vertex query on a registered
// vertex returns the one-element path.
func (s *Search[V]) FindPath(source, dest V) []V {
	if s == nil || s.graph == nil {
		return nil
	}
	if !s.graph.HasVertex(source) || !s.graph.HasVertex(dest) {
		return nil
	}

	r := newRunner(s, source)

	return r.run(source, dest)
}

// runner holds the mutable state of a single FindPath execution; each
// call owns an independent instance.
type runner[V comparable] struct {
	graph *core.Graph[V]
	opts  Options

	// dist maps discovered vertices to their best-known distance from the
	// source; an absent key is the +Inf sentinel.
	dist    map[V]float64
	prev    map[V]V
	visited map[V]bool
	pq      nodePQ[V]
}

func newRunner[V comparable](s *Search[V], source V) *runner[V] {
	n := s.graph.VertexCount()
	r := &runner[V]{
		graph:   s.graph,
		opts:    s.opts,
		dist:    make(map[V]float64, n),
		prev:    make(map[V]V, n),
		visited: make(map[V]bool, n),
		pq:      make(nodePQ[V], 0, n),
	}

	heap.Init(&r.pq)
	r.dist[source] = 0
	heap.Push(&r.pq, &nodeItem[V]{id: source, dist: 0})

	return r
}

// run repeatedly extracts the minimum-distance vertex, stopping as soon
// as dest is extracted with its final distance. Stale heap entries (the
// lazy decrease-key leftovers) are skipped via the visited set.
func (r *runner[V]) run(source, dest V) []V {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[V])
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.opts.MaxDistance {
			break
		}
		r.visited[item.id] = true

		if item.id == dest {
			return search.Reconstruct(r.prev, source, dest)
		}
		r.relax(item.id)
	}

	return nil
}

// relax attempts to improve the distance of every neighbor reachable over
// an outgoing edge of u, pushing a fresh heap entry on each strict
// improvement.
func (r *runner[V]) relax(u V) {
	v, _ := r.graph.Vertex(u)
	for _, nbr := range v.Neighbors() {
		w, _ := v.Weight(nbr)
		if w >= r.opts.InfEdgeThreshold {
			continue
		}

		candidate := r.dist[u] + w
		if candidate > r.opts.MaxDistance {
			continue
		}
		// strict improvement only; absent key means +Inf
		if cur, known := r.dist[nbr]; known && candidate >= cur {
			continue
		}

		r.dist[nbr] = candidate
		r.prev[nbr] = u
		heap.Push(&r.pq, &nodeItem[V]{id: nbr, dist: candidate})
	}
}

// nodeItem is one heap entry: a vertex identity and the distance it was
// pushed with. Improved vertices get a new entry; the old one goes stale.
type nodeItem[V comparable] struct {
	id   V
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by distance ascending.
type nodePQ[V comparable] []*nodeItem[V]

func (pq nodePQ[V]) Len() int { return len(pq) }

func (pq nodePQ[V]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

func (pq nodePQ[V]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push, x must be *nodeItem[V].
func (pq *nodePQ[V]) Push(x any) { *pq = append(*pq, x.(*nodeItem[V])) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *nodePQ[V]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
