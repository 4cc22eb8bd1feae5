// Package waypath is a small in-memory weighted-graph library with two
// path-search strategies over the same graph: unweighted breadth-first
// shortest path and weighted single-source shortest path (Dijkstra).
//
// The library is organized into four subpackages:
//
//	core/     — generic Graph and Vertex types: directed, weighted adjacency
//	            keyed by any comparable identity type
//	search/   — the Pathfinder strategy interface and shared predecessor-map
//	            path reconstruction
//	bfs/      — fewest-hop paths (edge weights ignored)
//	dijkstra/ — minimum-weight paths (non-negative weights, enforced at
//	            insertion)
//
// Quick example:
//
//	g := core.New[string]()
//	for _, v := range []string{"A", "B", "C", "D"} {
//		g.AddVertex(v)
//	}
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("B", "D", 5)
//
//	hops := bfs.New(g).FindPath("A", "D")      // [A B D]
//	cheap := dijkstra.New(g).FindPath("A", "D") // minimum total weight
//
// Graphs are built once and then read by any number of searches; no
// internal locking is provided, so callers sharing a graph across
// goroutines must finish all mutation before the first search.
package waypath
