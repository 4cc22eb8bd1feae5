// Package dijkstra provides the weighted path-search strategy: Dijkstra's
// single-source shortest path over a core.Graph with non-negative edge
// weights (which core.AddEdge enforces at insertion time).
//
// The implementation uses a lazy decrease-key priority queue: on each
// improvement a fresh entry is pushed onto a container/heap min-heap, and
// stale entries are skipped on pop via a visited set. The search stops as
// soon as the destination is extracted with its final distance.
//
// Complexity per FindPath call: O((V + E) log V) time, O(V + E) space.
package dijkstra
