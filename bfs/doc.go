// Package bfs provides the breadth-first search strategy: fewest-hop
// paths over a core.Graph, ignoring edge weights.
//
// A Search is bound to one graph at construction and may be reused for
// any number of FindPath calls; each call owns independent working state.
// Options (depth limit, neighbor filter, visit hook) are fixed at
// construction via functional arguments.
//
// Complexity per FindPath call: O(V + E) time, O(V) space.
package bfs
