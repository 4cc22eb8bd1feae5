// Package search defines the strategy abstraction shared by the bfs and
// dijkstra packages: a Pathfinder computes a path between two identities
// over a graph it was bound to at construction, and Reconstruct turns the
// predecessor map built by either algorithm into an ordered path.
//
// A nil or empty path means "no path or unknown endpoint"; the two cases
// are deliberately indistinguishable (callers that need to tell them apart
// should check core.Graph.HasVertex first).
package search
