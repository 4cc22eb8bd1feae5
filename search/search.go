package search

// Pathfinder computes a path between two vertex identities over the graph
// it was constructed with. Implementations read the graph but never
// mutate it.
//
// FindPath returns the path from source to dest inclusive, in traversal
// order, or nil when no path exists or either endpoint is absent from the
// graph. A same-vertex query on a registered vertex returns the
// single-element path.
type Pathfinder[V comparable] interface {
	FindPath(source, dest V) []V
}

// Reconstruct builds the source→dest path from a predecessor map, where
// prev[v] is the vertex that first reached v and the source is absent
// from the map (absence is the "no predecessor" sentinel).
//
// The walk starts at dest and follows predecessor links until source;
// if the chain breaks before reaching source, Reconstruct returns nil.
// For source == dest the result is the one-element path.
// Complexity: O(len(path)).
func Reconstruct[V comparable](prev map[V]V, source, dest V) []V {
	path := []V{dest}
	for cur := dest; cur != source; {
		p, ok := prev[cur]
		if !ok {
			return nil
		}
		path = append(path, p)
		cur = p
	}

	// reverse in place to get source → dest order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
