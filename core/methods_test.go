package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maraley/waypath/core"
)

// buildSquare registers vertices A..D and returns the empty-edged graph.
func buildSquare(t *testing.T) *core.Graph[string] {
	t.Helper()
	g := core.New[string]()
	for _, v := range []string{"A", "B", "C", "D"} {
		g.AddVertex(v)
	}

	return g
}

func TestAddVertex_Idempotent(t *testing.T) {
	g := core.New[string]()
	g.AddVertex("A")
	g.AddVertex("B")
	require.NoError(t, g.AddEdge("A", "B", 2))

	// re-adding must not reset adjacency or duplicate the vertex
	g.AddVertex("A")
	assert.Equal(t, 2, g.VertexCount())
	w, ok := g.Weight("A", "B")
	assert.True(t, ok)
	assert.Equal(t, 2.0, w)
	assert.Equal(t, []string{"A", "B"}, g.Vertices())
}

func TestVertex_LookupAndIdentity(t *testing.T) {
	g := buildSquare(t)

	v, ok := g.Vertex("C")
	require.True(t, ok)
	assert.Equal(t, "C", v.ID())
	assert.Zero(t, v.Degree())

	_, ok = g.Vertex("Z")
	assert.False(t, ok)
	assert.False(t, g.HasVertex("Z"))
	assert.True(t, g.HasVertex("C"))
}

func TestAddEdge_UnknownEndpoints(t *testing.T) {
	g := core.New[string]()
	g.AddVertex("A")

	err := g.AddEdge("A", "B", 1)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	err = g.AddEdge("X", "A", 1)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	// failed calls must leave the graph untouched
	assert.Zero(t, g.EdgeCount())
}

func TestAddEdge_BadWeights(t *testing.T) {
	g := buildSquare(t)

	for _, w := range []float64{-1, -0.001, math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := g.AddEdge("A", "B", w)
		assert.ErrorIs(t, err, core.ErrBadWeight, "weight %v", w)
	}
	assert.Zero(t, g.EdgeCount())

	// zero is a valid weight
	assert.NoError(t, g.AddEdge("A", "B", 0))
}

func TestAddEdge_OverwriteKeepsSingleEdge(t *testing.T) {
	g := buildSquare(t)
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "B", 7))

	assert.Equal(t, 1, g.EdgeCount())
	w, ok := g.Weight("A", "B")
	require.True(t, ok)
	assert.Equal(t, 7.0, w)

	v, _ := g.Vertex("A")
	assert.Equal(t, []string{"B"}, v.Neighbors(), "overwrite must not duplicate the neighbor")
}

func TestAddEdge_Directional(t *testing.T) {
	g := buildSquare(t)
	require.NoError(t, g.AddEdge("A", "B", 3))

	_, ok := g.Weight("B", "A")
	assert.False(t, ok, "A→B must not imply B→A")

	b, _ := g.Vertex("B")
	assert.Empty(t, b.Neighbors())
}

func TestAddEdge_SelfLoop(t *testing.T) {
	g := buildSquare(t)
	require.NoError(t, g.AddEdge("A", "A", 0.5))

	w, ok := g.Weight("A", "A")
	assert.True(t, ok)
	assert.Equal(t, 0.5, w)
}

func TestNeighbors_InsertionOrder(t *testing.T) {
	g := buildSquare(t)
	require.NoError(t, g.AddEdge("A", "C", 4))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "D", 9))
	// overwriting C must not move it to the back
	require.NoError(t, g.AddEdge("A", "C", 2))

	v, _ := g.Vertex("A")
	assert.Equal(t, []string{"C", "B", "D"}, v.Neighbors())
	assert.Equal(t, 3, v.Degree())
}

func TestVertices_InsertionOrderCopy(t *testing.T) {
	g := core.New[int]()
	for _, id := range []int{42, 7, 19} {
		g.AddVertex(id)
	}

	got := g.Vertices()
	assert.Equal(t, []int{42, 7, 19}, got)

	// mutating the returned slice must not affect the store
	got[0] = 0
	assert.Equal(t, []int{42, 7, 19}, g.Vertices())
}

func TestIntIdentityGraph(t *testing.T) {
	g := core.New[int]()
	g.AddVertex(1)
	g.AddVertex(2)
	require.NoError(t, g.AddEdge(1, 2, 1.5))

	w, ok := g.Weight(1, 2)
	assert.True(t, ok)
	assert.Equal(t, 1.5, w)
}
