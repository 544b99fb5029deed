package figuregraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latticepose/internal/figuregraph"
	"github.com/katalvlaran/latticepose/internal/model"
)

func edges(pairs ...int) []model.Edge {
	out := make([]model.Edge, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, model.Edge{V: pairs[i], W: pairs[i+1]})
	}
	return out
}

func TestDeterminationOrderStartsAtPivot(t *testing.T) {
	require := require.New(t)

	g := figuregraph.BuildAdjacency(4, edges(0, 1, 1, 2, 2, 3))
	order, err := figuregraph.DeterminationOrder(g, 0)
	require.NoError(err)
	require.Equal([]int{0, 1, 2, 3}, order)
	require.Len(order, 4)
}

func TestDeterminationOrderVisitsEveryVertexOnce(t *testing.T) {
	require := require.New(t)

	g := figuregraph.BuildAdjacency(6, edges(0, 1, 0, 2, 1, 3, 2, 3, 3, 4, 4, 5))
	order, err := figuregraph.DeterminationOrder(g, 5)
	require.NoError(err)
	require.Equal(5, order[0])
	seen := make(map[int]bool)
	for _, v := range order {
		require.False(seen[v], "vertex %d repeated", v)
		seen[v] = true
	}
	require.Len(order, 6)
}

// barbell is two triangles (0,1,2) and (3,4,5) joined by a single bridge
// edge (2,3).
func barbell() *figuregraph.Graph {
	return figuregraph.BuildAdjacency(6, edges(0, 1, 1, 2, 2, 0, 2, 3, 3, 4, 4, 5, 5, 3))
}

func TestBridgesFindsTheSingleConnectingEdge(t *testing.T) {
	require := require.New(t)

	g := barbell()
	bridges := figuregraph.Bridges(g)
	require.Len(bridges, 1)
	require.Equal(model.Edge{V: 2, W: 3}, bridges[0])
}

func TestTwoEdgeComponentsSplitsAtTheBridge(t *testing.T) {
	require := require.New(t)

	g := barbell()
	comps := figuregraph.TwoEdgeComponents(g)
	require.Len(comps, 2)

	sizes := map[int]bool{}
	for _, c := range comps {
		sizes[len(c)] = true
	}
	require.True(sizes[3], "each triangle forms a 3-vertex component")
}

// minCutFixture mirrors testable-property #6: an 8-vertex graph whose
// minimum s-t cut is exactly the two edges {(1,4),(2,5)}. Vertices 3 and 6
// give the s side and the t side three edge-disjoint routes each, so the
// two-edge middle cut is the unique minimum.
func minCutFixture() *figuregraph.Graph {
	return figuregraph.BuildAdjacency(8, edges(
		0, 1, 0, 2, 0, 3,
		1, 3, 2, 3,
		1, 4, 2, 5,
		4, 6, 5, 6,
		4, 7, 5, 7, 6, 7,
	))
}

func TestMinCutMatchesReferenceFixture(t *testing.T) {
	require := require.New(t)

	g := minCutFixture()
	cut, value, err := figuregraph.MinCut(g, 0, 7)
	require.NoError(err)
	require.Equal(2, value)

	got := map[model.Edge]bool{}
	for _, e := range cut {
		got[e.Normalized()] = true
	}
	require.True(got[model.Edge{V: 1, W: 4}])
	require.True(got[model.Edge{V: 2, W: 5}])
	require.Len(cut, 2)
}

func TestMinCutRejectsOutOfRangeVertex(t *testing.T) {
	require := require.New(t)

	g := minCutFixture()
	_, _, err := figuregraph.MinCut(g, 0, 99)
	require.ErrorIs(err, figuregraph.ErrVertexOutOfRange)
}
