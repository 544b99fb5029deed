package snap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latticepose/internal/figuregraph"
	"github.com/katalvlaran/latticepose/internal/geom"
	"github.com/katalvlaran/latticepose/internal/model"
	"github.com/katalvlaran/latticepose/internal/snap"
)

func TestRunNeverMakesDislikeWorse(t *testing.T) {
	require := require.New(t)

	hole := model.Hole{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	figure := model.Figure{
		Vertices: []geom.Point{{X: 1, Y: 1}, {X: 9, Y: 1}},
		Edges:    []model.Edge{{V: 0, W: 1}},
	}
	pose := model.Pose{{X: 1, Y: 1}, {X: 9, Y: 1}}
	g := figuregraph.BuildAdjacency(2, figure.Edges)

	before := geom.Dislike(pose, []geom.Point(hole))
	result := snap.Run(g, figure, hole, pose, 1_000_000_000, model.ActiveBonuses{})
	after := geom.Dislike(result, []geom.Point(hole))

	require.Len(result, 2)
	require.LessOrEqual(after, before)
}

func TestRunIsANoOpWhenEveryHoleVertexIsAlreadySatisfied(t *testing.T) {
	require := require.New(t)

	hole := model.Hole{{X: 0, Y: 0}, {X: 10, Y: 0}}
	figure := model.Figure{Vertices: []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}, Edges: []model.Edge{{V: 0, W: 1}}}
	pose := model.Pose{{X: 0, Y: 0}, {X: 10, Y: 0}}
	g := figuregraph.BuildAdjacency(2, figure.Edges)

	result := snap.Run(g, figure, hole, pose, 0, model.ActiveBonuses{})
	require.Equal(pose, result)
}
