package construct_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latticepose/internal/construct"
	"github.com/katalvlaran/latticepose/internal/geom"
	"github.com/katalvlaran/latticepose/internal/model"
)

func bigSquareHole() model.Hole {
	return model.Hole{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 50}, {X: 0, Y: 50}}
}

func TestDFSPointsFindsAPlacementInALargeHole(t *testing.T) {
	require := require.New(t)

	figure := model.Figure{
		Vertices: []geom.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 4}},
		Edges:    []model.Edge{{V: 0, W: 1}, {V: 1, W: 2}},
	}
	result := construct.DFSPoints(context.Background(), figure, bigSquareHole(), 0)
	require.True(result.Found)
	require.Len(result.Pose, 3)

	ok, err := model.ValidPose(figure, bigSquareHole(), result.Pose, 0, model.ActiveBonuses{})
	require.NoError(err)
	require.True(ok)
}

func TestDFSPointsEmptyEdgeSetReturnsOriginalPose(t *testing.T) {
	require := require.New(t)

	figure := model.Figure{Vertices: []geom.Point{{X: 1, Y: 1}}}
	result := construct.DFSPoints(context.Background(), figure, bigSquareHole(), 0)
	require.True(result.Found)
	require.Equal(model.Pose{{X: 1, Y: 1}}, result.Pose)
}

func TestDFSEdgesFindsAPlacementInALargeHole(t *testing.T) {
	require := require.New(t)

	figure := model.Figure{
		Vertices: []geom.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 4}},
		Edges:    []model.Edge{{V: 0, W: 1}, {V: 1, W: 2}},
	}
	result := construct.DFSEdges(context.Background(), figure, bigSquareHole(), 0)
	require.True(result.Found)

	ok, err := model.ValidPose(figure, bigSquareHole(), result.Pose, 0, model.ActiveBonuses{})
	require.NoError(err)
	require.True(ok)
}
