package shrink_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latticepose/internal/geom"
	"github.com/katalvlaran/latticepose/internal/model"
	"github.com/katalvlaran/latticepose/internal/shrink"
)

func TestRunReducesOrMaintainsVarianceWithinIterationCap(t *testing.T) {
	require := require.New(t)

	figure := model.Figure{
		Vertices: []geom.Point{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 20}, {X: 0, Y: 20}},
		Edges: []model.Edge{
			{V: 0, W: 1}, {V: 1, W: 2}, {V: 2, W: 3}, {V: 3, W: 0},
		},
	}
	hole := model.Hole{{X: -1000, Y: -1000}, {X: 1000, Y: -1000}, {X: 1000, Y: 1000}, {X: -1000, Y: 1000}}

	result, err := shrink.Run(context.Background(), figure, hole, 1_000_000,
		shrink.WithMaxIterations(200),
		shrink.WithRand(rand.New(rand.NewSource(42))),
	)
	require.NoError(err)
	require.Len(result.Pose, 4)
	require.LessOrEqual(spread(result.Pose), spread(figure.Vertices))
}

// spread is the summed x and y coordinate variance of ps.
func spread(ps []geom.Point) float64 {
	c := geom.Centroid(ps)
	var s float64
	for _, p := range ps {
		s += geom.SquaredDistance(p, c)
	}
	return s / float64(len(ps))
}

func TestRunRejectsEmptyFigure(t *testing.T) {
	require := require.New(t)

	_, err := shrink.Run(context.Background(), model.Figure{}, model.Hole{{X: 0, Y: 0}}, 0)
	require.ErrorIs(err, shrink.ErrEmptyFigure)
}
