package placer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latticepose/internal/geom"
	"github.com/katalvlaran/latticepose/internal/model"
	"github.com/katalvlaran/latticepose/internal/placer"
)

func TestPlaceFindsIdentityWhenFigureIsTheHole(t *testing.T) {
	require := require.New(t)

	hole := model.Hole{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}
	figure := model.Figure{
		Vertices: []geom.Point(hole),
		Edges: []model.Edge{
			{V: 0, W: 1}, {V: 1, W: 2}, {V: 2, W: 3}, {V: 3, W: 0},
		},
	}

	// A divisor above the 20-unit sweep span keeps the scan step at 1.
	result := placer.Place(context.Background(), figure, hole, 0, placer.WithCoarseDivisor(100))
	require.True(result.Found)
	require.Equal(0.0, result.Dislike)
}

func TestPlaceReturnsNotFoundWhenFigureCannotFit(t *testing.T) {
	require := require.New(t)

	hole := model.Hole{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	figure := model.Figure{
		Vertices: []geom.Point{{X: 0, Y: 0}, {X: 100, Y: 0}},
		Edges:    []model.Edge{{V: 0, W: 1}},
	}

	result := placer.Place(context.Background(), figure, hole, 0)
	require.False(result.Found)
}
