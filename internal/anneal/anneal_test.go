package anneal_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latticepose/internal/anneal"
	"github.com/katalvlaran/latticepose/internal/figuregraph"
	"github.com/katalvlaran/latticepose/internal/geom"
	"github.com/katalvlaran/latticepose/internal/model"
)

func square(s float64) []geom.Point {
	return []geom.Point{{X: 0, Y: 0}, {X: s, Y: 0}, {X: s, Y: s}, {X: 0, Y: s}}
}

func squareEdges() []model.Edge {
	return []model.Edge{{V: 0, W: 1}, {V: 1, W: 2}, {V: 2, W: 3}, {V: 3, W: 0}}
}

func TestHillClimbNeverWorsensDislike(t *testing.T) {
	require := require.New(t)

	original := square(10)
	figure := model.Figure{Vertices: original, Edges: squareEdges()}
	hole := square(9)
	g := figuregraph.BuildAdjacency(4, figure.Edges)

	pose := model.Pose(append([]geom.Point(nil), original...))
	pose[0] = geom.Point{X: -3, Y: -3}

	before := geom.Dislike(pose, hole)
	result := anneal.HillClimb(
		context.Background(), g, figure, hole, pose, 2_000_000,
		anneal.WithBudget(100*time.Millisecond),
		anneal.WithRand(rand.New(rand.NewSource(7))),
	)

	require.LessOrEqual(result.Dislike, before)
}

func TestHillClimbStopsAtZeroDislike(t *testing.T) {
	require := require.New(t)

	original := square(10)
	figure := model.Figure{Vertices: original, Edges: squareEdges()}
	hole := square(10)
	g := figuregraph.BuildAdjacency(4, figure.Edges)

	pose := model.Pose(append([]geom.Point(nil), original...))

	result := anneal.HillClimb(
		context.Background(), g, figure, hole, pose, 0,
		anneal.WithBudget(time.Second),
		anneal.WithRand(rand.New(rand.NewSource(3))),
	)

	require.Zero(result.Dislike)
}

func TestAnnealTracksBestEverObservedPose(t *testing.T) {
	require := require.New(t)

	original := square(10)
	figure := model.Figure{Vertices: original, Edges: squareEdges()}
	hole := square(9)
	g := figuregraph.BuildAdjacency(4, figure.Edges)

	pose := model.Pose(append([]geom.Point(nil), original...))
	pose[0] = geom.Point{X: -3, Y: -3}
	before := geom.Dislike(pose, hole)

	result := anneal.Anneal(
		context.Background(), g, figure, hole, pose, 2_000_000,
		anneal.WithBudget(150*time.Millisecond),
		anneal.WithRand(rand.New(rand.NewSource(11))),
	)

	require.LessOrEqual(result.Dislike, before)
	require.Equal(result.Dislike, geom.Dislike(result.Pose, hole))
}

func TestAnnealRespectsContextCancellation(t *testing.T) {
	require := require.New(t)

	original := square(10)
	figure := model.Figure{Vertices: original, Edges: squareEdges()}
	hole := square(9)
	g := figuregraph.BuildAdjacency(4, figure.Edges)
	pose := model.Pose(append([]geom.Point(nil), original...))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := anneal.Anneal(
		ctx, g, figure, hole, pose, 2_000_000,
		anneal.WithBudget(time.Minute),
		anneal.WithRand(rand.New(rand.NewSource(5))),
	)

	require.Equal(geom.Dislike(pose, hole), result.Dislike)
}
