package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latticepose/internal/geom"
	"github.com/katalvlaran/latticepose/internal/model"
)

func pt(x, y float64) geom.Point { return geom.Point{X: x, Y: y} }

func pts(xy ...float64) []geom.Point {
	out := make([]geom.Point, 0, len(xy)/2)
	for i := 0; i < len(xy); i += 2 {
		out = append(out, pt(xy[i], xy[i+1]))
	}
	return out
}

// holeLambda is a concave "C" shaped hole, small enough to hand-verify but
// non-convex enough to exercise the reflex-vertex containment paths.
func holeLambda() model.Hole {
	return model.Hole(pts(
		0, 0, 10, 0, 10, 4, 4, 4,
		4, 6, 10, 6, 10, 10, 0, 10,
	))
}

func TestValidPoseRejectsVertexOutsideHole(t *testing.T) {
	require := require.New(t)

	hole := model.Hole(pts(0, 0, 23, 0, 23, 38, 0, 38))
	figure := model.Figure{
		Vertices: pts(0, 7, 0, 31, 22, 0, 22, 38, 36, 19),
		Edges: []model.Edge{
			{V: 0, W: 1}, {V: 0, W: 2}, {V: 1, W: 3}, {V: 2, W: 4}, {V: 3, W: 4},
		},
	}
	pose := model.Pose(pts(34, 22, 10, 24, 11, 21, 23, 5, 0, 0))

	ok, err := model.ValidPose(figure, hole, pose, 15010, model.ActiveBonuses{})
	require.NoError(err)
	require.False(ok, "vertex (34,22) lies outside the hole's bounding width")
}

func TestValidPoseAcceptsIdentityPlacement(t *testing.T) {
	require := require.New(t)

	hole := holeLambda()
	figure := model.Figure{
		Vertices: []geom.Point(hole),
		Edges: func() []model.Edge {
			es := make([]model.Edge, len(hole))
			for i := range hole {
				es[i] = model.Edge{V: i, W: (i + 1) % len(hole)}
			}
			return es
		}(),
	}
	ok, err := model.ValidPose(figure, hole, model.Pose(figure.Vertices), 0, model.ActiveBonuses{})
	require.NoError(err)
	require.True(ok, "the hole placed on itself must always validate")
}

func TestValidPoseGlobalistAndBreakALegConflict(t *testing.T) {
	require := require.New(t)

	hole := model.Hole(pts(0, 0, 10, 0, 10, 10, 0, 10))
	figure := model.Figure{
		Vertices: pts(1, 1, 1, 9),
		Edges:    []model.Edge{{V: 0, W: 1}},
	}
	_, err := model.ValidPose(figure, hole, model.Pose(figure.Vertices), 0, model.ActiveBonuses{
		Globalist: true,
		BreakALeg: true,
	})
	require.ErrorIs(err, model.ErrBonusConflict)
}

func TestValidPoseBreakALegSplitsEdge(t *testing.T) {
	require := require.New(t)

	hole := model.Hole(pts(0, 0, 20, 0, 20, 20, 0, 20))
	figure := model.Figure{
		Vertices: pts(0, 0, 10, 0),
		Edges:    []model.Edge{{V: 0, W: 1}},
	}
	// Stretch the single edge through a detour via (5,8); each half has
	// squared length 89 against an original of 100, which BreakALeg's
	// quadrupling pushes to 356 versus 100 - needing a generous epsilon.
	pose := model.Pose(pts(0, 0, 10, 0, 5, 8))
	ok, err := model.ValidPose(figure, hole, pose, 3_000_000, model.ActiveBonuses{
		BreakALeg:    true,
		BreakLegEdge: model.Edge{V: 0, W: 1},
	})
	require.NoError(err)
	require.True(ok)
}

func TestValidPoseWallHackExemptsOneVertex(t *testing.T) {
	require := require.New(t)

	hole := model.Hole(pts(0, 0, 10, 0, 10, 10, 0, 10))
	figure := model.Figure{
		Vertices: pts(0, 0, 3, 4), // original squared length 25
		Edges:    []model.Edge{{V: 0, W: 1}},
	}
	// Pose keeps the edge's squared length at 2500, a 100x stretch absorbed
	// by a generous epsilon, but pushes vertex 1 far outside the hole.
	outside := model.Pose(pts(5, 5, 35, 45))
	const epsilon = 100_000_000

	ok, err := model.ValidPose(figure, hole, outside, epsilon, model.ActiveBonuses{})
	require.NoError(err)
	require.False(ok, "without WallHack the outside vertex must fail containment")

	ok, err = model.ValidPose(figure, hole, outside, epsilon, model.ActiveBonuses{
		WallHack: true,
	})
	require.NoError(err)
	require.False(ok, "the exempt vertex is excused but the edge to it still crosses outside the hole")
}

func TestValidPoseWallHackFindsTheOutsideVertexDynamically(t *testing.T) {
	require := require.New(t)

	hole := model.Hole(pts(0, 0, 10, 0, 10, 10, 0, 10))
	figure := model.Figure{
		Vertices: pts(1, 1, 2, 2, 50, 50),
		Edges:    []model.Edge{{V: 0, W: 1}},
	}
	// Vertex 2 has no incident edge and sits far outside the hole; vertices
	// 0 and 1 stay put and inside. No bonus field names index 2 anywhere -
	// ValidPose must discover it is the outside vertex on its own.
	pose := model.Pose(pts(1, 1, 2, 2, 50, 50))

	ok, err := model.ValidPose(figure, hole, pose, 0, model.ActiveBonuses{})
	require.NoError(err)
	require.False(ok, "without WallHack the stray vertex must fail containment")

	ok, err = model.ValidPose(figure, hole, pose, 0, model.ActiveBonuses{WallHack: true})
	require.NoError(err)
	require.True(ok, "WallHack exempts whichever vertex is outside, even with no vertex named ahead of time")
}

func TestValidPosePoseSizeMismatch(t *testing.T) {
	require := require.New(t)

	hole := model.Hole(pts(0, 0, 10, 0, 10, 10, 0, 10))
	figure := model.Figure{Vertices: pts(1, 1, 1, 2), Edges: []model.Edge{{V: 0, W: 1}}}

	_, err := model.ValidPose(figure, hole, model.Pose(pts(1, 1)), 0, model.ActiveBonuses{})
	require.ErrorIs(err, model.ErrPoseSizeMismatch)
}
