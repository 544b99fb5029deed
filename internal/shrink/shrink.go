package shrink

import (
	"context"

	"github.com/katalvlaran/latticepose/internal/figuregraph"
	"github.com/katalvlaran/latticepose/internal/geom"
	"github.com/katalvlaran/latticepose/internal/model"
	"github.com/katalvlaran/latticepose/internal/placer"
	"github.com/katalvlaran/latticepose/internal/repair"
)

// Run implements spec.md §4.S: repeatedly proposes a small random
// displacement of one vertex, repairs the rest of the pose against a
// relaxed ("no hole") containment rule, and keeps the move if it reduces
// coordinate variance. Every vertexCount*10 iterations it asks
// internal/placer whether the current shrunk shape now fits the real hole;
// a success there ends the run early.
func Run(ctx context.Context, figure model.Figure, hole model.Hole, epsilon int64, opts ...Option) (Result, error) {
	o := buildOptions(opts)
	n := len(figure.Vertices)
	if n == 0 {
		return Result{}, ErrEmptyFigure
	}

	g := figuregraph.BuildAdjacency(n, figure.Edges)
	relaxedHole := relaxedBoundingHole(figure.Vertices, o.RelaxedMargin)

	orders := make([][]int, n)
	for v := 0; v < n; v++ {
		ord, err := figuregraph.DeterminationOrder(g, v)
		if err != nil {
			return Result{}, err
		}
		orders[v] = ord
	}

	pose := model.Pose(append([]geom.Point(nil), figure.Vertices...))
	placerCheckEvery := n * 10
	if placerCheckEvery == 0 {
		placerCheckEvery = 1
	}

	for iter := 0; iter < o.MaxIterations; iter++ {
		if iter%100 == 0 {
			select {
			case <-ctx.Done():
				return Result{Pose: pose, Dislike: geom.Dislike(pose, []geom.Point(hole))}, nil
			default:
			}
		}

		if iter > 0 && iter%placerCheckEvery == 0 {
			shape := model.Figure{Vertices: pose, Edges: figure.Edges}
			res := placer.Place(ctx, shape, hole, epsilon)
			if res.Found {
				return Result{PlacedByPlacer: true, Pose: res.Pose, Dislike: res.Dislike}, nil
			}
		}

		v := o.Rand.Intn(n)
		dx := o.Rand.Intn(2*o.DisplacementRange+1) - o.DisplacementRange
		dy := o.Rand.Intn(2*o.DisplacementRange+1) - o.DisplacementRange
		candidate := geom.Point{X: pose[v].X + float64(dx), Y: pose[v].Y + float64(dy)}

		repaired, err := repair.Run(g, figure.Vertices, []geom.Point(relaxedHole), pose, v, candidate, orders[v], epsilon)
		if err != nil {
			continue
		}
		if variance(repaired) < variance(pose) {
			pose = repaired
		}
	}

	return Result{Pose: pose, Dislike: geom.Dislike(pose, []geom.Point(hole))}, nil
}

// relaxedBoundingHole returns the figure's own bounding box inflated by
// margin on every side, standing in for "containment always succeeds".
func relaxedBoundingHole(vertices []geom.Point, margin float64) model.Hole {
	min, max := geom.BoundingBox(vertices)
	return model.Hole{
		{X: min.X - margin, Y: min.Y - margin},
		{X: max.X + margin, Y: min.Y - margin},
		{X: max.X + margin, Y: max.Y + margin},
		{X: min.X - margin, Y: max.Y + margin},
	}
}

func variance(pose model.Pose) float64 {
	if len(pose) == 0 {
		return 0
	}
	c := geom.Centroid(pose)
	var vx, vy float64
	for _, p := range pose {
		dx := p.X - c.X
		dy := p.Y - c.Y
		vx += dx * dx
		vy += dy * dy
	}
	n := float64(len(pose))
	return vx/n + vy/n
}
