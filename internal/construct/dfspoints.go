package construct

import (
	"context"

	"github.com/katalvlaran/latticepose/internal/figuregraph"
	"github.com/katalvlaran/latticepose/internal/geom"
	"github.com/katalvlaran/latticepose/internal/model"
)

// DFSPoints is the naive constructive search of spec.md §4.D: it enumerates
// hole-interior integer points once, sorted by squared distance to the
// hole centroid (unless DisableCentroidSort is set), and assigns figure
// vertices to candidates in determination order, backtracking on failure.
func DFSPoints(ctx context.Context, figure model.Figure, hole model.Hole, epsilon int64, opts ...Option) Result {
	o := buildOptions(opts)

	if len(figure.Edges) == 0 {
		pose := model.Pose(append([]geom.Point(nil), figure.Vertices...))
		return Result{Found: true, Pose: pose, Dislike: geom.Dislike(pose, []geom.Point(hole))}
	}

	candidates := interiorPoints(hole)
	if len(candidates) == 0 {
		return Result{}
	}
	if !o.DisableCentroidSort {
		sortByDistanceToCentroid(candidates, []geom.Point(hole))
	}

	g := figuregraph.BuildAdjacency(len(figure.Vertices), figure.Edges)
	order, err := figuregraph.DeterminationOrder(g, 0)
	if err != nil {
		return Result{}
	}

	holePts := []geom.Point(hole)
	pose := make(model.Pose, len(order))
	determined := make([]bool, len(order))
	var expansions int64
	aborted := false

	var recurse func(i int) bool
	recurse = func(i int) bool {
		if i == len(order) {
			return true
		}
		v := order[i]
		for _, c := range candidates {
			expansions++
			if expansions > o.MaxNodeExpansions {
				aborted = true
				return false
			}
			if pollCtx(ctx, expansions, 10_000) {
				aborted = true
				return false
			}

			ok := true
			for _, u := range g.Adj[v] {
				if !determined[u] {
					continue
				}
				if !geom.LengthOK(c, pose[u], figure.Vertices[v], figure.Vertices[u], epsilon, false) {
					ok = false
					break
				}
				if !geom.SegmentInHole(c, pose[u], holePts) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}

			pose[v] = c
			determined[v] = true
			if recurse(i + 1) {
				return true
			}
			determined[v] = false
			if aborted {
				return false
			}
		}
		return false
	}

	if !recurse(0) {
		return Result{}
	}
	return Result{Found: true, Pose: append(model.Pose(nil), pose...), Dislike: geom.Dislike(pose, holePts)}
}
