package construct

import (
	"context"
	"math"
	"sort"

	"github.com/katalvlaran/latticepose/internal/figuregraph"
	"github.com/katalvlaran/latticepose/internal/geom"
	"github.com/katalvlaran/latticepose/internal/model"
)

// buildEdgeOrder walks the figure graph depth-first, visiting each vertex's
// neighbors in descending-degree order (grounded on
// common.rs::decompose_by_bridges's component walk and dfs2.rs's
// degree-ordered emission), emitting tree edges as they're discovered and
// appending any remaining (non-tree, cycle-closing) edges at the end.
func buildEdgeOrder(g *figuregraph.Graph, edges []model.Edge) []model.Edge {
	visited := make([]bool, g.N)
	var order []model.Edge

	var dfs func(v int)
	dfs = func(v int) {
		visited[v] = true
		neighbors := append([]int(nil), g.Adj[v]...)
		sort.Slice(neighbors, func(i, j int) bool {
			di, dj := g.Degree(neighbors[i]), g.Degree(neighbors[j])
			if di != dj {
				return di > dj
			}
			return neighbors[i] < neighbors[j]
		})
		for _, u := range neighbors {
			if visited[u] {
				continue
			}
			order = append(order, model.Edge{V: v, W: u})
			dfs(u)
		}
	}
	for v := 0; v < g.N; v++ {
		if !visited[v] {
			dfs(v)
		}
	}

	seen := make(map[model.Edge]bool, len(order))
	for _, e := range order {
		seen[e.Normalized()] = true
	}
	for _, e := range edges {
		if !seen[e.Normalized()] {
			order = append(order, e)
		}
	}
	return order
}

// DFSEdges is the graph-aware constructive search of spec.md §4.D: edges
// are visited in the degree-ordered depth-first order of buildEdgeOrder, and
// each new vertex is placed by ranking ring_points around its determined
// neighbor with a direction heuristic that prefers hole-boundary points and
// directions unlike a vertex's already-placed edges. The edge order does not
// use the figure's bridge decomposition, and candidates are not pruned by a
// precomputed possible-range map.
func DFSEdges(ctx context.Context, figure model.Figure, hole model.Hole, epsilon int64, opts ...Option) Result {
	o := buildOptions(opts)

	if len(figure.Edges) == 0 {
		pose := model.Pose(append([]geom.Point(nil), figure.Vertices...))
		return Result{Found: true, Pose: pose, Dislike: geom.Dislike(pose, []geom.Point(hole))}
	}

	g := figuregraph.BuildAdjacency(len(figure.Vertices), figure.Edges)
	edgeOrder := buildEdgeOrder(g, figure.Edges)
	holePts := []geom.Point(hole)

	starts := append([]geom.Point(nil), holePts...)
	interior := interiorPoints(hole)
	o.Rand.Shuffle(len(interior), func(i, j int) { interior[i], interior[j] = interior[j], interior[i] })
	for i := 0; i < o.MaxRandomStarts && i < len(interior); i++ {
		starts = append(starts, interior[i])
	}

	limit := 20
	if len(figure.Vertices) > 30 {
		limit = 4
	}

	var best Result
	root := edgeOrder[0].V

	for _, start := range starts {
		pose := make(model.Pose, len(figure.Vertices))
		determined := make([]bool, len(figure.Vertices))
		pose[root] = start
		determined[root] = true
		var expansions int64

		var recurse func(i int) bool
		recurse = func(i int) bool {
			if i == len(edgeOrder) {
				return true
			}
			e := edgeOrder[i]
			srcDet, dstDet := determined[e.V], determined[e.W]

			switch {
			case srcDet && dstDet:
				if !edgeAdmissible(figure, holePts, pose, e.V, e.W, epsilon) {
					return false
				}
				return recurse(i + 1)
			case srcDet && !dstDet:
				return placeFree(ctx, &expansions, o.MaxNodeExpansions, figure, holePts, g, pose, determined, e.V, e.W, epsilon, limit, func() bool { return recurse(i + 1) })
			case dstDet && !srcDet:
				return placeFree(ctx, &expansions, o.MaxNodeExpansions, figure, holePts, g, pose, determined, e.W, e.V, epsilon, limit, func() bool { return recurse(i + 1) })
			default:
				return false
			}
		}

		if recurse(0) {
			dislike := geom.Dislike(pose, holePts)
			best = betterResult(best, Result{Found: true, Pose: append(model.Pose(nil), pose...), Dislike: dislike})
		}
		if ctxDone(ctx) {
			break
		}
	}

	return best
}

func ctxDone(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// edgeAdmissible checks a single edge whose endpoints are both already
// placed.
func edgeAdmissible(figure model.Figure, hole []geom.Point, pose model.Pose, v, w int, epsilon int64) bool {
	if !geom.LengthOK(pose[v], pose[w], figure.Vertices[v], figure.Vertices[w], epsilon, false) {
		return false
	}
	return geom.SegmentInHole(pose[v], pose[w], hole)
}

// placeFree tries to place the undetermined endpoint free of an edge whose
// other endpoint pivot is already determined, trying candidates in the
// heuristic order of spec.md §4.D, and calls cont for each admissible
// candidate until cont succeeds or candidates are exhausted. It aborts once
// expansions (shared across one start's whole recursion) exceeds
// maxExpansions, spec.md §4.D's hard cap of 10^6 node expansions per start.
func placeFree(
	ctx context.Context,
	expansions *int64,
	maxExpansions int64,
	figure model.Figure,
	hole []geom.Point,
	g *figuregraph.Graph,
	pose model.Pose,
	determined []bool,
	pivot, free int,
	epsilon int64,
	limit int,
	cont func() bool,
) bool {
	sd0 := figure.OriginalSquaredLength(model.Edge{V: pivot, W: free})
	candidates := geom.RingPoints(pose[pivot], epsilon, sd0)
	if len(candidates) == 0 {
		return false
	}

	type scored struct {
		p     geom.Point
		score float64
	}
	existingDirs := determinedDirections(g, pose, determined, pivot)
	ranked := make([]scored, len(candidates))
	for i, c := range candidates {
		bump := 0.0
		if onHoleBoundary(c, hole) {
			bump = -1e8
		}
		ranked[i] = scored{p: c, score: bump + cosineSimilaritySum(c.Sub(pose[pivot]), existingDirs)}
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].score < ranked[j].score })

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	for _, rc := range ranked {
		*expansions++
		if *expansions > maxExpansions {
			return false
		}
		if pollCtx(ctx, *expansions, 10_000) {
			return false
		}
		ok := true
		for _, nb := range g.Adj[free] {
			if !determined[nb] {
				continue
			}
			if nb == pivot {
				continue
			}
			if !geom.LengthOK(rc.p, pose[nb], figure.Vertices[free], figure.Vertices[nb], epsilon, false) {
				ok = false
				break
			}
			if !geom.SegmentInHole(rc.p, pose[nb], hole) {
				ok = false
				break
			}
		}
		if ok && !geom.LengthOK(rc.p, pose[pivot], figure.Vertices[free], figure.Vertices[pivot], epsilon, false) {
			ok = false
		}
		if ok && !geom.SegmentInHole(rc.p, pose[pivot], hole) {
			ok = false
		}
		if !ok {
			continue
		}

		pose[free] = rc.p
		determined[free] = true
		if cont() {
			return true
		}
		determined[free] = false
	}
	return false
}

func onHoleBoundary(p geom.Point, hole []geom.Point) bool {
	for _, h := range hole {
		if h.Equal(p) {
			return true
		}
	}
	return false
}

func determinedDirections(g *figuregraph.Graph, pose model.Pose, determined []bool, v int) []geom.Point {
	var dirs []geom.Point
	for _, u := range g.Adj[v] {
		if determined[u] {
			dirs = append(dirs, pose[u].Sub(pose[v]))
		}
	}
	return dirs
}

func cosineSimilaritySum(dir geom.Point, others []geom.Point) float64 {
	sum := 0.0
	dl := math.Hypot(dir.X, dir.Y)
	if dl == 0 {
		return 0
	}
	for _, o := range others {
		ol := math.Hypot(o.X, o.Y)
		if ol == 0 {
			continue
		}
		sum += dir.Dot(o) / (dl * ol)
	}
	return sum
}
