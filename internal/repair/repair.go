package repair

import (
	"math"

	"github.com/katalvlaran/latticepose/internal/figuregraph"
	"github.com/katalvlaran/latticepose/internal/geom"
	"github.com/katalvlaran/latticepose/internal/model"
)

// Run restores length-ok and segment-in-hole constraints along order after
// pivot has been placed at pivotPos, following spec.md §4.R: up to
// Options.MaxSmoothingPasses pull-vector smoothing steps per vertex, then a
// Manhattan-radius candidate search up to Options.MaxRadius. original holds
// the reference (pre-pose) position of every pose index, including any
// BreakALeg virtual vertex appended after the real figure vertices.
//
// Run is idempotent on an already-valid pose: every smoothing delta is then
// zero and the radius-0 candidate (round(p)) is accepted immediately.
func Run(
	g *figuregraph.Graph,
	original []geom.Point,
	hole []geom.Point,
	pose model.Pose,
	pivot int,
	pivotPos geom.Point,
	order []int,
	epsilon int64,
	opts ...Option,
) (model.Pose, error) {
	o := buildOptions(opts)
	if len(order) == 0 {
		return nil, ErrEmptyOrder
	}

	newPose := make([]geom.Point, len(pose))
	copy(newPose, pose)
	determined := make([]bool, len(newPose))

	newPose[pivot] = pivotPos
	determined[pivot] = true

	epsFrac := float64(epsilon) / 1e6
	slack := math.Sqrt(math.Max(epsFrac, 0))

	for _, f := range order {
		if f == pivot {
			continue
		}

		p := newPose[f]
		for pass := 0; pass < o.MaxSmoothingPasses; pass++ {
			for _, t := range g.Adj[f] {
				if !determined[t] {
					continue
				}
				sd0 := geom.SquaredDistance(original[t], original[f])
				if sd0 == 0 {
					continue
				}
				sd := geom.SquaredDistance(newPose[t], p)
				if math.Abs(sd/sd0-1) <= epsFrac {
					continue
				}
				d0 := geom.Distance(original[t], original[f])
				dNow := geom.Distance(newPose[t], p)
				delta := dNow/d0 - 1
				pull := newPose[t].Sub(p).Scale(delta * slack)
				p = p.Add(pull)
			}
		}

		accept, ok := searchCandidate(g, original, hole, newPose, determined, f, p, epsilon, o)
		if !ok {
			return nil, ErrRepairFailed
		}
		newPose[f] = accept
		determined[f] = true
	}

	return model.Pose(newPose), nil
}

// searchCandidate tries round(p) and then every integer point at Manhattan
// radius 1..MaxRadius, y-dominant order, returning the first that satisfies
// length_ok and segment_in_hole against every already-determined neighbor
// of f.
func searchCandidate(
	g *figuregraph.Graph,
	original []geom.Point,
	hole []geom.Point,
	pose []geom.Point,
	determined []bool,
	f int,
	p geom.Point,
	epsilon int64,
	o Options,
) (geom.Point, bool) {
	base := p.Round()
	if admissible(g, original, hole, pose, determined, f, base, epsilon, o) {
		return base, true
	}
	for r := 1; r <= o.MaxRadius; r++ {
		for _, c := range manhattanRing(base, r) {
			if admissible(g, original, hole, pose, determined, f, c, epsilon, o) {
				return c, true
			}
		}
	}
	return geom.Point{}, false
}

func admissible(
	g *figuregraph.Graph,
	original []geom.Point,
	hole []geom.Point,
	pose []geom.Point,
	determined []bool,
	f int,
	c geom.Point,
	epsilon int64,
	o Options,
) bool {
	for _, t := range g.Adj[f] {
		if !determined[t] {
			continue
		}
		breakLeg := o.BreakLegEdges[normalizedKey(f, t)]
		if !geom.LengthOK(c, pose[t], original[f], original[t], epsilon, breakLeg) {
			return false
		}
		if !geom.SegmentInHole(c, pose[t], hole) {
			return false
		}
	}
	return true
}

func normalizedKey(v, w int) EdgeKey {
	if v > w {
		v, w = w, v
	}
	return EdgeKey{V: v, W: w}
}

// manhattanRing enumerates every integer point at Manhattan distance r from
// center, in ascending-y then ascending-x order (the same convention
// internal/geom's ring enumeration uses).
func manhattanRing(center geom.Point, r int) []geom.Point {
	cx, cy := int(center.X), int(center.Y)
	pts := make([]geom.Point, 0, 4*r)
	for dy := -r; dy <= r; dy++ {
		dx := r - abs(dy)
		if dx == 0 {
			pts = append(pts, geom.Point{X: float64(cx), Y: float64(cy + dy)})
			continue
		}
		pts = append(pts, geom.Point{X: float64(cx - dx), Y: float64(cy + dy)})
		pts = append(pts, geom.Point{X: float64(cx + dx), Y: float64(cy + dy)})
	}
	return pts
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
