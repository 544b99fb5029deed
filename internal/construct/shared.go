package construct

import (
	"context"
	"sort"

	"github.com/katalvlaran/latticepose/internal/geom"
	"github.com/katalvlaran/latticepose/internal/model"
)

// Result is the outcome of a constructive search.
type Result struct {
	Found   bool
	Pose    model.Pose
	Dislike float64
}

// interiorPoints enumerates every integer lattice point within hole's
// bounding box that lies in the hole's closure.
func interiorPoints(hole model.Hole) []geom.Point {
	holePts := []geom.Point(hole)
	min, max := geom.BoundingBox(holePts)
	var pts []geom.Point
	for y := int(min.Y); y <= int(max.Y); y++ {
		for x := int(min.X); x <= int(max.X); x++ {
			p := geom.Point{X: float64(x), Y: float64(y)}
			if geom.PointInHole(p, holePts) {
				pts = append(pts, p)
			}
		}
	}
	return pts
}

// sortByDistanceToCentroid orders pts by ascending squared distance to the
// centroid of ref.
func sortByDistanceToCentroid(pts []geom.Point, ref []geom.Point) {
	c := geom.Centroid(ref)
	sort.Slice(pts, func(i, j int) bool {
		return geom.SquaredDistance(pts[i], c) < geom.SquaredDistance(pts[j], c)
	})
}

// pollCtx checks ctx every interval expansions, returning true once it is
// time to abort.
func pollCtx(ctx context.Context, expansions int64, interval int64) bool {
	if expansions%interval != 0 {
		return false
	}
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

func betterResult(a, b Result) Result {
	if !a.Found {
		return b
	}
	if !b.Found {
		return a
	}
	if b.Dislike < a.Dislike {
		return b
	}
	return a
}
