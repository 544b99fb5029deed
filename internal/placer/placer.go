package placer

import (
	"context"
	"math"

	"github.com/katalvlaran/latticepose/internal/geom"
	"github.com/katalvlaran/latticepose/internal/model"
)

// Place enumerates the figure's 8 orientations and, for each, sweeps the
// integer translations that can bring the figure's bounding box into
// overlap with the hole's, returning the lowest-dislike valid pose found.
// No bonus flags apply here, matching spec.md §4.O exactly.
//
// Place polls ctx every 100 candidate placements (the same cadence
// internal/anneal uses) and returns the best pose
// found so far rather than an error when ctx is done, mirroring spec.md
// §5's cancellation contract.
func Place(ctx context.Context, figure model.Figure, hole model.Hole, epsilon int64, opts ...Option) Result {
	o := buildOptions(opts)
	holePts := []geom.Point(hole)
	holeMin, holeMax := geom.BoundingBox(holePts)

	var best Result
	checked := 0

	for _, orient := range orientations(o.EnableMirror) {
		transformed := make([]geom.Point, len(figure.Vertices))
		for i, v := range figure.Vertices {
			transformed[i] = orient.apply(v)
		}
		figMin, figMax := geom.BoundingBox(transformed)

		dxLo := int(math.Ceil(holeMin.X - figMax.X))
		dxHi := int(math.Floor(holeMax.X - figMin.X))
		dyLo := int(math.Ceil(holeMin.Y - figMax.Y))
		dyHi := int(math.Floor(holeMax.Y - figMin.Y))
		if dxLo > dxHi || dyLo > dyHi {
			continue
		}

		step := 1
		if !best.Found {
			span := dxHi - dxLo
			if dyHi-dyLo > span {
				span = dyHi - dyLo
			}
			if d := o.CoarseDivisor; d > 0 {
				step = span / d
			}
			if step < 1 {
				step = 1
			}
		}

		for dy := dyLo; dy <= dyHi; dy += step {
			for dx := dxLo; dx <= dxHi; dx += step {
				checked++
				if checked%100 == 0 {
					select {
					case <-ctx.Done():
						return best
					default:
					}
				}

				pose := make(model.Pose, len(transformed))
				for i, p := range transformed {
					pose[i] = geom.Point{X: p.X + float64(dx), Y: p.Y + float64(dy)}
				}

				ok, err := model.ValidPose(figure, hole, pose, epsilon, model.ActiveBonuses{})
				if err != nil || !ok {
					continue
				}
				dislike := geom.Dislike(pose, holePts)
				if !best.Found || dislike < best.Dislike {
					best = Result{Found: true, Pose: pose, Dislike: dislike}
				}
			}
		}
	}

	return best
}
