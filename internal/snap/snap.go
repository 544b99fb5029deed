package snap

import (
	"github.com/katalvlaran/latticepose/internal/figuregraph"
	"github.com/katalvlaran/latticepose/internal/geom"
	"github.com/katalvlaran/latticepose/internal/model"
	"github.com/katalvlaran/latticepose/internal/repair"
)

// Run implements spec.md §4.A in a single pass: for every hole vertex not
// already coincident with some pose vertex, it tries pinning each
// not-yet-pinned pose vertex onto that corner, accepting the first attempt
// whose repaired pose is valid and strictly reduces dislike.
func Run(g *figuregraph.Graph, figure model.Figure, hole model.Hole, pose model.Pose, epsilon int64, bonuses model.ActiveBonuses) model.Pose {
	holePts := []geom.Point(hole)
	n := len(pose)

	satisfied := make([]bool, len(holePts))
	for hi, h := range holePts {
		for _, p := range pose {
			if p.Equal(h) {
				satisfied[hi] = true
				break
			}
		}
	}

	pinned := make([]bool, n)
	current := append(model.Pose(nil), pose...)
	currentDislike := geom.Dislike(current, holePts)

	for hi, h := range holePts {
		if satisfied[hi] {
			continue
		}
		for v := 0; v < n; v++ {
			if pinned[v] {
				continue
			}
			order, err := figuregraph.DeterminationOrder(g, v)
			if err != nil {
				continue
			}
			candidate, err := repair.Run(g, figure.Vertices, holePts, current, v, h, order, epsilon)
			if err != nil {
				continue
			}
			ok, verr := model.ValidPose(figure, hole, candidate, epsilon, bonuses)
			if verr != nil || !ok {
				continue
			}
			newDislike := geom.Dislike(candidate, holePts)
			if newDislike >= currentDislike {
				continue
			}

			current = candidate
			currentDislike = newDislike
			pinned[v] = true
			satisfied[hi] = true
			break
		}
	}

	return current
}
