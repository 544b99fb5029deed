package anneal

import (
	"context"
	"math"
	"time"

	"github.com/katalvlaran/latticepose/internal/figuregraph"
	"github.com/katalvlaran/latticepose/internal/geom"
	"github.com/katalvlaran/latticepose/internal/model"
)

// temperature implements spec.md §4.H's cooling schedule:
// T(progress) = T0 * (1-progress) * 2^(-progress).
func temperature(t0, progress float64) float64 {
	return t0 * (1 - progress) * math.Exp2(-progress)
}

// Anneal runs simulated annealing over combinedScore (a dislike/variance
// blend), alternating the single-vertex move operator (drawn with
// probability progress) and the compound graph-distance-weighted operator
// (drawn with probability 1-progress). It tracks and returns the best pose
// observed by dislike, independent of which pose the chain currently holds.
func Anneal(ctx context.Context, g *figuregraph.Graph, figure model.Figure, hole model.Hole, pose model.Pose, epsilon int64, opts ...Option) Result {
	o := buildOptions(opts)
	start := time.Now()
	deadline := start.Add(o.Budget)
	weights := distanceSums(g)
	holeVertexCount := len(hole)

	current := append(model.Pose(nil), pose...)
	currentDislike := geom.Dislike(current, hole)
	currentScore := combinedScore(current, currentDislike, holeVertexCount, 0)

	best := append(model.Pose(nil), current...)
	bestDislike := currentDislike

	for iter := 0; bestDislike > 0; iter++ {
		if iter%o.PollEvery == 0 {
			select {
			case <-ctx.Done():
				return Result{Pose: best, Dislike: bestDislike}
			default:
			}
			if time.Now().After(deadline) {
				return Result{Pose: best, Dislike: bestDislike}
			}
		}

		elapsed := time.Since(start)
		progress := float64(elapsed) / float64(o.Budget)
		if progress > 1 {
			progress = 1
		}

		var candidate model.Pose
		var ok bool
		if o.Rand.Float64() < progress {
			candidate, ok = singleVertexMove(g, figure, hole, current, epsilon, o)
		} else {
			candidate, ok = compoundMove(g, figure, hole, current, epsilon, weights, o)
		}
		if !ok {
			continue
		}

		candidateDislike := geom.Dislike(candidate, hole)
		candidateScore := combinedScore(candidate, candidateDislike, holeVertexCount, progress)

		delta := candidateScore - currentScore
		accept := false
		switch {
		case delta <= 0:
			accept = true
		default:
			t := temperature(o.InitialTemperature, progress)
			if t > 0 && o.Rand.Float64() < math.Exp(-delta/t) {
				accept = true
			}
		}

		if accept {
			current = candidate
			currentDislike = candidateDislike
			currentScore = candidateScore
		}
		if candidateDislike < bestDislike {
			best = append(model.Pose(nil), candidate...)
			bestDislike = candidateDislike
		}
	}

	return Result{Pose: best, Dislike: bestDislike}
}
