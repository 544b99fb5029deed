package anneal

import (
	"context"
	"time"

	"github.com/katalvlaran/latticepose/internal/figuregraph"
	"github.com/katalvlaran/latticepose/internal/geom"
	"github.com/katalvlaran/latticepose/internal/model"
)

// HillClimb runs a dislike-only local search: a proposed move is kept only
// if it strictly reduces dislike. It terminates early on dislike reaching
// zero, on the context being cancelled, or on the time budget expiring.
func HillClimb(ctx context.Context, g *figuregraph.Graph, figure model.Figure, hole model.Hole, pose model.Pose, epsilon int64, opts ...Option) Result {
	o := buildOptions(opts)
	deadline := time.Now().Add(o.Budget)

	best := append(model.Pose(nil), pose...)
	bestDislike := geom.Dislike(best, hole)

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

		candidate, ok := singleVertexMove(g, figure, hole, best, epsilon, o)
		if !ok {
			continue
		}
		candidateDislike := geom.Dislike(candidate, hole)
		if candidateDislike < bestDislike {
			best = candidate
			bestDislike = candidateDislike
		}
	}

	return Result{Pose: best, Dislike: bestDislike}
}
