package anneal

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/latticepose/internal/figuregraph"
	"github.com/katalvlaran/latticepose/internal/geom"
	"github.com/katalvlaran/latticepose/internal/model"
	"github.com/katalvlaran/latticepose/internal/repair"
)

// singleVertexMove implements spec.md §4.H's move operator: pick a vertex
// i uniformly, a neighbor j of i, enumerate (or, above the sampling
// threshold, randomly sample) ring points around pose[j] at i's original
// distance from j, and return the first candidate admissible against every
// one of i's neighbors.
func singleVertexMove(
	g *figuregraph.Graph,
	figure model.Figure,
	hole []geom.Point,
	pose model.Pose,
	epsilon int64,
	o Options,
) (model.Pose, bool) {
	n := len(pose)
	if n == 0 {
		return pose, false
	}
	i := o.Rand.Intn(n)
	if len(g.Adj[i]) == 0 {
		return pose, false
	}
	j := g.Adj[i][o.Rand.Intn(len(g.Adj[i]))]
	sd0 := figure.OriginalSquaredLength(model.Edge{V: i, W: j})

	accept := func(p geom.Point) bool {
		for _, dst := range g.Adj[i] {
			if !geom.LengthOK(p, pose[dst], figure.Vertices[i], figure.Vertices[dst], epsilon, false) {
				return false
			}
			if !geom.SegmentInHole(p, pose[dst], hole) {
				return false
			}
		}
		return true
	}

	if sd0 >= o.SamplingThresholdSD0 && epsilon >= o.SamplingThresholdEpsilon {
		inner, outer := geom.RingRadii(epsilon, sd0)
		for try := 0; try < o.SamplingTries; try++ {
			radius := inner + o.Rand.Float64()*(outer-inner)
			angle := o.Rand.Float64() * 2 * math.Pi
			c := geom.Point{
				X: pose[j].X + radius*math.Cos(angle),
				Y: pose[j].Y + radius*math.Sin(angle),
			}.Round()
			if accept(c) {
				return withVertex(pose, i, c), true
			}
		}
		return pose, false
	}

	candidates := geom.RingPoints(pose[j], epsilon, sd0)
	o.Rand.Shuffle(len(candidates), func(a, b int) { candidates[a], candidates[b] = candidates[b], candidates[a] })
	for _, c := range candidates {
		if accept(c) {
			return withVertex(pose, i, c), true
		}
	}
	return pose, false
}

func withVertex(pose model.Pose, i int, p geom.Point) model.Pose {
	out := append(model.Pose(nil), pose...)
	out[i] = p
	return out
}

// distanceSums returns, per vertex, the sum of squared BFS hop distances to
// every other reachable vertex, grounded on common.rs::calc_distance_sums.
// It weights the compound operator's vertex choice toward vertices that
// are, on average, graph-distant from the rest of the figure.
func distanceSums(g *figuregraph.Graph) []float64 {
	sums := make([]float64, g.N)
	for s := 0; s < g.N; s++ {
		dist := make([]int, g.N)
		for i := range dist {
			dist[i] = -1
		}
		dist[s] = 0
		queue := []int{s}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, u := range g.Adj[v] {
				if dist[u] == -1 {
					dist[u] = dist[v] + 1
					queue = append(queue, u)
				}
			}
		}
		var sum float64
		for _, d := range dist {
			if d > 0 {
				sum += float64(d * d)
			}
		}
		sums[s] = sum
	}
	return sums
}

// weightedPick chooses an index in [0,len(weights)) with probability
// proportional to weights[i]; if every weight is zero it falls back to a
// uniform pick.
func weightedPick(weights []float64, rnd *rand.Rand) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return rnd.Intn(len(weights))
	}
	target := rnd.Float64() * total
	var acc float64
	for i, w := range weights {
		acc += w
		if target <= acc {
			return i
		}
	}
	return len(weights) - 1
}

// compoundMove implements spec.md §4.H's secondary operator: pick a vertex
// weighted by graph-distance-squared, displace it by a random Manhattan
// offset within a half-width box, then run Repair to re-establish the rest
// of the pose.
func compoundMove(
	g *figuregraph.Graph,
	figure model.Figure,
	hole []geom.Point,
	pose model.Pose,
	epsilon int64,
	weights []float64,
	o Options,
) (model.Pose, bool) {
	if len(pose) == 0 {
		return pose, false
	}
	v := weightedPick(weights, o.Rand)
	half := o.CompoundDisplacementMin
	if o.CompoundDisplacementMax > o.CompoundDisplacementMin {
		half += o.Rand.Intn(o.CompoundDisplacementMax - o.CompoundDisplacementMin + 1)
	}
	dx := o.Rand.Intn(2*half+1) - half
	dy := o.Rand.Intn(2*half+1) - half
	candidate := geom.Point{X: pose[v].X + float64(dx), Y: pose[v].Y + float64(dy)}

	order, err := figuregraph.DeterminationOrder(g, v)
	if err != nil {
		return pose, false
	}
	repaired, err := repair.Run(g, figure.Vertices, hole, pose, v, candidate, order, epsilon)
	if err != nil {
		return pose, false
	}
	return repaired, true
}
