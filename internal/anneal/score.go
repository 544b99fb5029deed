package anneal

import "github.com/katalvlaran/latticepose/internal/geom"

// dislikeScore normalizes a raw dislike value by the hole's vertex count.
func dislikeScore(dislike float64, holeVertexCount int) float64 {
	if holeVertexCount == 0 {
		return 0
	}
	return dislike / float64(holeVertexCount)
}

// varianceScore is the negative sum of the pose's coordinate variances;
// lower (more negative) means more spread out.
func varianceScore(pose []geom.Point) float64 {
	if len(pose) == 0 {
		return 0
	}
	c := geom.Centroid(pose)
	var vx, vy float64
	for _, p := range pose {
		dx, dy := p.X-c.X, p.Y-c.Y
		vx += dx * dx
		vy += dy * dy
	}
	n := float64(len(pose))
	return -(vx/n + vy/n)
}

// combinedScore blends dislikeScore and varianceScore by progress in
// [0,1], per spec.md §4.H: early iterations favor spread, later iterations
// favor tightening onto the hole. Lower is better, matching dislike's own
// orientation.
func combinedScore(pose []geom.Point, dislike float64, holeVertexCount int, progress float64) float64 {
	return dislikeScore(dislike, holeVertexCount)*progress + varianceScore(pose)*(1-progress)
}
