package geom

import "math"

// globalistSlack absorbs floating point error in the aggregate Globalist
// test so that a sum that should exactly equal the threshold does not flip
// due to rounding, matching the reference implementation's 1e-7 epsilon.
const globalistSlack = 1e-7

// LengthOK reports whether the edge p-q (whose original endpoints were
// p0,q0) satisfies the epsilon parts-per-million tolerance:
//
//	(1e6-eps)*sd0 <= 1e6*sd <= (1e6+eps)*sd0
//
// where sd = |p-q|^2 (or 4*|p-q|^2 when breakLeg is set, for a BreakALeg
// sub-edge whose reference length is half the original edge).
// This exact integer-style form (rather than a ratio comparison) is
// mandatory to match reference validation at the tolerance boundary.
func LengthOK(p, q, p0, q0 Point, epsilon int64, breakLeg bool) bool {
	sd := SquaredDistance(p, q)
	if breakLeg {
		sd *= 4
	}
	sd0 := SquaredDistance(p0, q0)

	lo := (1e6 - float64(epsilon)) * sd0
	mid := sd * 1e6
	hi := (1e6 + float64(epsilon)) * sd0
	return lo <= mid && mid <= hi
}

// DistanceRatio returns |p-q| / |p0-q0| - 1, used by the repair routine's
// smoothing pass to size its pull vector.
func DistanceRatio(p, q, p0, q0 Point) float64 {
	return Distance(p, q)/Distance(p0, q0) - 1
}

// EdgeRef is the minimal per-edge information GlobalLengthOK needs: the
// current and original endpoints, without depending on the figure/model
// package (kept dependency-free so geom never imports model).
type EdgeRef struct {
	P, Q   Point
	P0, Q0 Point
}

// GlobalLengthOK implements the Globalist bonus's aggregate tolerance test:
// the sum of relative length deviations across all edges must stay (with a
// small slack to avoid boundary flips) strictly under edgeCount*eps/1e6.
func GlobalLengthOK(edges []EdgeRef, epsilon int64) bool {
	sum := 0.0
	for _, e := range edges {
		sd := SquaredDistance(e.P, e.Q)
		sd0 := SquaredDistance(e.P0, e.Q0)
		sum += math.Abs(1 - sd/sd0)
	}
	threshold := float64(len(edges)) * float64(epsilon) / 1e6
	return sum+globalistSlack < threshold
}
