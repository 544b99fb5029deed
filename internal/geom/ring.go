package geom

import "math"

// radiusSlack absorbs floating-point rounding when converting the exact
// rational radius bounds to sqrt-based float64 radii, so lattice points that
// sit exactly on the admissible boundary are not dropped by rounding.
const radiusSlack = 1e-8

// RingRadii returns the (inner, outer) radii of the set of points admissible
// as the far endpoint of an edge whose original squared length was sd0 and
// whose tolerance is epsilon parts-per-million:
//
//	sd0*(1-eps/1e6) <= d^2 <= sd0*(1+eps/1e6)
func RingRadii(epsilon int64, sd0 float64) (inner, outer float64) {
	eps := float64(epsilon) / 1e6
	sqInner := math.Max(0, (1-eps)*sd0)
	sqOuter := (1 + eps) * sd0
	inner = math.Sqrt(sqInner) - radiusSlack
	outer = math.Sqrt(sqOuter) + radiusSlack
	return inner, outer
}

// RingPoints enumerates every integer lattice point p with
// sd0*(1-eps/1e6) <= |p-center|^2 <= sd0*(1+eps/1e6), in y-then-x ascending
// order. Callers that need a different order (e.g. local search's uniform
// sampling) shuffle the returned slice explicitly.
//
// The scan walks each candidate row y from center.Y-outer to center.Y+outer;
// within a row it takes the full outer-disc span but carves out the
// strictly-inside-inner-disc span (if epsilon > 0 this interior band widens
// the ring into an annulus instead of a filled disc).
func RingPoints(center Point, epsilon int64, sd0 float64) []Point {
	inner, outer := RingRadii(epsilon, sd0)
	if outer < 0 {
		return nil
	}

	var pts []Point
	yMin := int64(math.Ceil(center.Y - outer))
	yMax := int64(math.Floor(center.Y + outer))
	iyMin := int64(math.Floor(center.Y - inner))
	iyMax := int64(math.Ceil(center.Y + inner))

	for y := yMin; y <= yMax; y++ {
		dy := float64(y) - center.Y
		s := math.Sqrt(math.Max(0, outer*outer-dy*dy))
		xMin := int64(math.Ceil(center.X - s))
		xMax := int64(math.Floor(center.X + s))

		if iyMin < y && y < iyMax {
			is := math.Sqrt(math.Max(0, inner*inner-dy*dy))
			ixMin := int64(math.Floor(center.X - is))
			ixMax := int64(math.Ceil(center.X + is))
			for x := xMin; x <= ixMin; x++ {
				pts = append(pts, Point{float64(x), float64(y)})
			}
			for x := ixMax; x <= xMax; x++ {
				pts = append(pts, Point{float64(x), float64(y)})
			}
		} else {
			for x := xMin; x <= xMax; x++ {
				pts = append(pts, Point{float64(x), float64(y)})
			}
		}
	}
	return pts
}
