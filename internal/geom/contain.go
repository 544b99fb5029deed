package geom

import "math"

// orient returns twice the signed area of triangle (a,b,c): positive if
// a->b->c turns left, negative if right, zero if collinear.
func orient(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// onSegment reports whether p lies on the closed segment ab, assuming p is
// already known to be collinear with a and b (or nearly so).
func onSegment(p, a, b Point) bool {
	const eps = 1e-9
	if math.Abs(orient(a, b, p)) > eps {
		return false
	}
	return p.X >= math.Min(a.X, b.X)-eps && p.X <= math.Max(a.X, b.X)+eps &&
		p.Y >= math.Min(a.Y, b.Y)-eps && p.Y <= math.Max(a.Y, b.Y)+eps
}

// onBoundary reports whether p lies on any edge of the closed polygon hole.
func onBoundary(p Point, hole []Point) bool {
	n := len(hole)
	for i := 0; i < n; i++ {
		a := hole[i]
		b := hole[(i+1)%n]
		if onSegment(p, a, b) {
			return true
		}
	}
	return false
}

// insideRayCast runs the standard even-odd ray-casting test. Its result is
// meaningful only for points not on the boundary; callers must special-case
// the boundary separately (see PointInHole).
func insideRayCast(p Point, hole []Point) bool {
	inside := false
	n := len(hole)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := hole[i], hole[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xIntersect := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < xIntersect {
				inside = !inside
			}
		}
	}
	return inside
}

// PointInHole reports whether p lies in the closure of hole: interior or on
// the boundary.
func PointInHole(p Point, hole []Point) bool {
	if onBoundary(p, hole) {
		return true
	}
	return insideRayCast(p, hole)
}

// segmentsProperlyCross reports whether open segment p1p2 crosses open
// segment a b transversally, i.e. they intersect at a single point that is
// an interior point of both segments (not a shared endpoint, not a
// collinear overlap). A proper crossing of a polygon edge always means the
// line briefly leaves the polygon's closure, by the Jordan curve property of
// a simple polygon.
func segmentsProperlyCross(p1, p2, a, b Point) bool {
	o1 := orient(p1, p2, a)
	o2 := orient(p1, p2, b)
	o3 := orient(a, b, p1)
	o4 := orient(a, b, p2)
	return (o1 > 0) != (o2 > 0) && o1 != 0 && o2 != 0 &&
		(o3 > 0) != (o4 > 0) && o3 != 0 && o4 != 0
}

// SegmentInHole reports whether the closed segment pq lies entirely in the
// closure of hole. A segment coincident with a boundary edge is accepted,
// matching the reference implementation's geo::Contains semantics.
func SegmentInHole(p, q Point, hole []Point) bool {
	if !PointInHole(p, hole) || !PointInHole(q, hole) {
		return false
	}
	if p.Equal(q) {
		return true
	}

	n := len(hole)
	for i := 0; i < n; i++ {
		a := hole[i]
		b := hole[(i+1)%n]
		if segmentsProperlyCross(p, q, a, b) {
			return false
		}
	}

	// No transversal crossing of any edge: the segment either stays inside
	// the closure throughout, or (for a non-convex hole) dips outside
	// without crossing an edge only by running tangent to a reflex vertex,
	// which a midpoint sample on the open segment would already catch.
	mid := Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
	return PointInHole(mid, hole)
}
