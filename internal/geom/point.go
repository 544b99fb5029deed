package geom

import "math"

// Point is a planar coordinate. Inputs, pose vertices, and hole vertices are
// always integer-valued in practice, but intermediate computation (ring
// radii, repair smoothing) is real-valued, so the field type stays float64
// end to end; Round converts back to the lattice where the pipeline requires
// it.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p scaled by k.
func (p Point) Scale(k float64) Point {
	return Point{p.X * k, p.Y * k}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Equal reports whether p and q have identical coordinates.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Round rounds both coordinates half-up to the nearest integer lattice
// point, i.e. floor(x+0.5) rather than Go's round-half-to-even.
func (p Point) Round() Point {
	return Point{math.Floor(p.X + 0.5), math.Floor(p.Y + 0.5)}
}

// SquaredDistance returns the squared Euclidean distance between a and b.
func SquaredDistance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Sqrt(SquaredDistance(a, b))
}

// BoundingBox returns the axis-aligned (min, max) corners of ps.
// BoundingBox panics on an empty slice; every caller owns a non-empty figure
// or hole by construction.
func BoundingBox(ps []Point) (min, max Point) {
	min = Point{math.Inf(1), math.Inf(1)}
	max = Point{math.Inf(-1), math.Inf(-1)}
	for _, p := range ps {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}

// Centroid returns the arithmetic mean of ps.
func Centroid(ps []Point) Point {
	var sx, sy float64
	for _, p := range ps {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(ps))
	return Point{sx / n, sy / n}
}
