package placer

import "github.com/katalvlaran/latticepose/internal/geom"

// orientation is one of the 8 symmetries the sweep tries: rot counts
// 90-degree counterclockwise turns (0..3) applied after an optional
// x-axis mirror.
type orientation struct {
	rot    int
	mirror bool
}

// orientations lists all 8 rotation x mirror combinations, mirror disabled
// entries omitted by the caller when Options.EnableMirror is false.
func orientations(includeMirror bool) []orientation {
	out := make([]orientation, 0, 8)
	for rot := 0; rot < 4; rot++ {
		out = append(out, orientation{rot: rot, mirror: false})
	}
	if includeMirror {
		for rot := 0; rot < 4; rot++ {
			out = append(out, orientation{rot: rot, mirror: true})
		}
	}
	return out
}

// apply maps p through the orientation about the origin. Since rot is a
// multiple of 90 degrees and mirror flips only the x axis, every image of
// an integer point is itself an integer point.
func (o orientation) apply(p geom.Point) geom.Point {
	x, y := p.X, p.Y
	if o.mirror {
		x = -x
	}
	switch o.rot {
	case 1:
		x, y = -y, x
	case 2:
		x, y = -x, -y
	case 3:
		x, y = y, -x
	}
	return geom.Point{X: x, Y: y}
}
