package model

import "github.com/katalvlaran/latticepose/internal/geom"

// Edge is an unordered pair of vertex indices into a Figure's vertex list.
// V and W are always distinct (internal/ioformat rejects self-loops at
// parse time); duplicate edges are not checked there.
type Edge struct {
	V, W int
}

// Normalized returns e with V<=W, giving a canonical form usable as a map
// key regardless of which endpoint was recorded first.
func (e Edge) Normalized() Edge {
	if e.V > e.W {
		return Edge{e.W, e.V}
	}
	return e
}

// Reversed returns the edge with its endpoints swapped.
func (e Edge) Reversed() Edge {
	return Edge{e.W, e.V}
}

// Figure is the skeletal shape being posed: an ordered sequence of original
// vertex positions plus the edges connecting them. Original (squared)
// lengths are derived from Vertices on demand rather than cached, since the
// figure is small and read-only after construction.
type Figure struct {
	Vertices []geom.Point
	Edges    []Edge
}

// OriginalSquaredLength returns |V0[e.V]-V0[e.W]|^2, the reference length
// every pose of e is validated against.
func (f Figure) OriginalSquaredLength(e Edge) float64 {
	return geom.SquaredDistance(f.Vertices[e.V], f.Vertices[e.W])
}

// Hole is a simple closed polygon given by its ordered vertices; the closing
// edge back to the first vertex is implicit.
type Hole []geom.Point

// Pose is one integer-or-real position per figure vertex, in the same order
// as Figure.Vertices.
type Pose []geom.Point

// BonusType names one of the three bonus effects a solve can use.
type BonusType int

const (
	// NoBonus marks the absence of any bonus.
	NoBonus BonusType = iota
	Globalist
	BreakALeg
	WallHack
)

// String renders a BonusType using the wire-format spelling.
func (b BonusType) String() string {
	switch b {
	case Globalist:
		return "GLOBALIST"
	case BreakALeg:
		return "BREAK_A_LEG"
	case WallHack:
		return "WALLHACK"
	default:
		return "NONE"
	}
}

// ParseBonusType parses the wire-format spelling of a bonus name.
func ParseBonusType(s string) (BonusType, bool) {
	switch s {
	case "GLOBALIST":
		return Globalist, true
	case "BREAK_A_LEG":
		return BreakALeg, true
	case "WALLHACK":
		return WallHack, true
	default:
		return NoBonus, false
	}
}

// BonusOffer is one entry of the input's optional bonuses array: a bonus of
// the given type, available on the named problem, unlocked at Position once
// that problem is solved. Combinatorial bonus selection across problems is
// out of the solver core's scope (spec.md §1); BonusOffer exists only so
// internal/ioformat has somewhere to decode the input array to.
type BonusOffer struct {
	Position geom.Point
	Type     BonusType
	Problem  int
}

// ActiveBonuses describes which bonus effects are in force for a single
// solve, resolved ahead of time (e.g. from USED_BONUS_TYPES). Globalist and
// BreakALeg are mutually exclusive; BreakLegEdge is set iff BreakALeg is.
// WallHack exempts exactly one vertex from the point-in-hole check, but
// which vertex is not resolved here: ValidPose finds it itself, per pose,
// as whichever vertex is actually outside the hole.
type ActiveBonuses struct {
	Globalist    bool
	WallHack     bool
	BreakALeg    bool
	BreakLegEdge Edge
}
