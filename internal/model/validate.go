package model

import "github.com/katalvlaran/latticepose/internal/geom"

// poseEdge is one edge of the figure resolved against a concrete pose and
// its original reference length, ready for a geom tolerance check.
type poseEdge struct {
	edge     Edge
	p0, q0   geom.Point
	breakLeg bool
}

// effectiveEdges expands figure.Edges into the edge set ValidPose actually
// checks, splitting BreakLegEdge into two half-edges through the virtual
// vertex appended at index len(figure.Vertices) when BreakALeg is active.
func effectiveEdges(figure Figure, bonuses ActiveBonuses) ([]poseEdge, error) {
	if !bonuses.BreakALeg {
		out := make([]poseEdge, len(figure.Edges))
		for i, e := range figure.Edges {
			out[i] = poseEdge{edge: e, p0: figure.Vertices[e.V], q0: figure.Vertices[e.W]}
		}
		return out, nil
	}

	target := bonuses.BreakLegEdge.Normalized()
	found := false
	virtual := len(figure.Vertices)
	out := make([]poseEdge, 0, len(figure.Edges)+1)
	for _, e := range figure.Edges {
		if e.Normalized() == target {
			found = true
			p0, q0 := figure.Vertices[e.V], figure.Vertices[e.W]
			out = append(out,
				poseEdge{edge: Edge{e.V, virtual}, p0: p0, q0: q0, breakLeg: true},
				poseEdge{edge: Edge{e.W, virtual}, p0: p0, q0: q0, breakLeg: true},
			)
			continue
		}
		out = append(out, poseEdge{edge: e, p0: figure.Vertices[e.V], q0: figure.Vertices[e.W]})
	}
	if !found {
		return nil, ErrBreakLegEdgeUnknown
	}
	return out, nil
}

// ValidPose reports whether pose is a legal placement of figure inside hole
// under epsilon (parts-per-million tolerance) and the given bonus set. It
// mirrors the reference solver's validity check: every figure edge (or its
// BreakALeg split) must respect its length tolerance either individually or,
// under Globalist, in aggregate; and every figure vertex and edge must lie
// within the hole's closure, except the one vertex WallHack exempts from the
// point containment test.
func ValidPose(figure Figure, hole Hole, pose Pose, epsilon int64, bonuses ActiveBonuses) (bool, error) {
	if bonuses.Globalist && bonuses.BreakALeg {
		return false, ErrBonusConflict
	}

	wantLen := len(figure.Vertices)
	if bonuses.BreakALeg {
		wantLen++
	}
	if len(pose) != wantLen {
		return false, ErrPoseSizeMismatch
	}

	edges, err := effectiveEdges(figure, bonuses)
	if err != nil {
		return false, err
	}

	if bonuses.Globalist {
		refs := make([]geom.EdgeRef, len(edges))
		for i, pe := range edges {
			refs[i] = geom.EdgeRef{
				P: pose[pe.edge.V], Q: pose[pe.edge.W],
				P0: pe.p0, Q0: pe.q0,
			}
		}
		if !geom.GlobalLengthOK(refs, epsilon) {
			return false, nil
		}
	} else {
		for _, pe := range edges {
			if !geom.LengthOK(pose[pe.edge.V], pose[pe.edge.W], pe.p0, pe.q0, epsilon, pe.breakLeg) {
				return false, nil
			}
		}
	}

	holePts := []geom.Point(hole)
	exempt := -1
	if bonuses.WallHack {
		exempt = firstVertexOutsideHole(pose, holePts)
	}

	for i, pt := range pose {
		if i == exempt {
			continue
		}
		if !geom.PointInHole(pt, holePts) {
			return false, nil
		}
	}
	for _, pe := range edges {
		if pe.edge.V == exempt || pe.edge.W == exempt {
			continue
		}
		if !geom.SegmentInHole(pose[pe.edge.V], pose[pe.edge.W], holePts) {
			return false, nil
		}
	}

	return true, nil
}

// firstVertexOutsideHole returns the index of the first pose vertex that
// fails PointInHole, or -1 if every vertex is already inside. This mirrors
// the reference's does_figure_fit_in_hole, which is always called against
// the current pose under test rather than a vertex chosen ahead of time:
// WallHack exempts whichever vertex actually needs it, not a fixed index.
func firstVertexOutsideHole(pose Pose, hole []geom.Point) int {
	for i, pt := range pose {
		if !geom.PointInHole(pt, hole) {
			return i
		}
	}
	return -1
}
