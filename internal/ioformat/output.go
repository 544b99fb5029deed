package ioformat

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/latticepose/internal/model"
)

type poseJSON struct {
	Vertices [][2]int64 `json:"vertices"`
	Bonuses  []bonusOut `json:"bonuses,omitempty"`
}

type bonusOut struct {
	Bonus   string  `json:"bonus"`
	Problem int     `json:"problem"`
	Edge    *[2]int `json:"edge,omitempty"`
}

// EncodeOutput writes pose (one entry per original figure vertex, never
// including the BreakALeg virtual vertex) as the output JSON shape,
// grounded on inout.rs's vertices_to_pose_json: each active bonus is
// reported with problem -1 (matching the reference, which never threads
// the originating problem number back through the solver core), and
// BreakALeg additionally carries the split edge's endpoint indices.
func EncodeOutput(w io.Writer, pose model.Pose, bonuses model.ActiveBonuses) error {
	vertices := make([][2]int64, len(pose))
	for i, p := range pose {
		vertices[i] = [2]int64{int64(p.X), int64(p.Y)}
	}

	var out []bonusOut
	if bonuses.Globalist {
		out = append(out, bonusOut{Bonus: model.Globalist.String(), Problem: -1})
	}
	if bonuses.WallHack {
		out = append(out, bonusOut{Bonus: model.WallHack.String(), Problem: -1})
	}
	if bonuses.BreakALeg {
		edge := [2]int{bonuses.BreakLegEdge.V, bonuses.BreakLegEdge.W}
		out = append(out, bonusOut{Bonus: model.BreakALeg.String(), Problem: -1, Edge: &edge})
	}

	enc := json.NewEncoder(w)
	return enc.Encode(poseJSON{Vertices: vertices, Bonuses: out})
}
