package ioformat

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/latticepose/internal/geom"
	"github.com/katalvlaran/latticepose/internal/model"
)

// inputJSON mirrors original_source/solver/src/inout.rs's InputJSON.
type inputJSON struct {
	Hole    [][2]int64  `json:"hole"`
	Figure  figureJSON  `json:"figure"`
	Epsilon int64       `json:"epsilon"`
	Bonuses []bonusJSON `json:"bonuses"`
}

type figureJSON struct {
	Edges    [][2]int   `json:"edges"`
	Vertices [][2]int64 `json:"vertices"`
}

type bonusJSON struct {
	Position [2]int64 `json:"position"`
	Bonus    string   `json:"bonus"`
	Problem  int      `json:"problem"`
}

// Input is the fully decoded and validated problem instance.
type Input struct {
	Hole    model.Hole
	Figure  model.Figure
	Epsilon int64
	Bonuses []model.BonusOffer
}

// DecodeInput reads one JSON object from r and validates its structural
// invariants: every edge references an in-range, distinct pair of
// vertices, and every bonus name is one of the three known types.
func DecodeInput(r io.Reader) (Input, error) {
	var raw inputJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return Input{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hole := make(model.Hole, len(raw.Hole))
	for i, p := range raw.Hole {
		hole[i] = geom.Point{X: float64(p[0]), Y: float64(p[1])}
	}

	vertices := make([]geom.Point, len(raw.Figure.Vertices))
	for i, p := range raw.Figure.Vertices {
		vertices[i] = geom.Point{X: float64(p[0]), Y: float64(p[1])}
	}

	edges := make([]model.Edge, len(raw.Figure.Edges))
	for i, e := range raw.Figure.Edges {
		if e[0] < 0 || e[0] >= len(vertices) || e[1] < 0 || e[1] >= len(vertices) {
			return Input{}, fmt.Errorf("%w: edge %d references an out-of-range vertex", ErrInvalidInput, i)
		}
		if e[0] == e[1] {
			return Input{}, fmt.Errorf("%w: edge %d is a self-loop", ErrInvalidInput, i)
		}
		edges[i] = model.Edge{V: e[0], W: e[1]}
	}

	if raw.Epsilon < 0 {
		return Input{}, fmt.Errorf("%w: epsilon must be non-negative", ErrInvalidInput)
	}

	bonuses := make([]model.BonusOffer, len(raw.Bonuses))
	for i, b := range raw.Bonuses {
		bt, ok := model.ParseBonusType(b.Bonus)
		if !ok {
			return Input{}, fmt.Errorf("%w: unknown bonus name %q", ErrInvalidInput, b.Bonus)
		}
		bonuses[i] = model.BonusOffer{
			Position: geom.Point{X: float64(b.Position[0]), Y: float64(b.Position[1])},
			Type:     bt,
			Problem:  b.Problem,
		}
	}

	return Input{
		Hole:    hole,
		Figure:  model.Figure{Vertices: vertices, Edges: edges},
		Epsilon: raw.Epsilon,
		Bonuses: bonuses,
	}, nil
}
