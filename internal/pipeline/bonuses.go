package pipeline

import "github.com/katalvlaran/latticepose/internal/model"

// resolveBonuses turns a requested set of bonus types into a concrete
// ActiveBonuses. Which edge BreakALeg splits is not named anywhere in
// spec.md's configuration table, so this applies the same deterministic
// heuristic documented in DESIGN.md: BreakALeg splits the figure's longest
// original edge (the one most likely to be tight against its tolerance).
// WallHack needs no such heuristic here - model.ValidPose finds the vertex
// it exempts dynamically, from the pose under test.
// Globalist and BreakALeg cannot both be requested; if they are, Globalist
// wins and BreakALeg is dropped.
func resolveBonuses(figure model.Figure, requested []model.BonusType) model.ActiveBonuses {
	var bonuses model.ActiveBonuses
	for _, bt := range requested {
		switch bt {
		case model.Globalist:
			bonuses.Globalist = true
		case model.WallHack:
			bonuses.WallHack = true
		case model.BreakALeg:
			bonuses.BreakALeg = true
		}
	}

	if bonuses.Globalist {
		bonuses.BreakALeg = false
	}
	if bonuses.BreakALeg {
		bonuses.BreakLegEdge = longestEdge(figure)
	}

	return bonuses
}

func longestEdge(figure model.Figure) model.Edge {
	var best model.Edge
	var bestLen float64 = -1
	for _, e := range figure.Edges {
		l := figure.OriginalSquaredLength(e)
		if l > bestLen {
			bestLen = l
			best = e
		}
	}
	return best
}
