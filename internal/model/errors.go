package model

import "errors"

// ErrBonusConflict is returned when ActiveBonuses sets both Globalist and
// BreakALeg, which the problem defines as mutually exclusive.
var ErrBonusConflict = errors.New("model: globalist and break-a-leg bonuses cannot both be active")

// ErrPoseSizeMismatch is returned when a Pose does not have exactly as many
// points as ValidPose requires for the given figure and bonus set.
var ErrPoseSizeMismatch = errors.New("model: pose size does not match figure vertex count")

// ErrBreakLegEdgeUnknown is returned when ActiveBonuses.BreakLegEdge does not
// name an edge present in the figure.
var ErrBreakLegEdgeUnknown = errors.New("model: break-a-leg edge not found in figure")
