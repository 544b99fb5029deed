package config

import "errors"

// ErrInvalidInitialSolution is returned when INITIAL_SOLUTION is set but is
// not valid JSON for a pose ([][2]int64).
var ErrInvalidInitialSolution = errors.New("config: INITIAL_SOLUTION is not a valid pose")

// ErrUnknownBonusName is returned when USED_BONUS_TYPES names something
// other than GLOBALIST, BREAK_A_LEG, or WALLHACK.
var ErrUnknownBonusName = errors.New("config: unknown bonus name in USED_BONUS_TYPES")
