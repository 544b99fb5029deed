package repair

import "errors"

// ErrRepairFailed is returned when the candidate search for some vertex
// exhausted every radius up to Options.MaxRadius without finding a position
// admissible against every already-determined neighbor.
var ErrRepairFailed = errors.New("repair: exhausted candidate radius without an admissible position")

// ErrEmptyOrder is returned when Run is given an empty determination order.
var ErrEmptyOrder = errors.New("repair: determination order is empty")
