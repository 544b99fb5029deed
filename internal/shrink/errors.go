package shrink

import "errors"

// ErrEmptyFigure is returned when asked to shrink a figure with no vertices.
var ErrEmptyFigure = errors.New("shrink: figure has no vertices")
