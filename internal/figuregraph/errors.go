package figuregraph

import "errors"

// ErrVertexOutOfRange is returned when an operation is asked to start from
// or otherwise reference a vertex index outside [0,N).
var ErrVertexOutOfRange = errors.New("figuregraph: vertex index out of range")

// ErrEmptyGraph is returned by operations that require at least one vertex.
var ErrEmptyGraph = errors.New("figuregraph: graph has no vertices")
