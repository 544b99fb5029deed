// Package repair re-establishes edge-length and containment constraints
// after a single pivot vertex of a pose has been moved, by walking the rest
// of the figure's vertices in a precomputed determination order and nudging
// each one back onto an admissible lattice point.
package repair
