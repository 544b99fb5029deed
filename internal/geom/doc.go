// Package geom is the geometric kernel shared by every solver stage: squared
// distances, lattice ring enumeration around a pivot, hole containment for
// points and segments, the per-edge length-tolerance check, and the dislike
// objective.
//
// Every other package in this module treats geom as a read-only toolbox —
// it holds no mutable state and never allocates more than its return value.
//
// Coordinates are carried as float64 throughout, matching the source
// problem's mix of integer inputs/outputs and real-valued intermediate
// arithmetic (smoothing in the repair routine, ring radii). Callers that
// need an integer lattice point round explicitly with Round.
package geom
