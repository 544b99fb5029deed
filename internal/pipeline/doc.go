// Package pipeline composes the solver stages into the seven-step driver
// spec.md §4.P describes: an initial pose (D, or S as a fallback, or an
// INITIAL_SOLUTION override), two rigid-placer passes bracketing a
// local-search stage, a final snap-adjuster pass, and a defensive validity
// check before the pose is emitted.
package pipeline
