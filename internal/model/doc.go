// Package model holds the in-memory problem types — Figure, Hole, Pose,
// Bonus — and the bonus-aware pose validity check that composes them with
// internal/geom. It has no knowledge of JSON (see internal/ioformat) or of
// any particular solver stage.
package model
