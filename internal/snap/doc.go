// Package snap implements the final adjustment pass: for every hole vertex
// not yet coincident with a pose vertex, it tries pinning some free pose
// vertex onto that hole corner and keeps the move if the repaired pose is
// both valid and strictly improves dislike.
package snap
