// Package placer implements the rigid-motion optimizer: it enumerates the
// figure's 8 orientations (4 rotations times an optional mirror) and, for
// each, sweeps integer translations that can bring the figure's bounding
// box into overlap with the hole's, keeping the lowest-dislike valid
// placement found. It is used both to seed a pose from the original figure
// and, again, as a post-processing pass over an already-posed figure.
package placer
