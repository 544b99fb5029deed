package placer

import "github.com/katalvlaran/latticepose/internal/model"

// Options tunes the sweep. The zero value is not valid; use DefaultOptions.
type Options struct {
	// CoarseDivisor controls the coarse scan step used before any valid
	// placement is known: step = max(1, span/CoarseDivisor).
	CoarseDivisor int
	// EnableMirror controls whether the 4 mirrored orientations are tried
	// in addition to the 4 plain rotations.
	EnableMirror bool
}

// Option mutates an Options value being built.
type Option func(*Options)

// DefaultOptions returns the sweep parameters named in spec.md §4.O.
func DefaultOptions() Options {
	return Options{CoarseDivisor: 50, EnableMirror: true}
}

// WithCoarseDivisor overrides the coarse scan step divisor.
func WithCoarseDivisor(d int) Option {
	return func(o *Options) { o.CoarseDivisor = d }
}

// WithMirrorDisabled turns off the 4 mirrored orientations, halving the
// search when the figure is known to be achiral or mirroring is forbidden.
func WithMirrorDisabled() Option {
	return func(o *Options) { o.EnableMirror = false }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// Result is the outcome of a sweep: the lowest-dislike valid placement
// found, if any.
type Result struct {
	Found   bool
	Pose    model.Pose
	Dislike float64
}
