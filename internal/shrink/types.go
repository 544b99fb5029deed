package shrink

import (
	"math/rand"

	"github.com/katalvlaran/latticepose/internal/model"
)

// Options tunes the shrink loop. The zero value is not valid; use
// DefaultOptions.
type Options struct {
	// MaxIterations caps the total number of proposed moves (spec.md §4.S
	// names 10^4).
	MaxIterations int
	// DisplacementRange bounds each coordinate of a proposed move to
	// [-DisplacementRange, DisplacementRange].
	DisplacementRange int
	// RelaxedMargin is how far past the figure's own bounding box the
	// "no hole" relaxation's synthetic hole extends in every direction.
	RelaxedMargin float64
	// Rand is the RNG used to pick vertices and displacements.
	Rand *rand.Rand
}

// Option mutates an Options value being built.
type Option func(*Options)

// DefaultOptions returns the shrink parameters named in spec.md §4.S.
func DefaultOptions() Options {
	return Options{
		MaxIterations:     10_000,
		DisplacementRange: 5,
		RelaxedMargin:     1_000_000,
		Rand:              rand.New(rand.NewSource(1)),
	}
}

// WithMaxIterations overrides the iteration cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithRand overrides the RNG.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(1))
	}
	return o
}

// Result is the outcome of a shrink run: the best (lowest-variance, or
// placer-validated) pose found.
type Result struct {
	// PlacedByPlacer is true when the periodic rigid-placer check inside
	// the loop already found a valid placement in the real hole, in which
	// case Pose is that placement rather than merely a shrunk shape.
	PlacedByPlacer bool
	Pose           model.Pose
	Dislike        float64
}
