package anneal

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/latticepose/internal/model"
)

// Options tunes both HillClimb and Anneal. The zero value is not valid;
// use DefaultOptions.
type Options struct {
	// Budget is the wall-clock time budget for the loop.
	Budget time.Duration
	// InitialTemperature is T0 in the annealing schedule (spec.md §4.H
	// names a default of 10^4).
	InitialTemperature float64
	// SamplingThresholdSD0 and SamplingThresholdEpsilon gate the switch
	// from full ring enumeration to random radius/angle sampling in the
	// move operator.
	SamplingThresholdSD0     float64
	SamplingThresholdEpsilon int64
	SamplingTries            int
	// CompoundDisplacementMin/Max bound the compound operator's random
	// Manhattan displacement half-width.
	CompoundDisplacementMin int
	CompoundDisplacementMax int
	// PollEvery is how many iterations elapse between clock checks.
	PollEvery int
	Rand      *rand.Rand
}

// Option mutates an Options value being built.
type Option func(*Options)

// DefaultOptions returns the local-search parameters named in spec.md §4.H.
func DefaultOptions() Options {
	return Options{
		Budget:                   2 * time.Second,
		InitialTemperature:       1e4,
		SamplingThresholdSD0:     100,
		SamplingThresholdEpsilon: 100_000,
		SamplingTries:            100,
		CompoundDisplacementMin:  5,
		CompoundDisplacementMax:  44,
		PollEvery:                100,
		Rand:                     rand.New(rand.NewSource(1)),
	}
}

// WithBudget overrides the wall-clock time budget.
func WithBudget(d time.Duration) Option {
	return func(o *Options) { o.Budget = d }
}

// WithInitialTemperature overrides T0.
func WithInitialTemperature(t0 float64) Option {
	return func(o *Options) { o.InitialTemperature = t0 }
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

// Result is the best pose observed during a HillClimb or Anneal run.
type Result struct {
	Pose    model.Pose
	Dislike float64
}
