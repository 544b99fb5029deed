package construct

import "math/rand"

// Options tunes both search strategies. The zero value is not valid; use
// DefaultOptions and the With* functions.
type Options struct {
	// MaxNodeExpansions caps backtracking nodes per start candidate.
	MaxNodeExpansions int64
	// DisableCentroidSort skips sorting interior points by distance to the
	// hole centroid in DFSPoints, trading solution quality for variety.
	DisableCentroidSort bool
	// MaxRandomStarts bounds the extra randomly-sampled interior starts
	// DFSEdges adds to the hole's boundary vertices.
	MaxRandomStarts int
	// Rand is the RNG used for start sampling and candidate subsampling.
	// A fixed seed makes the search reproducible.
	Rand *rand.Rand
}

// Option mutates an Options value being built.
type Option func(*Options)

// DefaultOptions returns the search parameters named in spec.md §4.D.
func DefaultOptions() Options {
	return Options{
		MaxNodeExpansions: 1_000_000,
		MaxRandomStarts:   20,
		Rand:              rand.New(rand.NewSource(1)),
	}
}

// WithMaxNodeExpansions overrides the per-start node expansion cap.
func WithMaxNodeExpansions(n int64) Option {
	return func(o *Options) { o.MaxNodeExpansions = n }
}

// WithCentroidSortDisabled turns off centroid-distance sorting of seed
// candidates, per the DISABLE_DFS_CENTROID configuration key.
func WithCentroidSortDisabled() Option {
	return func(o *Options) { o.DisableCentroidSort = true }
}

// WithRand overrides the RNG, e.g. to fix a seed for reproducible runs.
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
