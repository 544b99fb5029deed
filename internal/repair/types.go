package repair

// Options tunes the repair walk. The zero value is not valid; use
// DefaultOptions and the With* functions to build one.
type Options struct {
	// MaxSmoothingPasses bounds the pull-vector smoothing loop in step 2a.
	MaxSmoothingPasses int
	// MaxRadius bounds the Manhattan-radius candidate search in step 2b.
	MaxRadius int
	// BreakLegEdges marks which figure edges (keyed by normalized v<=w
	// EdgeKey pairs) must use the BreakALeg doubled-distance tolerance test.
	BreakLegEdges map[EdgeKey]bool
}

// EdgeKey is a normalized (v<=w) vertex-index pair used as a map key,
// avoiding an import of internal/model from this package's option type.
type EdgeKey struct {
	V, W int
}

// Option mutates an Options value being built.
type Option func(*Options)

// DefaultOptions returns the repair parameters named in spec.md §4.R.
func DefaultOptions() Options {
	return Options{
		MaxSmoothingPasses: 3,
		MaxRadius:          4,
	}
}

// WithMaxSmoothingPasses overrides the smoothing pass count.
func WithMaxSmoothingPasses(n int) Option {
	return func(o *Options) { o.MaxSmoothingPasses = n }
}

// WithMaxRadius overrides the candidate-search radius cap.
func WithMaxRadius(r int) Option {
	return func(o *Options) { o.MaxRadius = r }
}

// WithBreakLegEdges marks the edges that must use the doubled-distance
// BreakALeg tolerance test instead of the plain one.
func WithBreakLegEdges(edges map[EdgeKey]bool) Option {
	return func(o *Options) { o.BreakLegEdges = edges }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
