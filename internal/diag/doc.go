// Package diag sets up the pipeline's structured diagnostic logging, a
// one-for-one replacement for the reference implementation's stderr
// eprintln! calls using github.com/rs/zerolog.
package diag
