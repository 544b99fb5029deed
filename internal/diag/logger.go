package diag

import (
	"io"

	"github.com/rs/zerolog"
)

// New builds a structured logger writing to w, defaulting to stderr usage
// by the caller (see cmd/latticepose). Every pipeline stage gets its own
// zerolog.Logger via WithStage so log lines are attributable without
// string-formatting the stage name into the message.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

// WithStage tags a logger with the name of the pipeline stage emitting a
// line, mirroring the reference's "dfs: ...", "anneal: ..." prefixes.
func WithStage(log zerolog.Logger, stage string) zerolog.Logger {
	return log.With().Str("stage", stage).Logger()
}
