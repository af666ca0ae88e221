// Package cracklog builds the structured diagnostic logger used for
// ambient, non-banner output: startup configuration summaries, runtime
// tuning notices, and fatal startup errors. It never carries the exact,
// test-asserted banner strings the coordinator prints to stdout.
package cracklog

import (
	"io"

	"github.com/rs/zerolog"
)

// New returns a zerolog.Logger writing human-readable, leveled records to w
// (typically os.Stderr). Debug-level records are only emitted when verbose
// is true.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: true}

	return zerolog.New(console).
		Level(level).
		With().
		Timestamp().
		Logger()
}
