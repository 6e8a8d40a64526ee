// Package logging configures the console logger shared by the command and
// its components.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// New returns a timestamped console logger writing to out. Debug output is
// suppressed unless debug is set.
func New(out io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	w := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
