// Package obslog configures the process-wide zerolog logger used by
// cmd/wfc and the frontend packages' warning paths. Call sites elsewhere
// log through the global github.com/rs/zerolog/log logger directly, the
// same convention used throughout the example this module is built on.
package obslog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Configure installs a console-formatted global logger at level, writing to
// w. Call once at process start, before any synthesis runs.
func Configure(level zerolog.Level, w io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(level)
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	log.Logger = zerolog.New(console).With().Timestamp().Logger()
}

// ConfigureDefault installs a console logger at InfoLevel writing to
// os.Stderr, the default for cmd/wfc when no verbosity flag is given.
func ConfigureDefault() {
	Configure(zerolog.InfoLevel, os.Stderr)
}
