// SPDX-License-Identifier: MIT

// Package log provides the diagnostic channel shared by both probers.
//
// Diagnostics go to stderr; stdout is reserved for the result protocol.
// The channel is enabled only when the debug toggle is set, otherwise the
// global level is disabled and nothing is emitted.
package log

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	once sync.Once
	base zerolog.Logger
)

// Configure initialises the global zerolog logger exactly once.
func Configure(debug bool) {
	once.Do(func() {
		level := zerolog.Disabled
		if debug {
			level = zerolog.DebugLevel
		}
		zerolog.SetGlobalLevel(level)
		zerolog.TimeFieldFormat = time.RFC3339

		base = zerolog.New(os.Stderr).With().
			Timestamp().
			Str("service", "hwprobe").
			Logger()
	})
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	Configure(false)
	return base.With().Str("component", component).Logger()
}
