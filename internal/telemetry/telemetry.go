// Package telemetry provides the structured logging used across the engine
// and CLI, wrapping github.com/hashicorp/go-hclog the way hashicorp/nomad
// wraps it for its scheduler and evaluation loops: a named logger per
// component, field attachment via With, and leveled output instead of the
// teacher's bare fmt.Printf interactive echo.
package telemetry

import (
	"os"
	"sync"

	"github.com/hashicorp/go-hclog"
)

// Logger is the logging handle passed into engine components (Context.Log).
// The zero value is not usable; use Discard() or New().
type Logger struct {
	hclog.Logger
}

var (
	defaultOnce sync.Once
	defaultLog  Logger
)

// Default returns the process-wide default logger, named "hou" at Info
// level, writing to stderr. CLI commands call SetDefault to reconfigure it
// from flags before running.
func Default() Logger {
	defaultOnce.Do(func() {
		defaultLog = Logger{hclog.New(&hclog.LoggerOptions{
			Name:   "hou",
			Level:  hclog.Info,
			Output: os.Stderr,
		})}
	})
	return defaultLog
}

// SetDefault replaces the process-wide default logger, e.g. from CLI flags.
func SetDefault(l Logger) {
	defaultOnce.Do(func() {}) // ensure Do is consumed so Default() won't overwrite us
	defaultLog = l
}

// New returns a named sub-logger of the default logger, e.g.
// telemetry.New("engine") for component "hou.engine".
func New(name string) Logger {
	return Logger{Default().Named(name)}
}

// Discard returns a logger that drops everything, used as the nil-safe
// fallback when a caller does not supply one (the engine package never
// requires a logger; it defaults to this).
func Discard() Logger {
	return Logger{hclog.NewNullLogger()}
}

// OrDiscard returns l if it is non-zero (has an underlying hclog.Logger),
// else a discard logger. Library entry points use this so nil/zero Logger
// values passed by callers who don't care about logging never panic.
func OrDiscard(l Logger) Logger {
	if l.Logger == nil {
		return Discard()
	}
	return l
}
