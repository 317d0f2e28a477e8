// Package journal is a journaling editor: entries are written on
// configurable paper (pattern, colors, font) and kept in memory
// for the lifetime of the process.
package journal

import (
	"github.com/akeil/journal/internal/logging"
)

// SetLogLevel sets the log level by name,
// one of "debug", "info", "warning", "error" or "none".
func SetLogLevel(level string) {
	logging.SetLevel(logging.ParseLevel(level))
}
