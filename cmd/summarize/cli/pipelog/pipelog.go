// Package pipelog prints pipeline stage timings to an io.Writer, gated by
// a verbose flag. The teacher uses no structured logging library anywhere
// in its CLI tree — every diagnostic is a plain fmt.Fprintf line — so this
// follows the same convention rather than introducing one.
package pipelog

import (
	"fmt"
	"io"
	"time"
)

// Logger emits one line per pipeline stage when enabled, and does nothing
// otherwise.
type Logger struct {
	w       io.Writer
	enabled bool
}

// New returns a Logger that writes to w when enabled is true.
func New(w io.Writer, enabled bool) *Logger {
	return &Logger{w: w, enabled: enabled}
}

// Stage times fn and logs its label and elapsed duration.
func (l *Logger) Stage(label string, fn func()) {
	if !l.enabled {
		fn()
		return
	}
	start := time.Now()
	fn()
	fmt.Fprintf(l.w, "summarize: %-24s %v\n", label, time.Since(start))
}
