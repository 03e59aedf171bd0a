package streak

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Logger receives diagnostics. Format and args follow fmt.Printf.
type Logger func(format string, args ...any)

// StderrLogger writes "[streak]"-prefixed lines to stderr.
func StderrLogger() Logger {
	return WriterLogger(os.Stderr)
}

// WriterLogger writes "[streak]"-prefixed lines to w.
func WriterLogger(w io.Writer) Logger {
	return func(format string, args ...any) {
		_, _ = fmt.Fprintf(w, "[streak] "+format+"\n", args...)
	}
}

// FrameStats summarizes one Tracker.Update call.
type FrameStats struct {
	Tracked              int
	OnScreen             int
	OffScreen            int
	Removed              int
	ProjectionFailures   int
	ReprojectionFailures int
	Elapsed              time.Duration
}

// debugLog prints the frame summary. Only called when Config.Debug is set.
func (t *Tracker) debugLog(stats FrameStats) {
	t.logf("tracked: %d | on: %d | off: %d | removed: %d | proj err: %d | reproj err: %d | %v",
		stats.Tracked, stats.OnScreen, stats.OffScreen, stats.Removed,
		stats.ProjectionFailures, stats.ReprojectionFailures, stats.Elapsed)
}
