package game

import (
	"fmt"
	"io"
)

// TraceLog collects the human-readable play-by-play of a single game.
// Every method is safe to call on a nil *TraceLog. Callers on hot paths
// still check for nil before building arguments.
type TraceLog struct {
	lines []string
}

// NewTraceLog makes an empty trace.
func NewTraceLog() *TraceLog {
	return &TraceLog{lines: make([]string, 0, 64)}
}

// Addf appends a formatted line.
func (t *TraceLog) Addf(format string, args ...any) {
	if t == nil {
		return
	}
	t.lines = append(t.lines, fmt.Sprintf(format, args...))
}

// Lines returns the collected lines.
func (t *TraceLog) Lines() []string {
	if t == nil {
		return nil
	}
	return t.lines
}

// Reset empties the trace so it can be reused for the next game.
func (t *TraceLog) Reset() {
	if t == nil {
		return
	}
	t.lines = t.lines[:0]
}

// WriteTo writes every line, newline terminated.
func (t *TraceLog) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, l := range t.Lines() {
		n, err := io.WriteString(w, l+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
