package automatic

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/domino14/eelsim/game"
)

// TraceFileName is the name of the trace file for game n.
func TraceFileName(n int) string {
	return fmt.Sprintf("game%d.log", n)
}

// PrepareTraceDir removes any old trace directory and, if tracing is
// enabled, creates a fresh empty one.
func PrepareTraceDir(dir string, enabled bool) error {
	if dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); err == nil {
		log.Info().Str("dir", dir).Msg("removing old logs folder")
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("removing trace dir: %w", err)
		}
	}
	if !enabled {
		return nil
	}
	log.Info().Str("dir", dir).Msg("creating new logs folder")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating trace dir: %w", err)
	}
	return nil
}

// WriteTrace writes the trace of game n into dir.
func WriteTrace(dir string, n int, tl *game.TraceLog) error {
	path := filepath.Join(dir, TraceFileName(n))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating trace file: %w", err)
	}
	w := bufio.NewWriter(f)
	if _, err := tl.WriteTo(w); err != nil {
		f.Close()
		return fmt.Errorf("writing trace file %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing trace file %s: %w", path, err)
	}
	return f.Close()
}
