package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestLoadDefaults(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	is.NoErr(cfg.Load(nil))
	is.Equal(cfg.Settings(), DefaultSettings())
	is.NoErr(cfg.Settings().Validate())
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	is.NoErr(cfg.Load([]string{"--games=500", "--workers", "4", "--trace", "--results-file=out.yaml"}))
	s := cfg.Settings()
	is.Equal(s.Games, 500)
	is.Equal(s.Workers, 4)
	is.True(s.Trace)
	is.Equal(s.ResultsFile, "out.yaml")
	is.Equal(s.Players, 3)
}

func TestLoadEnv(t *testing.T) {
	is := is.New(t)
	t.Setenv("EELSIM_PLAYERS", "5")
	t.Setenv("EELSIM_BOARD_FILE", "other.csv")
	cfg := &Config{}
	is.NoErr(cfg.Load(nil))
	is.Equal(cfg.Settings().Players, 5)
	is.Equal(cfg.Settings().BoardFile, "other.csv")
}

func TestLoadConfigFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "eelsim.yaml")
	is.NoErr(os.WriteFile(path, []byte("games: 1200\nworkers: 3\n"), 0o644))
	cfg := &Config{}
	is.NoErr(cfg.Load([]string{"--config", path}))
	is.Equal(cfg.Settings().Games, 1200)
	is.Equal(cfg.Settings().Workers, 3)
}

func TestLoadBadFlag(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	is.True(cfg.Load([]string{"--games=lots"}) != nil)
}

func TestValidate(t *testing.T) {
	is := is.New(t)
	s := DefaultSettings()
	s.Players = 0
	s.Workers = 0
	s.Games = -1
	is.True(s.Validate() != nil)

	s = DefaultSettings()
	s.Trace = true
	s.TraceDir = ""
	is.True(s.Validate() != nil)
}
