// Package config loads the run configuration from flags, environment
// variables (EELSIM_*) and an optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigPlayers     = "players"
	ConfigGames       = "games"
	ConfigWorkers     = "workers"
	ConfigTrace       = "trace"
	ConfigTraceDir    = "trace-dir"
	ConfigBoardFile   = "board-file"
	ConfigResultsFile = "results-file"
	ConfigSeedFile    = "seed-file"
	ConfigDebug       = "debug"
	ConfigFile        = "config"
	ConfigCPUProfile  = "cpu-profile"
	ConfigDebugAddr   = "debug-addr"
)

type Config struct {
	*viper.Viper
	args []string
}

// Settings is an immutable snapshot of the configuration, handed to the
// simulation once at startup.
type Settings struct {
	Players     int
	Games       int
	Workers     int
	Trace       bool
	TraceDir    string
	BoardFile   string
	ResultsFile string
	SeedFile    string
	Debug       bool
}

// DefaultSettings are the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Players:     3,
		Games:       100000,
		Workers:     12,
		TraceDir:    "logs",
		BoardFile:   "tiles.csv",
		ResultsFile: "data.json.gz",
	}
}

func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	d := DefaultSettings()

	fs := pflag.NewFlagSet("eelsim", pflag.ContinueOnError)
	fs.Int(ConfigPlayers, d.Players, "number of players per game")
	fs.Int(ConfigGames, d.Games, "total number of games to simulate")
	fs.Int(ConfigWorkers, d.Workers, "number of parallel workers")
	fs.Bool(ConfigTrace, d.Trace, "write a play-by-play log for every game")
	fs.String(ConfigTraceDir, d.TraceDir, "directory for per-game logs; cleared on every run")
	fs.String(ConfigBoardFile, d.BoardFile, "csv board definition")
	fs.String(ConfigResultsFile, d.ResultsFile, "where to save the turn counts (.json, .json.gz, .yaml, .db)")
	fs.String(ConfigSeedFile, d.SeedFile, "worker seed file; loaded if it exists, otherwise written")
	fs.Bool(ConfigDebug, d.Debug, "debug logging")
	fs.String(ConfigFile, "", "optional config file (yaml, toml or json)")
	fs.String(ConfigCPUProfile, "", "write a cpu profile to this file")
	fs.String(ConfigDebugAddr, "", "serve expvar counters on this address, e.g. :8088")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()

	c.SetEnvPrefix("eelsim")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	if path := c.GetString(ConfigFile); path != "" {
		c.SetConfigFile(path)
		if err := c.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", path, err)
		}
	}
	return nil
}

// Args returns the positional arguments left after flag parsing.
func (c *Config) Args() []string {
	return c.args
}

// Settings takes a snapshot of the loaded configuration.
func (c *Config) Settings() Settings {
	return Settings{
		Players:     c.GetInt(ConfigPlayers),
		Games:       c.GetInt(ConfigGames),
		Workers:     c.GetInt(ConfigWorkers),
		Trace:       c.GetBool(ConfigTrace),
		TraceDir:    c.GetString(ConfigTraceDir),
		BoardFile:   c.GetString(ConfigBoardFile),
		ResultsFile: c.GetString(ConfigResultsFile),
		SeedFile:    c.GetString(ConfigSeedFile),
		Debug:       c.GetBool(ConfigDebug),
	}
}

func (s Settings) Validate() error {
	var errs []error
	if s.Players < 1 {
		errs = append(errs, fmt.Errorf("players must be at least 1, got %d", s.Players))
	}
	if s.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1, got %d", s.Workers))
	}
	if s.Games < 0 {
		errs = append(errs, fmt.Errorf("games must not be negative, got %d", s.Games))
	}
	if s.Trace && s.TraceDir == "" {
		errs = append(errs, errors.New("trace is on but trace-dir is empty"))
	}
	return errors.Join(errs...)
}
