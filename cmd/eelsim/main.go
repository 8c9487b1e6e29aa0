package main

import (
	"context"
	_ "expvar"
	"fmt"
	"net/http"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/eelsim/automatic"
	"github.com/domino14/eelsim/board"
	"github.com/domino14/eelsim/config"
	"github.com/domino14/eelsim/store"
)

var (
	GitVersion string
)

func setupLogging(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")
}

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	settings := cfg.Settings()
	setupLogging(settings.Debug)
	log.Info().Str("version", GitVersion).Interface("settings", settings).Msg("loaded config")

	if err := settings.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	if path := cfg.GetString(config.ConfigCPUProfile); path != "" {
		f, err := os.Create(path)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	if addr := cfg.GetString(config.ConfigDebugAddr); addr != "" {
		// /debug/vars shows gamesPlayed and isPlaying while the batch runs.
		srv := &http.Server{Addr: addr}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error().Err(err).Msg("debug server")
			}
		}()
		defer srv.Close()
	}

	if err := run(context.Background(), settings); err != nil {
		pprof.StopCPUProfile()
		log.Fatal().Err(err).Msg("run failed")
	}
}

func run(ctx context.Context, settings config.Settings) error {
	b, err := board.LoadFromCSV(settings.BoardFile)
	if err != nil {
		return err
	}
	log.Debug().Msg(b.ToDisplayText())

	res, err := automatic.RunBatch(ctx, settings, b)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(res.Summary.Report(res.Elapsed))

	if err := store.Save(settings.ResultsFile, res.Results); err != nil {
		return err
	}
	log.Info().Str("file", settings.ResultsFile).Int("games", len(res.Results)).Msg("saved results")
	return nil
}
