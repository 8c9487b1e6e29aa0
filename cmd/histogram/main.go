// Command histogram prints the distribution of game lengths saved by a
// batch run. It reads the configured results file, or the file named by
// its first argument.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/eelsim/automatic"
	"github.com/domino14/eelsim/config"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	path := cfg.GetString(config.ConfigResultsFile)
	if args := cfg.Args(); len(args) > 0 {
		path = args[0]
	}

	out, err := automatic.AnalyzeResultsFile(path)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("analyzing results")
	}
	fmt.Print(out)
}
