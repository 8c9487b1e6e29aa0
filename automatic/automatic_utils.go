package automatic

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/eelsim/board"
	"github.com/domino14/eelsim/config"
	"github.com/domino14/eelsim/game"
	"github.com/domino14/eelsim/stats"
)

var (
	GamesPlayed *expvar.Int
	IsPlaying   *expvar.Int
)

func init() {
	GamesPlayed = expvar.NewInt("gamesPlayed")
	IsPlaying = expvar.NewInt("isPlaying")
}

var ErrAlreadyPlaying = errors.New("games are already being played, please wait till complete")

// BatchResult is everything a batch run produces.
type BatchResult struct {
	// Results holds one round count per game. Games from different workers
	// are concatenated in worker order.
	Results []int
	Summary stats.Summary
	Elapsed time.Duration
	// Seeds are the worker seeds; saving them lets the run be repeated.
	Seeds [][32]byte
}

// Partition splits total games evenly across workers. The remainder of
// the division is dropped, so 100000 games over 12 workers is 12 batches
// of 8333.
func Partition(total, workers int) []int {
	sizes := make([]int, workers)
	for i := range sizes {
		sizes[i] = total / workers
	}
	return sizes
}

// RunBatch plays s.Games games spread over s.Workers goroutines on the
// shared board b. The run is all or nothing: if any worker fails, the
// first error is returned and no results are.
func RunBatch(ctx context.Context, s config.Settings, b *board.Board) (*BatchResult, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if IsPlaying.Value() > 0 {
		return nil, ErrAlreadyPlaying
	}
	seeds, err := workerSeeds(s)
	if err != nil {
		return nil, err
	}
	if err := PrepareTraceDir(s.TraceDir, s.Trace); err != nil {
		return nil, err
	}

	sizes := Partition(s.Games, s.Workers)
	if dropped := s.Games - lo.Sum(sizes); dropped > 0 {
		log.Info().Int("dropped", dropped).Msg("games do not divide evenly across workers")
	}
	log.Info().Int("games", lo.Sum(sizes)).Int("workers", s.Workers).
		Int("players", s.Players).Bool("trace", s.Trace).Msg("starting batch")

	runners := make([]*GameRunner, s.Workers)
	firstGame := 1
	for w := range runners {
		opts := []RunnerOption{WithFirstGame(firstGame)}
		if s.Trace {
			opts = append(opts, WithTraceDir(s.TraceDir))
		}
		firstGame += sizes[w]
		runners[w] = NewGameRunner(b, s.Players, game.NewRoller(seeds[w]), opts...)
	}

	tstart := time.Now()
	batches, err := runWorkers(ctx, runners, sizes)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(tstart)

	results := lo.Flatten(batches)
	summary, err := stats.Summarize(results)
	if err != nil {
		return nil, err
	}
	log.Info().Int("games", len(results)).Dur("elapsed", elapsed).Msg("batch finished")
	return &BatchResult{
		Results: results,
		Summary: summary,
		Elapsed: elapsed,
		Seeds:   seeds,
	}, nil
}

// runWorkers runs runners[w] for sizes[w] games, each on its own goroutine,
// and waits for all of them. A failing worker cancels the others.
func runWorkers(ctx context.Context, runners []*GameRunner, sizes []int) ([][]int, error) {
	batches := make([][]int, len(runners))
	g, gctx := errgroup.WithContext(ctx)
	for w, r := range runners {
		w, r := w, r
		g.Go(func() error {
			IsPlaying.Add(1)
			defer IsPlaying.Add(-1)
			log.Debug().Int("worker", w).Int("games", sizes[w]).Msg("worker-starting")
			results, err := r.SimulateGames(gctx, sizes[w])
			if err != nil {
				return fmt.Errorf("worker %d: %w", w, err)
			}
			batches[w] = results
			log.Debug().Int("worker", w).Msg("worker-done")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return batches, nil
}

// workerSeeds loads the seed file if there is one, and otherwise makes new
// seeds, saving them when a seed file is configured.
func workerSeeds(s config.Settings) ([][32]byte, error) {
	if s.SeedFile != "" && fileExists(s.SeedFile) {
		seeds, err := LoadSeeds(s.SeedFile)
		if err != nil {
			return nil, err
		}
		if len(seeds) < s.Workers {
			return nil, fmt.Errorf("seed file %s has %d seeds, need %d", s.SeedFile, len(seeds), s.Workers)
		}
		log.Info().Str("file", s.SeedFile).Msg("using saved seeds")
		return seeds[:s.Workers], nil
	}
	seeds, err := GenerateSeeds(s.Workers)
	if err != nil {
		return nil, err
	}
	if s.SeedFile != "" {
		if err := SaveSeeds(seeds, s.SeedFile); err != nil {
			return nil, err
		}
		log.Info().Str("file", s.SeedFile).Msg("saved seeds")
	}
	return seeds, nil
}
