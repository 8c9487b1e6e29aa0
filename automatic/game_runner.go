// Package automatic plays eels and escalators games without anyone
// watching: thousands of them per worker, across many workers, collecting
// how many rounds each game took.
package automatic

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/domino14/eelsim/board"
	"github.com/domino14/eelsim/game"
)

// GameRunner simulates games one after another on a single goroutine.
// It owns its players and its roller; only the board is shared.
type GameRunner struct {
	board   *board.Board
	players []*game.Player
	roller  game.Roller

	// firstGame is the run-wide number of the first game this runner plays.
	firstGame int
	traceDir  string
	tracelog  *game.TraceLog
}

type RunnerOption func(*GameRunner)

// WithTraceDir turns on per-game trace files in dir.
func WithTraceDir(dir string) RunnerOption {
	return func(r *GameRunner) {
		r.traceDir = dir
	}
}

// WithFirstGame sets the number of the first game, used to name trace files
// and log lines. It defaults to 1.
func WithFirstGame(n int) RunnerOption {
	return func(r *GameRunner) {
		r.firstGame = n
	}
}

// NewGameRunner creates a runner with numPlayers players.
func NewGameRunner(b *board.Board, numPlayers int, roller game.Roller, opts ...RunnerOption) *GameRunner {
	r := &GameRunner{
		board:     b,
		players:   game.NewPlayers(numPlayers),
		roller:    roller,
		firstGame: 1,
	}
	for _, o := range opts {
		o(r)
	}
	if r.traceDir != "" {
		r.tracelog = game.NewTraceLog()
	}
	return r
}

// Players returns the runner's roster.
func (r *GameRunner) Players() []*game.Player {
	return r.players
}

// PlayGame resets the players and plays one full game, returning the
// number of rounds it took.
func (r *GameRunner) PlayGame(gameNum int) (int, error) {
	for _, p := range r.players {
		p.Reset()
	}
	tl := r.tracelog
	if tl != nil {
		tl.Reset()
		tl.Addf("Game %d starting", gameNum)
	}

	rounds := game.RunGame(r.players, r.board, r.roller, tl)
	GamesPlayed.Add(1)
	if e := log.Debug(); e.Enabled() {
		e.Int("game", gameNum).Int("rounds", rounds).
			Str("winner", game.Winner(r.players).Name).Msg("game-completed")
	}

	if tl != nil {
		tl.Addf("Game %d completed on turn %d", gameNum, rounds)
		if err := WriteTrace(r.traceDir, gameNum, tl); err != nil {
			return 0, err
		}
	}
	return rounds, nil
}

// SimulateGames plays count games and returns the round count of each,
// in the order they were played. It stops early, returning no results, if
// ctx is canceled or a trace file cannot be written.
func (r *GameRunner) SimulateGames(ctx context.Context, count int) ([]int, error) {
	results := make([]int, 0, count)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rounds, err := r.PlayGame(r.firstGame + i)
		if err != nil {
			return nil, err
		}
		results = append(results, rounds)
	}
	return results, nil
}
