// Package game implements the rules of eels and escalators: rolling the
// dice, moving a player, and playing a game to its end.
package game

import (
	"github.com/domino14/eelsim/board"
)

// RunGame plays rounds until a player wins and returns the 1-based number
// of the winning round. Players take turns in slice order, and the round
// stops as soon as someone wins.
//
// There is no cap on the number of rounds. Every roll has a chance of
// moving a player forward and the board is finite, so a game ends with
// probability one.
func RunGame(players []*Player, b *board.Board, r Roller, log *TraceLog) int {
	if len(players) == 0 {
		panic("RunGame needs at least one player")
	}
	for round := 1; ; round++ {
		if log != nil {
			log.Addf("---Start of Turn %d---", round)
		}
		for _, p := range players {
			p.PlayTurn(b, r, log)
			if p.HasWon {
				return round
			}
		}
	}
}

// Winner returns the player that has won, or nil.
func Winner(players []*Player) *Player {
	for _, p := range players {
		if p.HasWon {
			return p
		}
	}
	return nil
}
