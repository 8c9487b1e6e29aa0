package game

import (
	"fmt"

	"github.com/domino14/eelsim/board"
)

// Player is the mutable per-game state of one player. A Player is owned by
// exactly one simulating goroutine.
type Player struct {
	Name     string
	Position int
	HasWon   bool
}

// NewPlayers creates n players named Player1 through Playern, all at the
// start tile.
func NewPlayers(n int) []*Player {
	players := make([]*Player, n)
	for i := range players {
		players[i] = &Player{Name: fmt.Sprintf("Player%d", i+1)}
	}
	return players
}

// Reset puts the player back on the start tile.
func (p *Player) Reset() {
	p.Position = 0
	p.HasWon = false
}

func (p *Player) String() string {
	return fmt.Sprintf("<%s at %d won=%v>", p.Name, p.Position, p.HasWon)
}

// PlayTurn rolls the dice and moves the player. log may be nil.
func (p *Player) PlayTurn(b *board.Board, r Roller, log *TraceLog) {
	if p.HasWon {
		return
	}
	p.ApplyRoll(b, RollDice(r), log)
}

// ApplyRoll moves the player according to roll.
//
// A jump-trigger roll teleports the player to the nearest matching jump
// tile at or ahead of them, or moves them roll.Steps if there is none.
// Whatever the roll, the tile the player lands on is then resolved: landing
// on an escalator or eel sends them to its destination.
func (p *Player) ApplyRoll(b *board.Board, roll Roll, log *TraceLog) {
	if roll.Jump != board.None {
		if log != nil {
			log.Addf("%s rolled %s", p.Name, roll.Jump)
		}
		next, ok := b.FindNextJump(roll.Jump, p.Position)
		if ok {
			p.Position = next.Num
			if log != nil {
				log.Addf("%s moved to %s at tile %d", p.Name, roll.Jump, p.Position)
			}
		} else {
			p.Position += roll.Steps
			if log != nil {
				log.Addf("%s could not move to %s; moved %d spaces to %d",
					p.Name, roll.Jump, roll.Steps, p.Position)
			}
		}
	} else {
		p.Position += roll.Steps
		if log != nil {
			log.Addf("%s rolled a %d; moved to %d", p.Name, roll.Steps, p.Position)
		}
	}

	if p.Position >= b.Size() {
		p.HasWon = true
		if log != nil {
			log.Addf("%s has won!", p.Name)
		}
		return
	}
	p.Position = b.Tile(p.Position).EffectiveDestination()
	if log != nil {
		log.Addf("%s finished turn at %d", p.Name, p.Position)
	}
}
