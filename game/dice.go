package game

import (
	"lukechampine.com/frand"

	"github.com/domino14/eelsim/board"
)

// Roller is a source of randomness. *frand.RNG satisfies it.
type Roller interface {
	Intn(n int) int
}

// NewRoller returns a fast deterministic RNG seeded with seed.
func NewRoller(seed [32]byte) *frand.RNG {
	return frand.NewCustom(seed[:], 1024, 12)
}

// A Roll is the outcome of throwing all three dice. Jump is None unless
// the two direction dice matched.
type Roll struct {
	Jump  board.Direction
	Steps int
}

// RollDice throws two direction dice (eels or escalators) and one six-sided
// die. When the direction dice agree the roll is a jump trigger in that
// direction, and the six-sided die is only used if no such jump is ahead.
func RollDice(r Roller) Roll {
	dieA := directionDie(r)
	dieB := directionDie(r)
	steps := r.Intn(6) + 1
	if dieA == dieB {
		return Roll{Jump: dieA, Steps: steps}
	}
	return Roll{Jump: board.None, Steps: steps}
}

func directionDie(r Roller) board.Direction {
	if r.Intn(2) == 0 {
		return board.Down
	}
	return board.Up
}
