package board

import "fmt"

// Direction is the direction of a jump tile. An escalator goes Up and an
// eel drags you Down.
type Direction int8

const (
	Down Direction = -1
	None Direction = 0
	Up   Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "escalators"
	case Down:
		return "eels"
	}
	return "none"
}

// TileKind is either Plain or Jump.
type TileKind uint8

const (
	Plain TileKind = iota
	Jump
)

func (k TileKind) String() string {
	if k == Jump {
		return "jump"
	}
	return "plain"
}

// A Tile is a single position on the board. A Jump tile carries a
// direction and a destination; a Plain tile has neither.
type Tile struct {
	Num         int
	Direction   Direction
	Destination int
}

// Kind returns Jump if the tile has a direction.
func (t Tile) Kind() TileKind {
	if t.Direction == None {
		return Plain
	}
	return Jump
}

// EffectiveDestination is where a player who lands on this tile ends up.
func (t Tile) EffectiveDestination() int {
	if t.Kind() == Jump {
		return t.Destination
	}
	return t.Num
}

func (t Tile) String() string {
	if t.Kind() == Plain {
		return fmt.Sprintf("<tile %d>", t.Num)
	}
	return fmt.Sprintf("<tile %d %s -> %d>", t.Num, t.Direction, t.Destination)
}
