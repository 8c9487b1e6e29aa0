// Package board contains the eels-and-escalators board: an ordered run of
// tiles, some of which are escalators (up) or eels (down).
package board

import (
	"errors"
	"fmt"
)

// ErrInvalidTile is wrapped by every ValidationError.
var ErrInvalidTile = errors.New("invalid tile")

// ValidationError describes a board row that breaks the tile rules.
type ValidationError struct {
	Row    int
	Num    int
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("row %d (tile %d): %s", e.Row, e.Num, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidTile
}

// A Row is one line of a board definition. JumpCode is -1 for an eel,
// 1 for an escalator and 0 for a plain tile.
type Row struct {
	Num         int
	JumpCode    int
	Destination int
}

// Board is immutable after BuildFromRows returns, so a single *Board can
// be shared by any number of simulating goroutines.
type Board struct {
	tiles []Tile
}

// BuildFromRows makes a board out of the given rows. Tile 0, the start,
// is always plain and is not part of rows.
func BuildFromRows(rows []Row) (*Board, error) {
	size := len(rows) + 1
	tiles := make([]Tile, 1, size)
	tiles[0] = Tile{Num: 0}

	for idx, r := range rows {
		rowNum := idx + 1
		verr := func(reason string, args ...any) error {
			return &ValidationError{Row: rowNum, Num: r.Num, Reason: fmt.Sprintf(reason, args...)}
		}
		if r.Num != len(tiles) {
			return nil, verr("expected tile number %d", len(tiles))
		}
		t := Tile{Num: r.Num}
		switch r.JumpCode {
		case int(None):
			// destinations on plain tiles are ignored
		case int(Up):
			if r.Destination <= r.Num {
				return nil, verr("escalator destination %d is not above the tile", r.Destination)
			}
			t.Direction, t.Destination = Up, r.Destination
		case int(Down):
			if r.Destination >= r.Num {
				return nil, verr("eel destination %d is not below the tile", r.Destination)
			}
			if r.Destination <= 0 {
				return nil, verr("eel destination %d must be past the start", r.Destination)
			}
			t.Direction, t.Destination = Down, r.Destination
		default:
			return nil, verr("jump code %d must be -1, 0 or 1", r.JumpCode)
		}
		if t.Kind() == Jump && t.Destination >= size {
			return nil, verr("destination %d is off the board (size %d)", t.Destination, size)
		}
		tiles = append(tiles, t)
	}
	return &Board{tiles: tiles}, nil
}

// Size is the number of tiles. Reaching Size or beyond wins the game.
func (b *Board) Size() int {
	return len(b.tiles)
}

// Tile returns the tile at pos. pos must be on the board.
func (b *Board) Tile(pos int) Tile {
	return b.tiles[pos]
}

// Tiles returns a copy of the board's tiles.
func (b *Board) Tiles() []Tile {
	t := make([]Tile, len(b.tiles))
	copy(t, b.tiles)
	return t
}

// FindNextJump scans forward from the from position, inclusive, and returns
// the nearest jump tile going in direction dir.
func (b *Board) FindNextJump(dir Direction, from int) (Tile, bool) {
	if dir == None {
		return Tile{}, false
	}
	for i := max(from, 0); i < len(b.tiles); i++ {
		if b.tiles[i].Direction == dir {
			return b.tiles[i], true
		}
	}
	return Tile{}, false
}

// NumJumps counts the escalators and eels on the board.
func (b *Board) NumJumps() (up, down int) {
	for _, t := range b.tiles {
		switch t.Direction {
		case Up:
			up++
		case Down:
			down++
		}
	}
	return up, down
}
