package board

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestReadCSV(t *testing.T) {
	is := is.New(t)
	b, err := ReadCSV(strings.NewReader("1,1,5\n2,0,0\n\n3, -1, 1\n4,0,0\n5,0,0\n"))
	is.NoErr(err)
	is.Equal(b.Size(), 6)
	is.Equal(b.Tile(3), Tile{Num: 3, Direction: Down, Destination: 1})
}

func TestReadCSVMalformed(t *testing.T) {
	is := is.New(t)
	_, err := ReadCSV(strings.NewReader("1,1\n"))
	is.True(err != nil)

	_, err = ReadCSV(strings.NewReader("1,0,0\n2,x,0\n"))
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "line 2"))

	_, err = ReadCSV(strings.NewReader("1,0,0\n2,-1,0\n"))
	is.True(errors.Is(err, ErrInvalidTile))
}

func TestLoadFromCSVMissingFile(t *testing.T) {
	is := is.New(t)
	_, err := LoadFromCSV("testdata/nope.csv")
	is.True(errors.Is(err, os.ErrNotExist))
}

func TestLoadFromCSV(t *testing.T) {
	is := is.New(t)
	b, err := LoadFromCSV("testdata/tiles.csv")
	is.NoErr(err)
	is.Equal(b.Size(), 101)
	up, down := b.NumJumps()
	is.True(up > 0)
	is.True(down > 0)
	is.True(strings.HasPrefix(b.ToDisplayText(), "board: 101 tiles"))
}
