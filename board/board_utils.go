package board

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadFromCSV reads a board definition file. Each line is
// num,jumpCode,destination.
func LoadFromCSV(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening board file: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV parses board rows from r and builds the board.
func ReadCSV(r io.Reader) (*Board, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true

	var rows []Row
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading board csv: %w", err)
		}
		line, _ := cr.FieldPos(0)
		var vals [3]int
		for i, field := range record {
			vals[i], err = strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("board csv line %d, field %d: %w", line, i+1, err)
			}
		}
		rows = append(rows, Row{Num: vals[0], JumpCode: vals[1], Destination: vals[2]})
	}
	return BuildFromRows(rows)
}

// ToDisplayText renders the jump tiles of the board, one per line.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	up, down := b.NumJumps()
	fmt.Fprintf(&sb, "board: %d tiles, %d escalators, %d eels\n", b.Size(), up, down)
	for _, t := range b.tiles {
		if t.Kind() == Plain {
			continue
		}
		arrow := "^"
		if t.Direction == Down {
			arrow = "v"
		}
		fmt.Fprintf(&sb, "%4d %s %-4d\n", t.Num, arrow, t.Destination)
	}
	return sb.String()
}
