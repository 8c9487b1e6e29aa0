package automatic

import (
	"bufio"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	"lukechampine.com/frand"
)

// GenerateSeeds creates n random 32-byte worker seeds.
func GenerateSeeds(n int) ([][32]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot generate %d seeds", n)
	}
	seeds := make([][32]byte, n)
	for i := range seeds {
		frand.Read(seeds[i][:])
	}
	return seeds, nil
}

// SaveSeeds writes one URL-safe base64 seed per line, worker 0 first.
func SaveSeeds(seeds [][32]byte, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create seed file: %w", err)
	}
	writer := bufio.NewWriter(file)
	fmt.Fprintf(writer, "# eelsim worker seeds (%d workers, base64 URL-safe, 32 bytes each)\n", len(seeds))
	for _, seed := range seeds {
		fmt.Fprintln(writer, base64.RawURLEncoding.EncodeToString(seed[:]))
	}
	if err := writer.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to write seed file: %w", err)
	}
	return file.Close()
}

// LoadSeeds reads a seed file written by SaveSeeds. Blank lines and lines
// starting with # are skipped.
func LoadSeeds(path string) ([][32]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer file.Close()

	var seeds [][32]byte
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		decoded, err := base64.RawURLEncoding.DecodeString(line)
		if err != nil {
			return nil, fmt.Errorf("failed to decode seed at line %d: %w", lineNum, err)
		}
		if len(decoded) != 32 {
			return nil, fmt.Errorf("invalid seed length at line %d: got %d bytes, expected 32", lineNum, len(decoded))
		}
		var seed [32]byte
		copy(seed[:], decoded)
		seeds = append(seeds, seed)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading seed file: %w", err)
	}
	return seeds, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}
