// Package store saves and loads the flat list of per-game round counts
// produced by a batch run, for downstream analysis.
package store

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is an on-disk result format.
type Format int

const (
	FormatUnknown Format = iota
	FormatJSON
	FormatGzipJSON
	FormatYAML
	FormatSQLite
)

var ErrUnknownFormat = errors.New("unknown result file format")

// FormatFor picks a format from the file extension.
func FormatFor(path string) Format {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".json"):
		return FormatJSON
	case strings.HasSuffix(lower, ".gz"):
		return FormatGzipJSON
	case strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
		return FormatYAML
	case strings.HasSuffix(lower, ".db"), strings.HasSuffix(lower, ".sqlite"):
		return FormatSQLite
	}
	return FormatUnknown
}

// Save writes results to path, replacing whatever was there.
func Save(path string, results []int) error {
	format := FormatFor(path)
	switch format {
	case FormatUnknown:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, filepath.Base(path))
	case FormatSQLite:
		return saveSQLite(path, results)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating result file: %w", err)
	}
	if err := encode(f, format, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encode(w io.Writer, format Format, results []int) error {
	if results == nil {
		results = []int{}
	}
	switch format {
	case FormatJSON:
		return json.NewEncoder(w).Encode(results)
	case FormatGzipJSON:
		gz := gzip.NewWriter(w)
		if err := json.NewEncoder(gz).Encode(results); err != nil {
			gz.Close()
			return err
		}
		return gz.Close()
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	}
	return ErrUnknownFormat
}

// Load reads back a result file written by Save.
func Load(path string) ([]int, error) {
	format := FormatFor(path)
	switch format {
	case FormatUnknown:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, filepath.Base(path))
	case FormatSQLite:
		return loadSQLite(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening result file: %w", err)
	}
	defer f.Close()

	var results []int
	switch format {
	case FormatJSON:
		err = json.NewDecoder(f).Decode(&results)
	case FormatGzipJSON:
		var gz *gzip.Reader
		gz, err = gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("could not create gzip reader: %w", err)
		}
		defer gz.Close()
		err = json.NewDecoder(gz).Decode(&results)
	case FormatYAML:
		err = yaml.NewDecoder(f).Decode(&results)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return results, nil
}
