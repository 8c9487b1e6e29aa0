package stats

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrEmptySample is returned when there is nothing to summarize.
var ErrEmptySample = errors.New("no results to summarize")

// Summary describes a sample of game lengths, in rounds.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Median float64
	// Mode is the most frequent value. When several values are equally
	// frequent the smallest of them is reported.
	Mode int
	Max  int
	Min  int
}

// Summarize computes the summary of results. results is not modified.
func Summarize(results []int) (Summary, error) {
	if len(results) == 0 {
		return Summary{}, ErrEmptySample
	}
	sorted := slices.Clone(results)
	slices.Sort(sorted)

	xs := lo.Map(sorted, func(v int, _ int) float64 { return float64(v) })
	mean, std := stat.MeanStdDev(xs, nil)
	if len(xs) == 1 {
		std = 0
	}
	return Summary{
		Count:  len(sorted),
		Mean:   mean,
		StdDev: std,
		Median: median(sorted),
		Mode:   mode(sorted),
		Max:    int(floats.Max(xs)),
		Min:    int(floats.Min(xs)),
	}, nil
}

func median(sorted []int) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}

// mode expects sorted input; equal values are adjacent, so the first
// longest run wins and ties go to the smallest value.
func mode(sorted []int) int {
	best, bestCount := sorted[0], 0
	for i := 0; i < len(sorted); {
		j := i
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		if j-i > bestCount {
			best, bestCount = sorted[i], j-i
		}
		i = j
	}
	return best
}

// Report is the console form of a Summary plus the time the batch took.
func (s Summary) Report(elapsed time.Duration) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "INSTANCES: %d\n", s.Count)
	fmt.Fprintf(&sb, "MEAN: %f\n", s.Mean)
	fmt.Fprintf(&sb, "MEDIAN: %s\n", strconv.FormatFloat(s.Median, 'f', -1, 64))
	fmt.Fprintf(&sb, "MODE: %d\n", s.Mode)
	fmt.Fprintf(&sb, "MAX: %d\n", s.Max)
	fmt.Fprintf(&sb, "MIN: %d\n", s.Min)
	fmt.Fprintf(&sb, "TIME TAKEN: %f\n", elapsed.Seconds())
	return sb.String()
}
