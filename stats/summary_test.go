package stats

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	results := []int{10, 12, 23, 23, 16, 23, 21, 16}
	s, err := Summarize(results)
	assert.NoError(t, err)
	assert.Equal(t, 8, s.Count)
	assert.InDelta(t, 18.0, s.Mean, Epsilon)
	assert.InDelta(t, 5.2372293656638, s.StdDev, Epsilon)
	assert.Equal(t, 18.5, s.Median)
	assert.Equal(t, 23, s.Mode)
	assert.Equal(t, 23, s.Max)
	assert.Equal(t, 10, s.Min)
	// input is left alone
	assert.Equal(t, []int{10, 12, 23, 23, 16, 23, 21, 16}, results)
}

func TestSummarizeOddAndSingle(t *testing.T) {
	s, err := Summarize([]int{5, 1, 3})
	assert.NoError(t, err)
	assert.Equal(t, 3.0, s.Median)

	s, err = Summarize([]int{7})
	assert.NoError(t, err)
	assert.Equal(t, Summary{Count: 1, Mean: 7, Median: 7, Mode: 7, Max: 7, Min: 7}, s)
}

func TestSummarizeModeTiesGoToSmallest(t *testing.T) {
	s, err := Summarize([]int{9, 4, 9, 4, 2})
	assert.NoError(t, err)
	assert.Equal(t, 4, s.Mode)
}

func TestSummarizeEmpty(t *testing.T) {
	_, err := Summarize(nil)
	assert.ErrorIs(t, err, ErrEmptySample)
}

func TestReport(t *testing.T) {
	s, err := Summarize([]int{3, 4, 4, 9})
	assert.NoError(t, err)
	report := s.Report(1500 * time.Millisecond)
	lines := strings.Split(strings.TrimSpace(report), "\n")
	assert.Equal(t, []string{
		"INSTANCES: 4",
		"MEAN: 5.000000",
		"MEDIAN: 4",
		"MODE: 4",
		"MAX: 9",
		"MIN: 3",
		"TIME TAKEN: 1.500000",
	}, lines)
}
