package automatic

import (
	"fmt"
	"io"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"

	"github.com/domino14/eelsim/stats"
	"github.com/domino14/eelsim/store"
)

const histogramWidth = 60

// AnalyzeResultsFile loads a saved result file and describes it: the
// summary, a 95% confidence interval on the mean, and a histogram of game
// lengths.
func AnalyzeResultsFile(path string) (string, error) {
	results, err := store.Load(path)
	if err != nil {
		return "", err
	}
	return AnalyzeResults(results)
}

// AnalyzeResults is AnalyzeResultsFile for results already in memory.
func AnalyzeResults(results []int) (string, error) {
	summary, err := stats.Summarize(results)
	if err != nil {
		return "", err
	}
	running := &stats.Statistic{}
	for _, r := range results {
		running.PushInt(r)
	}

	var ss strings.Builder
	fmt.Fprintf(&ss, "Games played: %d\n", summary.Count)
	fmt.Fprintf(&ss, "Mean rounds: %.4f ± %.4f (95%% CI)  Stdev: %.4f\n",
		summary.Mean, stats.MeanInterval(running, 95), summary.StdDev)
	fmt.Fprintf(&ss, "Median: %v  Mode: %d  Min: %d  Max: %d\n",
		summary.Median, summary.Mode, summary.Min, summary.Max)
	if err := writeHistogram(&ss, results, summary); err != nil {
		return "", err
	}
	return ss.String(), nil
}

// writeHistogram uses one bin per round up to the longest game.
func writeHistogram(w io.Writer, results []int, summary stats.Summary) error {
	if summary.Max == summary.Min {
		_, err := fmt.Fprintf(w, "all %d games took %d rounds\n", summary.Count, summary.Max)
		return err
	}
	data := lo.Map(results, func(r int, _ int) float64 { return float64(r) })
	hist := histogram.Hist(summary.Max, data)
	return histogram.Fprint(w, hist, histogram.Linear(histogramWidth))
}
