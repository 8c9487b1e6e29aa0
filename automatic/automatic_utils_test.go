package automatic

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/samber/lo"

	"github.com/domino14/eelsim/config"
	"github.com/domino14/eelsim/game"
	"github.com/domino14/eelsim/stats"
)

func testSettings(t *testing.T) config.Settings {
	s := config.DefaultSettings()
	s.Games = 1000
	s.Workers = 4
	s.TraceDir = filepath.Join(t.TempDir(), "logs")
	s.ResultsFile = filepath.Join(t.TempDir(), "data.json")
	return s
}

func TestPartition(t *testing.T) {
	is := is.New(t)
	sizes := Partition(100000, 12)
	is.Equal(len(sizes), 12)
	for _, n := range sizes {
		is.Equal(n, 8333)
	}
	is.Equal(100000-lo.Sum(sizes), 4)

	is.Equal(Partition(5, 12), make([]int, 12))
	is.Equal(Partition(9, 3), []int{3, 3, 3})
}

func TestRunBatch(t *testing.T) {
	is := is.New(t)
	s := testSettings(t)
	s.Games = 1003 // 3 are dropped

	res, err := RunBatch(context.Background(), s, testBoard(t))
	is.NoErr(err)
	is.Equal(len(res.Results), 1000)
	is.Equal(res.Summary.Count, 1000)
	is.Equal(len(res.Seeds), 4)
	for _, r := range res.Results {
		is.True(r >= 1)
		is.True(r >= res.Summary.Min && r <= res.Summary.Max)
	}
	is.True(res.Elapsed > 0)
	is.Equal(IsPlaying.Value(), int64(0))

	// tracing is off, so no trace directory
	_, err = os.Stat(s.TraceDir)
	is.True(os.IsNotExist(err))
}

func TestRunBatchWithTraces(t *testing.T) {
	is := is.New(t)
	s := testSettings(t)
	s.Games = 12
	s.Workers = 3
	s.Trace = true

	res, err := RunBatch(context.Background(), s, testBoard(t))
	is.NoErr(err)
	is.Equal(len(res.Results), 12)

	entries, err := os.ReadDir(s.TraceDir)
	is.NoErr(err)
	is.Equal(len(entries), 12)
	for n := 1; n <= 12; n++ {
		_, err := os.Stat(filepath.Join(s.TraceDir, TraceFileName(n)))
		is.NoErr(err)
	}
}

func TestRunBatchReproducibleFromSeedFile(t *testing.T) {
	is := is.New(t)
	s := testSettings(t)
	s.SeedFile = filepath.Join(t.TempDir(), "seeds.txt")

	first, err := RunBatch(context.Background(), s, testBoard(t))
	is.NoErr(err)
	_, err = os.Stat(s.SeedFile)
	is.NoErr(err)

	second, err := RunBatch(context.Background(), s, testBoard(t))
	is.NoErr(err)
	is.Equal(first.Seeds, second.Seeds)
	is.Equal(first.Results, second.Results)
}

func TestRunBatchNotEnoughSeeds(t *testing.T) {
	is := is.New(t)
	s := testSettings(t)
	s.SeedFile = filepath.Join(t.TempDir(), "seeds.txt")
	seeds, err := GenerateSeeds(2)
	is.NoErr(err)
	is.NoErr(SaveSeeds(seeds, s.SeedFile))

	_, err = RunBatch(context.Background(), s, testBoard(t))
	is.True(err != nil)
}

func TestRunBatchEmptySample(t *testing.T) {
	is := is.New(t)
	s := testSettings(t)
	s.Games = 3
	s.Workers = 4
	_, err := RunBatch(context.Background(), s, testBoard(t))
	is.True(errors.Is(err, stats.ErrEmptySample))
}

func TestRunWorkersFailureFailsBatch(t *testing.T) {
	is := is.New(t)
	b := testBoard(t)
	ok := NewGameRunner(b, 3, game.NewRoller([32]byte{1}))
	broken := NewGameRunner(b, 3, game.NewRoller([32]byte{2}),
		WithTraceDir(filepath.Join(t.TempDir(), "missing")))

	batches, err := runWorkers(context.Background(), []*GameRunner{ok, broken}, []int{50, 50})
	is.True(err != nil)
	is.True(strings.HasPrefix(err.Error(), "worker 1:"))
	is.Equal(batches, nil)
	is.Equal(IsPlaying.Value(), int64(0))
}

func TestRunBatchInvalidSettings(t *testing.T) {
	is := is.New(t)
	s := testSettings(t)
	s.Workers = 0
	_, err := RunBatch(context.Background(), s, testBoard(t))
	is.True(err != nil)
}

func TestSeedsRoundTrip(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "seeds.txt")
	seeds, err := GenerateSeeds(5)
	is.NoErr(err)
	is.NoErr(SaveSeeds(seeds, path))
	loaded, err := LoadSeeds(path)
	is.NoErr(err)
	is.Equal(loaded, seeds)
}

func TestLoadSeedsBadLine(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "seeds.txt")
	is.NoErr(os.WriteFile(path, []byte("# header\nAAAA\n"), 0o644))
	_, err := LoadSeeds(path)
	is.True(err != nil)
}
