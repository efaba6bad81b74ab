package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"gameplayer/experiments/metrics"
	"gameplayer/meta"

	"github.com/stretchr/testify/require"
)

func TestRunGame(t *testing.T) {
	t.Run("same seed same game", func(t *testing.T) {
		config := metrics.AgentConfig{ID: 1, Depth: 2}
		a, movesA, err := runGame(config, config, 7)
		require.NoError(t, err)
		b, movesB, err := runGame(config, config, 7)
		require.NoError(t, err)

		require.Equal(t, a.Opening, b.Opening)
		require.Equal(t, a.Winner, b.Winner)
		require.Equal(t, len(movesA), len(movesB))
		require.Equal(t, "O", a.StartingPlayer, "The opening is played for X")
	})

	t.Run("full depth never loses", func(t *testing.T) {
		shallow := metrics.AgentConfig{ID: 1, Depth: 0}
		full := metrics.AgentConfig{ID: 0, Depth: meta.MaxDepth}
		for seed := uint64(0); seed < 4; seed++ {
			record, _, err := runGame(shallow, full, seed)
			require.NoError(t, err)
			require.NotEqual(t, "X", record.Winner, "seed %d", seed)
		}
	})
}

func TestRunExperiment(t *testing.T) {
	dir := t.TempDir()
	configs := []metrics.AgentConfig{{ID: 0, Depth: 1}, {ID: 1, Depth: 0}}
	matchUps := [][]metrics.AgentConfig{{configs[0], configs[1]}, {configs[1], configs[1]}}

	require.NoError(t, runExperiment("test", dir, 2, configs, matchUps))

	runs, err := os.ReadDir(filepath.Join(dir, "test"))
	require.NoError(t, err)
	require.Len(t, runs, 1)

	f, err := os.Open(filepath.Join(dir, "test", runs[0].Name(), "game_records.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1+4)
	require.Equal(t, []string{"1", "0", "1"}, rows[1][:3])
	require.Equal(t, []string{"2", "1", "0"}, rows[2][:3], "Second game should swap the opening agent")
	require.Equal(t, "4", rows[4][0])
}
