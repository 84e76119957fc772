package config

import (
	"isolation/game"
	"isolation/game/gametest"
	"isolation/searcher/agent"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("empty document uses defaults", func(t *testing.T) {
		cfg, err := Parse([]byte(""))

		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
		require.Equal(t, AlphaBeta, cfg.Algorithm)
		require.Equal(t, 10*time.Millisecond, cfg.TimeoutDuration())
	})

	t.Run("overrides fields", func(t *testing.T) {
		cfg, err := Parse([]byte(`
algorithm: minimax
search_depth: 5
score_fn: center_ratio
timeout: 2.5
seed: 42
`))

		require.NoError(t, err)
		require.Equal(t, Minimax, cfg.Algorithm)
		require.Equal(t, 5, cfg.SearchDepth)
		require.Equal(t, "center_ratio", cfg.ScoreFn)
		require.Equal(t, 2500*time.Microsecond, cfg.TimeoutDuration())
		require.NotNil(t, cfg.Seed)
		require.Equal(t, uint64(42), *cfg.Seed)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		for name, doc := range map[string]string{
			"algorithm":     "algorithm: mcts",
			"search depth":  "search_depth: 0",
			"timeout":       "timeout: -1",
			"max depth":     "max_depth: -2",
			"score fn":      "score_fn: improved_score",
			"unknown field": "goroutines: 8",
			"malformed":     "algorithm: [",
		} {
			_, err := Parse([]byte(doc))
			require.Error(t, err, name)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("reads a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "agent.yaml")
		require.NoError(t, os.WriteFile(path, []byte("score_fn: move_ratio\nmax_depth: 3\n"), 0644))

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, "move_ratio", cfg.ScoreFn)
		require.Equal(t, 3, cfg.MaxDepth)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestNewAgent(t *testing.T) {
	t.Run("builds the configured algorithm", func(t *testing.T) {
		minimax := Default()
		minimax.Algorithm = Minimax

		got, err := minimax.NewAgent()
		require.NoError(t, err)
		require.IsType(t, &agent.MinimaxAgent{}, got)

		got, err = Default().NewAgent()
		require.NoError(t, err)
		require.IsType(t, &agent.AlphaBetaAgent{}, got)
	})

	t.Run("configured agent plays a legal move", func(t *testing.T) {
		seed := uint64(9)
		cfg := Default()
		cfg.MaxDepth = 2
		cfg.Seed = &seed
		board := gametest.NewBoard(5, 5).Place(gametest.Player1, game.Move{Row: 0, Col: 0})

		a, err := cfg.NewAgent()
		require.NoError(t, err)
		move, err := a.GetMove(board, gametest.Frozen(time.Hour))

		require.NoError(t, err)
		require.Contains(t, board.LegalMoves(gametest.Player1), move)
	})

	t.Run("invalid config", func(t *testing.T) {
		cfg := Default()
		cfg.ScoreFn = "nope"

		_, err := cfg.NewAgent()
		require.Error(t, err)
	})
}
