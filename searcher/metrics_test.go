package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetricsCollector(t *testing.T) {
	t.Run("tallies search events", func(t *testing.T) {
		m := NewMetricsCollector()
		m.Start()
		m.AddNode()
		m.AddNode()
		m.AddEvaluation()
		m.AddTerminal()
		m.AddCutoff()
		m.CompleteDepth(2)
		m.CompleteDepth(1)
		m.TimedOut()

		got := m.Complete()

		require.Equal(t, int64(2), got.Nodes)
		require.Equal(t, int64(1), got.Evaluations)
		require.Equal(t, int64(1), got.Terminals)
		require.Equal(t, int64(1), got.Cutoffs)
		require.Equal(t, 2, got.Depth, "Depth should keep the deepest completed search")
		require.True(t, got.TimedOut)
	})

	t.Run("start resets the previous search", func(t *testing.T) {
		m := NewMetricsCollector()
		m.AddNode()
		m.CompleteDepth(3)
		m.TimedOut()

		m.Start()
		got := m.Complete()

		require.Zero(t, got.Nodes)
		require.Equal(t, -1, got.Depth)
		require.False(t, got.TimedOut)
	})

	t.Run("no-op collector reports nothing", func(t *testing.T) {
		m := NewNoMetricsCollector()
		m.Start()
		m.AddNode()
		m.CompleteDepth(4)

		require.Equal(t, SearchMetrics{Depth: -1}, m.Complete())
	})
}
