package gametest

import (
	"isolation/game"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestTree(t *testing.T) {
	root := Branch(Leaf(1), &Node{Value: 2, Payoff: 5})
	tree := NewTree(root)

	require.Equal(t, Max, tree.ActivePlayer())
	require.Equal(t, []game.Move{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, tree.LegalMoves(Max))
	require.Empty(t, tree.LegalMoves(Min), "Only the player to move has moves")

	child, err := tree.ForecastMove(game.Move{Row: 0, Col: 1})
	require.NoError(t, err)
	require.Equal(t, Min, child.ActivePlayer())
	require.Equal(t, 2.0, Value(child, Max))
	require.Equal(t, -2.0, Value(child, Min))
	require.Equal(t, 5.0, child.Utility(Max))
	require.Equal(t, -5.0, child.Utility(Min))
	require.Same(t, root, tree.Current(), "Forecast should not move the parent")

	_, err = tree.ForecastMove(game.Move{Row: 0, Col: 2})
	require.Error(t, err)
}

func TestRandomTree(t *testing.T) {
	a := RandomTree(rand.New(rand.NewSource(5)), 4, 3)
	b := RandomTree(rand.New(rand.NewSource(5)), 4, 3)

	require.Equal(t, a, b, "Same seed should build the same tree")
	require.LessOrEqual(t, len(a.Children), 3)
}

func TestClocks(t *testing.T) {
	clock, polls := Polls(Countdown(3*time.Millisecond, time.Millisecond))

	require.Equal(t, 3*time.Millisecond, clock())
	require.Equal(t, 2*time.Millisecond, clock())
	require.Equal(t, 2, *polls)
	require.Equal(t, time.Minute, Frozen(time.Minute)())
}
