package gametest

import (
	"fmt"
	"isolation/game"

	"golang.org/x/exp/rand"
)

const (
	Max game.Player = "max"
	Min game.Player = "min"
)

// Node is a scripted game position. Children are reached by the moves
// (0, i) in order.
type Node struct {
	Value    float64 // Heuristic value from Max's perspective
	Payoff   float64 // Utility for Max when the node has no children
	Children []*Node
}

// Tree is a game.State walking a scripted game tree, Max moves first
type Tree struct {
	node   *Node
	active game.Player
}

func NewTree(root *Node) *Tree {
	return &Tree{node: root, active: Max}
}

// Leaf returns a node with heuristic value v
func Leaf(v float64) *Node {
	return &Node{Value: v}
}

// Branch returns a node with the given children
func Branch(children ...*Node) *Node {
	return &Node{Children: children}
}

// RandomTree builds a tree with up to depth plies and 1 to branching children
// per node. Values are small integers so that ties are common.
func RandomTree(r *rand.Rand, depth, branching int) *Node {
	node := &Node{
		Value:  float64(r.Intn(21) - 10),
		Payoff: float64(r.Intn(3)-1) * 100,
	}
	// Some positions end the game early
	if depth == 0 || r.Intn(10) == 0 {
		return node
	}
	n := 1 + r.Intn(branching)
	for i := 0; i < n; i++ {
		node.Children = append(node.Children, RandomTree(r, depth-1, branching))
	}
	return node
}

// Value evaluates a Tree state, or a state embedding one, from player's
// perspective
func Value(state game.State, player game.Player) float64 {
	node := state.(interface{ Current() *Node }).Current()
	if player == Min {
		return -node.Value
	}
	return node.Value
}

// Current returns the node the state is at
func (t *Tree) Current() *Node {
	return t.node
}

func (t *Tree) ActivePlayer() game.Player {
	return t.active
}

func (t *Tree) Opponent(player game.Player) game.Player {
	if player == Max {
		return Min
	}
	return Max
}

func (t *Tree) LegalMoves(player game.Player) []game.Move {
	if player != t.active {
		return []game.Move{}
	}
	moves := make([]game.Move, len(t.node.Children))
	for i := range t.node.Children {
		moves[i] = game.Move{Row: 0, Col: i}
	}
	return moves
}

func (t *Tree) ForecastMove(move game.Move) (game.State, error) {
	if move.Row != 0 || move.Col < 0 || move.Col >= len(t.node.Children) {
		return nil, fmt.Errorf("illegal move %v", move)
	}
	return &Tree{node: t.node.Children[move.Col], active: t.Opponent(t.active)}, nil
}

func (t *Tree) IsWinner(player game.Player) bool {
	return false
}

func (t *Tree) IsLoser(player game.Player) bool {
	return false
}

func (t *Tree) Utility(player game.Player) float64 {
	if player == Min {
		return -t.node.Payoff
	}
	return t.node.Payoff
}

func (t *Tree) Width() int {
	return 0
}

func (t *Tree) Height() int {
	return 0
}

func (t *Tree) PlayerLocation(player game.Player) (game.Move, bool) {
	return game.NoMove, false
}
