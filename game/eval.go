package game

import (
	"fmt"
	"isolation/utils"
	"math"
	"sort"
)

// Evaluators maps configuration names to the reference heuristics
var Evaluators = map[string]Evaluate{
	"distance_mobility": DistanceMobility,
	"move_ratio":        MoveRatio,
	"center_ratio":      CenterRatio,
}

// LookupEvaluate returns the heuristic registered under name
func LookupEvaluate(name string) (Evaluate, error) {
	evaluate, ok := Evaluators[name]
	if !ok {
		names := make([]string, 0, len(Evaluators))
		for n := range Evaluators {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unknown score function %q (expected one of %v)", name, names)
	}
	return evaluate, nil
}

// DistanceMobility weighs each of the player's legal moves by its squared
// distance from the board center and divides by the same sum for the opponent
func DistanceMobility(s State, player Player) float64 {
	if score, over := terminalScore(s, player); over {
		return score
	}

	opponent := s.Opponent(player)
	own := 1 + spread(s, s.LegalMoves(player))
	other := 1 + spread(s, s.LegalMoves(opponent))

	return own / other
}

// MoveRatio compares the number of legal moves of the player and the opponent
func MoveRatio(s State, player Player) float64 {
	if score, over := terminalScore(s, player); over {
		return score
	}

	own := len(s.LegalMoves(player))
	other := len(s.LegalMoves(s.Opponent(player)))

	return float64(own+1) / float64(other+1)
}

// CenterRatio favors positions where the opponent sits farther from the board
// center than the player
func CenterRatio(s State, player Player) float64 {
	if score, over := terminalScore(s, player); over {
		return score
	}

	own := locationDistance(s, player)
	other := locationDistance(s, s.Opponent(player))

	return (other + 1) / (own + 1)
}

func terminalScore(s State, player Player) (float64, bool) {
	if s.IsWinner(player) {
		return math.Inf(1), true
	}
	if s.IsLoser(player) {
		return math.Inf(-1), true
	}
	return 0, false
}

// spread sums the squared center distance over moves
func spread(s State, moves []Move) float64 {
	total := 0.0
	for _, move := range moves {
		total += utils.CenterDistance(s.Width(), s.Height(), move.Row, move.Col)
	}
	return total
}

// locationDistance is 0 for a player not yet on the board
func locationDistance(s State, player Player) float64 {
	loc, ok := s.PlayerLocation(player)
	if !ok {
		return 0
	}
	return utils.CenterDistance(s.Width(), s.Height(), loc.Row, loc.Col)
}
