package searcher

import (
	"isolation/game"
	"math"
)

// AlphaBeta is Minimax with alpha-beta pruning. alpha is the score the
// maximizing player can already guarantee and beta the score the minimizing
// player can already guarantee; pass -Inf and +Inf for a full search.
func (s *Search) AlphaBeta(state game.State, depth int, alpha, beta float64) (game.Move, error) {
	result, err := s.AlphaBetaResult(state, depth, alpha, beta)
	if err != nil {
		return game.NoMove, err
	}
	return result.Move, nil
}

// AlphaBetaResult is AlphaBeta with the score of the returned move
func (s *Search) AlphaBetaResult(state game.State, depth int, alpha, beta float64) (Result, error) {
	if s.expired() {
		return Result{Move: game.NoMove}, ErrTimeout
	}
	s.horizon = false
	return s.alphabeta(state, state.ActivePlayer(), depth, alpha, beta, true)
}

func (s *Search) alphabeta(state game.State, player game.Player, depth int, alpha, beta float64, maximizing bool) (Result, error) {
	if s.expired() {
		return Result{Move: game.NoMove}, ErrTimeout
	}
	s.metrics.AddNode()

	result, moves, ok := s.leaf(state, player, depth)
	if ok {
		return result, nil
	}

	best := Result{Score: initScore(maximizing), Move: game.NoMove}
	for _, move := range moves {
		child, err := forecast(state, move)
		if err != nil {
			return Result{Move: game.NoMove}, err
		}

		result, err := s.alphabeta(child, player, depth-1, alpha, beta, !maximizing)
		if err != nil {
			return Result{Move: game.NoMove}, err
		}

		if best.Move.IsNone() || improves(result.Score, best.Score, maximizing) {
			best = Result{Score: result.Score, Move: move}
		}

		// Bounds only narrow for the remaining siblings, never for the parent
		if maximizing {
			if best.Score >= beta {
				s.metrics.AddCutoff()
				break
			}
			alpha = math.Max(alpha, best.Score)
		} else {
			if best.Score <= alpha {
				s.metrics.AddCutoff()
				break
			}
			beta = math.Min(beta, best.Score)
		}
	}
	return best, nil
}
