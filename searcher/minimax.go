package searcher

import "isolation/game"

// Minimax returns the best move for the player to move within depth plies.
// The move is game.NoMove only if depth is 0 or there are no legal moves. It
// returns ErrTimeout as soon as the remaining time drops below the threshold.
func (s *Search) Minimax(state game.State, depth int) (game.Move, error) {
	result, err := s.MinimaxResult(state, depth)
	if err != nil {
		return game.NoMove, err
	}
	return result.Move, nil
}

// MinimaxResult is Minimax with the score of the returned move
func (s *Search) MinimaxResult(state game.State, depth int) (Result, error) {
	if s.expired() {
		return Result{Move: game.NoMove}, ErrTimeout
	}
	s.horizon = false
	return s.minimax(state, state.ActivePlayer(), depth, true)
}

func (s *Search) minimax(state game.State, player game.Player, depth int, maximizing bool) (Result, error) {
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

		result, err := s.minimax(child, player, depth-1, !maximizing)
		if err != nil {
			return Result{Move: game.NoMove}, err
		}

		if best.Move.IsNone() || improves(result.Score, best.Score, maximizing) {
			best = Result{Score: result.Score, Move: move}
		}
	}
	return best, nil
}
