package agent

import (
	"errors"
	"isolation/game"
	"isolation/searcher"
	"math"

	"github.com/rs/zerolog/log"
)

// AlphaBetaAgent runs iterative deepening alpha-beta search until time runs out
type AlphaBetaAgent struct {
	config
}

func NewAlphaBetaAgent(options ...Option) *AlphaBetaAgent {
	return &AlphaBetaAgent{config: newConfig(options)}
}

func (a *AlphaBetaAgent) GetMove(state game.State, timeLeft searcher.TimeLeft) (game.Move, error) {
	a.metrics.Start()

	best, ok := fallback(state, a.rng)
	if !ok {
		log.Debug().Msgf("%s has no legal moves", state.ActivePlayer())
		return game.NoMove, nil
	}

	search := a.newSearch(timeLeft)
	for depth := 0; a.maxDepth == 0 || depth <= a.maxDepth; depth++ {
		// Each depth starts from a full window
		move, err := search.AlphaBeta(state, depth, math.Inf(-1), math.Inf(1))
		if errors.Is(err, searcher.ErrTimeout) {
			a.metrics.TimedOut()
			log.Debug().Msgf("alphabeta timed out at depth %d, playing %v", depth, best)
			break
		}
		if err != nil {
			return game.NoMove, err
		}

		a.metrics.CompleteDepth(depth)
		if !move.IsNone() {
			best = move
		}
		log.Debug().Msgf("alphabeta completed depth %d with move %v", depth, best)

		if search.Exhausted() {
			log.Debug().Msgf("alphabeta reached the end of the game at depth %d", depth)
			break
		}
	}
	return best, nil
}
