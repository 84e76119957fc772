package agent

import (
	"errors"
	"isolation/game"
	"isolation/searcher"

	"github.com/rs/zerolog/log"
)

// MinimaxAgent searches a fixed number of plies every turn
type MinimaxAgent struct {
	config
}

func NewMinimaxAgent(options ...Option) *MinimaxAgent {
	return &MinimaxAgent{config: newConfig(options)}
}

func (a *MinimaxAgent) GetMove(state game.State, timeLeft searcher.TimeLeft) (game.Move, error) {
	a.metrics.Start()

	best, ok := fallback(state, a.rng)
	if !ok {
		log.Debug().Msgf("%s has no legal moves", state.ActivePlayer())
		return game.NoMove, nil
	}

	move, err := a.newSearch(timeLeft).Minimax(state, a.searchDepth)
	if errors.Is(err, searcher.ErrTimeout) {
		a.metrics.TimedOut()
		log.Debug().Msgf("minimax timed out at depth %d, playing fallback %v", a.searchDepth, best)
		return best, nil
	}
	if err != nil {
		return game.NoMove, err
	}

	a.metrics.CompleteDepth(a.searchDepth)
	if !move.IsNone() {
		best = move
	}
	return best, nil
}
