package searcher

import (
	"fmt"
	"isolation/game"
	"time"
)

type Option func(s *Search)

// Search runs depth-limited game tree searches for the player to move at the
// root. The root is a maximizing level and levels alternate below it.
type Search struct {
	evaluate  game.Evaluate
	timeLeft  TimeLeft
	threshold time.Duration
	metrics   MetricsCollector
	horizon   bool // Last search stopped a line at the depth limit
}

func WithThreshold(threshold time.Duration) Option {
	return func(s *Search) {
		if threshold >= 0 {
			s.threshold = threshold
		}
	}
}

func WithMetrics(metrics MetricsCollector) Option {
	return func(s *Search) {
		if metrics != nil {
			s.metrics = metrics
		}
	}
}

func NewSearch(evaluate game.Evaluate, timeLeft TimeLeft, options ...Option) *Search {
	if evaluate == nil {
		panic("Must specify an evaluation function")
	}
	if timeLeft == nil {
		panic("Must specify a time left accessor")
	}
	s := &Search{ // Default values
		evaluate:  evaluate,
		timeLeft:  timeLeft,
		threshold: DefaultThreshold,
		metrics:   NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Exhausted reports whether the last completed search followed every line it
// explored to the end of the game, so searching deeper cannot change its result
func (s *Search) Exhausted() bool {
	return !s.horizon
}

// expired must be checked on entry to every search level
func (s *Search) expired() bool {
	return s.timeLeft() < s.threshold
}

// leaf resolves positions that end the search. ok is false when the
// position has to be expanded into moves.
func (s *Search) leaf(state game.State, player game.Player, depth int) (result Result, moves []game.Move, ok bool) {
	if depth <= 0 {
		s.horizon = true
		s.metrics.AddEvaluation()
		return Result{Score: s.evaluate(state, player), Move: game.NoMove}, nil, true
	}

	moves = state.LegalMoves(state.ActivePlayer())
	if len(moves) == 0 { // Game over before the depth limit
		s.metrics.AddTerminal()
		return Result{Score: state.Utility(player), Move: game.NoMove}, nil, true
	}
	return Result{}, moves, false
}

func forecast(state game.State, move game.Move) (game.State, error) {
	child, err := state.ForecastMove(move)
	if err != nil {
		return nil, fmt.Errorf("failed to forecast move %v: %w", move, err)
	}
	return child, nil
}
