package agent

import (
	"isolation/game"
	"isolation/meta"
	"isolation/searcher"
	"isolation/utils"
	"math"
	"time"

	"golang.org/x/exp/rand"
)

type Agent interface {
	// GetMove returns a legal move for the player to move, or game.NoMove if
	// there is none. Running out of time is not an error.
	GetMove(state game.State, timeLeft searcher.TimeLeft) (game.Move, error)
}

type Option func(c *config)

type config struct {
	searchDepth int
	maxDepth    int
	evaluate    game.Evaluate
	timeout     time.Duration
	rng         *rand.Rand
	metrics     searcher.MetricsCollector
}

// WithSearchDepth sets the fixed number of plies searched by a minimax agent
func WithSearchDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.searchDepth = depth
		}
	}
}

// WithMaxDepth stops iterative deepening after depth plies, 0 searches until
// time runs out
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		if depth >= 0 {
			c.maxDepth = depth
		}
	}
}

func WithScoreFn(evaluate game.Evaluate) Option {
	return func(c *config) {
		if evaluate != nil {
			c.evaluate = evaluate
		}
	}
}

// WithTimeout sets the remaining time at which a search is abandoned
func WithTimeout(timeout time.Duration) Option {
	return func(c *config) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithRand sets the random source used to pick the initial fallback move
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		if rng != nil {
			c.rng = rng
		}
	}
}

func WithMetrics(metrics searcher.MetricsCollector) Option {
	return func(c *config) {
		if metrics != nil {
			c.metrics = metrics
		}
	}
}

func newConfig(options []Option) config {
	c := config{ // Default values
		searchDepth: meta.SEARCH_DEPTH,
		evaluate:    game.DistanceMobility,
		timeout:     meta.TIMER_THRESHOLD,
		rng:         rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics:     searcher.NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

func (c config) newSearch(timeLeft searcher.TimeLeft) *searcher.Search {
	return searcher.NewSearch(c.evaluate, timeLeft,
		searcher.WithThreshold(c.timeout),
		searcher.WithMetrics(c.metrics))
}

// fallback picks the legal move closest to the board center, first one wins
// ties. ok is false if the player to move has no legal moves.
func fallback(state game.State, rng *rand.Rand) (move game.Move, ok bool) {
	moves := state.LegalMoves(state.ActivePlayer())
	if len(moves) == 0 {
		return game.NoMove, false
	}

	// Any legal move will do until the center scan replaces it
	move = moves[rng.Intn(len(moves))]
	best := math.Inf(1)
	for _, m := range moves {
		if d := utils.CenterDistance(state.Width(), state.Height(), m.Row, m.Col); d < best {
			move, best = m, d
		}
	}
	return move, true
}
