package searcher

import (
	"errors"
	"isolation/game"
	"math"
	"time"
)

// DefaultThreshold is the remaining time below which a search gives up
const DefaultThreshold = 10 * time.Millisecond

// ErrTimeout is returned by every search level once the remaining time drops
// below the threshold. Results computed before it are incomplete.
var ErrTimeout = errors.New("search timeout")

// TimeLeft reports the time remaining in the current turn
type TimeLeft func() time.Duration

// Result is the best score found below a node and the move leading to it.
// Move is game.NoMove at leaves and terminal positions.
type Result struct {
	Score float64
	Move  game.Move
}

// initScore is the worst possible score for the side to move
func initScore(maximizing bool) float64 {
	if maximizing {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

// improves reports whether score is strictly better than best for the side to
// move. The first move always replaces game.NoMove, after that the first move
// seen wins ties.
func improves(score, best float64, maximizing bool) bool {
	if maximizing {
		return score > best
	}
	return score < best
}
