// meta/meta.go
package meta

import "time"

// SEARCH_DEPTH defines the plies searched by a fixed depth minimax agent.
const SEARCH_DEPTH = 3

// TIMER_THRESHOLD defines the time left in a turn at which search is abandoned.
const TIMER_THRESHOLD = 10 * time.Millisecond

// SCORE_FN names the default evaluation function.
const SCORE_FN = "distance_mobility"

// ALGORITHM names the default search algorithm.
const ALGORITHM = "alphabeta"
