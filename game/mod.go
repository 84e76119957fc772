package game

// Player identifies one of the two sides of a game. The search treats it as an
// opaque handle and only compares it for equality.
type Player string

// State should be immutable - ForecastMove always returns a new copy and never
// mutates the receiver
type State interface {
	ActivePlayer() Player
	Opponent(player Player) Player
	// LegalMoves returns the ordered moves available to player, empty if none
	LegalMoves(player Player) []Move
	ForecastMove(move Move) (State, error)
	IsWinner(player Player) bool
	IsLoser(player Player) bool
	// Utility is the payoff of a finished game from player's perspective
	Utility(player Player) float64
	Width() int
	Height() int
	// PlayerLocation returns false if player has not been placed on the board yet
	PlayerLocation(player Player) (Move, bool)
}

// Evaluates the game state to a heuristic score from player's perspective,
// higher is better for player. Must return +Inf if player has won and -Inf if
// player has lost.
type Evaluate func(state State, player Player) float64
