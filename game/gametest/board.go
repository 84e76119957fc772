// Package gametest provides small game.State implementations and clocks for
// exercising searchers and agents in tests.
package gametest

import (
	"fmt"
	"isolation/game"
	"isolation/utils"
	"math"
)

const (
	Player1 game.Player = "player1"
	Player2 game.Player = "player2"
)

// Knight move offsets as (row, col), in the order moves are generated
var directions = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}

// Board is an Isolation board where both players move like chess knights and
// every visited cell becomes blocked. A player that has not been placed yet may
// move to any open cell.
type Board struct {
	width     int
	height    int
	blocked   []bool
	locations map[game.Player]game.Move
	active    game.Player
	inactive  game.Player
	plies     int
}

func NewBoard(width, height int) *Board {
	return &Board{
		width:     width,
		height:    height,
		blocked:   make([]bool, width*height),
		locations: map[game.Player]game.Move{},
		active:    Player1,
		inactive:  Player2,
	}
}

func (b *Board) copy() *Board {
	blocked := make([]bool, len(b.blocked))
	copy(blocked, b.blocked)
	locations := make(map[game.Player]game.Move, len(b.locations))
	for player, loc := range b.locations {
		locations[player] = loc
	}
	return &Board{
		width:     b.width,
		height:    b.height,
		blocked:   blocked,
		locations: locations,
		active:    b.active,
		inactive:  b.inactive,
		plies:     b.plies,
	}
}

// Block returns a copy of the board with cells marked as visited
func (b *Board) Block(cells ...game.Move) *Board {
	next := b.copy()
	for _, cell := range cells {
		next.blocked[next.index(cell)] = true
	}
	return next
}

// Place returns a copy of the board with player standing on cell
func (b *Board) Place(player game.Player, cell game.Move) *Board {
	next := b.copy()
	next.blocked[next.index(cell)] = true
	next.locations[player] = cell
	return next
}

// WithActive returns a copy of the board where player moves next
func (b *Board) WithActive(player game.Player) *Board {
	next := b.copy()
	next.active = player
	next.inactive = b.Opponent(player)
	return next
}

func (b *Board) ActivePlayer() game.Player {
	return b.active
}

func (b *Board) Opponent(player game.Player) game.Player {
	if player == Player1 {
		return Player2
	}
	return Player1
}

func (b *Board) LegalMoves(player game.Player) []game.Move {
	loc, ok := b.locations[player]
	if !ok {
		return b.openCells()
	}

	moves := []game.Move{}
	for _, d := range directions {
		move := game.Move{Row: loc.Row + d[0], Col: loc.Col + d[1]}
		if b.isOpen(move) {
			moves = append(moves, move)
		}
	}
	return moves
}

func (b *Board) ForecastMove(move game.Move) (game.State, error) {
	if utils.FindIndex(b.LegalMoves(b.active), move) < 0 {
		return nil, fmt.Errorf("illegal move %v for %s", move, b.active)
	}

	next := b.Place(b.active, move)
	next.active, next.inactive = b.inactive, b.active
	next.plies++
	return next, nil
}

func (b *Board) IsWinner(player game.Player) bool {
	return player == b.inactive && len(b.LegalMoves(b.active)) == 0
}

func (b *Board) IsLoser(player game.Player) bool {
	return player == b.active && len(b.LegalMoves(b.active)) == 0
}

func (b *Board) Utility(player game.Player) float64 {
	if b.IsWinner(player) {
		return math.Inf(1)
	}
	if b.IsLoser(player) {
		return math.Inf(-1)
	}
	return 0
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

func (b *Board) PlayerLocation(player game.Player) (game.Move, bool) {
	loc, ok := b.locations[player]
	return loc, ok
}

// Plies returns the number of moves played through ForecastMove
func (b *Board) Plies() int {
	return b.plies
}

func (b *Board) openCells() []game.Move {
	moves := []game.Move{}
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			if !b.blocked[row*b.width+col] {
				moves = append(moves, game.Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

func (b *Board) isOpen(cell game.Move) bool {
	if cell.Row < 0 || cell.Row >= b.height || cell.Col < 0 || cell.Col >= b.width {
		return false
	}
	return !b.blocked[b.index(cell)]
}

func (b *Board) index(cell game.Move) int {
	if cell.Row < 0 || cell.Row >= b.height || cell.Col < 0 || cell.Col >= b.width {
		panic(fmt.Sprintf("cell %v is off a %dx%d board", cell, b.width, b.height))
	}
	return cell.Row*b.width + cell.Col
}
