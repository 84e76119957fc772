package game

import "fmt"

// Move is a board cell as (row, column).
type Move struct {
	Row int
	Col int
}

// NoMove is returned when there is no legal move to play.
var NoMove = Move{Row: -1, Col: -1}

func (m Move) IsNone() bool {
	return m == NoMove
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}
