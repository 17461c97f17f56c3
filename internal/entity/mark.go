package entity

import "fmt"

// Mark is the content of a single board cell.
type Mark string

const (
	Cross  Mark = "X"
	Circle Mark = "O"
	Empty  Mark = ""
)

// BoardSize is the number of cells along each side of the board.
const BoardSize = 3

func (that Mark) IsPlayer() bool {
	return that == Cross || that == Circle
}

// Opponent - returns the mark that plays after this one.
func (that Mark) Opponent() Mark {
	switch that {
	case Cross:
		return Circle
	case Circle:
		return Cross
	default:
		return Empty
	}
}

func (that Mark) String() string {
	if that == Empty {
		return " "
	}
	return string(that)
}

// Position addresses a cell by column and row, both zero based.
type Position struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func (that Position) Valid() bool {
	return that.Col >= 0 && that.Col < BoardSize && that.Row >= 0 && that.Row < BoardSize
}

func (that Position) String() string {
	return fmt.Sprintf("(%d, %d)", that.Col, that.Row)
}
