package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
)

type LineKind string

const (
	LineRow      LineKind = "row"
	LineColumn   LineKind = "column"
	LineDiagonal LineKind = "diagonal"
)

// Line is one of the eight rows, columns or diagonals that can win a game.
type Line struct {
	Kind  LineKind
	Index int
	Cells [BoardSize]Position
}

// Lines holds every winning line in scan order: rows top-to-bottom,
// columns left-to-right, then the main and the anti diagonal.
var Lines = buildLines()

func buildLines() []Line {
	lines := make([]Line, 0, 2*BoardSize+2)

	for row := 0; row < BoardSize; row++ {
		line := Line{Kind: LineRow, Index: row}
		for col := 0; col < BoardSize; col++ {
			line.Cells[col] = Position{Col: col, Row: row}
		}
		lines = append(lines, line)
	}

	for col := 0; col < BoardSize; col++ {
		line := Line{Kind: LineColumn, Index: col}
		for row := 0; row < BoardSize; row++ {
			line.Cells[row] = Position{Col: col, Row: row}
		}
		lines = append(lines, line)
	}

	mainDiagonal := Line{Kind: LineDiagonal, Index: 0}
	antiDiagonal := Line{Kind: LineDiagonal, Index: 1}
	for i := 0; i < BoardSize; i++ {
		mainDiagonal.Cells[i] = Position{Col: i, Row: i}
		antiDiagonal.Cells[i] = Position{Col: BoardSize - 1 - i, Row: i}
	}

	return append(lines, mainDiagonal, antiDiagonal)
}

// Board is the 3x3 grid, indexed [row][col].
type Board struct {
	cells [BoardSize][BoardSize]Mark
}

func NewBoard() *Board {
	return &Board{}
}

// IsAvailable - reports whether pos is on the board and still empty.
func (that *Board) IsAvailable(pos Position) bool {
	if !pos.Valid() {
		return false
	}
	return that.cells[pos.Row][pos.Col] == Empty
}

// MakeMove - places mark at pos. A failed move leaves the board untouched.
func (that *Board) MakeMove(mark Mark, pos Position) (*Board, error) {
	if !pos.Valid() {
		return that, fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, pos)
	}

	if !mark.IsPlayer() {
		return that, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, string(mark))
	}

	if !that.IsAvailable(pos) {
		return that, fmt.Errorf("position %s is not available: %w", pos, apperror.ErrCellOccupied)
	}

	that.cells[pos.Row][pos.Col] = mark

	return that, nil
}

func (that *Board) At(pos Position) Mark {
	if !pos.Valid() {
		return Empty
	}
	return that.cells[pos.Row][pos.Col]
}

// CheckWinner - returns the mark owning the first complete line, or Empty.
func (that *Board) CheckWinner() Mark {
	line, ok := that.WinningLine()
	if !ok {
		return Empty
	}
	return that.At(line.Cells[0])
}

func (that *Board) WinningLine() (Line, bool) {
	for _, line := range Lines {
		a, b, c := that.At(line.Cells[0]), that.At(line.Cells[1]), that.At(line.Cells[2])
		if a != Empty && a == b && b == c {
			return line, true
		}
	}
	return Line{}, false
}

func (that *Board) IsFull() bool {
	for _, row := range that.cells {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}
	return true
}

func (that *Board) Count(mark Mark) int {
	count := 0
	for _, row := range that.cells {
		for _, cell := range row {
			if cell == mark {
				count++
			}
		}
	}
	return count
}

// Cells - returns a copy of the grid.
func (that *Board) Cells() [BoardSize][BoardSize]Mark {
	return that.cells
}

// String renders the grid one row per line, e.g. "Board([X, O,  ]".
func (that *Board) String() string {
	rows := make([]string, 0, BoardSize)
	for _, row := range that.cells {
		marks := make([]string, 0, BoardSize)
		for _, cell := range row {
			marks = append(marks, cell.String())
		}
		rows = append(rows, "["+strings.Join(marks, ", ")+"]")
	}
	return "Board(" + strings.Join(rows, "\n      ") + ")"
}
