package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

const (
	windowCellSize = 100
	windowMarkSize = 81
)

// Layout maps pointer coordinates to board cells and back.
type Layout struct {
	CellWidth  int
	CellHeight int
	MarkSize   int
	OriginX    int
	OriginY    int
}

// WindowLayout - 100px cells with 81px marks, a 300x300 board at the origin.
func WindowLayout() Layout {
	return Layout{
		CellWidth:  windowCellSize,
		CellHeight: windowCellSize,
		MarkSize:   windowMarkSize,
	}
}

func (that Layout) BoardWidth() int {
	return that.CellWidth * entity.BoardSize
}

func (that Layout) BoardHeight() int {
	return that.CellHeight * entity.BoardSize
}

// PositionAt - converts pointer coordinates into a board position.
func (that Layout) PositionAt(x, y int) (entity.Position, error) {
	boardX, boardY := x-that.OriginX, y-that.OriginY

	if boardX < 0 || boardY < 0 || boardX >= that.BoardWidth() || boardY >= that.BoardHeight() {
		return entity.Position{}, fmt.Errorf("%w: pointer at (%d, %d)", apperror.ErrOutOfBounds, x, y)
	}

	return entity.Position{Col: boardX / that.CellWidth, Row: boardY / that.CellHeight}, nil
}

func (that Layout) CellOrigin(pos entity.Position) (int, int) {
	return that.OriginX + pos.Col*that.CellWidth, that.OriginY + pos.Row*that.CellHeight
}

// MarkOrigin - top left corner of a mark centered in its cell.
func (that Layout) MarkOrigin(pos entity.Position) (int, int) {
	x, y := that.CellOrigin(pos)
	return x + (that.CellWidth-that.MarkSize)/2, y + (that.CellHeight-that.MarkSize)/2
}

func (that Layout) CellCenter(pos entity.Position) (int, int) {
	x, y := that.CellOrigin(pos)
	return x + that.CellWidth/2, y + that.CellHeight/2
}
