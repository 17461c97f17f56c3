package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardOf(t *testing.T, rows [BoardSize]string) *Board {
	t.Helper()

	board := NewBoard()
	for row, line := range rows {
		require.Len(t, line, BoardSize)
		for col, ch := range line {
			if ch == '.' {
				continue
			}
			_, err := board.MakeMove(Mark(string(ch)), Position{Col: col, Row: row})
			require.NoError(t, err)
		}
	}
	return board
}

func TestBoard_IsAvailable(t *testing.T) {
	t.Run("Empty board has every cell available", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// Then: every on-board position is available
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				assert.True(t, board.IsAvailable(Position{Col: col, Row: row}))
			}
		}
	})

	t.Run("Marked cell is not available", func(t *testing.T) {
		// Given: a board with a cross in the center
		board := boardOf(t, [BoardSize]string{"...", ".X.", "..."})

		// Then: the center is taken and its neighbour is not
		assert.False(t, board.IsAvailable(Position{Col: 1, Row: 1}))
		assert.True(t, board.IsAvailable(Position{Col: 0, Row: 1}))
	})

	t.Run("Off-board positions are never available", func(t *testing.T) {
		board := NewBoard()

		assert.False(t, board.IsAvailable(Position{Col: 3, Row: 0}))
		assert.False(t, board.IsAvailable(Position{Col: 0, Row: -1}))
	})
}

func TestBoard_MakeMove(t *testing.T) {
	t.Run("Marks the cell and returns the same board", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: cross is placed at column 2, row 0
		updated, err := board.MakeMove(Cross, Position{Col: 2, Row: 0})

		// Then: the top right cell holds the cross
		require.NoError(t, err)
		assert.Same(t, board, updated)
		assert.Equal(t, Cross, board.Cells()[0][2])
		assert.Equal(t, 1, board.Count(Cross))
	})

	t.Run("Occupied cell is rejected and the board is unchanged", func(t *testing.T) {
		// Given: a board with a cross at the origin
		board := boardOf(t, [BoardSize]string{"X..", "...", "..."})
		before := board.Cells()

		// When: circle tries the same cell
		_, err := board.MakeMove(Circle, Position{Col: 0, Row: 0})

		// Then: ErrCellOccupied is returned and nothing changed
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, board.Cells())
	})

	t.Run("Out of bounds position is rejected", func(t *testing.T) {
		board := NewBoard()

		_, err := board.MakeMove(Cross, Position{Col: 3, Row: 1})

		require.ErrorIs(t, err, apperror.ErrOutOfBounds)
		assert.Equal(t, 0, board.Count(Cross))
	})

	t.Run("Empty mark is rejected", func(t *testing.T) {
		board := NewBoard()

		_, err := board.MakeMove(Empty, Position{Col: 1, Row: 1})

		require.ErrorIs(t, err, apperror.ErrInvalidMark)
		assert.True(t, board.IsAvailable(Position{Col: 1, Row: 1}))
	})
}

func TestBoard_CheckWinner(t *testing.T) {
	cases := []struct {
		name   string
		rows   [BoardSize]string
		winner Mark
		line   Line
	}{
		{"top row", [BoardSize]string{"XXX", "OO.", "..."}, Cross, Lines[0]},
		{"bottom row", [BoardSize]string{"X.X", "X..", "OOO"}, Circle, Lines[2]},
		{"left column", [BoardSize]string{"XO.", "XO.", "X.."}, Cross, Lines[3]},
		{"right column", [BoardSize]string{"X.O", "X.O", ".XO"}, Circle, Lines[5]},
		{"main diagonal", [BoardSize]string{"XO.", "OX.", "..X"}, Cross, Lines[6]},
		{"anti diagonal", [BoardSize]string{"X.O", "XO.", "O.X"}, Circle, Lines[7]},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			board := boardOf(t, tc.rows)

			assert.Equal(t, tc.winner, board.CheckWinner())

			line, ok := board.WinningLine()
			require.True(t, ok)
			assert.Equal(t, tc.line, line)
		})
	}

	t.Run("No winner on an incomplete board", func(t *testing.T) {
		board := boardOf(t, [BoardSize]string{"XO.", ".X.", "..O"})

		assert.Equal(t, Empty, board.CheckWinner())
		_, ok := board.WinningLine()
		assert.False(t, ok)
	})

	t.Run("Rows are reported before columns", func(t *testing.T) {
		// Given: a board where both the top row and the left column are crosses
		board := boardOf(t, [BoardSize]string{"XXX", "XOO", "XOO"})

		// When: asking for the winning line
		line, ok := board.WinningLine()

		// Then: the row wins the scan
		require.True(t, ok)
		assert.Equal(t, LineRow, line.Kind)
		assert.Equal(t, 0, line.Index)
	})
}

func TestBoard_IsFull(t *testing.T) {
	t.Run("Tie board is full with no winner", func(t *testing.T) {
		// Given: a board filled with no three in a row
		board := boardOf(t, [BoardSize]string{"XOX", "XOO", "OXX"})

		// Then: it is full and nobody won
		assert.True(t, board.IsFull())
		assert.Equal(t, Empty, board.CheckWinner())
	})

	t.Run("IsFull matches the absence of available cells", func(t *testing.T) {
		board := NewBoard()
		order := []Position{
			{0, 0}, {1, 0}, {2, 0},
			{1, 1}, {0, 1}, {2, 1},
			{1, 2}, {0, 2}, {2, 2},
		}

		mark := Cross
		for _, pos := range order {
			require.False(t, board.IsFull())
			_, err := board.MakeMove(mark, pos)
			require.NoError(t, err)
			mark = mark.Opponent()
		}

		assert.True(t, board.IsFull())
		for _, pos := range order {
			assert.False(t, board.IsAvailable(pos))
		}
	})
}

func TestBoard_Cells(t *testing.T) {
	// Given: a board and a copy of its cells
	board := NewBoard()
	cells := board.Cells()

	// When: the copy is modified
	cells[1][1] = Circle

	// Then: the board itself is unaffected
	assert.True(t, board.IsAvailable(Position{Col: 1, Row: 1}))
}

func TestBoard_String(t *testing.T) {
	board := boardOf(t, [BoardSize]string{"XO.", "...", "..X"})

	expected := "Board([X, O,  ]\n      [ ,  ,  ]\n      [ ,  , X])"
	assert.Equal(t, expected, board.String())
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, Circle, Cross.Opponent())
	assert.Equal(t, Cross, Circle.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())
}

func TestPosition_String(t *testing.T) {
	assert.Equal(t, "(0, 2)", Position{Col: 0, Row: 2}.String())
}
