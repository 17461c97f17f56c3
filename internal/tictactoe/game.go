package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWon     Status = "won"
	StatusTied    Status = "tied"
)

// Game is a single session: one board, two alternating players.
type Game struct {
	Board  *entity.Board
	Turn   entity.Mark
	Winner entity.Mark
	Status Status
	Moves  int
}

func NewGame() *Game {
	return &Game{
		Board:  entity.NewBoard(),
		Turn:   entity.Cross,
		Winner: entity.Empty,
		Status: StatusOngoing,
	}
}

// Play - places the mark whose turn it is at pos and settles the result.
func (that *Game) Play(pos entity.Position) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if _, err := that.Board.MakeMove(that.Turn, pos); err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	that.Moves++
	that.updateStatus()

	return nil
}

// updateStatus - checks the result right after a move.
func (that *Game) updateStatus() {
	if winner := that.Board.CheckWinner(); winner != entity.Empty {
		that.Winner = winner
		that.Status = StatusWon
		return
	}

	if that.Board.IsFull() {
		that.Status = StatusTied
		return
	}

	that.Turn = that.Turn.Opponent()
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusTied
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// Snapshot is a read-only view of a game for renderers.
type Snapshot struct {
	Cells  [entity.BoardSize][entity.BoardSize]entity.Mark
	Turn   entity.Mark
	Winner entity.Mark
	Status Status
	Moves  int
	Line   *entity.Line
}

func (that *Game) Snapshot() Snapshot {
	snapshot := Snapshot{
		Cells:  that.Board.Cells(),
		Turn:   that.Turn,
		Winner: that.Winner,
		Status: that.Status,
		Moves:  that.Moves,
	}

	if line, ok := that.Board.WinningLine(); ok {
		snapshot.Line = &line
	}

	return snapshot
}

func (that Snapshot) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusTied
}
