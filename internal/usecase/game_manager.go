package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/sound"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/tictactoe"
)

type eventJournal interface {
	Record(ctx context.Context, event entity.Event) error
}

// Result describes what a click did to the session.
type Result struct {
	Mark     entity.Mark
	Position entity.Position
	Status   tictactoe.Status
	Winner   entity.Mark
	Cue      sound.Cue
}

// GameManager runs one game session on behalf of a frontend.
type GameManager struct {
	logger  *slog.Logger
	journal eventJournal
	layout  tictactoe.Layout

	sessionID string
	game      *tictactoe.Game
	seq       int
	now       func() time.Time
}

func NewGameManager(logger *slog.Logger, journal eventJournal, layout tictactoe.Layout) *GameManager {
	sessionID := uuid.NewString()

	return &GameManager{
		logger:  logger.With("component", "game", "session", sessionID),
		journal: journal,
		layout:  layout,

		sessionID: sessionID,
		game:      tictactoe.NewGame(),
		now:       time.Now,
	}
}

// Click - plays the cell under the pointer for the player whose turn it is.
func (that *GameManager) Click(ctx context.Context, x, y int) (Result, error) {
	pos, err := that.layout.PositionAt(x, y)
	if err != nil {
		return that.reject(ctx, nil, err)
	}

	return that.Play(ctx, pos)
}

// Play - plays pos for the player whose turn it is.
func (that *GameManager) Play(ctx context.Context, pos entity.Position) (Result, error) {
	mark := that.game.Turn

	if err := that.game.Play(pos); err != nil {
		return that.reject(ctx, &pos, err)
	}

	that.logger.Info(fmt.Sprintf("Adding %s to %s", mark, pos), "mark", mark, "position", pos)
	that.record(ctx, entity.Event{Kind: entity.EventMove, Mark: mark, Position: &pos})

	result := Result{
		Mark:     mark,
		Position: pos,
		Status:   that.game.Status,
		Winner:   that.game.Winner,
		Cue:      sound.CueMove,
	}

	switch that.game.Status {
	case tictactoe.StatusWon:
		that.logger.Info(fmt.Sprintf("Winner is %s", that.game.Winner), "mark", that.game.Winner)
		that.record(ctx, entity.Event{Kind: entity.EventWon, Mark: that.game.Winner})
		result.Cue = sound.CueEnd
	case tictactoe.StatusTied:
		that.logger.Info("It's a tie")
		that.record(ctx, entity.Event{Kind: entity.EventTied})
		result.Cue = sound.CueEnd
	case tictactoe.StatusOngoing:
		that.logger.Debug(that.game.Board.String())
	}

	return result, nil
}

func (that *GameManager) reject(ctx context.Context, pos *entity.Position, err error) (Result, error) {
	that.logger.Error(err.Error())
	that.record(ctx, entity.Event{Kind: entity.EventRejected, Mark: that.game.Turn, Position: pos, Reason: err.Error()})

	result := Result{
		Mark:   that.game.Turn,
		Status: that.game.Status,
		Winner: that.game.Winner,
	}
	if pos != nil {
		result.Position = *pos
	}

	return result, fmt.Errorf("move rejected: %w", err)
}

// record - journals an event. The journal is informational, so a failure
// is only logged.
func (that *GameManager) record(ctx context.Context, event entity.Event) {
	that.seq++
	event.SessionID = that.sessionID
	event.Seq = that.seq
	event.At = that.now()

	if err := that.journal.Record(ctx, event); err != nil {
		that.logger.Warn("could not record event", "kind", event.Kind, "error", err)
	}
}

func (that *GameManager) Snapshot() tictactoe.Snapshot {
	return that.game.Snapshot()
}

func (that *GameManager) SessionID() string {
	return that.sessionID
}

func (that *GameManager) Layout() tictactoe.Layout {
	return that.layout
}
