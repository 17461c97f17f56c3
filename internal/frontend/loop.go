// Package frontend holds the frame loop state shared by renderers that poll
// input every tick.
package frontend

import (
	"context"
	"time"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/sound"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/usecase"
)

// Pointer - a press in board coordinates.
type Pointer struct {
	X, Y int
}

type clicker interface {
	Click(ctx context.Context, x, y int) (usecase.Result, error)
}

// Loop turns the presses of each tick into moves and decides when the
// frontend should close.
type Loop struct {
	manager    clicker
	closeDelay time.Duration
	now        func() time.Time

	finishedAt time.Time
}

func NewLoop(manager clicker, closeDelay time.Duration) *Loop {
	return &Loop{
		manager:    manager,
		closeDelay: closeDelay,
		now:        time.Now,
	}
}

// Step - feeds one tick of presses to the manager. It returns the cues to
// play and whether the frontend should stop. Presses after the one that
// ends the game are dropped.
func (that *Loop) Step(ctx context.Context, presses []Pointer) ([]sound.Cue, bool) {
	if ctx.Err() != nil {
		return nil, true
	}

	if that.Finished() {
		return nil, that.ShouldClose()
	}

	var cues []sound.Cue
	for _, press := range presses {
		result, err := that.manager.Click(ctx, press.X, press.Y)
		if err != nil {
			// already logged by the manager
			continue
		}

		cues = append(cues, result.Cue)

		if result.Cue == sound.CueEnd {
			that.finishedAt = that.now()
			break
		}
	}

	return cues, false
}

func (that *Loop) Finished() bool {
	return !that.finishedAt.IsZero()
}

// ShouldClose - true once the close delay has passed since the game ended.
func (that *Loop) ShouldClose() bool {
	return that.Finished() && that.now().Sub(that.finishedAt) >= that.closeDelay
}
