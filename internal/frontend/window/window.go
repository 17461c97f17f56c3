// Package window renders the board in a desktop window with ebiten and
// turns mouse clicks and touches into moves.
package window

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/frontend"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/usecase"
)

const ticksPerSecond = 60

type gameManager interface {
	Click(ctx context.Context, x, y int) (usecase.Result, error)
	Snapshot() tictactoe.Snapshot
	Layout() tictactoe.Layout
}

type Options struct {
	Title      string
	Scale      int
	CloseDelay time.Duration
	Layout     tictactoe.Layout

	BoardImage  string
	CrossImage  string
	CircleImage string

	MoveSound string
	EndSound  string
	Mute      bool
}

// Game implements ebiten.Game on top of a game manager.
type Game struct {
	ctx     context.Context
	logger  *slog.Logger
	manager gameManager
	opts    Options

	loop     *frontend.Loop
	textures textures
	cues     *cuePlayer
	touchIDs []ebiten.TouchID
}

func newGame(ctx context.Context, logger *slog.Logger, manager gameManager, opts Options) *Game {
	return &Game{
		ctx:      ctx,
		logger:   logger,
		manager:  manager,
		opts:     opts,
		loop:     frontend.NewLoop(manager, opts.CloseDelay),
		textures: loadTextures(logger, opts),
		cues:     newCuePlayer(logger, opts),
	}
}

// Run - opens the window and blocks until it is closed, the context is
// canceled or the game has ended and the close delay has passed.
func Run(ctx context.Context, logger *slog.Logger, manager gameManager, opts Options) error {
	log := logger.With("component", "window")
	opts.Layout = manager.Layout()

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Layout.BoardWidth()*opts.Scale, opts.Layout.BoardHeight()*opts.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(ticksPerSecond)

	log.Info("Opening window", "title", opts.Title, "scale", opts.Scale)

	if err := ebiten.RunGame(newGame(ctx, log, manager, opts)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window loop failed: %w", err)
	}

	return nil
}

func (that *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	cues, done := that.loop.Step(that.ctx, that.pointerPresses())
	for _, cue := range cues {
		that.cues.Play(cue)
	}

	if done {
		return ebiten.Termination
	}

	return nil
}

// pointerPresses - cursor positions of clicks and touches started this tick.
func (that *Game) pointerPresses() []frontend.Pointer {
	var points []frontend.Pointer

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		points = append(points, frontend.Pointer{X: x, Y: y})
	}

	that.touchIDs = inpututil.AppendJustPressedTouchIDs(that.touchIDs[:0])
	for _, id := range that.touchIDs {
		x, y := ebiten.TouchPosition(id)
		points = append(points, frontend.Pointer{X: x, Y: y})
	}

	return points
}

func (that *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	screen.DrawImage(that.textures.board, nil)

	snapshot := that.manager.Snapshot()
	layout := that.opts.Layout

	for row, cells := range snapshot.Cells {
		for col, cell := range cells {
			var texture *ebiten.Image
			switch cell {
			case entity.Cross:
				texture = that.textures.cross
			case entity.Circle:
				texture = that.textures.circle
			default:
				continue
			}

			x, y := layout.MarkOrigin(entity.Position{Col: col, Row: row})
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x), float64(y))
			screen.DrawImage(texture, op)
		}
	}

	if snapshot.Line != nil {
		first, last := snapshot.Line.Cells[0], snapshot.Line.Cells[len(snapshot.Line.Cells)-1]
		x0, y0 := layout.CellCenter(first)
		x1, y1 := layout.CellCenter(last)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), strokeWidth, lineColor, true)
	}
}

func (that *Game) Layout(_, _ int) (int, int) {
	return that.opts.Layout.BoardWidth(), that.opts.Layout.BoardHeight()
}
