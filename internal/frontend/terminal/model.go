// Package terminal renders the board in the terminal with bubbletea. The
// board sits at the top-left of the alternate screen, so mouse cell
// coordinates map straight onto the grid.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/sound"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/usecase"
)

// cell footprint in terminal columns and rows, borders included
const (
	cellWidth  = 9
	cellHeight = 5
)

type gameManager interface {
	Click(ctx context.Context, x, y int) (usecase.Result, error)
	Play(ctx context.Context, pos entity.Position) (usecase.Result, error)
	Snapshot() tictactoe.Snapshot
}

type Options struct {
	CloseDelay time.Duration
	// Bell receives the audible cues; nil keeps the terminal silent.
	Bell io.Writer
}

// Layout - grid geometry of the terminal board.
func Layout() tictactoe.Layout {
	return tictactoe.Layout{
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
		MarkSize:   1,
	}
}

type closeMsg struct{}

type Model struct {
	ctx     context.Context
	manager gameManager
	opts    Options

	keys   keyMap
	help   help.Model
	cursor entity.Position

	lastErr  string
	finished bool
}

func NewModel(ctx context.Context, manager gameManager, opts Options) Model {
	return Model{
		ctx:     ctx,
		manager: manager,
		opts:    opts,
		keys:    defaultKeyMap(),
		help:    help.New(),
		cursor:  entity.Position{Col: 1, Row: 1},
	}
}

// Run - starts the program and blocks until the player quits, the context
// is canceled or the game has ended and the close delay has passed.
func Run(ctx context.Context, logger *slog.Logger, manager gameManager, opts Options) error {
	log := logger.With("component", "terminal")
	log.Info("Starting terminal frontend")

	program := tea.NewProgram(
		NewModel(ctx, manager, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal program failed: %w", err)
	}

	return nil
}

func (that Model) Init() tea.Cmd { return nil }

func (that Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case closeMsg:
		return that, tea.Quit
	case tea.KeyMsg:
		if key.Matches(msg, that.keys.Quit) {
			return that, tea.Quit
		}
		if that.finished {
			return that, nil
		}
		return that.handleKey(msg)
	case tea.MouseMsg:
		if that.finished || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return that, nil
		}
		return that.apply(that.manager.Click(that.ctx, msg.X, msg.Y))
	}

	return that, nil
}

func (that Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, that.keys.Up):
		that.cursor.Row = max(that.cursor.Row-1, 0)
	case key.Matches(msg, that.keys.Down):
		that.cursor.Row = min(that.cursor.Row+1, entity.BoardSize-1)
	case key.Matches(msg, that.keys.Left):
		that.cursor.Col = max(that.cursor.Col-1, 0)
	case key.Matches(msg, that.keys.Right):
		that.cursor.Col = min(that.cursor.Col+1, entity.BoardSize-1)
	case key.Matches(msg, that.keys.Play):
		return that.apply(that.manager.Play(that.ctx, that.cursor))
	}

	return that, nil
}

// apply - folds a move result into the model and schedules the close
// once the game is over.
func (that Model) apply(result usecase.Result, err error) (tea.Model, tea.Cmd) {
	if err != nil {
		that.lastErr = describe(err)
		return that, nil
	}

	that.lastErr = ""
	that.cursor = result.Position
	that.ring(result.Cue)

	if result.Cue != sound.CueEnd {
		return that, nil
	}

	that.finished = true

	return that, tea.Tick(that.opts.CloseDelay, func(time.Time) tea.Msg { return closeMsg{} })
}

func (that Model) ring(cue sound.Cue) {
	if that.opts.Bell == nil {
		return
	}

	switch cue {
	case sound.CueMove:
		_, _ = io.WriteString(that.opts.Bell, "\a")
	case sound.CueEnd:
		_, _ = io.WriteString(that.opts.Bell, "\a\a")
	}
}

func describe(err error) string {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		return "That cell is already taken"
	case errors.Is(err, apperror.ErrOutOfBounds):
		return "Click inside the board"
	case errors.Is(err, apperror.ErrGameFinished):
		return "The game is over"
	default:
		return err.Error()
	}
}

func (that Model) View() string {
	snapshot := that.manager.Snapshot()

	winning := make(map[entity.Position]bool)
	if snapshot.Line != nil {
		for _, pos := range snapshot.Line.Cells {
			winning[pos] = true
		}
	}

	rows := make([]string, 0, entity.BoardSize)
	for row, cells := range snapshot.Cells {
		rendered := make([]string, 0, entity.BoardSize)
		for col, cell := range cells {
			pos := entity.Position{Col: col, Row: row}

			style := cellStyle
			switch {
			case winning[pos]:
				style = winningStyle
			case pos == that.cursor && !snapshot.IsFinished():
				style = cursorStyle
			}

			rendered = append(rendered, style.Render(renderMark(cell)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	b.WriteString("\n")
	b.WriteString(that.status(snapshot))
	b.WriteString("\n")
	if that.lastErr != "" {
		b.WriteString(errorStyle.Render(that.lastErr))
	}
	b.WriteString("\n")
	b.WriteString(that.help.View(that.keys))

	return b.String()
}

func (that Model) status(snapshot tictactoe.Snapshot) string {
	switch snapshot.Status {
	case tictactoe.StatusWon:
		return doneStyle.Render(fmt.Sprintf("Winner is %s", snapshot.Winner))
	case tictactoe.StatusTied:
		return doneStyle.Render("It's a tie")
	default:
		return titleStyle.Render("Tic Tac Toe") + fmt.Sprintf("  %s to play", renderMark(snapshot.Turn))
	}
}

func renderMark(mark entity.Mark) string {
	switch mark {
	case entity.Cross:
		return crossStyle.Render(mark.String())
	case entity.Circle:
		return circleStyle.Render(mark.String())
	default:
		return " "
	}
}
