package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-web/internal/tictactoe"
)

const boardSide = 3

// revealMsg - fires once the reveal delay after a game ended has passed.
type revealMsg struct {
	round int
}

// Model - a hot-seat game in the terminal. The game state changes immediately,
// the end-of-game summary waits for the reveal delay.
type Model struct {
	state       *tictactoe.GameState
	revealDelay time.Duration

	cursor      int
	round       int
	showSummary bool
	notice      string

	keys keyMap
	help help.Model
}

func New(revealDelay time.Duration) Model {
	return Model{
		state:       tictactoe.NewGameState(),
		revealDelay: revealDelay,
		cursor:      tictactoe.BoardSize / 2,
		keys:        defaultKeyMap(),
		help:        help.New(),
	}
}

func (that Model) Init() tea.Cmd {
	return nil
}

func (that Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		that.help.Width = msg.Width
		return that, nil

	case revealMsg:
		// a restart since the game ended makes the message stale
		if msg.round == that.round && that.state.IsFinished() {
			that.showSummary = true
		}
		return that, nil

	case tea.KeyMsg:
		return that.handleKey(msg)
	}

	return that, nil
}

func (that Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, that.keys.Quit):
		return that, tea.Quit

	case key.Matches(msg, that.keys.Restart):
		return that.restart(), nil

	case key.Matches(msg, that.keys.Dismiss):
		if that.showSummary {
			return that.restart(), nil
		}

	case key.Matches(msg, that.keys.Help):
		that.help.ShowAll = !that.help.ShowAll

	case key.Matches(msg, that.keys.Up):
		that.moveCursor(-boardSide)

	case key.Matches(msg, that.keys.Down):
		that.moveCursor(boardSide)

	case key.Matches(msg, that.keys.Left):
		if that.cursor%boardSide > 0 {
			that.cursor--
		}

	case key.Matches(msg, that.keys.Right):
		if that.cursor%boardSide < boardSide-1 {
			that.cursor++
		}

	case key.Matches(msg, that.keys.Play):
		return that.play(that.cursor)

	case key.Matches(msg, that.keys.Cell):
		cell := int(msg.Runes[0] - '1')

		// digits only act on empty cells of a game in progress
		if that.state.IsFinished() || that.state.Board()[cell] != tictactoe.Empty {
			return that, nil
		}

		that.cursor = cell
		return that.play(cell)
	}

	return that, nil
}

func (that *Model) moveCursor(delta int) {
	next := that.cursor + delta
	if next >= 0 && next < tictactoe.BoardSize {
		that.cursor = next
	}
}

func (that Model) play(cell int) (tea.Model, tea.Cmd) {
	result, err := that.state.ApplyMove(cell)
	if err != nil {
		that.notice = err.Error()
		return that, nil
	}

	that.notice = ""

	if result.Status == tictactoe.StatusOngoing {
		return that, nil
	}

	if that.revealDelay <= 0 {
		that.showSummary = true
		return that, nil
	}

	round := that.round

	return that, tea.Tick(that.revealDelay, func(time.Time) tea.Msg {
		return revealMsg{round: round}
	})
}

func (that Model) restart() Model {
	that.state.Reset()
	that.round++
	that.showSummary = false
	that.notice = ""

	return that
}

// Run - plays in the terminal until the player quits or ctx is done.
func Run(ctx context.Context, revealDelay time.Duration, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)

	program := tea.NewProgram(New(revealDelay), opts...)

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("failed to run terminal game: %w", err)
	}

	return nil
}
