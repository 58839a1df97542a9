package entity

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-web/internal/tictactoe"
)

const EmptyCell = ""

// Game - stored and transported form of one session's game.
type Game struct {
	ID          string    `json:"id"`
	Board       [9]string `json:"board"`
	Turn        string    `json:"player_turn"`
	Status      string    `json:"status"`
	Winner      string    `json:"winner,omitempty"`
	WinningLine []int     `json:"winning_line,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewGame - builds the record for the session id from the current state.
func NewGame(id string, state *tictactoe.GameState) *Game {
	snapshot := state.Snapshot()

	game := &Game{
		ID:        id,
		Turn:      string(snapshot.Turn),
		Status:    string(snapshot.Status),
		Winner:    string(snapshot.Winner),
		UpdatedAt: time.Now().UTC(),
	}

	for i, mark := range snapshot.Board {
		game.Board[i] = string(mark)
	}

	if snapshot.WinningLine != nil {
		game.WinningLine = snapshot.WinningLine[:]
	}

	return game
}

// State - rebuilds the game state, rejecting records legal play could not produce.
func (that *Game) State() (*tictactoe.GameState, error) {
	snapshot := tictactoe.Snapshot{
		Turn:   tictactoe.Mark(that.Turn),
		Status: tictactoe.Status(that.Status),
		Winner: tictactoe.Mark(that.Winner),
	}

	for i, cell := range that.Board {
		snapshot.Board[i] = tictactoe.Mark(cell)
	}

	if len(that.WinningLine) > 0 {
		if len(that.WinningLine) != len(tictactoe.Line{}) {
			return nil, fmt.Errorf("%w: winning line %v", tictactoe.ErrCorruptState, that.WinningLine)
		}

		line := tictactoe.Line(that.WinningLine)
		snapshot.WinningLine = &line
	}

	state, err := tictactoe.Restore(snapshot)
	if err != nil {
		return nil, fmt.Errorf("game %s: %w", that.ID, err)
	}

	return state, nil
}

func (that *Game) IsFinished() bool {
	return that.Status == string(tictactoe.StatusWon) || that.Status == string(tictactoe.StatusDraw)
}
