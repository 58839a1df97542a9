package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-web/internal/apperror"
)

var ErrCorruptState = errors.New("game state is not reachable by legal play")

// GameState - the sole authority on move legality and outcome for one game.
// It is not safe for concurrent use; callers serialise access per game.
type GameState struct {
	board  Board
	turn   Mark
	status Status
	winner Mark
	line   *Line
}

// NewGameState - empty board, X to move, game ongoing.
func NewGameState() *GameState {
	return &GameState{
		turn:   PlayerX,
		status: StatusOngoing,
	}
}

// ApplyMove - places the current mark on cell. A rejected move leaves the state untouched
// and returns an error matching apperror.ErrInvalidMove.
func (that *GameState) ApplyMove(cell int) (MoveResult, error) {
	if err := that.validateMove(cell); err != nil {
		return that.rejected(cell), err
	}

	mark := that.turn
	that.board[cell] = mark

	result := MoveResult{
		Accepted: true,
		Cell:     cell,
		Mark:     mark,
	}

	if line, ok := firstCompletedLine(that.board); ok {
		that.status = StatusWon
		that.winner = mark
		that.line = &line

		result.Outcome = OutcomeWin
	} else if isFull(that.board) {
		that.status = StatusDraw

		result.Outcome = OutcomeDraw
	} else {
		that.turn = mark.Opponent()

		result.Outcome = OutcomeContinue
	}

	result.Status = that.status
	result.Turn = that.turn
	result.Winner = that.winner
	result.WinningLine = that.WinningLinePtr()

	return result, nil
}

// Reset - replaces the whole state with a fresh game.
func (that *GameState) Reset() {
	*that = *NewGameState()
}

func (that *GameState) Board() Board {
	return that.board
}

func (that *GameState) CurrentTurn() Mark {
	return that.turn
}

func (that *GameState) Status() Status {
	return that.status
}

// Winner - the winning mark, Empty unless the game is won.
func (that *GameState) Winner() Mark {
	return that.winner
}

func (that *GameState) WinningLine() (Line, bool) {
	if that.line == nil {
		return Line{}, false
	}
	return *that.line, true
}

// WinningLinePtr - a copy of the winning line, nil unless the game is won.
func (that *GameState) WinningLinePtr() *Line {
	if that.line == nil {
		return nil
	}
	line := *that.line
	return &line
}

func (that *GameState) IsFinished() bool {
	return that.status == StatusWon || that.status == StatusDraw
}

func (that *GameState) Snapshot() Snapshot {
	return Snapshot{
		Board:       that.board,
		Turn:        that.turn,
		Status:      that.status,
		Winner:      that.winner,
		WinningLine: that.WinningLinePtr(),
	}
}

// validateMove - checks if the move is legal in the current state.
func (that *GameState) validateMove(cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.board[cell] != Empty {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	return nil
}

func (that *GameState) rejected(cell int) MoveResult {
	return MoveResult{
		Accepted:    false,
		Outcome:     OutcomeRejected,
		Cell:        cell,
		Status:      that.status,
		Turn:        that.turn,
		Winner:      that.winner,
		WinningLine: that.WinningLinePtr(),
	}
}

func firstCompletedLine(board Board) (Line, bool) {
	for _, combo := range WinCombos {
		if isComplete(board, combo) {
			return combo, true
		}
	}
	return Line{}, false
}

// CompletedLines - every line held by a single mark, in WinCombos order.
func CompletedLines(board Board) []Line {
	var lines []Line
	for _, combo := range WinCombos {
		if isComplete(board, combo) {
			lines = append(lines, combo)
		}
	}
	return lines
}

func isComplete(board Board, combo Line) bool {
	a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
	return a != Empty && a == b && b == c
}

func isFull(board Board) bool {
	for _, cell := range board {
		if cell == Empty {
			return false
		}
	}
	return true
}
