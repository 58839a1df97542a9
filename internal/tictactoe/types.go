package tictactoe

// BoardSize is the number of cells on the 3x3 board.
const BoardSize = 9

// Mark - occupant of a cell.
type Mark string

const (
	Empty   Mark = ""
	PlayerX Mark = "X"
	PlayerO Mark = "O"
)

// Opponent - the mark that moves after this one.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// IsPlayer - X or O, never Empty or an unknown value.
func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Status - lifecycle of a game. Won and Draw are terminal.
type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWon     Status = "won"
	StatusDraw    Status = "draw"
)

// Outcome - what a single ApplyMove call did.
type Outcome string

const (
	OutcomeRejected Outcome = "rejected"
	OutcomeContinue Outcome = "continue"
	OutcomeWin      Outcome = "win"
	OutcomeDraw     Outcome = "draw"
)

// Board - cells in row-major order, indices 0..8.
type Board [BoardSize]Mark

// Line - three cell indices forming a row, column or diagonal.
type Line [3]int

// WinCombos is evaluated in this order; the first complete line wins.
var WinCombos = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// MoveResult is everything a presentation adapter needs to render one move.
type MoveResult struct {
	Accepted    bool    `json:"accepted"`
	Outcome     Outcome `json:"outcome"`
	Cell        int     `json:"cell"`
	Mark        Mark    `json:"mark,omitempty"`
	Status      Status  `json:"status"`
	Turn        Mark    `json:"player_turn"`
	Winner      Mark    `json:"winner,omitempty"`
	WinningLine *Line   `json:"winning_line,omitempty"`
}

// Snapshot is the exported, storable form of a GameState.
type Snapshot struct {
	Board       Board
	Turn        Mark
	Status      Status
	Winner      Mark
	WinningLine *Line
}
