package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-web/internal/apperror"
)

func playMoves(t *testing.T, game *GameState, cells ...int) MoveResult {
	t.Helper()

	var result MoveResult
	for i, cell := range cells {
		var err error
		result, err = game.ApplyMove(cell)
		require.NoErrorf(t, err, "move %d at cell %d", i, cell)
	}

	return result
}

func countMarks(board Board) int {
	count := 0
	for _, cell := range board {
		if cell != Empty {
			count++
		}
	}
	return count
}

func TestNewGameState(t *testing.T) {
	// When: a new game is created
	game := NewGameState()

	// Then: the board is empty, X moves first and the game is ongoing
	assert.Equal(t, Board{}, game.Board())
	assert.Equal(t, PlayerX, game.CurrentTurn())
	assert.Equal(t, StatusOngoing, game.Status())
	assert.Equal(t, Empty, game.Winner())
	assert.False(t, game.IsFinished())

	_, ok := game.WinningLine()
	assert.False(t, ok)
}

func TestGameState_ApplyMove(t *testing.T) {
	t.Run("Successful move switches turn", func(t *testing.T) {
		// Given: a new game
		game := NewGameState()

		// When: X plays the center
		result, err := game.ApplyMove(4)
		require.NoError(t, err)

		// Then: the cell holds X, O is next and the result says continue
		expected := MoveResult{
			Accepted: true,
			Outcome:  OutcomeContinue,
			Cell:     4,
			Mark:     PlayerX,
			Status:   StatusOngoing,
			Turn:     PlayerO,
		}
		assert.Equal(t, expected, result)
		assert.Equal(t, PlayerX, game.Board()[4])
		assert.Equal(t, PlayerO, game.CurrentTurn())
	})

	t.Run("Top row wins for X and no further move is accepted", func(t *testing.T) {
		// Given: a new game
		game := NewGameState()

		// When: moves 0,4,1,3,2 are played
		result := playMoves(t, game, 0, 4, 1, 3, 2)

		// Then: X has won on the top row and keeps the turn
		assert.Equal(t, OutcomeWin, result.Outcome)
		assert.Equal(t, StatusWon, game.Status())
		assert.Equal(t, PlayerX, game.Winner())
		assert.Equal(t, PlayerX, game.CurrentTurn())
		require.NotNil(t, result.WinningLine)
		assert.Equal(t, Line{0, 1, 2}, *result.WinningLine)

		line, ok := game.WinningLine()
		require.True(t, ok)
		assert.Equal(t, Line{0, 1, 2}, line)

		// And: a sixth move is rejected
		before := game.Snapshot()
		sixth, err := game.ApplyMove(5)
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.False(t, sixth.Accepted)
		assert.Equal(t, OutcomeRejected, sixth.Outcome)
		assert.Equal(t, before, game.Snapshot())
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: a new game
		game := NewGameState()

		// When: every cell is filled in the order 0,1,2,4,3,5,7,6,8
		result := playMoves(t, game, 0, 1, 2, 4, 3, 5, 7, 6, 8)

		// Then: the game is a draw, never a win
		assert.Equal(t, OutcomeDraw, result.Outcome)
		assert.Equal(t, StatusDraw, game.Status())
		assert.Equal(t, Empty, game.Winner())
		assert.Nil(t, result.WinningLine)
		assert.Equal(t, BoardSize, countMarks(game.Board()))
		assert.Empty(t, CompletedLines(game.Board()))
	})

	t.Run("Win on the last cell is a win, not a draw", func(t *testing.T) {
		// Given: a new game
		game := NewGameState()

		// When: X fills the last empty cell completing the right column
		result := playMoves(t, game, 0, 1, 2, 3, 5, 4, 7, 6, 8)

		// Then: X wins on the right column
		assert.Equal(t, OutcomeWin, result.Outcome)
		assert.Equal(t, StatusWon, game.Status())
		assert.Equal(t, BoardSize, countMarks(game.Board()))
		assert.Equal(t, Line{2, 5, 8}, *result.WinningLine)
	})

	t.Run("Out of range cell is rejected without side effects", func(t *testing.T) {
		// Given: a new game
		game := NewGameState()

		// When: cell 10 is played
		result, err := game.ApplyMove(10)

		// Then: the move is rejected and nothing changed
		require.ErrorIs(t, err, apperror.ErrInvalidCell)
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.False(t, result.Accepted)
		assert.Equal(t, OutcomeRejected, result.Outcome)
		assert.Equal(t, Board{}, game.Board())
		assert.Equal(t, PlayerX, game.CurrentTurn())
		assert.Equal(t, StatusOngoing, game.Status())
	})

	t.Run("Negative cell is rejected", func(t *testing.T) {
		// Given: a new game
		game := NewGameState()

		// When: cell -1 is played
		_, err := game.ApplyMove(-1)

		// Then: ErrInvalidCell is returned
		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Occupied cell is rejected without side effects", func(t *testing.T) {
		// Given: X already holds cell 0
		game := NewGameState()
		playMoves(t, game, 0)
		before := game.Snapshot()

		// When: O tries the same cell
		result, err := game.ApplyMove(0)

		// Then: ErrCellOccupied is returned and the state is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, OutcomeRejected, result.Outcome)
		assert.Equal(t, PlayerO, result.Turn)
		assert.Equal(t, before, game.Snapshot())
	})

	t.Run("Move after a draw is rejected", func(t *testing.T) {
		// Given: a drawn game
		game := NewGameState()
		playMoves(t, game, 0, 1, 2, 4, 3, 5, 7, 6, 8)
		before := game.Snapshot()

		// When: any cell is played
		for cell := -1; cell <= BoardSize; cell++ {
			_, err := game.ApplyMove(cell)

			// Then: ErrGameFinished is returned and the state is unchanged
			require.ErrorIs(t, err, apperror.ErrGameFinished)
		}
		assert.Equal(t, before, game.Snapshot())
	})

	t.Run("One move completing two lines reports the first in order", func(t *testing.T) {
		// Given: X holds 0,3,5,8 and O holds 1,2,6,7
		game := NewGameState()
		playMoves(t, game, 0, 1, 3, 2, 5, 6, 8, 7)

		// When: X takes the center
		result, err := game.ApplyMove(4)
		require.NoError(t, err)

		// Then: both lines are complete, the middle row is reported
		assert.Equal(t, []Line{{3, 4, 5}, {0, 4, 8}}, CompletedLines(game.Board()))
		assert.Equal(t, Line{3, 4, 5}, *result.WinningLine)
	})
}

func TestGameState_TurnAlternation(t *testing.T) {
	orders := [][]int{
		{0, 1, 2, 3, 4, 5, 6, 7, 8},
		{4, 0, 8, 2, 1, 7, 6, 3, 5},
		{8, 7, 6, 5, 4, 3, 2, 1, 0},
		{0, 4, 1, 3, 2, 5, 6, 7, 8},
	}

	for _, order := range orders {
		// Given: a new game
		game := NewGameState()
		expectedMark := PlayerX

		for _, cell := range order {
			if game.IsFinished() {
				break
			}

			// When: the next cell in the order is played
			result, err := game.ApplyMove(cell)
			require.NoError(t, err)

			// Then: marks alternate strictly and never exceed nine
			assert.Equal(t, expectedMark, result.Mark)
			assert.LessOrEqual(t, countMarks(game.Board()), BoardSize)

			if result.Outcome == OutcomeContinue {
				assert.Equal(t, expectedMark.Opponent(), game.CurrentTurn())
			} else {
				assert.Equal(t, expectedMark, game.CurrentTurn())
			}

			expectedMark = expectedMark.Opponent()
		}

		assert.True(t, game.IsFinished())
	}
}

func TestGameState_Reset(t *testing.T) {
	t.Run("Reset after a win", func(t *testing.T) {
		// Given: a won game
		game := NewGameState()
		playMoves(t, game, 0, 4, 1, 3, 2)

		// When: the game is reset
		game.Reset()

		// Then: it is equal to a brand new game
		assert.Equal(t, NewGameState(), game)
	})

	t.Run("Reset mid-game", func(t *testing.T) {
		// Given: an ongoing game with O to move
		game := NewGameState()
		playMoves(t, game, 4)

		// When: the game is reset
		game.Reset()

		// Then: X moves first again on an empty board
		assert.Equal(t, NewGameState(), game)

		_, err := game.ApplyMove(4)
		assert.NoError(t, err)
	})
}

func TestGameState_Board_ReturnsCopy(t *testing.T) {
	// Given: a game with one move
	game := NewGameState()
	playMoves(t, game, 0)

	// When: the returned board is modified
	board := game.Board()
	board[1] = PlayerO

	// Then: the game is not affected
	assert.Equal(t, Empty, game.Board()[1])
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.True(t, PlayerX.IsPlayer())
	assert.False(t, Empty.IsPlayer())
}
