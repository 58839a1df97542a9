package tictactoe

import "fmt"

// Restore - rebuilds a GameState from a snapshot, refusing anything legal play could not produce.
func Restore(snapshot Snapshot) (*GameState, error) {
	var xs, os int
	for i, mark := range snapshot.Board {
		if mark != Empty && !mark.IsPlayer() {
			return nil, fmt.Errorf("%w: unknown mark %q at cell %d", ErrCorruptState, mark, i)
		}

		switch mark {
		case PlayerX:
			xs++
		case PlayerO:
			os++
		}
	}

	if xs != os && xs != os+1 {
		return nil, fmt.Errorf("%w: %d X marks against %d O marks", ErrCorruptState, xs, os)
	}

	// X always opens, so equal counts mean O moved last.
	lastMover := PlayerX
	if xs == os {
		lastMover = PlayerO
	}

	state := &GameState{board: snapshot.Board}

	lines := CompletedLines(snapshot.Board)
	for _, line := range lines {
		if snapshot.Board[line[0]] != lastMover {
			return nil, fmt.Errorf("%w: line %v belongs to %s who did not move last", ErrCorruptState, line, snapshot.Board[line[0]])
		}
	}

	switch {
	case len(lines) > 0:
		line := lines[0]
		state.status = StatusWon
		state.winner = lastMover
		state.turn = lastMover
		state.line = &line
	case isFull(snapshot.Board):
		state.status = StatusDraw
		state.turn = lastMover
	default:
		state.status = StatusOngoing
		state.turn = lastMover.Opponent()
	}

	if err := state.matches(snapshot); err != nil {
		return nil, err
	}

	return state, nil
}

// matches - the declared fields must agree with what the board implies.
func (that *GameState) matches(snapshot Snapshot) error {
	if snapshot.Status != that.status {
		return fmt.Errorf("%w: status %q, board implies %q", ErrCorruptState, snapshot.Status, that.status)
	}

	if snapshot.Turn != that.turn {
		return fmt.Errorf("%w: turn %q, board implies %q", ErrCorruptState, snapshot.Turn, that.turn)
	}

	if snapshot.Winner != that.winner {
		return fmt.Errorf("%w: winner %q, board implies %q", ErrCorruptState, snapshot.Winner, that.winner)
	}

	if that.line != nil && snapshot.WinningLine == nil {
		return fmt.Errorf("%w: winning line %v missing", ErrCorruptState, *that.line)
	}

	if snapshot.WinningLine != nil && (that.line == nil || *snapshot.WinningLine != *that.line) {
		return fmt.Errorf("%w: winning line %v does not match the board", ErrCorruptState, *snapshot.WinningLine)
	}

	return nil
}
