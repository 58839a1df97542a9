package apperror

import (
	"errors"
	"fmt"
)

// ErrInvalidMove is the only error family of the game core. Every rejected move matches it.
var ErrInvalidMove = errors.New("invalid move")

var (
	ErrInvalidCell  = fmt.Errorf("%w: invalid cell index", ErrInvalidMove)
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", ErrInvalidMove)
	ErrGameFinished = fmt.Errorf("%w: game is already finished", ErrInvalidMove)
)

var ErrSessionRequired = errors.New("session id is required")
