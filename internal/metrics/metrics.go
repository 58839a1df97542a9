package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rocketscienceinc/tictactoe-web/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-web/internal/tictactoe"
)

const namespace = "tictactoe"

// Game - prometheus collectors for game activity.
type Game struct {
	moves      *prometheus.CounterVec
	rejections *prometheus.CounterVec
	restarts   prometheus.Counter
}

// NewGame - creates the collectors and registers them on reg.
func NewGame(reg prometheus.Registerer) *Game {
	that := &Game{
		moves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_total",
			Help:      "Accepted moves by outcome.",
		}, []string{"outcome"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_moves_total",
			Help:      "Rejected moves by reason.",
		}, []string{"reason"}),
		restarts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "restarts_total",
			Help:      "Games replaced by a restart.",
		}),
	}

	reg.MustRegister(that.moves, that.rejections, that.restarts)

	return that
}

func (that *Game) MoveApplied(result tictactoe.MoveResult) {
	that.moves.WithLabelValues(string(result.Outcome)).Inc()
}

func (that *Game) MoveRejected(err error) {
	that.rejections.WithLabelValues(rejectionReason(err)).Inc()
}

func (that *Game) GameRestarted() {
	that.restarts.Inc()
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, apperror.ErrGameFinished):
		return "game_finished"
	case errors.Is(err, apperror.ErrCellOccupied):
		return "cell_occupied"
	case errors.Is(err, apperror.ErrInvalidCell):
		return "invalid_cell"
	default:
		return "other"
	}
}
