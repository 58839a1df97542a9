package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-web/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-web/internal/tictactoe"
)

func TestGame(t *testing.T) {
	// Given: collectors on a private registry
	reg := prometheus.NewRegistry()
	recorder := NewGame(reg)

	// When: activity is recorded
	recorder.MoveApplied(tictactoe.MoveResult{Outcome: tictactoe.OutcomeContinue})
	recorder.MoveApplied(tictactoe.MoveResult{Outcome: tictactoe.OutcomeContinue})
	recorder.MoveApplied(tictactoe.MoveResult{Outcome: tictactoe.OutcomeWin})
	recorder.MoveRejected(apperror.ErrCellOccupied)
	recorder.MoveRejected(apperror.ErrGameFinished)
	recorder.MoveRejected(apperror.ErrInvalidCell)
	recorder.GameRestarted()

	// Then: the counters reflect it
	assert.InDelta(t, 2, testutil.ToFloat64(recorder.moves.WithLabelValues("continue")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(recorder.moves.WithLabelValues("win")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(recorder.rejections.WithLabelValues("cell_occupied")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(recorder.rejections.WithLabelValues("game_finished")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(recorder.rejections.WithLabelValues("invalid_cell")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(recorder.restarts), 0)
}

func TestHTTP(t *testing.T) {
	// Given: a histogram on a private registry
	reg := prometheus.NewRegistry()
	recorder := NewHTTP(reg)

	// When: two requests are observed, one without a route
	recorder.Observe("/api/game", "GET", 200, 0)
	recorder.Observe("", "GET", 404, 0)

	// Then: both series exist
	assert.Equal(t, 2, testutil.CollectAndCount(recorder.duration))

	count, err := testutil.GatherAndCount(reg, "tictactoe_http_request_duration_seconds")
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}
