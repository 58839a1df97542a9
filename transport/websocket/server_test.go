package websocket

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-web/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-web/internal/repository"
	"github.com/rocketscienceinc/tictactoe-web/internal/session"
	"github.com/rocketscienceinc/tictactoe-web/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-web/internal/usecase"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	games := usecase.NewGameManager(
		logger,
		repository.NewMemoryGameRepository(0),
		repository.NewMemoryLocker(),
		metrics.NewGame(prometheus.NewRegistry()),
	)

	server := httptest.NewServer(New(logger, games).Handler())
	t.Cleanup(server.Close)

	return server
}

func dial(t *testing.T, server *httptest.Server, header http.Header) (*websocket.Conn, *http.Response) {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"

	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn, resp
}

func roundTrip(t *testing.T, conn *websocket.Conn, request any) Response {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.WriteJSON(request))

	var response Response
	require.NoError(t, conn.ReadJSON(&response))

	return response
}

func move(cell int) map[string]any {
	return map[string]any{
		"action":  ActionMove,
		"payload": map[string]any{"cell": cell},
	}
}

func TestServer_Session(t *testing.T) {
	server := newTestServer(t)

	t.Run("Cookie is issued during the handshake", func(t *testing.T) {
		// When: a client connects without a session
		_, resp := dial(t, server, nil)

		// Then: the upgrade response sets a browser-session cookie
		var issued *http.Cookie
		for _, cookie := range resp.Cookies() {
			if cookie.Name == session.CookieName {
				issued = cookie
			}
		}
		require.NotNil(t, issued)
		assert.Zero(t, issued.MaxAge)
		assert.True(t, issued.Expires.IsZero())
	})

	t.Run("Existing session keeps its game", func(t *testing.T) {
		// Given: a session with one move on the board
		header := http.Header{}
		header.Add("Cookie", session.CookieName+"=1f0c7c0e-8a61-4a3e-9a47-8f3a0b1c2d3e")

		first, resp := dial(t, server, header)
		assert.Empty(t, resp.Cookies())

		response := roundTrip(t, first, move(4))
		require.Empty(t, response.Payload.Error)

		// When: the same session reconnects
		second, _ := dial(t, server, header)
		response = roundTrip(t, second, map[string]any{"action": ActionState})

		// Then: it sees the same game
		require.NotNil(t, response.Payload.Game)
		assert.Equal(t, "X", response.Payload.Game.Board[4])
		assert.Equal(t, "O", response.Payload.Game.Turn)
	})
}

func TestServer_Actions(t *testing.T) {
	t.Run("Full game over one connection", func(t *testing.T) {
		conn, _ := dial(t, newTestServer(t), nil)

		// Given: a fresh game
		response := roundTrip(t, conn, map[string]any{"action": ActionState})
		require.Equal(t, ActionState, response.Action)
		require.Equal(t, "ongoing", response.Payload.Game.Status)

		// When: X takes the left column
		for _, cell := range []int{0, 1, 3, 4} {
			response = roundTrip(t, conn, move(cell))
			require.Empty(t, response.Payload.Error)
		}
		response = roundTrip(t, conn, move(6))

		// Then: the win is reported with the column
		assert.Equal(t, ActionMove, response.Action)
		assert.Equal(t, tictactoe.OutcomeWin, response.Payload.Result.Outcome)
		assert.Equal(t, "X", response.Payload.Game.Winner)
		assert.Equal(t, []int{0, 3, 6}, response.Payload.Game.WinningLine)

		// And: a later move is rejected with the unchanged game
		response = roundTrip(t, conn, move(8))
		assert.Contains(t, response.Payload.Error, "game is already finished")
		assert.False(t, response.Payload.Result.Accepted)
		assert.Empty(t, response.Payload.Game.Board[8])

		// And: restart brings back an empty board
		response = roundTrip(t, conn, map[string]any{"action": ActionRestart})
		assert.Equal(t, ActionRestart, response.Action)
		assert.Equal(t, [9]string{}, response.Payload.Game.Board)
		assert.Equal(t, "X", response.Payload.Game.Turn)
	})

	t.Run("Bad requests keep the connection open", func(t *testing.T) {
		conn, _ := dial(t, newTestServer(t), nil)

		// When: an unknown action is sent
		response := roundTrip(t, conn, map[string]any{"action": "game:join"})

		// Then: an error is returned
		assert.Equal(t, ActionError, response.Action)
		assert.Contains(t, response.Payload.Error, "unknown action")

		// When: a move without a cell is sent
		response = roundTrip(t, conn, map[string]any{"action": ActionMove})
		assert.Equal(t, ActionMove, response.Action)
		assert.Equal(t, "cell is required", response.Payload.Error)

		// When: the frame is not json
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{")))
		var malformed Response
		require.NoError(t, conn.ReadJSON(&malformed))
		assert.Equal(t, ActionError, malformed.Action)

		// Then: the connection still serves requests
		response = roundTrip(t, conn, move(0))
		assert.Empty(t, response.Payload.Error)
		assert.True(t, response.Payload.Result.Accepted)
	})
}

func TestServer_Shutdown(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	server := New(logger, nil)

	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(ctx, "0")
	}()

	// When: the context is cancelled
	cancel()

	// Then: Start returns without error
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestSameHostOrigin(t *testing.T) {
	cases := map[string]struct {
		host   string
		origin string
		want   bool
	}{
		"no origin":         {host: "localhost:9091", want: true},
		"page on http port": {host: "localhost:9091", origin: "http://localhost:9090", want: true},
		"other host":        {host: "localhost:9091", origin: "http://evil.example", want: false},
		"bad origin":        {host: "localhost:9091", origin: "://", want: false},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ws", nil)
			req.Host = tc.host
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}

			assert.Equal(t, tc.want, sameHostOrigin(req))
		})
	}
}
