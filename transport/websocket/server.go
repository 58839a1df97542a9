package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-web/internal/entity"
	"github.com/rocketscienceinc/tictactoe-web/internal/session"
	"github.com/rocketscienceinc/tictactoe-web/internal/tictactoe"
)

const (
	writeWait       = 10 * time.Second
	pongWait        = 60 * time.Second
	pingPeriod      = pongWait * 9 / 10
	maxMessageBytes = 4 << 10
	shutdownTimeout = 5 * time.Second
)

type gameManager interface {
	GetGame(ctx context.Context, sessionID string) (*entity.Game, error)
	MakeMove(ctx context.Context, sessionID string, cell int) (*entity.Game, tictactoe.MoveResult, error)
	Restart(ctx context.Context, sessionID string) (*entity.Game, error)
}

type handlerFunc func(ctx context.Context, sessionID string, message *Message) Response

type Server struct {
	logger   *slog.Logger
	games    gameManager
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, games gameManager) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		games:  games,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     sameHostOrigin,
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[ActionState] = server.handleState
	server.handlers[ActionMove] = server.handleMove
	server.handlers[ActionRestart] = server.handleRestart

	return server
}

// Handler - routes /ws to the upgrade handler.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", that)

	return mux
}

// Start - serves websocket connections on port until ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	log := that.logger.With("method", "Start", "port", port)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}

// ServeHTTP - upgrades the connection, issuing the session cookie during the handshake.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	header := http.Header{}

	sessionID, ok := session.FromRequest(req)
	if !ok {
		sessionID = newSessionID()
		header.Add("Set-Cookie", session.NewCookie(sessionID).String())
		log.Debug("session cookie not found, new one created", "session", sessionID)
	}

	conn, err := that.upgrader.Upgrade(writer, req, header)
	if err != nil {
		// the upgrader has already answered the request
		log.Warn("failed to upgrade connection", "error", err)
		return
	}

	log = log.With("session", sessionID)
	log.Info("WebSocket connection established")

	if err = that.handleMessages(req.Context(), conn, sessionID); err != nil {
		log.Warn("connection closed", "error", err)
		return
	}

	log.Info("WebSocket connection closed")
}

// handleMessages - reads requests until the peer leaves or ctx is done. Only this loop writes data frames.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn, sessionID string) error {
	log := that.logger.With("method", "handleMessages", "session", sessionID)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	defer conn.Close()

	conn.SetReadLimit(maxMessageBytes)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	go that.keepAlive(ctx, conn)

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to read message: %w", err)
		}

		if messageType != websocket.TextMessage {
			continue
		}

		response := that.dispatch(ctx, sessionID, data)

		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err = conn.WriteJSON(response); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}

		log.Debug("message processed", "action", response.Action)
	}
}

func (that *Server) dispatch(ctx context.Context, sessionID string, data []byte) Response {
	var message Message
	if err := json.Unmarshal(data, &message); err != nil {
		return errorResponse(ActionError, "malformed message")
	}

	handler, ok := that.handlers[message.Action]
	if !ok {
		return errorResponse(ActionError, fmt.Sprintf("unknown action %q", message.Action))
	}

	return handler(ctx, sessionID, &message)
}

// keepAlive - pings the peer and closes the connection once ctx is done.
func (that *Server) keepAlive(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			closing := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
			_ = conn.WriteControl(websocket.CloseMessage, closing, time.Now().Add(writeWait))
			_ = conn.Close()
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

// sameHostOrigin - the page and the socket listen on different ports of the same host.
func sameHostOrigin(req *http.Request) bool {
	origin := req.Header.Get("Origin")
	if origin == "" {
		return true
	}

	parsed, err := url.Parse(origin)
	if err != nil {
		return false
	}

	host, _, err := net.SplitHostPort(req.Host)
	if err != nil {
		host = req.Host
	}

	return parsed.Hostname() == host
}
