package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-web/internal/apperror"
)

const internalErrorMessage = "internal server error"

func (that *Server) handleState(ctx context.Context, sessionID string, msg *Message) Response {
	game, err := that.games.GetGame(ctx, sessionID)
	if err != nil {
		that.logger.Error("failed to get game", "method", "handleState", "session", sessionID, "error", err)
		return errorResponse(msg.Action, internalErrorMessage)
	}

	return Response{
		Action:  msg.Action,
		Payload: ResponsePayload{Game: game},
	}
}

func (that *Server) handleMove(ctx context.Context, sessionID string, msg *Message) Response {
	log := that.logger.With("method", "handleMove", "session", sessionID)

	var payload MovePayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil || payload.Cell == nil {
		return errorResponse(msg.Action, "cell is required")
	}

	game, result, err := that.games.MakeMove(ctx, sessionID, *payload.Cell)
	if errors.Is(err, apperror.ErrInvalidMove) {
		return Response{
			Action: msg.Action,
			Payload: ResponsePayload{
				Game:   game,
				Result: &result,
				Error:  err.Error(),
			},
		}
	}

	if err != nil {
		log.Error("failed to make move", "error", err)
		return errorResponse(msg.Action, internalErrorMessage)
	}

	return Response{
		Action: msg.Action,
		Payload: ResponsePayload{
			Game:   game,
			Result: &result,
		},
	}
}

func (that *Server) handleRestart(ctx context.Context, sessionID string, msg *Message) Response {
	game, err := that.games.Restart(ctx, sessionID)
	if err != nil {
		that.logger.Error("failed to restart game", "method", "handleRestart", "session", sessionID, "error", err)
		return errorResponse(msg.Action, internalErrorMessage)
	}

	return Response{
		Action:  msg.Action,
		Payload: ResponsePayload{Game: game},
	}
}

func newSessionID() string {
	return uuid.NewString()
}
