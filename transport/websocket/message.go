package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-web/internal/entity"
	"github.com/rocketscienceinc/tictactoe-web/internal/tictactoe"
)

const (
	ActionState   = "game:state"
	ActionMove    = "game:move"
	ActionRestart = "game:restart"
	ActionError   = "error"
)

// Message - a client request: an action plus its optional payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type MovePayload struct {
	Cell *int `json:"cell"`
}

// Response - what the server sends back; Action echoes the request unless it was unusable.
type Response struct {
	Action  string          `json:"action"`
	Payload ResponsePayload `json:"payload"`
}

type ResponsePayload struct {
	Game   *entity.Game          `json:"game,omitempty"`
	Result *tictactoe.MoveResult `json:"result,omitempty"`
	Error  string                `json:"error,omitempty"`
}

func errorResponse(action, message string) Response {
	return Response{
		Action:  action,
		Payload: ResponsePayload{Error: message},
	}
}
