package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-web/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-web/internal/entity"
	"github.com/rocketscienceinc/tictactoe-web/internal/tictactoe"
)

const maxBodyBytes = 1 << 10

type moveRequest struct {
	Cell *int `json:"cell"`
}

type gameResponse struct {
	Game   *entity.Game          `json:"game"`
	Result *tictactoe.MoveResult `json:"result,omitempty"`
	Error  string                `json:"error,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type gameHandlers struct {
	logger *slog.Logger
	games  gameManager
}

func (that *gameHandlers) getGame(writer http.ResponseWriter, req *http.Request) {
	game, err := that.games.GetGame(req.Context(), sessionID(req.Context()))
	if err != nil {
		that.internalError(writer, "getGame", err)
		return
	}

	writeJSON(writer, http.StatusOK, gameResponse{Game: game})
}

func (that *gameHandlers) makeMove(writer http.ResponseWriter, req *http.Request) {
	var body moveRequest

	decoder := json.NewDecoder(http.MaxBytesReader(writer, req.Body, maxBodyBytes))
	if err := decoder.Decode(&body); err != nil {
		writeJSON(writer, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	if body.Cell == nil {
		writeJSON(writer, http.StatusBadRequest, errorResponse{Error: "cell is required"})
		return
	}

	game, result, err := that.games.MakeMove(req.Context(), sessionID(req.Context()), *body.Cell)
	if errors.Is(err, apperror.ErrInvalidMove) {
		writeJSON(writer, http.StatusUnprocessableEntity, gameResponse{
			Game:   game,
			Result: &result,
			Error:  err.Error(),
		})
		return
	}

	if err != nil {
		that.internalError(writer, "makeMove", err)
		return
	}

	writeJSON(writer, http.StatusOK, gameResponse{Game: game, Result: &result})
}

func (that *gameHandlers) restart(writer http.ResponseWriter, req *http.Request) {
	game, err := that.games.Restart(req.Context(), sessionID(req.Context()))
	if err != nil {
		that.internalError(writer, "restart", err)
		return
	}

	writeJSON(writer, http.StatusOK, gameResponse{Game: game})
}

func (that *gameHandlers) internalError(writer http.ResponseWriter, method string, err error) {
	that.logger.Error("request failed", "method", method, "error", err)
	writeJSON(writer, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

func writeJSON(writer http.ResponseWriter, status int, body any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(body)
}
