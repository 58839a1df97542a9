package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-web/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-web/internal/entity"
	"github.com/rocketscienceinc/tictactoe-web/internal/repository"
	"github.com/rocketscienceinc/tictactoe-web/internal/tictactoe"
)

type gameRepoDep interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type lockerDep interface {
	Lock(ctx context.Context, key string) (repository.UnlockFunc, error)
}

type recorderDep interface {
	MoveApplied(result tictactoe.MoveResult)
	MoveRejected(err error)
	GameRestarted()
}

// GameManager - owns the game of every session. Inputs for one session are applied one at a time.
type GameManager struct {
	logger *slog.Logger

	gameRepo gameRepoDep
	locker   lockerDep
	recorder recorderDep
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepoDep, locker lockerDep, recorder recorderDep) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo: gameRepo,
		locker:   locker,
		recorder: recorder,
	}
}

// GetGame - returns the session's game, starting a new one when there is none.
func (that *GameManager) GetGame(ctx context.Context, sessionID string) (*entity.Game, error) {
	if sessionID == "" {
		return nil, apperror.ErrSessionRequired
	}

	var game *entity.Game

	err := that.withLock(ctx, sessionID, func() error {
		var err error
		game, _, err = that.loadOrCreate(ctx, sessionID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return game, nil
}

// MakeMove - plays cell for whoever is to move. A rejected move leaves the stored game
// untouched and returns it together with an error matching apperror.ErrInvalidMove.
func (that *GameManager) MakeMove(ctx context.Context, sessionID string, cell int) (*entity.Game, tictactoe.MoveResult, error) {
	if sessionID == "" {
		return nil, tictactoe.MoveResult{}, apperror.ErrSessionRequired
	}

	log := that.logger.With("method", "MakeMove", "session", sessionID, "cell", cell)

	var (
		game    *entity.Game
		result  tictactoe.MoveResult
		moveErr error
	)

	err := that.withLock(ctx, sessionID, func() error {
		current, state, err := that.loadOrCreate(ctx, sessionID)
		if err != nil {
			return err
		}

		result, moveErr = state.ApplyMove(cell)
		if moveErr != nil {
			game = current
			return nil
		}

		game = entity.NewGame(sessionID, state)
		if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
			return fmt.Errorf("failed to update game: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, tictactoe.MoveResult{}, err
	}

	if moveErr != nil {
		log.Debug("move rejected", "reason", moveErr)
		that.recorder.MoveRejected(moveErr)

		return game, result, moveErr
	}

	log.Debug("move applied", "outcome", result.Outcome, "status", result.Status)
	that.recorder.MoveApplied(result)

	if result.Status != tictactoe.StatusOngoing {
		log.Info("game finished", "status", result.Status, "winner", result.Winner)
	}

	return game, result, nil
}

// Restart - replaces the session's game with a new one, whatever its state.
func (that *GameManager) Restart(ctx context.Context, sessionID string) (*entity.Game, error) {
	if sessionID == "" {
		return nil, apperror.ErrSessionRequired
	}

	var game *entity.Game

	err := that.withLock(ctx, sessionID, func() error {
		var err error
		game, err = that.createGame(ctx, sessionID)
		return err
	})
	if err != nil {
		return nil, err
	}

	that.logger.Debug("game restarted", "method", "Restart", "session", sessionID)
	that.recorder.GameRestarted()

	return game, nil
}

func (that *GameManager) withLock(ctx context.Context, sessionID string, fn func() error) error {
	unlock, err := that.locker.Lock(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to lock game: %w", err)
	}

	defer func() {
		if err := unlock(context.WithoutCancel(ctx)); err != nil {
			that.logger.Warn("failed to unlock game", "session", sessionID, "error", err)
		}
	}()

	return fn()
}

func (that *GameManager) loadOrCreate(ctx context.Context, sessionID string) (*entity.Game, *tictactoe.GameState, error) {
	game, err := that.gameRepo.GetByID(ctx, sessionID)
	if errors.Is(err, repository.ErrGameNotFound) {
		game, err = that.createGame(ctx, sessionID)
		if err != nil {
			return nil, nil, err
		}

		return game, tictactoe.NewGameState(), nil
	}

	if err != nil {
		return nil, nil, fmt.Errorf("failed to get game: %w", err)
	}

	state, err := game.State()
	if err != nil {
		that.logger.Warn("replacing corrupt game", "session", sessionID, "error", err)

		if err = that.gameRepo.DeleteByID(ctx, sessionID); err != nil && !errors.Is(err, repository.ErrGameNotFound) {
			return nil, nil, fmt.Errorf("failed to delete corrupt game: %w", err)
		}

		game, err = that.createGame(ctx, sessionID)
		if err != nil {
			return nil, nil, err
		}

		return game, tictactoe.NewGameState(), nil
	}

	return game, state, nil
}

func (that *GameManager) createGame(ctx context.Context, sessionID string) (*entity.Game, error) {
	game := entity.NewGame(sessionID, tictactoe.NewGameState())

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return game, nil
}
