package repository

import (
	"context"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-web/internal/entity"
)

type memoryEntry struct {
	game      entity.Game
	expiresAt time.Time
}

// memGame - process local games guarded by a RWMutex. Lost on restart.
type memGame struct {
	mu    sync.RWMutex
	games map[string]memoryEntry
	ttl   time.Duration
	now   func() time.Time
}

// NewMemoryGameRepository - in-process games; ttl of zero keeps games forever.
func NewMemoryGameRepository(ttl time.Duration) GameRepository {
	return &memGame{
		games: make(map[string]memoryEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (that *memGame) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	entry := memoryEntry{game: cloneGame(game)}
	if that.ttl > 0 {
		entry.expiresAt = that.now().Add(that.ttl)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[game.ID] = entry

	return nil
}

func (that *memGame) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.RLock()
	entry, ok := that.games[id]
	that.mu.RUnlock()

	if !ok {
		return nil, ErrGameNotFound
	}

	if that.expired(entry) {
		that.mu.Lock()
		// it may have been replaced between the two locks
		if current, ok := that.games[id]; ok && that.expired(current) {
			delete(that.games, id)
		}
		that.mu.Unlock()

		return nil, ErrGameNotFound
	}

	game := cloneGame(&entry.game)

	return &game, nil
}

func (that *memGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	entry, ok := that.games[id]
	if !ok || that.expired(entry) {
		delete(that.games, id)
		return ErrGameNotFound
	}

	delete(that.games, id)

	return nil
}

func (that *memGame) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && !that.now().Before(entry.expiresAt)
}

func cloneGame(game *entity.Game) entity.Game {
	clone := *game
	if game.WinningLine != nil {
		clone.WinningLine = append([]int(nil), game.WinningLine...)
	}
	return clone
}
