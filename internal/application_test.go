package application

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-web/internal/config"
	"github.com/rocketscienceinc/tictactoe-web/internal/entity"
	"github.com/rocketscienceinc/tictactoe-web/internal/tictactoe"
)

func testConfig() *config.Config {
	return &config.Config{
		LogLevel:    "info",
		HTTPPort:    "0",
		SocketPort:  "0",
		RevealDelay: 500 * time.Millisecond,
		Storage: config.Storage{
			Driver:  config.StorageMemory,
			GameTTL: time.Hour,
		},
	}
}

func TestRun(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	// Given: servers started on free ports
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx, logger, testConfig())
	}()

	// When: the context is cancelled
	time.Sleep(50 * time.Millisecond)
	cancel()

	// Then: both servers stop cleanly
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("application did not stop")
	}
}

func TestNewStorage(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	t.Run("Memory", func(t *testing.T) {
		gameRepo, locker, closeStorage, err := newStorage(ctx, logger, testConfig())
		require.NoError(t, err)
		defer closeStorage()

		assert.NotNil(t, gameRepo)
		assert.NotNil(t, locker)
	})

	t.Run("Redis", func(t *testing.T) {
		// Given: a reachable redis
		server := miniredis.RunT(t)

		conf := testConfig()
		conf.Storage.Driver = config.StorageRedis
		conf.Redis.Host = server.Host()
		conf.Redis.Port = server.Port()

		// When: storage is built
		gameRepo, locker, closeStorage, err := newStorage(ctx, logger, conf)
		require.NoError(t, err)
		defer closeStorage()

		// Then: games land in redis with the configured ttl
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, entity.NewGame("abc", tictactoe.NewGameState())))
		assert.True(t, server.Exists("game:abc"))
		assert.Equal(t, time.Hour, server.TTL("game:abc"))

		unlock, err := locker.Lock(ctx, "abc")
		require.NoError(t, err)
		require.NoError(t, unlock(ctx))
	})

	t.Run("Unreachable redis", func(t *testing.T) {
		conf := testConfig()
		conf.Storage.Driver = config.StorageRedis
		conf.Redis.Host = "127.0.0.1"
		conf.Redis.Port = "1"

		_, _, _, err := newStorage(ctx, logger, conf)

		require.Error(t, err)
	})
}
