package application

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-web/internal/config"
	"github.com/rocketscienceinc/tictactoe-web/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-web/internal/presentation/tui"
	"github.com/rocketscienceinc/tictactoe-web/internal/repository"
	"github.com/rocketscienceinc/tictactoe-web/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-web/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-web/transport/rest"
	"github.com/rocketscienceinc/tictactoe-web/transport/websocket"
	"github.com/rocketscienceinc/tictactoe-web/web"
)

// lockTTL - how long a crashed instance can hold a session lock in redis.
const lockTTL = 5 * time.Second

// RunApp - runs the HTTP and WebSocket servers until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return run(ctx, logger, conf)
}

// RunTerminal - plays a local game in the terminal until the player quits.
func RunTerminal(conf *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return tui.Run(ctx, conf.RevealDelay)
}

func run(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	gameRepo, locker, closeStorage, err := newStorage(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	gameManager := usecase.NewGameManager(logger, gameRepo, locker, metrics.NewGame(registry))

	page, err := web.NewPage(conf.RevealDelay)
	if err != nil {
		return fmt.Errorf("could not build game page: %w", err)
	}

	router := rest.NewRouter(logger, gameManager, rest.Options{
		Page:     page,
		Static:   web.Static(),
		Gatherer: registry,
		Observer: metrics.NewHTTP(registry),
	})

	wsServer := websocket.New(logger, gameManager)

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if err := rest.Start(ctx, logger, conf.HTTPPort, router); err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if err := wsServer.Start(ctx, conf.SocketPort); err != nil {
			return fmt.Errorf("WebSocket server error: %w", err)
		}
		return nil
	})

	if err = group.Wait(); err != nil {
		return err
	}

	log.Info("Application context canceled, shut down")

	return nil
}

func newStorage(ctx context.Context, logger *slog.Logger, conf *config.Config) (repository.GameRepository, repository.Locker, func(), error) {
	log := logger.With("component", "app", "storage", conf.Storage.Driver)

	if conf.Storage.Driver != config.StorageRedis {
		log.Info("games are kept in memory")

		return repository.NewMemoryGameRepository(conf.Storage.GameTTL), repository.NewMemoryLocker(), func() {}, nil
	}

	redisStorage, err := storage.NewRedisStorage(ctx, storage.RedisOptions{
		Addr:     conf.Redis.GetRedisAddr(),
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	log.Info("games are kept in redis", "addr", conf.Redis.GetRedisAddr())

	closeStorage := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	gameRepo := repository.NewGameRepository(redisStorage.Connection, conf.Storage.GameTTL)
	locker := repository.NewRedisLocker(redisStorage.Connection, lockTTL)

	return gameRepo, locker, closeStorage, nil
}
