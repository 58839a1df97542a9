package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-web/internal/config"
)

func TestRootCmd(t *testing.T) {
	cmd := newRootCmd()

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "play")

	flag := cmd.PersistentFlags().Lookup("config")
	if assert.NotNil(t, flag) {
		assert.Equal(t, defaultConfigPath, flag.DefValue)
	}
}

func TestInitLogger(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	}

	for name, want := range cases {
		logger := initLogger(&config.Config{LogLevel: name})

		assert.True(t, logger.Handler().Enabled(t.Context(), want), name)
		assert.False(t, logger.Handler().Enabled(t.Context(), want-1), name)
	}
}
