package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-web/internal"
	"github.com/rocketscienceinc/tictactoe-web/internal/config"
)

const defaultConfigPath = "./config.yml"

// main - is the entry point of the application. It parses the command line and runs the chosen command.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:          "tictactoe",
		Short:        "Two-player Tic-Tac-Toe for the browser and the terminal",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to the yml config file")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the game page, the JSON API and the WebSocket endpoint",
		RunE: func(_ *cobra.Command, _ []string) error {
			conf, err := initConfig(configPath)
			if err != nil {
				return err
			}

			if err = app.RunApp(initLogger(conf), conf); err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			return nil
		},
	}

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play a hot-seat game in the terminal",
		RunE: func(_ *cobra.Command, _ []string) error {
			conf, err := initConfig(configPath)
			if err != nil {
				return err
			}

			return app.RunTerminal(conf)
		},
	}

	rootCmd.AddCommand(serveCmd, playCmd)

	return rootCmd
}

// initialize config. A .env file next to the binary is loaded first when present.
func initConfig(path string) (*config.Config, error) {
	_ = godotenv.Load()

	conf, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return conf, nil
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
