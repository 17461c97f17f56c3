package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	app "github.com/rocketscienceinc/tictactoe-desktop/internal"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	configPath := flag.String("config", "./config.yml", "path to the config file")
	frontend := flag.String("frontend", "", "frontend to use: window or terminal")
	flag.Parse()

	conf := initConfig(*configPath, *frontend)

	logger, closeLog := initLogger(conf)
	defer closeLog()

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig(path, frontend string) *config.Config {
	conf := config.MustLoad(path)

	if frontend != "" {
		conf.Frontend = frontend
		if err := conf.Validate(); err != nil {
			panic(err)
		}
	}

	return conf
}

// initialize logger. The log file is truncated on every run.
func initLogger(conf *config.Config) (*slog.Logger, func()) {
	var level slog.Level

	switch conf.LogLevel {
	case config.LogLevelDebug:
		level = slog.LevelDebug
	case config.LogLevelInfo:
		level = slog.LevelInfo
	case config.LogLevelWarn:
		level = slog.LevelWarn
	case config.LogLevelError:
		level = slog.LevelError
	}

	var out io.Writer = os.Stdout
	closeLog := func() {}

	if conf.LogFile != "" {
		file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			panic(fmt.Errorf("failed to open log file: %w", err))
		}

		out = file
		closeLog = func() { _ = file.Close() }
	}

	opts := &slog.HandlerOptions{Level: level}
	if conf.LogFormat == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(out, opts)), closeLog
	}

	return slog.New(slog.NewTextHandler(out, opts)), closeLog
}
