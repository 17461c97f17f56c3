package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/config"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/frontend/terminal"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/frontend/window"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/repository"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/usecase"
)

// RunApp - runs one game session with the configured frontend.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	journal := repository.NewNopJournal()
	if conf.Redis.Enabled {
		redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		journal = repository.NewEventJournal(redisStorage, conf.Redis.EventTTL)
		log.Info("Recording events to redis", "addr", conf.Redis.GetRedisAddr())
	}

	switch conf.Frontend {
	case config.FrontendTerminal:
		manager := usecase.NewGameManager(logger, journal, terminal.Layout())
		log.Info("Starting game", "session", manager.SessionID(), "frontend", conf.Frontend)

		opts := terminal.Options{CloseDelay: conf.CloseDelay}
		if conf.Terminal.Bell {
			opts.Bell = os.Stderr
		}

		if err := terminal.Run(ctx, logger, manager, opts); err != nil {
			return fmt.Errorf("terminal frontend error: %w", err)
		}
	default:
		manager := usecase.NewGameManager(logger, journal, tictactoe.WindowLayout())
		log.Info("Starting game", "session", manager.SessionID(), "frontend", conf.Frontend)

		opts := window.Options{
			Title:       conf.Window.Title,
			Scale:       conf.Window.Scale,
			CloseDelay:  conf.CloseDelay,
			BoardImage:  conf.Window.BoardImage,
			CrossImage:  conf.Window.CrossImage,
			CircleImage: conf.Window.CircleImage,
			MoveSound:   conf.Window.MoveSound,
			EndSound:    conf.Window.EndSound,
			Mute:        conf.Window.Mute,
		}

		if err := window.Run(ctx, logger, manager, opts); err != nil {
			return fmt.Errorf("window frontend error: %w", err)
		}
	}

	log.Info("Game closed")

	return nil
}
