package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"

	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"

	LogFormatText = "text"
	LogFormatJSON = "json"
)

var (
	ErrUnknownFrontend  = errors.New("unknown frontend")
	ErrUnknownLogLevel  = errors.New("unknown log level")
	ErrUnknownLogFormat = errors.New("unknown log format")
	ErrInvalidScale     = errors.New("window scale must be positive")
)

type Config struct {
	LogLevel   string        `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"debug"`
	LogFormat  string        `yaml:"log-format" env:"TICTACTOE_LOG_FORMAT" env-default:"text"`
	LogFile    string        `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:"tictactoe.log"`
	Frontend   string        `yaml:"frontend" env:"TICTACTOE_FRONTEND" env-default:"window"`
	CloseDelay time.Duration `yaml:"close-delay" env:"TICTACTOE_CLOSE_DELAY" env-default:"2s"`
	Window     Window        `yaml:"window"`
	Terminal   Terminal      `yaml:"terminal"`
	Redis      Redis         `yaml:"redis"`
}

type Window struct {
	Title       string `yaml:"title" env:"TICTACTOE_WINDOW_TITLE" env-default:"Tic Tac Toe"`
	Scale       int    `yaml:"scale" env:"TICTACTOE_WINDOW_SCALE" env-default:"1"`
	BoardImage  string `yaml:"board-image" env:"TICTACTOE_BOARD_IMAGE" env-default:""`
	CrossImage  string `yaml:"cross-image" env:"TICTACTOE_CROSS_IMAGE" env-default:""`
	CircleImage string `yaml:"circle-image" env:"TICTACTOE_CIRCLE_IMAGE" env-default:""`
	MoveSound   string `yaml:"move-sound" env:"TICTACTOE_MOVE_SOUND" env-default:""`
	EndSound    string `yaml:"end-sound" env:"TICTACTOE_END_SOUND" env-default:""`
	Mute        bool   `yaml:"mute" env:"TICTACTOE_MUTE" env-default:"false"`
}

type Terminal struct {
	Bell bool `yaml:"bell" env:"TICTACTOE_TERMINAL_BELL" env-default:"true"`
}

type Redis struct {
	Enabled  bool          `yaml:"enabled" env:"TICTACTOE_REDIS_ENABLED" env-default:"false"`
	Host     string        `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port     string        `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
	EventTTL time.Duration `yaml:"event-ttl" env:"TICTACTOE_REDIS_EVENT_TTL" env-default:"24h"`
}

// Load - reads the yml file at path; a missing file falls back to env and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - like Load but panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Validate() error {
	switch that.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFrontend, that.Frontend)
	}

	switch that.LogLevel {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}

	switch that.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogFormat, that.LogFormat)
	}

	if that.Window.Scale <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidScale, that.Window.Scale)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
