package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type Config struct {
	Level      string    `json:"level" yaml:"level"`
	TimeFormat string    `json:"time_format" yaml:"time_format"`
	Pretty     bool      `json:"pretty" yaml:"pretty"`
	Out        io.Writer `json:"-" yaml:"-"`
}

// New returns a warn-level JSON logger on stderr. Stdout belongs to the
// console UI.
func New() zerolog.Logger {
	return NewWithConfig(Config{
		Level:      "warn",
		TimeFormat: time.RFC3339,
	})
}

func NewWithConfig(config Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(config.Level)
	if err != nil || config.Level == "" {
		level = zerolog.WarnLevel
	}

	if config.TimeFormat != "" {
		zerolog.TimeFieldFormat = config.TimeFormat
	}

	out := config.Out
	if out == nil {
		out = os.Stderr
	}

	var logger zerolog.Logger
	if config.Pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			FormatLevel: func(i interface{}) string {
				s, _ := i.(string)
				return colorizeLevel(s)
			},
		})
	} else {
		logger = zerolog.New(out)
	}

	return logger.Level(level).With().
		Timestamp().
		Str("service", "cryptotracker").
		Logger()
}

func colorizeLevel(level string) string {
	switch level {
	case "trace":
		return "\033[35m" + level + "\033[0m" // Magenta
	case "debug":
		return "\033[36m" + level + "\033[0m" // Cyan
	case "info":
		return "\033[32m" + level + "\033[0m" // Green
	case "warn":
		return "\033[33m" + level + "\033[0m" // Yellow
	case "error":
		return "\033[31m" + level + "\033[0m" // Red
	case "fatal", "panic":
		return "\033[91m" + level + "\033[0m" // Bright Red
	default:
		return level
	}
}
