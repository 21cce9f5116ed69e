package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

// Env holds settings read from the process environment
type Env struct {
	FFmpegPath  string `env:"MEDIA_EDITOR_FFMPEG, default=ffmpeg"`
	FFprobePath string `env:"MEDIA_EDITOR_FFPROBE, default=ffprobe"`

	// Logging settings
	LogFormat string `env:"MEDIA_EDITOR_LOG_FORMAT, default=text"` // "json" or "text"
	LogLevel  string `env:"MEDIA_EDITOR_LOG_LEVEL, default=info"`  // "debug", "info", "warn", "error"
}

// DefaultEnv returns the values used when nothing is set
func DefaultEnv() *Env {
	return &Env{
		FFmpegPath:  "ffmpeg",
		FFprobePath: "ffprobe",
		LogFormat:   "text",
		LogLevel:    "info",
	}
}

// LoadEnv reads the environment using go-envconfig
func LoadEnv() (*Env, error) {
	env := &Env{}
	if err := envconfig.Process(context.Background(), env); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return env, nil
}

// NewLogger creates a structured logger writing to stderr
func (e *Env) NewLogger() *slog.Logger {
	return e.NewLoggerTo(os.Stderr)
}

// NewLoggerTo creates a structured logger writing to w.
// When LogFormat is "json" records are JSON, otherwise human-readable text.
func (e *Env) NewLoggerTo(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(e.LogLevel)}

	var handler slog.Handler
	if strings.ToLower(e.LogFormat) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// String returns a one-line summary for startup logs
func (e *Env) String() string {
	return fmt.Sprintf("Env{FFmpegPath: %s, FFprobePath: %s, LogFormat: %s, LogLevel: %s}",
		e.FFmpegPath, e.FFprobePath, e.LogFormat, e.LogLevel)
}

// parseLogLevel converts a string log level to slog.Level
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
