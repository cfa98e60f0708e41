// Package logs builds the slog loggers used around the library. The
// library itself stays silent; callers pull a logger from here and attach
// it to their own pipelines.
package logs

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/kelseyhightower/envconfig"

	"github.com/jonahhill/xone/internal/options"
)

// envPrefix namespaces the variables FromEnv reads, e.g. XONE_LOG_LEVEL.
const envPrefix = "XONE"

// Config controls handler construction.
type Config struct {
	Level     string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	Format    string `envconfig:"LOG_FORMAT" default:"text" validate:"oneof=text json"`
	AddSource bool   `envconfig:"LOG_SOURCE" default:"false"`
}

// FromEnv builds a Config from XONE_* environment variables, filling
// anything unset from the tag defaults. Level and Format are read
// case-insensitively.
func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read log config: %w", err)
	}
	cfg.Level = strings.ToLower(cfg.Level)
	cfg.Format = strings.ToLower(cfg.Format)
	if err := options.Prepare(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// New builds a logger writing to w, os.Stderr when w is nil.
func New(cfg Config, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: cfg.AddSource,
	}
	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

var (
	defaultLogger *slog.Logger
	defaultOnce   sync.Once
)

// Default returns the process-wide logger, built from the environment on
// first use. A broken environment falls back to the stock config rather
// than failing.
func Default() *slog.Logger {
	defaultOnce.Do(func() {
		cfg, err := FromEnv()
		if err != nil {
			cfg = Config{Level: "info", Format: "text"}
		}
		defaultLogger = New(cfg, os.Stderr)
	})
	return defaultLogger
}

// ResetForTesting clears the process-wide logger so tests can rebuild it
// under a fresh environment. Not for production use.
func ResetForTesting() {
	defaultLogger = nil
	defaultOnce = sync.Once{}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
