package xslog

import (
	"encoding"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Level is a log level as written in configuration.
type Level string

var _ encoding.TextUnmarshaler = (*Level)(nil)

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Default keeps the CLI quiet unless something needs attention.
const Default = LevelWarn

var levels = map[string]struct {
	level Level
	slog  slog.Level
}{
	"debug":   {LevelDebug, slog.LevelDebug},
	"info":    {LevelInfo, slog.LevelInfo},
	"warn":    {LevelWarn, slog.LevelWarn},
	"warning": {LevelWarn, slog.LevelWarn},
	"error":   {LevelError, slog.LevelError},
}

func Parse(s string) (Level, error) {
	l, ok := levels[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("invalid log level: %q (valid: debug, info, warn, error)", s)
	}
	return l.level, nil
}

// UnmarshalText lets config decoders read a Level from the environment.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ToSlog maps l onto slog; unknown levels read as info.
func (l Level) ToSlog() slog.Level {
	if v, ok := levels[string(l)]; ok {
		return v.slog
	}
	return slog.LevelInfo
}

func (l Level) String() string { return string(l) }

// NewLogger returns a JSON logger writing records at or above level to w.
func NewLogger(w io.Writer, level Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level.ToSlog()}))
}
