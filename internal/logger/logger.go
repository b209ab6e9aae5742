// Package logger builds the structured logger shared by the commands.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/alextanhongpin/errors/cause"
	"github.com/alextanhongpin/errors/codes"
)

var ErrUnknownFormat = errors.New("logger: unknown format")

const (
	FormatText = "text"
	FormatJSON = "json"
)

// New returns a logger writing to w. The level is one of debug, info, warn
// or error, and the format is text or json.
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		ReplaceAttr: replaceCause,
	}

	switch strings.ToLower(format) {
	case FormatText, "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// replaceCause expands cause errors into their code, name and message.
func replaceCause(_ []string, a slog.Attr) slog.Attr {
	err, ok := a.Value.Any().(error)
	if !ok {
		return a
	}

	var c *cause.Error
	if !errors.As(err, &c) {
		return a
	}

	return slog.Group(a.Key,
		slog.Int("code", codes.HTTP(c.Code)),
		slog.String("name", c.Name),
		slog.String("message", c.Message),
		slog.String("cause", err.Error()),
	)
}
