// Package slog adapts log/slog to the editor's Logger interface.
package slog

import (
	"fmt"
	"io"
	"log/slog"
)

type SlogHandler struct {
	logger *slog.Logger
}

func New(h slog.Handler) *SlogHandler {
	logger := slog.New(h)
	return &SlogHandler{logger: logger}
}

// NewFormat returns a handler writing "json" or "text" lines to w.
func NewFormat(w io.Writer, format string, level slog.Level) (*SlogHandler, error) {
	opts := &slog.HandlerOptions{Level: level}
	switch format {
	case "json":
		return New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return New(slog.NewTextHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("invalid log format: %s", format)
}

func (handler *SlogHandler) Error(msg string, args ...any) {
	handler.logger.Error(msg, args...)
}

func (handler *SlogHandler) Warn(msg string, args ...any) {
	handler.logger.Warn(msg, args...)
}

func (handler *SlogHandler) Info(msg string, args ...any) {
	handler.logger.Info(msg, args...)
}

func (handler *SlogHandler) Debug(msg string, args ...any) {
	handler.logger.Debug(msg, args...)
}
