package main

import (
	"io"

	"github.com/surrealdb/repeater.go/pkg/logger"
	logslog "github.com/surrealdb/repeater.go/pkg/logger/slog"
)

// newLogger builds the configured backend writing to w. The returned func
// flushes and releases it.
func newLogger(cfg LogConfig, w io.Writer) (logger.Logger, func(), error) {
	level, err := logger.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	switch cfg.Backend {
	case "slog":
		l, err := logslog.NewFormat(w, cfg.Format, level)
		if err != nil {
			return nil, nil, err
		}
		return l, func() {}, nil

	case "zap":
		l, err := logger.NewZap(cfg.Format, level)
		if err != nil {
			return nil, nil, err
		}
		return l, l.Sync, nil

	case "zerolog":
		build := logger.New().FromBuffer(w).WithLevel(level)
		if cfg.File != "" {
			build = build.FromPath(cfg.File)
		}
		l, err := build.Make()
		if err != nil {
			return nil, nil, err
		}
		return l, func() { _ = l.Close() }, nil
	}
	return logger.Nop(), func() {}, nil
}
