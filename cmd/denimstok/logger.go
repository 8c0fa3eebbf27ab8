package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// splitHandler sends records at ERROR and above to one handler and
// everything else to another. Records below INFO are dropped.
type splitHandler struct {
	info slog.Handler
	err  slog.Handler
}

func (h *splitHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo
}

func (h *splitHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		return h.err.Handle(ctx, r)
	}
	return h.info.Handle(ctx, r)
}

func (h *splitHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &splitHandler{info: h.info.WithAttrs(attrs), err: h.err.WithAttrs(attrs)}
}

func (h *splitHandler) WithGroup(name string) slog.Handler {
	return &splitHandler{info: h.info.WithGroup(name), err: h.err.WithGroup(name)}
}

// setupLogger installs the process-wide slog default: INFO and WARN on
// stdout, ERROR on stderr, and everything duplicated into logPath when
// one is given. The returned func closes the log file and is nil when
// no file was opened.
func setupLogger(logPath string) (func(), error) {
	infoW, errW := io.Writer(os.Stdout), io.Writer(os.Stderr)

	var cleanup func()
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		infoW = io.MultiWriter(infoW, f)
		errW = io.MultiWriter(errW, f)
		cleanup = func() { f.Close() }
	}

	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	slog.SetDefault(slog.New(&splitHandler{
		info: slog.NewTextHandler(infoW, opts),
		err:  slog.NewTextHandler(errW, opts),
	}))
	return cleanup, nil
}
