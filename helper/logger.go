package helper

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	qh "github.com/siherrmann/queuer/helper"
	slogseq "github.com/sokkalf/slog-seq"
)

// multiHandler forwards log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}

// ParseLevel parses a level name like "debug" or "WARN", falling back to info.
func ParseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// NewLogger creates the process logger and returns a cleanup function.
// Terminals get the pretty handler, everything else gets JSON lines.
// With a Seq URL configured records are sent to Seq as well.
func NewLogger(config *Config) (*slog.Logger, func()) {
	level := ParseLevel(config.LogLevel)

	var consoleHandler slog.Handler
	if isatty.IsTerminal(os.Stdout.Fd()) {
		consoleHandler = qh.NewPrettyHandler(os.Stdout, qh.PrettyHandlerOptions{
			SlogOpts: slog.HandlerOptions{
				Level: level,
			},
		})
	} else {
		consoleHandler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level:     level,
			AddSource: config.IsDevelopment(),
		})
	}

	if config.SeqURL == "" {
		return slog.New(consoleHandler), func() {}
	}

	_, seqHandler := slogseq.NewLogger(
		config.SeqURL,
		slogseq.WithBatchSize(10),
		slogseq.WithFlushInterval(time.Second),
		slogseq.WithHandlerOptions(&slog.HandlerOptions{
			Level: level,
		}),
	)
	if seqHandler == nil {
		return slog.New(consoleHandler), func() {}
	}

	logger := slog.New(&multiHandler{
		handlers: []slog.Handler{consoleHandler, seqHandler},
	})
	return logger, func() {
		seqHandler.Close()
	}
}
