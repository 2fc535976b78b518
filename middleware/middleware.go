package middleware

import (
	"log/slog"
)

type Middleware struct {
	logger      *slog.Logger
	development bool
}

func NewMiddleware(logger *slog.Logger, development bool) *Middleware {
	if logger == nil {
		logger = slog.Default()
	}

	return &Middleware{
		logger:      logger,
		development: development,
	}
}
