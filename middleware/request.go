package middleware

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/siherrmann/tableViewer/model"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RequestIDMiddleware sets a UUID request id on every response.
func (r *Middleware) RequestIDMiddleware() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	})
}

// RequestContextMiddleware stores the request context read by the error handler.
func (r *Middleware) RequestContextMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		rc := model.GetRequestContext(c)

		rc.Url = c.Request().URL.Path
		rc.RequestID = c.Response().Header().Get(echo.HeaderXRequestID)
		rc.WantsHTML = model.AcceptsHTML(c.Request().Header.Get(echo.HeaderAccept))

		model.SetRequestContext(c, rc)

		return next(c)
	}
}

// RequestLoggerMiddleware logs one line per request. Errors are handed to the
// error handler first so the logged status is the one sent to the client.
func (r *Middleware) RequestLoggerMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= 500 {
				level = slog.LevelError
			}
			r.logger.LogAttrs(context.Background(), level, "Request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			)
			return nil
		},
	})
}

// RecoverMiddleware turns panics into errors. In development mode the stack
// trace is attached to the error so it ends up in the response.
func (r *Middleware) RecoverMiddleware() echo.MiddlewareFunc {
	return middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			r.logger.Error("Recovered from panic", "url", c.Request().URL.Path, "error", err, "stack", string(stack))
			if r.development {
				return fmt.Errorf("%w\n%s", err, stack)
			}
			return err
		},
	})
}
