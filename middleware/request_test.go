package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/siherrmann/tableViewer/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestContextMiddleware(t *testing.T) {
	m := NewMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)), false)

	var captured model.RequestContext
	e := echo.New()
	e.Use(m.RequestIDMiddleware())
	e.Use(m.RequestContextMiddleware)
	e.GET("/table1", func(c echo.Context) error {
		captured = model.GetRequestContext(c)
		return c.NoContent(http.StatusOK)
	})

	t.Run("Stores url, request id and accepted type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/table1", nil)
		req.Header.Set(echo.HeaderAccept, "text/html")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/table1", captured.Url)
		assert.True(t, captured.WantsHTML)
		assert.NotEmpty(t, captured.RequestID)
		assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), captured.RequestID)
	})

	t.Run("JSON clients do not want HTML", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/table1", nil)
		req.Header.Set(echo.HeaderAccept, "application/json")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, captured.WantsHTML)
	})
}

func TestRecoverMiddleware(t *testing.T) {
	t.Run("Panics become errors for the error handler", func(t *testing.T) {
		m := NewMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)), true)

		var handled error
		e := echo.New()
		e.HTTPErrorHandler = func(err error, c echo.Context) {
			handled = err
			_ = c.NoContent(http.StatusInternalServerError)
		}
		e.Use(m.RecoverMiddleware())
		e.GET("/panic", func(c echo.Context) error { panic("boom") })

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Error(t, handled)
		assert.Contains(t, handled.Error(), "boom")
		assert.Contains(t, handled.Error(), "goroutine")
	})
}
