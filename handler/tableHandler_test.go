package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	handler := newTestHandler(t, false)
	e := echo.New()

	t.Run("Should return healthy status with row counts", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.HealthCheck(c)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Status  string         `json:"status"`
			Service string         `json:"service"`
			Tables  map[string]int `json:"tables"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "healthy", body.Status)
		assert.Equal(t, "table-viewer", body.Service)
		assert.Equal(t, map[string]int{"table": 2, "table2": 3}, body.Tables)
	})
}
