package handler

import (
	"log/slog"
	"net/http"

	"github.com/siherrmann/tableViewer/database"
	"github.com/siherrmann/tableViewer/view"

	"github.com/labstack/echo/v4"
)

type TableHandler struct {
	tableDB     database.TableDBHandlerFunctions
	pages       *view.Pages
	logger      *slog.Logger
	development bool
}

func NewTableHandler(tableDB database.TableDBHandlerFunctions, pages *view.Pages, logger *slog.Logger, development bool) *TableHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TableHandler{
		tableDB:     tableDB,
		pages:       pages,
		logger:      logger,
		development: development,
	}
}

// Health check handler
func (m *TableHandler) HealthCheck(c echo.Context) error {
	tables := map[string]int{}
	for _, table := range m.tableDB.SelectAllTables() {
		tables[table.Name()] = table.Len()
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "table-viewer",
		"tables":  tables,
	})
}
