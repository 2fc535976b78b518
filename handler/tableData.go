package handler

import (
	"fmt"
	"net/http"

	"github.com/siherrmann/tableViewer/model"

	"github.com/labstack/echo/v4"
)

// GetTableData returns all rows of the first dataset as a JSON array
func (m *TableHandler) GetTableData(c echo.Context) error {
	return m.renderTable(c, model.TABLE_ONE)
}

// GetTable2Data returns all rows of the second dataset as a JSON array
func (m *TableHandler) GetTable2Data(c echo.Context) error {
	return m.renderTable(c, model.TABLE_TWO)
}

func (m *TableHandler) renderTable(c echo.Context, name string) error {
	table, err := m.tableDB.SelectTable(name)
	if err != nil {
		return fmt.Errorf("failed to select table %s: %w", name, err)
	}

	data, err := table.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to serialize table %s: %w", name, err)
	}

	return c.JSONBlob(http.StatusOK, data)
}
