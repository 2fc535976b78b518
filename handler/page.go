package handler

import (
	"errors"

	"github.com/siherrmann/tableViewer/view"

	"github.com/labstack/echo/v4"
)

// HomeView renders the start page
func (m *TableHandler) HomeView(c echo.Context) error {
	return m.renderPage(c, view.PAGE_HOME)
}

// TableView renders the page of the first dataset
func (m *TableHandler) TableView(c echo.Context) error {
	return m.renderPage(c, view.PAGE_TABLE)
}

// Table2View renders the page of the second dataset
func (m *TableHandler) Table2View(c echo.Context) error {
	return m.renderPage(c, view.PAGE_TABLE2)
}

func (m *TableHandler) renderPage(c echo.Context, name string) error {
	page, err := m.pages.Page(name)
	if errors.Is(err, view.ErrPageNotFound) {
		return echo.ErrNotFound.WithInternal(err)
	} else if err != nil {
		return err
	}

	return render(c, page)
}
