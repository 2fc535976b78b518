package tableViewer

import (
	"net/http"

	"github.com/siherrmann/tableViewer/handler"
	mw "github.com/siherrmann/tableViewer/middleware"
	"github.com/siherrmann/tableViewer/view"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// SetupRoutes configures all routes of the table viewer
func SetupRoutes(e *echo.Echo, h *handler.TableHandler, m *mw.Middleware) {
	// Middleware
	e.Use(m.RequestIDMiddleware())
	e.Use(m.RequestContextMiddleware)
	e.Use(m.RequestLoggerMiddleware())
	e.Use(m.RecoverMiddleware())
	e.Use(middleware.Secure())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodHead},
	}))
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))

	readMethods := []string{http.MethodGet, http.MethodHead}

	// View routes
	e.Match(readMethods, "/", h.HomeView)
	e.Match(readMethods, "/table1", h.TableView)
	e.Match(readMethods, "/table2", h.Table2View)

	// Data routes
	e.Match(readMethods, "/table-data", h.GetTableData)
	e.Match(readMethods, "/table2-data", h.GetTable2Data)

	e.Match(readMethods, "/health", h.HealthCheck)

	staticFS := view.StaticFS()
	e.Match(readMethods, "/static/*", echo.StaticDirectoryHandler(staticFS, false))
	e.Match(readMethods, "/image/*", echo.StaticDirectoryHandler(echo.MustSubFS(staticFS, "image"), false))
}
