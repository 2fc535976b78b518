package tableViewer

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/siherrmann/tableViewer/database"
	"github.com/siherrmann/tableViewer/handler"
	"github.com/siherrmann/tableViewer/helper"
	mw "github.com/siherrmann/tableViewer/middleware"
	"github.com/siherrmann/tableViewer/model"
	"github.com/siherrmann/tableViewer/storage"
	"github.com/siherrmann/tableViewer/view"

	"github.com/labstack/echo/v4"
)

const shutdownTimeout = 10 * time.Second

// Sample datasets, also the contents of the memory storage.
//
//go:embed templates/*.csv
var sampleData embed.FS

// TableServer loads both tables, sets up routes and serves until ctx is done.
// Any load failure aborts before the listener is opened.
func TableServer(ctx context.Context, config *helper.Config, logger *slog.Logger) error {
	filesystem, err := CreateFilesystem(config)
	if err != nil {
		return err
	}

	th, err := InitTableHandler(filesystem, config, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize table handler: %w", err)
	}

	e := NewServer(th, config, logger)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting table viewer", "port", config.Port, "mode", config.Mode)
		err := e.Start(":" + config.Port)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down table viewer")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// CreateFilesystem creates the configured dataset storage.
// Memory storage starts with the sample datasets.
func CreateFilesystem(config *helper.Config) (storage.Filesystem, error) {
	filesystem, err := storage.CreateFilesystemFromConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create filesystem: %w", err)
	}

	if config.StorageMode == helper.STORAGE_MODE_MEMORY {
		samples, err := fs.Sub(sampleData, "templates")
		if err != nil {
			return nil, err
		}
		err = storage.SeedFilesystem(filesystem, samples)
		if err != nil {
			return nil, fmt.Errorf("failed to seed memory filesystem: %w", err)
		}
	}
	return filesystem, nil
}

// InitTableHandler loads both tables from the filesystem and parses the page templates.
// It returns the initialized table handler or an error if any table or template fails to load.
func InitTableHandler(filesystem storage.Filesystem, config *helper.Config, logger *slog.Logger) (*handler.TableHandler, error) {
	tableDB, err := database.NewTableDBHandler(
		filesystem,
		logger,
		database.TableSource{Name: model.TABLE_ONE, Path: config.TablePath},
		database.TableSource{Name: model.TABLE_TWO, Path: config.Table2Path},
	)
	if err != nil {
		return nil, err
	}

	pages, err := view.NewPages(config.TemplateDir, config.IsDevelopment())
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	return handler.NewTableHandler(tableDB, pages, logger, config.IsDevelopment()), nil
}

// NewServer creates the Echo instance with all routes of the table viewer.
func NewServer(th *handler.TableHandler, config *helper.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = config.IsDevelopment()
	e.HTTPErrorHandler = th.HandleError

	SetupRoutes(e, th, mw.NewMiddleware(logger, config.IsDevelopment()))
	return e
}
