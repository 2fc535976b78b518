package database

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/siherrmann/tableViewer/model"
	"github.com/siherrmann/tableViewer/storage"

	qh "github.com/siherrmann/queuer/helper"
)

var ErrTableNotFound = errors.New("table not found")

// TableSource names a table and the file it is loaded from.
type TableSource struct {
	Name string
	Path string
}

// TableDBHandlerFunctions defines the interface for table lookups.
type TableDBHandlerFunctions interface {
	SelectTable(name string) (*model.Table, error)
	SelectAllTables() []*model.Table
}

// TableDBHandler implements TableDBHandlerFunctions and owns the loaded tables
// for the lifetime of the process. Tables are never modified after loading,
// so the handler is safe for concurrent use without locking.
type TableDBHandler struct {
	tables map[string]*model.Table
	order  []string
}

// NewTableDBHandler loads every source from the filesystem.
// It fails on the first table that can not be loaded, no partial set is returned.
func NewTableDBHandler(filesystem storage.Filesystem, logger *slog.Logger, sources ...TableSource) (*TableDBHandler, error) {
	if filesystem == nil {
		return nil, qh.NewError("filesystem validation", fmt.Errorf("filesystem is nil"))
	}
	if logger == nil {
		logger = slog.Default()
	}

	tableDBHandler := &TableDBHandler{
		tables: map[string]*model.Table{},
	}

	for _, source := range sources {
		if _, ok := tableDBHandler.tables[source.Name]; ok {
			return nil, qh.NewError("table source validation", fmt.Errorf("duplicate table name %s", source.Name))
		}

		table, err := LoadTable(filesystem, source.Name, source.Path)
		if err != nil {
			return nil, err
		}

		columnTypes := []string{}
		for _, column := range table.Columns() {
			columnTypes = append(columnTypes, fmt.Sprintf("%s:%s", column.Name, column.Type))
		}
		logger.Info("Table loaded", "table", source.Name, "path", source.Path, "rows", table.Len(), "columns", columnTypes)

		tableDBHandler.tables[source.Name] = table
		tableDBHandler.order = append(tableDBHandler.order, source.Name)
	}

	return tableDBHandler, nil
}

// SelectTable returns the table with the given name.
func (r *TableDBHandler) SelectTable(name string) (*model.Table, error) {
	table, ok := r.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, name)
	}
	return table, nil
}

// SelectAllTables returns all tables in load order.
func (r *TableDBHandler) SelectAllTables() []*model.Table {
	tables := make([]*model.Table, 0, len(r.order))
	for _, name := range r.order {
		tables = append(tables, r.tables[name])
	}
	return tables
}
