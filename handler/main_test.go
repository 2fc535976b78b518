package handler

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/siherrmann/tableViewer/database"
	"github.com/siherrmann/tableViewer/model"
	"github.com/siherrmann/tableViewer/storage"
	"github.com/siherrmann/tableViewer/view"

	"github.com/stretchr/testify/require"
)

const (
	testTableCSV  = "id,name\n1,Alice\n2,Bob\n"
	testTable2CSV = "city,population,capital\nOslo,709037,true\nBergen,291940,false\nTromsø,,false\n"
)

func newTestHandler(t *testing.T, development bool) *TableHandler {
	t.Helper()
	fs := storage.NewFilesystemMemory()
	require.NoError(t, fs.Write("table.csv", strings.NewReader(testTableCSV), int64(len(testTableCSV))))
	require.NoError(t, fs.Write("table2.csv", strings.NewReader(testTable2CSV), int64(len(testTable2CSV))))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tdb, err := database.NewTableDBHandler(fs, logger,
		database.TableSource{Name: model.TABLE_ONE, Path: "table.csv"},
		database.TableSource{Name: model.TABLE_TWO, Path: "table2.csv"},
	)
	require.NoError(t, err)

	pages, err := view.NewPages("", false)
	require.NoError(t, err)

	return NewTableHandler(tdb, pages, logger, development)
}
