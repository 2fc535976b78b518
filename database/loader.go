package database

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/siherrmann/tableViewer/helper"
	"github.com/siherrmann/tableViewer/model"
	"github.com/siherrmann/tableViewer/storage"

	"github.com/shopspring/decimal"
)

var (
	ErrSourceMissing   = errors.New("source file missing")
	ErrSourceMalformed = errors.New("source file malformed")
)

// LoadError is returned when a table could not be loaded from its source file.
type LoadError struct {
	Table string
	Path  string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load table %s from %s: %v", e.Table, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

const utf8BOM = "\xef\xbb\xbf"

// Cells holding one of these are missing values in every column type.
var naValues = map[string]struct{}{
	"":     {},
	"NA":   {},
	"N/A":  {},
	"n/a":  {},
	"NaN":  {},
	"nan":  {},
	"-NaN": {},
	"null": {},
	"NULL": {},
	"None": {},
	"#N/A": {},
	"<NA>": {},
}

var trueValues = map[string]struct{}{"true": {}, "True": {}, "TRUE": {}}
var falseValues = map[string]struct{}{"false": {}, "False": {}, "FALSE": {}}

// LoadTable reads the delimited text file at path from the filesystem into a table.
// Column names come from the header line, column types are inferred per column.
func LoadTable(filesystem storage.Filesystem, name string, path string) (*model.Table, error) {
	file, err := filesystem.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Table: name, Path: path, Err: fmt.Errorf("%w: %w", ErrSourceMissing, err)}
		}
		return nil, &LoadError{Table: name, Path: path, Err: err}
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	bom, err := reader.Peek(len(utf8BOM))
	if err == nil && string(bom) == utf8BOM {
		_, _ = reader.Discard(len(utf8BOM))
	}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = helper.GetDelimiter(path)
	records, err := csvReader.ReadAll()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, &LoadError{Table: name, Path: path, Err: fmt.Errorf("%w: %w", ErrSourceMalformed, err)}
		}
		return nil, &LoadError{Table: name, Path: path, Err: err}
	}
	if len(records) == 0 {
		return nil, &LoadError{Table: name, Path: path, Err: fmt.Errorf("%w: missing header line", ErrSourceMalformed)}
	}

	header := normalizeHeader(records[0])
	body := records[1:]

	columns := make([]model.Column, len(header))
	for j, columnName := range header {
		cells := make([]string, len(body))
		for i, record := range body {
			cells[i] = record[j]
		}
		columns[j] = model.Column{
			Name: columnName,
			Type: InferColumnType(cells),
		}
	}

	rows := make([][]model.Value, len(body))
	for i, record := range body {
		row := make([]model.Value, len(columns))
		for j, cell := range record {
			value, err := ParseValue(cell, columns[j].Type)
			if err != nil {
				return nil, &LoadError{Table: name, Path: path, Err: fmt.Errorf("%w: line %d column %s: %w", ErrSourceMalformed, i+2, columns[j].Name, err)}
			}
			row[j] = value
		}
		rows[i] = row
	}

	table, err := model.NewTable(name, columns, rows)
	if err != nil {
		return nil, &LoadError{Table: name, Path: path, Err: fmt.Errorf("%w: %w", ErrSourceMalformed, err)}
	}
	return table, nil
}

// normalizeHeader names empty header cells "Unnamed: <index>" and suffixes
// repeated names with ".<n>" so every column name is unique.
func normalizeHeader(header []string) []string {
	names := make([]string, len(header))
	counts := map[string]int{}
	used := map[string]bool{}
	for i, columnName := range header {
		if columnName == "" {
			columnName = fmt.Sprintf("Unnamed: %d", i)
		}
		base := columnName
		for used[columnName] {
			counts[base]++
			columnName = fmt.Sprintf("%s.%d", base, counts[base])
		}
		used[columnName] = true
		names[i] = columnName
	}
	return names
}

func isNull(cell string) bool {
	_, ok := naValues[cell]
	return ok
}

// InferColumnType decides the type of a column from its cells:
// integer, then number, then boolean, else string. Null cells are ignored,
// a column of only null cells is null.
func InferColumnType(cells []string) model.ColumnType {
	isInteger, isNumber, isBoolean := true, true, true
	nonNull := 0
	for _, cell := range cells {
		if isNull(cell) {
			continue
		}
		nonNull++
		trimmed := strings.TrimSpace(cell)
		if isInteger {
			if _, err := strconv.ParseInt(trimmed, 10, 64); err != nil {
				isInteger = false
			}
		}
		if isNumber && !isInteger {
			if _, err := decimal.NewFromString(trimmed); err != nil {
				isNumber = false
			}
		}
		if isBoolean {
			_, t := trueValues[trimmed]
			_, f := falseValues[trimmed]
			isBoolean = t || f
		}
		if !isNumber && !isBoolean {
			return model.COLUMN_TYPE_STRING
		}
	}

	switch {
	case nonNull == 0:
		return model.COLUMN_TYPE_NULL
	case isInteger:
		return model.COLUMN_TYPE_INTEGER
	case isNumber:
		return model.COLUMN_TYPE_NUMBER
	case isBoolean:
		return model.COLUMN_TYPE_BOOLEAN
	}
	return model.COLUMN_TYPE_STRING
}

// ParseValue converts one cell into a value of the given column type.
func ParseValue(cell string, columnType model.ColumnType) (model.Value, error) {
	if isNull(cell) || columnType == model.COLUMN_TYPE_NULL {
		return model.NullValue(columnType), nil
	}

	trimmed := strings.TrimSpace(cell)
	switch columnType {
	case model.COLUMN_TYPE_INTEGER:
		i, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return model.Value{}, err
		}
		return model.IntValue(i), nil
	case model.COLUMN_TYPE_NUMBER:
		d, err := decimal.NewFromString(trimmed)
		if err != nil {
			return model.Value{}, err
		}
		return model.DecimalValue(d), nil
	case model.COLUMN_TYPE_BOOLEAN:
		_, t := trueValues[trimmed]
		_, f := falseValues[trimmed]
		if !t && !f {
			return model.Value{}, fmt.Errorf("invalid boolean %q", cell)
		}
		return model.BoolValue(t), nil
	case model.COLUMN_TYPE_STRING:
		return model.StringValue(cell), nil
	}
	return model.Value{}, fmt.Errorf("unknown column type %q", columnType)
}
