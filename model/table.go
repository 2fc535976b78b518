package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

type ColumnType string

const (
	COLUMN_TYPE_INTEGER ColumnType = "integer"
	COLUMN_TYPE_NUMBER  ColumnType = "number"
	COLUMN_TYPE_BOOLEAN ColumnType = "boolean"
	COLUMN_TYPE_STRING  ColumnType = "string"
	COLUMN_TYPE_NULL    ColumnType = "null"
)

// Column describes one column of a table with the type decided at load time.
type Column struct {
	Name string     `json:"name"`
	Type ColumnType `json:"type"`
}

// Value is a single typed cell. The zero value is null.
type Value struct {
	Type    ColumnType
	Valid   bool
	Int     int64
	Decimal decimal.Decimal
	Bool    bool
	String  string
}

func NullValue(columnType ColumnType) Value {
	return Value{Type: columnType}
}

func IntValue(i int64) Value {
	return Value{Type: COLUMN_TYPE_INTEGER, Valid: true, Int: i}
}

func DecimalValue(d decimal.Decimal) Value {
	return Value{Type: COLUMN_TYPE_NUMBER, Valid: true, Decimal: d}
}

func BoolValue(b bool) Value {
	return Value{Type: COLUMN_TYPE_BOOLEAN, Valid: true, Bool: b}
}

func StringValue(s string) Value {
	return Value{Type: COLUMN_TYPE_STRING, Valid: true, String: s}
}

// Interface returns the plain Go value of the cell (int64, decimal.Decimal, bool, string or nil).
func (v Value) Interface() any {
	if !v.Valid {
		return nil
	}
	switch v.Type {
	case COLUMN_TYPE_INTEGER:
		return v.Int
	case COLUMN_TYPE_NUMBER:
		return v.Decimal
	case COLUMN_TYPE_BOOLEAN:
		return v.Bool
	case COLUMN_TYPE_STRING:
		return v.String
	}
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	switch v.Type {
	case COLUMN_TYPE_INTEGER:
		return strconv.AppendInt(nil, v.Int, 10), nil
	case COLUMN_TYPE_NUMBER:
		return marshalDecimal(v.Decimal), nil
	case COLUMN_TYPE_BOOLEAN:
		return strconv.AppendBool(nil, v.Bool), nil
	case COLUMN_TYPE_STRING:
		return json.Marshal(v.String)
	}
	return nil, fmt.Errorf("unknown column type %q", v.Type)
}

// Decimals with an exponent beyond this are written in exponent notation,
// so the output stays close to the length of the source cell.
const maxPlainExponent = 20

// marshalDecimal writes d as a bare JSON number. decimal.Decimal quotes itself by default.
func marshalDecimal(d decimal.Decimal) []byte {
	exp := d.Exponent()
	if exp <= maxPlainExponent && exp >= -maxPlainExponent {
		return []byte(d.String())
	}
	return []byte(d.Coefficient().String() + "e" + strconv.FormatInt(int64(exp), 10))
}

// Table is an immutable, ordered set of rows sharing one column schema.
type Table struct {
	name    string
	columns []Column
	rows    [][]Value
}

// NewTable creates a table. Every row must hold exactly one value per column.
func NewTable(name string, columns []Column, rows [][]Value) (*Table, error) {
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d has %d values, expected %d", i, len(row), len(columns))
		}
	}
	return &Table{
		name:    name,
		columns: columns,
		rows:    rows,
	}, nil
}

func (t *Table) Name() string {
	return t.name
}

func (t *Table) Len() int {
	return len(t.rows)
}

// Columns returns a copy of the column schema.
func (t *Table) Columns() []Column {
	columns := make([]Column, len(t.columns))
	copy(columns, t.columns)
	return columns
}

// Row returns the row at index i as a DataMap.
func (t *Table) Row(i int) DataMap {
	dataMap := DataMap{}
	for j, column := range t.columns {
		dataMap[column.Name] = t.rows[i][j].Interface()
	}
	return dataMap
}

// Value returns the cell at row i, column j.
func (t *Table) Value(i, j int) Value {
	return t.rows[i][j]
}

// MarshalJSON writes the table as an array of row objects. Keys keep the column order.
func (t *Table) MarshalJSON() ([]byte, error) {
	keys := make([][]byte, len(t.columns))
	for j, column := range t.columns {
		key, err := json.Marshal(column.Name)
		if err != nil {
			return nil, err
		}
		keys[j] = key
	}

	buf := bytes.Buffer{}
	buf.WriteByte('[')
	for i, row := range t.rows {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for j, value := range row {
			if j > 0 {
				buf.WriteByte(',')
			}
			buf.Write(keys[j])
			buf.WriteByte(':')
			b, err := value.MarshalJSON()
			if err != nil {
				return nil, fmt.Errorf("row %d column %s: %w", i, t.columns[j].Name, err)
			}
			buf.Write(b)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// Identifiers of the two datasets served by the application.
const (
	TABLE_ONE = "table"
	TABLE_TWO = "table2"
)
