package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueMarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{"Integer", IntValue(-42), `-42`},
		{"Decimal", DecimalValue(decimal.RequireFromString("3.25")), `3.25`},
		{"Decimal trailing zeros", DecimalValue(decimal.RequireFromString("1.50")), `1.5`},
		{"Huge exponent", DecimalValue(decimal.RequireFromString("1E400")), `1e400`},
		{"Tiny exponent", DecimalValue(decimal.RequireFromString("1.5e-30")), `15e-31`},
		{"Large plain decimal", DecimalValue(decimal.RequireFromString("1.5e20")), `150000000000000000000`},
		{"Boolean", BoolValue(true), `true`},
		{"String", StringValue(`say "hi"`), `"say \"hi\""`},
		{"Null integer", NullValue(COLUMN_TYPE_INTEGER), `null`},
		{"Null column", NullValue(COLUMN_TYPE_NULL), `null`},
		{"Zero value", Value{}, `null`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, err := test.value.MarshalJSON()
			require.NoError(t, err)
			assert.Equal(t, test.expected, string(b))
		})
	}

	t.Run("Unknown type fails", func(t *testing.T) {
		_, err := Value{Type: "date", Valid: true}.MarshalJSON()
		assert.Error(t, err)
	})
}

func TestNewTable(t *testing.T) {
	columns := []Column{{Name: "id", Type: COLUMN_TYPE_INTEGER}, {Name: "name", Type: COLUMN_TYPE_STRING}}

	t.Run("Rejects rows with a wrong number of values", func(t *testing.T) {
		_, err := NewTable("t", columns, [][]Value{{IntValue(1)}})
		assert.Error(t, err)
	})

	t.Run("Columns returns a copy", func(t *testing.T) {
		table, err := NewTable("t", columns, nil)
		require.NoError(t, err)

		copied := table.Columns()
		copied[0].Name = "changed"
		assert.Equal(t, "id", table.Columns()[0].Name)
	})
}

func TestTableMarshalJSON(t *testing.T) {
	t.Run("Keeps column and row order", func(t *testing.T) {
		table, err := NewTable("t",
			[]Column{{Name: "name", Type: COLUMN_TYPE_STRING}, {Name: "id", Type: COLUMN_TYPE_INTEGER}},
			[][]Value{
				{StringValue("Alice"), IntValue(1)},
				{StringValue("Bob"), IntValue(2)},
			},
		)
		require.NoError(t, err)

		b, err := json.Marshal(table)
		require.NoError(t, err)
		assert.Equal(t, `[{"name":"Alice","id":1},{"name":"Bob","id":2}]`, string(b))
	})

	t.Run("Empty table is an empty array", func(t *testing.T) {
		table, err := NewTable("t", []Column{{Name: "id", Type: COLUMN_TYPE_NULL}}, nil)
		require.NoError(t, err)

		b, err := table.MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, `[]`, string(b))
	})

	t.Run("Rows round trip through JSON", func(t *testing.T) {
		table, err := NewTable("t",
			[]Column{
				{Name: "id", Type: COLUMN_TYPE_INTEGER},
				{Name: "score", Type: COLUMN_TYPE_NUMBER},
				{Name: "active", Type: COLUMN_TYPE_BOOLEAN},
				{Name: "note", Type: COLUMN_TYPE_STRING},
			},
			[][]Value{
				{IntValue(1), DecimalValue(decimal.RequireFromString("0.5")), BoolValue(true), StringValue("a")},
				{IntValue(2), NullValue(COLUMN_TYPE_NUMBER), BoolValue(false), NullValue(COLUMN_TYPE_STRING)},
			},
		)
		require.NoError(t, err)

		b, err := table.MarshalJSON()
		require.NoError(t, err)

		var rows []map[string]interface{}
		require.NoError(t, json.Unmarshal(b, &rows))
		require.Len(t, rows, table.Len())
		for i, row := range rows {
			assert.Equal(t, table.Row(i).ToJSONCompatible(), row)
		}
	})
}

func TestDataMap(t *testing.T) {
	dataMap := DataMap{"id": int64(7), "name": "Alice", "missing": nil}

	assert.Equal(t, "7", dataMap.GetStringByKey("id"))
	assert.Equal(t, "", dataMap.GetStringByKey("missing"))
	assert.Equal(t, "", dataMap.GetStringByKey("unknown"))
	assert.True(t, dataMap.Has("missing"))
	assert.False(t, dataMap.Has("unknown"))

	b, err := dataMap.Marshal()
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"name":"Alice","missing":null}`, string(b))
}

func TestAcceptsHTML(t *testing.T) {
	assert.True(t, AcceptsHTML("text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"))
	assert.True(t, AcceptsHTML("text/html; q=0.5"))
	assert.False(t, AcceptsHTML("application/json"))
	assert.False(t, AcceptsHTML(""))
	assert.False(t, AcceptsHTML("*/*"))
}

func TestMarshalDecimalIsValidJSON(t *testing.T) {
	for _, cell := range []string{"1E400", "-2.5e-300", "7e21", "0.1"} {
		b := marshalDecimal(decimal.RequireFromString(cell))

		assert.True(t, json.Valid(b), cell)
		assert.LessOrEqual(t, len(b), len(cell)+2, cell)
	}
}
