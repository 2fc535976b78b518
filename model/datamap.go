package model

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// DataMap is the plain Go view of one table row keyed by column name.
type DataMap map[string]interface{}

func (d *DataMap) GetStringByKey(key string) string {
	if value, ok := (*d)[key]; ok && value != nil {
		return fmt.Sprintf("%v", value)
	}
	return ""
}

func (d *DataMap) Has(key string) bool {
	if _, ok := (*d)[key]; ok {
		return true
	}
	return false
}

func (d DataMap) Marshal() ([]byte, error) {
	return json.Marshal(d.ToJSONCompatible())
}

// ToJSONCompatible converts the row into the shape encoding/json produces when decoding
// into map[string]interface{}: numbers become float64, everything else stays as is.
func (d DataMap) ToJSONCompatible() map[string]interface{} {
	compatible := map[string]interface{}{}
	for key, value := range d {
		switch v := value.(type) {
		case int64:
			compatible[key] = float64(v)
		case decimal.Decimal:
			f, _ := v.Float64()
			compatible[key] = f
		default:
			compatible[key] = v
		}
	}
	return compatible
}
