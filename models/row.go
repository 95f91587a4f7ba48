package models

import (
	"bytes"
	"encoding/json"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Row - одна строка CSV: колонка -> значение, в порядке колонок файла.
type Row struct {
	*orderedmap.OrderedMap[string, string]
}

func NewRow() Row {
	return Row{orderedmap.New[string, string]()}
}

// RowFromRecord собирает строку по заголовку; недостающие поля пустые, лишние отбрасываются.
func RowFromRecord(header, record []string) Row {
	row := NewRow()
	for i, column := range header {
		value := ""
		if i < len(record) {
			value = record[i]
		}
		row.Set(column, value)
	}
	return row
}

// Value возвращает значение колонки или "" если колонки нет.
func (r Row) Value(column string) string {
	if r.OrderedMap == nil {
		return ""
	}
	v, _ := r.Get(column)
	return v
}

func (r Row) RowID() string {
	return r.Value(RowIDColumn)
}

// Columns - имена колонок в порядке вставки.
func (r Row) Columns() []string {
	if r.OrderedMap == nil {
		return nil
	}
	columns := make([]string, 0, r.Len())
	for pair := r.Oldest(); pair != nil; pair = pair.Next() {
		columns = append(columns, pair.Key)
	}
	return columns
}

func (r Row) MarshalJSON() ([]byte, error) {
	if r.OrderedMap == nil {
		return []byte("{}"), nil
	}
	return r.OrderedMap.MarshalJSON()
}

// UnmarshalJSON принимает любые скаляры: браузер шлёт оценки числами.
func (r *Row) UnmarshalJSON(data []byte) error {
	raw := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(data, raw); err != nil {
		return err
	}
	row := NewRow()
	for pair := raw.Oldest(); pair != nil; pair = pair.Next() {
		var value any
		if len(pair.Value) > 0 {
			if err := decodeJSON(pair.Value, &value); err != nil {
				return err
			}
		}
		row.Set(pair.Key, StringValue(value))
	}
	*r = row
	return nil
}

// decodeJSON сохраняет числа как json.Number, чтобы длинные идентификаторы
// не теряли цифры.
func decodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

// StringValue приводит JSON-значение к строке так, как оно попадёт в CSV.
func StringValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case json.Number:
		return val.String()
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
