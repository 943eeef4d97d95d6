package normalize

import (
	"bytes"
	"encoding/json"
)

// Row is one result row with its column order preserved.
type Row struct {
	Columns []string
	Values  []any
}

// NewRow pairs columns with values. Missing trailing values are nil.
func NewRow(columns []string, values []any) Row {
	row := Row{Columns: columns, Values: make([]any, len(columns))}
	copy(row.Values, values)
	return row
}

// Get returns the value for column, or nil when the column is absent.
func (r Row) Get(column string) any {
	for i, c := range r.Columns {
		if c == column {
			return r.Values[i]
		}
	}
	return nil
}

// Map returns the row as a plain map. Column order is lost.
func (r Row) Map() map[string]any {
	m := make(map[string]any, len(r.Columns))
	for i, c := range r.Columns {
		m[c] = r.Values[i]
	}
	return m
}

func (r Row) normalized() Row {
	out := Row{Columns: r.Columns, Values: make([]any, len(r.Values))}
	for i, v := range r.Values {
		out.Values[i] = Value(v)
	}
	return out
}

// MarshalJSON writes the row as an object with keys in column order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(Value(r.Values[i]))
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
