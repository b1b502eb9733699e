package records

import (
	"strconv"
	"strings"
)

// Record is one row from a logical sheet: an ordered mapping from column
// label to cell value. Source tables carry no fixed schema, so callers locate
// semantic fields by role (see resolve.go) rather than by exact label. Key
// enumeration order is the column order the loader produced; role resolution
// depends on it, so it is preserved.
type Record struct {
	fields []Field
	index  map[string]int
}

// Field is a single labeled cell.
type Field struct {
	Key   string
	Value any
}

// Set appends a field, or overwrites the value if the key already exists.
// First-set order is retained.
func (r *Record) Set(key string, value any) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[key]; ok {
		r.fields[i].Value = value
		return
	}
	r.index[key] = len(r.fields)
	r.fields = append(r.fields, Field{Key: key, Value: value})
}

// Get returns the value stored under the exact key.
func (r *Record) Get(key string) (any, bool) {
	if r.index == nil {
		return nil, false
	}
	i, ok := r.index[key]
	if !ok {
		return nil, false
	}
	return r.fields[i].Value, true
}

// Fields returns the labeled cells in column order.
func (r *Record) Fields() []Field {
	return r.fields
}

// Len reports the number of columns.
func (r *Record) Len() int {
	return len(r.fields)
}

// Stringify renders a cell value for joining and equality checks: strings are
// trimmed, numbers are formatted without a trailing fraction, nil is empty.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// Float parses a cell value as a float. Non-numeric cells contribute 0;
// bad data never becomes an error at this layer.
func Float(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
