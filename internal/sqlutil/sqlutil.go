// Package sqlutil builds the dynamic parts of parameterized SQL statements.
package sqlutil

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNoData is returned when a partial update is requested without any fields.
var ErrNoData = errors.New("No data")

// Assignment is a single field and the value it should be set to.
type Assignment struct {
	Field string
	Value interface{}
}

// Data is an ordered set of field assignments. Placeholders are numbered in
// slice order.
type Data []Assignment

// Set assigns value to field, replacing an earlier assignment of the same field.
func (d *Data) Set(field string, value interface{}) {
	for i := range *d {
		if (*d)[i].Field == field {
			(*d)[i].Value = value
			return
		}
	}
	*d = append(*d, Assignment{Field: field, Value: value})
}

// Fields returns the assigned field names in order.
func (d Data) Fields() []string {
	fields := make([]string, len(d))
	for i, a := range d {
		fields[i] = a.Field
	}
	return fields
}

// FromMap converts a map into Data with keys in lexical order.
func FromMap(m map[string]interface{}) Data {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	data := make(Data, 0, len(keys))
	for _, k := range keys {
		data = append(data, Assignment{Field: k, Value: m[k]})
	}
	return data
}

// SetClause is the column list of an UPDATE ... SET statement and the values
// bound to its placeholders.
type SetClause struct {
	Columns string
	Values  []interface{}
}

// PartialUpdate renders data as `"col1"=$1, "col2"=$2` with the matching value
// list. columns translates field names to column names; fields without an
// entry are used as-is. columns may be nil.
func PartialUpdate(data Data, columns map[string]string) (*SetClause, error) {
	if len(data) == 0 {
		return nil, ErrNoData
	}

	cols := make([]string, len(data))
	values := make([]interface{}, len(data))
	for i, a := range data {
		col := a.Field
		if mapped, ok := columns[a.Field]; ok && mapped != "" {
			col = mapped
		}
		cols[i] = fmt.Sprintf(`"%s"=%s`, col, Placeholder(i+1))
		values[i] = a.Value
	}

	return &SetClause{
		Columns: strings.Join(cols, ", "),
		Values:  values,
	}, nil
}

// NextPlaceholder returns the placeholder that follows the clause's values,
// for use in a trailing WHERE condition.
func (c *SetClause) NextPlaceholder() string {
	return Placeholder(len(c.Values) + 1)
}

// Placeholder returns the n-th (1-based) positional parameter marker.
func Placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}
