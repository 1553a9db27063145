// Package output provides output formatting for idmint-cli.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
	"text/tabwriter"
)

// TableFormatter formats data as an aligned text table.
type TableFormatter struct {
	Wide      bool
	NoHeaders bool
}

// Format renders data as a table. Slices of structs become one row per
// element, single structs and maps become FIELD/VALUE pairs, and a
// prepared *Table renders as-is. Anything else falls back to JSON.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	if data == nil {
		return nil
	}

	if t, ok := data.(*Table); ok {
		return t.render(w, f.NoHeaders)
	}

	t, ok := f.toTable(data)
	if !ok {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}
	return t.render(w, f.NoHeaders)
}

func (f *TableFormatter) toTable(data any) (*Table, bool) {
	v := reflect.ValueOf(data)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return f.sliceTable(v)
	case reflect.Struct:
		return kvTable(v), true
	case reflect.Map:
		return mapTable(v), true
	default:
		return nil, false
	}
}

// sliceTable renders a slice of structs with one column per exported
// field. Fields tagged `table:"-"` are skipped; `table:"wide"` fields
// appear only in wide mode.
func (f *TableFormatter) sliceTable(v reflect.Value) (*Table, bool) {
	if v.Len() == 0 {
		return &Table{}, true
	}

	first := reflect.Indirect(v.Index(0))
	if first.Kind() != reflect.Struct {
		t := &Table{Headers: []string{"VALUE"}}
		for i := 0; i < v.Len(); i++ {
			t.AddRow(cellString(reflect.Indirect(v.Index(i))))
		}
		return t, true
	}

	var cols []int
	var headers []string
	st := first.Type()
	for i := 0; i < st.NumField(); i++ {
		field := st.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get("table")
		if tag == "-" || (tag == "wide" && !f.Wide) {
			continue
		}
		cols = append(cols, i)
		headers = append(headers, headerName(field))
	}

	t := &Table{Headers: headers}
	for i := 0; i < v.Len(); i++ {
		elem := reflect.Indirect(v.Index(i))
		row := make([]string, len(cols))
		for j, idx := range cols {
			row[j] = cellString(elem.Field(idx))
		}
		t.Rows = append(t.Rows, row)
	}
	return t, true
}

func kvTable(v reflect.Value) *Table {
	t := &Table{Headers: []string{"FIELD", "VALUE"}}
	st := v.Type()
	for i := 0; i < st.NumField(); i++ {
		field := st.Field(i)
		if !field.IsExported() || field.Tag.Get("table") == "-" {
			continue
		}
		t.AddRow(headerName(field), cellString(v.Field(i)))
	}
	return t
}

func mapTable(v reflect.Value) *Table {
	t := &Table{Headers: []string{"KEY", "VALUE"}}
	keys := make([]string, 0, v.Len())
	byKey := make(map[string]string, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		k := cellString(iter.Key())
		keys = append(keys, k)
		byKey[k] = cellString(iter.Value())
	}
	sort.Strings(keys)
	for _, k := range keys {
		t.AddRow(k, byKey[k])
	}
	return t
}

// headerName derives a column header from the json tag, falling back
// to the field name.
func headerName(field reflect.StructField) string {
	name := field.Name
	if tag := field.Tag.Get("json"); tag != "" {
		if base, _, _ := strings.Cut(tag, ","); base != "" && base != "-" {
			name = base
		}
	}
	return strings.ToUpper(name)
}

func cellString(v reflect.Value) string {
	if v.Kind() == reflect.Interface || v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return "-"
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.String:
		if v.String() == "" {
			return "-"
		}
		return v.String()
	case reflect.Slice, reflect.Array:
		if v.Len() == 0 {
			return "-"
		}
		if v.Type().Elem().Kind() == reflect.String {
			parts := make([]string, v.Len())
			for i := range parts {
				parts[i] = v.Index(i).String()
			}
			return strings.Join(parts, ",")
		}
		return fmt.Sprintf("[%d items]", v.Len())
	case reflect.Bool:
		if v.Bool() {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}

// Table holds prepared tabular data for rendering.
type Table struct {
	Headers []string
	Rows    [][]string
}

// AddRow appends a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render writes the table to w.
func (t *Table) Render(w io.Writer) error {
	return t.render(w, false)
}

func (t *Table) render(w io.Writer, noHeaders bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if !noHeaders && len(t.Headers) > 0 {
		fmt.Fprintln(tw, strings.Join(t.Headers, "\t"))
	}
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}
