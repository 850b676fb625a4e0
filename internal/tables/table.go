package tables

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strconv"
	"strings"
)

// Family is a spring family keying a set of tables
type Family string

const (
	Compression Family = "Compression"
	Extension   Family = "Extension"
	Torsion     Family = "Torsion"
)

// Families lists every spring family in display order
var Families = []Family{Compression, Extension, Torsion}

// Dir returns the directory name holding the family's tables
func (f Family) Dir() string {
	return strings.ToLower(string(f))
}

// ParseFamily resolves a family name case-insensitively
func ParseFamily(s string) (Family, error) {
	for _, f := range Families {
		if strings.EqualFold(string(f), strings.TrimSpace(s)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown spring family %q", s)
}

// EndTypeHeader is the first header cell identifying an end-type table
const EndTypeHeader = "End_Type"

// EndTypeEnum is the enumeration name derived from an end-type table
const EndTypeEnum = "EndType"

// Property describes a column managed by an end-type table.
// Header cells take the form "Name" or "Name@Group".
type Property struct {
	Key   string // raw header cell
	Name  string
	Group string
}

// ParseProperty translates a header cell into a property descriptor
func ParseProperty(raw string) Property {
	if name, group, ok := strings.Cut(raw, "@"); ok {
		return Property{Key: raw, Name: name, Group: group}
	}
	return Property{Key: raw, Name: raw, Group: "Spring"}
}

// EndTypeTable maps end-type options to dependent property defaults
type EndTypeTable struct {
	Name       string
	Options    []string
	Properties []Property
	Values     map[string]map[string]any // option -> property key -> value
}

// Default returns the first option, or "" for an empty table
func (t *EndTypeTable) Default() string {
	if t == nil || len(t.Options) == 0 {
		return ""
	}
	return t.Options[0]
}

// Empty reports whether the table has no options
func (t *EndTypeTable) Empty() bool {
	return t == nil || len(t.Options) == 0
}

// Has reports whether option is a row of the table
func (t *EndTypeTable) Has(option string) bool {
	if t == nil {
		return false
	}
	_, ok := t.Values[option]
	return ok
}

// Value returns the value stored for option under the property named name.
// The lookup fails for unknown options, unknown properties and null cells.
func (t *EndTypeTable) Value(option, name string) (any, bool) {
	if t == nil {
		return nil, false
	}
	row, ok := t.Values[option]
	if !ok {
		return nil, false
	}
	for _, p := range t.Properties {
		if p.Name == name {
			v, ok := row[p.Key]
			if !ok || v == nil {
				return nil, false
			}
			return v, true
		}
	}
	return nil, false
}

// Float is Value restricted to numeric cells
func (t *EndTypeTable) Float(option, name string) (float64, bool) {
	v, ok := t.Value(option, name)
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

// Bool is Value restricted to boolean cells
func (t *EndTypeTable) Bool(option, name string) (bool, bool) {
	v, ok := t.Value(option, name)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// Enum returns the options of the table as an EndType enumeration
func (t *EndTypeTable) Enum() *EnumTable {
	e := &EnumTable{Name: EndTypeEnum}
	if t == nil {
		return e
	}
	for _, opt := range t.Options {
		e.Rows = append(e.Rows, Row{Option: opt})
	}
	return e
}

// Row is one option of an enumeration table
type Row struct {
	Option string
	Values []any
}

// EnumTable is an ordered list of options for an enumeration
type EnumTable struct {
	Name    string
	Columns []string
	Rows    []Row
}

// Options returns the option names in order
func (e *EnumTable) Options() []string {
	if e == nil {
		return nil
	}
	out := make([]string, len(e.Rows))
	for i, r := range e.Rows {
		out[i] = r.Option
	}
	return out
}

// Index returns the 1-based position of value, or 0 when value is empty or
// not an option.
func (e *EnumTable) Index(value string) int {
	if e == nil || value == "" {
		return 0
	}
	for i, r := range e.Rows {
		if r.Option == value {
			return i + 1
		}
	}
	return 0
}

// ParseEndTypeTable builds an end-type table from auto-typed rows.
// The first row is the header and must start with End_Type.
func ParseEndTypeTable(rows [][]any) (*EndTypeTable, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty end-type table")
	}
	header := rows[0]
	if len(header) == 0 || fmt.Sprint(header[0]) != EndTypeHeader {
		return nil, fmt.Errorf("end-type table header must start with %q", EndTypeHeader)
	}

	t := &EndTypeTable{
		Name:   EndTypeHeader,
		Values: make(map[string]map[string]any),
	}
	for _, h := range header[1:] {
		t.Properties = append(t.Properties, ParseProperty(fmt.Sprint(h)))
	}

	for _, row := range rows[1:] {
		if len(row) == 0 || row[0] == nil {
			continue
		}
		option := fmt.Sprint(row[0])
		values := make(map[string]any, len(t.Properties))
		for i, p := range t.Properties {
			if i+1 < len(row) {
				values[p.Key] = coerce(row[i+1])
			} else {
				values[p.Key] = nil
			}
		}
		t.Options = append(t.Options, option)
		t.Values[option] = values
	}

	return t, nil
}

// ParseEnumTable builds an enumeration table from auto-typed rows.
// The first row is the header; its first cell names the enumeration unless
// name is given.
func ParseEnumTable(name string, rows [][]any) (*EnumTable, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty enumeration table")
	}
	header := rows[0]
	if len(header) == 0 {
		return nil, fmt.Errorf("enumeration table has an empty header")
	}
	if name == "" {
		name = fmt.Sprint(header[0])
	}

	e := &EnumTable{Name: name}
	for _, h := range header[1:] {
		e.Columns = append(e.Columns, fmt.Sprint(h))
	}
	for _, row := range rows[1:] {
		if len(row) == 0 || row[0] == nil {
			continue
		}
		r := Row{Option: fmt.Sprint(row[0])}
		for _, v := range row[1:] {
			r.Values = append(r.Values, coerce(v))
		}
		e.Rows = append(e.Rows, r)
	}
	return e, nil
}

// ReadRows reads a tabular definition file. JSON files hold an array of
// arrays; CSV files hold one row per record with auto-typed cells.
func ReadRows(fsys fs.FS, name string) ([][]any, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return decodeJSONRows(data)
	case ".csv":
		return decodeCSVRows(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported table format %q", path.Ext(name))
	}
}

func decodeJSONRows(data []byte) ([][]any, error) {
	var rows [][]any
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode table: %w", err)
	}
	return rows, nil
}

func decodeCSVRows(r io.Reader) ([][]any, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decode table: %w", err)
	}
	rows := make([][]any, 0, len(records))
	for i, rec := range records {
		row := make([]any, len(rec))
		for j, cell := range rec {
			if i == 0 {
				row[j] = cell // header cells stay strings
				continue
			}
			row[j] = AutoType(cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// AutoType converts a text cell to bool, float64, nil (empty or "null") or string
func AutoType(cell string) any {
	s := strings.TrimSpace(cell)
	switch strings.ToLower(s) {
	case "":
		return nil
	case "null", "none":
		return nil
	case "true":
		return true
	case "false":
		return false
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// coerce normalises decoded cell values: numbers become float64, bools stay
// bools, everything else is rendered as a string.
func coerce(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case bool:
		return x
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
