package tables

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProperty(t *testing.T) {
	p := ParseProperty("LoopFraction@Hooks")
	assert.Equal(t, Property{Key: "LoopFraction@Hooks", Name: "LoopFraction", Group: "Hooks"}, p)

	p = ParseProperty("InactiveCoils")
	assert.Equal(t, "Spring", p.Group)
	assert.Equal(t, "InactiveCoils", p.Name)
}

func TestAutoType(t *testing.T) {
	tests := []struct {
		cell string
		want any
	}{
		{"", nil},
		{"null", nil},
		{"TRUE", true},
		{"false", false},
		{"2", 2.0},
		{"-0.5", -0.5},
		{"1e6", 1e6},
		{"1", 1.0}, // numeric, not a bool
		{"Closed&Ground", "Closed&Ground"},
	}

	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			assert.Equal(t, tt.want, AutoType(tt.cell))
		})
	}
}

func TestParseEndTypeTable(t *testing.T) {
	rows := [][]any{
		{"End_Type", "InactiveCoils@Spring", "AddCoilsAtSolid@Spring", "Note"},
		{"Open", 0.0, 1.0, "plain"},
		{"Closed", 2.0, 1.0},
		{},
		{"User_Specified", nil, nil, nil},
	}

	tbl, err := ParseEndTypeTable(rows)
	require.NoError(t, err)

	assert.Equal(t, []string{"Open", "Closed", "User_Specified"}, tbl.Options)
	assert.Equal(t, "Open", tbl.Default())
	require.Len(t, tbl.Properties, 3)

	v, ok := tbl.Float("Closed", "InactiveCoils")
	require.True(t, ok)
	assert.Equal(t, 2.0, v)

	_, ok = tbl.Value("Closed", "Note")
	assert.False(t, ok, "short rows leave trailing properties unset")

	_, ok = tbl.Float("User_Specified", "InactiveCoils")
	assert.False(t, ok, "null cells are absent")

	s, ok := tbl.Value("Open", "Note")
	require.True(t, ok)
	assert.Equal(t, "plain", s)

	_, ok = tbl.Float("Open", "Note")
	assert.False(t, ok, "string cells are not numeric")

	_, ok = tbl.Value("Missing", "InactiveCoils")
	assert.False(t, ok)
}

func TestParseEndTypeTable_BadHeader(t *testing.T) {
	_, err := ParseEndTypeTable([][]any{{"Option", "X"}})
	assert.Error(t, err)

	_, err = ParseEndTypeTable(nil)
	assert.Error(t, err)
}

func TestEnumTable_Index(t *testing.T) {
	e, err := ParseEnumTable("", [][]any{
		{"PropCalcMethod", "Description"},
		{"Use_Material_Table", "a"},
		{"Specify_Tensile", "b"},
		{"Specify_Stress_Limits", "c"},
	})
	require.NoError(t, err)

	assert.Equal(t, "PropCalcMethod", e.Name)
	assert.Equal(t, 1, e.Index("Use_Material_Table"))
	assert.Equal(t, 3, e.Index("Specify_Stress_Limits"))
	assert.Equal(t, 0, e.Index(""))
	assert.Equal(t, 0, e.Index("use_material_table"), "selection matching is exact")

	var nilEnum *EnumTable
	assert.Equal(t, 0, nilEnum.Index("anything"))
}

func TestReadRows_JSONAndCSV(t *testing.T) {
	fsys := fstest.MapFS{
		"a.json": {Data: []byte(`[["End_Type","Hooks@Ends"],["Loop",true],["Hook",false]]`)},
		"b.csv":  {Data: []byte("End_Type,Hooks@Ends\n# comment\nLoop, true\nHook,false\n")},
		"c.txt":  {Data: []byte("nope")},
		"d.json": {Data: []byte(`{"not":"rows"}`)},
	}

	for _, name := range []string{"a.json", "b.csv"} {
		t.Run(name, func(t *testing.T) {
			rows, err := ReadRows(fsys, name)
			require.NoError(t, err)
			tbl, err := ParseEndTypeTable(rows)
			require.NoError(t, err)

			b, ok := tbl.Bool("Loop", "Hooks")
			require.True(t, ok)
			assert.True(t, b)
			b, ok = tbl.Bool("Hook", "Hooks")
			require.True(t, ok)
			assert.False(t, b)
		})
	}

	_, err := ReadRows(fsys, "c.txt")
	assert.Error(t, err)
	_, err = ReadRows(fsys, "d.json")
	assert.Error(t, err)
	_, err = ReadRows(fsys, "missing.json")
	assert.Error(t, err)
}

func TestParseFamily(t *testing.T) {
	f, err := ParseFamily(" compression ")
	require.NoError(t, err)
	assert.Equal(t, Compression, f)
	assert.Equal(t, "torsion", Torsion.Dir())

	_, err = ParseFamily("leaf")
	assert.True(t, err != nil && strings.Contains(err.Error(), "leaf"))
}
