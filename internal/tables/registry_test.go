package tables

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_BuiltInTables(t *testing.T) {
	r, err := Open("", zerolog.Nop())
	require.NoError(t, err)
	require.True(t, r.Loaded())

	for _, f := range Families {
		t.Run(string(f), func(t *testing.T) {
			et := r.EndTypes(f)
			assert.False(t, et.Empty())
			assert.Equal(t, "User_Specified", et.Options[len(et.Options)-1])
			assert.Equal(t, []string{"EndType", "LifeCategory", "PropCalcMethod"}, r.EnumNames(f))
		})
	}

	inactive, ok := r.EndTypes(Compression).Float("Closed", "InactiveCoils")
	require.True(t, ok)
	assert.Equal(t, 2.0, inactive)
}

func TestRegistry_Index(t *testing.T) {
	r, err := Open("", zerolog.Nop())
	require.NoError(t, err)

	tests := []struct {
		name   string
		family Family
		enum   string
		value  string
		want   int
	}{
		{"first end type", Compression, "EndType", "Open", 1},
		{"closed end type", Compression, "EndType", "Closed", 3},
		{"user specified", Compression, "EndType", "User_Specified", 7},
		{"calc method", Extension, "PropCalcMethod", "Specify_Tensile", 2},
		{"life category from csv", Torsion, "LifeCategory", "Peened_1e8", 8},
		{"unknown value", Compression, "EndType", "Squared", 0},
		{"unset value", Compression, "EndType", "", 0},
		{"unknown enum", Compression, "Finish", "Painted", 0},
		{"unknown family", Family("Leaf"), "EndType", "Open", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Index(tt.family, tt.enum, tt.value))
		})
	}

	assert.Equal(t, "Closed", r.Option(Compression, "EndType", 3))
	assert.Equal(t, "", r.Option(Compression, "EndType", 0))
	assert.Equal(t, "", r.Option(Compression, "EndType", 99))
}

func TestRegistry_MissingAndMalformedTables(t *testing.T) {
	fsys := fstest.MapFS{
		"compression/endtypes.json":       {Data: []byte(`[["Wrong_Header","X"],["A",1]]`)},
		"compression/PropCalcMethod.json": {Data: []byte(`not json`)},
		"extension/endtypes.csv":          {Data: []byte("End_Type,HookDeflectAll\nFull_Loop,0.2\n")},
	}
	r := NewRegistry(fsys, zerolog.Nop())
	r.Load()

	assert.True(t, r.EndTypes(Compression).Empty(), "malformed end-type table degrades to empty")
	assert.Equal(t, 0, r.Index(Compression, "PropCalcMethod", "Use_Material_Table"))
	assert.True(t, r.EndTypes(Torsion).Empty(), "missing family directory degrades to empty")
	assert.Equal(t, 1, r.Index(Extension, "EndType", "Full_Loop"))
}

func TestRegistry_ClearAndReload(t *testing.T) {
	r, err := Open("", zerolog.Nop())
	require.NoError(t, err)

	r.Clear()
	assert.False(t, r.Loaded())
	assert.True(t, r.EndTypes(Compression).Empty())
	assert.Equal(t, 0, r.Index(Compression, "EndType", "Open"))

	r.Reload()
	assert.True(t, r.Loaded())
	assert.Equal(t, 1, r.Index(Compression, "EndType", "Open"))
}

func TestRegistry_ReloadKeepsTablesVisible(t *testing.T) {
	r, err := Open("", zerolog.Nop())
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			r.Reload()
		}
	}()

	for {
		select {
		case <-done:
			assert.Equal(t, 3, r.Index(Compression, "EndType", "Closed"))
			return
		default:
			require.True(t, r.EndTypes(Compression).Has("Closed"), "tables vanished during reload")
		}
	}
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing"), zerolog.Nop())
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "file.json")
	require.NoError(t, os.WriteFile(file, []byte("[]"), 0644))
	_, err = Open(file, zerolog.Nop())
	assert.Error(t, err)
}

func TestRegistry_WatchBuiltInFails(t *testing.T) {
	r, err := Open("", zerolog.Nop())
	require.NoError(t, err)
	assert.Error(t, r.Watch(context.Background(), nil))
}

func TestRegistry_WatchReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	famDir := filepath.Join(dir, "compression")
	require.NoError(t, os.MkdirAll(famDir, 0755))
	file := filepath.Join(famDir, "endtypes.json")
	require.NoError(t, os.WriteFile(file, []byte(`[["End_Type","InactiveCoils"],["Open",0]]`), 0644))

	r, err := Open(dir, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 0, r.Index(Compression, "EndType", "Closed"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reloaded := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- r.Watch(ctx, func() {
			select {
			case reloaded <- struct{}{}:
			default:
			}
		})
	}()

	// Give the watcher time to register before writing.
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(file, []byte(`[["End_Type","InactiveCoils"],["Open",0],["Closed",2]]`), 0644))

	select {
	case <-reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("registry was not reloaded")
	}
	assert.Equal(t, 2, r.Index(Compression, "EndType", "Closed"))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop on cancel")
	}
}
