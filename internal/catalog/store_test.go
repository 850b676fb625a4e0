package catalog

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gospring/internal/material"
	"github.com/alexiusacademia/gospring/internal/spring"
	"github.com/alexiusacademia/gospring/internal/tables"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// a single connection keeps the in-memory database alive
	db.SetMaxOpenConns(1)

	s, err := New(db, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func musicWire(t *testing.T) material.Material {
	t.Helper()
	m, err := material.Lookup(material.DefaultKey)
	require.NoError(t, err)
	return m
}

func TestStore_SaveAndGet(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	in := spring.DefaultCompression(musicWire(t))
	in.EndType = spring.EndClosedGround
	in.InactiveCoils = 2
	in.AddCoilsAtSolid = 0
	d := spring.NewCompressionDesign("valve", in)
	d.Description = "inlet valve return"

	require.NoError(t, s.Save(ctx, d))

	got, err := s.Get(ctx, "valve")
	require.NoError(t, err)
	assert.Equal(t, d, got.Design)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestStore_SaveReplaces(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	in := spring.DefaultCompression(musicWire(t))
	require.NoError(t, s.Save(ctx, spring.NewCompressionDesign("valve", in)))

	in.WireDiameter = 2.5
	require.NoError(t, s.Save(ctx, spring.NewCompressionDesign("valve", in)))

	got, err := s.Get(ctx, "valve")
	require.NoError(t, err)
	assert.Equal(t, 2.5, got.Design.Compression.WireDiameter)

	all, err := s.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestStore_SaveRejectsInvalid(t *testing.T) {
	s := setupTestStore(t)

	err := s.Save(context.Background(), spring.Design{Name: "", Family: tables.Compression})
	var verr *spring.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestStore_List(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	m := musicWire(t)

	require.NoError(t, s.Save(ctx, spring.NewTorsionDesign("lid", spring.DefaultTorsion(m))))
	require.NoError(t, s.Save(ctx, spring.NewCompressionDesign("valve", spring.DefaultCompression(m))))
	require.NoError(t, s.Save(ctx, spring.NewCompressionDesign("seat", spring.DefaultCompression(m))))
	require.NoError(t, s.Save(ctx, spring.NewExtensionDesign("door", spring.DefaultExtension(m))))

	tests := []struct {
		family tables.Family
		want   []string
	}{
		{"", []string{"door", "lid", "seat", "valve"}},
		{tables.Compression, []string{"seat", "valve"}},
		{tables.Torsion, []string{"lid"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.family), func(t *testing.T) {
			entries, err := s.List(ctx, tt.family)
			require.NoError(t, err)

			var names []string
			for _, e := range entries {
				names = append(names, e.Design.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestStore_Delete(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, spring.NewCompressionDesign("valve", spring.DefaultCompression(musicWire(t)))))
	require.NoError(t, s.Delete(ctx, "valve"))

	_, err := s.Get(ctx, "valve")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "valve"), ErrNotFound)
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "catalog.db")
	ctx := context.Background()

	s, err := Open(path, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, spring.NewCompressionDesign("valve", spring.DefaultCompression(musicWire(t)))))
	require.NoError(t, s.Close())

	s, err = Open(path, zerolog.Nop())
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get(ctx, "valve")
	require.NoError(t, err)
	assert.Equal(t, tables.Compression, got.Design.Family)
}
