package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromMissingFileGivesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	s, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Empty(t, s.FieldOrder)
	assert.Empty(t, s.SuppressedFields)
	assert.Equal(t, path, s.Path, "path kept for a later save")
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jlview", "settings.toml")
	s := Settings{
		FieldOrder:       []string{"ts", "level", "msg"},
		SuppressedFields: []string{"caller"},
		Path:             path,
	}
	require.NoError(t, s.Save())

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, s.FieldOrder, loaded.FieldOrder)
	assert.Equal(t, s.SuppressedFields, loaded.SuppressedFields)
}

func TestSaveOverwritesWholesale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	first := Settings{FieldOrder: []string{"a", "b"}, Path: path}
	require.NoError(t, first.Save())

	second := Settings{SuppressedFields: []string{"x"}, Path: path}
	require.NoError(t, second.Save())

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Empty(t, loaded.FieldOrder)
	assert.Equal(t, []string{"x"}, loaded.SuppressedFields)
}

func TestSaveWithoutPathFails(t *testing.T) {
	assert.Error(t, Settings{}.Save())
}

func TestLoadFromMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("field_order = not valid toml ["), 0o644))
	_, err := LoadFrom(path)
	assert.Error(t, err)
}
