package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	contents := "mode: P\nentry: main.graveyard\nlibrary_paths:\n  - ./lib\n  - ./vendor\nprompt: \"gy> \"\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "P", cfg.Mode)
	assert.Equal(t, "main.graveyard", cfg.Entry)
	assert.Equal(t, []string{"./lib", "./vendor"}, cfg.LibraryPaths)
	assert.Equal(t, "gy> ", cfg.Prompt)
}

func TestLoadFillsMissingModeAndPrompt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("entry: foo.graveyard\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "E", cfg.Mode)
	assert.Equal(t, "graveyard >>> ", cfg.Prompt)
}
