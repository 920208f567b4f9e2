package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestStripsGlobalDelimitersAndComments(t *testing.T) {
	src := "::{ // hello\n x = 1; /* block\ncomment */ y = 2; }"
	out, err := Ingest(src, "main.graveyard", map[string]bool{})
	require.NoError(t, err)
	assert.NotContains(t, out, "//")
	assert.NotContains(t, out, "/*")
	assert.Contains(t, out, "x = 1;")
	assert.Contains(t, out, "y = 2;")
}

func TestIngestRejectsMissingOpenDelimiter(t *testing.T) {
	_, err := Ingest("x = 1; }", "main.graveyard", map[string]bool{})
	require.Error(t, err)
	libErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, "Syntax", libErr.Kind)
}

func TestIngestRejectsMissingCloseDelimiter(t *testing.T) {
	_, err := Ingest("::{ x = 1;", "main.graveyard", map[string]bool{})
	require.Error(t, err)
}

func TestLoadSplicesLibraryImport(t *testing.T) {
	dir := t.TempDir()
	libPath := filepath.Join(dir, "helpers.graveyard")
	require.NoError(t, os.WriteFile(libPath, []byte("::{ square &n { -> n * n; } }"), 0o644))

	mainPath := filepath.Join(dir, "main.graveyard")
	mainSrc := "::{ @" + filepath.Join(dir, "helpers") + "; >> square(4); }"
	require.NoError(t, os.WriteFile(mainPath, []byte(mainSrc), 0o644))

	out, err := Load(mainPath)
	require.NoError(t, err)
	assert.Contains(t, out, "square &n { -> n * n; }")
	assert.NotContains(t, out, "@"+filepath.Join(dir, "helpers")+";")
}

func TestLoadReportsMissingLibrary(t *testing.T) {
	dir := t.TempDir()
	mainPath := filepath.Join(dir, "main.graveyard")
	mainSrc := "::{ @" + filepath.Join(dir, "missing") + "; }"
	require.NoError(t, os.WriteFile(mainPath, []byte(mainSrc), 0o644))

	_, err := Load(mainPath)
	require.Error(t, err)
	libErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, "Reference", libErr.Kind)
}

func TestLoadDetectsImportCycle(t *testing.T) {
	dir := t.TempDir()
	aPath := filepath.Join(dir, "a.graveyard")
	bPath := filepath.Join(dir, "b.graveyard")
	require.NoError(t, os.WriteFile(aPath, []byte("::{ @"+filepath.Join(dir, "b")+"; }"), 0o644))
	require.NoError(t, os.WriteFile(bPath, []byte("::{ @"+filepath.Join(dir, "a")+"; }"), 0o644))

	_, err := Load(aPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import cycle detected")
}
