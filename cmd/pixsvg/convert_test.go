package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixsvg/pixsvg"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestCollectPaths_FolderContributesTopLevelImagesOnly(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.png"))
	touch(t, filepath.Join(dir, "b.jpg"))
	touch(t, filepath.Join(dir, "notes.txt"))
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0755))
	touch(t, filepath.Join(sub, "deep.png"))

	paths, err := collectPaths([]string{dir})
	assert.NoError(err)
	assert.Len(paths, 2)
	for _, p := range paths {
		assert.NotContains(p, "nested")
		assert.True(pixsvg.SupportedExtension(filepath.Ext(p)))
	}
}

func TestCollectPaths_DeduplicatesPreservingOrder(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	a := filepath.Join(dir, "a.png")
	b := filepath.Join(dir, "b.png")
	touch(t, a)
	touch(t, b)

	paths, err := collectPaths([]string{b, a, b, dir})
	assert.NoError(err)
	assert.Equal([]string{b, a}, paths)
}

func TestCollectPaths_FiltersUnsupportedFiles(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	doc := filepath.Join(dir, "readme.md")
	touch(t, doc)

	paths, err := collectPaths([]string{doc})
	assert.NoError(err)
	assert.Empty(paths)
}

func TestCollectPaths_MissingArgument(t *testing.T) {
	_, err := collectPaths([]string{filepath.Join(t.TempDir(), "gone.png")})
	assert.Error(t, err)
}

func TestPrintOutcomes_SummaryCounts(t *testing.T) {
	assert := assert.New(t)

	colorsEnabled = false
	outcomes := []pixsvg.Outcome{
		{Input: "/in/a.png", Output: "/out/a.svg", Status: pixsvg.StatusConverted},
		{Input: "/in/b.png", Output: "/out/b.svg", Status: pixsvg.StatusSkipped},
		{Input: "/in/c.png", Status: pixsvg.StatusError, Err: pixsvg.ErrMissingInput},
	}

	var sb strings.Builder
	printOutcomes(&sb, outcomes)

	out := sb.String()
	assert.Contains(out, "a.png")
	assert.Contains(out, "converted to a.svg")
	assert.Contains(out, "b.svg already exists")
	assert.Contains(out, "1 converted, 1 skipped, 1 failed")
}
