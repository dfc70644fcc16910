package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var sb strings.Builder
	cmd := newRootCommand()
	cmd.SetOut(&sb)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return sb.String(), err
}

func TestConfigInit_WritesSampleOnce(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "pixsvg.toml")

	out, err := runCommand(t, "config", "init", path)
	assert.NoError(err)
	assert.Contains(out, path)

	data, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Equal(sampleConfig, string(data))

	// A second init must not clobber the existing file.
	_, err = runCommand(t, "config", "init", path)
	assert.Error(err)
}

func TestClearCommand_ReportsMissingFolder(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := runCommand(t, "clear", "--out", "converted_svgs")
	assert.NoError(t, err)
	assert.Contains(t, out, "No converted_svgs folder to clear.")
}

func TestClearCommand_RemovesOutputs(t *testing.T) {
	assert := assert.New(t)

	chdir(t, t.TempDir())
	outDir := "converted_svgs"
	require.NoError(t, os.Mkdir(outDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(outDir, "a.svg"), []byte("<svg/>"), 0644))

	out, err := runCommand(t, "clear", "--out", outDir)
	assert.NoError(err)
	assert.Contains(out, "1 file(s) removed")

	_, statErr := os.Stat(outDir)
	assert.True(os.IsNotExist(statErr))
}
