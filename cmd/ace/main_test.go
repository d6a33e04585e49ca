package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveInputsSingleFile(t *testing.T) {
	paths, err := resolveInputs("bwp012023.dat", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"bwp012023.dat"}, paths)
}

func TestResolveInputsDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bwp01.dat"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bwp02.dat"), nil, 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	paths, err := resolveInputs("", dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "bwp01.dat"),
		filepath.Join(dir, "bwp02.dat"),
	}, paths)
}

func TestResolveInputsGlob(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bsh05.dat"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644))

	paths, err := resolveInputs("", filepath.Join(dir, "*.dat"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "bsh05.dat")}, paths)
}

func TestResolveInputsGlobNoMatches(t *testing.T) {
	paths, err := resolveInputs("", filepath.Join(t.TempDir(), "*.dat"))
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestResolveInputsNoInput(t *testing.T) {
	_, err := resolveInputs("", "")
	require.Error(t, err)
}

func TestResolveInputsFilePassedAsDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bwp01.dat")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	_, err := resolveInputs("", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}
