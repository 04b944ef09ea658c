package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	root := filepath.Join(t.TempDir(), "run")
	writeRunTree(t, root, 1, "nonlinear")

	l, err := Resolve(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "hst"), l.HstDir)
	assert.Equal(t, filepath.Join(root, "log", "gkvp.000000.0.log.001"), l.LogFile)
	assert.Equal(t, filepath.Join(root, "gkvp_namelist.001"), l.Namelist)
}

func TestResolveMissingRoot(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GKV standard output directory not found")
}

func TestResolveRootIsFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "run")
	require.NoError(t, os.WriteFile(root, []byte("x"), 0o644))

	_, err := Resolve(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GKV standard output directory not found")
}

func TestResolveMissingHst(t *testing.T) {
	root := filepath.Join(t.TempDir(), "run")
	writeRunTree(t, root, 1, "nonlinear")
	require.NoError(t, os.RemoveAll(filepath.Join(root, "hst")))

	_, err := Resolve(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hst directory not found")
}

func TestResolveMissingLog(t *testing.T) {
	root := filepath.Join(t.TempDir(), "run")
	writeRunTree(t, root, 1, "nonlinear")
	require.NoError(t, os.Remove(filepath.Join(root, "log", "gkvp.000000.0.log.001")))

	_, err := Resolve(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Log file not found")
}

func TestResolveMissingNamelist(t *testing.T) {
	root := filepath.Join(t.TempDir(), "run")
	writeRunTree(t, root, 1, "nonlinear")
	require.NoError(t, os.Remove(filepath.Join(root, "gkvp_namelist.001")))

	_, err := Resolve(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Namelist file not found")
}
