package main

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smaeyama/test-fig-stdout/entropy"
)

func TestSelectEstimator(t *testing.T) {
	assert.Equal(t, entropy.NonUniform, selectEstimator(false))
	assert.Equal(t, entropy.Uniform, selectEstimator(true))
}

func TestFlagsRegistered(t *testing.T) {
	for _, name := range []string{"dir", "style", "uniform-dt", "verbose"} {
		require.NotNil(t, rootCmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "d", rootCmd.Flags().Lookup("dir").Shorthand)
	assert.Equal(t, "v", rootCmd.Flags().Lookup("verbose").Shorthand)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 2, exitCode(errMissingDir))
	assert.Equal(t, 2, exitCode(fmt.Errorf("run: %w", errMissingDir)))
	assert.Equal(t, 1, exitCode(errors.New("no such directory")))
}

func TestRunWithoutDirPrintsUsage(t *testing.T) {
	runDir = ""
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	defer rootCmd.SetOut(nil)

	err := run(rootCmd, nil)
	require.ErrorIs(t, err, errMissingDir)
	assert.Contains(t, buf.String(), "--dir")
}

func TestExecuteMissingRunDir(t *testing.T) {
	rootCmd.SetArgs([]string{"-d", filepath.Join(t.TempDir(), "absent")})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
}
