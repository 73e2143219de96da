// Package testutil provides shared test helpers used across e2e and
// unit test packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// RepoRoot returns the directory two levels above the current working
// directory, which is the repository root when called from a test
// package under tests/ (such as tests/e2e). It does not search for
// go.mod. It fails the test if the working directory cannot be
// determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}
