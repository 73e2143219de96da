package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"resolver/tests/testutil"
)

func writeIndexFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "index.txt")
	text := "a 1:\n" +
		"a 2: b 1\n" +
		"a 3: b 1..1, b 3..3\n" +
		"b 1: c 1\n" +
		"b 2: c 1..3\n" +
		"c 1: d 1\n" +
		"c 3:\n"
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func runResolver(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := testutil.RepoRoot(t)
	cmd := exec.Command("go", append([]string{"run", "./cmd/resolver"}, args...)...)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func TestLatestCommandE2E(t *testing.T) {
	index := writeIndexFixture(t)
	out, err := runResolver(t, "--index", index, "latest", "a")
	require.NoError(t, err, out)
	require.Equal(t, "3", strings.TrimSpace(out))
}

func TestLatestCommandUnknownPackageE2E(t *testing.T) {
	index := writeIndexFixture(t)
	out, err := runResolver(t, "--index", index, "latest", "zzz")
	require.NoError(t, err, out)
	require.Equal(t, "There is no package named 'zzz'", strings.TrimSpace(out))
}

func TestSatisfyCommandOnelineE2E(t *testing.T) {
	index := writeIndexFixture(t)
	out, err := runResolver(t, "--index", index, "satisfy", "b", "2", "--oneline")
	require.NoError(t, err, out)
	require.Equal(t, "b 2, c 3", strings.TrimSpace(out))
}

func TestSatisfyCommandUnsatisfiableE2E(t *testing.T) {
	index := writeIndexFixture(t)
	out, err := runResolver(t, "--index", index, "satisfy", "a", "2")
	require.NoError(t, err, out)
	require.Equal(t, "This package version can't be satisfied", strings.TrimSpace(out))
}

func TestSatisfyCommandUnknownPackageExitCodeE2E(t *testing.T) {
	index := writeIndexFixture(t)
	_, err := runResolver(t, "--index", index, "satisfy", "zzz", "1")
	require.Error(t, err)
}
