package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"resolver/internal/adapters"
)

// writeFixtureIndex materializes the a/b/c/d scenario from
// _examples/original_source/tests.py as an on-disk index file and
// returns a Service reading from it.
func writeFixtureIndex(t *testing.T) (Service, string) {
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

	return Service{IndexSource: adapters.NewFileIndexSource()}, path
}
