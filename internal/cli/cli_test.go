package cli

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"

	"resolver/internal/core"
)

// ---------- Command tree tests ----------

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "latest")
	assert.Contains(t, names, "satisfy")
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
}

func TestRootCommandPersistentFlags(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"config", "index", "mode", "log-level"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), "missing flag: %s", name)
	}
}

func TestSatisfyCommandArgsAndFlags(t *testing.T) {
	cmd := newSatisfyCommand()
	assert.Error(t, cmd.Args(cmd, []string{"a"}))
	assert.NoError(t, cmd.Args(cmd, []string{"a", "1"}))
	assert.NotNil(t, cmd.Flags().Lookup("oneline"))
}

// ---------- Helper function tests ----------

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid argument", core.InvalidModeError("x"), 2},
		{"already exists", core.DuplicateDeclarationError(core.VersionedPackage{Name: "a", Version: 1}), 2},
		{"not found", core.UnknownPackageError("a"), 4},
		{"unmapped code falls back to default", errbuilder.New().WithCode(errbuilder.CodeFailedPrecondition).WithMsg("boom"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCodeForError(tt.err))
		})
	}
}
