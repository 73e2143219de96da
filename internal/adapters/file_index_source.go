// Package adapters provides concrete implementations of the interfaces
// declared in internal/ports.
package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"resolver/internal/core"
)

// FileIndexSource reads a package index from a text file on disk in the
// line-oriented grammar of SPEC_FULL.md §4.2.
//
// Grounded on the teacher's internal/adapters/repo_index_file.go
// (RepoIndexFileAdapter): open-and-parse-on-demand, wrapping I/O errors
// with errbuilder rather than letting raw os errors escape the adapter.
type FileIndexSource struct{}

// NewFileIndexSource builds a file-backed index source.
func NewFileIndexSource() *FileIndexSource {
	return &FileIndexSource{}
}

// Load implements ports.IndexSource.
func (a *FileIndexSource) Load(path string, mode core.CombineMode) (core.Index, core.Dependencies, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("index file not found").
			WithCause(err)
	}
	defer file.Close()

	loader := core.NewLoader(mode)
	return loader.Load(file)
}
