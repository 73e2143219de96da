// Package app wires the ports and core packages into the resolver's
// two use cases and translates between CLI-facing requests/results and
// core domain types.
package app

import (
	"resolver/internal/adapters"
	"resolver/internal/ports"
)

// Service holds the dependencies shared by every use case.
type Service struct {
	IndexSource ports.IndexSource
}

// NewService builds a Service backed by the file-based index adapter.
func NewService() Service {
	return Service{IndexSource: adapters.NewFileIndexSource()}
}
