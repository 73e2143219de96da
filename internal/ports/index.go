// Package ports declares the interfaces the app layer depends on,
// following the teacher's hexagonal split between ports (interfaces)
// and adapters (concrete implementations).
package ports

import "resolver/internal/core"

// IndexSource loads a package index and its dependency map from some
// external representation.
type IndexSource interface {
	Load(path string, mode core.CombineMode) (core.Index, core.Dependencies, error)
}
