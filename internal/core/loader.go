package core

import (
	"bufio"
	"io"
	"sort"
	"strings"
)

// Loader accumulates an Index and a Dependencies map from index text,
// combining repeated ranges for one requirement within a single entry
// using the configured CombineMode.
type Loader struct {
	Mode CombineMode
}

// NewLoader builds a Loader for the given combine mode.
func NewLoader(mode CombineMode) *Loader {
	return &Loader{Mode: mode}
}

// Load reads one entry per line from r, building the Index and
// Dependencies maps. A duplicate (name, version) declaration across
// lines is fatal. A package named only as a dependency target, never
// declared with its own entry, is tolerated: it ends up with no known
// versions, and any dependency on it degenerates to an unsatisfiable
// clause at resolution time.
func (l *Loader) Load(r io.Reader) (Index, Dependencies, error) {
	index := Index{}
	deps := Dependencies{}
	seen := map[VersionedPackage]struct{}{}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		entry, err := ParseEntry(line)
		if err != nil {
			return nil, nil, parseErrorAt(lineNo, err)
		}

		vp := entry.Package
		if _, ok := seen[vp]; ok {
			return nil, nil, DuplicateDeclarationError(vp)
		}
		seen[vp] = struct{}{}

		index[vp.Name] = insertSorted(index[vp.Name], vp.Version)

		reqs := map[string]VersionSet{}
		for _, dep := range entry.Dependencies {
			next := NewVersionSet([]VersionRange{dep.Range})
			existing, ok := reqs[dep.Name]
			if !ok {
				reqs[dep.Name] = next
				continue
			}
			if l.Mode == CombineUnion {
				reqs[dep.Name] = existing.Union(next)
			} else {
				reqs[dep.Name] = existing.Intersection(next)
			}
		}
		deps[vp] = reqs
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return index, deps, nil
}

// insertSorted inserts v into a sorted, unique ascending slice.
func insertSorted(versions []Version, v Version) []Version {
	i := sort.Search(len(versions), func(i int) bool { return versions[i] >= v })
	if i < len(versions) && versions[i] == v {
		return versions
	}
	versions = append(versions, 0)
	copy(versions[i+1:], versions[i:])
	versions[i] = v
	return versions
}
