package core

// ReduceSetup prunes setup to the transitive closure of keep over the
// dependency graph at the exact versions present in setup. Every name
// in keep must already be a key of setup; violating that is a
// programmer error (InvariantViolation), not a recoverable result.
//
// Grounded on _examples/original_source/resolver/utils.py's
// reduce_setup: breadth-first walk from keep, following each visited
// package's requirement names at the version setup has chosen for it.
func ReduceSetup(deps Dependencies, setup Setup, keep []string) (Setup, error) {
	for _, name := range keep {
		if _, ok := setup[name]; !ok {
			return nil, invariantViolation("keep package %q is not present in setup", name)
		}
	}

	visited := make(map[string]struct{}, len(keep))
	queue := make([]string, 0, len(keep))
	for _, name := range keep {
		if _, ok := visited[name]; ok {
			continue
		}
		visited[name] = struct{}{}
		queue = append(queue, name)
	}

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		vp := VersionedPackage{Name: name, Version: setup[name]}
		for req := range deps[vp] {
			if _, ok := visited[req]; ok {
				continue
			}
			visited[req] = struct{}{}
			queue = append(queue, req)
		}
	}

	out := make(Setup, len(visited))
	for name := range visited {
		out[name] = setup[name]
	}
	return out, nil
}
