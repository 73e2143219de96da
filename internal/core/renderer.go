package core

import (
	"fmt"
	"sort"
	"strings"
)

// RenderOneline prints a setup as "<name> <version>" pairs joined by
// ", ". Package order is not specified by SPEC_FULL.md; this
// implementation sorts by name so output is deterministic.
func RenderOneline(setup Setup) string {
	names := sortedSetupNames(setup)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s %s", name, setup[name]))
	}
	return strings.Join(parts, ", ")
}

// RenderTree pretty-prints root and its transitive dependencies (as
// present in setup), indenting two spaces per level, visiting
// requirements in name order. A package already printed anywhere earlier
// in the output, at any depth, is printed again as "(see above)" without
// descending into it, which both handles shared subtrees in a dependency
// DAG and defends against cycles.
//
// Grounded on _examples/original_source/resolver/utils.py's
// print_transitive_dependencies.
func RenderTree(deps Dependencies, setup Setup, root string) string {
	var b strings.Builder
	printed := map[string]struct{}{}

	var print func(name string, level int)
	print = func(name string, level int) {
		version := setup[name]
		indent := strings.Repeat("  ", level)

		if _, ok := printed[name]; ok {
			fmt.Fprintf(&b, "%s%s %s (see above)\n", indent, name, version)
			return
		}
		printed[name] = struct{}{}

		vp := VersionedPackage{Name: name, Version: version}
		reqs := deps[vp]
		suffix := ""
		if len(reqs) > 0 {
			suffix = " with following dependencies:"
		}
		fmt.Fprintf(&b, "%s%s %s%s\n", indent, name, version, suffix)

		reqNames := make([]string, 0, len(reqs))
		for req := range reqs {
			reqNames = append(reqNames, req)
		}
		sort.Strings(reqNames)
		for _, req := range reqNames {
			print(req, level+1)
		}
	}
	print(root, 0)
	return b.String()
}

func sortedSetupNames(setup Setup) []string {
	names := make([]string, 0, len(setup))
	for name := range setup {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
