package app

import "resolver/internal/core"

// LatestRequest asks for the highest known version of a package.
type LatestRequest struct {
	IndexPath string
	Mode      core.CombineMode
	Package   string
}

// LatestResult carries either the resolved version or, when the
// package is unknown, a user-facing message (spec.md §6.2: an unknown
// package in `latest` is a printed message, not an error).
type LatestResult struct {
	Found   bool
	Version core.Version
	Message string
}

// SatisfyRequest asks for a setup installing (Package, Version) and its
// transitive requirements.
type SatisfyRequest struct {
	IndexPath string
	Mode      core.CombineMode
	Package   string
	Version   core.Version
	Oneline   bool
}

// SatisfyResult carries either a rendered setup or, on UNSAT, a
// user-facing message (spec.md §6.2: UNSAT is a result, not an error).
type SatisfyResult struct {
	Satisfiable bool
	Message     string
	Oneline     string
	Tree        string
}
