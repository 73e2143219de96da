package core

import (
	"context"

	"github.com/crillab/gophersat/solver"
	"github.com/rs/zerolog/log"
)

// Resolver drives a CDCL SAT search over one (Index, Dependencies)
// instance. Grounded on the teacher's resolveAptWithSolver /
// solveSAT (internal/core/apt_solver.go), which feeds an equivalent
// clause set to the same gophersat backend; generalized here to the
// plain assumption-based solve/any-satisfiable contract of SPEC_FULL.md
// §4.5 rather than the teacher's cost-minimizing variant (minimality is
// handled post hoc by ReduceSetup, not by the SAT search itself).
type Resolver struct {
	Index        Index
	Dependencies Dependencies
}

// NewResolver builds a resolver over an immutable index and dependency map.
func NewResolver(index Index, deps Dependencies) *Resolver {
	return &Resolver{Index: index, Dependencies: deps}
}

// Solve finds a setup where every package in assumptions is installed,
// every stated requirement is met, and no package appears twice. The
// returned setup is not guaranteed minimal — use ReduceSetup for that.
// Returns (false, nil, nil) if no such setup exists.
func (r *Resolver) Solve(ctx context.Context, assumptions []VersionedPackage) (bool, Setup, error) {
	encoding := NewEncoding(r.Index, r.Dependencies)
	clauses := encoding.Clauses()
	for _, vp := range assumptions {
		id, ok := encoding.VarFor(vp)
		if !ok {
			return false, nil, unknownVersionedPackage(vp)
		}
		clauses = append(clauses, []int{id})
	}

	sat, model := runSAT(clauses, encoding.NumVars())
	if !sat {
		log.Ctx(ctx).Debug().Int("vars", encoding.NumVars()).Msg("resolution unsatisfiable")
		return false, nil, nil
	}

	setup := Setup{}
	for id := 1; id <= encoding.NumVars(); id++ {
		if id-1 >= len(model) || !model[id-1] {
			continue
		}
		vp, ok := encoding.PackageFor(id)
		if !ok {
			continue
		}
		setup[vp.Name] = vp.Version
	}
	log.Ctx(ctx).Debug().Int("packages", len(setup)).Msg("resolution satisfied")
	return true, setup, nil
}

// AnySatisfiable reports whether at least one of candidates can be part
// of some valid setup. Diagnostic use only: it adds a single disjunctive
// clause over all candidates and tests satisfiability, it does not
// identify which candidate(s) are responsible.
func (r *Resolver) AnySatisfiable(ctx context.Context, candidates []VersionedPackage) (bool, error) {
	encoding := NewEncoding(r.Index, r.Dependencies)
	clauses := encoding.Clauses()

	clause := make([]int, 0, len(candidates))
	for _, vp := range candidates {
		id, ok := encoding.VarFor(vp)
		if !ok {
			return false, unknownVersionedPackage(vp)
		}
		clause = append(clause, id)
	}
	if len(clause) > 0 {
		clauses = append(clauses, clause)
	}

	sat, _ := runSAT(clauses, encoding.NumVars())
	log.Ctx(ctx).Debug().Int("candidates", len(candidates)).Bool("satisfiable", sat).Msg("any-satisfiable query")
	return sat, nil
}

// runSAT hands a fresh clause set to a fresh gophersat solver instance
// scoped to this call; the solver's native scratch state is never
// retained past the call, satisfying the scoped-acquisition resource
// model of SPEC_FULL.md §5.
func runSAT(clauses [][]int, numVars int) (bool, []bool) {
	problem := solver.ParseSliceNb(clauses, numVars)
	s := solver.New(problem)
	if s.Solve() != solver.Sat {
		return false, nil
	}
	return true, s.Model()
}
