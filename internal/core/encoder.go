package core

import "sort"

// Encoding is a CNF formula over VersionedPackage variables, built from
// an Index and Dependencies map: one variable per versioned package,
// at-most-one clauses per package, and a dependency-satisfaction clause
// per requirement. A satisfying assignment's true variables name the
// packages in the chosen setup.
//
// Grounded on the teacher's gophersat-based APT solver
// (internal/core/apt_solver.go's buildSolverState/buildSolverClauses),
// generalized from Debian package metadata to this module's integer
// version ranges.
type Encoding struct {
	index   Index
	deps    Dependencies
	vpToVar map[VersionedPackage]int
	varToVp map[int]VersionedPackage
	clauses [][]int
}

// NewEncoding builds the bijection and clause set for one resolution
// instance. The formula is built fresh for every call; nothing is cached
// across queries (see the resource model in SPEC_FULL.md §5).
func NewEncoding(index Index, deps Dependencies) *Encoding {
	e := &Encoding{
		index:   index,
		deps:    deps,
		vpToVar: make(map[VersionedPackage]int, len(deps)),
		varToVp: make(map[int]VersionedPackage, len(deps)),
	}
	e.buildBijection()
	e.buildClauses()
	return e
}

// buildBijection assigns dense variable ids 1..N to every VersionedPackage
// that is a key of the dependency map, in a deterministic (name, version)
// order so that repeated encodings of the same instance are identical.
func (e *Encoding) buildBijection() {
	keys := make([]VersionedPackage, 0, len(e.deps))
	for vp := range e.deps {
		keys = append(keys, vp)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Name != keys[j].Name {
			return keys[i].Name < keys[j].Name
		}
		return keys[i].Version < keys[j].Version
	})
	for i, vp := range keys {
		id := i + 1
		e.vpToVar[vp] = id
		e.varToVp[id] = vp
	}
}

func (e *Encoding) buildClauses() {
	e.addAtMostOneClauses()
	e.addDependencyClauses()
}

// addAtMostOneClauses forbids two versions of the same package from
// being selected simultaneously.
func (e *Encoding) addAtMostOneClauses() {
	for name, versions := range e.index {
		ids := make([]int, 0, len(versions))
		for _, v := range versions {
			if id, ok := e.vpToVar[VersionedPackage{Name: name, Version: v}]; ok {
				ids = append(ids, id)
			}
		}
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				e.clauses = append(e.clauses, []int{-ids[i], -ids[j]})
			}
		}
	}
}

// addDependencyClauses emits, for every (vp, requirement) pair, the
// clause (¬x_vp ∨ x_{req,v1} ∨ … ∨ x_{req,vm}) where v1..vm are the
// known versions of the requirement that satisfy its allowed range. An
// empty candidate set degenerates to the unit clause (¬x_vp).
func (e *Encoding) addDependencyClauses() {
	for vp, reqs := range e.deps {
		vpID := e.vpToVar[vp]
		for reqName, allowed := range reqs {
			candidates := allowed.Pick(e.index[reqName])
			clause := make([]int, 0, len(candidates)+1)
			clause = append(clause, -vpID)
			for _, v := range candidates {
				if id, ok := e.vpToVar[VersionedPackage{Name: reqName, Version: v}]; ok {
					clause = append(clause, id)
				}
			}
			e.clauses = append(e.clauses, clause)
		}
	}
}

// NumVars returns the number of SAT variables in the formula.
func (e *Encoding) NumVars() int {
	return len(e.vpToVar)
}

// VarFor returns the variable id bound to vp, if any.
func (e *Encoding) VarFor(vp VersionedPackage) (int, bool) {
	id, ok := e.vpToVar[vp]
	return id, ok
}

// PackageFor returns the versioned package bound to a variable id, if any.
func (e *Encoding) PackageFor(id int) (VersionedPackage, bool) {
	vp, ok := e.varToVp[id]
	return vp, ok
}

// Clauses returns a copy of the formula's clause set in DIMACS-style
// int literal form (positive = variable true, negative = variable false).
func (e *Encoding) Clauses() [][]int {
	out := make([][]int, len(e.clauses))
	copy(out, e.clauses)
	return out
}
