package core

// testFixture returns the (index, dependencies) instance used throughout
// the core package tests, grounded on
// _examples/original_source/tests.py's INDEX_TEST_CASE / DEPS_TEST_CASE:
//
//	a -> {1, 2, 3}, b -> {1, 2}, c -> {1, 3}
//
//	(a,1): no requirements                    -- satisfiable
//	(a,2): b in [1,1]                          -- unsatisfiable (chains to b=1)
//	(a,3): b in [1,1] union [3,3]              -- unsatisfiable (b=3 doesn't exist)
//	(b,1): c in [1,1]                          -- unsatisfiable (chains to c=1)
//	(b,2): c in [1,3]                          -- satisfiable
//	(c,1): d in empty set                      -- unsatisfiable (d doesn't exist)
//	(c,3): no requirements                     -- satisfiable
func testFixture() (Index, Dependencies) {
	index := Index{
		"a": {1, 2, 3},
		"b": {1, 2},
		"c": {1, 3},
	}

	deps := Dependencies{
		{Name: "a", Version: 1}: {},
		{Name: "a", Version: 2}: {"b": NewVersionSet([]VersionRange{{Start: 1, End: 1}})},
		{Name: "a", Version: 3}: {"b": NewVersionSet([]VersionRange{{Start: 1, End: 1}, {Start: 3, End: 3}})},
		{Name: "b", Version: 1}: {"c": NewVersionSet([]VersionRange{{Start: 1, End: 1}})},
		{Name: "b", Version: 2}: {"c": NewVersionSet([]VersionRange{{Start: 1, End: 3}})},
		{Name: "c", Version: 1}: {"d": NewVersionSet(nil)},
		{Name: "c", Version: 3}: {},
	}
	return index, deps
}
