package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceSetupMinimalForLeaf(t *testing.T) {
	_, deps := testFixture()
	setup := Setup{"a": 1}

	reduced, err := ReduceSetup(deps, setup, []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, Setup{"a": 1}, reduced)
}

func TestReduceSetupMinimalForChain(t *testing.T) {
	_, deps := testFixture()
	setup := Setup{"b": 2, "c": 3}

	reduced, err := ReduceSetup(deps, setup, []string{"b"})
	require.NoError(t, err)
	assert.Equal(t, Setup{"b": 2, "c": 3}, reduced)
}

func TestReduceSetupDropsUnreachablePackages(t *testing.T) {
	_, deps := testFixture()
	setup := Setup{"a": 1, "b": 2, "c": 3}

	reduced, err := ReduceSetup(deps, setup, []string{"c"})
	require.NoError(t, err)
	assert.Equal(t, Setup{"c": 3}, reduced)
}

func TestReduceSetupHandlesCyclesWithoutLooping(t *testing.T) {
	deps := Dependencies{
		{Name: "x", Version: 1}: {"y": NewVersionSet([]VersionRange{{Start: 1, End: 1}})},
		{Name: "y", Version: 1}: {"x": NewVersionSet([]VersionRange{{Start: 1, End: 1}})},
	}
	setup := Setup{"x": 1, "y": 1}

	reduced, err := ReduceSetup(deps, setup, []string{"x"})
	require.NoError(t, err)
	assert.Equal(t, Setup{"x": 1, "y": 1}, reduced)
}

func TestReduceSetupRejectsKeepNameNotInSetup(t *testing.T) {
	_, deps := testFixture()
	_, err := ReduceSetup(deps, Setup{"a": 1}, []string{"missing"})
	require.Error(t, err)
}
