package app

import (
	"context"

	"resolver/internal/core"
)

// Satisfy resolves a setup that installs (req.Package, req.Version) and
// every package it transitively requires, then reduces it to the
// minimal closure rooted at req.Package before rendering.
func (s Service) Satisfy(ctx context.Context, req SatisfyRequest) (SatisfyResult, error) {
	index, deps, err := s.IndexSource.Load(req.IndexPath, req.Mode)
	if err != nil {
		return SatisfyResult{}, err
	}

	versions, ok := index[req.Package]
	if !ok {
		return SatisfyResult{}, core.UnknownPackageError(req.Package)
	}
	if !containsVersion(versions, req.Version) {
		return SatisfyResult{}, core.UnknownVersionError(req.Package, req.Version)
	}

	vp := core.VersionedPackage{Name: req.Package, Version: req.Version}
	resolver := core.NewResolver(index, deps)
	satisfiable, setup, err := resolver.Solve(ctx, []core.VersionedPackage{vp})
	if err != nil {
		return SatisfyResult{}, err
	}
	if !satisfiable {
		return SatisfyResult{
			Satisfiable: false,
			Message:     "This package version can't be satisfied",
		}, nil
	}

	reduced, err := core.ReduceSetup(deps, setup, []string{req.Package})
	if err != nil {
		return SatisfyResult{}, err
	}

	result := SatisfyResult{Satisfiable: true}
	if req.Oneline {
		result.Oneline = core.RenderOneline(reduced)
	} else {
		result.Tree = core.RenderTree(deps, reduced, req.Package)
	}
	return result, nil
}

func containsVersion(versions []core.Version, v core.Version) bool {
	for _, candidate := range versions {
		if candidate == v {
			return true
		}
	}
	return false
}
