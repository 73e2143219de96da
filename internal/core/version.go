// Package core implements the resolution engine: version algebra, the
// index grammar and loader, the SAT encoding, the resolver, and the
// setup reducer and renderer.
package core

import (
	"fmt"
	"sort"
)

// Version is a non-negative integer tag identifying one release of a
// package. Equality and ordering are plain integer comparison.
type Version int

func (v Version) String() string {
	return fmt.Sprintf("%d", int(v))
}

// VersionRange is a closed, non-empty interval [Start, End] of versions.
type VersionRange struct {
	Start Version
	End   Version
}

// NewVersionRange builds a closed range, rejecting End < Start.
func NewVersionRange(start, end Version) (VersionRange, error) {
	if end < start {
		return VersionRange{}, invariantViolation("version range end %s is before start %s", end, start)
	}
	return VersionRange{Start: start, End: end}, nil
}

func (r VersionRange) String() string {
	if r.Start == r.End {
		return r.Start.String()
	}
	return fmt.Sprintf("%s..%s", r.Start, r.End)
}

// Contains reports whether v falls within the closed range.
func (r VersionRange) Contains(v Version) bool {
	return r.Start <= v && v <= r.End
}

// touches reports whether two ranges overlap or touch end-to-end, the
// precondition for Union.
func (r VersionRange) touches(other VersionRange) bool {
	return !(r.End < other.Start) && !(other.End < r.Start)
}

// Union returns the smallest range covering both r and other. Defined
// only when the two ranges touch or overlap.
func (r VersionRange) Union(other VersionRange) (VersionRange, error) {
	if !r.touches(other) {
		return VersionRange{}, invariantViolation("cannot union disjoint ranges %s and %s", r, other)
	}
	start := r.Start
	if other.Start < start {
		start = other.Start
	}
	end := r.End
	if other.End > end {
		end = other.End
	}
	return VersionRange{Start: start, End: end}, nil
}

// VersionSet is a finite union of pairwise-disjoint, non-touching
// VersionRange values, sorted by start.
type VersionSet struct {
	ranges []VersionRange
}

// NewVersionSet normalizes an arbitrary slice of ranges into a sorted,
// disjoint VersionSet by sorting on Start and sweeping, merging any
// ranges that touch or overlap.
func NewVersionSet(ranges []VersionRange) VersionSet {
	if len(ranges) == 0 {
		return VersionSet{}
	}
	sorted := append([]VersionRange(nil), ranges...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	out := make([]VersionRange, 0, len(sorted))
	current := sorted[0]
	for _, r := range sorted[1:] {
		if current.touches(r) {
			merged, _ := current.Union(r) // touches guarantees success
			current = merged
			continue
		}
		out = append(out, current)
		current = r
	}
	out = append(out, current)
	return VersionSet{ranges: out}
}

// Ranges returns the set's normalized ranges, in order.
func (s VersionSet) Ranges() []VersionRange {
	return append([]VersionRange(nil), s.ranges...)
}

// Contains reports whether v belongs to any range in the set.
func (s VersionSet) Contains(v Version) bool {
	i := sort.Search(len(s.ranges), func(i int) bool { return s.ranges[i].End >= v })
	if i == len(s.ranges) {
		return false
	}
	return s.ranges[i].Contains(v)
}

// Union returns the set of versions in either set.
func (s VersionSet) Union(other VersionSet) VersionSet {
	combined := make([]VersionRange, 0, len(s.ranges)+len(other.ranges))
	combined = append(combined, s.ranges...)
	combined = append(combined, other.ranges...)
	return NewVersionSet(combined)
}

// Intersection returns the set of versions in both sets, computed by a
// two-pointer sweep over the already-disjoint, sorted inputs.
func (s VersionSet) Intersection(other VersionSet) VersionSet {
	var out []VersionRange
	i, j := 0, 0
	for i < len(s.ranges) && j < len(other.ranges) {
		left := s.ranges[i]
		right := other.ranges[j]

		if left.End < right.Start {
			i++
			continue
		}
		if right.End < left.Start {
			j++
			continue
		}

		start := left.Start
		if right.Start > start {
			start = right.Start
		}
		if left.End < right.End {
			out = append(out, VersionRange{Start: start, End: left.End})
			i++
		} else {
			out = append(out, VersionRange{Start: start, End: right.End})
			j++
		}
	}
	return VersionSet{ranges: out}
}

// Pick returns the subset of versions that are members of the set.
func (s VersionSet) Pick(versions []Version) []Version {
	var out []Version
	for _, v := range versions {
		if s.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}

// VersionedPackage is a (name, version) pair: the atomic unit the
// resolver selects. Comparable, so it can be used directly as a map key.
type VersionedPackage struct {
	Name    string
	Version Version
}

func (vp VersionedPackage) String() string {
	return fmt.Sprintf("%s %s", vp.Name, vp.Version)
}

// Index maps a package name to its known versions, sorted ascending.
type Index map[string][]Version

// Dependencies maps a versioned package to the VersionSet it requires
// for each package name it depends on.
type Dependencies map[VersionedPackage]map[string]VersionSet

// Setup is a conflict-free selection of at most one version per package.
type Setup map[string]Version
