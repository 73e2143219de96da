package core

// CombineMode controls how repeated ranges for the same requirement
// within a single index entry are combined.
type CombineMode int

const (
	// CombineIntersection narrows the allowed set: the dependee must
	// satisfy every stated range. This is the default.
	CombineIntersection CombineMode = iota
	// CombineUnion widens the allowed set: any one stated range suffices.
	// Earlier revisions of this resolver combined ranges this way
	// unconditionally.
	CombineUnion
)

// ParseCombineMode parses the --mode flag value. An empty string is
// treated as the default, intersection.
func ParseCombineMode(value string) (CombineMode, error) {
	switch value {
	case "", "intersection":
		return CombineIntersection, nil
	case "union":
		return CombineUnion, nil
	default:
		return 0, InvalidModeError(value)
	}
}

func (m CombineMode) String() string {
	if m == CombineUnion {
		return "union"
	}
	return "intersection"
}
