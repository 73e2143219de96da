package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// parseErrorAt wraps a grammar violation with the line number it
// occurred on, so the failure names the offending line.
func parseErrorAt(line int, cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("parse error at line %d", line)).
		WithCause(cause)
}

func parseError(format string, args ...any) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf(format, args...))
}

func invariantViolation(format string, args ...any) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(fmt.Sprintf(format, args...))
}

// DuplicateDeclarationError reports that the same (name, version) pair
// was declared more than once across an index.
func DuplicateDeclarationError(vp VersionedPackage) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeAlreadyExists).
		WithMsg(fmt.Sprintf("package %s declared more than once", vp))
}

// InvalidModeError reports an unrecognized --mode value.
func InvalidModeError(value string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("invalid combine mode: %q", value))
}

// UnknownPackageError reports that a queried package is absent from the
// index.
func UnknownPackageError(name string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("there is no package named '%s'", name))
}

// UnknownVersionError reports that a queried version is absent from a
// package's known versions.
func UnknownVersionError(name string, version Version) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("there is no version %s of %s", version, name))
}

func unknownVersionedPackage(vp VersionedPackage) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("unknown package version: %s", vp))
}
