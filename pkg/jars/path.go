package jars

import (
	"path/filepath"
)

// PathSpec is either a literal path string, kept unresolved, or a resolved
// file handle holding an absolute path.
type PathSpec struct {
	value    string
	resolved bool
}

// Literal returns an unresolved path spec. Empty strings are legal.
func Literal(path string) PathSpec {
	return PathSpec{value: path}
}

// File returns a resolved file handle. Relative paths are made absolute
// against the working directory.
func File(path string) (PathSpec, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return PathSpec{}, err
	}
	return PathSpec{value: abs, resolved: true}, nil
}

// String returns the literal text or the resolved path
func (p PathSpec) String() string {
	return p.value
}

// IsResolved reports whether the spec is a file handle
func (p PathSpec) IsResolved() bool {
	return p.resolved
}

// Resolve turns a literal into a file handle relative to base. Resolved
// specs and absolute literals are returned as file handles unchanged.
func (p PathSpec) Resolve(base string) PathSpec {
	if p.resolved {
		return p
	}
	if filepath.IsAbs(p.value) {
		return PathSpec{value: filepath.Clean(p.value), resolved: true}
	}
	return PathSpec{value: filepath.Join(base, p.value), resolved: true}
}
