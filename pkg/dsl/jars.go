package dsl

import (
	"github.com/arthur-debert/keepspec/pkg/errors"
	"github.com/arthur-debert/keepspec/pkg/jars"
)

// InJars appends an input path without a filter
func (t *Task) InJars(path string) error {
	return t.Jar(jars.RoleIn, jars.Literal(path), nil)
}

// OutJars appends an output path without a filter
func (t *Task) OutJars(path string) error {
	return t.Jar(jars.RoleOut, jars.Literal(path), nil)
}

// LibraryJars appends a library path without a filter
func (t *Task) LibraryJars(path string) error {
	return t.Jar(jars.RoleLibrary, jars.Literal(path), nil)
}

// InJarsFiltered appends an input path with a filter record
func (t *Task) InJarsFiltered(filter map[string]string, path string) error {
	return t.jarFiltered(jars.RoleIn, filter, path)
}

// OutJarsFiltered appends an output path with a filter record
func (t *Task) OutJarsFiltered(filter map[string]string, path string) error {
	return t.jarFiltered(jars.RoleOut, filter, path)
}

// LibraryJarsFiltered appends a library path with a filter record
func (t *Task) LibraryJarsFiltered(filter map[string]string, path string) error {
	return t.jarFiltered(jars.RoleLibrary, filter, path)
}

func (t *Task) jarFiltered(role jars.Role, filter map[string]string, path string) error {
	f, err := jars.FilterFromMap(filter)
	if err != nil {
		return fail(verbForRole(role), err)
	}
	return t.Jar(role, jars.Literal(path), f)
}

// Jar appends path with filter to the list for role. Paths are not
// deduplicated.
func (t *Task) Jar(role jars.Role, path jars.PathSpec, filter *jars.Filter) error {
	verb := verbForRole(role)
	if err := t.begin(verb); err != nil {
		return err
	}
	list := t.cfg.Jars.For(role)
	if list == nil {
		return errors.Newf(errors.ErrInvalidInput, "unknown jar role %q", role)
	}
	list.Add(path, filter)
	return nil
}

func verbForRole(role jars.Role) string {
	return string(role) + "jars"
}
