package dsl

import (
	"github.com/arthur-debert/keepspec/pkg/configuration"
)

// Each filter verb extends its list. Called without filters, the list
// becomes non-nil and matches everything.

// KeepAttributes names the class-file attributes to preserve
func (t *Task) KeepAttributes(filters ...string) error {
	return t.extend("keepattributes", &t.cfg.KeepAttributes, filters)
}

// KeepPackageNames names the packages excluded from obfuscation
func (t *Task) KeepPackageNames(filters ...string) error {
	return t.extend("keeppackagenames", &t.cfg.KeepPackageNames, filters)
}

// KeepDirectories names the directories kept in the output jars
func (t *Task) KeepDirectories(filters ...string) error {
	return t.extend("keepdirectories", &t.cfg.KeepDirectories, filters)
}

// Optimizations selects the optimizations to run
func (t *Task) Optimizations(filters ...string) error {
	return t.extend("optimizations", &t.cfg.Optimizations, filters)
}

// DontWarn silences warnings for matching classes
func (t *Task) DontWarn(filters ...string) error {
	return t.extend("dontwarn", &t.cfg.Warn, filters)
}

// DontNote silences notes for matching classes
func (t *Task) DontNote(filters ...string) error {
	return t.extend("dontnote", &t.cfg.Note, filters)
}

// AdaptClassStrings renames class-name strings in matching classes
func (t *Task) AdaptClassStrings(filters ...string) error {
	return t.extend("adaptclassstrings", &t.cfg.AdaptClassStrings, filters)
}

// AdaptResourceFileNames renames matching resource files after their classes
func (t *Task) AdaptResourceFileNames(filters ...string) error {
	return t.extend("adaptresourcefilenames", &t.cfg.AdaptResourceFileNames, filters)
}

// AdaptResourceFileContents rewrites class names inside matching resource files
func (t *Task) AdaptResourceFileContents(filters ...string) error {
	return t.extend("adaptresourcefilecontents", &t.cfg.AdaptResourceFileContents, filters)
}

func (t *Task) extend(verb string, list *[]string, filters []string) error {
	if err := t.begin(verb); err != nil {
		return err
	}
	*list = configuration.ExtendFilter(*list, filters...)
	return nil
}
