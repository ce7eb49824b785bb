// Package registry provides a generic, thread-safe registry keyed by name.
// It backs the DSL flag table and the renderer table.
package registry
