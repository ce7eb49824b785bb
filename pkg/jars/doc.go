// Package jars keeps the ordered input, output and library path lists.
//
// Each role is one sequence of {path, filter} entries. The path and filter
// views exposed for build-tool dependency tracking read from that sequence,
// so they always have the same length and index i of one corresponds to
// index i of the other. Views are live: a view obtained before an Add
// observes the added entry.
//
// Filters are carried as opaque data for the processing engine; nothing
// here interprets or resolves them.
package jars
