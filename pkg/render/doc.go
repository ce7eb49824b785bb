// Package render turns a frozen Configuration back into text.
//
// Six formats are registered:
//
//	text      the shrinker's own option syntax
//	xml       the build-tool task element
//	yaml      a YAML rule file
//	toml      a TOML rule file
//	json      the same document as JSON
//	markdown  a readable summary
//
// The yaml and toml output uses the rule file keys and loads back with
// the rulefile package. Signing passwords are left out of the text form.
package render
