// Package classspec models class and member specifications and builds them
// from typed argument records.
//
// A Builder tracks the single class specification whose rule block is
// currently executing. Member verbs consult Builder.CurrentOrFail, so a
// field, method or constructor specification can only ever be attached to
// the open class specification. Nesting class specifications is not
// supported: the builder holds at most one open specification.
package classspec
