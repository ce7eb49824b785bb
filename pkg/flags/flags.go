// Package flags maps the DSL's boolean-setter verbs onto Configuration
// fields. Every flag writes one constant value into one field, so applying
// a flag is idempotent and independent of the order flags are applied in.
package flags

import (
	"sync"

	"github.com/arthur-debert/keepspec/pkg/configuration"
	"github.com/arthur-debert/keepspec/pkg/errors"
	"github.com/arthur-debert/keepspec/pkg/registry"
)

// Flag describes one boolean DSL verb
type Flag struct {
	// Name is the verb name, lowercase ("dontshrink")
	Name string
	// Field is the Configuration field the verb writes
	Field string
	// Default is the documented default of Field
	Default bool
	// Value is what the verb writes into Field
	Value bool
	// Description is a one-line summary for listings
	Description string

	field func(*configuration.Configuration) *bool
}

// Affirms reports whether the flag only restates its field's default.
// Such flags never write, so they cannot revert another flag.
func (f Flag) Affirms() bool {
	return f.Value == f.Default
}

// Apply writes the flag's value into cfg
func (f Flag) Apply(cfg *configuration.Configuration) {
	if f.Affirms() {
		return
	}
	*f.field(cfg) = f.Value
}

// Current reports the flag's field value in cfg
func (f Flag) Current(cfg *configuration.Configuration) bool {
	return *f.field(cfg)
}

// IsApplied reports whether cfg already holds the value the flag writes
func (f Flag) IsApplied(cfg *configuration.Configuration) bool {
	return f.Current(cfg) == f.Value
}

// Registry holds the flags addressable by name
type Registry struct {
	flags registry.Registry[Flag]
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{flags: registry.New[Flag](registry.CaseInsensitive(), registry.Kind("flag"))}
}

// Register adds a flag. The name is matched case-insensitively.
func (r *Registry) Register(f Flag) error {
	if f.field == nil {
		return errors.Newf(errors.ErrInvalidInput, "flag '%s' has no field accessor", f.Name)
	}
	return r.flags.Register(f.Name, f)
}

// Lookup returns the flag registered under name
func (r *Registry) Lookup(name string) (Flag, error) {
	f, err := r.flags.Get(name)
	if err != nil {
		return Flag{}, errors.Wrapf(err, errors.ErrUnknownFlag, "unknown flag '%s'", name).
			WithDetail("flag", name)
	}
	return f, nil
}

// Apply looks up name and writes its value into cfg
func (r *Registry) Apply(cfg *configuration.Configuration, name string) (Flag, error) {
	f, err := r.Lookup(name)
	if err != nil {
		return Flag{}, err
	}
	f.Apply(cfg)
	return f, nil
}

// Has reports whether name is a registered flag
func (r *Registry) Has(name string) bool {
	return r.flags.Has(name)
}

// List returns every flag sorted by name
func (r *Registry) List() []Flag {
	return r.flags.Values()
}

// Names returns every flag name, sorted
func (r *Registry) Names() []string {
	return r.flags.List()
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r := NewRegistry()
	for _, f := range builtin() {
		registry.MustRegister(r.flags, f.Name, f)
	}
	return r
})

// Default returns the shared registry of built-in flags
func Default() *Registry {
	return defaultRegistry()
}
