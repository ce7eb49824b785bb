package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/arthur-debert/keepspec/pkg/errors"
)

// Registry is a generic, thread-safe registry for storing and retrieving items by name
type Registry[T any] interface {
	// Register adds an item to the registry
	Register(name string, item T) error

	// Get retrieves an item from the registry
	Get(name string) (T, error)

	// Remove removes an item from the registry
	Remove(name string) error

	// List returns all registered names
	List() []string

	// Values returns the registered items ordered by name
	Values() []T

	// Has checks if an item is registered
	Has(name string) bool

	// Count returns the number of registered items
	Count() int
}

// Option configures a registry
type Option func(*options)

type options struct {
	fold bool
	kind string
}

// CaseInsensitive makes name lookups ignore case. Names are stored lowercased.
func CaseInsensitive() Option {
	return func(o *options) { o.fold = true }
}

// Kind sets the noun used in error messages ("flag", "renderer")
func Kind(kind string) Option {
	return func(o *options) { o.kind = kind }
}

type registry[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	opts  options
}

// New creates a new Registry instance
func New[T any](opts ...Option) Registry[T] {
	r := &registry[T]{
		items: make(map[string]T),
		opts:  options{kind: "item"},
	}
	for _, opt := range opts {
		opt(&r.opts)
	}
	return r
}

func (r *registry[T]) key(name string) string {
	if r.opts.fold {
		return strings.ToLower(name)
	}
	return name
}

// Register adds an item to the registry
func (r *registry[T]) Register(name string, item T) error {
	if strings.TrimSpace(name) == "" {
		return errors.Newf(errors.ErrInvalidInput, "%s name cannot be empty", r.opts.kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := r.key(name)
	if _, exists := r.items[key]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "%s '%s' is already registered", r.opts.kind, name).
			WithDetail("name", name)
	}

	r.items[key] = item
	return nil
}

// Get retrieves an item from the registry
func (r *registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[r.key(name)]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "%s '%s' not found", r.opts.kind, name).
			WithDetail("name", name)
	}

	return item, nil
}

// Remove removes an item from the registry
func (r *registry[T]) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := r.key(name)
	if _, exists := r.items[key]; !exists {
		return errors.Newf(errors.ErrNotFound, "%s '%s' not found", r.opts.kind, name)
	}

	delete(r.items, key)
	return nil
}

// List returns all registered names in sorted order
func (r *registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedKeys()
}

// Values returns all registered items ordered by name
func (r *registry[T]) Values() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := r.sortedKeys()
	values := make([]T, 0, len(keys))
	for _, k := range keys {
		values = append(values, r.items[k])
	}
	return values
}

func (r *registry[T]) sortedKeys() []string {
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has checks if an item is registered
func (r *registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.items[r.key(name)]
	return exists
}

// Count returns the number of registered items
func (r *registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// MustRegister registers an item and panics if registration fails.
// Used from package-level table construction where a failure is a programming error.
func MustRegister[T any](reg Registry[T], name string, item T) {
	if err := reg.Register(name, item); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}
