package classspec

import (
	"github.com/arthur-debert/keepspec/pkg/errors"
)

// Usage error messages
const (
	MsgNotNested = "must be nested inside a class specification"
	MsgNested    = "class specifications cannot be nested"
)

// Builder tracks the class specification whose block is executing
type Builder struct {
	current *ClassSpecification
}

// NewBuilder returns a builder with no open specification
func NewBuilder() *Builder {
	return &Builder{}
}

// Open makes spec the current specification
func (b *Builder) Open(spec *ClassSpecification) error {
	if b.current != nil {
		return errors.New(errors.ErrUsage, MsgNested)
	}
	b.current = spec
	return nil
}

// Close drops the current specification
func (b *Builder) Close() {
	b.current = nil
}

// Current returns the open specification, if any
func (b *Builder) Current() (*ClassSpecification, bool) {
	return b.current, b.current != nil
}

// CurrentOrFail returns the open specification or a usage error
func (b *Builder) CurrentOrFail() (*ClassSpecification, error) {
	if b.current == nil {
		return nil, errors.New(errors.ErrUsage, MsgNotNested)
	}
	return b.current, nil
}

// Define opens spec, runs block (when non-nil) and closes spec again,
// whether or not the block fails.
func (b *Builder) Define(spec *ClassSpecification, block func() error) error {
	if err := b.Open(spec); err != nil {
		return err
	}
	defer b.Close()
	if block == nil {
		return nil
	}
	return block()
}
