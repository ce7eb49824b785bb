package dsl

import (
	"github.com/arthur-debert/keepspec/pkg/classspec"
	"github.com/arthur-debert/keepspec/pkg/errors"
)

// Block defines the members of an open class specification
type Block func(*ClassScope) error

// Keep keeps matching classes and the members named in block
func (t *Task) Keep(args classspec.KeepArgs, block ...Block) error {
	return t.keep(classspec.Keep, args, block)
}

// KeepClassMembers keeps the named members of matching classes that are kept anyway
func (t *Task) KeepClassMembers(args classspec.KeepArgs, block ...Block) error {
	return t.keep(classspec.KeepClassMembers, args, block)
}

// KeepClassesWithMembers keeps matching classes that have every named member
func (t *Task) KeepClassesWithMembers(args classspec.KeepArgs, block ...Block) error {
	return t.keep(classspec.KeepClassesWithMembers, args, block)
}

// KeepNames protects the names of matching classes from obfuscation
func (t *Task) KeepNames(args classspec.KeepArgs, block ...Block) error {
	return t.keep(classspec.KeepNames, args, block)
}

// KeepClassMemberNames protects the names of the named members
func (t *Task) KeepClassMemberNames(args classspec.KeepArgs, block ...Block) error {
	return t.keep(classspec.KeepClassMemberNames, args, block)
}

// KeepClassesWithMemberNames protects the names of classes that have every named member
func (t *Task) KeepClassesWithMemberNames(args classspec.KeepArgs, block ...Block) error {
	return t.keep(classspec.KeepClassesWithMemberNames, args, block)
}

// KeepRule dispatches on a keep verb name
func (t *Task) KeepRule(kind classspec.KeepKind, args classspec.KeepArgs, block ...Block) error {
	return t.keep(kind, args, block)
}

// WhyAreYouKeeping asks the engine to explain why matching classes are kept
func (t *Task) WhyAreYouKeeping(args classspec.ClassArgs, block ...Block) error {
	return t.classRule("whyareyoukeeping", &t.cfg.WhyAreYouKeeping, args, block)
}

// AssumeNoSideEffects declares matching methods free of side effects
func (t *Task) AssumeNoSideEffects(args classspec.ClassArgs, block ...Block) error {
	return t.classRule("assumenosideeffects", &t.cfg.AssumeNoSideEffects, args, block)
}

func (t *Task) keep(kind classspec.KeepKind, args classspec.KeepArgs, blocks []Block) error {
	verb := string(kind)
	if err := t.begin(verb); err != nil {
		return err
	}
	block, err := t.prepare(verb, blocks)
	if err != nil {
		return err
	}
	spec, err := classspec.NewKeepClassSpecification(kind, args)
	if err != nil {
		return fail(verb, err)
	}
	t.cfg.Keep = append(t.cfg.Keep, spec)
	return t.define(verb, &spec.ClassSpecification, block)
}

func (t *Task) classRule(verb string, list *[]*classspec.ClassSpecification, args classspec.ClassArgs, blocks []Block) error {
	if err := t.begin(verb); err != nil {
		return err
	}
	block, err := t.prepare(verb, blocks)
	if err != nil {
		return err
	}
	spec, err := classspec.NewClassSpecification(args)
	if err != nil {
		return fail(verb, err)
	}
	*list = append(*list, spec)
	return t.define(verb, spec, block)
}

// prepare validates the optional block and the nesting state before any
// specification is recorded
func (t *Task) prepare(verb string, blocks []Block) (Block, error) {
	if len(blocks) > 1 {
		return nil, errors.Newf(errors.ErrInvalidInput, "%s takes at most one block, got %d", verb, len(blocks)).
			WithDetail("verb", verb)
	}
	if _, open := t.builder.Current(); open {
		return nil, errors.Newf(errors.ErrUsage, "%s: %s", verb, classspec.MsgNested).WithDetail("verb", verb)
	}
	if len(blocks) == 0 {
		return nil, nil
	}
	return blocks[0], nil
}

func (t *Task) define(verb string, spec *classspec.ClassSpecification, block Block) error {
	if block == nil {
		return nil
	}
	scope := &ClassScope{task: t, spec: spec}
	err := t.builder.Define(spec, func() error {
		return block(scope)
	})
	scope.closed = true
	if err != nil {
		return fail(verb, err)
	}
	return nil
}
