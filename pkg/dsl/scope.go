package dsl

import (
	"github.com/arthur-debert/keepspec/pkg/classspec"
	"github.com/arthur-debert/keepspec/pkg/errors"
)

// ClassScope is handed to a Block. Its member verbs attach to the class
// specification being defined and fail once the block has returned.
type ClassScope struct {
	task   *Task
	spec   *classspec.ClassSpecification
	closed bool
}

// Spec returns the class specification being defined
func (s *ClassScope) Spec() *classspec.ClassSpecification {
	return s.spec
}

// Field adds a field specification
func (s *ClassScope) Field(args classspec.MemberArgs) error {
	return s.member("field", args, false, false)
}

// Method adds a method specification
func (s *ClassScope) Method(args classspec.MemberArgs) error {
	return s.member("method", args, true, false)
}

// Constructor adds a constructor specification
func (s *ClassScope) Constructor(args classspec.MemberArgs) error {
	return s.member("constructor", args, true, true)
}

func (s *ClassScope) member(verb string, args classspec.MemberArgs, isMethod, isConstructor bool) error {
	if s.closed {
		return errors.Newf(errors.ErrUsage, "%s %s", verb, classspec.MsgNotNested).WithDetail("verb", verb)
	}
	return s.task.member(verb, args, isMethod, isConstructor)
}

// Field adds a field specification to the open class specification
func (t *Task) Field(args classspec.MemberArgs) error {
	return t.member("field", args, false, false)
}

// Method adds a method specification to the open class specification
func (t *Task) Method(args classspec.MemberArgs) error {
	return t.member("method", args, true, false)
}

// Constructor adds a constructor specification to the open class specification
func (t *Task) Constructor(args classspec.MemberArgs) error {
	return t.member("constructor", args, true, true)
}

func (t *Task) member(verb string, args classspec.MemberArgs, isMethod, isConstructor bool) error {
	if err := t.begin(verb); err != nil {
		return err
	}
	if _, err := classspec.AddMember(t.builder, args, isMethod, isConstructor); err != nil {
		return fail(verb, err)
	}
	return nil
}
