package classspec_test

import (
	"testing"

	"github.com/arthur-debert/keepspec/pkg/access"
	"github.com/arthur-debert/keepspec/pkg/classspec"
	"github.com/arthur-debert/keepspec/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClassSpecification(t *testing.T) {
	t.Run("qualifiers", func(t *testing.T) {
		spec, err := classspec.NewClassSpecification(classspec.ClassArgs{
			Name:       "com.example.MyClass",
			Annotation: "com.example.Keep",
			Access:     "public,!abstract",
			Extends:    "android.app.Activity",
		})
		require.NoError(t, err)

		assert.Equal(t, "com/example/MyClass", spec.ClassName)
		assert.Equal(t, "Lcom/example/Keep;", spec.AnnotationType)
		assert.Equal(t, access.Public, spec.RequiredSetAccessFlags)
		assert.Equal(t, access.Abstract, spec.RequiredUnsetAccessFlags)
		assert.Equal(t, "android/app/Activity", spec.ExtendsClassName)
		assert.Empty(t, spec.Fields)
		assert.Empty(t, spec.Methods)
	})

	t.Run("empty_record_matches_any_class", func(t *testing.T) {
		spec, err := classspec.NewClassSpecification(classspec.ClassArgs{})
		require.NoError(t, err)
		assert.Equal(t, classspec.ClassSpecification{}, *spec)
	})

	t.Run("implements_is_extends", func(t *testing.T) {
		spec, err := classspec.NewClassSpecification(classspec.ClassArgs{Implements: "java.io.Serializable"})
		require.NoError(t, err)
		assert.Equal(t, "java/io/Serializable", spec.ExtendsClassName)
	})

	t.Run("class_types", func(t *testing.T) {
		tests := []struct {
			typ       string
			wantSet   access.Flags
			wantUnset access.Flags
		}{
			{"class", 0, 0},
			{"interface", access.Interface, 0},
			{"!interface", 0, access.Interface},
			{"enum", access.Enum, 0},
			{"@interface", access.Annotation | access.Interface, 0},
			{"!@interface", 0, access.Annotation},
		}
		for _, tt := range tests {
			spec, err := classspec.NewClassSpecification(classspec.ClassArgs{Type: tt.typ})
			require.NoError(t, err, tt.typ)
			assert.Equal(t, tt.wantSet, spec.RequiredSetAccessFlags, tt.typ)
			assert.Equal(t, tt.wantUnset, spec.RequiredUnsetAccessFlags, tt.typ)
		}
	})

	t.Run("errors", func(t *testing.T) {
		bad := []classspec.ClassArgs{
			{Access: "pubic"},
			{Type: "struct"},
			{Type: "!class"},
			{Name: "com.example Foo"},
			{Extends: "a.A", Implements: "b.B"},
			{ExtendsAnnotation: "a.Ann"},
			{Type: "interface", Access: "!interface"},
		}
		for _, args := range bad {
			_, err := classspec.NewClassSpecification(args)
			require.Error(t, err, "%+v", args)
			assert.True(t, errors.IsErrorCode(err, errors.ErrParse), "%+v", args)
		}
	})
}

func TestNewKeepClassSpecification(t *testing.T) {
	tests := []struct {
		kind              classspec.KeepKind
		markClasses       bool
		markConditionally bool
		allowShrinking    bool
	}{
		{classspec.Keep, true, false, false},
		{classspec.KeepClassMembers, false, false, false},
		{classspec.KeepClassesWithMembers, true, true, false},
		{classspec.KeepNames, true, false, true},
		{classspec.KeepClassMemberNames, false, false, true},
		{classspec.KeepClassesWithMemberNames, true, true, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			spec, err := classspec.NewKeepClassSpecification(tt.kind, classspec.KeepArgs{
				ClassArgs: classspec.ClassArgs{Name: "Foo"},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.kind, spec.Kind)
			assert.Equal(t, tt.markClasses, spec.MarkClasses)
			assert.Equal(t, tt.markConditionally, spec.MarkConditionally)
			assert.Equal(t, tt.allowShrinking, spec.AllowShrinking)
			assert.False(t, spec.AllowObfuscation)
			assert.Equal(t, "Foo", spec.ClassName)

			mark, conditionally, shrinking := tt.kind.Implies()
			assert.Equal(t, tt.markClasses, mark)
			assert.Equal(t, tt.markConditionally, conditionally)
			assert.Equal(t, tt.allowShrinking, shrinking)
		})
	}

	t.Run("modifiers", func(t *testing.T) {
		spec, err := classspec.NewKeepClassSpecification(classspec.Keep, classspec.KeepArgs{
			IncludeDescriptorClasses: true,
			IncludeCode:              true,
			AllowShrinking:           true,
			AllowOptimization:        true,
			AllowObfuscation:         true,
		})
		require.NoError(t, err)
		assert.True(t, spec.MarkDescriptorClasses)
		assert.True(t, spec.MarkCodeAttributes)
		assert.True(t, spec.AllowShrinking)
		assert.True(t, spec.AllowOptimization)
		assert.True(t, spec.AllowObfuscation)
	})

	t.Run("unknown_kind", func(t *testing.T) {
		_, err := classspec.NewKeepClassSpecification("keepall", classspec.KeepArgs{})
		require.Error(t, err)
		_, ok := classspec.ParseKeepKind("keepall")
		assert.False(t, ok)
	})
}

func TestBuilder(t *testing.T) {
	t.Run("current_or_fail_without_open_spec", func(t *testing.T) {
		b := classspec.NewBuilder()
		_, err := b.CurrentOrFail()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUsage))
		assert.Contains(t, err.Error(), "nested inside a class specification")
	})

	t.Run("define_opens_and_closes", func(t *testing.T) {
		b := classspec.NewBuilder()
		spec := &classspec.ClassSpecification{ClassName: "Foo"}
		err := b.Define(spec, func() error {
			current, err := b.CurrentOrFail()
			require.NoError(t, err)
			assert.Same(t, spec, current)
			return nil
		})
		require.NoError(t, err)
		_, open := b.Current()
		assert.False(t, open)
	})

	t.Run("define_closes_on_block_error", func(t *testing.T) {
		b := classspec.NewBuilder()
		boom := errors.New(errors.ErrParse, "boom")
		err := b.Define(&classspec.ClassSpecification{}, func() error { return boom })
		assert.ErrorIs(t, err, boom)
		_, open := b.Current()
		assert.False(t, open)
	})

	t.Run("nesting_fails", func(t *testing.T) {
		b := classspec.NewBuilder()
		err := b.Define(&classspec.ClassSpecification{}, func() error {
			return b.Define(&classspec.ClassSpecification{}, nil)
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUsage))
		assert.Contains(t, err.Error(), classspec.MsgNested)
	})
}
