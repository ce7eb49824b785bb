package classspec_test

import (
	"testing"

	"github.com/arthur-debert/keepspec/pkg/access"
	"github.com/arthur-debert/keepspec/pkg/classspec"
	"github.com/arthur-debert/keepspec/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMember_Constructor(t *testing.T) {
	tests := []struct {
		name       string
		parameters string
		want       string
	}{
		{"no_parameters_key_matches_any", "", ""},
		{"wildcard_matches_any", "(...)", ""},
		{"empty_list", "()", "()V"},
		{"typed_list", "(android.content.Context, int)", "(Landroid/content/Context;I)V"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := classspec.ParseMember(classspec.MemberArgs{Parameters: tt.parameters}, true, true)
			require.NoError(t, err)
			assert.Equal(t, classspec.KindMethod, spec.Kind)
			assert.Equal(t, "<init>", spec.Name)
			assert.Equal(t, tt.want, spec.Descriptor)
		})
	}
}

func TestParseMember_Method(t *testing.T) {
	t.Run("full_signature", func(t *testing.T) {
		spec, err := classspec.ParseMember(classspec.MemberArgs{
			Access:     "public static",
			Type:       "void",
			Name:       "main",
			Parameters: "java.lang.String[]",
		}, true, false)
		require.NoError(t, err)
		assert.Equal(t, "main", spec.Name)
		assert.Equal(t, "([Ljava/lang/String;)V", spec.Descriptor)
		assert.Equal(t, access.Public|access.Static, spec.RequiredSetAccessFlags)
	})

	t.Run("wildcard_parameters_keep_return_type", func(t *testing.T) {
		spec, err := classspec.ParseMember(classspec.MemberArgs{Type: "int", Parameters: "(...)"}, true, false)
		require.NoError(t, err)
		assert.Equal(t, "(...)I", spec.Descriptor)
	})

	t.Run("universal_type_and_wildcard_match_any", func(t *testing.T) {
		spec, err := classspec.ParseMember(classspec.MemberArgs{Type: "***", Parameters: "(...)"}, true, false)
		require.NoError(t, err)
		assert.False(t, spec.HasDescriptor())
	})

	t.Run("no_arguments_matches_all_methods", func(t *testing.T) {
		spec, err := classspec.ParseMember(classspec.MemberArgs{}, true, false)
		require.NoError(t, err)
		assert.True(t, spec.IsWildcard())
	})

	t.Run("annotation", func(t *testing.T) {
		spec, err := classspec.ParseMember(classspec.MemberArgs{Annotation: "org.junit.Test"}, true, false)
		require.NoError(t, err)
		assert.Equal(t, "Lorg/junit/Test;", spec.AnnotationType)
	})
}

func TestParseMember_Field(t *testing.T) {
	spec, err := classspec.ParseMember(classspec.MemberArgs{
		Access: "!private",
		Type:   "java.lang.String",
		Name:   "TAG",
	}, false, false)
	require.NoError(t, err)
	assert.Equal(t, classspec.KindField, spec.Kind)
	assert.Equal(t, "TAG", spec.Name)
	assert.Equal(t, "Ljava/lang/String;", spec.Descriptor)
	assert.Zero(t, spec.RequiredSetAccessFlags)
	assert.Equal(t, access.Private, spec.RequiredUnsetAccessFlags)
}

func TestParseMember_Errors(t *testing.T) {
	tests := []struct {
		name          string
		args          classspec.MemberArgs
		isMethod      bool
		isConstructor bool
	}{
		{"constructor_with_type", classspec.MemberArgs{Type: "void"}, true, true},
		{"constructor_with_name", classspec.MemberArgs{Name: "init"}, true, true},
		{"method_type_without_parameters", classspec.MemberArgs{Type: "int"}, true, false},
		{"method_parameters_without_type", classspec.MemberArgs{Parameters: "()"}, true, false},
		{"field_with_parameters", classspec.MemberArgs{Parameters: "()"}, false, false},
		{"field_of_void", classspec.MemberArgs{Type: "void"}, false, false},
		{"bad_access", classspec.MemberArgs{Access: "!publik"}, false, false},
		{"bad_parameters", classspec.MemberArgs{Parameters: "(int"}, true, true},
		{"bad_name", classspec.MemberArgs{Name: "get value"}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := classspec.ParseMember(tt.args, tt.isMethod, tt.isConstructor)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrParse))
		})
	}
}

func TestAddMember(t *testing.T) {
	t.Run("fails_without_open_spec", func(t *testing.T) {
		b := classspec.NewBuilder()
		for _, verb := range []struct{ isMethod, isConstructor bool }{{false, false}, {true, false}, {true, true}} {
			_, err := classspec.AddMember(b, classspec.MemberArgs{}, verb.isMethod, verb.isConstructor)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrUsage))
			assert.Contains(t, err.Error(), "nested inside a class specification")
		}
	})

	t.Run("routes_to_field_or_method_list", func(t *testing.T) {
		b := classspec.NewBuilder()
		spec := &classspec.ClassSpecification{}
		other := &classspec.ClassSpecification{}

		err := b.Define(spec, func() error {
			if _, err := classspec.AddMember(b, classspec.MemberArgs{Name: "x"}, false, false); err != nil {
				return err
			}
			if _, err := classspec.AddMember(b, classspec.MemberArgs{Parameters: "()"}, true, true); err != nil {
				return err
			}
			_, err := classspec.AddMember(b, classspec.MemberArgs{Name: "run"}, true, false)
			return err
		})
		require.NoError(t, err)

		require.Len(t, spec.Fields, 1)
		require.Len(t, spec.Methods, 2)
		assert.Equal(t, "x", spec.Fields[0].Name)
		assert.Equal(t, "<init>", spec.Methods[0].Name)
		assert.Equal(t, "run", spec.Methods[1].Name)
		assert.Zero(t, other.MemberCount())
	})

	t.Run("parse_error_leaves_spec_untouched", func(t *testing.T) {
		b := classspec.NewBuilder()
		spec := &classspec.ClassSpecification{}
		require.NoError(t, b.Open(spec))
		defer b.Close()

		_, err := classspec.AddMember(b, classspec.MemberArgs{Access: "bogus"}, true, false)
		require.Error(t, err)
		assert.Zero(t, spec.MemberCount())
	})
}
