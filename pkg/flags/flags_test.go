package flags_test

import (
	"reflect"
	"sort"
	"testing"

	"github.com/arthur-debert/keepspec/pkg/configuration"
	"github.com/arthur-debert/keepspec/pkg/errors"
	"github.com/arthur-debert/keepspec/pkg/flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_DocumentedDefaultsMatchNew(t *testing.T) {
	cfg := configuration.New()
	for _, f := range flags.Default().List() {
		assert.Equal(t, f.Default, f.Current(cfg), "default of %s.%s", f.Name, f.Field)
	}
}

func TestDefault_FieldNamesExist(t *testing.T) {
	typ := reflect.TypeOf(configuration.Configuration{})
	for _, f := range flags.Default().List() {
		field, ok := typ.FieldByName(f.Field)
		require.True(t, ok, f.Field)
		assert.Equal(t, reflect.Bool, field.Type.Kind(), f.Field)
	}
}

func TestList_Sorted(t *testing.T) {
	names := flags.Default().Names()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Len(t, flags.Default().List(), len(names))
	assert.Contains(t, names, flags.DontPreverify)
}

func TestLookup(t *testing.T) {
	reg := flags.Default()

	f, err := reg.Lookup("DontPreverify")
	require.NoError(t, err)
	assert.Equal(t, "Preverify", f.Field)
	assert.False(t, f.Value)

	_, err = reg.Lookup("dontfly")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownFlag))
	assert.Equal(t, "dontfly", errors.GetErrorDetails(err)["flag"])
}

func TestApply_Idempotent(t *testing.T) {
	cfg := configuration.New()
	reg := flags.Default()

	_, err := reg.Apply(cfg, flags.DontPreverify)
	require.NoError(t, err)
	_, err = reg.Apply(cfg, flags.DontPreverify)
	require.NoError(t, err)

	assert.False(t, cfg.Preverify)
	assert.True(t, cfg.Shrink)
	assert.True(t, cfg.Optimize)
	assert.True(t, cfg.Obfuscate)
}

func TestApply_TouchesOnlyItsField(t *testing.T) {
	for _, f := range flags.Default().List() {
		t.Run(f.Name, func(t *testing.T) {
			before := configuration.New()
			after := configuration.New()
			f.Apply(after)

			assert.Equal(t, f.Value, f.Current(after))
			assert.True(t, f.IsApplied(after))

			// restore the one field and the rest must be untouched
			*fieldPtr(after, f.Field) = *fieldPtr(before, f.Field)
			assert.Equal(t, before, after)
		})
	}
}

func TestApply_OrderIndependent(t *testing.T) {
	a := configuration.New()
	b := configuration.New()
	reg := flags.Default()

	for _, name := range []string{flags.DontShrink, flags.AllowAccessModification, flags.MicroEdition} {
		_, err := reg.Apply(a, name)
		require.NoError(t, err)
	}
	for _, name := range []string{flags.MicroEdition, flags.DontShrink, flags.AllowAccessModification} {
		_, err := reg.Apply(b, name)
		require.NoError(t, err)
	}
	assert.Equal(t, a, b)
}

func TestApply_EveryFlagOrderIndependent(t *testing.T) {
	all := flags.Default().List()
	forward := configuration.New()
	reverse := configuration.New()

	for _, f := range all {
		f.Apply(forward)
	}
	for i := len(all) - 1; i >= 0; i-- {
		all[i].Apply(reverse)
	}
	assert.Equal(t, forward, reverse)
	assert.True(t, forward.SkipNonPublicLibraryClasses)
}

func TestApply_AffirmingFlagNeverReverts(t *testing.T) {
	reg := flags.Default()
	cfg := configuration.New()

	_, err := reg.Apply(cfg, flags.SkipNonPublicLibraryClasses)
	require.NoError(t, err)
	f, err := reg.Apply(cfg, flags.DontSkipNonPublicLibraryClasses)
	require.NoError(t, err)

	assert.True(t, f.Affirms())
	assert.True(t, cfg.SkipNonPublicLibraryClasses)
}

func TestRegister_RequiresAccessor(t *testing.T) {
	reg := flags.NewRegistry()
	err := reg.Register(flags.Flag{Name: "custom"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.False(t, reg.Has("custom"))
}

func fieldPtr(cfg *configuration.Configuration, name string) *bool {
	return reflect.ValueOf(cfg).Elem().FieldByName(name).Addr().Interface().(*bool)
}
