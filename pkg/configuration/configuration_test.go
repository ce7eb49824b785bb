package configuration_test

import (
	"math"
	"testing"

	"github.com/arthur-debert/keepspec/pkg/configuration"
	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	cfg := configuration.New()

	assert.True(t, cfg.Shrink)
	assert.True(t, cfg.Optimize)
	assert.True(t, cfg.Obfuscate)
	assert.True(t, cfg.Preverify)
	assert.True(t, cfg.UseMixedCaseClassNames)
	assert.False(t, cfg.AllowAccessModification)
	assert.False(t, cfg.MergeInterfacesAggressively)
	assert.False(t, cfg.SkipNonPublicLibraryClasses)
	assert.False(t, cfg.SkipNonPublicLibraryClassMembers)
	assert.False(t, cfg.MicroEdition)
	assert.False(t, cfg.KeepKotlinMetadata)
	assert.Equal(t, 1, cfg.OptimizationPasses)
	assert.Zero(t, cfg.LastModified)
	assert.False(t, cfg.IsForced())
	assert.Empty(t, cfg.Keep)
	assert.Nil(t, cfg.KeepAttributes)
}

func TestIsForced(t *testing.T) {
	cfg := configuration.New()
	cfg.LastModified = math.MaxInt64
	assert.True(t, cfg.IsForced())
}

func TestTarget(t *testing.T) {
	var unset configuration.Target
	assert.False(t, unset.IsSet())
	_, ok := unset.File()
	assert.False(t, ok)

	assert.True(t, configuration.StdOut.IsSet())
	assert.True(t, configuration.StdOut.IsStdOut())
	_, ok = configuration.StdOut.File()
	assert.False(t, ok, "stdout sentinel is not a trackable file")
	assert.NotEqual(t, unset, configuration.StdOut)

	file := configuration.FileTarget("build/seeds.txt")
	path, ok := file.File()
	assert.True(t, ok)
	assert.Equal(t, "build/seeds.txt", path)
	assert.False(t, file.IsStdOut())
	assert.Equal(t, "-", configuration.StdOut.String())
}

func TestParseClassVersion(t *testing.T) {
	tests := []struct {
		in    string
		major int
		minor int
	}{
		{"1.0", 45, 3},
		{"1.1", 45, 3},
		{"1.2", 46, 0},
		{"1.5", 49, 0},
		{"5", 49, 0},
		{"5.0", 49, 0},
		{"1.8", 52, 0},
		{"8", 52, 0},
		{"9", 53, 0},
		{"11", 55, 0},
		{"17.0", 61, 0},
		{"21", 65, 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, ok := configuration.ParseClassVersion(tt.in)
			assert.True(t, ok)
			assert.Equal(t, tt.major, v.Major())
			assert.Equal(t, tt.minor, v.Minor())
		})
	}
}

func TestParseClassVersion_Unknown(t *testing.T) {
	for _, in := range []string{"", "1.9", "4", "99", "java8", "1.x"} {
		v, ok := configuration.ParseClassVersion(in)
		assert.False(t, ok, in)
		assert.Equal(t, configuration.UnknownClassVersion, v, in)
	}
}

func TestClassVersion_String(t *testing.T) {
	assert.Equal(t, "1.0", configuration.ClassVersion1_0.String())
	assert.Equal(t, "1.8", configuration.ClassVersion1_8.String())
	v, _ := configuration.ParseClassVersion("11")
	assert.Equal(t, "11", v.String())
	assert.Equal(t, "", configuration.UnknownClassVersion.String())
}

func TestExtendFilter(t *testing.T) {
	list := configuration.ExtendFilter(nil)
	assert.NotNil(t, list)
	assert.True(t, configuration.MatchesAll(list))

	list = configuration.ExtendFilter(nil, "Signature,*Annotation*", " InnerClasses ")
	assert.Equal(t, []string{"Signature", "*Annotation*", "InnerClasses"}, list)
	assert.False(t, configuration.MatchesAll(list))

	list = configuration.ExtendFilter(list, "SourceFile")
	assert.Equal(t, []string{"Signature", "*Annotation*", "InnerClasses", "SourceFile"}, list)

	assert.False(t, configuration.MatchesAll(nil))
}
