package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/keepspec/pkg/config"
	"github.com/arthur-debert/keepspec/pkg/configuration"
	"github.com/arthur-debert/keepspec/pkg/dsl"
	"github.com/arthur-debert/keepspec/pkg/errors"
	"github.com/arthur-debert/keepspec/pkg/testutil"
)

func TestLoad_Defaults(t *testing.T) {
	testutil.NewTestEnvironment(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, config.ColorAuto, cfg.Output.Color)
	assert.Equal(t, []string{"keepspec.toml", "keepspec.yaml", "keepspec.yml", ".keepspec.toml"}, cfg.Rules.Search)
	assert.Empty(t, cfg.Defaults.Target)
	assert.Empty(t, cfg.Defaults.Flags)
	assert.Contains(t, config.DefaultContent(), "[output]")
}

func TestLoad_UserConfigOverrides(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	path := env.WithUserConfig(`
[output]
format = "yaml"

[defaults]
target = "11"
flags = ["dontshrink", "verbose"]
`)
	assert.Equal(t, path, config.UserConfigPath())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, config.ColorAuto, cfg.Output.Color)
	assert.Equal(t, "11", cfg.Defaults.Target)
	assert.Equal(t, []string{"dontshrink", "verbose"}, cfg.Defaults.Flags)
	assert.Len(t, cfg.Rules.Search, 4)
}

func TestLoad_EnvironmentWins(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithUserConfig("[output]\nformat = \"yaml\"\n")
	t.Setenv("KEEPSPEC_OUTPUT_FORMAT", "xml")
	t.Setenv("KEEPSPEC_OUTPUT_COLOR", "never")
	t.Setenv("KEEPSPEC_DEFAULTS_FLAGS", "dontobfuscate,verbose")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "xml", cfg.Output.Format)
	assert.Equal(t, config.ColorNever, cfg.Output.Color)
	assert.Equal(t, []string{"dontobfuscate", "verbose"}, cfg.Defaults.Flags)
}

func TestLoadFrom(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	path := testutil.WriteFile(t, env.Root, "custom.toml", "[output]\ncolor = \"always\"\n")

	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, config.ColorAlways, cfg.Output.Color)

	_, err = config.LoadFrom(filepath.Join(env.Root, "missing.toml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))

	cfg, err = config.LoadFrom("")
	require.NoError(t, err)
	assert.Equal(t, config.ColorAuto, cfg.Output.Color)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed toml", "[output\nformat = "},
		{"unknown color", "[output]\ncolor = \"sometimes\"\n"},
		{"empty format", "[output]\nformat = \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.NewTestEnvironment(t)
			env.WithUserConfig(tt.content)

			_, err := config.Load()
			require.Error(t, err)
			assert.Equal(t, errors.ErrConfigLoad, errors.GetErrorCode(err))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &config.Config{Defaults: config.Defaults{Target: "1.8", Flags: []string{"dontshrink", "android"}}}
	task := dsl.New()
	require.NoError(t, cfg.ApplyDefaults(task))

	out := task.Configuration()
	assert.Equal(t, configuration.ClassVersion1_8, out.TargetClassVersion)
	assert.False(t, out.Shrink)
	assert.True(t, out.Android)
}

func TestApplyDefaults_UnknownFlag(t *testing.T) {
	cfg := &config.Config{Defaults: config.Defaults{Flags: []string{"dontshrink", "shrinkharder"}}}
	task := dsl.New()

	err := cfg.ApplyDefaults(task)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownFlag))
	assert.False(t, task.Configuration().Shrink)
}

func TestFindRuleFile(t *testing.T) {
	env := testutil.NewTestEnvironment(t).WithFileTree(testutil.FileTree{
		"project": testutil.FileTree{
			"keepspec.yaml":  "keep: []\n",
			".keepspec.toml": "",
		},
		"empty": testutil.FileTree{},
	})
	cfg := &config.Config{Rules: config.Rules{Search: []string{"keepspec.toml", "keepspec.yaml", ".keepspec.toml"}}}

	path, err := cfg.FindRuleFile(env.Path("project"))
	require.NoError(t, err)
	assert.Equal(t, env.Path("project/keepspec.yaml"), path)

	_, err = cfg.FindRuleFile(env.Path("empty"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}
