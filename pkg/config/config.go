package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/keepspec/pkg/dsl"
	"github.com/arthur-debert/keepspec/pkg/errors"
)

// Color modes accepted in output.color
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the tool configuration
type Config struct {
	Output   Output   `koanf:"output"`
	Rules    Rules    `koanf:"rules"`
	Defaults Defaults `koanf:"defaults"`
}

// Output controls how results are written
type Output struct {
	Format string `koanf:"format"`
	Color  string `koanf:"color"`
}

// Rules controls rule file discovery
type Rules struct {
	Search []string `koanf:"search"`
}

// Defaults are replayed on every task before the rule file
type Defaults struct {
	Target string   `koanf:"target"`
	Flags  []string `koanf:"flags"`
}

// Validate checks the values that have a closed set
func (c *Config) Validate() error {
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Newf(errors.ErrConfigLoad, "invalid output.color %q", c.Output.Color).
			WithDetail("allowed", []string{ColorAuto, ColorAlways, ColorNever})
	}
	if strings.TrimSpace(c.Output.Format) == "" {
		return errors.New(errors.ErrConfigLoad, "output.format cannot be empty")
	}
	return nil
}

// ApplyDefaults replays the configured target and flags on task
func (c *Config) ApplyDefaults(task *dsl.Task) error {
	if c.Defaults.Target != "" {
		if err := task.Target(c.Defaults.Target); err != nil {
			return errors.Wrap(err, errors.ErrConfigLoad, "invalid defaults.target")
		}
	}
	for _, name := range c.Defaults.Flags {
		if err := task.Flag(name); err != nil {
			return errors.Wrapf(err, errors.ErrConfigLoad, "invalid defaults.flags entry %q", name)
		}
	}
	return nil
}

// FindRuleFile returns the first rules.search entry present in dir
func (c *Config) FindRuleFile(dir string) (string, error) {
	for _, name := range c.Rules.Search {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", errors.Newf(errors.ErrNotFound, "no rule file found in %s", dir).
		WithDetail("search", c.Rules.Search)
}
