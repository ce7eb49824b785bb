package dsl

import (
	"github.com/arthur-debert/keepspec/pkg/configuration"
	"github.com/arthur-debert/keepspec/pkg/errors"
)

// Print verbs take an optional path. Without one, or with "-", output goes
// to standard output.

// PrintSeeds lists the classes and members matched by the keep rules
func (t *Task) PrintSeeds(path ...string) error {
	return t.setTarget("printseeds", &t.cfg.PrintSeeds, path)
}

// PrintUsage lists the code removed by shrinking
func (t *Task) PrintUsage(path ...string) error {
	return t.setTarget("printusage", &t.cfg.PrintUsage, path)
}

// PrintMapping writes the obfuscation mapping
func (t *Task) PrintMapping(path ...string) error {
	return t.setTarget("printmapping", &t.cfg.PrintMapping, path)
}

// PrintConfiguration writes the complete parsed configuration
func (t *Task) PrintConfiguration(path ...string) error {
	return t.setTarget("printconfiguration", &t.cfg.PrintConfiguration, path)
}

// Dump writes the internal structure of the processed classes
func (t *Task) Dump(path ...string) error {
	return t.setTarget("dump", &t.cfg.Dump, path)
}

func (t *Task) setTarget(verb string, target *configuration.Target, path []string) error {
	if err := t.begin(verb); err != nil {
		return err
	}
	switch {
	case len(path) > 1:
		return errors.Newf(errors.ErrInvalidInput, "%s takes at most one path, got %d", verb, len(path)).
			WithDetail("verb", verb)
	case len(path) == 0 || path[0] == "" || path[0] == "-":
		*target = configuration.StdOut
	default:
		*target = configuration.FileTarget(path[0])
	}
	return nil
}
