package rulefile

import (
	"fmt"

	"github.com/arthur-debert/keepspec/pkg/classspec"
	"github.com/arthur-debert/keepspec/pkg/dsl"
	"github.com/arthur-debert/keepspec/pkg/errors"
	"github.com/arthur-debert/keepspec/pkg/jars"
	"github.com/arthur-debert/keepspec/pkg/logging"
)

// Apply replays the document onto task. Included documents are applied
// first, each recorded on the task as an included configuration.
func (d *Document) Apply(task *dsl.Task) error {
	for _, inc := range d.Includes {
		if err := task.IncludeConfiguration(inc.Path); err != nil {
			return d.wrap(err, "include", -1)
		}
		if err := inc.Apply(task); err != nil {
			return err
		}
	}

	logger := logging.GetLogger("rulefile")
	logger.Debug().Str("file", d.name()).Int("keep", len(d.Rules.Keep)).Msg("applying rule file")

	steps := []func(*dsl.Task) error{
		d.applyScalars,
		d.applyJars,
		d.applySigning,
		d.applyFilters,
		d.applyFiles,
		d.applyPrint,
		d.applyKeep,
		d.applyClassRules,
	}
	for _, step := range steps {
		if err := step(task); err != nil {
			return err
		}
	}
	return nil
}

func (d *Document) applyScalars(task *dsl.Task) error {
	r := d.Rules
	for i, name := range r.Flags {
		if err := task.Flag(name); err != nil {
			return d.wrap(err, "flags", i)
		}
	}
	if r.Target != "" {
		if err := task.Target(r.Target); err != nil {
			return d.wrap(err, "target", -1)
		}
	}
	if r.OptimizationPasses != nil {
		if err := task.OptimizationPasses(*r.OptimizationPasses); err != nil {
			return d.wrap(err, "optimizationpasses", -1)
		}
	}
	if r.ForceProcessing {
		if err := task.ForceProcessing(); err != nil {
			return d.wrap(err, "forceprocessing", -1)
		}
	}
	if r.RepackageClasses != nil {
		if err := task.RepackageClasses(*r.RepackageClasses); err != nil {
			return d.wrap(err, "repackageclasses", -1)
		}
	}
	if r.FlattenPackageHierarchy != nil {
		if err := task.FlattenPackageHierarchy(*r.FlattenPackageHierarchy); err != nil {
			return d.wrap(err, "flattenpackagehierarchy", -1)
		}
	}
	if r.RenameSourceFileAttribute != nil {
		if err := task.RenameSourceFileAttribute(*r.RenameSourceFileAttribute); err != nil {
			return d.wrap(err, "renamesourcefileattribute", -1)
		}
	}
	return nil
}

func (d *Document) applyJars(task *dsl.Task) error {
	for _, group := range []struct {
		role    jars.Role
		entries []JarEntry
	}{
		{jars.RoleIn, d.Rules.InJars},
		{jars.RoleOut, d.Rules.OutJars},
		{jars.RoleLibrary, d.Rules.LibraryJars},
	} {
		section := string(group.role) + "jars"
		for i, entry := range group.entries {
			if entry.Path == "" {
				return d.wrap(errors.New(errors.ErrParse, "jar entry has no path"), section, i)
			}
			var filter *jars.Filter
			if !entry.Filter.IsEmpty() {
				f := entry.Filter
				filter = &f
			}
			path := jars.Literal(entry.Path)
			if d.Dir != "" {
				path = path.Resolve(d.Dir)
			}
			if err := task.Jar(group.role, path, filter); err != nil {
				return d.wrap(err, section, i)
			}
		}
	}
	return nil
}

func (d *Document) applySigning(task *dsl.Task) error {
	s := d.Rules.Signing
	for _, group := range []struct {
		section string
		values  []string
		verb    func(string) error
	}{
		{"signing.keystores", s.KeyStores, func(v string) error { return task.KeyStore(resolve(d.Dir, v)) }},
		{"signing.keystorepasswords", s.KeyStorePasswords, task.KeyStorePassword},
		{"signing.keyaliases", s.KeyAliases, task.KeyAlias},
		{"signing.keypasswords", s.KeyPasswords, task.KeyPassword},
	} {
		for i, value := range group.values {
			if err := group.verb(value); err != nil {
				return d.wrap(err, group.section, i)
			}
		}
	}
	return nil
}

func (d *Document) applyFilters(task *dsl.Task) error {
	r := d.Rules
	for _, group := range []struct {
		section string
		values  []string
		verb    func(...string) error
	}{
		{"keepattributes", r.KeepAttributes, task.KeepAttributes},
		{"keeppackagenames", r.KeepPackageNames, task.KeepPackageNames},
		{"keepdirectories", r.KeepDirectories, task.KeepDirectories},
		{"optimizations", r.Optimizations, task.Optimizations},
		{"dontwarn", r.DontWarn, task.DontWarn},
		{"dontnote", r.DontNote, task.DontNote},
		{"adaptclassstrings", r.AdaptClassStrings, task.AdaptClassStrings},
		{"adaptresourcefilenames", r.AdaptResourceFileNames, task.AdaptResourceFileNames},
		{"adaptresourcefilecontents", r.AdaptResourceFileContents, task.AdaptResourceFileContents},
	} {
		// nil means the key was absent; an empty list matches everything
		if group.values == nil {
			continue
		}
		if err := group.verb(group.values...); err != nil {
			return d.wrap(err, group.section, -1)
		}
	}
	return nil
}

func (d *Document) applyFiles(task *dsl.Task) error {
	r := d.Rules
	for _, group := range []struct {
		section string
		value   string
		verb    func(string) error
	}{
		{"applymapping", r.ApplyMapping, task.ApplyMapping},
		{"obfuscationdictionary", r.ObfuscationDictionary, task.ObfuscationDictionary},
		{"classobfuscationdictionary", r.ClassObfuscationDictionary, task.ClassObfuscationDictionary},
		{"packageobfuscationdictionary", r.PackageObfuscationDictionary, task.PackageObfuscationDictionary},
	} {
		if group.value == "" {
			continue
		}
		if err := group.verb(resolve(d.Dir, group.value)); err != nil {
			return d.wrap(err, group.section, -1)
		}
	}
	return nil
}

func (d *Document) applyPrint(task *dsl.Task) error {
	p := d.Rules.Print
	for _, group := range []struct {
		section string
		value   interface{}
		verb    func(...string) error
	}{
		{"print.seeds", p.Seeds, task.PrintSeeds},
		{"print.usage", p.Usage, task.PrintUsage},
		{"print.mapping", p.Mapping, task.PrintMapping},
		{"print.configuration", p.Configuration, task.PrintConfiguration},
		{"print.dump", p.Dump, task.Dump},
	} {
		var err error
		switch v := group.value.(type) {
		case nil:
			continue
		case bool:
			if v {
				err = group.verb()
			}
		case string:
			if v == "" || v == "-" {
				err = group.verb()
			} else {
				err = group.verb(resolve(d.Dir, v))
			}
		default:
			err = errors.Newf(errors.ErrParse, "expected true, \"-\" or a path, got %T", v)
		}
		if err != nil {
			return d.wrap(err, group.section, -1)
		}
	}
	return nil
}

func (d *Document) applyKeep(task *dsl.Task) error {
	for i, rule := range d.Rules.Keep {
		name := rule.Kind
		if name == "" {
			name = string(classspec.Keep)
		}
		kind, ok := classspec.ParseKeepKind(name)
		if !ok {
			return d.wrap(errors.Newf(errors.ErrParse, "unknown keep kind %q", rule.Kind), "keep", i)
		}
		if err := task.KeepRule(kind, rule.KeepArgs, rule.Members.block()...); err != nil {
			return d.wrap(err, "keep", i)
		}
	}
	return nil
}

func (d *Document) applyClassRules(task *dsl.Task) error {
	for _, group := range []struct {
		section string
		rules   []ClassRule
		verb    func(classspec.ClassArgs, ...dsl.Block) error
	}{
		{"whyareyoukeeping", d.Rules.WhyAreYouKeeping, task.WhyAreYouKeeping},
		{"assumenosideeffects", d.Rules.AssumeNoSideEffects, task.AssumeNoSideEffects},
	} {
		for i, rule := range group.rules {
			if err := group.verb(rule.ClassArgs, rule.Members.block()...); err != nil {
				return d.wrap(err, group.section, i)
			}
		}
	}
	return nil
}

// block returns the member verbs as an optional DSL block
func (m Members) block() []dsl.Block {
	if m.Count() == 0 {
		return nil
	}
	return []dsl.Block{func(c *dsl.ClassScope) error {
		for i, args := range m.Fields {
			if err := c.Field(args); err != nil {
				return errors.AddDetail(err, "member", fmt.Sprintf("field[%d]", i))
			}
		}
		for i, args := range m.Constructors {
			if err := c.Constructor(args); err != nil {
				return errors.AddDetail(err, "member", fmt.Sprintf("constructor[%d]", i))
			}
		}
		for i, args := range m.Methods {
			if err := c.Method(args); err != nil {
				return errors.AddDetail(err, "member", fmt.Sprintf("method[%d]", i))
			}
		}
		return nil
	}}
}

func (d *Document) name() string {
	if d.Path == "" {
		return "<inline>"
	}
	return d.Path
}

// wrap locates err in the document. index is -1 for scalar keys.
func (d *Document) wrap(err error, section string, index int) error {
	location := section
	if index >= 0 {
		location = fmt.Sprintf("%s[%d]", section, index)
	}
	wrapped := errors.Wrapf(err, errors.ErrRuleFileParse, "%s: %s", d.name(), location).
		WithDetail("file", d.name()).
		WithDetail("section", section)
	if index >= 0 {
		wrapped.WithDetail("index", index)
	}
	return wrapped
}
