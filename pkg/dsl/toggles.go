package dsl

import (
	"github.com/arthur-debert/keepspec/pkg/flags"
)

// Flag applies the boolean verb registered under name
func (t *Task) Flag(name string) error {
	if err := t.begin(name); err != nil {
		return err
	}
	f, err := t.flags.Apply(t.cfg, name)
	if err != nil {
		return fail(name, err)
	}
	t.logger.Trace().Str("field", f.Field).Bool("value", f.Value).Msg("flag applied")
	return nil
}

// DontShrink disables shrinking
func (t *Task) DontShrink() error { return t.Flag(flags.DontShrink) }

// DontOptimize disables optimization
func (t *Task) DontOptimize() error { return t.Flag(flags.DontOptimize) }

// DontObfuscate disables obfuscation
func (t *Task) DontObfuscate() error { return t.Flag(flags.DontObfuscate) }

// DontPreverify disables preverification
func (t *Task) DontPreverify() error { return t.Flag(flags.DontPreverify) }

// AllowAccessModification lets optimization widen access modifiers
func (t *Task) AllowAccessModification() error { return t.Flag(flags.AllowAccessModification) }

// MergeInterfacesAggressively merges interfaces even when implementations differ
func (t *Task) MergeInterfacesAggressively() error { return t.Flag(flags.MergeInterfacesAggressively) }

// MicroEdition targets the micro edition runtime
func (t *Task) MicroEdition() error { return t.Flag(flags.MicroEdition) }

// Android targets the Android runtime
func (t *Task) Android() error { return t.Flag(flags.Android) }

// KeepKotlinMetadata keeps and adapts Kotlin metadata
func (t *Task) KeepKotlinMetadata() error { return t.Flag(flags.KeepKotlinMetadata) }

// OverloadAggressively reuses member names aggressively while obfuscating
func (t *Task) OverloadAggressively() error { return t.Flag(flags.OverloadAggressively) }

// UseUniqueClassMemberNames maps equal member names to equal obfuscated names
func (t *Task) UseUniqueClassMemberNames() error { return t.Flag(flags.UseUniqueClassMemberNames) }

// DontUseMixedCaseClassNames avoids class names that differ only in case
func (t *Task) DontUseMixedCaseClassNames() error { return t.Flag(flags.DontUseMixedCaseClassNames) }

// KeepParameterNames keeps parameter names of kept methods
func (t *Task) KeepParameterNames() error { return t.Flag(flags.KeepParameterNames) }

// Verbose asks the engine for more output
func (t *Task) Verbose() error { return t.Flag(flags.Verbose) }

// IgnoreWarnings lets processing continue after warnings
func (t *Task) IgnoreWarnings() error { return t.Flag(flags.IgnoreWarnings) }

// AddConfigurationDebugging instruments the output to report missing rules
func (t *Task) AddConfigurationDebugging() error { return t.Flag(flags.AddConfigurationDebugging) }

// SkipNonPublicLibraryClasses skips non-public library classes while reading
func (t *Task) SkipNonPublicLibraryClasses() error { return t.Flag(flags.SkipNonPublicLibraryClasses) }

// DontSkipNonPublicLibraryClasses restates the default. It never undoes
// SkipNonPublicLibraryClasses.
func (t *Task) DontSkipNonPublicLibraryClasses() error {
	return t.Flag(flags.DontSkipNonPublicLibraryClasses)
}

// DontSkipNonPublicLibraryClassMembers restates the default
func (t *Task) DontSkipNonPublicLibraryClassMembers() error {
	return t.Flag(flags.DontSkipNonPublicLibraryClassMembers)
}
