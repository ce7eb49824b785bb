package flags

import "github.com/arthur-debert/keepspec/pkg/configuration"

// Verb names of the built-in flags
const (
	DontShrink                           = "dontshrink"
	DontOptimize                         = "dontoptimize"
	DontObfuscate                        = "dontobfuscate"
	DontPreverify                        = "dontpreverify"
	AllowAccessModification              = "allowaccessmodification"
	MergeInterfacesAggressively          = "mergeinterfacesaggressively"
	MicroEdition                         = "microedition"
	Android                              = "android"
	KeepKotlinMetadata                   = "keepkotlinmetadata"
	DontSkipNonPublicLibraryClassMembers = "dontskipnonpubliclibraryclassmembers"
	DontSkipNonPublicLibraryClasses      = "dontskipnonpubliclibraryclasses"
	SkipNonPublicLibraryClasses          = "skipnonpubliclibraryclasses"
	OverloadAggressively                 = "overloadaggressively"
	UseUniqueClassMemberNames            = "useuniqueclassmembernames"
	DontUseMixedCaseClassNames           = "dontusemixedcaseclassnames"
	KeepParameterNames                   = "keepparameternames"
	Verbose                              = "verbose"
	IgnoreWarnings                       = "ignorewarnings"
	AddConfigurationDebugging            = "addconfigurationdebugging"
)

func builtin() []Flag {
	return []Flag{
		{
			Name: DontShrink, Field: "Shrink", Default: true, Value: false,
			Description: "Do not remove unused classes and members",
			field:       func(c *configuration.Configuration) *bool { return &c.Shrink },
		},
		{
			Name: DontOptimize, Field: "Optimize", Default: true, Value: false,
			Description: "Do not optimize the bytecode",
			field:       func(c *configuration.Configuration) *bool { return &c.Optimize },
		},
		{
			Name: DontObfuscate, Field: "Obfuscate", Default: true, Value: false,
			Description: "Do not rename classes and members",
			field:       func(c *configuration.Configuration) *bool { return &c.Obfuscate },
		},
		{
			Name: DontPreverify, Field: "Preverify", Default: true, Value: false,
			Description: "Do not add preverification information",
			field:       func(c *configuration.Configuration) *bool { return &c.Preverify },
		},
		{
			Name: AllowAccessModification, Field: "AllowAccessModification", Default: false, Value: true,
			Description: "Allow widening access modifiers while optimizing",
			field:       func(c *configuration.Configuration) *bool { return &c.AllowAccessModification },
		},
		{
			Name: MergeInterfacesAggressively, Field: "MergeInterfacesAggressively", Default: false, Value: true,
			Description: "Merge interfaces even if their implementations don't implement all of them",
			field:       func(c *configuration.Configuration) *bool { return &c.MergeInterfacesAggressively },
		},
		{
			Name: MicroEdition, Field: "MicroEdition", Default: false, Value: true,
			Description: "Target the micro edition runtime",
			field:       func(c *configuration.Configuration) *bool { return &c.MicroEdition },
		},
		{
			Name: Android, Field: "Android", Default: false, Value: true,
			Description: "Target the Android runtime",
			field:       func(c *configuration.Configuration) *bool { return &c.Android },
		},
		{
			Name: KeepKotlinMetadata, Field: "KeepKotlinMetadata", Default: false, Value: true,
			Description: "Keep and adapt Kotlin metadata",
			field:       func(c *configuration.Configuration) *bool { return &c.KeepKotlinMetadata },
		},
		{
			Name: DontSkipNonPublicLibraryClassMembers, Field: "SkipNonPublicLibraryClassMembers", Default: false, Value: false,
			Description: "Read non-public members of library classes",
			field:       func(c *configuration.Configuration) *bool { return &c.SkipNonPublicLibraryClassMembers },
		},
		{
			Name: DontSkipNonPublicLibraryClasses, Field: "SkipNonPublicLibraryClasses", Default: false, Value: false,
			Description: "Read non-public library classes",
			field:       func(c *configuration.Configuration) *bool { return &c.SkipNonPublicLibraryClasses },
		},
		{
			Name: SkipNonPublicLibraryClasses, Field: "SkipNonPublicLibraryClasses", Default: false, Value: true,
			Description: "Skip non-public library classes while reading library jars",
			field:       func(c *configuration.Configuration) *bool { return &c.SkipNonPublicLibraryClasses },
		},
		{
			Name: OverloadAggressively, Field: "OverloadAggressively", Default: false, Value: true,
			Description: "Reuse member names aggressively while obfuscating",
			field:       func(c *configuration.Configuration) *bool { return &c.OverloadAggressively },
		},
		{
			Name: UseUniqueClassMemberNames, Field: "UseUniqueClassMemberNames", Default: false, Value: true,
			Description: "Give equal member names the same obfuscated name everywhere",
			field:       func(c *configuration.Configuration) *bool { return &c.UseUniqueClassMemberNames },
		},
		{
			Name: DontUseMixedCaseClassNames, Field: "UseMixedCaseClassNames", Default: true, Value: false,
			Description: "Do not generate mixed-case class names",
			field:       func(c *configuration.Configuration) *bool { return &c.UseMixedCaseClassNames },
		},
		{
			Name: KeepParameterNames, Field: "KeepParameterNames", Default: false, Value: true,
			Description: "Keep parameter names and types of kept methods",
			field:       func(c *configuration.Configuration) *bool { return &c.KeepParameterNames },
		},
		{
			Name: Verbose, Field: "Verbose", Default: false, Value: true,
			Description: "Write more information during processing",
			field:       func(c *configuration.Configuration) *bool { return &c.Verbose },
		},
		{
			Name: IgnoreWarnings, Field: "IgnoreWarnings", Default: false, Value: true,
			Description: "Continue processing after warnings",
			field:       func(c *configuration.Configuration) *bool { return &c.IgnoreWarnings },
		},
		{
			Name: AddConfigurationDebugging, Field: "AddConfigurationDebugging", Default: false, Value: true,
			Description: "Instrument the output to report missing keep rules at runtime",
			field:       func(c *configuration.Configuration) *bool { return &c.AddConfigurationDebugging },
		},
	}
}
