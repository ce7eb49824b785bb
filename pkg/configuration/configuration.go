package configuration

import (
	"math"

	"github.com/arthur-debert/keepspec/pkg/classspec"
	"github.com/arthur-debert/keepspec/pkg/jars"
)

// ForceProcessingTimestamp is the LastModified value meaning "always reprocess"
const ForceProcessingTimestamp int64 = math.MaxInt64

// Configuration is the complete set of processing options
type Configuration struct {
	// Input, output and library jars
	Jars jars.Set

	// Keep rules, in declaration order
	Keep                []*classspec.KeepClassSpecification
	WhyAreYouKeeping    []*classspec.ClassSpecification
	AssumeNoSideEffects []*classspec.ClassSpecification

	// Processing switches
	Shrink                           bool
	Optimize                         bool
	Obfuscate                        bool
	Preverify                        bool
	AllowAccessModification          bool
	MergeInterfacesAggressively      bool
	MicroEdition                     bool
	Android                          bool
	KeepKotlinMetadata               bool
	SkipNonPublicLibraryClasses      bool
	SkipNonPublicLibraryClassMembers bool
	OverloadAggressively             bool
	UseUniqueClassMemberNames        bool
	UseMixedCaseClassNames           bool
	KeepParameterNames               bool
	Verbose                          bool
	IgnoreWarnings                   bool
	AddConfigurationDebugging        bool

	TargetClassVersion ClassVersion
	OptimizationPasses int
	LastModified       int64

	// Signing credentials, index-correlated by the packaging tool
	KeyStores         []string
	KeyStorePasswords []string
	KeyAliases        []string
	KeyPasswords      []string

	// Filter lists: nil is unset, empty matches everything
	KeepAttributes            []string
	KeepPackageNames          []string
	KeepDirectories           []string
	Optimizations             []string
	Warn                      []string
	Note                      []string
	AdaptClassStrings         []string
	AdaptResourceFileNames    []string
	AdaptResourceFileContents []string

	// Input files
	ApplyMapping                 string
	ObfuscationDictionary        string
	ClassObfuscationDictionary   string
	PackageObfuscationDictionary string
	IncludedConfigurations       []string

	// Print targets
	PrintSeeds         Target
	PrintUsage         Target
	PrintMapping       Target
	PrintConfiguration Target
	Dump               Target

	// Naming options; nil is unset
	RepackageClasses        *string
	FlattenPackageHierarchy *string
	NewSourceFileAttribute  *string
}

// New returns a configuration with the documented defaults
func New() *Configuration {
	return &Configuration{
		Shrink:                 true,
		Optimize:               true,
		Obfuscate:              true,
		Preverify:              true,
		UseMixedCaseClassNames: true,
		OptimizationPasses:     1,
	}
}

// IsForced reports whether ForceProcessing was applied
func (c *Configuration) IsForced() bool {
	return c.LastModified == ForceProcessingTimestamp
}

// PrintTargets returns the print-family options by verb name
func (c *Configuration) PrintTargets() map[string]Target {
	return map[string]Target{
		"printseeds":         c.PrintSeeds,
		"printusage":         c.PrintUsage,
		"printmapping":       c.PrintMapping,
		"printconfiguration": c.PrintConfiguration,
		"dump":               c.Dump,
	}
}
