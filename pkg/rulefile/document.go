package rulefile

import (
	"github.com/arthur-debert/keepspec/pkg/classspec"
	"github.com/arthur-debert/keepspec/pkg/jars"
)

// Document is one loaded rule file with its includes
type Document struct {
	// Path is the absolute path of the file, empty for in-memory documents
	Path string
	// Dir is the directory relative paths resolve against
	Dir string
	// Includes are loaded in declaration order and applied before Rules
	Includes []*Document

	Rules Rules
}

// Rules is the decoded body of a rule document
type Rules struct {
	Include []string `koanf:"include"`

	Flags              []string `koanf:"flags"`
	Target             string   `koanf:"target"`
	OptimizationPasses *int     `koanf:"optimizationpasses"`
	ForceProcessing    bool     `koanf:"forceprocessing"`

	RepackageClasses          *string `koanf:"repackageclasses"`
	FlattenPackageHierarchy   *string `koanf:"flattenpackagehierarchy"`
	RenameSourceFileAttribute *string `koanf:"renamesourcefileattribute"`

	InJars      []JarEntry `koanf:"injars"`
	OutJars     []JarEntry `koanf:"outjars"`
	LibraryJars []JarEntry `koanf:"libraryjars"`

	Signing Signing `koanf:"signing"`

	KeepAttributes            []string `koanf:"keepattributes"`
	KeepPackageNames          []string `koanf:"keeppackagenames"`
	KeepDirectories           []string `koanf:"keepdirectories"`
	Optimizations             []string `koanf:"optimizations"`
	DontWarn                  []string `koanf:"dontwarn"`
	DontNote                  []string `koanf:"dontnote"`
	AdaptClassStrings         []string `koanf:"adaptclassstrings"`
	AdaptResourceFileNames    []string `koanf:"adaptresourcefilenames"`
	AdaptResourceFileContents []string `koanf:"adaptresourcefilecontents"`

	ApplyMapping                 string `koanf:"applymapping"`
	ObfuscationDictionary        string `koanf:"obfuscationdictionary"`
	ClassObfuscationDictionary   string `koanf:"classobfuscationdictionary"`
	PackageObfuscationDictionary string `koanf:"packageobfuscationdictionary"`

	Print Print `koanf:"print"`

	Keep                []KeepRule  `koanf:"keep"`
	WhyAreYouKeeping    []ClassRule `koanf:"whyareyoukeeping"`
	AssumeNoSideEffects []ClassRule `koanf:"assumenosideeffects"`
}

// JarEntry is one path with its optional filter keys. A bare string in
// the document decodes as an entry with only Path set.
type JarEntry struct {
	Path        string `koanf:"path"`
	jars.Filter `koanf:",squash"`
}

// Signing holds the index-correlated signing lists
type Signing struct {
	KeyStores         []string `koanf:"keystores"`
	KeyStorePasswords []string `koanf:"keystorepasswords"`
	KeyAliases        []string `koanf:"keyaliases"`
	KeyPasswords      []string `koanf:"keypasswords"`
}

// Print holds the print targets. Each is true or "-" for standard
// output, a path for a file, or absent.
type Print struct {
	Seeds         interface{} `koanf:"seeds"`
	Usage         interface{} `koanf:"usage"`
	Mapping       interface{} `koanf:"mapping"`
	Configuration interface{} `koanf:"configuration"`
	Dump          interface{} `koanf:"dump"`
}

// Members are the member verbs of a rule block
type Members struct {
	Fields       []classspec.MemberArgs `koanf:"field"`
	Constructors []classspec.MemberArgs `koanf:"constructor"`
	Methods      []classspec.MemberArgs `koanf:"method"`
}

// Count returns the number of member entries
func (m Members) Count() int {
	return len(m.Fields) + len(m.Constructors) + len(m.Methods)
}

// KeepRule is a keep-family rule. Kind defaults to "keep".
type KeepRule struct {
	Kind               string `koanf:"kind"`
	classspec.KeepArgs `koanf:",squash"`
	Members            `koanf:",squash"`
}

// ClassRule is a whyareyoukeeping or assumenosideeffects rule
type ClassRule struct {
	classspec.ClassArgs `koanf:",squash"`
	Members             `koanf:",squash"`
}

// All returns the document's includes depth-first, followed by the
// document itself
func (d *Document) All() []*Document {
	var out []*Document
	for _, inc := range d.Includes {
		out = append(out, inc.All()...)
	}
	return append(out, d)
}
