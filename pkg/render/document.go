package render

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/keepspec/pkg/access"
	"github.com/arthur-debert/keepspec/pkg/classspec"
	"github.com/arthur-debert/keepspec/pkg/configuration"
	"github.com/arthur-debert/keepspec/pkg/descriptor"
	"github.com/arthur-debert/keepspec/pkg/flags"
	"github.com/arthur-debert/keepspec/pkg/jars"
)

// Document is the structured view of a Configuration. Its keys are the
// rule file keys, so a YAML or TOML dump loads back as a rule file.
type Document struct {
	Flags              []string `yaml:"flags,omitempty" toml:"flags,omitempty" json:"flags,omitempty"`
	Target             string   `yaml:"target,omitempty" toml:"target,omitempty" json:"target,omitempty"`
	OptimizationPasses int      `yaml:"optimizationpasses,omitempty" toml:"optimizationpasses,omitempty" json:"optimizationpasses,omitempty"`
	ForceProcessing    bool     `yaml:"forceprocessing,omitempty" toml:"forceprocessing,omitempty" json:"forceprocessing,omitempty"`

	RepackageClasses          *string `yaml:"repackageclasses,omitempty" toml:"repackageclasses,omitempty" json:"repackageclasses,omitempty"`
	FlattenPackageHierarchy   *string `yaml:"flattenpackagehierarchy,omitempty" toml:"flattenpackagehierarchy,omitempty" json:"flattenpackagehierarchy,omitempty"`
	RenameSourceFileAttribute *string `yaml:"renamesourcefileattribute,omitempty" toml:"renamesourcefileattribute,omitempty" json:"renamesourcefileattribute,omitempty"`

	// Filter lists are pointers so an empty list survives omitempty
	KeepAttributes            *[]string `yaml:"keepattributes,omitempty" toml:"keepattributes,omitempty" json:"keepattributes,omitempty"`
	KeepPackageNames          *[]string `yaml:"keeppackagenames,omitempty" toml:"keeppackagenames,omitempty" json:"keeppackagenames,omitempty"`
	KeepDirectories           *[]string `yaml:"keepdirectories,omitempty" toml:"keepdirectories,omitempty" json:"keepdirectories,omitempty"`
	Optimizations             *[]string `yaml:"optimizations,omitempty" toml:"optimizations,omitempty" json:"optimizations,omitempty"`
	DontWarn                  *[]string `yaml:"dontwarn,omitempty" toml:"dontwarn,omitempty" json:"dontwarn,omitempty"`
	DontNote                  *[]string `yaml:"dontnote,omitempty" toml:"dontnote,omitempty" json:"dontnote,omitempty"`
	AdaptClassStrings         *[]string `yaml:"adaptclassstrings,omitempty" toml:"adaptclassstrings,omitempty" json:"adaptclassstrings,omitempty"`
	AdaptResourceFileNames    *[]string `yaml:"adaptresourcefilenames,omitempty" toml:"adaptresourcefilenames,omitempty" json:"adaptresourcefilenames,omitempty"`
	AdaptResourceFileContents *[]string `yaml:"adaptresourcefilecontents,omitempty" toml:"adaptresourcefilecontents,omitempty" json:"adaptresourcefilecontents,omitempty"`

	ApplyMapping                 string `yaml:"applymapping,omitempty" toml:"applymapping,omitempty" json:"applymapping,omitempty"`
	ObfuscationDictionary        string `yaml:"obfuscationdictionary,omitempty" toml:"obfuscationdictionary,omitempty" json:"obfuscationdictionary,omitempty"`
	ClassObfuscationDictionary   string `yaml:"classobfuscationdictionary,omitempty" toml:"classobfuscationdictionary,omitempty" json:"classobfuscationdictionary,omitempty"`
	PackageObfuscationDictionary string `yaml:"packageobfuscationdictionary,omitempty" toml:"packageobfuscationdictionary,omitempty" json:"packageobfuscationdictionary,omitempty"`

	InJars      []Jar    `yaml:"injars,omitempty" toml:"injars,omitempty" json:"injars,omitempty"`
	OutJars     []Jar    `yaml:"outjars,omitempty" toml:"outjars,omitempty" json:"outjars,omitempty"`
	LibraryJars []Jar    `yaml:"libraryjars,omitempty" toml:"libraryjars,omitempty" json:"libraryjars,omitempty"`
	Signing     *Signing `yaml:"signing,omitempty" toml:"signing,omitempty" json:"signing,omitempty"`
	Print       *Print   `yaml:"print,omitempty" toml:"print,omitempty" json:"print,omitempty"`

	Keep                []KeepRule  `yaml:"keep,omitempty" toml:"keep,omitempty" json:"keep,omitempty"`
	WhyAreYouKeeping    []ClassRule `yaml:"whyareyoukeeping,omitempty" toml:"whyareyoukeeping,omitempty" json:"whyareyoukeeping,omitempty"`
	AssumeNoSideEffects []ClassRule `yaml:"assumenosideeffects,omitempty" toml:"assumenosideeffects,omitempty" json:"assumenosideeffects,omitempty"`
}

// Jar is one path entry with its filter keys
type Jar struct {
	Path        string `yaml:"path" toml:"path" json:"path"`
	jars.Filter `yaml:",inline"`
}

// Signing holds the signing lists
type Signing struct {
	KeyStores         []string `yaml:"keystores,omitempty" toml:"keystores,omitempty" json:"keystores,omitempty"`
	KeyStorePasswords []string `yaml:"keystorepasswords,omitempty" toml:"keystorepasswords,omitempty" json:"keystorepasswords,omitempty"`
	KeyAliases        []string `yaml:"keyaliases,omitempty" toml:"keyaliases,omitempty" json:"keyaliases,omitempty"`
	KeyPasswords      []string `yaml:"keypasswords,omitempty" toml:"keypasswords,omitempty" json:"keypasswords,omitempty"`
}

// Print holds the set print targets, "-" for standard output
type Print struct {
	Seeds         string `yaml:"seeds,omitempty" toml:"seeds,omitempty" json:"seeds,omitempty"`
	Usage         string `yaml:"usage,omitempty" toml:"usage,omitempty" json:"usage,omitempty"`
	Mapping       string `yaml:"mapping,omitempty" toml:"mapping,omitempty" json:"mapping,omitempty"`
	Configuration string `yaml:"configuration,omitempty" toml:"configuration,omitempty" json:"configuration,omitempty"`
	Dump          string `yaml:"dump,omitempty" toml:"dump,omitempty" json:"dump,omitempty"`
}

// ClassRule is a class specification in external notation
type ClassRule struct {
	Name              string   `yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty"`
	Annotation        string   `yaml:"annotation,omitempty" toml:"annotation,omitempty" json:"annotation,omitempty"`
	Access            string   `yaml:"access,omitempty" toml:"access,omitempty" json:"access,omitempty"`
	Type              string   `yaml:"type,omitempty" toml:"type,omitempty" json:"type,omitempty"`
	Extends           string   `yaml:"extends,omitempty" toml:"extends,omitempty" json:"extends,omitempty"`
	ExtendsAnnotation string   `yaml:"extendsannotation,omitempty" toml:"extendsannotation,omitempty" json:"extendsannotation,omitempty"`
	Comments          string   `yaml:"comments,omitempty" toml:"comments,omitempty" json:"comments,omitempty"`
	Fields            []Member `yaml:"field,omitempty" toml:"field,omitempty" json:"field,omitempty"`
	Constructors      []Member `yaml:"constructor,omitempty" toml:"constructor,omitempty" json:"constructor,omitempty"`
	Methods           []Member `yaml:"method,omitempty" toml:"method,omitempty" json:"method,omitempty"`
}

// KeepRule is a keep specification in external notation
type KeepRule struct {
	Kind      string `yaml:"kind" toml:"kind" json:"kind"`
	ClassRule `yaml:",inline"`

	IncludeDescriptorClasses bool `yaml:"includedescriptorclasses,omitempty" toml:"includedescriptorclasses,omitempty" json:"includedescriptorclasses,omitempty"`
	IncludeCode              bool `yaml:"includecode,omitempty" toml:"includecode,omitempty" json:"includecode,omitempty"`
	AllowShrinking           bool `yaml:"allowshrinking,omitempty" toml:"allowshrinking,omitempty" json:"allowshrinking,omitempty"`
	AllowOptimization        bool `yaml:"allowoptimization,omitempty" toml:"allowoptimization,omitempty" json:"allowoptimization,omitempty"`
	AllowObfuscation         bool `yaml:"allowobfuscation,omitempty" toml:"allowobfuscation,omitempty" json:"allowobfuscation,omitempty"`
}

// Modifiers lists the set modifiers in configuration order
func (k KeepRule) Modifiers() []string {
	var out []string
	for _, m := range []struct {
		name string
		set  bool
	}{
		{"includedescriptorclasses", k.IncludeDescriptorClasses},
		{"includecode", k.IncludeCode},
		{"allowshrinking", k.AllowShrinking},
		{"allowoptimization", k.AllowOptimization},
		{"allowobfuscation", k.AllowObfuscation},
	} {
		if m.set {
			out = append(out, m.name)
		}
	}
	return out
}

// Member is a member specification in external notation. Empty fields
// are unconstrained.
type Member struct {
	Access     string `yaml:"access,omitempty" toml:"access,omitempty" json:"access,omitempty"`
	Annotation string `yaml:"annotation,omitempty" toml:"annotation,omitempty" json:"annotation,omitempty"`
	Type       string `yaml:"type,omitempty" toml:"type,omitempty" json:"type,omitempty"`
	Name       string `yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty"`
	Parameters string `yaml:"parameters,omitempty" toml:"parameters,omitempty" json:"parameters,omitempty"`
}

// NewDocument builds the structured view of cfg
func NewDocument(cfg *configuration.Configuration) *Document {
	doc := &Document{
		Flags:                     AppliedFlags(cfg),
		Target:                    cfg.TargetClassVersion.String(),
		ForceProcessing:           cfg.IsForced(),
		RepackageClasses:          externalPackage(cfg.RepackageClasses),
		FlattenPackageHierarchy:   externalPackage(cfg.FlattenPackageHierarchy),
		RenameSourceFileAttribute: cfg.NewSourceFileAttribute,

		KeepAttributes:            filterList(cfg.KeepAttributes),
		KeepPackageNames:          filterList(cfg.KeepPackageNames),
		KeepDirectories:           filterList(cfg.KeepDirectories),
		Optimizations:             filterList(cfg.Optimizations),
		DontWarn:                  filterList(cfg.Warn),
		DontNote:                  filterList(cfg.Note),
		AdaptClassStrings:         filterList(cfg.AdaptClassStrings),
		AdaptResourceFileNames:    filterList(cfg.AdaptResourceFileNames),
		AdaptResourceFileContents: filterList(cfg.AdaptResourceFileContents),

		ApplyMapping:                 cfg.ApplyMapping,
		ObfuscationDictionary:        cfg.ObfuscationDictionary,
		ClassObfuscationDictionary:   cfg.ClassObfuscationDictionary,
		PackageObfuscationDictionary: cfg.PackageObfuscationDictionary,

		InJars:      jarList(&cfg.Jars.In),
		OutJars:     jarList(&cfg.Jars.Out),
		LibraryJars: jarList(&cfg.Jars.Library),
	}
	if cfg.OptimizationPasses != 1 {
		doc.OptimizationPasses = cfg.OptimizationPasses
	}
	if len(cfg.KeyStores)+len(cfg.KeyStorePasswords)+len(cfg.KeyAliases)+len(cfg.KeyPasswords) > 0 {
		doc.Signing = &Signing{
			KeyStores:         cfg.KeyStores,
			KeyStorePasswords: cfg.KeyStorePasswords,
			KeyAliases:        cfg.KeyAliases,
			KeyPasswords:      cfg.KeyPasswords,
		}
	}
	p := Print{
		Seeds:         cfg.PrintSeeds.String(),
		Usage:         cfg.PrintUsage.String(),
		Mapping:       cfg.PrintMapping.String(),
		Configuration: cfg.PrintConfiguration.String(),
		Dump:          cfg.Dump.String(),
	}
	if p != (Print{}) {
		doc.Print = &p
	}
	for _, spec := range cfg.Keep {
		doc.Keep = append(doc.Keep, NewKeepRule(spec))
	}
	for _, spec := range cfg.WhyAreYouKeeping {
		doc.WhyAreYouKeeping = append(doc.WhyAreYouKeeping, NewClassRule(spec))
	}
	for _, spec := range cfg.AssumeNoSideEffects {
		doc.AssumeNoSideEffects = append(doc.AssumeNoSideEffects, NewClassRule(spec))
	}
	return doc
}

// AppliedFlags lists the flag verbs whose effect is present in cfg
func AppliedFlags(cfg *configuration.Configuration) []string {
	var names []string
	for _, f := range flags.Default().List() {
		if f.Value != f.Default && f.IsApplied(cfg) {
			names = append(names, f.Name)
		}
	}
	return names
}

// NewKeepRule converts a keep specification to external notation
func NewKeepRule(spec *classspec.KeepClassSpecification) KeepRule {
	_, _, impliedShrinking := spec.Kind.Implies()
	return KeepRule{
		Kind:                     string(spec.Kind),
		ClassRule:                NewClassRule(&spec.ClassSpecification),
		IncludeDescriptorClasses: spec.MarkDescriptorClasses,
		IncludeCode:              spec.MarkCodeAttributes,
		AllowShrinking:           spec.AllowShrinking && !impliedShrinking,
		AllowOptimization:        spec.AllowOptimization,
		AllowObfuscation:         spec.AllowObfuscation,
	}
}

// NewClassRule converts a class specification to external notation
func NewClassRule(spec *classspec.ClassSpecification) ClassRule {
	typ, mask := classType(access.Mask{Set: spec.RequiredSetAccessFlags, Unset: spec.RequiredUnsetAccessFlags})
	rule := ClassRule{
		Name:              descriptor.ExternalClassName(spec.ClassName),
		Annotation:        externalAnnotation(spec.AnnotationType),
		Access:            access.Format(mask, false),
		Type:              typ,
		Extends:           descriptor.ExternalClassName(spec.ExtendsClassName),
		ExtendsAnnotation: externalAnnotation(spec.ExtendsAnnotationType),
		Comments:          spec.Comments,
	}
	for _, f := range spec.Fields {
		rule.Fields = append(rule.Fields, newField(f))
	}
	for _, m := range spec.Methods {
		if m.Name == descriptor.ConstructorName {
			rule.Constructors = append(rule.Constructors, newConstructor(m))
		} else {
			rule.Methods = append(rule.Methods, newMethod(m))
		}
	}
	return rule
}

func newField(m classspec.MemberSpecification) Member {
	out := Member{
		Access:     access.Format(access.Mask{Set: m.RequiredSetAccessFlags, Unset: m.RequiredUnsetAccessFlags}, true),
		Annotation: externalAnnotation(m.AnnotationType),
		Name:       m.Name,
	}
	if m.Descriptor != "" {
		out.Type = descriptor.ExternalType(m.Descriptor)
	}
	return out
}

func newMethod(m classspec.MemberSpecification) Member {
	out := Member{
		Access:     access.Format(access.Mask{Set: m.RequiredSetAccessFlags, Unset: m.RequiredUnsetAccessFlags}, false),
		Annotation: externalAnnotation(m.AnnotationType),
		Name:       m.Name,
	}
	if args, ret, wildcard, ok := descriptor.SplitMethodDescriptor(m.Descriptor); ok {
		out.Type = ret
		out.Parameters = parameterList(args, wildcard)
	}
	return out
}

func newConstructor(m classspec.MemberSpecification) Member {
	out := newMethod(m)
	out.Name = ""
	out.Type = ""
	return out
}

func parameterList(args []string, wildcard bool) string {
	if wildcard {
		return descriptor.AnyArguments
	}
	return "(" + strings.Join(args, ",") + ")"
}

// classType splits the class type keyword off an access mask
func classType(m access.Mask) (string, access.Mask) {
	switch {
	case m.Set&access.Annotation != 0 && m.Set&access.Interface != 0:
		m.Set &^= access.Annotation | access.Interface
		return classspec.TypeAnnotation, m
	case m.Set&access.Interface != 0:
		m.Set &^= access.Interface
		return classspec.TypeInterface, m
	case m.Set&access.Enum != 0:
		m.Set &^= access.Enum
		return classspec.TypeEnum, m
	case m.Unset&access.Annotation != 0:
		m.Unset &^= access.Annotation
		return access.Negation + classspec.TypeAnnotation, m
	case m.Unset&access.Interface != 0:
		m.Unset &^= access.Interface
		return access.Negation + classspec.TypeInterface, m
	case m.Unset&access.Enum != 0:
		m.Unset &^= access.Enum
		return access.Negation + classspec.TypeEnum, m
	default:
		return "", m
	}
}

func externalAnnotation(internal string) string {
	if internal == "" {
		return ""
	}
	return descriptor.ExternalType(internal)
}

func externalPackage(internal *string) *string {
	if internal == nil {
		return nil
	}
	external := descriptor.ExternalClassName(*internal)
	return &external
}

func filterList(list []string) *[]string {
	if list == nil {
		return nil
	}
	out := append([]string{}, list...)
	return &out
}

func jarList(list *jars.List) []Jar {
	var out []Jar
	for _, e := range list.Entries() {
		jar := Jar{Path: e.Path.String()}
		if e.Filter != nil {
			jar.Filter = *e.Filter
		}
		out = append(out, jar)
	}
	return out
}

// summary is a one-line description of a class rule for listings
func (c ClassRule) summary() string {
	name := c.Name
	if name == "" {
		name = "*"
	}
	return fmt.Sprintf("%s (%d fields, %d constructors, %d methods)",
		name, len(c.Fields), len(c.Constructors), len(c.Methods))
}
