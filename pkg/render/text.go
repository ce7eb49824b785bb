package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/keepspec/pkg/configuration"
	"github.com/arthur-debert/keepspec/pkg/descriptor"
	"github.com/arthur-debert/keepspec/pkg/jars"
)

// textRenderer writes the shrinker's own option syntax, one option per
// line, grouped the way the shrinker documents them.
type textRenderer struct{}

func (textRenderer) Name() string        { return "text" }
func (textRenderer) Description() string { return "shrinker option syntax" }

func (textRenderer) Render(w io.Writer, cfg *configuration.Configuration) error {
	tw := &textWriter{w: w}
	doc := NewDocument(cfg)

	for _, path := range cfg.IncludedConfigurations {
		tw.line("# included from " + quote(path))
	}
	tw.section("Input/output")
	tw.jars("-injars", doc.InJars)
	tw.jars("-outjars", doc.OutJars)
	tw.jars("-libraryjars", doc.LibraryJars)
	tw.flag(cfg.SkipNonPublicLibraryClasses, "-skipnonpubliclibraryclasses")
	if doc.Target != "" {
		tw.line("-target " + doc.Target)
	}
	if doc.ForceProcessing {
		tw.line("-forceprocessing")
	}

	tw.section("Shrinking")
	tw.flag(!cfg.Shrink, "-dontshrink")
	tw.target("-printusage", cfg.PrintUsage)
	tw.classRules("-whyareyoukeeping", doc.WhyAreYouKeeping)

	tw.section("Optimization")
	tw.flag(!cfg.Optimize, "-dontoptimize")
	tw.filter("-optimizations", doc.Optimizations)
	if doc.OptimizationPasses != 0 {
		tw.line(fmt.Sprintf("-optimizationpasses %d", doc.OptimizationPasses))
	}
	tw.classRules("-assumenosideeffects", doc.AssumeNoSideEffects)
	tw.flag(cfg.AllowAccessModification, "-allowaccessmodification")
	tw.flag(cfg.MergeInterfacesAggressively, "-mergeinterfacesaggressively")

	tw.section("Obfuscation")
	tw.flag(!cfg.Obfuscate, "-dontobfuscate")
	tw.target("-printmapping", cfg.PrintMapping)
	tw.file("-applymapping", doc.ApplyMapping)
	tw.file("-obfuscationdictionary", doc.ObfuscationDictionary)
	tw.file("-classobfuscationdictionary", doc.ClassObfuscationDictionary)
	tw.file("-packageobfuscationdictionary", doc.PackageObfuscationDictionary)
	tw.flag(cfg.OverloadAggressively, "-overloadaggressively")
	tw.flag(cfg.UseUniqueClassMemberNames, "-useuniqueclassmembernames")
	tw.flag(!cfg.UseMixedCaseClassNames, "-dontusemixedcaseclassnames")
	tw.filter("-keeppackagenames", doc.KeepPackageNames)
	tw.optional("-flattenpackagehierarchy", doc.FlattenPackageHierarchy)
	tw.optional("-repackageclasses", doc.RepackageClasses)
	tw.filter("-keepattributes", doc.KeepAttributes)
	tw.flag(cfg.KeepParameterNames, "-keepparameternames")
	tw.optional("-renamesourcefileattribute", doc.RenameSourceFileAttribute)
	tw.flag(cfg.KeepKotlinMetadata, "-keepkotlinmetadata")
	tw.filter("-adaptclassstrings", doc.AdaptClassStrings)
	tw.filter("-adaptresourcefilenames", doc.AdaptResourceFileNames)
	tw.filter("-adaptresourcefilecontents", doc.AdaptResourceFileContents)

	tw.section("Preverification")
	tw.flag(!cfg.Preverify, "-dontpreverify")
	tw.flag(cfg.MicroEdition, "-microedition")
	tw.flag(cfg.Android, "-android")

	tw.section("General")
	tw.flag(cfg.Verbose, "-verbose")
	tw.filter("-dontnote", doc.DontNote)
	tw.filter("-dontwarn", doc.DontWarn)
	tw.flag(cfg.IgnoreWarnings, "-ignorewarnings")
	tw.flag(cfg.AddConfigurationDebugging, "-addconfigurationdebugging")
	tw.target("-printconfiguration", cfg.PrintConfiguration)
	tw.target("-dump", cfg.Dump)
	tw.filter("-keepdirectories", doc.KeepDirectories)

	tw.section("Keep")
	tw.target("-printseeds", cfg.PrintSeeds)
	for _, rule := range doc.Keep {
		tw.comments(rule.Comments)
		option := "-" + rule.Kind
		for _, m := range rule.Modifiers() {
			option += "," + m
		}
		tw.classSpec(option, rule.ClassRule)
	}
	return tw.err
}

// textWriter remembers the first write error. Section headers are only
// written once something is printed below them.
type textWriter struct {
	w       io.Writer
	err     error
	pending string
	started bool
}

func (tw *textWriter) section(title string) {
	tw.pending = title
}

func (tw *textWriter) line(s string) {
	if tw.err != nil {
		return
	}
	if tw.pending != "" {
		header := "# " + tw.pending + "\n"
		if tw.started {
			header = "\n" + header
		}
		tw.pending = ""
		if _, tw.err = io.WriteString(tw.w, header); tw.err != nil {
			return
		}
	}
	tw.started = true
	_, tw.err = io.WriteString(tw.w, s+"\n")
}

func (tw *textWriter) flag(set bool, option string) {
	if set {
		tw.line(option)
	}
}

func (tw *textWriter) target(option string, t configuration.Target) {
	if path, ok := t.File(); ok {
		tw.line(option + " " + quote(path))
	} else if t.IsStdOut() {
		tw.line(option)
	}
}

func (tw *textWriter) file(option, path string) {
	if path != "" {
		tw.line(option + " " + quote(path))
	}
}

func (tw *textWriter) optional(option string, value *string) {
	switch {
	case value == nil:
	case *value == "":
		tw.line(option)
	default:
		tw.line(option + " " + quote(*value))
	}
}

func (tw *textWriter) filter(option string, list *[]string) {
	switch {
	case list == nil:
	case len(*list) == 0:
		tw.line(option)
	default:
		tw.line(option + " " + strings.Join(*list, ","))
	}
}

func (tw *textWriter) jars(option string, list []Jar) {
	for _, jar := range list {
		tw.line(option + " " + quote(jar.Path) + jarFilter(&jar.Filter))
	}
}

func (tw *textWriter) comments(comments string) {
	if comments == "" {
		return
	}
	for _, c := range strings.Split(comments, "\n") {
		tw.line("# " + c)
	}
}

func (tw *textWriter) classRules(option string, rules []ClassRule) {
	for _, rule := range rules {
		tw.comments(rule.Comments)
		tw.classSpec(option, rule)
	}
}

func (tw *textWriter) classSpec(option string, rule ClassRule) {
	tw.line(option + " " + classHeader(rule) + classBody(rule))
}

// jarFilter renders the parenthesised filter list. Slots are positional,
// so leading unset slots are dropped and inner ones stay empty.
func jarFilter(f *jars.Filter) string {
	slots := []string{f.AarFilter, f.ApkFilter, f.ZipFilter, f.JmodFilter, f.EarFilter, f.WarFilter, f.JarFilter, f.Filter}
	for len(slots) > 0 && slots[0] == "" {
		slots = slots[1:]
	}
	if len(slots) == 0 {
		return ""
	}
	return "(" + strings.Join(slots, ";") + ")"
}

func classHeader(rule ClassRule) string {
	var parts []string
	if rule.Annotation != "" {
		parts = append(parts, "@"+rule.Annotation)
	}
	if rule.Access != "" {
		parts = append(parts, rule.Access)
	}
	typ := rule.Type
	if typ == "" {
		typ = "class"
	}
	name := rule.Name
	if name == "" {
		name = "*"
	}
	parts = append(parts, typ, name)
	if rule.Extends != "" {
		keyword := "extends"
		if strings.HasSuffix(typ, "interface") {
			keyword = "implements"
		}
		parts = append(parts, keyword)
		if rule.ExtendsAnnotation != "" {
			parts = append(parts, "@"+rule.ExtendsAnnotation)
		}
		parts = append(parts, rule.Extends)
	}
	return strings.Join(parts, " ")
}

func classBody(rule ClassRule) string {
	if len(rule.Fields)+len(rule.Constructors)+len(rule.Methods) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(" {\n")
	for _, f := range rule.Fields {
		b.WriteString("    " + memberLine(f, "<fields>", false) + ";\n")
	}
	for _, c := range rule.Constructors {
		m := c
		m.Name = descriptor.ConstructorName
		if m.Parameters == "" {
			m.Parameters = descriptor.AnyArguments
		}
		b.WriteString("    " + memberLine(m, "", true) + ";\n")
	}
	for _, m := range rule.Methods {
		b.WriteString("    " + memberLine(m, "<methods>", true) + ";\n")
	}
	b.WriteString("}")
	return b.String()
}

// memberLine renders one member. A member with no name and no type is
// written as the wildcard keyword unless it is a constructor.
func memberLine(m Member, wildcard string, isMethod bool) string {
	var parts []string
	if m.Annotation != "" {
		parts = append(parts, "@"+m.Annotation)
	}
	if m.Access != "" {
		parts = append(parts, m.Access)
	}
	if wildcard != "" && m.Name == "" && m.Type == "" {
		return strings.Join(append(parts, wildcard), " ")
	}

	name := m.Name
	if name == "" {
		name = "*"
	}
	typ := m.Type
	if typ == "" && m.Name != descriptor.ConstructorName {
		typ = descriptor.AnyType
	}
	if typ != "" {
		parts = append(parts, typ)
	}
	if isMethod {
		params := m.Parameters
		if params == "" || params == descriptor.AnyArguments {
			params = "(" + descriptor.AnyArguments + ")"
		}
		name += params
	}
	return strings.Join(append(parts, name), " ")
}

// quote wraps paths and names that the option parser would split
func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " \t()[]{}<>,;:=!@#'\"") {
		return "'" + s + "'"
	}
	return s
}
