package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/arthur-debert/keepspec/pkg/configuration"
)

// xmlRenderer writes the build-tool task form: a <proguard> element whose
// attributes carry the scalar options and whose children carry the lists.
type xmlRenderer struct{}

func (xmlRenderer) Name() string        { return "xml" }
func (xmlRenderer) Description() string { return "build task XML" }

func (xmlRenderer) Render(w io.Writer, cfg *configuration.Configuration) error {
	doc := NewXMLDocument(cfg)
	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

// NewXMLDocument builds the task element tree for cfg
func NewXMLDocument(cfg *configuration.Configuration) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("proguard")
	view := NewDocument(cfg)

	for _, a := range []struct {
		name string
		set  bool
		val  bool
	}{
		{"shrink", !cfg.Shrink, false},
		{"optimize", !cfg.Optimize, false},
		{"obfuscate", !cfg.Obfuscate, false},
		{"preverify", !cfg.Preverify, false},
		{"allowaccessmodification", cfg.AllowAccessModification, true},
		{"mergeinterfacesaggressively", cfg.MergeInterfacesAggressively, true},
		{"microedition", cfg.MicroEdition, true},
		{"android", cfg.Android, true},
		{"keepkotlinmetadata", cfg.KeepKotlinMetadata, true},
		{"skipnonpubliclibraryclasses", cfg.SkipNonPublicLibraryClasses, true},
		{"overloadaggressively", cfg.OverloadAggressively, true},
		{"useuniqueclassmembernames", cfg.UseUniqueClassMemberNames, true},
		{"usemixedcaseclassnames", !cfg.UseMixedCaseClassNames, false},
		{"keepparameternames", cfg.KeepParameterNames, true},
		{"verbose", cfg.Verbose, true},
		{"ignorewarnings", cfg.IgnoreWarnings, true},
		{"addconfigurationdebugging", cfg.AddConfigurationDebugging, true},
		{"forceprocessing", view.ForceProcessing, true},
	} {
		if a.set {
			root.CreateAttr(a.name, strconv.FormatBool(a.val))
		}
	}
	if view.Target != "" {
		root.CreateAttr("target", view.Target)
	}
	if view.OptimizationPasses != 0 {
		root.CreateAttr("optimizationpasses", strconv.Itoa(view.OptimizationPasses))
	}
	optionalAttr(root, "repackageclasses", view.RepackageClasses)
	optionalAttr(root, "flattenpackagehierarchy", view.FlattenPackageHierarchy)
	optionalAttr(root, "renamesourcefileattribute", view.RenameSourceFileAttribute)
	stringAttr(root, "applymapping", view.ApplyMapping)
	stringAttr(root, "obfuscationdictionary", view.ObfuscationDictionary)
	stringAttr(root, "classobfuscationdictionary", view.ClassObfuscationDictionary)
	stringAttr(root, "packageobfuscationdictionary", view.PackageObfuscationDictionary)
	for name, t := range map[string]configuration.Target{
		"printseeds":         cfg.PrintSeeds,
		"printusage":         cfg.PrintUsage,
		"printmapping":       cfg.PrintMapping,
		"printconfiguration": cfg.PrintConfiguration,
		"dump":               cfg.Dump,
	} {
		if t.IsStdOut() {
			root.CreateAttr(name, "true")
		} else if path, ok := t.File(); ok {
			root.CreateAttr(name, path)
		}
	}
	root.SortAttrs()

	for _, path := range cfg.IncludedConfigurations {
		root.CreateComment(" included from " + path + " ")
	}
	jarElements(root, "injar", view.InJars)
	jarElements(root, "outjar", view.OutJars)
	jarElements(root, "libraryjar", view.LibraryJars)
	if view.Signing != nil {
		listElements(root, "keystore", "file", view.Signing.KeyStores)
		listElements(root, "keystorepassword", "value", view.Signing.KeyStorePasswords)
		listElements(root, "keyalias", "name", view.Signing.KeyAliases)
		listElements(root, "keypassword", "value", view.Signing.KeyPasswords)
	}
	filterElement(root, "keepattribute", "name", view.KeepAttributes)
	filterElement(root, "keeppackagename", "name", view.KeepPackageNames)
	filterElement(root, "keepdirectory", "name", view.KeepDirectories)
	filterElement(root, "optimization", "name", view.Optimizations)
	filterElement(root, "dontwarn", "filter", view.DontWarn)
	filterElement(root, "dontnote", "filter", view.DontNote)
	filterElement(root, "adaptclassstrings", "filter", view.AdaptClassStrings)
	filterElement(root, "adaptresourcefilenames", "filter", view.AdaptResourceFileNames)
	filterElement(root, "adaptresourcefilecontents", "filter", view.AdaptResourceFileContents)

	for _, rule := range view.WhyAreYouKeeping {
		classElement(root, "whyareyoukeeping", rule)
	}
	for _, rule := range view.AssumeNoSideEffects {
		classElement(root, "assumenosideeffects", rule)
	}
	for _, rule := range view.Keep {
		el := classElement(root, rule.Kind, rule.ClassRule)
		for _, m := range rule.Modifiers() {
			el.CreateAttr(m, "true")
		}
	}
	return doc
}

func stringAttr(el *etree.Element, name, value string) {
	if value != "" {
		el.CreateAttr(name, value)
	}
}

func optionalAttr(el *etree.Element, name string, value *string) {
	if value != nil {
		el.CreateAttr(name, *value)
	}
}

func jarElements(root *etree.Element, tag string, list []Jar) {
	for _, jar := range list {
		el := root.CreateElement(tag)
		el.CreateAttr("file", jar.Path)
		filter := jar.Filter
		values := filter.Map()
		for _, key := range filter.Keys() {
			el.CreateAttr(key, values[key])
		}
	}
}

func listElements(root *etree.Element, tag, attr string, values []string) {
	for _, v := range values {
		root.CreateElement(tag).CreateAttr(attr, v)
	}
}

func filterElement(root *etree.Element, tag, attr string, list *[]string) {
	if list == nil {
		return
	}
	el := root.CreateElement(tag)
	if len(*list) > 0 {
		el.CreateAttr(attr, strings.Join(*list, ","))
	}
}

func classElement(root *etree.Element, tag string, rule ClassRule) *etree.Element {
	el := root.CreateElement(tag)
	stringAttr(el, "name", rule.Name)
	stringAttr(el, "annotation", rule.Annotation)
	stringAttr(el, "access", rule.Access)
	stringAttr(el, "type", rule.Type)
	stringAttr(el, "extends", rule.Extends)
	stringAttr(el, "extendsannotation", rule.ExtendsAnnotation)
	if rule.Comments != "" {
		el.CreateComment(" " + rule.Comments + " ")
	}
	memberElements(el, "field", rule.Fields)
	memberElements(el, "constructor", rule.Constructors)
	memberElements(el, "method", rule.Methods)
	return el
}

func memberElements(parent *etree.Element, tag string, members []Member) {
	for _, m := range members {
		el := parent.CreateElement(tag)
		stringAttr(el, "access", m.Access)
		stringAttr(el, "annotation", m.Annotation)
		stringAttr(el, "type", m.Type)
		stringAttr(el, "name", m.Name)
		stringAttr(el, "parameters", m.Parameters)
	}
}
