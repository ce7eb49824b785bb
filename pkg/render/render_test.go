package render_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/keepspec/pkg/classspec"
	"github.com/arthur-debert/keepspec/pkg/configuration"
	"github.com/arthur-debert/keepspec/pkg/dsl"
	"github.com/arthur-debert/keepspec/pkg/errors"
	"github.com/arthur-debert/keepspec/pkg/render"
	"github.com/arthur-debert/keepspec/pkg/rulefile"
)

func keepArgs(name string) classspec.KeepArgs {
	return classspec.KeepArgs{ClassArgs: classspec.ClassArgs{Name: name}}
}

// appConfiguration builds a configuration touching most option groups
func appConfiguration(t *testing.T) *configuration.Configuration {
	t.Helper()
	task := dsl.New()
	require.NoError(t, task.InJarsFiltered(map[string]string{"filter": "!META-INF/**"}, "build/app.jar"))
	require.NoError(t, task.OutJars("build/app-min.jar"))
	require.NoError(t, task.LibraryJarsFiltered(map[string]string{"jarfilter": "*.jar", "filter": "java.base.jmod"}, "/usr/lib/jvm/jmods"))
	require.NoError(t, task.DontShrink())
	require.NoError(t, task.DontUseMixedCaseClassNames())
	require.NoError(t, task.Verbose())
	require.NoError(t, task.Target("1.8"))
	require.NoError(t, task.OptimizationPasses(3))
	require.NoError(t, task.RepackageClasses("com.example.internal"))
	require.NoError(t, task.KeepAttributes())
	require.NoError(t, task.DontWarn("com.google.**", "org.slf4j.**"))
	require.NoError(t, task.PrintSeeds())
	require.NoError(t, task.PrintMapping("out/mapping.txt"))
	require.NoError(t, task.KeyStore("release.keystore"))
	require.NoError(t, task.KeyAlias("release"))

	require.NoError(t, task.Keep(classspec.KeepArgs{ClassArgs: classspec.ClassArgs{Name: "com.example.Main", Access: "public"}},
		func(c *dsl.ClassScope) error {
			return c.Method(classspec.MemberArgs{Access: "public static", Type: "void", Name: "main", Parameters: "java.lang.String[]"})
		}))
	require.NoError(t, task.Keep(keepArgs("MyClass"), func(c *dsl.ClassScope) error {
		return c.Constructor(classspec.MemberArgs{Parameters: "()"})
	}))
	require.NoError(t, task.KeepClassMembers(classspec.KeepArgs{
		ClassArgs:        classspec.ClassArgs{Type: "interface", Name: "com.example.Api", Annotation: "com.example.Exported"},
		AllowObfuscation: true,
	}, func(c *dsl.ClassScope) error {
		if err := c.Field(classspec.MemberArgs{}); err != nil {
			return err
		}
		if err := c.Field(classspec.MemberArgs{Type: "int", Name: "count"}); err != nil {
			return err
		}
		return c.Method(classspec.MemberArgs{Type: "void", Name: "set*", Parameters: "..."})
	}))
	require.NoError(t, task.KeepNames(keepArgs("com.example.model.**")))
	require.NoError(t, task.AssumeNoSideEffects(classspec.ClassArgs{Name: "android.util.Log"}, func(c *dsl.ClassScope) error {
		return c.Method(classspec.MemberArgs{Access: "public static", Type: "int", Name: "d", Parameters: "..."})
	}))
	return task.Freeze()
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"json", "markdown", "text", "toml", "xml", "yaml"}, render.Names())
	assert.Len(t, render.All(), 6)

	r, err := render.Get("TEXT")
	require.NoError(t, err)
	assert.Equal(t, "text", r.Name())
	assert.NotEmpty(t, r.Description())

	_, err = render.Get("csv")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRender))
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Equal(t, "csv", errors.GetErrorDetails(err)["format"])
}

func TestText_DefaultsRenderNothing(t *testing.T) {
	out, err := render.String("text", configuration.New())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestText_Options(t *testing.T) {
	out, err := render.String("text", appConfiguration(t))
	require.NoError(t, err)

	for _, line := range []string{
		"-injars build/app.jar(!META-INF/**)",
		"-outjars build/app-min.jar",
		"-libraryjars /usr/lib/jvm/jmods(*.jar;java.base.jmod)",
		"-target 1.8",
		"-dontshrink",
		"-optimizationpasses 3",
		"-printmapping out/mapping.txt",
		"-dontusemixedcaseclassnames",
		"-repackageclasses com.example.internal",
		"-keepattributes",
		"-verbose",
		"-dontwarn com.google.**,org.slf4j.**",
		"-printseeds",
		"-keepnames class com.example.model.**",
	} {
		assert.Contains(t, strings.Split(out, "\n"), line)
	}
	assert.NotContains(t, out, "-dontoptimize")
	assert.NotContains(t, out, "release")
	assert.True(t, strings.HasPrefix(out, "# Input/output\n"))
}

func TestText_KeepRules(t *testing.T) {
	out, err := render.String("text", appConfiguration(t))
	require.NoError(t, err)

	assert.Contains(t, out, "-keep public class com.example.Main {\n"+
		"    public static void main(java.lang.String[]);\n"+
		"}")
	assert.Contains(t, out, "-keep class MyClass {\n    <init>();\n}")
	assert.Contains(t, out, "-keepclassmembers,allowobfuscation @com.example.Exported interface com.example.Api {\n"+
		"    <fields>;\n"+
		"    int count;\n"+
		"    void set*(...);\n"+
		"}")
	assert.Contains(t, out, "-assumenosideeffects class android.util.Log {\n"+
		"    public static int d(...);\n"+
		"}")
}

func TestText_QuotesPaths(t *testing.T) {
	task := dsl.New()
	require.NoError(t, task.InJars("My Projects/app.jar"))
	require.NoError(t, task.PrintUsage("out/usage (debug).txt"))

	out, err := render.String("text", task.Freeze())
	require.NoError(t, err)
	assert.Contains(t, out, "-injars 'My Projects/app.jar'\n")
	assert.Contains(t, out, "-printusage 'out/usage (debug).txt'\n")
}

func TestText_Comments(t *testing.T) {
	task := dsl.New()
	require.NoError(t, task.IncludeConfiguration("/etc/keepspec/common.toml"))
	require.NoError(t, task.Keep(classspec.KeepArgs{ClassArgs: classspec.ClassArgs{Name: "Main", Comments: "entry point"}}))

	out, err := render.String("text", task.Freeze())
	require.NoError(t, err)
	assert.Contains(t, out, "# included from /etc/keepspec/common.toml\n")
	assert.Contains(t, out, "# entry point\n-keep class Main\n")
}

func TestXML(t *testing.T) {
	out, err := render.String("xml", appConfiguration(t))
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(out))
	root := doc.SelectElement("proguard")
	require.NotNil(t, root)

	assert.Equal(t, "false", root.SelectAttrValue("shrink", ""))
	assert.Equal(t, "", root.SelectAttrValue("optimize", ""))
	assert.Equal(t, "false", root.SelectAttrValue("usemixedcaseclassnames", ""))
	assert.Equal(t, "true", root.SelectAttrValue("verbose", ""))
	assert.Equal(t, "1.8", root.SelectAttrValue("target", ""))
	assert.Equal(t, "3", root.SelectAttrValue("optimizationpasses", ""))
	assert.Equal(t, "true", root.SelectAttrValue("printseeds", ""))
	assert.Equal(t, "out/mapping.txt", root.SelectAttrValue("printmapping", ""))

	injars := root.SelectElements("injar")
	require.Len(t, injars, 1)
	assert.Equal(t, "build/app.jar", injars[0].SelectAttrValue("file", ""))
	assert.Equal(t, "!META-INF/**", injars[0].SelectAttrValue("filter", ""))

	library := root.SelectElement("libraryjar")
	require.NotNil(t, library)
	assert.Equal(t, "*.jar", library.SelectAttrValue("jarfilter", ""))

	keepattr := root.SelectElement("keepattribute")
	require.NotNil(t, keepattr)
	assert.Nil(t, keepattr.SelectAttr("name"))
	assert.Equal(t, "com.google.**,org.slf4j.**", root.SelectElement("dontwarn").SelectAttrValue("filter", ""))

	keeps := root.SelectElements("keep")
	require.Len(t, keeps, 2)
	method := keeps[0].SelectElement("method")
	require.NotNil(t, method)
	assert.Equal(t, "main", method.SelectAttrValue("name", ""))
	assert.Equal(t, "void", method.SelectAttrValue("type", ""))
	assert.Equal(t, "(java.lang.String[])", method.SelectAttrValue("parameters", ""))

	members := root.SelectElement("keepclassmembers")
	require.NotNil(t, members)
	assert.Equal(t, "true", members.SelectAttrValue("allowobfuscation", ""))
	assert.Equal(t, "interface", members.SelectAttrValue("type", ""))
	assert.Len(t, members.SelectElements("field"), 2)

	assert.Len(t, root.SelectElements("keepnames"), 1)
	assert.Len(t, root.SelectElements("assumenosideeffects"), 1)
	assert.Len(t, root.SelectElements("keystore"), 1)
}

func TestDocument_ImpliedModifiersOmitted(t *testing.T) {
	doc := render.NewDocument(appConfiguration(t))
	require.Len(t, doc.Keep, 4)

	names := doc.Keep[3]
	assert.Equal(t, "keepnames", names.Kind)
	assert.False(t, names.AllowShrinking)
	assert.Empty(t, names.Modifiers())

	assert.Equal(t, []string{"allowobfuscation"}, doc.Keep[2].Modifiers())
	assert.Equal(t, []string{"dontshrink", "dontusemixedcaseclassnames", "verbose"}, doc.Flags)
}

func TestDocument_EmptyFilterListSurvives(t *testing.T) {
	doc := render.NewDocument(appConfiguration(t))
	require.NotNil(t, doc.KeepAttributes)
	assert.Empty(t, *doc.KeepAttributes)
	assert.Nil(t, doc.KeepPackageNames)
}

func TestRuleFileRoundTrip(t *testing.T) {
	tests := []struct {
		format string
		parse  rulefile.Format
	}{
		{"yaml", rulefile.FormatYAML},
		{"toml", rulefile.FormatTOML},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			original := appConfiguration(t)
			out, err := render.String(tt.format, original)
			require.NoError(t, err)

			doc, err := rulefile.Parse([]byte(out), tt.parse, "")
			require.NoError(t, err, out)
			task := dsl.New()
			require.NoError(t, doc.Apply(task), out)

			assert.Equal(t, original, task.Freeze())
		})
	}
}

func TestJSON(t *testing.T) {
	out, err := render.String("json", appConfiguration(t))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "1.8", decoded["target"])
	assert.Len(t, decoded["keep"], 4)
	assert.Equal(t, []interface{}{}, decoded["keepattributes"])
}

func TestMarkdown(t *testing.T) {
	out, err := render.String("markdown", appConfiguration(t))
	require.NoError(t, err)

	assert.Contains(t, out, "# Configuration\n")
	assert.Contains(t, out, "| Shrink | no |")
	assert.Contains(t, out, "| Optimize | yes |")
	assert.Contains(t, out, "| in | `build/app.jar` | (!META-INF/**) |")
	assert.Contains(t, out, "- Keep attributes: all")
	assert.Contains(t, out, "- **keepnames** com.example.model.** (0 fields, 0 constructors, 0 methods)")
	assert.Contains(t, out, "```\n-keep public class com.example.Main {")
	assert.Contains(t, out, "## Assume no side effects")
}
