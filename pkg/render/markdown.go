package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/keepspec/pkg/configuration"
)

// markdownRenderer writes a readable summary: processing steps, path
// lists and the keep rules in shrinker syntax.
type markdownRenderer struct{}

func (markdownRenderer) Name() string        { return "markdown" }
func (markdownRenderer) Description() string { return "Markdown summary" }

func (markdownRenderer) Render(w io.Writer, cfg *configuration.Configuration) error {
	doc := NewDocument(cfg)
	var b strings.Builder

	b.WriteString("# Configuration\n\n")
	b.WriteString("| Step | Enabled |\n|------|---------|\n")
	for _, step := range []struct {
		name string
		on   bool
	}{
		{"Shrink", cfg.Shrink},
		{"Optimize", cfg.Optimize},
		{"Obfuscate", cfg.Obfuscate},
		{"Preverify", cfg.Preverify},
	} {
		fmt.Fprintf(&b, "| %s | %s |\n", step.name, yesNo(step.on))
	}
	if doc.Target != "" {
		fmt.Fprintf(&b, "\nTarget class version: **%s**\n", doc.Target)
	}
	if doc.OptimizationPasses != 0 {
		fmt.Fprintf(&b, "\nOptimization passes: **%d**\n", doc.OptimizationPasses)
	}
	if doc.ForceProcessing {
		b.WriteString("\nProcessing is forced.\n")
	}
	if len(doc.Flags) > 0 {
		b.WriteString("\nFlags: " + code(doc.Flags) + "\n")
	}

	if len(doc.InJars)+len(doc.OutJars)+len(doc.LibraryJars) > 0 {
		b.WriteString("\n## Paths\n\n| Role | Path | Filter |\n|------|------|--------|\n")
		for _, group := range []struct {
			role string
			list []Jar
		}{
			{"in", doc.InJars},
			{"out", doc.OutJars},
			{"library", doc.LibraryJars},
		} {
			for _, jar := range group.list {
				fmt.Fprintf(&b, "| %s | `%s` | %s |\n", group.role, jar.Path, escapeCell(jarFilter(&jar.Filter)))
			}
		}
	}

	filters := []struct {
		name string
		list *[]string
	}{
		{"Keep attributes", doc.KeepAttributes},
		{"Keep package names", doc.KeepPackageNames},
		{"Keep directories", doc.KeepDirectories},
		{"Optimizations", doc.Optimizations},
		{"Don't warn", doc.DontWarn},
		{"Don't note", doc.DontNote},
		{"Adapt class strings", doc.AdaptClassStrings},
		{"Adapt resource file names", doc.AdaptResourceFileNames},
		{"Adapt resource file contents", doc.AdaptResourceFileContents},
	}
	var filterLines []string
	for _, f := range filters {
		if f.list == nil {
			continue
		}
		value := "all"
		if len(*f.list) > 0 {
			value = code(*f.list)
		}
		filterLines = append(filterLines, fmt.Sprintf("- %s: %s", f.name, value))
	}
	if len(filterLines) > 0 {
		b.WriteString("\n## Filters\n\n" + strings.Join(filterLines, "\n") + "\n")
	}

	if len(doc.Keep) > 0 {
		b.WriteString("\n## Keep rules\n\n")
		for _, rule := range doc.Keep {
			fmt.Fprintf(&b, "- **%s** %s\n", rule.Kind, rule.summary())
		}
		b.WriteString("\n```\n")
		tw := &textWriter{w: &b}
		for _, rule := range doc.Keep {
			option := "-" + rule.Kind
			for _, m := range rule.Modifiers() {
				option += "," + m
			}
			tw.classSpec(option, rule.ClassRule)
		}
		b.WriteString("```\n")
	}
	for _, group := range []struct {
		title string
		rules []ClassRule
	}{
		{"Why are you keeping", doc.WhyAreYouKeeping},
		{"Assume no side effects", doc.AssumeNoSideEffects},
	} {
		if len(group.rules) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n## %s\n\n", group.title)
		for _, rule := range group.rules {
			b.WriteString("- " + rule.summary() + "\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func yesNo(on bool) string {
	if on {
		return "yes"
	}
	return "no"
}

func code(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "`" + v + "`"
	}
	return strings.Join(quoted, ", ")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
