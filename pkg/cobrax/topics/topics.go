// Package topics adds help topics to a Cobra command tree. Topics are
// text or markdown files read from an fs.FS, usually embedded, and are
// shown by "help <topic>" next to the regular command help.
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/keepspec/pkg/errors"
)

// ListKeyword is the help argument that lists the topics
const ListKeyword = "topics"

// Manager holds the topics of one command tree
type Manager struct {
	fsys         fs.FS
	topics       map[string]*Topic
	originalHelp func(*cobra.Command, []string)
	extensions   []string
	renderer     Renderer
}

// Topic represents a help topic
type Topic struct {
	Name    string
	Path    string
	Content string
}

// Ext returns the file extension of the topic, dot included
func (t *Topic) Ext() string {
	return path.Ext(t.Path)
}

// Options configures the Manager
type Options struct {
	// Extensions is the list of file extensions to consider as topics.
	// Defaults to [".txt", ".md"].
	Extensions []string

	// Renderer formats topic content. Defaults to PlainRenderer.
	Renderer Renderer
}

// New creates a Manager and loads every topic found in fsys
func New(fsys fs.FS, opts Options) (*Manager, error) {
	m := &Manager{
		fsys:       fsys,
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(m.extensions) == 0 {
		m.extensions = []string{".txt", ".md"}
	}
	if m.renderer == nil {
		m.renderer = PlainRenderer{}
	}
	if err := m.scan(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manager) scan() error {
	err := fs.WalkDir(m.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !m.supported(path.Ext(p)) {
			return nil
		}

		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		if existing, dup := m.topics[name]; dup {
			return errors.Newf(errors.ErrAlreadyExists, "help topic %q defined twice", name).
				WithDetail("first", existing.Path).
				WithDetail("second", p)
		}

		content, err := fs.ReadFile(m.fsys, p)
		if err != nil {
			return err
		}
		m.topics[name] = &Topic{Name: name, Path: p, Content: string(content)}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to scan help topics")
	}
	log.Trace().Int("count", len(m.topics)).Msg("Help topics loaded")
	return nil
}

func (m *Manager) supported(ext string) bool {
	for _, valid := range m.extensions {
		if ext == valid {
			return true
		}
	}
	return false
}

// Get retrieves a topic by name. Flag-style names (--dry-run) also match
// a topic stored as option-<name>.
func (m *Manager) Get(name string) (*Topic, bool) {
	name = strings.TrimPrefix(name, "--")
	name = strings.TrimPrefix(name, "-")

	if topic, ok := m.topics[name]; ok {
		return topic, true
	}
	topic, ok := m.topics["option-"+name]
	return topic, ok
}

// Names returns all topic names, sorted
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Show renders the named topic to w
func (m *Manager) Show(w io.Writer, name string) error {
	topic, ok := m.Get(name)
	if !ok {
		return errors.Newf(errors.ErrNotFound, "unknown help topic %q", name).
			WithDetail("available", strings.Join(m.Names(), ", "))
	}
	_, err := io.WriteString(w, m.renderer.Render(w, topic.Content, topic.Ext()))
	return err
}

// List writes the topic index to w. Option topics are listed under their
// flag spelling.
func (m *Manager) List(w io.Writer, program string) error {
	names := m.Names()
	if len(names) == 0 {
		_, err := fmt.Fprintln(w, "No help topics available.")
		return err
	}

	var general, options []string
	for _, name := range names {
		if opt, ok := strings.CutPrefix(name, "option-"); ok {
			options = append(options, "--"+opt)
		} else {
			general = append(general, name)
		}
	}

	var b strings.Builder
	b.WriteString("Available help topics:\n")
	if len(general) > 0 {
		b.WriteString("\nGeneral topics:\n")
		for _, name := range general {
			fmt.Fprintf(&b, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		b.WriteString("\nOption topics:\n")
		for _, name := range options {
			fmt.Fprintf(&b, "  %s\n", name)
		}
	}
	fmt.Fprintf(&b, "\nUse '%s help <topic>' to read about a specific topic.\n", program)

	_, err := io.WriteString(w, b.String())
	return err
}

// Install loads the topics in fsys and replaces the help command of
// rootCmd with one that also knows about them
func Install(rootCmd *cobra.Command, fsys fs.FS, opts Options) (*Manager, error) {
	m, err := New(fsys, opts)
	if err != nil {
		return nil, err
	}
	m.originalHelp = rootCmd.HelpFunc()

	program := rootCmd.Name()
	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + program + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + program + ` help ` + ListKeyword,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{ListKeyword}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, m.Names()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				m.originalHelp(rootCmd, args)
				return nil
			}
			if args[0] == ListKeyword {
				return m.List(out, program)
			}
			if _, ok := m.Get(args[0]); ok {
				return m.Show(out, args[0])
			}

			target, _, err := rootCmd.Find(args)
			if err != nil || target == rootCmd {
				return m.Show(out, args[0])
			}
			m.originalHelp(target, args)
			return nil
		},
	}

	for _, c := range rootCmd.Commands() {
		if c.Name() == "help" {
			rootCmd.RemoveCommand(c)
			break
		}
	}
	rootCmd.SetHelpCommand(helpCmd)

	return m, nil
}
