package topics_test

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/keepspec/pkg/cobrax/topics"
	"github.com/arthur-debert/keepspec/pkg/errors"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"rulefiles.md":        {Data: []byte("# Rule files\n\nKeys mirror the verbs.")},
		"filters.txt":         {Data: []byte("Filters are comma separated globs.")},
		"option-config.txt":   {Data: []byte("The settings file.")},
		"nested/formats.md":   {Data: []byte("# Formats")},
		"ignored.json":        {Data: []byte("{}")},
		"nested/ignored.yaml": {Data: []byte("a: b")},
	}
}

func TestNew_ScansExtensions(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		m, err := topics.New(testFS(), topics.Options{})
		require.NoError(t, err)
		assert.Equal(t, []string{"filters", "formats", "option-config", "rulefiles"}, m.Names())

		topic, ok := m.Get("formats")
		require.True(t, ok)
		assert.Equal(t, "nested/formats.md", topic.Path)
		assert.Equal(t, ".md", topic.Ext())
		assert.Equal(t, "# Formats", topic.Content)
	})

	t.Run("custom extensions", func(t *testing.T) {
		m, err := topics.New(testFS(), topics.Options{Extensions: []string{".json"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"ignored"}, m.Names())
	})

	t.Run("empty", func(t *testing.T) {
		m, err := topics.New(fstest.MapFS{}, topics.Options{})
		require.NoError(t, err)
		assert.Empty(t, m.Names())
	})

	t.Run("duplicate name", func(t *testing.T) {
		fsys := fstest.MapFS{
			"a/same.md":  {Data: []byte("one")},
			"b/same.txt": {Data: []byte("two")},
		}
		_, err := topics.New(fsys, topics.Options{})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
	})
}

func TestGet_FlagStyle(t *testing.T) {
	m, err := topics.New(testFS(), topics.Options{})
	require.NoError(t, err)

	for _, name := range []string{"option-config", "config", "--config", "-config"} {
		topic, ok := m.Get(name)
		if assert.True(t, ok, name) {
			assert.Equal(t, "option-config", topic.Name)
		}
	}

	_, ok := m.Get("missing")
	assert.False(t, ok)
}

func TestShow(t *testing.T) {
	var seenExt string
	renderer := topics.RendererFunc(func(_ io.Writer, content, ext string) string {
		seenExt = ext
		return strings.ToUpper(content)
	})
	m, err := topics.New(testFS(), topics.Options{Renderer: renderer})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, m.Show(&buf, "filters"))
	assert.Equal(t, "FILTERS ARE COMMA SEPARATED GLOBS.", buf.String())
	assert.Equal(t, ".txt", seenExt)

	err = m.Show(&buf, "missing")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Equal(t, "filters, formats, option-config, rulefiles", errors.GetErrorDetails(err)["available"])
}

func TestList(t *testing.T) {
	m, err := topics.New(testFS(), topics.Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, m.List(&buf, "keepspec"))
	out := buf.String()

	assert.Contains(t, out, "General topics:\n  filters\n  formats\n  rulefiles\n")
	assert.Contains(t, out, "Option topics:\n  --config\n")
	assert.Contains(t, out, "Use 'keepspec help <topic>'")

	empty, err := topics.New(fstest.MapFS{}, topics.Options{})
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, empty.List(&buf, "keepspec"))
	assert.Equal(t, "No help topics available.\n", buf.String())
}

func newRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "app", Short: "Test application"}
	root.AddCommand(&cobra.Command{
		Use:   "build",
		Short: "Build something",
		Long:  "Build reads a rule file.",
		Run:   func(cmd *cobra.Command, args []string) {},
	})

	_, err := topics.Install(root, testFS(), topics.Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	return root, &buf
}

func TestInstall(t *testing.T) {
	t.Run("topic", func(t *testing.T) {
		root, buf := newRoot(t)
		root.SetArgs([]string{"help", "rulefiles"})
		require.NoError(t, root.Execute())
		assert.Equal(t, "# Rule files\n\nKeys mirror the verbs.", buf.String())
	})

	t.Run("topic list", func(t *testing.T) {
		root, buf := newRoot(t)
		root.SetArgs([]string{"help", topics.ListKeyword})
		require.NoError(t, root.Execute())
		assert.Contains(t, buf.String(), "Available help topics:")
		assert.Contains(t, buf.String(), "Use 'app help <topic>'")
	})

	t.Run("command help", func(t *testing.T) {
		root, buf := newRoot(t)
		root.SetArgs([]string{"help", "build"})
		require.NoError(t, root.Execute())
		assert.Contains(t, buf.String(), "Build reads a rule file.")
	})

	t.Run("root help", func(t *testing.T) {
		root, buf := newRoot(t)
		root.SetArgs([]string{"help"})
		require.NoError(t, root.Execute())
		assert.Contains(t, buf.String(), "Test application")
	})

	t.Run("unknown", func(t *testing.T) {
		root, _ := newRoot(t)
		root.SetArgs([]string{"help", "nothing"})
		err := root.Execute()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})

	t.Run("completion lists topics", func(t *testing.T) {
		root, buf := newRoot(t)
		root.SetArgs([]string{cobra.ShellCompRequestCmd, "help", ""})
		require.NoError(t, root.Execute())
		out := buf.String()
		assert.Contains(t, out, topics.ListKeyword)
		assert.Contains(t, out, "build")
		assert.Contains(t, out, "rulefiles")
	})
}
