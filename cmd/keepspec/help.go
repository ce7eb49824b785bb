package keepspec

import (
	"embed"
	"io"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/keepspec/pkg/cobrax/topics"
	"github.com/arthur-debert/keepspec/pkg/ui"
)

//go:embed topics/*.md
var topicFiles embed.FS

// installTopics replaces the help command with one that also serves the
// embedded topics
func installTopics(rootCmd *cobra.Command, opts *Options) error {
	fsys, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return err
	}
	_, err = topics.Install(rootCmd, fsys, topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.RendererFunc(opts.renderTopic),
	})
	return err
}

// renderTopic styles markdown topics on a terminal. Unreadable settings
// fall back to --color alone.
func (o *Options) renderTopic(w io.Writer, content string, ext string) string {
	if ext != ".md" {
		return content
	}
	color := o.Color
	if color == "" {
		if settings, err := o.settings(); err == nil {
			color = settings.Output.Color
		}
	}
	f, err := ui.ParseColor(color)
	if err != nil {
		f = ui.FormatText
	}
	return ui.RenderMarkdown(ui.Resolve(f, w), content)
}
