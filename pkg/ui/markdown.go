package ui

import (
	"github.com/charmbracelet/glamour"
	"github.com/pterm/pterm"
)

// RenderMarkdown renders content with glamour for terminal output. Plain
// output, and any glamour failure, returns content unchanged.
func RenderMarkdown(f Format, content string) string {
	if f != FormatTerminal {
		return content
	}

	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width := pterm.GetTerminalWidth(); width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}
	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
