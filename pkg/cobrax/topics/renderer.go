package topics

import "io"

// Renderer formats topic content for the writer it is shown on
type Renderer interface {
	// Render takes raw content and its file extension and returns the
	// text to write
	Render(w io.Writer, content string, ext string) string
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(w io.Writer, content string, ext string) string

// Render calls f
func (f RendererFunc) Render(w io.Writer, content string, ext string) string {
	return f(w, content, ext)
}

// PlainRenderer returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (PlainRenderer) Render(_ io.Writer, content string, _ string) string {
	return content
}
