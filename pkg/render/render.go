package render

import (
	"bytes"
	"io"

	"github.com/arthur-debert/keepspec/pkg/configuration"
	"github.com/arthur-debert/keepspec/pkg/errors"
	"github.com/arthur-debert/keepspec/pkg/registry"
)

// Renderer writes a configuration in one format
type Renderer interface {
	Name() string
	Description() string
	Render(w io.Writer, cfg *configuration.Configuration) error
}

var renderers = registry.New[Renderer](registry.CaseInsensitive(), registry.Kind("renderer"))

// Register adds a renderer under its name
func Register(r Renderer) error {
	return renderers.Register(r.Name(), r)
}

// Get returns the renderer registered under name
func Get(name string) (Renderer, error) {
	r, err := renderers.Get(name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRender, "unknown output format %q", name).
			WithDetail("format", name).
			WithDetail("available", renderers.List())
	}
	return r, nil
}

// Names lists the registered formats, sorted
func Names() []string {
	return renderers.List()
}

// All returns the registered renderers ordered by name
func All() []Renderer {
	return renderers.Values()
}

// Render writes cfg to w in the named format
func Render(w io.Writer, format string, cfg *configuration.Configuration) error {
	r, err := Get(format)
	if err != nil {
		return err
	}
	if err := r.Render(w, cfg); err != nil {
		return errors.Wrapf(err, errors.ErrRender, "failed to render %s", r.Name()).WithDetail("format", r.Name())
	}
	return nil
}

// String renders cfg in the named format into a string
func String(format string, cfg *configuration.Configuration) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, format, cfg); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func init() {
	for _, r := range []Renderer{
		textRenderer{},
		xmlRenderer{},
		yamlRenderer{},
		tomlRenderer{},
		jsonRenderer{},
		markdownRenderer{},
	} {
		registry.MustRegister(renderers, r.Name(), r)
	}
}
