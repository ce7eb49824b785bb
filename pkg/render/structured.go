package render

import (
	"encoding/json"
	"io"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/keepspec/pkg/configuration"
)

// The structured renderers dump the Document view. YAML and TOML output
// loads back as a rule file.

type yamlRenderer struct{}

func (yamlRenderer) Name() string        { return "yaml" }
func (yamlRenderer) Description() string { return "YAML rule file" }

func (yamlRenderer) Render(w io.Writer, cfg *configuration.Configuration) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(cfg)); err != nil {
		return err
	}
	return enc.Close()
}

type tomlRenderer struct{}

func (tomlRenderer) Name() string        { return "toml" }
func (tomlRenderer) Description() string { return "TOML rule file" }

func (tomlRenderer) Render(w io.Writer, cfg *configuration.Configuration) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(NewDocument(cfg))
}

type jsonRenderer struct{}

func (jsonRenderer) Name() string        { return "json" }
func (jsonRenderer) Description() string { return "JSON document" }

func (jsonRenderer) Render(w io.Writer, cfg *configuration.Configuration) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(cfg))
}
