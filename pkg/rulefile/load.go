package rulefile

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	kerrors "github.com/arthur-debert/keepspec/pkg/errors"
	"github.com/arthur-debert/keepspec/pkg/logging"
)

// Format names a rule document syntax
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Extensions lists the file extensions Load accepts
var Extensions = []string{".toml", ".yaml", ".yml"}

// FormatFor picks the format from a file extension
func FormatFor(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return "", false
	}
}

func parserFor(format Format) (koanf.Parser, error) {
	switch format {
	case FormatTOML:
		return toml.Parser(), nil
	case FormatYAML:
		return yaml.Parser(), nil
	default:
		return nil, kerrors.Newf(kerrors.ErrRuleFileLoad, "unsupported rule file format %q", format)
	}
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load reads the rule file at path and every file it includes
func Load(path string) (*Document, error) {
	return newLoader().load(path)
}

// Parse decodes an in-memory document. Includes and relative paths
// resolve against dir.
func Parse(data []byte, format Format, dir string) (*Document, error) {
	l := newLoader()
	rules, err := decode(&rawBytesProvider{bytes: data}, format, "<inline>")
	if err != nil {
		return nil, err
	}
	return l.finish(&Document{Dir: dir, Rules: rules})
}

type loader struct {
	// stack holds the files being loaded, outermost first
	stack []string
}

func newLoader() *loader {
	return &loader{}
}

func (l *loader) load(path string) (*Document, error) {
	logger := logging.GetLogger("rulefile")

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, kerrors.Wrapf(err, kerrors.ErrRuleFileLoad, "cannot resolve rule file %s", path)
	}
	for _, open := range l.stack {
		if open == abs {
			chain := append(append([]string{}, l.stack...), abs)
			return nil, kerrors.Newf(kerrors.ErrRuleFileLoad, "include cycle: %s", strings.Join(chain, " -> ")).
				WithDetail("file", abs)
		}
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, kerrors.Wrapf(err, kerrors.ErrRuleFileLoad, "cannot read rule file %s", path).
			WithDetail("file", abs)
	}
	format, ok := FormatFor(abs)
	if !ok {
		return nil, kerrors.Newf(kerrors.ErrRuleFileLoad, "unsupported rule file extension %q (want one of %s)",
			filepath.Ext(abs), strings.Join(Extensions, ", ")).WithDetail("file", abs)
	}

	logger.Debug().Str("file", abs).Str("format", string(format)).Int("depth", len(l.stack)).Msg("loading rule file")

	rules, err := decode(file.Provider(abs), format, abs)
	if err != nil {
		return nil, err
	}

	l.stack = append(l.stack, abs)
	defer func() { l.stack = l.stack[:len(l.stack)-1] }()

	return l.finish(&Document{Path: abs, Dir: filepath.Dir(abs), Rules: rules})
}

func (l *loader) finish(doc *Document) (*Document, error) {
	for _, inc := range doc.Rules.Include {
		child, err := l.load(resolve(doc.Dir, inc))
		if err != nil {
			return nil, err
		}
		doc.Includes = append(doc.Includes, child)
	}
	return doc, nil
}

func decode(provider koanf.Provider, format Format, name string) (Rules, error) {
	parser, err := parserFor(format)
	if err != nil {
		return Rules{}, err
	}

	k := koanf.New(".")
	if err := k.Load(provider, parser); err != nil {
		return Rules{}, kerrors.Wrapf(err, kerrors.ErrRuleFileParse, "failed to parse %s", name).
			WithDetail("file", name)
	}

	var rules Rules
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &rules,
			WeaklyTypedInput: true,
			ErrorUnused:      true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				stringToJarEntryHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &rules, unmarshalConf); err != nil {
		return Rules{}, kerrors.Wrapf(err, kerrors.ErrRuleFileParse, "invalid rule file %s", name).
			WithDetail("file", name)
	}
	return rules, nil
}

// stringToJarEntryHookFunc accepts `injars = ["a.jar"]` as shorthand for
// path-only entries
func stringToJarEntryHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() == reflect.String && t == reflect.TypeOf(JarEntry{}) {
			return map[string]interface{}{"path": data}, nil
		}
		return data, nil
	}
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) || dir == "" {
		return path
	}
	return filepath.Join(dir, path)
}
