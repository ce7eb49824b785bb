package jars

import (
	"sort"
	"strings"

	"github.com/arthur-debert/keepspec/pkg/errors"
)

// Filter keys understood by the processing engine
const (
	KeyFilter     = "filter"
	KeyApkFilter  = "apkfilter"
	KeyAarFilter  = "aarfilter"
	KeyJarFilter  = "jarfilter"
	KeyWarFilter  = "warfilter"
	KeyEarFilter  = "earfilter"
	KeyJmodFilter = "jmodfilter"
	KeyZipFilter  = "zipfilter"
)

// Filter narrows which entries of an archive a path entry applies to.
// Each field holds a comma-separated filter expression; empty fields are
// unset.
type Filter struct {
	Filter     string `koanf:"filter" yaml:"filter,omitempty" toml:"filter,omitempty" json:"filter,omitempty"`
	ApkFilter  string `koanf:"apkfilter" yaml:"apkfilter,omitempty" toml:"apkfilter,omitempty" json:"apkfilter,omitempty"`
	AarFilter  string `koanf:"aarfilter" yaml:"aarfilter,omitempty" toml:"aarfilter,omitempty" json:"aarfilter,omitempty"`
	JarFilter  string `koanf:"jarfilter" yaml:"jarfilter,omitempty" toml:"jarfilter,omitempty" json:"jarfilter,omitempty"`
	WarFilter  string `koanf:"warfilter" yaml:"warfilter,omitempty" toml:"warfilter,omitempty" json:"warfilter,omitempty"`
	EarFilter  string `koanf:"earfilter" yaml:"earfilter,omitempty" toml:"earfilter,omitempty" json:"earfilter,omitempty"`
	JmodFilter string `koanf:"jmodfilter" yaml:"jmodfilter,omitempty" toml:"jmodfilter,omitempty" json:"jmodfilter,omitempty"`
	ZipFilter  string `koanf:"zipfilter" yaml:"zipfilter,omitempty" toml:"zipfilter,omitempty" json:"zipfilter,omitempty"`
}

func (f *Filter) fields() []struct {
	key string
	ptr *string
} {
	return []struct {
		key string
		ptr *string
	}{
		{KeyFilter, &f.Filter},
		{KeyApkFilter, &f.ApkFilter},
		{KeyAarFilter, &f.AarFilter},
		{KeyJarFilter, &f.JarFilter},
		{KeyWarFilter, &f.WarFilter},
		{KeyEarFilter, &f.EarFilter},
		{KeyJmodFilter, &f.JmodFilter},
		{KeyZipFilter, &f.ZipFilter},
	}
}

// FilterFromMap builds a Filter from loose key/value pairs. Keys are
// case-insensitive; unknown keys are rejected.
func FilterFromMap(m map[string]string) (*Filter, error) {
	if m == nil {
		return nil, nil
	}
	f := &Filter{}
	fields := f.fields()
	var unknown []string
	for key, value := range m {
		matched := false
		for _, field := range fields {
			if strings.EqualFold(key, field.key) {
				*field.ptr = value
				matched = true
				break
			}
		}
		if !matched {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, errors.Newf(errors.ErrParse, "unknown filter key(s): %s", strings.Join(unknown, ", ")).
			WithDetail("keys", unknown)
	}
	return f, nil
}

// Map returns the set keys as an opaque key/value record. A nil filter
// yields nil.
func (f *Filter) Map() map[string]string {
	if f == nil {
		return nil
	}
	out := make(map[string]string)
	for _, field := range f.fields() {
		if *field.ptr != "" {
			out[field.key] = *field.ptr
		}
	}
	return out
}

// Keys returns the set keys in engine order
func (f *Filter) Keys() []string {
	if f == nil {
		return nil
	}
	var keys []string
	for _, field := range f.fields() {
		if *field.ptr != "" {
			keys = append(keys, field.key)
		}
	}
	return keys
}

// IsEmpty reports whether no key is set
func (f *Filter) IsEmpty() bool {
	return len(f.Keys()) == 0
}
