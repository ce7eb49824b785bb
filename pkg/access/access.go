// Package access maps access-modifier keywords onto the class-file access
// flag bitmask and parses negatable keyword lists such as "public,!static".
package access

import (
	"sort"
	"strings"

	"github.com/arthur-debert/keepspec/pkg/errors"
)

// Flags is a class-file access flag bitmask
type Flags uint32

// Access flag bits as defined by the class-file format
const (
	Public       Flags = 0x0001
	Private      Flags = 0x0002
	Protected    Flags = 0x0004
	Static       Flags = 0x0008
	Final        Flags = 0x0010
	Synchronized Flags = 0x0020
	Volatile     Flags = 0x0040
	Bridge       Flags = 0x0040
	Transient    Flags = 0x0080
	Varargs      Flags = 0x0080
	Native       Flags = 0x0100
	Interface    Flags = 0x0200
	Abstract     Flags = 0x0400
	Strict       Flags = 0x0800
	Synthetic    Flags = 0x1000
	Annotation   Flags = 0x2000
	Enum         Flags = 0x4000
	Mandated     Flags = 0x8000
)

// Negation prefixes a keyword that must be absent
const Negation = "!"

var keywords = map[string]Flags{
	"public":       Public,
	"private":      Private,
	"protected":    Protected,
	"static":       Static,
	"final":        Final,
	"synchronized": Synchronized,
	"volatile":     Volatile,
	"bridge":       Bridge,
	"transient":    Transient,
	"varargs":      Varargs,
	"native":       Native,
	"interface":    Interface,
	"abstract":     Abstract,
	"strictfp":     Strict,
	"synthetic":    Synthetic,
	"@interface":   Annotation,
	"enum":         Enum,
	"mandated":     Mandated,
}

// Mask is the pair of required-set and required-unset flags
type Mask struct {
	Set   Flags
	Unset Flags
}

// IsZero reports whether the mask matches any access
func (m Mask) IsZero() bool {
	return m.Set == 0 && m.Unset == 0
}

// Merge returns the union of two masks
func (m Mask) Merge(other Mask) Mask {
	return Mask{Set: m.Set | other.Set, Unset: m.Unset | other.Unset}
}

// Lookup returns the flag for a single keyword without negation
func Lookup(keyword string) (Flags, bool) {
	f, ok := keywords[strings.ToLower(keyword)]
	return f, ok
}

// Parse splits an access string on commas and whitespace. Plain keywords
// land in Set, keywords prefixed with "!" land in Unset. An empty string
// yields the zero mask.
func Parse(token string) (Mask, error) {
	var mask Mask
	fields := strings.FieldsFunc(token, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	for _, field := range fields {
		negated := strings.HasPrefix(field, Negation)
		keyword := strings.TrimPrefix(field, Negation)
		flag, ok := Lookup(keyword)
		if !ok || keyword == "" {
			return Mask{}, errors.Newf(errors.ErrParse, "unknown access flag %q", field).
				WithDetail("access", token)
		}
		if negated {
			mask.Unset |= flag
		} else {
			mask.Set |= flag
		}
	}
	if mask.Set&mask.Unset != 0 {
		return Mask{}, errors.Newf(errors.ErrParse, "access flags %q both required and excluded", token).
			WithDetail("access", token)
	}
	return mask, nil
}

// Keywords lists the keywords whose bits are all contained in flags, in
// class-file declaration order. Aliased bits (volatile/bridge,
// transient/varargs) resolve to the member-level spelling given by field.
func Keywords(flags Flags, field bool) []string {
	type entry struct {
		name string
		bit  Flags
	}
	var entries []entry
	for name, bit := range keywords {
		if flags&bit == 0 {
			continue
		}
		switch name {
		case "bridge", "varargs":
			if field {
				continue
			}
		case "volatile", "transient":
			if !field {
				continue
			}
		}
		entries = append(entries, entry{name, bit})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].bit != entries[j].bit {
			return entries[i].bit < entries[j].bit
		}
		return entries[i].name < entries[j].name
	})
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.name)
	}
	return out
}

// Format renders a mask back to keyword form, negated keywords last
func Format(m Mask, field bool) string {
	parts := Keywords(m.Set, field)
	for _, k := range Keywords(m.Unset, field) {
		parts = append(parts, Negation+k)
	}
	return strings.Join(parts, " ")
}
