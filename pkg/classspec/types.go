package classspec

import (
	"github.com/arthur-debert/keepspec/pkg/access"
)

// MemberKind distinguishes field from method specifications
type MemberKind string

const (
	KindField  MemberKind = "field"
	KindMethod MemberKind = "method"
)

// MemberSpecification matches fields or methods within matched classes.
// An empty Name matches any name; an empty Descriptor matches any
// signature. Constructors are methods named "<init>".
type MemberSpecification struct {
	Kind                     MemberKind
	RequiredSetAccessFlags   access.Flags
	RequiredUnsetAccessFlags access.Flags
	AnnotationType           string
	Name                     string
	Descriptor               string
}

// IsWildcard reports whether the specification matches every member of its kind
func (m MemberSpecification) IsWildcard() bool {
	return m.Name == "" && m.Descriptor == "" && m.AnnotationType == "" &&
		m.RequiredSetAccessFlags == 0 && m.RequiredUnsetAccessFlags == 0
}

// HasDescriptor reports whether the specification constrains the signature
func (m MemberSpecification) HasDescriptor() bool {
	return m.Descriptor != ""
}

// ClassSpecification matches a set of classes by name, annotation, access
// and inheritance, plus the members they must carry.
type ClassSpecification struct {
	Comments                 string
	RequiredSetAccessFlags   access.Flags
	RequiredUnsetAccessFlags access.Flags
	AnnotationType           string
	ClassName                string
	ExtendsAnnotationType    string
	ExtendsClassName         string
	Fields                   []MemberSpecification
	Methods                  []MemberSpecification
}

// MemberCount returns the number of field and method specifications
func (c *ClassSpecification) MemberCount() int {
	return len(c.Fields) + len(c.Methods)
}

// AddField appends a field specification
func (c *ClassSpecification) AddField(m MemberSpecification) {
	c.Fields = append(c.Fields, m)
}

// AddMethod appends a method specification
func (c *ClassSpecification) AddMethod(m MemberSpecification) {
	c.Methods = append(c.Methods, m)
}

// KeepKind names one of the keep-family verbs
type KeepKind string

const (
	Keep                       KeepKind = "keep"
	KeepClassMembers           KeepKind = "keepclassmembers"
	KeepClassesWithMembers     KeepKind = "keepclasseswithmembers"
	KeepNames                  KeepKind = "keepnames"
	KeepClassMemberNames       KeepKind = "keepclassmembernames"
	KeepClassesWithMemberNames KeepKind = "keepclasseswithmembernames"
)

// KeepKinds lists every keep-family verb
var KeepKinds = []KeepKind{
	Keep,
	KeepClassMembers,
	KeepClassesWithMembers,
	KeepNames,
	KeepClassMemberNames,
	KeepClassesWithMemberNames,
}

type keepSemantics struct {
	markClasses       bool
	markConditionally bool
	allowShrinking    bool
}

var keepKindSemantics = map[KeepKind]keepSemantics{
	Keep:                       {markClasses: true},
	KeepClassMembers:           {},
	KeepClassesWithMembers:     {markClasses: true, markConditionally: true},
	KeepNames:                  {markClasses: true, allowShrinking: true},
	KeepClassMemberNames:       {allowShrinking: true},
	KeepClassesWithMemberNames: {markClasses: true, markConditionally: true, allowShrinking: true},
}

// ParseKeepKind validates a keep verb name
func ParseKeepKind(name string) (KeepKind, bool) {
	kind := KeepKind(name)
	_, ok := keepKindSemantics[kind]
	return kind, ok
}

// Implies returns the flags a keep kind sets on its own, before any
// modifier is applied
func (k KeepKind) Implies() (markClasses, markConditionally, allowShrinking bool) {
	s := keepKindSemantics[k]
	return s.markClasses, s.markConditionally, s.allowShrinking
}

// KeepClassSpecification is a class specification with keep semantics
type KeepClassSpecification struct {
	ClassSpecification

	Kind                  KeepKind
	MarkClasses           bool
	MarkConditionally     bool
	MarkDescriptorClasses bool
	MarkCodeAttributes    bool
	AllowShrinking        bool
	AllowOptimization     bool
	AllowObfuscation      bool
}
