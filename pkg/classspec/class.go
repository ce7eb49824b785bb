package classspec

import (
	"strings"

	"github.com/arthur-debert/keepspec/pkg/access"
	"github.com/arthur-debert/keepspec/pkg/descriptor"
	"github.com/arthur-debert/keepspec/pkg/errors"
)

// Class type keywords accepted in ClassArgs.Type
const (
	TypeClass      = "class"
	TypeInterface  = "interface"
	TypeEnum       = "enum"
	TypeAnnotation = "@interface"
)

// NewClassSpecification parses a qualifier record
func NewClassSpecification(args ClassArgs) (*ClassSpecification, error) {
	mask, err := access.Parse(args.Access)
	if err != nil {
		return nil, err
	}
	typeMask, err := parseClassType(args.Type)
	if err != nil {
		return nil, err
	}
	mask = mask.Merge(typeMask)
	if mask.Set&mask.Unset != 0 {
		return nil, errors.Newf(errors.ErrParse, "class type %q contradicts access %q", args.Type, args.Access)
	}

	spec := &ClassSpecification{
		Comments:                 args.Comments,
		RequiredSetAccessFlags:   mask.Set,
		RequiredUnsetAccessFlags: mask.Unset,
	}

	if spec.ClassName, err = className(args.Name, "name"); err != nil {
		return nil, err
	}
	if spec.AnnotationType, err = annotationType(args.Annotation); err != nil {
		return nil, err
	}
	if spec.ExtendsAnnotationType, err = annotationType(args.ExtendsAnnotation); err != nil {
		return nil, err
	}

	extends := strings.TrimSpace(args.Extends)
	implements := strings.TrimSpace(args.Implements)
	if extends != "" && implements != "" && extends != implements {
		return nil, errors.Newf(errors.ErrParse, "extends %q and implements %q name different super types", extends, implements)
	}
	if extends == "" {
		extends = implements
	}
	if spec.ExtendsClassName, err = className(extends, "extends"); err != nil {
		return nil, err
	}
	if spec.ExtendsAnnotationType != "" && spec.ExtendsClassName == "" {
		return nil, errors.New(errors.ErrParse, "extendsannotation requires extends or implements")
	}

	return spec, nil
}

// NewKeepClassSpecification parses a keep-family qualifier record
func NewKeepClassSpecification(kind KeepKind, args KeepArgs) (*KeepClassSpecification, error) {
	semantics, ok := keepKindSemantics[kind]
	if !ok {
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown keep kind %q", kind)
	}
	spec, err := NewClassSpecification(args.ClassArgs)
	if err != nil {
		return nil, err
	}
	return &KeepClassSpecification{
		ClassSpecification:    *spec,
		Kind:                  kind,
		MarkClasses:           semantics.markClasses,
		MarkConditionally:     semantics.markConditionally,
		MarkDescriptorClasses: args.IncludeDescriptorClasses,
		MarkCodeAttributes:    args.IncludeCode,
		AllowShrinking:        semantics.allowShrinking || args.AllowShrinking,
		AllowOptimization:     args.AllowOptimization,
		AllowObfuscation:      args.AllowObfuscation,
	}, nil
}

func parseClassType(token string) (access.Mask, error) {
	token = strings.TrimSpace(token)
	negated := strings.HasPrefix(token, access.Negation)
	keyword := strings.ToLower(strings.TrimPrefix(token, access.Negation))

	var flags access.Flags
	switch keyword {
	case "":
		if negated {
			return access.Mask{}, errors.Newf(errors.ErrParse, "invalid class type %q", token)
		}
		return access.Mask{}, nil
	case TypeClass:
		if negated {
			return access.Mask{}, errors.Newf(errors.ErrParse, "invalid class type %q", token)
		}
		return access.Mask{}, nil
	case TypeInterface:
		flags = access.Interface
	case TypeEnum:
		flags = access.Enum
	case TypeAnnotation:
		if negated {
			return access.Mask{Unset: access.Annotation}, nil
		}
		return access.Mask{Set: access.Annotation | access.Interface}, nil
	default:
		return access.Mask{}, errors.Newf(errors.ErrParse, "invalid class type %q", token)
	}
	if negated {
		return access.Mask{Unset: flags}, nil
	}
	return access.Mask{Set: flags}, nil
}

func className(external, key string) (string, error) {
	name := strings.TrimSpace(external)
	if strings.ContainsAny(name, " \t\n,;()") {
		return "", errors.Newf(errors.ErrParse, "invalid class name %q in %s", external, key)
	}
	return descriptor.InternalClassName(name), nil
}

func annotationType(external string) (string, error) {
	name := strings.TrimSpace(external)
	if name == "" {
		return "", nil
	}
	name, err := className(name, "annotation")
	if err != nil {
		return "", err
	}
	return "L" + name + ";", nil
}
