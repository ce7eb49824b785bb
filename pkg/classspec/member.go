package classspec

import (
	"strings"

	"github.com/arthur-debert/keepspec/pkg/access"
	"github.com/arthur-debert/keepspec/pkg/descriptor"
	"github.com/arthur-debert/keepspec/pkg/errors"
)

// ParseMember converts an argument record into a member specification.
// isConstructor implies isMethod.
func ParseMember(args MemberArgs, isMethod, isConstructor bool) (MemberSpecification, error) {
	if isConstructor {
		isMethod = true
	}
	verb := verbName(isMethod, isConstructor)

	mask, err := access.Parse(args.Access)
	if err != nil {
		return MemberSpecification{}, errors.Wrapf(err, errors.ErrParse, "invalid %s access", verb)
	}
	spec := MemberSpecification{
		Kind:                     KindField,
		RequiredSetAccessFlags:   mask.Set,
		RequiredUnsetAccessFlags: mask.Unset,
	}
	if isMethod {
		spec.Kind = KindMethod
	}

	if spec.AnnotationType, err = annotationType(args.Annotation); err != nil {
		return MemberSpecification{}, err
	}

	typ := strings.TrimSpace(args.Type)
	name := strings.TrimSpace(args.Name)
	params := strings.TrimSpace(args.Parameters)
	if strings.ContainsAny(name, " \t\n,;()") {
		return MemberSpecification{}, errors.Newf(errors.ErrParse, "invalid %s name %q", verb, args.Name)
	}

	switch {
	case isConstructor:
		if typ != "" {
			return MemberSpecification{}, errors.New(errors.ErrParse, "type attribute not allowed in constructor specification")
		}
		if name != "" {
			return MemberSpecification{}, errors.New(errors.ErrParse, "name attribute not allowed in constructor specification")
		}
		spec.Name = descriptor.ConstructorName
		if params != "" {
			parsed, err := descriptor.ParseParameters(params)
			if err != nil {
				return MemberSpecification{}, err
			}
			if !parsed.Wildcard {
				spec.Descriptor = descriptor.MethodDescriptor(parsed, "V")
			}
		}

	case isMethod:
		spec.Name = name
		if (typ == "") != (params == "") {
			return MemberSpecification{}, errors.New(errors.ErrParse, "type and parameters attributes must be present in combination in method specification")
		}
		if typ != "" {
			returnType, err := descriptor.InternalType(typ)
			if err != nil {
				return MemberSpecification{}, err
			}
			parsed, err := descriptor.ParseParameters(params)
			if err != nil {
				return MemberSpecification{}, err
			}
			if !parsed.Wildcard || typ != descriptor.AnyType {
				spec.Descriptor = descriptor.MethodDescriptor(parsed, returnType)
			}
		}

	default:
		spec.Name = name
		if params != "" {
			return MemberSpecification{}, errors.New(errors.ErrParse, "parameters attribute not allowed in field specification")
		}
		if typ != "" {
			fieldType, err := descriptor.InternalType(typ)
			if err != nil {
				return MemberSpecification{}, err
			}
			if fieldType == "V" {
				return MemberSpecification{}, errors.New(errors.ErrParse, "field type cannot be void")
			}
			spec.Descriptor = fieldType
		}
	}

	return spec, nil
}

// AddMember parses args and appends the result to the builder's open class
// specification. It never creates a class specification.
func AddMember(b *Builder, args MemberArgs, isMethod, isConstructor bool) (MemberSpecification, error) {
	verb := verbName(isMethod, isConstructor)
	current, ok := b.Current()
	if !ok {
		return MemberSpecification{}, errors.Newf(errors.ErrUsage, "%s %s", verb, MsgNotNested).
			WithDetail("verb", verb)
	}
	spec, err := ParseMember(args, isMethod, isConstructor)
	if err != nil {
		return MemberSpecification{}, err
	}
	if spec.Kind == KindMethod {
		current.AddMethod(spec)
	} else {
		current.AddField(spec)
	}
	return spec, nil
}

func verbName(isMethod, isConstructor bool) string {
	switch {
	case isConstructor:
		return "constructor"
	case isMethod:
		return "method"
	default:
		return "field"
	}
}
