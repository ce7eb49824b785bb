// Package descriptor converts external type names ("int", "java.lang.String[]")
// into their internal class-file encodings and builds method descriptors
// from parameter-list strings.
package descriptor

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/keepspec/pkg/errors"
)

// Special method names and type tokens
const (
	ConstructorName       = "<init>"
	StaticInitializerName = "<clinit>"

	// AnyArguments matches any parameter list, including an empty one
	AnyArguments = "..."
	// AnyPrimitive matches any primitive type
	AnyPrimitive = "%"
	// AnyType matches any primitive, class or array type
	AnyType = "***"

	arraySuffix = "[]"
)

var primitives = map[string]string{
	"void":    "V",
	"boolean": "Z",
	"byte":    "B",
	"char":    "C",
	"short":   "S",
	"int":     "I",
	"long":    "J",
	"float":   "F",
	"double":  "D",
}

var primitiveNames = func() map[byte]string {
	out := make(map[byte]string, len(primitives))
	for name, code := range primitives {
		out[code[0]] = name
	}
	return out
}()

// InternalClassName turns "com.example.Foo" into "com/example/Foo"
func InternalClassName(external string) string {
	return strings.ReplaceAll(strings.TrimSpace(external), ".", "/")
}

// ExternalClassName turns "com/example/Foo" into "com.example.Foo"
func ExternalClassName(internal string) string {
	return strings.ReplaceAll(internal, "/", ".")
}

// InternalType converts an external type name into its internal encoding:
// primitives map to their one-letter code, class names to "Lpkg/Name;",
// and each trailing "[]" prepends a "[".
func InternalType(external string) (string, error) {
	name := strings.TrimSpace(external)
	dims := 0
	for strings.HasSuffix(name, arraySuffix) {
		dims++
		name = strings.TrimSpace(strings.TrimSuffix(name, arraySuffix))
	}
	if err := validateTypeName(name, external); err != nil {
		return "", err
	}

	var internal string
	switch {
	case name == AnyPrimitive:
		internal = AnyPrimitive
	case primitives[name] != "":
		internal = primitives[name]
	default:
		internal = "L" + InternalClassName(name) + ";"
	}
	if dims > 0 && internal == "V" {
		return "", errors.Newf(errors.ErrParse, "invalid array of void %q", external)
	}
	return strings.Repeat("[", dims) + internal, nil
}

func validateTypeName(name, original string) error {
	if name == "" {
		return errors.Newf(errors.ErrParse, "empty type in %q", original)
	}
	for _, r := range name {
		if unicode.IsSpace(r) || strings.ContainsRune("()[],;/", r) {
			return errors.Newf(errors.ErrParse, "invalid type %q", original)
		}
	}
	return nil
}

// ExternalType converts an internal type encoding back to external form
func ExternalType(internal string) string {
	dims := 0
	for strings.HasPrefix(internal, "[") {
		dims++
		internal = internal[1:]
	}
	var name string
	switch {
	case internal == AnyPrimitive:
		name = AnyPrimitive
	case len(internal) == 1 && primitiveNames[internal[0]] != "":
		name = primitiveNames[internal[0]]
	case strings.HasPrefix(internal, "L") && strings.HasSuffix(internal, ";"):
		name = ExternalClassName(internal[1 : len(internal)-1])
	default:
		name = internal
	}
	return name + strings.Repeat(arraySuffix, dims)
}

// Parameters is a parsed parameter list
type Parameters struct {
	// Wildcard is set for "(...)": any parameter list matches
	Wildcard bool
	// Types holds the internal encoding of each parameter, in order
	Types []string
}

// ParseParameters parses a parameter-list string. "()" is the empty list,
// "(...)" or "..." is the wildcard, and anything else is a comma-separated
// list of external type names, with or without surrounding parentheses.
func ParseParameters(token string) (Parameters, error) {
	body := strings.TrimSpace(token)
	open := strings.HasPrefix(body, "(")
	closed := strings.HasSuffix(body, ")")
	if open != closed {
		return Parameters{}, errors.Newf(errors.ErrParse, "unbalanced parentheses in parameters %q", token)
	}
	if open {
		body = strings.TrimSpace(body[1 : len(body)-1])
	}
	if strings.ContainsAny(body, "()") {
		return Parameters{}, errors.Newf(errors.ErrParse, "unexpected parenthesis in parameters %q", token)
	}
	if body == "" {
		return Parameters{Types: []string{}}, nil
	}
	if body == AnyArguments {
		return Parameters{Wildcard: true}, nil
	}

	entries := strings.Split(body, ",")
	types := make([]string, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			return Parameters{}, errors.Newf(errors.ErrParse, "empty entry in parameters %q", token)
		}
		if entry == AnyArguments {
			return Parameters{}, errors.Newf(errors.ErrParse, "%q must be the only entry in parameters %q", AnyArguments, token)
		}
		internal, err := InternalType(entry)
		if err != nil {
			return Parameters{}, errors.Wrapf(err, errors.ErrParse, "invalid parameters %q", token)
		}
		if internal == "V" {
			return Parameters{}, errors.Newf(errors.ErrParse, "void is not a parameter type in %q", token)
		}
		types = append(types, internal)
	}
	return Parameters{Types: types}, nil
}

// MethodDescriptor joins a parameter list and an internal return type
func MethodDescriptor(params Parameters, returnType string) string {
	if params.Wildcard {
		return "(" + AnyArguments + ")" + returnType
	}
	return "(" + strings.Join(params.Types, "") + ")" + returnType
}

// SplitMethodDescriptor breaks a method descriptor into external argument
// names and an external return type. ok is false for field descriptors.
func SplitMethodDescriptor(desc string) (args []string, returnType string, wildcard bool, ok bool) {
	if !strings.HasPrefix(desc, "(") {
		return nil, "", false, false
	}
	end := strings.IndexByte(desc, ')')
	if end < 0 {
		return nil, "", false, false
	}
	body := desc[1:end]
	returnType = ExternalType(desc[end+1:])
	if body == AnyArguments {
		return nil, returnType, true, true
	}
	args = []string{}
	for i := 0; i < len(body); {
		start := i
		for i < len(body) && body[i] == '[' {
			i++
		}
		if i >= len(body) {
			return nil, "", false, false
		}
		if body[i] == 'L' {
			semi := strings.IndexByte(body[i:], ';')
			if semi < 0 {
				return nil, "", false, false
			}
			i += semi + 1
		} else {
			i++
		}
		args = append(args, ExternalType(body[start:i]))
	}
	return args, returnType, false, true
}
