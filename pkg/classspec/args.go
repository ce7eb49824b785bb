package classspec

// ClassArgs is the qualifier record of a class specification. Empty fields
// are unconstrained.
type ClassArgs struct {
	// Name is an external class name or pattern ("com.example.*")
	Name string `koanf:"name"`
	// Annotation is an external annotation type name
	Annotation string `koanf:"annotation"`
	// Access is a negatable keyword list ("public,!abstract")
	Access string `koanf:"access"`
	// Type is one of class, interface, enum or @interface, optionally negated
	Type string `koanf:"type"`
	// Extends and Implements both name the super type; set at most one
	Extends    string `koanf:"extends"`
	Implements string `koanf:"implements"`
	// ExtendsAnnotation names an annotation the super type must carry
	ExtendsAnnotation string `koanf:"extendsannotation"`
	// Comments is carried to the rendered configuration
	Comments string `koanf:"comments"`
}

// KeepArgs is the qualifier record of a keep-family verb
type KeepArgs struct {
	ClassArgs `koanf:",squash"`

	IncludeDescriptorClasses bool `koanf:"includedescriptorclasses"`
	IncludeCode              bool `koanf:"includecode"`
	AllowShrinking           bool `koanf:"allowshrinking"`
	AllowOptimization        bool `koanf:"allowoptimization"`
	AllowObfuscation         bool `koanf:"allowobfuscation"`
}

// MemberArgs is the argument record of a field, method or constructor verb
type MemberArgs struct {
	// Access is a negatable keyword list
	Access string `koanf:"access"`
	// Annotation is an external annotation type name
	Annotation string `koanf:"annotation"`
	// Type is the field type or method return type
	Type string `koanf:"type"`
	// Name is the member name; empty matches any name
	Name string `koanf:"name"`
	// Parameters is "()", "(...)", or a comma-separated type list
	Parameters string `koanf:"parameters"`
}
