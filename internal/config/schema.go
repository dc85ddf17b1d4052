package config

// File is the root of a binding file.
type File struct {
	// CppFile is the C++ source to generate, relative to the binding file.
	// The header gets the same path with a .h extension.
	CppFile string `yaml:"cppFile"`
	// Objects maps object names to their declarations.
	Objects map[string]Object `yaml:"objects"`
	// Rust locates the crate receiving the generated Rust modules.
	Rust Rust `yaml:"rust"`
	// OverwriteImplementation allows regenerating an existing implementation module.
	OverwriteImplementation bool `yaml:"overwrite_implementation"`
}

// Rust describes the target crate.
type Rust struct {
	// Dir is the crate directory, relative to the binding file.
	Dir                  string `yaml:"dir"`
	InterfaceModule      string `yaml:"interfaceModule"`
	ImplementationModule string `yaml:"implementationModule"`
}

// Object is the declaration of one exposed object.
type Object struct {
	Kind           ObjectKind              `yaml:"type"`
	Properties     map[string]Property     `yaml:"properties"`
	ItemProperties map[string]ItemProperty `yaml:"itemProperties"`
	Functions      map[string]Function     `yaml:"functions"`
}

// Property is a whole-object property. Type names a primitive or another object.
type Property struct {
	Type     string `yaml:"type"`
	Optional bool   `yaml:"optional"`
	Write    bool   `yaml:"write"`
	// RustByFunction makes the Rust getter hand the value to a closure
	// instead of returning a reference.
	RustByFunction bool `yaml:"rustByFunction"`
}

// ItemProperty is a field of every row (List) or node (Tree).
type ItemProperty struct {
	Type     string `yaml:"type"`
	Optional bool   `yaml:"optional"`
	Write    bool   `yaml:"write"`
	// Roles lists, per column, the roles under which the field is shown.
	Roles [][]string `yaml:"roles"`
	// RustByValue makes the Rust getter return an owned value.
	RustByValue bool `yaml:"rustByValue"`
}

// Function is an invokable method.
type Function struct {
	Return    string     `yaml:"return"`
	Mut       bool       `yaml:"mut"`
	Arguments []Argument `yaml:"arguments"`
}

// Argument is a named function parameter.
type Argument struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}
