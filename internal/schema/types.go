package schema

import (
	"qt-binding-generator/internal/common"
	"qt-binding-generator/internal/config"
	"qt-binding-generator/internal/diagnostic"
	"qt-binding-generator/primitive"
)

// Config is a resolved binding file.
type Config struct {
	// ConfigFile is the path of the binding file, if it was loaded from disk.
	ConfigFile string
	// CppFile is the path of the C++ source to generate.
	CppFile string
	// Rust holds the crate settings; Rust.Dir is resolved like CppFile.
	Rust        config.Rust
	RustEdition RustEdition
	// OverwriteImplementation allows replacing an existing implementation module.
	OverwriteImplementation bool
	// Objects in byte-wise name order.
	Objects []*Object
	// Warnings reported while validating the binding file.
	Warnings []diagnostic.Diagnostic
}

// Object is a resolved object declaration. Its member lists are in byte-wise
// name order.
type Object struct {
	Name           string
	Kind           config.ObjectKind
	Properties     []*Property
	ItemProperties []*ItemProperty
	Functions      []*Function
}

// Property is a whole-object property.
type Property struct {
	Name           string
	Type           Type
	Optional       bool
	Write          bool
	RustByFunction bool
}

// ItemProperty is a field of a list row or tree node.
type ItemProperty struct {
	Name string
	// Index is the position among the item properties of the owning object;
	// the property answers to Qt::UserRole + Index.
	Index       int
	Type        primitive.KindEnum
	Optional    bool
	Write       bool
	Roles       [][]string
	RustByValue bool
}

// Function is an invokable method.
type Function struct {
	Name      string
	Return    primitive.KindEnum
	Mut       bool
	Arguments []Argument
}

// Argument is a function parameter.
type Argument struct {
	Name string
	Type primitive.KindEnum
}

// IsComplex reports whether the item property is a QString or QByteArray.
func (ip *ItemProperty) IsComplex() bool {
	return ip.Type.IsComplex()
}

// RolesAt returns the roles listed for column col; nil when none are.
func (ip *ItemProperty) RolesAt(col int) []string {
	roles, _ := common.At(ip.Roles, col)
	return roles
}

// HasRole reports whether role is listed for column col.
func (ip *ItemProperty) HasRole(col int, role string) bool {
	for _, r := range ip.RolesAt(col) {
		if r == role {
			return true
		}
	}

	return false
}
