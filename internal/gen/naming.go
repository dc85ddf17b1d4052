package gen

import (
	"path/filepath"
	"strings"

	"qt-binding-generator/internal/common"
	"qt-binding-generator/internal/config"
	"qt-binding-generator/internal/schema"
	"qt-binding-generator/primitive"
)

// Banner is the first line of every generated file.
const Banner = "/* generated by qt-binding-generator */"

// HeaderPath is the C++ header next to the configured source file.
func HeaderPath(cfg *schema.Config) string {
	return strings.TrimSuffix(cfg.CppFile, filepath.Ext(cfg.CppFile)) + ".h"
}

// InterfacePath is the Rust module holding the generated glue.
func InterfacePath(cfg *schema.Config) string {
	return filepath.Join(cfg.Rust.Dir, "src", cfg.Rust.InterfaceModule+".rs")
}

// ImplementationPath is the Rust module holding the user's implementation.
func ImplementationPath(cfg *schema.Config) string {
	return filepath.Join(cfg.Rust.Dir, "src", cfg.Rust.ImplementationModule+".rs")
}

// includeGuard derives the header guard from the header file name.
func includeGuard(headerPath string) string {
	return strings.ToUpper(strings.ReplaceAll(filepath.Base(headerPath), ".", "_"))
}

func baseClass(o *schema.Object) string {
	if o.IsModel() {
		return "QAbstractItemModel"
	}

	return "QObject"
}

// modelSuffix is "List" or "Tree"; empty for plain objects.
func modelSuffix(o *schema.Object) string {
	switch o.Kind {
	case config.KindList:
		return "List"
	case config.KindTree:
		return "Tree"
	default:
		return ""
	}
}

// changedTrampoline names the C++ function Rust calls when a property changes.
func changedTrampoline(o *schema.Object, p *schema.Property) string {
	return common.LowerInitial(o.Name) + common.UpperInitial(p.Name) + "Changed"
}

// cppPropertyType is the Qt-side value type of a property.
func cppPropertyType(p *schema.Property) string {
	if p.Optional && !p.Type.IsComplex() && !p.Type.IsObject() {
		return "QVariant"
	}

	return p.Type.Name()
}

// cppItemType is the Qt-side value type of an item property.
func cppItemType(ip *schema.ItemProperty) string {
	if ip.Optional && !ip.IsComplex() {
		return "QVariant"
	}

	return ip.Type.Name()
}

// cItemType is the C return type of an item getter for a scalar kind.
func cItemType(ip *schema.ItemProperty) string {
	if ip.Optional {
		return "option_" + ip.Type.Name()
	}

	return ip.Type.Name()
}

// cGetType is the out-parameter pair a complex getter takes.
func cGetType(k primitive.KindEnum) string {
	return k.Name() + "*, " + strings.ToLower(k.Name()) + "_set"
}

// copyCallback names the C++ function copying Rust bytes into a Qt value.
func copyCallback(k primitive.KindEnum) string {
	return "set_" + strings.ToLower(k.Name())
}

func lc(name string) string {
	return common.SnakeCase(name)
}
