package schema

import (
	"qt-binding-generator/primitive"
)

// Type is the type of a property: exactly one of Simple or Object is set.
type Type struct {
	Simple primitive.KindEnum
	Object *Object
}

// SimpleType returns a Type holding a primitive kind.
func SimpleType(k primitive.KindEnum) Type {
	return Type{Simple: k}
}

// ObjectType returns a Type referring to an object.
func ObjectType(o *Object) Type {
	return Type{Object: o}
}

// IsObject reports whether t refers to another object.
func (t Type) IsObject() bool {
	return t.Object != nil
}

// IsComplex reports whether t is a QString or QByteArray.
func (t Type) IsComplex() bool {
	return t.Object == nil && t.Simple.IsComplex()
}

// Name returns the primitive keyword or the object name.
func (t Type) Name() string {
	if t.Object != nil {
		return t.Object.Name
	}

	return t.Simple.Name()
}

func (t Type) CppSetType() string {
	if t.Object != nil {
		return t.Object.Name
	}

	return t.Simple.CppSetType()
}

func (t Type) CSetType() string {
	if t.Object != nil {
		return t.Object.Name
	}

	return t.Simple.CSetType()
}

func (t Type) RustType() string {
	if t.Object != nil {
		return t.Object.Name
	}

	return t.Simple.RustType()
}

// RustTypeInit returns the Rust default expression. Objects have none.
func (t Type) RustTypeInit() string {
	if t.Object != nil {
		return ""
	}

	return t.Simple.RustTypeInit()
}
