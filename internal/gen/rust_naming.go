package gen

import (
	"qt-binding-generator/internal/schema"
	"qt-binding-generator/primitive"
)

// rustType is the Rust storage type of a property.
func rustType(p *schema.Property) string {
	if p.Optional {
		return "Option<" + p.Type.RustType() + ">"
	}

	return p.Type.RustType()
}

func rustItemType(ip *schema.ItemProperty) string {
	if ip.Optional {
		return "Option<" + ip.Type.RustType() + ">"
	}

	return ip.Type.RustType()
}

// borrowed maps the owned Rust types of complex kinds to their slices.
func borrowed(k primitive.KindEnum) string {
	switch k {
	case primitive.KindQString:
		return "&str"
	case primitive.KindQByteArray:
		return "&[u8]"
	default:
		return k.RustType()
	}
}

// rustReturnType is the getter result of a property: complex values are
// lent out as slices.
func rustReturnType(p *schema.Property) string {
	t := p.Type.RustType()
	if p.Type.IsComplex() {
		t = borrowed(p.Type.Simple)
	}

	if p.Optional {
		return "Option<" + t + ">"
	}

	return t
}

// rustItemReturnType is rustReturnType for item properties; rustByValue
// keeps the owned type.
func rustItemReturnType(ip *schema.ItemProperty) string {
	t := ip.Type.RustType()
	if ip.IsComplex() && !ip.RustByValue {
		t = borrowed(ip.Type)
	}

	if ip.Optional {
		return "Option<" + t + ">"
	}

	return t
}

// rustCType is the C-ABI result of a scalar item getter.
func rustCType(ip *schema.ItemProperty) string {
	if ip.Optional {
		return "COption<" + ip.Type.RustType() + ">"
	}

	return ip.Type.RustType()
}

func rustTypeInit(p *schema.Property) string {
	if p.Optional {
		return "None"
	}

	return p.Type.RustTypeInit()
}

// rustByFunction reports whether the getter of p lends its value to a
// closure. Only complex values are lent; scalars are returned by copy.
func rustByFunction(p *schema.Property) bool {
	return p.RustByFunction && p.Type.IsComplex()
}
