package gen

import (
	"qt-binding-generator/internal/config"
	"qt-binding-generator/internal/schema"
	"qt-binding-generator/primitive"
)

const rustImplementationAllows = `#![allow(unused_imports)]
#![allow(unused_variables)]
#![allow(dead_code)]
`

// RustImplementation renders a starter implementation of every object trait.
// It is meant to be edited by hand, so it is only written once.
func RustImplementation(cfg *schema.Config) ([]byte, error) {
	c := &code{}
	c.text(rustImplementationAllows)
	c.line("use %s%s::*;", cfg.RustEdition.ModulePrefix(), cfg.Rust.InterfaceModule)
	c.line("")

	for _, o := range cfg.Objects {
		writeRustImplementationObject(c, o)
	}

	return c.bytes()
}

func writeRustImplementationObject(c *code, o *schema.Object) {
	if o.IsModel() {
		c.line("#[derive(Default, Clone)]")
		c.line("struct %sItem {", o.Name)

		for _, ip := range o.ItemProperties {
			c.line("    %s: %s,", lc(ip.Name), rustItemType(ip))
		}

		c.line("}")
		c.line("")
	}

	c.line("pub struct %s {", o.Name)
	c.line("    emit: %sEmitter,", o.Name)

	modelStruct := ""
	if o.IsModel() {
		modelStruct = ", model: " + o.Name + modelSuffix(o)
		c.line("    model: %s%s,", o.Name, modelSuffix(o))
	}

	for _, p := range o.Properties {
		c.line("    %s: %s,", lc(p.Name), rustType(p))
	}

	if o.IsModel() {
		c.line("    list: Vec<%sItem>,", o.Name)
	}

	c.line("}")
	c.line("")

	for _, p := range o.Properties {
		if p.Type.IsObject() {
			modelStruct += ", " + lc(p.Name) + ": " + p.Type.Name()
		}
	}

	c.line("impl %sTrait for %[1]s {", o.Name)
	c.line("    fn new(emit: %sEmitter%s) -> %[1]s {", o.Name, modelStruct)
	c.line("        %s {", o.Name)
	c.line("            emit,")

	if o.IsModel() {
		c.line("            model,")
		c.line("            list: Vec::new(),")
	}

	for _, p := range o.Properties {
		if p.Type.IsObject() {
			c.line("            %s,", lc(p.Name))
		} else {
			c.line("            %s: %s,", lc(p.Name), rustTypeInit(p))
		}
	}

	c.line("        }")
	c.line("    }")
	c.line("    fn emit(&mut self) -> &mut %sEmitter {", o.Name)
	c.line("        &mut self.emit")
	c.line("    }")

	for _, p := range o.Properties {
		writeRustImplementationProperty(c, p)
	}

	for _, f := range o.Functions {
		writeRustImplementationFunction(c, f)
	}

	switch o.Kind {
	case config.KindList:
		c.line("    fn row_count(&self) -> usize {")
		c.line("        self.list.len()")
		c.line("    }")
	case config.KindTree:
		c.text(rustTreeImplementation)
	}

	if o.IsModel() {
		for _, ip := range o.ItemProperties {
			writeRustImplementationItem(c, ip)
		}
	}

	c.line("}")
}

func writeRustImplementationProperty(c *code, p *schema.Property) {
	name := lc(p.Name)

	switch {
	case p.Type.IsObject():
		c.line("    fn %s(&self) -> &%s {", name, rustReturnType(p))
		c.line("        &self.%s", name)
		c.line("    }")
		c.line("    fn %s_mut(&mut self) -> &mut %s {", name, rustReturnType(p))
		c.line("        &mut self.%s", name)
		c.line("    }")

		return
	case rustByFunction(p):
		c.line("    fn %s<F>(&self, getter: F)", name)
		c.line("    where")
		c.line("        F: FnOnce(%s),", rustReturnType(p))
		c.line("    {")

		if p.Optional {
			c.line("        getter(self.%s.as_ref().map(|p| &p[..]))", name)
		} else {
			c.line("        getter(&self.%s)", name)
		}

		c.line("    }")
	default:
		c.line("    fn %s(&self) -> %s {", name, rustReturnType(p))

		switch {
		case p.Type.IsComplex() && p.Optional:
			c.line("        self.%s.as_ref().map(|p| &p[..])", name)
		case p.Type.IsComplex():
			c.line("        &self.%s", name)
		default:
			c.line("        self.%s", name)
		}

		c.line("    }")
	}

	if !p.Write {
		return
	}

	t, conv := rustType(p), ""

	if p.Type.Simple == primitive.KindQByteArray {
		t, conv = "&[u8]", ".to_vec()"
		if p.Optional {
			t, conv = "Option<&[u8]>", ".map(|v| v.to_vec())"
		}
	}

	c.line("    fn set_%s(&mut self, value: %s) {", name, t)
	c.line("        self.%s = value%s;", name, conv)
	c.line("        self.emit.%s_changed();", name)
	c.line("    }")
}

func writeRustImplementationFunction(c *code, f *schema.Function) {
	self := "&self"
	if f.Mut {
		self = "&mut self"
	}

	c.printf("    fn %s(%s", lc(f.Name), self)

	for _, a := range f.Arguments {
		t := a.Type.RustType()
		if a.Type == primitive.KindQByteArray {
			t = "&[u8]"
		}

		c.printf(", %s: %s", a.Name, t)
	}

	c.line(") -> %s {", f.Return.RustType())
	c.line("        %s", f.Return.RustTypeInit())
	c.line("    }")
}

func writeRustImplementationItem(c *code, ip *schema.ItemProperty) {
	name := lc(ip.Name)

	c.line("    fn %s(&self, index: usize) -> %s {", name, rustItemReturnType(ip))

	switch {
	case ip.IsComplex() && ip.RustByValue:
		c.line("        self.list[index].%s.clone()", name)
	case ip.IsComplex() && ip.Optional:
		c.line("        self.list[index].%s.as_ref().map(|v| &v[..])", name)
	case ip.IsComplex():
		c.line("        &self.list[index].%s", name)
	default:
		c.line("        self.list[index].%s", name)
	}

	c.line("    }")

	if !ip.Write {
		return
	}

	switch {
	case ip.Type == primitive.KindQByteArray && ip.Optional:
		c.line("    fn set_%s(&mut self, index: usize, v: Option<&[u8]>) -> bool {", name)
		c.line("        self.list[index].%s = v.map(|v| v.to_vec());", name)
	case ip.Type == primitive.KindQByteArray:
		c.line("    fn set_%s(&mut self, index: usize, v: &[u8]) -> bool {", name)
		c.line("        self.list[index].%s = v.to_vec();", name)
	default:
		c.line("    fn set_%s(&mut self, index: usize, v: %s) -> bool {", name, rustItemType(ip))
		c.line("        self.list[index].%s = v;", name)
	}

	c.line("        true")
	c.line("    }")
}
