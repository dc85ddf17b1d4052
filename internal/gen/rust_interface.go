package gen

import (
	"strings"

	"qt-binding-generator/internal/config"
	"qt-binding-generator/internal/schema"
	"qt-binding-generator/primitive"
)

// RustInterface renders the Rust module of extern "C" entry points and the
// trait each object implementation has to satisfy.
func RustInterface(cfg *schema.Config) ([]byte, error) {
	c := &code{}
	c.line(Banner)
	c.text(rustInterfaceImports)
	c.line("")
	c.line("use %s%s::*;", cfg.RustEdition.ModulePrefix(), cfg.Rust.ImplementationModule)

	writeRustTypes(c, cfg)

	for _, o := range cfg.Objects {
		writeRustInterfaceObject(c, o)
	}

	return c.bytes()
}

func writeRustInterfaceObject(c *code, o *schema.Object) {
	name := lc(o.Name)

	c.line("")
	c.line("pub struct %sQObject {}", o.Name)
	c.line("")
	writeRustEmitter(c, o)

	modelStruct := ""
	if o.IsModel() {
		modelStruct = ", model: " + o.Name + modelSuffix(o)
		c.exec(rustModelStructTemplate, newRustModelData(o))
	}

	c.line("}")
	c.line("")
	writeRustTrait(c, o, modelStruct)

	c.line("")
	c.line("#[no_mangle]")
	c.line("pub extern \"C\" fn %s_new(", name)
	rustConstructorArgsDecl(c, name, o)
	c.line(",")
	c.line(") -> *mut %s {", o.Name)
	rustConstructorArgs(c, name, o)
	c.line("    Box::into_raw(Box::new(d_%s))", name)
	c.line("}")
	c.line("")
	c.line("#[no_mangle]")
	c.line("pub unsafe extern \"C\" fn %s_free(ptr: *mut %s) {", name, o.Name)
	c.line("    Box::from_raw(ptr).emit().clear();")
	c.line("}")

	for _, p := range o.Properties {
		writeRustPropertyThunks(c, o, p)
	}

	for _, f := range o.Functions {
		writeRustFunction(c, o, f)
	}

	switch o.Kind {
	case config.KindList:
		c.exec(rustListThunksTemplate, newModelData(o.Name, o.ColumnCount()))
	case config.KindTree:
		c.exec(rustTreeThunksTemplate, newModelData(o.Name, o.ColumnCount()))
	}

	if o.IsModel() {
		for _, ip := range o.ItemProperties {
			writeRustItemThunks(c, o, ip)
		}
	}
}

// writeRustEmitter leaves the emitter impl block open for the model handle.
func writeRustEmitter(c *code, o *schema.Object) {
	c.line("pub struct %sEmitter {", o.Name)
	c.line("    qobject: Arc<AtomicPtr<%sQObject>>,", o.Name)

	for _, p := range o.Properties {
		if !p.Type.IsObject() {
			c.line("    %s_changed: fn(*mut %sQObject),", lc(p.Name), o.Name)
		}
	}

	switch o.Kind {
	case config.KindList:
		c.line("    new_data_ready: fn(*mut %sQObject),", o.Name)
	case config.KindTree:
		c.line("    new_data_ready: fn(*mut %sQObject, index: COption<usize>),", o.Name)
	}

	c.line("}")
	c.line("")
	c.line("unsafe impl Send for %sEmitter {}", o.Name)
	c.line("")
	c.line("impl %sEmitter {", o.Name)
	c.line("    /// Clone the emitter")
	c.line("    ///")
	c.line("    /// The emitter can only be cloned when it is mutable. The emitter calls")
	c.line("    /// into C++ code which may call into Rust again. If emmitting is possible")
	c.line("    /// from immutable structures, that might lead to access to a mutable")
	c.line("    /// reference. That is undefined behaviour and forbidden.")
	c.line("    pub fn clone(&mut self) -> %sEmitter {", o.Name)
	c.line("        %sEmitter {", o.Name)
	c.line("            qobject: self.qobject.clone(),")

	for _, p := range o.Properties {
		if !p.Type.IsObject() {
			c.line("            %s_changed: self.%[1]s_changed,", lc(p.Name))
		}
	}

	if o.IsModel() {
		c.line("            new_data_ready: self.new_data_ready,")
	}

	c.line("        }")
	c.line("    }")
	c.line("    fn clear(&self) {")
	c.line("        let n: *const %sQObject = null();", o.Name)
	c.line("        self.qobject.store(n as *mut %sQObject, Ordering::SeqCst);", o.Name)
	c.line("    }")

	for _, p := range o.Properties {
		if p.Type.IsObject() {
			continue
		}

		c.line("    pub fn %s_changed(&mut self) {", lc(p.Name))
		c.line("        let ptr = self.qobject.load(Ordering::SeqCst);")
		c.line("        if !ptr.is_null() {")
		c.line("            (self.%s_changed)(ptr);", lc(p.Name))
		c.line("        }")
		c.line("    }")
	}

	switch o.Kind {
	case config.KindList:
		c.line("    pub fn new_data_ready(&mut self) {")
		c.line("        let ptr = self.qobject.load(Ordering::SeqCst);")
		c.line("        if !ptr.is_null() {")
		c.line("            (self.new_data_ready)(ptr);")
		c.line("        }")
		c.line("    }")
	case config.KindTree:
		c.line("    pub fn new_data_ready(&mut self, item: Option<usize>) {")
		c.line("        let ptr = self.qobject.load(Ordering::SeqCst);")
		c.line("        if !ptr.is_null() {")
		c.line("            (self.new_data_ready)(ptr, item.into());")
		c.line("        }")
		c.line("    }")
	}
}

func writeRustTrait(c *code, o *schema.Object, modelStruct string) {
	c.line("pub trait %sTrait {", o.Name)
	c.printf("    fn new(emit: %sEmitter%s", o.Name, modelStruct)

	for _, p := range o.Properties {
		if p.Type.IsObject() {
			c.printf(",\n        %s: %s", lc(p.Name), p.Type.Name())
		}
	}

	c.line(") -> Self;")
	c.line("    fn emit(&mut self) -> &mut %sEmitter;", o.Name)

	for _, p := range o.Properties {
		name := lc(p.Name)

		if p.Type.IsObject() {
			c.line("    fn %s(&self) -> &%s;", name, rustType(p))
			c.line("    fn %s_mut(&mut self) -> &mut %s;", name, rustType(p))

			continue
		}

		if rustByFunction(p) {
			c.line("    fn %s<F>(&self, getter: F) where F: FnOnce(%s);", name, rustReturnType(p))
		} else {
			c.line("    fn %s(&self) -> %s;", name, rustReturnType(p))
		}

		if !p.Write {
			continue
		}

		switch {
		case p.Type.Simple == primitive.KindQByteArray && p.Optional:
			c.line("    fn set_%s(&mut self, value: Option<&[u8]>);", name)
		case p.Type.Simple == primitive.KindQByteArray:
			c.line("    fn set_%s(&mut self, value: &[u8]);", name)
		default:
			c.line("    fn set_%s(&mut self, value: %s);", name, rustType(p))
		}
	}

	for _, f := range o.Functions {
		var args strings.Builder

		for _, a := range f.Arguments {
			t := a.Type.RustType()
			if a.Type == primitive.KindQByteArray {
				t = "&[u8]"
			}

			args.WriteString(", " + a.Name + ": " + t)
		}

		self := "&self"
		if f.Mut {
			self = "&mut self"
		}

		c.line("    fn %s(%s%s) -> %s;", lc(f.Name), self, args.String(), f.Return.RustType())
	}

	switch o.Kind {
	case config.KindList:
		c.text(rustListTrait)
	case config.KindTree:
		c.text(rustTreeTrait)
	}

	if o.IsModel() {
		for _, ip := range o.ItemProperties {
			name := lc(ip.Name)

			c.line("    fn %s(&self, index: usize) -> %s;", name, rustItemReturnType(ip))

			if !ip.Write {
				continue
			}

			switch {
			case ip.Type == primitive.KindQByteArray && ip.Optional:
				c.line("    fn set_%s(&mut self, index: usize, _: Option<&[u8]>) -> bool;", name)
			case ip.Type == primitive.KindQByteArray:
				c.line("    fn set_%s(&mut self, index: usize, _: &[u8]) -> bool;", name)
			default:
				c.line("    fn set_%s(&mut self, index: usize, _: %s) -> bool;", name, rustItemType(ip))
			}
		}
	}

	c.line("}")
}

// rustConstructorArgsDecl declares the parameters of <object>_new. Nested
// objects contribute their own parameters under the property name.
func rustConstructorArgsDecl(c *code, name string, o *schema.Object) {
	c.printf("    %s: *mut %sQObject", name, o.Name)

	for _, p := range o.Properties {
		if p.Type.IsObject() {
			c.line(",")
			rustConstructorArgsDecl(c, lc(p.Name), p.Type.Object)
		} else {
			c.printf(",\n    %s_%s_changed: fn(*mut %sQObject)", name, lc(p.Name), o.Name)
		}
	}

	switch o.Kind {
	case config.KindList:
		c.printf(",\n    %s_new_data_ready: fn(*mut %sQObject)", name, o.Name)
	case config.KindTree:
		c.printf(",\n    %s_new_data_ready: fn(*mut %sQObject, index: COption<usize>)", name, o.Name)
	}

	if o.IsModel() {
		data := newRustModelData(o)
		data.Lc = name
		c.exec(rustModelArgsDeclTemplate, data)
	}
}

// rustConstructorArgs builds the emitter, model handle and implementation of
// o bottom-up, binding them to d_<name>.
func rustConstructorArgs(c *code, name string, o *schema.Object) {
	for _, p := range o.Properties {
		if p.Type.IsObject() {
			rustConstructorArgs(c, lc(p.Name), p.Type.Object)
		}
	}

	c.line("    let %s_emit = %sEmitter {", name, o.Name)
	c.line("        qobject: Arc::new(AtomicPtr::new(%s)),", name)

	for _, p := range o.Properties {
		if !p.Type.IsObject() {
			c.line("        %s_changed: %s_%[1]s_changed,", lc(p.Name), name)
		}
	}

	model := ""
	if o.IsModel() {
		c.line("        new_data_ready: %s_new_data_ready,", name)

		data := newRustModelData(o)
		data.Lc = name
		c.exec(rustModelArgsTemplate, data)

		model = ", model"
	}

	c.printf("    };\n    let d_%s = %s::new(%s_emit%s", name, o.Name, name, model)

	for _, p := range o.Properties {
		if p.Type.IsObject() {
			c.printf(",\n        d_%s", lc(p.Name))
		}
	}

	c.line(");")
}

func writeRustPropertyThunks(c *code, o *schema.Object, p *schema.Property) {
	base := lc(o.Name) + "_" + lc(p.Name)
	name := lc(p.Name)

	switch {
	case p.Type.IsObject():
		c.line("")
		c.line("#[no_mangle]")
		c.line("pub unsafe extern \"C\" fn %s_get(ptr: *mut %s) -> *mut %s {", base, o.Name, rustType(p))
		c.line("    (&mut *ptr).%s_mut()", name)
		c.line("}")
	case p.Type.IsComplex():
		writeRustComplexGetter(c, o, p, base)

		if !p.Write {
			break
		}

		strVal, bytesVal := "s", "v"
		if p.Optional {
			strVal, bytesVal = "Some(s)", "Some(v.into())"
		}

		c.line("")
		c.line("#[no_mangle]")

		if p.Type.Simple == primitive.KindQString {
			c.line("pub unsafe extern \"C\" fn %s_set(ptr: *mut %s, v: *const c_ushort, len: c_int) {", base, o.Name)
			c.line("    let o = &mut *ptr;")
			c.line("    let mut s = String::new();")
			c.line("    set_string_from_utf16(&mut s, v, len);")
			c.line("    o.set_%s(%s);", name, strVal)
		} else {
			c.line("pub unsafe extern \"C\" fn %s_set(ptr: *mut %s, v: *const c_char, len: c_int) {", base, o.Name)
			c.line("    let o = &mut *ptr;")
			c.line("    let v = slice::from_raw_parts(v as *const u8, to_usize(len));")
			c.line("    o.set_%s(%s);", name, bytesVal)
		}

		c.line("}")
	case p.Optional:
		t := p.Type.RustType()

		c.line("")
		c.line("#[no_mangle]")
		c.line("pub unsafe extern \"C\" fn %s_get(ptr: *const %s) -> COption<%s> {", base, o.Name, t)
		c.line("    match (&*ptr).%s() {", name)
		c.line("        Some(value) => COption { data: value, some: true },")
		c.line("        None => COption { data: %s::default(), some: false}", t)
		c.line("    }")
		c.line("}")

		if p.Write {
			c.line("")
			c.line("#[no_mangle]")
			c.line("pub unsafe extern \"C\" fn %s_set(ptr: *mut %s, v: %s) {", base, o.Name, t)
			c.line("    (&mut *ptr).set_%s(Some(v));", name)
			c.line("}")
		}
	default:
		c.line("")
		c.line("#[no_mangle]")
		c.line("pub unsafe extern \"C\" fn %s_get(ptr: *const %s) -> %s {", base, o.Name, rustType(p))
		c.line("    (&*ptr).%s()", name)
		c.line("}")

		if p.Write {
			c.line("")
			c.line("#[no_mangle]")
			c.line("pub unsafe extern \"C\" fn %s_set(ptr: *mut %s, v: %s) {", base, o.Name, rustType(p))
			c.line("    (&mut *ptr).set_%s(v);", name)
			c.line("}")
		}
	}

	if p.Write && p.Optional {
		c.line("")
		c.line("#[no_mangle]")
		c.line("pub unsafe extern \"C\" fn %s_set_none(ptr: *mut %s) {", base, o.Name)
		c.line("    let o = &mut *ptr;")
		c.line("    o.set_%s(None);", name)
		c.line("}")
	}
}

// writeRustComplexGetter copies the property bytes into the Qt value behind
// p through the set callback.
func writeRustComplexGetter(c *code, o *schema.Object, p *schema.Property, base string) {
	c.line("")
	c.line("#[no_mangle]")
	c.line("pub unsafe extern \"C\" fn %s_get(", base)
	c.line("    ptr: *const %s,", o.Name)
	c.line("    p: *mut %s,", p.Type.Name())
	c.line("    set: fn(*mut %s, *const c_char, c_int),", p.Type.Name())
	c.line(") {")
	c.line("    let o = &*ptr;")

	switch {
	case rustByFunction(p) && !p.Optional:
		c.line("    o.%s(|v| {", lc(p.Name))
		c.line("        let s: *const c_char = v.as_ptr() as (*const c_char);")
		c.line("        set(p, s, to_c_int(v.len()));")
		c.line("    });")
	case rustByFunction(p):
		c.line("    o.%s(|v| {", lc(p.Name))
		c.line("        if let Some(v) = v {")
		c.line("            let s: *const c_char = v.as_ptr() as (*const c_char);")
		c.line("            set(p, s, to_c_int(v.len()));")
		c.line("        }")
		c.line("    });")
	case p.Optional:
		c.line("    let v = o.%s();", lc(p.Name))
		c.line("    if let Some(v) = v {")
		c.line("        let s: *const c_char = v.as_ptr() as (*const c_char);")
		c.line("        set(p, s, to_c_int(v.len()));")
		c.line("    }")
	default:
		c.line("    let v = o.%s();", lc(p.Name))
		c.line("    let s: *const c_char = v.as_ptr() as (*const c_char);")
		c.line("    set(p, s, to_c_int(v.len()));")
	}

	c.line("}")
}

func writeRustFunction(c *code, o *schema.Object, f *schema.Function) {
	name := lc(f.Name)

	ptr := "const"
	if f.Mut {
		ptr = "mut"
	}

	c.line("")
	c.line("#[no_mangle]")
	c.printf("pub unsafe extern \"C\" fn %s_%s(ptr: *%s %s", lc(o.Name), name, ptr, o.Name)

	// complex arguments arrive as pointer and length
	for _, a := range f.Arguments {
		switch a.Type {
		case primitive.KindQString:
			c.printf(", %s_str: *const c_ushort, %[1]s_len: c_int", a.Name)
		case primitive.KindQByteArray:
			c.printf(", %s_str: *const c_char, %[1]s_len: c_int", a.Name)
		default:
			c.printf(", %s: %s", a.Name, a.Type.RustType())
		}
	}

	switch {
	case f.Return.IsComplex():
		c.line(", d: *mut %s, set: fn(*mut %[1]s, str: *const c_char, len: c_int)) {", f.Return.Name())
	case f.Return == primitive.KindVoid:
		c.line(") {")
	default:
		c.line(") -> %s {", f.Return.RustType())
	}

	names := make([]string, 0, len(f.Arguments))

	for _, a := range f.Arguments {
		names = append(names, a.Name)

		switch a.Type {
		case primitive.KindQString:
			c.line("    let mut %s = String::new();", a.Name)
			c.line("    set_string_from_utf16(&mut %s, %[1]s_str, %[1]s_len);", a.Name)
		case primitive.KindQByteArray:
			c.line("    let %s = { slice::from_raw_parts(%[1]s_str as *const u8, to_usize(%[1]s_len)) };", a.Name)
		}
	}

	if f.Mut {
		c.line("    let o = &mut *ptr;")
	} else {
		c.line("    let o = &*ptr;")
	}

	call := "o." + name + "(" + strings.Join(names, ", ") + ")"

	if f.Return.IsComplex() {
		c.line("    let r = %s;", call)
		c.line("    let s: *const c_char = r.as_ptr() as (*const c_char);")
		c.line("    set(d, s, to_c_int(r.len()));")
	} else {
		c.line("    %s", call)
	}

	c.line("}")
}

func writeRustItemThunks(c *code, o *schema.Object, ip *schema.ItemProperty) {
	base := lc(o.Name)
	name := lc(ip.Name)

	indexDecl, index := ", row: c_int", "to_usize(row)"
	if o.Kind == config.KindTree {
		indexDecl, index = ", index: usize", "index"
	}

	c.line("")
	c.line("#[no_mangle]")

	switch {
	case ip.IsComplex():
		c.line("pub unsafe extern \"C\" fn %s_data_%s(", base, name)
		c.line("    ptr: *const %s%s,", o.Name, indexDecl)
		c.line("    d: *mut %s,", ip.Type.Name())
		c.line("    set: fn(*mut %s, *const c_char, len: c_int),", ip.Type.Name())
		c.line(") {")
		c.line("    let o = &*ptr;")
		c.line("    let data = o.%s(%s);", name, index)

		if ip.Optional {
			c.line("    if let Some(data) = data {")
			c.line("        let s: *const c_char = data.as_ptr() as (*const c_char);")
			c.line("        set(d, s, to_c_int(data.len()));")
			c.line("    }")
		} else {
			c.line("    let s: *const c_char = data.as_ptr() as (*const c_char);")
			c.line("    set(d, s, to_c_int(data.len()));")
		}

		c.line("}")
	default:
		into := ""
		if ip.Optional {
			into = ".into()"
		}

		c.line("pub unsafe extern \"C\" fn %s_data_%s(ptr: *const %s%s) -> %s {", base, name, o.Name, indexDecl, rustCType(ip))
		c.line("    let o = &*ptr;")
		c.line("    o.%s(%s)%s", name, index, into)
		c.line("}")
	}

	if !ip.Write {
		return
	}

	c.line("")
	c.line("#[no_mangle]")

	switch ip.Type {
	case primitive.KindQString:
		value := "v"
		if ip.Optional {
			value = "Some(v)"
		}

		c.line("pub unsafe extern \"C\" fn %s_set_data_%s(", base, name)
		c.line("    ptr: *mut %s%s,", o.Name, indexDecl)
		c.line("    s: *const c_ushort, len: c_int,")
		c.line(") -> bool {")
		c.line("    let o = &mut *ptr;")
		c.line("    let mut v = String::new();")
		c.line("    set_string_from_utf16(&mut v, s, len);")
		c.line("    o.set_%s(%s, %s)", name, index, value)
	case primitive.KindQByteArray:
		value := "slice"
		if ip.Optional {
			value = "Some(slice)"
		}

		c.line("pub unsafe extern \"C\" fn %s_set_data_%s(", base, name)
		c.line("    ptr: *mut %s%s,", o.Name, indexDecl)
		c.line("    s: *const c_char, len: c_int,")
		c.line(") -> bool {")
		c.line("    let o = &mut *ptr;")
		c.line("    let slice = ::std::slice::from_raw_parts(s as *const u8, to_usize(len));")
		c.line("    o.set_%s(%s, %s)", name, index, value)
	default:
		value := "v"
		if ip.Optional {
			value = "Some(v)"
		}

		c.line("pub unsafe extern \"C\" fn %s_set_data_%s(", base, name)
		c.line("    ptr: *mut %s%s,", o.Name, indexDecl)
		c.line("    v: %s,", ip.Type.RustType())
		c.line(") -> bool {")
		c.line("    (&mut *ptr).set_%s(%s, %s)", name, index, value)
	}

	c.line("}")

	if ip.Optional {
		c.line("")
		c.line("#[no_mangle]")
		c.line("pub unsafe extern \"C\" fn %s_set_data_%s_none(ptr: *mut %s%s) -> bool {", base, name, o.Name, indexDecl)
		c.line("    (&mut *ptr).set_%s(%s, None)", name, index)
		c.line("}")
	}
}
