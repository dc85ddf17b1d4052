package gen

import (
	"path/filepath"
	"strings"

	"qt-binding-generator/internal/common"
	"qt-binding-generator/internal/schema"
	"qt-binding-generator/primitive"
)

// CppSource renders the Qt source implementing the classes of CppHeader on
// top of the Rust entry points.
func CppSource(cfg *schema.Config) ([]byte, error) {
	c := &code{}
	c.line(Banner)
	c.line("#include \"%s\"", filepath.Base(HeaderPath(cfg)))
	c.line("")
	c.line("namespace {")

	for _, t := range cfg.OptionalTypes() {
		if t != "QString" && t != "QByteArray" {
			c.exec(cppOptionTemplate, t)
		}
	}

	if cfg.HasType("QString") {
		c.text(cppQStringHelpers)
	}

	if cfg.HasType("QByteArray") {
		c.text(cppQByteArrayHelpers)
	}

	if cfg.HasListOrTree() {
		c.text(cppModelHelpers)
	}

	for _, o := range cfg.Objects {
		for _, p := range o.Properties {
			if p.Type.IsObject() {
				continue
			}

			c.line("    inline void %s(%s* o)", changedTrampoline(o, p), o.Name)
			c.line("    {")
			c.line("        Q_EMIT o->%sChanged();", p.Name)
			c.line("    }")
		}
	}

	c.line("}")

	for _, o := range cfg.Objects {
		if o.IsModel() {
			writeCppModel(c, o)
		}

		c.line("extern \"C\" {")
		writeObjectCDecl(c, o)
		c.line("};")
		c.line("")
	}

	for _, o := range cfg.Objects {
		writeCppObject(c, o)
	}

	c.text(cppInvokeMethod)

	return c.bytes()
}

// writeObjectCDecl declares the Rust entry points of an object.
func writeObjectCDecl(c *code, o *schema.Object) {
	name := lc(o.Name)

	c.printf("    %s::Private* %s_new(", o.Name, name)
	constructorArgsDecl(c, o)
	c.line(");")
	c.line("    void %s_free(%s::Private*);", name, o.Name)

	for _, p := range o.Properties {
		base := name + "_" + lc(p.Name)

		switch {
		case p.Type.IsObject():
			c.line("    %s::Private* %s_get(const %s::Private*);", p.Type.Name(), base, o.Name)
		case p.Type.IsComplex():
			c.line("    void %s_get(const %s::Private*, %s);", base, o.Name, cGetType(p.Type.Simple))
		case p.Optional:
			c.line("    option_%s %s_get(const %s::Private*);", p.Type.Name(), base, o.Name)
		default:
			c.line("    %s %s_get(const %s::Private*);", p.Type.Name(), base, o.Name)
		}

		if !p.Write {
			continue
		}

		t := p.Type.CSetType()
		switch t {
		case "qstring_t":
			t = "const ushort *str, int len"
		case "qbytearray_t":
			t = "const char* bytes, int len"
		}

		c.line("    void %s_set(%s::Private*, %s);", base, o.Name, t)

		if p.Optional {
			c.line("    void %s_set_none(%s::Private*);", base, o.Name)
		}
	}

	for _, f := range o.Functions {
		writeFunctionCDecl(c, o, f)
	}
}

func writeFunctionCDecl(c *code, o *schema.Object, f *schema.Function) {
	ret := f.Return.Name()
	if f.Return.IsComplex() {
		ret = "void"
	}

	constness := "const "
	if f.Mut {
		constness = ""
	}

	c.printf("    %s %s_%s(%s%s::Private*", ret, lc(o.Name), lc(f.Name), constness, o.Name)

	// complex arguments cross as pointer and length
	for _, a := range f.Arguments {
		switch a.Type {
		case primitive.KindQString:
			c.text(", const ushort*, int")
		case primitive.KindQByteArray:
			c.text(", const char*, int")
		default:
			c.printf(", %s", a.Type.Name())
		}
	}

	// complex results are copied into an out parameter
	if f.Return.IsComplex() {
		c.printf(", %s", cGetType(f.Return))
	}

	c.line(");")
}

// constructorArgsDecl lists the parameter types of <object>_new.
func constructorArgsDecl(c *code, o *schema.Object) {
	c.printf("%s*", o.Name)

	for _, p := range o.Properties {
		if p.Type.IsObject() {
			c.text(", ")
			constructorArgsDecl(c, p.Type.Object)
		} else {
			c.printf(", void (*)(%s*)", o.Name)
		}
	}

	switch modelSuffix(o) {
	case "List":
		c.printf(cppListCallbackTypes, o.Name)
	case "Tree":
		c.printf(cppTreeCallbackTypes, o.Name)
	}
}

// constructorArgs passes the nested objects, the change trampolines and the
// model callbacks to <object>_new. prefix reaches o from the outermost object.
func constructorArgs(c *code, prefix string, o *schema.Object) {
	for _, p := range o.Properties {
		if p.Type.IsObject() {
			c.printf(", %sm_%s", prefix, p.Name)
			constructorArgs(c, prefix+"m_"+p.Name+"->", p.Type.Object)
		} else {
			c.printf(",\n        %s", changedTrampoline(o, p))
		}
	}

	data := newModelData(o.Name, o.ColumnCount())

	switch modelSuffix(o) {
	case "List":
		c.exec(cppListCallbacksTemplate, data)
	case "Tree":
		c.exec(cppTreeCallbacksTemplate, data)
	}
}

// initializeMembers hands nested objects the private pointers owned by o.
func initializeMembers(c *code, prefix string, o *schema.Object) {
	for _, p := range o.Properties {
		if !p.Type.IsObject() {
			continue
		}

		c.line("    %sm_%s->m_d = %s_%s_get(%sm_d);", prefix, p.Name, lc(o.Name), lc(p.Name), prefix)
		initializeMembers(c, prefix+"m_"+p.Name+"->", p.Type.Object)
	}
}

// connect queues fetchMore for every model reachable from d.
func connect(c *code, d string, o *schema.Object) {
	for _, p := range o.Properties {
		if p.Type.IsObject() {
			connect(c, d+"->m_"+p.Name, p.Type.Object)
		}
	}

	if o.IsModel() {
		c.line("    connect(%s, &%s::newDataReady, %s, [this](const QModelIndex& i) {", d, o.Name, d)
		c.line("        %s->fetchMore(i);", d)
		c.line("    }, Qt::QueuedConnection);")
	}
}

func writeCppObject(c *code, o *schema.Object) {
	name := lc(o.Name)

	c.line("%s::%s(bool /*owned*/, QObject *parent):", o.Name, o.Name)
	c.line("    %s(parent),", baseClass(o))
	initializeMembersZero(c, o)
	c.line("    m_d(nullptr),")
	c.line("    m_ownsPrivate(false)")
	c.line("{")

	if o.IsModel() {
		c.line("    initHeaderData();")
	}

	c.line("}")
	c.line("")
	c.line("%s::%s(QObject *parent):", o.Name, o.Name)
	c.line("    %s(parent),", baseClass(o))
	initializeMembersZero(c, o)
	c.printf("    m_d(%s_new(this", name)
	constructorArgs(c, "", o)
	c.line(")),")
	c.line("    m_ownsPrivate(true)")
	c.line("{")
	initializeMembers(c, "", o)
	connect(c, "this", o)

	if o.IsModel() {
		c.line("    initHeaderData();")
	}

	c.line("}")
	c.line("")
	c.line("%s::~%s() {", o.Name, o.Name)
	c.line("    if (m_ownsPrivate) {")
	c.line("        %s_free(m_d);", name)
	c.line("    }")
	c.line("}")

	if o.IsModel() {
		c.line("void %s::initHeaderData() {", o.Name)

		for _, h := range o.ColumnHeaders() {
			c.line("    m_headerData.insert(qMakePair(%d, Qt::DisplayRole), QVariant(\"%s\"));", h.Column, h.Title)
		}

		c.line("}")
	}

	writeCppObjectProperties(c, o)

	for _, f := range o.Functions {
		writeCppFunction(c, o, f)
	}
}

func initializeMembersZero(c *code, o *schema.Object) {
	for _, p := range o.Properties {
		if p.Type.IsObject() {
			c.line("    m_%s(new %s(false, this)),", p.Name, p.Type.Name())
		}
	}
}

func writeCppObjectProperties(c *code, o *schema.Object) {
	name := lc(o.Name)

	for _, p := range o.Properties {
		base := name + "_" + lc(p.Name)
		t := p.Type.Name()

		switch {
		case p.Type.IsObject():
			c.line("const %s* %s::%s() const", t, o.Name, p.Name)
			c.line("{")
			c.line("    return m_%s;", p.Name)
			c.line("}")
			c.line("%s* %s::%s()", t, o.Name, p.Name)
			c.line("{")
			c.line("    return m_%s;", p.Name)
			c.line("}")
		case p.Type.IsComplex():
			c.line("%s %s::%s() const", t, o.Name, p.Name)
			c.line("{")
			c.line("    %s v;", t)
			c.line("    %s_get(m_d, &v, %s);", base, copyCallback(p.Type.Simple))
			c.line("    return v;")
			c.line("}")
		case p.Optional:
			c.line("QVariant %s::%s() const", o.Name, p.Name)
			c.line("{")
			c.line("    QVariant v;")
			c.line("    auto r = %s_get(m_d);", base)
			c.line("    if (r.some) {")
			c.line("        v.setValue(r.value);")
			c.line("    }")
			c.line("    return v;")
			c.line("}")
		default:
			c.line("%s %s::%s() const", t, o.Name, p.Name)
			c.line("{")
			c.line("    return %s_get(m_d);", base)
			c.line("}")
		}

		if !p.Write || p.Type.IsObject() {
			continue
		}

		setT := p.Type.CppSetType()
		if p.Optional && !p.Type.IsComplex() {
			setT = "const QVariant&"
		}

		c.line("void %s::set%s(%s v) {", o.Name, common.UpperInitial(p.Name), setT)

		if p.Optional {
			if p.Type.IsComplex() {
				c.line("    if (v.isNull()) {")
			} else {
				c.line("    if (v.isNull() || !v.canConvert<%s>()) {", t)
			}

			c.line("        %s_set_none(m_d);", base)
			c.line("    } else {")
		}

		switch p.Type.Simple {
		case primitive.KindQString:
			c.line("    %s_set(m_d, reinterpret_cast<const ushort*>(v.data()), v.size());", base)
		case primitive.KindQByteArray:
			c.line("    %s_set(m_d, v.data(), v.size());", base)
		default:
			if p.Optional {
				c.line("        %s_set(m_d, v.value<%s>());", base, t)
			} else {
				c.line("    %s_set(m_d, v);", base)
			}
		}

		if p.Optional {
			c.line("    }")
		}

		c.line("}")
	}
}

func writeCppFunction(c *code, o *schema.Object, f *schema.Function) {
	base := lc(o.Name) + "_" + lc(f.Name)

	params := make([]string, 0, len(f.Arguments))
	args := make([]string, 0, len(f.Arguments))

	for _, a := range f.Arguments {
		params = append(params, a.Type.CppSetType()+" "+a.Name)

		switch a.Type {
		case primitive.KindQString:
			args = append(args, a.Name+".utf16()", a.Name+".size()")
		case primitive.KindQByteArray:
			args = append(args, a.Name+".data()", a.Name+".size()")
		default:
			args = append(args, a.Name)
		}
	}

	constness := " const"
	if f.Mut {
		constness = ""
	}

	argList := ""
	if len(args) > 0 {
		argList = ", " + strings.Join(args, ", ")
	}

	c.line("%s %s::%s(%s)%s", f.Return.Name(), o.Name, f.Name, strings.Join(params, ", "), constness)
	c.line("{")

	if f.Return.IsComplex() {
		c.line("    %s s;", f.Return.Name())
		c.line("    %s(m_d%s, &s, %s);", base, argList, copyCallback(f.Return))
		c.line("    return s;")
	} else {
		c.line("    return %s(m_d%s);", base, argList)
	}

	c.line("}")
}
