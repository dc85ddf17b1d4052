package primitive

import (
	"sort"
	"strconv"
)

// Repr holds the spellings of a kind on both sides of the binding.
type Repr struct {
	// Name is the Qt type name and the keyword used in binding files.
	Name string
	// CppSet is the parameter type of a Qt setter.
	CppSet string
	// CSet is the parameter type used in C declarations.
	CSet string
	// Rust is the Rust type and RustInit its default value expression.
	Rust     string
	RustInit string
}

var (
	reprs    map[KindEnum]Repr
	keywords map[string]KindEnum
)

func init() {
	reprs = map[KindEnum]Repr{
		KindQString:    {Name: "QString", CppSet: "const QString&", CSet: "qstring_t", Rust: "String", RustInit: "String::new()"},
		KindQByteArray: {Name: "QByteArray", CppSet: "const QByteArray&", CSet: "qbytearray_t", Rust: "Vec<u8>", RustInit: "Vec::new()"},
		KindBool:       {Name: "bool", Rust: "bool", RustInit: "false"},
		KindFloat:      {Name: "float", Rust: "f32", RustInit: "0.0"},
		KindDouble:     {Name: "double", Rust: "f64", RustInit: "0.0"},
		KindVoid:       {Name: "void", Rust: "()", RustInit: "()"},
	}

	// fixed size integers share one naming scheme on both sides
	for k := KindQint8; k <= KindQuint64; k++ {
		name, rust := "qint", "i"
		if !k.IsSigned() {
			name, rust = "quint", "u"
		}

		bits := strconv.Itoa(k.Bits())
		reprs[k] = Repr{Name: name + bits, Rust: rust + bits, RustInit: "0"}
	}

	keywords = make(map[string]KindEnum, len(reprs))

	for k, r := range reprs {
		if r.CppSet == "" {
			r.CppSet = r.Name
		}

		if r.CSet == "" {
			r.CSet = r.Name
		}

		reprs[k] = r
		keywords[r.Name] = k
	}
}

// Parse returns the kind spelled by keyword, as written in binding files.
func Parse(keyword string) (KindEnum, bool) {
	k, ok := keywords[keyword]
	return k, ok
}

// Keywords returns every primitive keyword in sorted order.
func Keywords() []string {
	res := make([]string, 0, len(keywords))
	for kw := range keywords {
		res = append(res, kw)
	}

	sort.Strings(res)

	return res
}

// Repr returns the spellings of k. It panics for an invalid kind.
func (k KindEnum) Repr() Repr {
	if !k.IsValid() {
		panic("no representation for " + k.String())
	}

	return reprs[k]
}

func (k KindEnum) Name() string         { return k.Repr().Name }
func (k KindEnum) CppSetType() string   { return k.Repr().CppSet }
func (k KindEnum) CSetType() string     { return k.Repr().CSet }
func (k KindEnum) RustType() string     { return k.Repr().Rust }
func (k KindEnum) RustTypeInit() string { return k.Repr().RustInit }
