package schema

// RustEdition is the edition of the crate receiving the generated modules.
type RustEdition int

const (
	Rust2015 RustEdition = iota
	Rust2018
	Rust2021
	RustUnknown
)

// ParseRustEdition maps a Cargo.toml package.edition value to a RustEdition.
// An empty value means the edition key is absent, which Cargo reads as 2015.
func ParseRustEdition(s string) RustEdition {
	switch s {
	case "", "2015":
		return Rust2015
	case "2018":
		return Rust2018
	case "2021":
		return Rust2021
	default:
		return RustUnknown
	}
}

func (e RustEdition) String() string {
	switch e {
	case Rust2015:
		return "2015"
	case Rust2018:
		return "2018"
	case Rust2021:
		return "2021"
	default:
		return "unknown"
	}
}

// ModulePrefix is prepended to paths of sibling modules in use declarations.
func (e RustEdition) ModulePrefix() string {
	if e == Rust2018 || e == Rust2021 {
		return "crate::"
	}

	return ""
}
