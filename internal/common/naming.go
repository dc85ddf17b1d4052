package common

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// UnknownStr is the printable name of an unrecognized enum value.
const UnknownStr = "unknown"

// SnakeCase lowercases name and puts an underscore before every upper case
// letter except the first one: "fileSystemTree" -> "file_system_tree".
func SnakeCase(name string) string {
	if name == "" {
		return ""
	}

	var b strings.Builder

	b.Grow(len(name) + 4)

	for i, r := range name {
		if i > 0 && 'A' <= r && r <= 'Z' {
			b.WriteByte('_')
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// UpperInitial returns name with its first letter upper cased.
func UpperInitial(name string) string {
	return mapInitial(name, unicode.ToUpper)
}

// LowerInitial returns name with its first letter lower cased.
func LowerInitial(name string) string {
	return mapInitial(name, unicode.ToLower)
}

func mapInitial(name string, f func(rune) rune) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return name
	}

	return string(f(r)) + name[size:]
}

// IsIdentifier reports whether name can be used verbatim as a C++ and Rust
// identifier.
func IsIdentifier(name string) bool {
	if name == "" {
		return false
	}

	for i, r := range name {
		switch {
		case r == '_', 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		case i > 0 && '0' <= r && r <= '9':
		default:
			return false
		}
	}

	return true
}
