package primitive

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum is one of the primitive types a binding schema can name directly.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindQString
	KindQByteArray
	KindBool
	KindFloat
	KindDouble
	KindVoid
	KindQint8
	KindQint16
	KindQint32
	KindQint64
	KindQuint8
	KindQuint16
	KindQuint32
	KindQuint64

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

// IsComplex reports whether values of the kind are variable-length and heap
// backed. Complex values cross the C ABI as pointer and length.
func (k KindEnum) IsComplex() bool {
	switch k {
	default:
		return false
	case KindQString, KindQByteArray:
		return true
	}
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindQint8, KindQint16, KindQint32, KindQint64:
		return true
	}
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only numeric kinds has meaningful bits amount, but requested for: " + k.String())
	case KindQint8, KindQuint8:
		return 8
	case KindQint16, KindQuint16:
		return 16
	case KindQint32, KindQuint32, KindFloat:
		return 32
	case KindQint64, KindQuint64, KindDouble:
		return 64
	}
}
