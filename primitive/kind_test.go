package primitive_test

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qt-binding-generator/primitive"
)

func Example() {
	for _, kw := range []string{"QString", "quint64", "bool", "Frobnicator"} {
		k, ok := primitive.Parse(kw)
		fmt.Println(k, ok)
	}
	// Output:
	// KindQString true
	// KindQuint64 true
	// KindBool true
	// KindEnum(0) false
}

func TestRepr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     primitive.KindEnum
		name     string
		cppSet   string
		cSet     string
		rust     string
		rustInit string
		complex  bool
	}{
		{primitive.KindQString, "QString", "const QString&", "qstring_t", "String", "String::new()", true},
		{primitive.KindQByteArray, "QByteArray", "const QByteArray&", "qbytearray_t", "Vec<u8>", "Vec::new()", true},
		{primitive.KindBool, "bool", "bool", "bool", "bool", "false", false},
		{primitive.KindFloat, "float", "float", "float", "f32", "0.0", false},
		{primitive.KindDouble, "double", "double", "double", "f64", "0.0", false},
		{primitive.KindVoid, "void", "void", "void", "()", "()", false},
		{primitive.KindQint8, "qint8", "qint8", "qint8", "i8", "0", false},
		{primitive.KindQint64, "qint64", "qint64", "qint64", "i64", "0", false},
		{primitive.KindQuint16, "quint16", "quint16", "quint16", "u16", "0", false},
		{primitive.KindQuint32, "quint32", "quint32", "quint32", "u32", "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.name, tt.kind.Name(), spew.Sdump(tt.kind.Repr()))
			assert.Equal(t, tt.cppSet, tt.kind.CppSetType())
			assert.Equal(t, tt.cSet, tt.kind.CSetType())
			assert.Equal(t, tt.rust, tt.kind.RustType())
			assert.Equal(t, tt.rustInit, tt.kind.RustTypeInit())
			assert.Equal(t, tt.complex, tt.kind.IsComplex())
		})
	}
}

func TestKeywordsRoundTrip(t *testing.T) {
	t.Parallel()

	kws := primitive.Keywords()
	require.Len(t, kws, primitive.KindTotal-1)

	for _, kw := range kws {
		k, ok := primitive.Parse(kw)
		require.True(t, ok, kw)
		assert.True(t, k.IsValid())
		assert.Equal(t, kw, k.Name())
	}

	assert.IsIncreasing(t, kws)
}

func TestBits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 8, primitive.KindQuint8.Bits())
	assert.Equal(t, 32, primitive.KindFloat.Bits())
	assert.Equal(t, 64, primitive.KindQint64.Bits())
	assert.Panics(t, func() { primitive.KindQString.Bits() })
}

func TestReprInvalidKind(t *testing.T) {
	t.Parallel()

	assert.False(t, primitive.KindEnum(0).IsValid())
	assert.Panics(t, func() { primitive.KindEnum(0).Repr() })
	assert.Panics(t, func() { primitive.KindEnum(primitive.KindTotal).Name() })
}
