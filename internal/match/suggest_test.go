package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	assert.Equal(t, "filename", NormalizeIdent("file_name"))
	assert.Equal(t, "filename", NormalizeIdent("FileName"))
	assert.Equal(t, "filename", NormalizeIdent("file-name"))
	assert.Equal(t, "", NormalizeIdent(""))
}

func TestSuggest(t *testing.T) {
	candidates := []string{"QString", "QByteArray", "quint64", "qint64", "Person", "Directory"}

	tests := []struct {
		name string
		want []string
	}{
		{"Qstring", []string{"QString"}},
		{"quint46", []string{"quint64", "qint64"}},
		{"Persons", []string{"Person"}},
		{"Frobnicator", []string{}},
		{"QString", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Suggest(tt.name, candidates, 2))
		})
	}
}

func TestSuggest_Limit(t *testing.T) {
	got := Suggest("qint", []string{"qint8", "qint16", "qint32", "qint64"}, 3)
	assert.Equal(t, []string{"qint8", "qint16", "qint32"}, got)
}
