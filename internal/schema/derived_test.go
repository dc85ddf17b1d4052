package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dispatch flattens a dispatch table to "property:Role,Role" strings.
func dispatch(ds []RoleDispatch) []string {
	res := make([]string, 0, len(ds))
	for _, d := range ds {
		s := d.Property.Name + ":"
		for i, r := range d.Roles {
			if i > 0 {
				s += ","
			}

			s += r
		}

		res = append(res, s)
	}

	return res
}

func TestColumnCount(t *testing.T) {
	tests := []struct {
		name  string
		roles [][][]string
		want  int
	}{
		{"no item properties", nil, 1},
		{"no roles", [][][]string{nil, nil}, 1},
		{"single column", [][][]string{{{"display"}}}, 1},
		{"third column", [][][]string{{{"display"}}, {{}, {}, {"display"}}}, 3},
		{"trailing empty list counts", [][][]string{{{"display"}, {}}}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Object{Kind: 1}
			for i, r := range tt.roles {
				o.ItemProperties = append(o.ItemProperties, &ItemProperty{Name: string(rune('a' + i)), Index: i, Roles: r})
			}

			assert.Equal(t, tt.want, o.ColumnCount())
			assert.GreaterOrEqual(t, o.ColumnCount(), 1)
		})
	}
}

func TestDataRoles_SingleColumnTree(t *testing.T) {
	f := parse(t, `{`+header+`
"objects": {
    "Names": {
        "type": "Tree",
        "itemProperties": { "name": { "type": "QString", "write": true, "roles": [["display"]] } }
    }
}}`)

	cfg, err := Resolve(f, Options{})
	require.NoError(t, err)

	o := cfg.object("Names")
	assert.Equal(t, 1, o.ColumnCount())
	assert.Equal(t, []string{"name:DisplayRole,EditRole"}, dispatch(o.DataRoles(0)))
	assert.Equal(t, []string{"name:DisplayRole,EditRole"}, dispatch(o.SetDataRoles(0)))
	assert.True(t, o.IsColumnWrite(0))
	assert.Equal(t, []ColumnHeader{{Column: 0, Title: "name"}}, o.ColumnHeaders())
}

func TestDataRoles_List(t *testing.T) {
	f := parse(t, `{`+header+`
"objects": {
    "Todos": {
        "type": "List",
        "itemProperties": {
            "description": { "type": "QString", "write": true, "roles": [["display", "edit"]] },
            "completed": { "type": "bool", "write": true }
        }
    }
}}`)

	cfg, err := Resolve(f, Options{})
	require.NoError(t, err)

	o := cfg.object("Todos")
	assert.Equal(t, 1, o.ColumnCount())
	assert.Equal(t, 0, o.ItemProperties[0].Index)
	assert.Equal(t, "completed", o.ItemProperties[0].Name)
	assert.Equal(t, 1, o.ItemProperties[1].Index)

	assert.Equal(t, []string{"completed:", "description:DisplayRole,EditRole"}, dispatch(o.DataRoles(0)))
	assert.True(t, o.ModelIsWritable())
}

func TestDataRoles_MultiColumn(t *testing.T) {
	cfg, err := Load(t.Context(), "testdata/demo/bindings.json", Options{})
	require.NoError(t, err)

	o := cfg.object("FileSystemTree")
	require.NotNil(t, o)
	assert.Equal(t, 3, o.ColumnCount())

	want := [][]string{
		{"fileName:DisplayRole,EditRole", "fileSize:", "fileType:"},
		{"fileName:", "fileSize:DisplayRole,EditRole", "fileType:"},
		{"fileName:", "fileSize:", "fileType:DisplayRole,EditRole"},
	}
	for col := range o.ColumnCount() {
		assert.Equal(t, want[col], dispatch(o.DataRoles(col)), "column %d", col)
	}

	assert.True(t, o.IsColumnWrite(0))
	assert.False(t, o.IsColumnWrite(1))
	assert.False(t, o.IsColumnWrite(2))
	assert.Equal(t, []string{"fileName:DisplayRole,EditRole"}, dispatch(o.SetDataRoles(0)))
	assert.Equal(t, []string{"fileName:"}, dispatch(o.SetDataRoles(1)))
	assert.Equal(t, []string{"fileName:"}, dispatch(o.SetDataRoles(2)))

	assert.Equal(t, []ColumnHeader{
		{Column: 0, Title: "fileName"},
		{Column: 1, Title: "fileSize"},
		{Column: 2, Title: "fileType"},
	}, o.ColumnHeaders())
}

func TestDataRoles_FirstClaimWins(t *testing.T) {
	o := &Object{Kind: 1, ItemProperties: []*ItemProperty{
		{Name: "a", Index: 0, Roles: [][]string{{"display", "toolTip"}}},
		{Name: "b", Index: 1, Write: true, Roles: [][]string{{"display", "decoration"}}},
	}}

	assert.Equal(t, []string{"a:DisplayRole,ToolTipRole,EditRole", "b:DecorationRole"}, dispatch(o.DataRoles(0)))
	assert.Equal(t, []string{"b:DecorationRole"}, dispatch(o.SetDataRoles(0)))
}

func TestDataRoles_UserRoleInEveryColumn(t *testing.T) {
	o := &Object{Kind: 2, ItemProperties: []*ItemProperty{
		{Name: "fileName", Index: 0, Write: true, Roles: [][]string{{"display"}}},
		{Name: "fileSize", Index: 1, Roles: [][]string{{}, {"display"}}},
	}}

	for col := range o.ColumnCount() {
		ds := o.DataRoles(col)
		require.Len(t, ds, 2, "column %d", col)

		for i, d := range ds {
			assert.Equal(t, i, d.Property.Index, "column %d", col)
		}

		set := o.SetDataRoles(col)
		require.Len(t, set, 1, "column %d", col)
		assert.Equal(t, "fileName", set[0].Property.Name)
	}

	assert.Equal(t, []string{"fileName:", "fileSize:DisplayRole,EditRole"}, dispatch(o.DataRoles(1)))
	assert.Nil(t, (&Object{Kind: 2, ItemProperties: []*ItemProperty{{Name: "a", Roles: [][]string{{"display"}}}}}).SetDataRoles(0))
}

func TestConfigQueries(t *testing.T) {
	cfg, err := Load(t.Context(), "testdata/demo/bindings.json", Options{})
	require.NoError(t, err)

	if diff := cmp.Diff([]string{"Fibonacci", "FileSystemTree", "QString", "qint32", "quint32", "quint64"}, cfg.Types()); diff != "" {
		t.Errorf("Types() mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"QString", "quint64", "quintptr"}, cfg.OptionalTypes()); diff != "" {
		t.Errorf("OptionalTypes() mismatch (-want +got):\n%s", diff)
	}

	assert.True(t, cfg.HasType("QString"))
	assert.False(t, cfg.HasType("QByteArray"))
	assert.True(t, cfg.HasListOrTree())
	assert.False(t, (&Config{Objects: []*Object{{Name: "A"}}}).HasListOrTree())
}
