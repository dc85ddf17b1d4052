package schema

import (
	"qt-binding-generator/internal/common"
	"qt-binding-generator/internal/config"
)

const (
	roleDisplay = "display"
	roleEdit    = "edit"
)

// IsModel reports whether o is a List or a Tree.
func (o *Object) IsModel() bool {
	return o.Kind.IsModel()
}

// ColumnCount is the number of model columns: the longest per-column role
// list among the item properties, and at least 1.
func (o *Object) ColumnCount() int {
	count := 1
	for _, ip := range o.ItemProperties {
		count = max(count, len(ip.Roles))
	}

	return count
}

// ContainsObject reports whether any property of o refers to another object.
func (o *Object) ContainsObject() bool {
	for _, p := range o.Properties {
		if p.Type.IsObject() {
			return true
		}
	}

	return false
}

// ModelIsWritable reports whether any item property is writable.
func (o *Object) ModelIsWritable() bool {
	for _, ip := range o.ItemProperties {
		if ip.Write {
			return true
		}
	}

	return false
}

// IsColumnWrite reports whether views may edit column col: it shows a
// writable item property, either in column 0 or through roles listed for col.
// setData dispatch does not depend on it; see SetDataRoles.
func (o *Object) IsColumnWrite(col int) bool {
	for _, ip := range o.ItemProperties {
		if ip.Write && (col == 0 || len(ip.RolesAt(col)) > 0) {
			return true
		}
	}

	return false
}

// RoleDispatch is one branch of the data/setData dispatch of a column.
type RoleDispatch struct {
	Property *ItemProperty
	// Roles are Qt::ItemDataRole enumerators, e.g. "DisplayRole". The
	// property also answers to Qt::UserRole + Property.Index.
	Roles []string
}

// DataRoles returns the dispatch table of column col for data().
//
// Every item property participates in every column, so Qt::UserRole + index
// answers regardless of the roles listed; Roles only holds the roles listed
// for col. A role claimed by an earlier property is not repeated. A column
// showing a property as display that has no explicit edit role also serves
// that property for EditRole.
func (o *Object) DataRoles(col int) []RoleDispatch {
	explicitEdit := false
	for _, ip := range o.ItemProperties {
		explicitEdit = explicitEdit || ip.HasRole(col, roleEdit)
	}

	claimed := map[string]bool{}
	res := make([]RoleDispatch, 0, len(o.ItemProperties))

	for _, ip := range o.ItemProperties {
		names := ip.RolesAt(col)
		if !explicitEdit && ip.HasRole(col, roleDisplay) {
			names = append(append([]string(nil), names...), roleEdit)
		}

		roles := make([]string, 0, len(names))
		for _, name := range names {
			role, ok := config.QtRole(name)
			if !ok || claimed[role] {
				continue
			}

			claimed[role] = true
			roles = append(roles, role)
		}

		res = append(res, RoleDispatch{Property: ip, Roles: roles})
	}

	return res
}

// SetDataRoles returns the dispatch table of column col for setData(): the
// writable entries of DataRoles. It is nil for a read-only model.
func (o *Object) SetDataRoles(col int) []RoleDispatch {
	var res []RoleDispatch

	for _, d := range o.DataRoles(col) {
		if d.Property.Write {
			res = append(res, d)
		}
	}

	return res
}

// ColumnHeader is the default horizontal header of a column.
type ColumnHeader struct {
	Column int
	Title  string
}

// ColumnHeaders names each column after the item properties displayed in it.
func (o *Object) ColumnHeaders() []ColumnHeader {
	var res []ColumnHeader

	for col := range o.ColumnCount() {
		for _, ip := range o.ItemProperties {
			if ip.HasRole(col, roleDisplay) {
				res = append(res, ColumnHeader{Column: col, Title: ip.Name})
			}
		}
	}

	return res
}

// Types returns the sorted names of every type used by any member.
func (c *Config) Types() []string {
	set := map[string]struct{}{}

	for _, o := range c.Objects {
		for _, p := range o.Properties {
			set[p.Type.Name()] = struct{}{}
		}

		for _, ip := range o.ItemProperties {
			set[ip.Type.Name()] = struct{}{}
		}

		for _, f := range o.Functions {
			set[f.Return.Name()] = struct{}{}

			for _, a := range f.Arguments {
				set[a.Type.Name()] = struct{}{}
			}
		}
	}

	return common.SortedKeys(set)
}

// HasType reports whether name is among Types.
func (c *Config) HasType(name string) bool {
	for _, t := range c.Types() {
		if t == name {
			return true
		}
	}

	return false
}

// OptionalTypes returns the sorted names of the types that need an option
// wrapper. Models always need one for quintptr row ids.
func (c *Config) OptionalTypes() []string {
	set := map[string]struct{}{}

	for _, o := range c.Objects {
		for _, p := range o.Properties {
			if p.Optional {
				set[p.Type.Name()] = struct{}{}
			}
		}

		for _, ip := range o.ItemProperties {
			if ip.Optional {
				set[ip.Type.Name()] = struct{}{}
			}
		}

		if o.IsModel() {
			set["quintptr"] = struct{}{}
		}
	}

	return common.SortedKeys(set)
}

// HasListOrTree reports whether any object is a model.
func (c *Config) HasListOrTree() bool {
	for _, o := range c.Objects {
		if o.IsModel() {
			return true
		}
	}

	return false
}
