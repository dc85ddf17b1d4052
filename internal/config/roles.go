package config

import (
	"qt-binding-generator/internal/common"
)

// qtRoles maps binding file role names to Qt::ItemDataRole enumerators.
var qtRoles = map[string]string{
	"display":    "DisplayRole",
	"decoration": "DecorationRole",
	"edit":       "EditRole",
	"toolTip":    "ToolTipRole",
	"statustip":  "StatusTipRole",
	"whatsthis":  "WhatsThisRole",
}

// QtRole returns the Qt::ItemDataRole enumerator for a role name.
func QtRole(name string) (string, bool) {
	r, ok := qtRoles[name]
	return r, ok
}

// RoleNames returns the known role names in sorted order.
func RoleNames() []string {
	return common.SortedKeys(qtRoles)
}
