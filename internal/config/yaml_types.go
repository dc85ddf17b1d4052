package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ObjectKind selects the Qt base class and protocol generated for an object.
type ObjectKind int

const (
	// KindObject is a record: a QObject with properties and functions.
	KindObject ObjectKind = iota
	// KindList is a flat QAbstractItemModel.
	KindList
	// KindTree is a hierarchical QAbstractItemModel.
	KindTree
)

var objectKindNames = [...]string{
	KindObject: "Object",
	KindList:   "List",
	KindTree:   "Tree",
}

// String returns the keyword of the kind as used in binding files.
func (k ObjectKind) String() string {
	if k < 0 || int(k) >= len(objectKindNames) {
		return fmt.Sprintf("ObjectKind(%d)", int(k))
	}

	return objectKindNames[k]
}

// IsModel reports whether objects of this kind implement the item model protocol.
func (k ObjectKind) IsModel() bool {
	return k == KindList || k == KindTree
}

// ParseObjectKind parses "Object", "List" or "Tree".
func ParseObjectKind(s string) (ObjectKind, error) {
	for k, name := range objectKindNames {
		if name == s {
			return ObjectKind(k), nil
		}
	}

	return 0, fmt.Errorf("unknown object type %q, expected Object, List or Tree", s)
}

// UnmarshalYAML implements custom YAML unmarshaling for ObjectKind.
func (k *ObjectKind) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: object type must be a string", node.Line)
	}

	parsed, err := ParseObjectKind(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*k = parsed

	return nil
}
