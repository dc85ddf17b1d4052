// Package config provides the binding file schema, its strict loader, the
// structural validator and the Cargo manifest lookup.
//
// A binding file is a JSON object literal (YAML is accepted too, JSON being a
// subset of it) describing the objects to expose:
//
//	{
//	    "cppFile": "src/Bindings.cpp",
//	    "rust": {
//	        "dir": "rust",
//	        "interfaceModule": "interface",
//	        "implementationModule": "implementation"
//	    },
//	    "objects": {
//	        "Person": {
//	            "type": "Object",
//	            "properties": {
//	                "userName": { "type": "QString", "write": true },
//	                "age": { "type": "quint64", "optional": true, "write": true }
//	            },
//	            "functions": {
//	                "greet": {
//	                    "return": "QString",
//	                    "mut": false,
//	                    "arguments": [{ "name": "greeting", "type": "QString" }]
//	                }
//	            }
//	        },
//	        "Todos": {
//	            "type": "List",
//	            "itemProperties": {
//	                "description": { "type": "QString", "write": true, "roles": [["display", "edit"]] },
//	                "completed": { "type": "bool", "write": true }
//	            }
//	        }
//	    }
//	}
//
// # Object kinds
//
//   - Object: a plain QObject with properties and functions
//   - List: a flat QAbstractItemModel; rows carry item properties
//   - Tree: a hierarchical QAbstractItemModel; nodes carry item properties
//
// # Roles
//
// The roles of an item property are given per column. Column i of the model
// shows the item property for every role listed in roles[i]. Known roles are
// display, decoration, edit, toolTip, statustip and whatsthis.
//
// Unknown fields and duplicate keys are rejected when loading. Property types
// naming other objects are checked later, when the schema is resolved.
package config
