package config

import (
	"fmt"

	"qt-binding-generator/internal/common"
	"qt-binding-generator/internal/diagnostic"
	"qt-binding-generator/internal/match"
	"qt-binding-generator/primitive"
)

const maxSuggestions = 3

// Validate checks a binding file for structural problems. Types naming other
// objects are not looked up here; the schema resolver reports those.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError(diagnostic.CodeMissingField, "binding file is nil", "", "")
		return res
	}

	if f.CppFile == "" {
		res.AddError(diagnostic.CodeMissingField, "cppFile is required", "", "cppFile")
	}

	validateRust(res, &f.Rust)

	if len(f.Objects) == 0 {
		res.AddWarning(diagnostic.CodeEmptyModel, "no objects are declared", "", "objects")
	}

	objects := make(map[string]string, len(f.Objects))
	for _, name := range common.SortedKeys(f.Objects) {
		o := f.Objects[name]
		if !common.IsIdentifier(name) {
			res.AddError(diagnostic.CodeInvalidName, fmt.Sprintf("%q is not a valid object name", name), name, "")
		}

		claim(res, objects, name, name, "")
		validateObject(res, name, &o)
	}

	return res
}

func validateRust(res *diagnostic.Diagnostics, r *Rust) {
	if r.Dir == "" {
		res.AddError(diagnostic.CodeMissingField, "rust.dir is required", "", "rust.dir")
	}

	for _, m := range []struct{ field, value string }{
		{"rust.interfaceModule", r.InterfaceModule},
		{"rust.implementationModule", r.ImplementationModule},
	} {
		switch {
		case m.value == "":
			res.AddError(diagnostic.CodeMissingField, m.field+" is required", "", m.field)
		case !common.IsIdentifier(m.value):
			res.AddError(diagnostic.CodeInvalidName, fmt.Sprintf("%q is not a valid module name", m.value), "", m.field)
		}
	}

	if r.InterfaceModule != "" && r.InterfaceModule == r.ImplementationModule {
		res.AddError(diagnostic.CodeDuplicateName,
			"interface and implementation modules must differ", "", "rust.implementationModule")
	}
}

func validateObject(res *diagnostic.Diagnostics, name string, o *Object) {
	switch {
	case o.Kind == KindObject && len(o.ItemProperties) > 0:
		res.AddError(diagnostic.CodeItemsOnRecord,
			"itemProperties are only allowed on List and Tree objects", name, "itemProperties")
	case o.Kind.IsModel() && len(o.ItemProperties) == 0:
		res.AddWarning(diagnostic.CodeEmptyModel,
			fmt.Sprintf("%s has no item properties", o.Kind), name, "")
	}

	// properties, item properties and functions share one symbol namespace
	members := map[string]string{}

	for _, pname := range common.SortedKeys(o.Properties) {
		p := o.Properties[pname]
		checkName(res, name, pname, "property")
		claim(res, members, pname, name, pname)

		if p.Type == "" {
			res.AddError(diagnostic.CodeMissingField, "property type is required", name, pname)
		} else if k, ok := primitive.Parse(p.Type); ok && k == primitive.KindVoid {
			res.AddError(diagnostic.CodeVoidNotAllowed, "a property cannot be void", name, pname)
		}
	}

	for _, iname := range common.SortedKeys(o.ItemProperties) {
		ip := o.ItemProperties[iname]
		checkName(res, name, iname, "item property")
		claim(res, members, iname, name, iname)
		checkPrimitive(res, name, iname, ip.Type, "item property")

		for _, column := range ip.Roles {
			for _, role := range column {
				if _, ok := QtRole(role); !ok {
					res.AddError(diagnostic.CodeUnknownRole, fmt.Sprintf("unknown role %q", role), name, iname,
						match.Suggest(role, RoleNames(), maxSuggestions)...)
				}
			}
		}
	}

	for _, fname := range common.SortedKeys(o.Functions) {
		fn := o.Functions[fname]
		checkName(res, name, fname, "function")
		claim(res, members, fname, name, fname)

		if _, ok := primitive.Parse(fn.Return); !ok {
			res.AddError(diagnostic.CodeNotPrimitive, fmt.Sprintf("return type %q is not a primitive type", fn.Return),
				name, fname, match.Suggest(fn.Return, primitive.Keywords(), maxSuggestions)...)
		}

		validateArguments(res, name, fname, fn.Arguments)
	}
}

// reservedArguments are the parameters and locals of the generated function
// thunks.
var reservedArguments = map[string]struct{}{
	"ptr": {}, "o": {}, "d": {}, "set": {}, "r": {}, "s": {},
}

// validateArguments rejects argument names that clash with each other or with
// the thunk's own identifiers. Complex arguments occupy <name>_str and
// <name>_len as well.
func validateArguments(res *diagnostic.Diagnostics, object, fname string, args []Argument) {
	seen := make(map[string]struct{}, len(args))
	for _, arg := range args {
		member := fname + "." + arg.Name
		checkName(res, object, member, "argument")
		checkPrimitive(res, object, member, arg.Type, "argument")

		if _, ok := reservedArguments[arg.Name]; ok {
			res.AddError(diagnostic.CodeReservedName, fmt.Sprintf("argument name %q is reserved", arg.Name), object, member)
			continue
		}

		idents := []string{arg.Name}
		if k, ok := primitive.Parse(arg.Type); ok && k.IsComplex() {
			idents = append(idents, arg.Name+"_str", arg.Name+"_len")
		}

		for _, id := range idents {
			if _, dup := seen[id]; dup {
				res.AddError(diagnostic.CodeDuplicateName, fmt.Sprintf("duplicate argument %q", id), object, member)
				break
			}
		}

		for _, id := range idents {
			seen[id] = struct{}{}
		}
	}
}

// claim records the generated symbol of name in seen and reports a clash with
// a different name mapping to the same symbol.
func claim(res *diagnostic.Diagnostics, seen map[string]string, name, object, member string) {
	symbol := common.SnakeCase(name)
	if prev, ok := seen[symbol]; ok {
		msg := fmt.Sprintf("%q and %q both generate the symbol %q", prev, name, symbol)
		if prev == name {
			msg = fmt.Sprintf("%q names more than one member", name)
		}

		res.AddError(diagnostic.CodeDuplicateName, msg, object, member)

		return
	}

	seen[symbol] = name
}

// checkName validates the last segment of member as an identifier.
func checkName(res *diagnostic.Diagnostics, object, member, what string) {
	name := member
	for i := len(member) - 1; i >= 0; i-- {
		if member[i] == '.' {
			name = member[i+1:]
			break
		}
	}

	if !common.IsIdentifier(name) {
		res.AddError(diagnostic.CodeInvalidName, fmt.Sprintf("%q is not a valid %s name", name, what), object, member)
	}
}

// checkPrimitive requires typ to name a non-void primitive.
func checkPrimitive(res *diagnostic.Diagnostics, object, member, typ, what string) {
	k, ok := primitive.Parse(typ)
	switch {
	case typ == "":
		res.AddError(diagnostic.CodeMissingField, what+" type is required", object, member)
	case !ok:
		res.AddError(diagnostic.CodeNotPrimitive, fmt.Sprintf("%s type %q is not a primitive type", what, typ),
			object, member, match.Suggest(typ, primitive.Keywords(), maxSuggestions)...)
	case k == primitive.KindVoid:
		res.AddError(diagnostic.CodeVoidNotAllowed, fmt.Sprintf("an %s cannot be void", what), object, member)
	}
}
