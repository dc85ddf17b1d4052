package schema

import (
	"errors"
	"path/filepath"
	"slices"

	"qt-binding-generator/internal/common"
	"qt-binding-generator/internal/config"
	"qt-binding-generator/internal/match"
	"qt-binding-generator/primitive"
)

const maxSuggestions = 3

// Options controls how a binding file is resolved.
type Options struct {
	// BaseDir is the directory cppFile and rust.dir are relative to.
	BaseDir string
	// Edition of the target crate.
	Edition RustEdition
	// OverwriteImplementation forces regeneration of the implementation
	// module even when the binding file does not ask for it.
	OverwriteImplementation bool
}

// Resolve validates f and builds the object graph.
//
// Validation errors are returned as one error; warnings are kept in
// Config.Warnings. Type resolution fails fast with a *TypeError.
func Resolve(f *config.File, opts Options) (*Config, error) {
	if f == nil {
		return nil, errors.New("binding file is nil")
	}

	diags := config.Validate(f)
	if diags.HasErrors() {
		return nil, diags.Error()
	}

	r := newResolver(f)

	names := common.SortedKeys(f.Objects)
	objects := make([]*Object, 0, len(names))

	for _, name := range names {
		o, err := r.object(name)
		if err != nil {
			return nil, err
		}

		objects = append(objects, o)
	}

	rust := f.Rust
	rust.Dir = filepath.Join(opts.BaseDir, f.Rust.Dir)

	return &Config{
		CppFile:                 filepath.Join(opts.BaseDir, f.CppFile),
		Rust:                    rust,
		RustEdition:             opts.Edition,
		OverwriteImplementation: f.OverwriteImplementation || opts.OverwriteImplementation,
		Objects:                 objects,
		Warnings:                diags.Warnings,
	}, nil
}

type resolver struct {
	file *config.File
	// resolved caches finished objects so every reference shares one *Object.
	resolved map[string]*Object
	// stack holds the objects under construction, outermost first.
	stack []string
}

func newResolver(f *config.File) *resolver {
	return &resolver{
		file:     f,
		resolved: make(map[string]*Object, len(f.Objects)),
	}
}

func (r *resolver) object(name string) (*Object, error) {
	if o, ok := r.resolved[name]; ok {
		return o, nil
	}

	decl := r.file.Objects[name]

	r.stack = append(r.stack, name)
	defer func() { r.stack = r.stack[:len(r.stack)-1] }()

	o := &Object{
		Name:           name,
		Kind:           decl.Kind,
		Properties:     make([]*Property, 0, len(decl.Properties)),
		ItemProperties: make([]*ItemProperty, 0, len(decl.ItemProperties)),
		Functions:      make([]*Function, 0, len(decl.Functions)),
	}

	for _, pname := range common.SortedKeys(decl.Properties) {
		p := decl.Properties[pname]

		t, err := r.propertyType(name, pname, p.Type)
		if err != nil {
			return nil, err
		}

		o.Properties = append(o.Properties, &Property{
			Name:           pname,
			Type:           t,
			Optional:       p.Optional,
			Write:          p.Write,
			RustByFunction: p.RustByFunction,
		})
	}

	for i, iname := range common.SortedKeys(decl.ItemProperties) {
		ip := decl.ItemProperties[iname]
		o.ItemProperties = append(o.ItemProperties, &ItemProperty{
			Name:        iname,
			Index:       i,
			Type:        mustPrimitive(ip.Type),
			Optional:    ip.Optional,
			Write:       ip.Write,
			Roles:       ip.Roles,
			RustByValue: ip.RustByValue,
		})
	}

	for _, fname := range common.SortedKeys(decl.Functions) {
		fn := decl.Functions[fname]

		args := make([]Argument, 0, len(fn.Arguments))
		for _, a := range fn.Arguments {
			args = append(args, Argument{Name: a.Name, Type: mustPrimitive(a.Type)})
		}

		o.Functions = append(o.Functions, &Function{
			Name:      fname,
			Return:    mustPrimitive(fn.Return),
			Mut:       fn.Mut,
			Arguments: args,
		})
	}

	r.resolved[name] = o

	return o, nil
}

// propertyType resolves a property type: primitive keywords first, then
// declared objects.
func (r *resolver) propertyType(object, property, typ string) (Type, error) {
	if k, ok := primitive.Parse(typ); ok {
		return SimpleType(k), nil
	}

	if _, declared := r.file.Objects[typ]; !declared {
		return Type{}, &TypeError{
			Object:      object,
			Property:    property,
			Type:        typ,
			Suggestions: match.Suggest(typ, r.typeNames(), maxSuggestions),
			Err:         ErrUnknownType,
		}
	}

	if i := slices.Index(r.stack, typ); i >= 0 {
		path := append(slices.Clone(r.stack[i:]), typ)

		return Type{}, &TypeError{
			Object:   object,
			Property: property,
			Type:     typ,
			Path:     path,
			Err:      ErrCyclicType,
		}
	}

	o, err := r.object(typ)
	if err != nil {
		return Type{}, err
	}

	return ObjectType(o), nil
}

// typeNames lists everything a property type may name.
func (r *resolver) typeNames() []string {
	return append(primitive.Keywords(), common.SortedKeys(r.file.Objects)...)
}

// mustPrimitive parses a keyword config.Validate has already checked.
func mustPrimitive(keyword string) primitive.KindEnum {
	k, ok := primitive.Parse(keyword)
	if !ok {
		panic("schema: unchecked primitive type " + keyword)
	}

	return k
}
