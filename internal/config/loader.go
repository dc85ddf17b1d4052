package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a binding file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read binding file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse decodes a binding file. Unknown fields and duplicate keys are errors.
func Parse(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("binding file is empty")
		}

		return nil, fmt.Errorf("failed to parse binding file: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults replaces absent collections with empty ones so that
// later stages never branch on nil.
func applyDefaults(f *File) {
	if f.Objects == nil {
		f.Objects = map[string]Object{}
	}

	for name, o := range f.Objects {
		if o.Properties == nil {
			o.Properties = map[string]Property{}
		}

		if o.ItemProperties == nil {
			o.ItemProperties = map[string]ItemProperty{}
		}

		if o.Functions == nil {
			o.Functions = map[string]Function{}
		}

		for fname, fn := range o.Functions {
			if fn.Return == "" {
				fn.Return = "void"
				o.Functions[fname] = fn
			}
		}

		f.Objects[name] = o
	}
}
