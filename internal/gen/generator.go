package gen

import (
	"fmt"

	"qt-binding-generator/internal/schema"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// OverwriteImplementation regenerates the Rust implementation module even
	// when it already exists. The binding file can request the same.
	OverwriteImplementation bool
}

// Emitter renders one artifact of a binding.
type Emitter interface {
	// Language names the artifact language, e.g. "c++" or "rust".
	Language() string
	// Path is the destination of the artifact.
	Path(cfg *schema.Config) string
	Emit(cfg *schema.Config) ([]byte, error)
}

type emitterFunc struct {
	lang string
	path func(*schema.Config) string
	emit func(*schema.Config) ([]byte, error)
}

func (e emitterFunc) Language() string { return e.lang }

func (e emitterFunc) Path(cfg *schema.Config) string { return e.path(cfg) }

func (e emitterFunc) Emit(cfg *schema.Config) ([]byte, error) { return e.emit(cfg) }

var (
	// HeaderEmitter renders the Qt class declarations.
	HeaderEmitter Emitter = emitterFunc{lang: "c++", path: HeaderPath, emit: CppHeader}
	// SourceEmitter renders the Qt class definitions.
	SourceEmitter Emitter = emitterFunc{lang: "c++", path: func(cfg *schema.Config) string { return cfg.CppFile }, emit: CppSource}
	// InterfaceEmitter renders the Rust entry points and traits.
	InterfaceEmitter Emitter = emitterFunc{lang: "rust", path: InterfacePath, emit: RustInterface}
	// ImplementationEmitter renders the Rust starter implementation.
	ImplementationEmitter Emitter = emitterFunc{lang: "rust", path: ImplementationPath, emit: RustImplementation}
)

// Generator renders every artifact of a resolved binding.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile is one rendered artifact.
type GeneratedFile struct {
	// Path is the destination, relative to the working directory or absolute.
	Path    string
	Content []byte
	// WriteOnce files are left alone when they already exist.
	WriteOnce bool
}

// Generate renders all artifacts in memory. Nothing is returned when any of
// them fails.
func (g *Generator) Generate(cfg *schema.Config) ([]GeneratedFile, error) {
	overwrite := g.config.OverwriteImplementation || cfg.OverwriteImplementation

	artifacts := []struct {
		emitter   Emitter
		writeOnce bool
	}{
		{HeaderEmitter, false},
		{SourceEmitter, false},
		{InterfaceEmitter, false},
		{ImplementationEmitter, !overwrite},
	}

	files := make([]GeneratedFile, 0, len(artifacts))

	for _, a := range artifacts {
		path := a.emitter.Path(cfg)

		content, err := a.emitter.Emit(cfg)
		if err != nil {
			return nil, fmt.Errorf("generating %s file %s: %w", a.emitter.Language(), path, err)
		}

		files = append(files, GeneratedFile{Path: path, Content: content, WriteOnce: a.writeOnce})
	}

	return files, nil
}
