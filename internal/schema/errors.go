package schema

import (
	"errors"
	"fmt"
	"strings"

	"qt-binding-generator/internal/diagnostic"
)

var (
	// ErrUnknownType is returned for a property type that is neither a
	// primitive keyword nor a declared object.
	ErrUnknownType = errors.New("unknown type")
	// ErrCyclicType is returned when properties form a reference cycle.
	ErrCyclicType = errors.New("cyclic type")
)

// TypeError describes a property whose type cannot be resolved.
type TypeError struct {
	Object   string
	Property string
	Type     string
	// Path is the chain of objects that led back to Type, for cycles.
	Path        []string
	Suggestions []string
	Err         error
}

// Diagnostic describes e in the form validation problems are reported in.
func (e *TypeError) Diagnostic() diagnostic.Diagnostic {
	code := diagnostic.CodeUnknownType
	if errors.Is(e.Err, ErrCyclicType) {
		code = diagnostic.CodeCyclicType
	}

	msg := fmt.Sprintf("%v %q", e.Err, e.Type)
	if len(e.Path) > 0 {
		msg += " (" + strings.Join(e.Path, " -> ") + ")"
	}

	return diagnostic.Diagnostic{
		Severity:    diagnostic.DiagnosticError,
		Code:        code,
		Message:     msg,
		Object:      e.Object,
		Member:      e.Property,
		Suggestions: e.Suggestions,
	}
}

func (e *TypeError) Error() string {
	d := e.Diagnostic()

	var b strings.Builder

	b.WriteString(d.Location())
	b.WriteString(": ")
	b.WriteString(d.Message)

	if len(d.Suggestions) > 0 {
		b.WriteString(", did you mean ")

		for i, s := range d.Suggestions {
			if i > 0 {
				b.WriteString(" or ")
			}

			fmt.Fprintf(&b, "%q", s)
		}

		b.WriteString("?")
	}

	return b.String()
}

func (e *TypeError) Unwrap() error {
	return e.Err
}
