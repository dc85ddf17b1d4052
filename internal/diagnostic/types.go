package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"qt-binding-generator/internal/common"
)

// Diagnostic codes.
const (
	CodeMissingField   = "missing_field"
	CodeInvalidName    = "invalid_name"
	CodeUnknownType    = "unknown_type"
	CodeCyclicType     = "cyclic_type"
	CodeNotPrimitive   = "not_primitive"
	CodeVoidNotAllowed = "void_not_allowed"
	CodeUnknownRole    = "unknown_role"
	CodeDuplicateName  = "duplicate_name"
	CodeReservedName   = "reserved_name"
	CodeItemsOnRecord  = "item_properties_on_object"
	CodeEmptyModel     = "empty_model"
)

// Diagnostics holds all diagnostic information from validation.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Object names the schema object this relates to (if any).
	Object string
	// Member names the property, item property, function or argument (if any).
	Member string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticWarning DiagnosticSeverity = iota
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, object, member string, suggestions ...string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:    DiagnosticError,
		Code:        code,
		Message:     message,
		Object:      object,
		Member:      member,
		Suggestions: suggestions,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, object, member string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Object:   object,
		Member:   member,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Error returns a combined error from all error diagnostics, or nil if there
// are none.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// Location returns "Object.member", "Object" or "" depending on what is set.
func (d Diagnostic) Location() string {
	switch {
	case d.Object != "" && d.Member != "":
		return d.Object + "." + d.Member
	case d.Object != "":
		return d.Object
	default:
		return d.Member
	}
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + quoteJoin(d.Suggestions) + "?)"
	}

	if loc := d.Location(); loc != "" {
		return loc + ": " + msg
	}

	return msg
}

func quoteJoin(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = fmt.Sprintf("%q", s)
	}

	return strings.Join(quoted, " or ")
}
