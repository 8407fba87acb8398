package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"record-reindexer/internal/common"
)

// Diagnostics holds all diagnostic information from validation.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Mapping names the mapping this relates to (if any).
	Mapping string
	// Field names the field this relates to (if any).
	Field string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, mapping, field string, suggestions ...string) {
	d.Errors = append(d.Errors, newDiagnostic(SeverityError, code, message, mapping, field, suggestions))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, mapping, field string, suggestions ...string) {
	d.Warnings = append(d.Warnings, newDiagnostic(SeverityWarning, code, message, mapping, field, suggestions))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, mapping, field string) {
	d.Infos = append(d.Infos, newDiagnostic(SeverityInfo, code, message, mapping, field, nil))
}

func newDiagnostic(sev Severity, code, message, mapping, field string, suggestions []string) Diagnostic {
	return Diagnostic{
		Severity:    sev,
		Code:        code,
		Message:     message,
		Mapping:     mapping,
		Field:       field,
		Suggestions: suggestions,
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns errors, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Codes returns the codes of all error diagnostics, in order.
func (d *Diagnostics) Codes() []string {
	codes := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		codes = append(codes, e.Code)
	}

	return codes
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string such as
// `[features] feture: [index_not_in_target] ... (did you mean "feature"?)`.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Mapping != "" {
		prefix = append(prefix, "["+d.Mapping+"]")
	}

	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		quoted := make([]string, len(d.Suggestions))
		for i, s := range d.Suggestions {
			quoted[i] = fmt.Sprintf("%q", s)
		}

		msg += " (did you mean " + strings.Join(quoted, " or ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
