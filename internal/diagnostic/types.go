package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"model-binder/internal/common"
)

// Binding failure codes.
const (
	CodeUnsupportedModel   = "unsupported-model"
	CodeWidgetTypeMismatch = "widget-type-mismatch"
	CodeAccessorFailure    = "accessor-failure"
	CodeParseFailure       = "parse-failure"
)

// Diagnostics holds all diagnostic information from one bind or validation run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Model names the model type this relates to (if any).
	Model string
	// Field names the field this relates to (if any).
	Field string
	// Cause is the underlying error (if any).
	Cause error
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, model, field string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: DiagnosticError,
		Code:     code,
		Message:  message,
		Model:    model,
		Field:    field,
	})
}

// AddCause adds an error diagnostic carrying the error that produced it.
func (d *Diagnostics) AddCause(code string, cause error, model, field string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: DiagnosticError,
		Code:     code,
		Message:  cause.Error(),
		Model:    model,
		Field:    field,
		Cause:    cause,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, model, field string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Model:    model,
		Field:    field,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, model, field string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: DiagnosticInfo,
		Code:     code,
		Message:  message,
		Model:    model,
		Field:    field,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
// Causes stay reachable through errors.Is and errors.As.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	errs := make([]error, 0, len(d.Errors))
	for _, e := range d.Errors {
		if e.Cause != nil {
			if p := e.prefix(); p != "" {
				errs = append(errs, fmt.Errorf("%s: %w", p, e.Cause))
			} else {
				errs = append(errs, e.Cause)
			}
			continue
		}

		errs = append(errs, errors.New(e.String()))
	}

	return errors.Join(errs...)
}

// ByCode returns the error diagnostics with the given code.
func (d *Diagnostics) ByCode(code string) []Diagnostic {
	var res []Diagnostic
	for _, e := range d.Errors {
		if e.Code == code {
			res = append(res, e)
		}
	}

	return res
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	if p := d.prefix(); p != "" {
		return p + ": " + d.Message
	}

	return d.Message
}

func (d Diagnostic) prefix() string {
	var prefix []string
	if d.Model != "" {
		prefix = append(prefix, "["+d.Model+"]")
	}

	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	if d.Code != "" {
		prefix = append(prefix, "("+d.Code+")")
	}

	return strings.Join(prefix, " ")
}
