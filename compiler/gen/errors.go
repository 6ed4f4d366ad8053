package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidSchema indicates a schema that cannot be turned into declarations.
	ErrInvalidSchema = errors.New("odatagen: invalid schema")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("odatagen: missing configuration")
	// ErrUnresolvedNavigation indicates a navigation property without a matching association end.
	ErrUnresolvedNavigation = errors.New("odatagen: unresolved navigation property")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("odatagen: code generation failed")
)

// SchemaError represents a schema definition error.
type SchemaError struct {
	Schema  string // Schema namespace
	Element string // Offending entity type, entity set or declaration (if applicable)
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("odatagen: schema error")
	if e.Schema != "" {
		b.WriteString(" in ")
		b.WriteString(e.Schema)
	}
	if e.Element != "" {
		b.WriteString(" on ")
		b.WriteString(e.Element)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for SchemaError.
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NewSchemaError creates a new SchemaError.
func NewSchemaError(schema, element, message string, cause error) *SchemaError {
	return &SchemaError{
		Schema:  schema,
		Element: element,
		Message: message,
		Cause:   cause,
	}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("odatagen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("odatagen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// ResolutionError reports a navigation property whose target could not be
// resolved against the schema associations.
type ResolutionError struct {
	Schema     string
	Entity     string
	Navigation string
	Role       string
	Reason     string
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	var b strings.Builder
	b.WriteString("odatagen: unresolved navigation")
	if e.Entity != "" {
		b.WriteString(" ")
		if e.Schema != "" {
			b.WriteString(e.Schema)
			b.WriteString(".")
		}
		b.WriteString(e.Entity)
	}
	if e.Navigation != "" {
		b.WriteString(".")
		b.WriteString(e.Navigation)
	}
	if e.Role != "" {
		fmt.Fprintf(&b, " (role %q)", e.Role)
	}
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for ResolutionError.
func (e *ResolutionError) Is(target error) bool {
	return target == ErrUnresolvedNavigation
}

// GenerationError represents a code generation error.
type GenerationError struct {
	Phase   string // "render", "write", "bundle"
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("odatagen: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// IsSchemaError reports whether the error is a SchemaError.
func IsSchemaError(err error) bool {
	var schemaErr *SchemaError
	return errors.As(err, &schemaErr)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsResolutionError reports whether the error is a ResolutionError.
func IsResolutionError(err error) bool {
	var resErr *ResolutionError
	return errors.As(err, &resErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

// Flatten returns the leaf errors of a joined error tree, in order.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var errs []error
		for _, e := range joined.Unwrap() {
			errs = append(errs, Flatten(e)...)
		}
		return errs
	}
	return []error{err}
}

// ResolutionErrors returns every ResolutionError aggregated in err.
func ResolutionErrors(err error) []*ResolutionError {
	var errs []*ResolutionError
	for _, e := range Flatten(err) {
		var resErr *ResolutionError
		if errors.As(e, &resErr) {
			errs = append(errs, resErr)
		}
	}
	return errs
}
