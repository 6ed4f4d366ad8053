package load

import (
	"errors"
	"strings"
)

// ErrInvalidDocument is matched by every ParseError.
var ErrInvalidDocument = errors.New("odatagen: invalid metadata document")

// ParseError reports a malformed metadata document.
type ParseError struct {
	Schema  string // Schema namespace (if applicable)
	Element string // Offending element, e.g. "EntityType Person"
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("odatagen: parse error")
	if e.Schema != "" {
		b.WriteString(" in schema ")
		b.WriteString(e.Schema)
	}
	if e.Element != "" {
		b.WriteString(" at ")
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
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches ErrInvalidDocument.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidDocument
}

// IsParseError reports whether the error is a ParseError.
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}
