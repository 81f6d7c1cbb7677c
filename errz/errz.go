// Package errz defines the error taxonomy shared by the renderers, the
// validator and the source splicer.
package errz

import (
	"errors"
	"fmt"
)

// Kind represents the category of an error.
type Kind int

const (
	// ErrUnsupportedValue indicates a host value the tree serializer cannot
	// convert.
	ErrUnsupportedValue Kind = iota
	// ErrUnsupportedNode indicates a node or operator with no conversion,
	// or a statement used where an expression is required.
	ErrUnsupportedNode
	// ErrMalformedRaw indicates raw text the external parser rejected. The
	// serializer recovers from it.
	ErrMalformedRaw
	// ErrValidation indicates a structural problem found by the validator.
	ErrValidation
	// ErrSplice indicates a failure to splice statements into source.
	ErrSplice
)

// String returns the string representation of the error kind.
func (k Kind) String() string {
	switch k {
	case ErrUnsupportedValue:
		return "unsupported value"
	case ErrUnsupportedNode:
		return "unsupported node"
	case ErrMalformedRaw:
		return "malformed raw"
	case ErrValidation:
		return "validation error"
	case ErrSplice:
		return "splice error"
	default:
		return "error"
	}
}

// ErrUnsupported matches, via errors.Is, any error of kind
// ErrUnsupportedValue.
var ErrUnsupported = errors.New("unsupported value")

// Error is a categorized error carrying the offending node's source text.
type Error struct {
	Kind    Kind
	Code    Code
	Message string
	Node    string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.Node != "" {
		msg += fmt.Sprintf(" (in %s)", e.Node)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the ErrUnsupported sentinel and e is an
// unsupported-value error.
func (e *Error) Is(target error) bool {
	return target == ErrUnsupported && e.Kind == ErrUnsupportedValue
}

// IsFatal returns whether the error aborts the operation that raised it.
// Malformed raw text is recovered by the serializer.
func (e *Error) IsFatal() bool {
	return e.Kind != ErrMalformedRaw
}

// New creates an Error. The kind is derived from the code's category.
func New(code Code, message string) *Error {
	return &Error{Kind: code.Kind(), Code: code, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// WithNode records the source text of the offending node.
func (e *Error) WithNode(node string) *Error {
	e.Node = node
	return e
}

// WithCause wraps the error with a cause.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
