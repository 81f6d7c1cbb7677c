// Package check performs opt-in structural validation of syntax trees.
// It never inspects bindings: a reference to an undeclared name is not an
// error here.
package check

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/risor-io/tsgen/ast"
	"github.com/risor-io/tsgen/errz"
)

// ValidationError represents one structural violation.
type ValidationError struct {
	Code    errz.Code // category of the violation
	Message string    // description of the violation
	Node    ast.Node  // the offending node
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Node == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s in %s", e.Code, e.Message, summarize(e.Node))
}

// Unwrap exposes the violation as an errz.Error of kind ErrValidation.
func (e *ValidationError) Unwrap() error {
	return errz.New(e.Code, e.Message)
}

// Validator inspects a statement list and returns every violation found.
// Validators must not modify the tree.
type Validator interface {
	Validate(nodes []ast.Node) []ValidationError
}

// ValidatorFunc is an adapter to use a function as a Validator.
type ValidatorFunc func([]ast.Node) []ValidationError

// Validate implements the Validator interface.
func (f ValidatorFunc) Validate(nodes []ast.Node) []ValidationError {
	return f(nodes)
}

// Validate runs the structural rules, then any extra validators, and
// returns nil or a *multierror.Error holding one *ValidationError per
// violation.
func Validate(nodes []ast.Node, extra ...Validator) error {
	validators := append([]Validator{Structural{}}, extra...)
	var result *multierror.Error
	for _, v := range validators {
		for _, violation := range v.Validate(nodes) {
			result = multierror.Append(result, &violation)
		}
	}
	return result.ErrorOrNil()
}

// Violations flattens an error returned by Validate.
func Violations(err error) []*ValidationError {
	merr, ok := err.(*multierror.Error)
	if !ok {
		return nil
	}
	out := make([]*ValidationError, 0, len(merr.Errors))
	for _, e := range merr.Errors {
		if v, ok := e.(*ValidationError); ok {
			out = append(out, v)
		}
	}
	return out
}

// summarize returns the first line of a node's text, shortened.
func summarize(n ast.Node) string {
	const max = 40
	s := n.String()
	for i, r := range s {
		if r == '\n' {
			s = s[:i] + " ..."
			break
		}
	}
	if len(s) > max {
		s = s[:max] + "..."
	}
	return fmt.Sprintf("%q", s)
}
