package tsgen

import (
	"github.com/rs/zerolog"

	"github.com/risor-io/tsgen/ast"
)

// Option configures a render call.
type Option func(*options)

type options struct {
	indent   string
	logger   zerolog.Logger
	validate bool
}

func collectOptions(opts ...Option) *options {
	o := &options{indent: ast.DefaultIndent, logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithIndent sets the indentation unit used by Text.
func WithIndent(unit string) Option {
	return func(o *options) {
		o.indent = unit
	}
}

// WithLogger sets the logger used while rendering.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithValidation runs the structural validator before rendering. All
// violations are reported together.
func WithValidation() Option {
	return func(o *options) {
		o.validate = true
	}
}
