package form

import (
	"context"
	"log/slog"
)

// Option configures a Form.
type Option func(*Form)

// WithResetOnSubmit controls whether a successful submission restores the
// initial values. Enabled by default.
func WithResetOnSubmit(reset bool) Option {
	return func(f *Form) { f.resetOnSubmit = reset }
}

// WithName sets the form name used in log records.
func WithName(name string) Option {
	return func(f *Form) { f.name = name }
}

// WithLogger sets the logger that receives submit failures. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithErrorReporter registers a callback for submit function failures.
func WithErrorReporter(fn func(ctx context.Context, err error)) Option {
	return func(f *Form) { f.reportError = fn }
}
