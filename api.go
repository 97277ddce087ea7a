package main

import (
	"context"
	"io"

	"github.com/jcorbin/qc/internal/panicerr"
)

// New creates a Calc with an empty stack, writing reports to nowhere unless
// configured otherwise.
func New(opts ...Option) *Calc {
	var calc Calc
	defaultOptions.apply(&calc)
	Options(opts...).apply(&calc)
	return &calc
}

// Run evaluates tokens in order, stopping at the first error, which is
// returned as a *TokenError. Any output is flushed before returning, and the
// result holds whatever remains on the stack, even after an error.
func (calc *Calc) Run(ctx context.Context, tokens []string) (Result, error) {
	err := panicerr.Recover("calc", func() error {
		return calc.run(ctx, tokens)
	})
	if ferr := calc.out.Flush(); err == nil {
		err = ferr
	}
	return Result{Stack: calc.stack.Values()}, err
}

// WithOutput sets where the . and :. words, and Report, write.
func WithOutput(w io.Writer) Option { return withOutput(w) }

// WithTee copies all output to an additional writer.
func WithTee(w io.Writer) Option { return withTee(w) }

// WithRadixes sets the radixes that reported values are rendered in.
func WithRadixes(radixes ...Radix) Option { return withRadixes(radixes) }

// WithStack sets initial stack values, bottom to top.
func WithStack(values ...int64) Option { return withStack(values) }

// WithTrace logs every processed token along with the resulting stack.
func WithTrace(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }
