package main

import (
	"io"

	"github.com/jcorbin/qc/internal/flushio"
)

// Option configures a Calc when passed to New.
type Option interface{ apply(calc *Calc) }

// Options combines any number of options into one, applied in order.
func Options(opts ...Option) Option {
	var all options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			all = append(all, impl...)
		default:
			all = append(all, opt)
		}
	}
	if len(all) == 1 {
		return all[0]
	}
	return all
}

type options []Option

func (opts options) apply(calc *Calc) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(calc)
		}
	}
}

var defaultOptions = options{
	withOutput(io.Discard),
	withRadixes{Decimal},
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(calc *Calc) {
	calc.logfn = logfn
}

type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type withRadixes []Radix
type withStack []int64

func withOutput(w io.Writer) outputOption { return outputOption{w} }
func withTee(w io.Writer) teeOption       { return teeOption{w} }

func (o outputOption) apply(calc *Calc) {
	if calc.out != nil {
		calc.out.Flush()
	}
	calc.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(calc *Calc) {
	calc.out = flushio.WriteFlushers(calc.out, flushio.NewWriteFlusher(o.Writer))
}

func (radixes withRadixes) apply(calc *Calc) {
	if len(radixes) > 0 {
		calc.radixes = append(radixList(nil), radixes...)
	}
}

func (values withStack) apply(calc *Calc) {
	calc.stack = append(calc.stack, values...)
}
