package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/qc/internal/logio"
)

type calcTestCases []calcTestCase

func (cts calcTestCases) run(t *testing.T) {
	{
		var exclusive []calcTestCase
		for _, ct := range cts {
			if ct.exclusive {
				exclusive = append(exclusive, ct)
			}
		}
		if len(exclusive) > 0 {
			cts = exclusive
		}
	}
	for _, ct := range cts {
		if !t.Run(ct.name, ct.run) {
			return
		}
	}
}

func calcTest(name string, tokens ...string) (ct calcTestCase) {
	ct.name = name
	ct.tokens = tokens
	return ct
}

type calcTestCase struct {
	name    string
	tokens  []string
	opts    []Option
	expect  []func(t *testing.T, calc *Calc, res Result, err error)
	timeout time.Duration
	wantErr error

	exclusive bool
}

func (ct calcTestCase) apply(wraps ...func(calcTestCase) calcTestCase) calcTestCase {
	for _, wrap := range wraps {
		ct = wrap(ct)
	}
	return ct
}

func (ct calcTestCase) exclusiveTest() calcTestCase {
	ct.exclusive = true
	return ct
}

func (ct calcTestCase) withOptions(opts ...Option) calcTestCase {
	ct.opts = append(ct.opts, opts...)
	return ct
}

func (ct calcTestCase) withStack(values ...int64) calcTestCase {
	ct.opts = append(ct.opts, WithStack(values...))
	return ct
}

func (ct calcTestCase) withRadixes(radixes ...Radix) calcTestCase {
	ct.opts = append(ct.opts, WithRadixes(radixes...))
	return ct
}

func (ct calcTestCase) withTimeout(timeout time.Duration) calcTestCase {
	ct.timeout = timeout
	return ct
}

func (ct calcTestCase) expectError(err error) calcTestCase {
	ct.wantErr = err
	return ct
}

func (ct calcTestCase) expectStack(values ...int64) calcTestCase {
	ct.expect = append(ct.expect, func(t *testing.T, calc *Calc, res Result, err error) {
		if values == nil {
			values = []int64{}
		}
		assert.Equal(t, values, res.Stack, "expected stack values")
	})
	return ct
}

func (ct calcTestCase) expectTokenError(index int, token string) calcTestCase {
	ct.expect = append(ct.expect, func(t *testing.T, calc *Calc, res Result, err error) {
		var te *TokenError
		if assert.True(t, errors.As(err, &te), "expected a *TokenError, got %#v", err) {
			assert.Equal(t, index, te.Index, "expected error token index")
			assert.Equal(t, token, te.Token, "expected error token")
		}
	})
	return ct
}

func (ct calcTestCase) expectOutput(output string) calcTestCase {
	var out strings.Builder
	ct.opts = append(ct.opts, WithOutput(&out))
	ct.expect = append(ct.expect, func(t *testing.T, calc *Calc, res Result, err error) {
		assert.Equal(t, output, out.String(), "expected output")
	})
	return ct
}

func (ct calcTestCase) run(t *testing.T) {
	defer func(then time.Time) {
		label := "PASS"
		if t.Failed() {
			label = "FAIL"
		}
		t.Logf("%v\t%v\t%v", label, t.Name(), time.Since(then))
	}(time.Now())

	// trace into a buffer, only logging it if the test fails
	var trace []string
	calc := ct.buildCalc()
	WithTrace(func(mess string, args ...interface{}) {
		trace = append(trace, fmt.Sprintf(mess, args...))
	}).apply(calc)
	ct.runCalcTest(context.Background(), t, calc)
	if t.Failed() {
		for _, line := range trace {
			t.Logf("trace: %v", line)
		}
	}
}

func (ct calcTestCase) runCalcTest(ctx context.Context, t *testing.T, calc *Calc) {
	const defaultTimeout = time.Second
	timeout := ct.timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	defer func() {
		if t.Failed() {
			ct.dumpToTest(t, calc)
		}
	}()

	res, err := calc.Run(ctx, ct.tokens)
	if ct.wantErr != nil {
		assert.True(t, errors.Is(err, ct.wantErr), "expected error: %v\ngot: %+v", ct.wantErr, err)
	} else {
		assert.NoError(t, err, "unexpected calc run error")
	}

	if !t.Failed() {
		for _, expect := range ct.expect {
			expect(t, calc, res, err)
		}
	}
}

func (ct calcTestCase) buildCalc() *Calc {
	return New(ct.opts...)
}

func (ct calcTestCase) dumpToTest(t *testing.T, calc *Calc) {
	lw := logio.Writer{Logf: t.Logf}
	defer lw.Close()
	stackDumper{calc: calc, out: &lw}.dump()
}

//// utilities

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}
