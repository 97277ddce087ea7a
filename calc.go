package main

import (
	"context"
	"fmt"
	"io"

	"github.com/alecthomas/repr"

	"github.com/jcorbin/qc/internal/flushio"
)

// Calc evaluates RPN programs against an operand stack that it exclusively
// owns. The stack survives between Run calls on the same Calc, but not across
// Calc values.
type Calc struct {
	logging

	stack   Stack
	out     flushio.WriteFlusher
	radixes radixList
}

// Result holds the state left after a Run.
type Result struct {
	// Stack holds the remaining operands, bottom to top.
	Stack []int64
}

// Stack returns a bottom-to-top copy of the current operand stack.
func (calc *Calc) Stack() []int64 { return calc.stack.Values() }

// Reset replaces the operand stack with the given bottom-to-top values.
func (calc *Calc) Reset(values ...int64) {
	calc.stack = append(calc.stack[:0], values...)
}

// Report writes each value on its own line, in every configured radix.
func (calc *Calc) Report(values ...int64) error {
	for _, val := range values {
		if err := calc.report("=", val); err != nil {
			return err
		}
	}
	return calc.out.Flush()
}

func (calc *Calc) report(mark string, val int64) error {
	line := calc.radixes.format(val)
	calc.logf(mark, "%v", line)
	if _, err := io.WriteString(calc.out, line); err != nil {
		return err
	}
	_, err := io.WriteString(calc.out, "\n")
	return err
}

func (calc *Calc) run(ctx context.Context, tokens []string) error {
	for i, token := range tokens {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := calc.exec(token); err != nil {
			calc.logf("!", "%v %v", token, err)
			return &TokenError{Index: i, Token: token, Err: err}
		}
		if calc.logfn != nil {
			calc.logf(">", "%v -- %v", token, repr.String(calc.stack.Values()))
		}
	}
	return nil
}

func (calc *Calc) exec(token string) error {
	if word, defined := words[token]; defined {
		return word(calc)
	}
	val, err := parseLiteral(token)
	if err != nil {
		return err
	}
	calc.stack.Push(val)
	return nil
}

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
