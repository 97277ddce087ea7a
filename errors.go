package main

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrStackUnderflow = errors.New("stack underflow")
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("integer overflow")
)

// NumberFormatError indicates that a non-word token failed to parse as a
// literal in the base selected by its prefix.
type NumberFormatError struct {
	Token string
	Base  int
	Err   error
}

func (nfe *NumberFormatError) Error() string {
	return fmt.Sprintf("invalid base %v literal %q: %v", nfe.Base, nfe.Token, nfe.Err)
}

func (nfe *NumberFormatError) Unwrap() error { return nfe.Err }

// Is matches any other *NumberFormatError, so that errors.Is(err,
// &NumberFormatError{}) tests for the kind of error.
func (nfe *NumberFormatError) Is(target error) bool {
	_, is := target.(*NumberFormatError)
	return is
}

// TokenError annotates an evaluation error with the offending token and its
// zero-based position in the program.
type TokenError struct {
	Index int
	Token string
	Err   error
}

func (te *TokenError) Error() string {
	return fmt.Sprintf("token[%v] %q: %v", te.Index, te.Token, te.Err)
}

func (te *TokenError) Unwrap() error { return te.Err }

// isEvalError reports whether err is the fault of the evaluated program, or
// of its deadline, rather than of the calculator's environment (e.g. a
// failed output write, or a recovered panic).
func isEvalError(err error) bool {
	for _, kind := range []error{
		ErrStackUnderflow,
		ErrDivisionByZero,
		ErrOverflow,
		&NumberFormatError{},
		context.DeadlineExceeded,
		context.Canceled,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
