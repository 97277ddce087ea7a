package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_isEvalError(t *testing.T) {
	for _, tc := range []struct {
		err  error
		want bool
	}{
		{ErrStackUnderflow, true},
		{&TokenError{Index: 1, Token: "div", Err: ErrDivisionByZero}, true},
		{&TokenError{Index: 0, Token: "add", Err: ErrOverflow}, true},
		{&TokenError{Index: 0, Token: "nope", Err: &NumberFormatError{"nope", 10, errors.New("invalid syntax")}}, true},
		{fmt.Errorf("input:3: %w", &TokenError{Index: 4, Token: "pop", Err: ErrStackUnderflow}), true},
		{context.DeadlineExceeded, true},
		{errors.New("broken pipe"), false},
		{&TokenError{Index: 1, Token: ".", Err: errors.New("broken pipe")}, false},
	} {
		assert.Equal(t, tc.want, isEvalError(tc.err), "expected isEvalError(%v)", tc.err)
	}
}
