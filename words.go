package main

import "math"

//// Words

// Every reserved word names a primitive that works on the calculator's
// operand stack. Any token that is not a word is parsed as a literal and
// pushed.
var words = map[string]func(calc *Calc) error{
	"add": (*Calc).add,
	"sub": (*Calc).sub,
	"mul": (*Calc).mul,
	"div": (*Calc).div,

	":add": (*Calc).addAll,
	":sub": (*Calc).subAll,
	":mul": (*Calc).mulAll,
	":div": (*Calc).divAll,

	"pop": (*Calc).pop,
	".":   (*Calc).dot,
	":.":  (*Calc).dotAll,
}

//// Binary Operations

// Each binary operation pops a (the top) then b, and pushes b OP a.

// Word   Function
// add    pop top 2 elements of stack, add, push
func (calc *Calc) add() error { return calc.binary(addInt) }

// Word   Function
// sub    pop top 2 elements of stack, subtract top from next, push
func (calc *Calc) sub() error { return calc.binary(subInt) }

// Word   Function
// mul    pop top 2 elements of stack, multiply, push
func (calc *Calc) mul() error { return calc.binary(mulInt) }

// Word   Function
// div    pop top 2 elements of stack, divide next by top, push
func (calc *Calc) div() error { return calc.binary(divInt) }

func (calc *Calc) binary(op func(b, a int64) (int64, error)) error {
	if err := calc.stack.require(2); err != nil {
		return err
	}
	a, err := calc.stack.Pop()
	if err != nil {
		return err
	}
	b, err := calc.stack.Pop()
	if err != nil {
		return err
	}
	val, err := op(b, a)
	if err != nil {
		return err
	}
	calc.stack.Push(val)
	return nil
}

//// Fold Operations

// A fold consumes the entire stack x1 .. xn (bottom to top), pushing the
// right-associative result x1 OP (x2 OP (... (xn-1 OP xn))).

// Word   Function
// :add   sum the entire stack
func (calc *Calc) addAll() error { return calc.fold(addInt) }

// Word   Function
// :sub   x1 - (x2 - (... - xn))
func (calc *Calc) subAll() error { return calc.fold(subInt) }

// Word   Function
// :mul   multiply the entire stack
func (calc *Calc) mulAll() error { return calc.fold(mulInt) }

// Word   Function
// :div   x1 / (x2 / (... / xn))
func (calc *Calc) divAll() error { return calc.fold(divInt) }

func (calc *Calc) fold(op func(b, a int64) (int64, error)) error {
	if err := calc.stack.require(2); err != nil {
		return err
	}
	a, err := calc.stack.Pop()
	if err != nil {
		return err
	}
	b, err := calc.stack.Pop()
	if err != nil {
		return err
	}
	acc, err := op(b, a)
	for err == nil && calc.stack.Len() > 0 {
		var x int64
		if x, err = calc.stack.Pop(); err == nil {
			acc, err = op(x, acc)
		}
	}
	if err != nil {
		return err
	}
	calc.stack.Push(acc)
	return nil
}

//// Output Operations

// Word   Function
// pop    discard the top of stack
func (calc *Calc) pop() error {
	_, err := calc.stack.Pop()
	return err
}

// Word   Function
// .      pop the top of stack and report it
func (calc *Calc) dot() error {
	val, err := calc.stack.Pop()
	if err != nil {
		return err
	}
	return calc.report(".", val)
}

// Word   Function
// :.     pop and report every value, top to bottom
func (calc *Calc) dotAll() error {
	for calc.stack.Len() > 0 {
		if err := calc.dot(); err != nil {
			return err
		}
	}
	return nil
}

//// Integer Arithmetic

// All arithmetic is checked: any result outside the int64 range is an
// ErrOverflow rather than a silent wrap.

func addInt(b, a int64) (int64, error) {
	c := b + a
	if (a > 0 && c < b) || (a < 0 && c > b) {
		return 0, ErrOverflow
	}
	return c, nil
}

func subInt(b, a int64) (int64, error) {
	c := b - a
	if (a > 0 && c > b) || (a < 0 && c < b) {
		return 0, ErrOverflow
	}
	return c, nil
}

func mulInt(b, a int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, ErrOverflow
	}
	c := b * a
	if c/a != b {
		return 0, ErrOverflow
	}
	return c, nil
}

func divInt(b, a int64) (int64, error) {
	if a == 0 {
		return 0, ErrDivisionByZero
	}
	if a == -1 && b == math.MinInt64 {
		return 0, ErrOverflow
	}
	return b / a, nil
}
