package main

// Stack is the operand stack; the top of the stack is the last element.
type Stack []int64

// Len returns the stack depth.
func (s Stack) Len() int { return len(s) }

// Push appends a value to the top of the stack.
func (s *Stack) Push(val int64) {
	*s = append(*s, val)
}

// Pop removes and returns the top value, or ErrStackUnderflow if the stack is
// empty.
func (s *Stack) Pop() (int64, error) {
	i := len(*s) - 1
	if i < 0 {
		return 0, ErrStackUnderflow
	}
	val := (*s)[i]
	*s = (*s)[:i]
	return val, nil
}

// Values returns a bottom-to-top copy of the stack; it is never nil.
func (s Stack) Values() []int64 {
	values := make([]int64, len(s))
	copy(values, s)
	return values
}

func (s *Stack) require(n int) error {
	if len(*s) < n {
		return ErrStackUnderflow
	}
	return nil
}
