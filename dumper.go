package main

import (
	"fmt"
	"io"
	"strings"
)

// stackDumper renders a Calc's stack for people to read: one line, bottom
// to top, in the calculator's primary radix.
type stackDumper struct {
	calc *Calc
	out  io.Writer
}

func (dump stackDumper) String() string {
	var sb strings.Builder
	dump.format(&sb)
	return sb.String()
}

func (dump stackDumper) dumpStack() error {
	var sb strings.Builder
	dump.format(&sb)
	sb.WriteByte('\n')
	_, err := io.WriteString(dump.out, sb.String())
	return err
}

func (dump stackDumper) format(sb *strings.Builder) {
	primary := Decimal
	if rl := dump.calc.radixes; len(rl) > 0 {
		primary = rl[0]
	}
	sb.WriteByte('[')
	for i, val := range dump.calc.stack {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(primary.Format(val))
	}
	sb.WriteByte(']')
}

// dump writes a multi-line description of the calculator state.
func (dump stackDumper) dump() {
	fmt.Fprintf(dump.out, "# Calc Dump\n")
	fmt.Fprintf(dump.out, "  radixes: %v\n", dump.calc.radixes)
	fmt.Fprintf(dump.out, "  depth: %v\n", dump.calc.stack.Len())
	fmt.Fprintf(dump.out, "  stack: %v\n", dump)
}
