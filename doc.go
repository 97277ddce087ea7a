/* Package main: qc -- a quick Reverse Polish Notation calculator

qc evaluates a program of whitespace-delimited tokens against a stack of 64-bit
signed integers. Every token is either a word, naming a primitive, or else a
literal to push:

	qc 4 7 9 add 2 8 mul     # leaves 4 16 16
	qc 1 2 3 :sub            # leaves 2, i.e. 1 - (2 - 3)
	qc --radix=all 0xff .    # prints 255	0xff	0o377	0b11111111

Literals are decimal, unless prefixed by 0x or x (hexadecimal), 0o or o
(octal), or 0b or b (binary). Any literal may carry a leading - or + sign.
Prefixes must be lowercase, but hexadecimal digits may be either case.

Words:

	add sub mul div      pop a then b, push b OP a
	:add :sub :mul :div  fold the whole stack x1..xn into x1 OP (x2 OP (... xn))
	pop                  discard the top of stack
	.                    pop and print the top of stack
	:.                   pop and print everything, top to bottom

Arithmetic never wraps: results outside the int64 range fail with an overflow
error, just as dividing by zero fails. Evaluation stops at the first error,
which names the offending token; an error leaves the process exit status 1.

Command line arguments that begin with "--" are flags; everything else is a
program token, so negative literals pass through as written. Without any
program tokens, qc reads a program from stdin, or runs an interactive session
when stdin is a terminal.
*/
package main
