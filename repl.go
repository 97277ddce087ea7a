package main

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/peterh/liner"
)

const replPrompt = "qc> "

// lineReader is the part of *liner.State that the REPL needs.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	Close() error
}

func newLiner() lineReader {
	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)
	return ln
}

// runREPL evaluates one line at a time against a session stack, showing the
// stack after every line. A failed line reports its error and leaves the
// stack as it was before that line.
func (c cli) runREPL(ctx context.Context, calc *Calc) {
	newLineReader := c.newLineReader
	if newLineReader == nil {
		newLineReader = newLiner
	}
	ln := newLineReader()
	defer ln.Close()

	dump := stackDumper{calc: calc, out: c.stdout}
	for {
		line, err := ln.Prompt(replPrompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		} else if err == io.EOF {
			return
		} else if err != nil {
			c.log.ErrorIf(err)
			return
		}

		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}
		if len(tokens) == 1 && tokens[0] == "quit" {
			return
		}
		ln.AppendHistory(line)

		before := calc.Stack()
		if _, err := calc.Run(ctx, tokens); err != nil {
			if !isEvalError(err) {
				c.log.ErrorIf(err)
				return
			}
			c.log.Printf("ERROR", "%v", err)
			calc.Reset(before...)
		}
		if err := dump.dumpStack(); err != nil {
			c.log.ErrorIf(err)
			return
		}
		if err := ctx.Err(); err != nil {
			c.log.Errorf("%v", err)
			return
		}
	}
}
