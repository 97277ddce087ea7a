package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/jcorbin/qc/internal/fileinput"
	"github.com/jcorbin/qc/internal/logio"
)

func main() {
	var log logio.Logger
	log.SetOutput(os.Stderr)
	cli{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		log:    &log,
	}.run(context.Background(), os.Args[1:])
	os.Exit(log.ExitCode())
}

// cli connects a Calc to process arguments and standard streams; every
// diagnostic goes through log, whose ExitCode becomes the process status.
type cli struct {
	stdin  io.Reader
	stdout io.Writer
	log    *logio.Logger

	// newLineReader opens the interactive line editor; nil uses liner.
	newLineReader func() lineReader
}

func (c cli) run(ctx context.Context, args []string) {
	usage := &logio.Writer{Logf: c.log.Leveledf("")}
	defer usage.Close()

	cfg, tokens, err := parseArgs(args, usage)
	if errors.Is(err, flag.ErrHelp) {
		return
	} else if err != nil {
		c.log.ErrorIf(err)
		return
	}

	opts := append(cfg.options(), WithOutput(c.stdout))
	if cfg.verbose {
		opts = append(opts, WithTrace(c.log.Leveledf("TRACE")))
	}
	calc := New(opts...)

	if cfg.timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	switch {
	case len(tokens) > 0:
		c.runTokens(ctx, calc, tokens, nil)
	case cfg.interactive || (!cfg.stdin && isTerminal(c.stdin)):
		c.runREPL(ctx, calc)
	default:
		c.runInput(ctx, calc)
	}
}

// runTokens evaluates a whole program, then reports the remaining stack.
// Errors name the offending token, prefixed by its location if known.
// Program errors exit 1; output failures are faults, exiting 2.
func (c cli) runTokens(ctx context.Context, calc *Calc, tokens []string, locs []fileinput.Location) {
	res, err := calc.Run(ctx, tokens)
	if err != nil {
		var te *TokenError
		if errors.As(err, &te) && te.Index < len(locs) {
			err = fmt.Errorf("%v: %w", locs[te.Index], err)
		}
		if isEvalError(err) {
			c.log.Errorf("%v", err)
		} else {
			c.log.ErrorIf(err)
		}
		if calc.logfn != nil {
			dumpToLog(calc)
		}
		return
	}
	c.log.ErrorIf(calc.Report(res.Stack...))
}

// dumpToLog writes a full calculator dump through its trace function.
func dumpToLog(calc *Calc) {
	lw := logio.Writer{Logf: calc.logfn}
	defer lw.Close()
	stackDumper{calc: calc, out: &lw}.dump()
}

// runInput evaluates every token read from stdin as one program.
func (c cli) runInput(ctx context.Context, calc *Calc) {
	in := fileinput.Input{Queue: []io.Reader{c.stdin}}
	var (
		tokens []string
		locs   []fileinput.Location
	)
	for {
		token, loc, err := in.ScanToken()
		if err == io.EOF {
			break
		} else if err != nil {
			c.log.ErrorIf(err)
			return
		}
		tokens = append(tokens, token)
		locs = append(locs, loc)
	}
	c.runTokens(ctx, calc, tokens, locs)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
