package main

import (
	"flag"
	"io"
	"strings"
	"time"
)

// config holds everything parsed from "--" prefixed command line flags.
type config struct {
	verbose     bool
	radixes     radixList
	timeout     time.Duration
	interactive bool
	stdin       bool
}

// splitArgs partitions command line arguments into flags, which begin with
// "--", and program tokens; a bare "--" ends flag processing. Single dash
// arguments are always program tokens, so negative literals like -5 are never
// mistaken for flags.
func splitArgs(args []string) (flags, tokens []string) {
	for i, arg := range args {
		if arg == "--" {
			return flags, append(tokens, args[i+1:]...)
		}
		if strings.HasPrefix(arg, "--") {
			flags = append(flags, arg)
		} else {
			tokens = append(tokens, arg)
		}
	}
	return flags, tokens
}

// parseArgs splits args and parses any flags; flags that take a value must be
// given as --name=value. Usage output is written to usage.
func parseArgs(args []string, usage io.Writer) (cfg config, tokens []string, err error) {
	cfg.radixes = radixList{Decimal}

	fs := flag.NewFlagSet("qc", flag.ContinueOnError)
	fs.SetOutput(usage)
	fs.BoolVar(&cfg.verbose, "verbose", false, "trace the stack after every token")
	fs.Var(&cfg.radixes, "radix", "comma separated output radixes: dec, hex, oct, bin, or all")
	fs.DurationVar(&cfg.timeout, "timeout", 0, "specify a time limit")
	fs.BoolVar(&cfg.interactive, "interactive", false, "run an interactive session")
	fs.BoolVar(&cfg.stdin, "stdin", false, "read program tokens from stdin")
	fs.Usage = func() {
		io.WriteString(fs.Output(), "Usage: qc [--flag[=value] ...] TOKEN ...\n")
		fs.PrintDefaults()
	}

	flags, tokens := splitArgs(args)
	if err := fs.Parse(flags); err != nil {
		return cfg, nil, err
	}
	return cfg, tokens, nil
}

func (cfg config) options() []Option {
	return []Option{WithRadixes(cfg.radixes...)}
}
