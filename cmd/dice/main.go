/*
dice is a console dice roller.
Usage is

	dice [-c] [-t] [-n <count>] [-j <workers>] [-s <seed>] [<expression> ...]

-c enables comparison operators (< > = <= >= <>), a comparison yields 1 or 0;

-t prints operation tree of each expression before rolling;

-n <count> rolls each expression <count> times and prints summary and histogram, default is 1;

-j <workers> defines the number of goroutines used with -n, default is the number of CPUs;

-s <seed> makes rolls reproducible, default is 0 (random);

<expression> is a dice expression, e.g. "2d6+3". With no expressions dice starts interactive prompt.
*/
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"git.sr.ht/~sircmpwn/getopt"

	"github.com/ava12/dice/lexer"
)

type options struct {
	flags    lexer.Flags
	showTree bool
	help     bool
	count    int
	workers  int
	seed     uint64
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage is  dice [-c] [-t] [-n <count>] [-j <workers>] [-s <seed>] [<expression> ...]")
	fmt.Fprintln(w, "  -c  enable comparison operators")
	fmt.Fprintln(w, "  -t  print operation tree")
	fmt.Fprintln(w, "  -n  number of rolls per expression, more than 1 prints summary")
	fmt.Fprintln(w, "  -j  number of worker goroutines used with -n")
	fmt.Fprintln(w, "  -s  random seed, 0 means random")
	fmt.Fprintln(w, "  -h  show this help")
	fmt.Fprintln(w, "With no expressions starts interactive prompt.")
}

// parseOptions parses argv including program name, returns options and remaining arguments.
func parseOptions(argv []string) (options, []string, error) {
	opts := options{count: 1}
	parsed, optind, e := getopt.Getopts(argv, "chn:j:s:t")
	if e != nil {
		return opts, nil, e
	}

	for _, opt := range parsed {
		switch opt.Option {
		case 'c':
			opts.flags |= lexer.Comparisons
		case 't':
			opts.showTree = true
		case 'h':
			opts.help = true
		case 'n':
			opts.count, e = strconv.Atoi(opt.Value)
			if e != nil || opts.count <= 0 {
				return opts, nil, fmt.Errorf("invalid -n parameter: %q", opt.Value)
			}
		case 'j':
			opts.workers, e = strconv.Atoi(opt.Value)
			if e != nil || opts.workers < 0 {
				return opts, nil, fmt.Errorf("invalid -j parameter: %q", opt.Value)
			}
		case 's':
			opts.seed, e = strconv.ParseUint(opt.Value, 10, 64)
			if e != nil {
				return opts, nil, fmt.Errorf("invalid -s parameter: %q", opt.Value)
			}
		}
	}

	return opts, argv[optind:], nil
}

func main() {
	opts, exprs, e := parseOptions(os.Args)
	if e != nil {
		fmt.Fprintln(os.Stderr, e)
		usage(os.Stderr)
		os.Exit(2)
	}

	if opts.help {
		usage(os.Stdout)
		return
	}

	if len(exprs) == 0 {
		os.Exit(repl(opts))
	}

	rep := newReporter(os.Stdout, opts)
	exitCode := 0
	for _, expr := range exprs {
		if rep.run(context.Background(), expr) != nil {
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}
