package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const prompt = "Roll >> "

type lineReader interface {
	ReadLine() (string, error)
}

// scanReader reads lines from non-terminal input, printing prompt before each line.
type scanReader struct {
	scanner *bufio.Scanner
	w       io.Writer
}

func newScanReader(r io.Reader, w io.Writer) *scanReader {
	return &scanReader{bufio.NewScanner(r), w}
}

func (sr *scanReader) ReadLine() (string, error) {
	fmt.Fprint(sr.w, prompt)
	if sr.scanner.Scan() {
		return sr.scanner.Text(), nil
	}

	e := sr.scanner.Err()
	if e == nil {
		e = io.EOF
	}
	return "", e
}

func showHelp(w io.Writer) {
	fmt.Fprint(w, `
You can:
  - roll an expression and show its result: <expression>
  - roll the last successful expression again: empty line
  - exit: q

Expressions contain non-negative integers, arithmetic operators (+, -, *, /),
brackets, and dice sets: [<count>]d<faces>, e.g. 3d6, d20, or (1+1)d(2*3).
Count and faces are integers or bracketed expressions. Count defaults to 1.
Division truncates toward zero. Unary sign applies to a whole dice set,
"-2d4" means "negate the roll of 2d4".

`)
}

// repl runs interactive prompt on standard input and output, returns exit code.
func repl(opts options) int {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		state, e := term.MakeRaw(fd)
		if e == nil {
			defer term.Restore(fd, state)
			t := term.NewTerminal(struct {
				io.Reader
				io.Writer
			}{os.Stdin, os.Stdout}, prompt)
			return loop(t, t, opts)
		}
	}

	return loop(newScanReader(os.Stdin, os.Stdout), os.Stdout, opts)
}

func loop(in lineReader, w io.Writer, opts options) int {
	rep := newReporter(w, opts)
	fmt.Fprintln(w, `Input a dice expression to roll, "help" for quick help, "q" to exit.`)
	last := ""

	for {
		input, e := in.ReadLine()
		if e != nil {
			break
		}

		input = strings.TrimSpace(input)
		switch {
		case input == "":
			if last == "" {
				continue
			}
			input = last

		case strings.EqualFold(input, "q"):
			return 0

		case input == "help":
			showHelp(w)
			continue
		}

		if rep.run(context.Background(), input) == nil {
			last = input
		}
	}

	fmt.Fprintln(w)
	return 0
}
