// Package lexer defines lexical analyzer for dice expressions.
package lexer

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	err "github.com/ava12/dice/errors"
)

// Error codes used by lexer:
const (
	// WrongCharError indicates that lexer cannot fetch any token at current position.
	// Error message contains the rune at current source position.
	WrongCharError = err.LexicalErrors + iota

	// LeadingZeroError indicates a multi-digit integer literal starting with 0.
	LeadingZeroError

	// IntegerRangeError indicates an integer literal that does not fit into int.
	IntegerRangeError
)

// Flags modify the set of recognized tokens.
type Flags int

const (
	// Comparisons enables comparison operator tokens: < > = <= >= <>.
	Comparisons Flags = 1 << iota
)

var signTypes = map[byte]Type{
	'+': Plus,
	'-': Minus,
	'*': Multiply,
	'/': Divide,
	'(': LeftParenthesis,
	')': RightParenthesis,
	'd': Die,
	'D': Die,
}

// Lexer splits input text into tokens, tracking line and column of each one.
// Lexer is not safe for concurrent use.
type Lexer struct {
	flags     Flags
	name      string
	input     string
	pos       int
	line, col int
}

// New creates a lexer with empty input.
func New(flags Flags) *Lexer {
	l := &Lexer{flags: flags}
	l.SetInput("")
	return l
}

// Flags returns flags the lexer was created with.
func (l *Lexer) Flags() Flags {
	return l.flags
}

// SetInput is the same as SetNamedInput with empty name.
func (l *Lexer) SetInput(text string) {
	l.SetNamedInput("", text)
}

// SetNamedInput resets lexer to the start of text. name is used in tokens and error messages.
func (l *Lexer) SetNamedInput(name, text string) {
	l.name = name
	l.input = text
	l.pos = 0
	l.line = 1
	l.col = 1
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (l *Lexer) wrongCharError(pos, line, col int) *err.Error {
	r, _ := utf8.DecodeRuneInString(l.input[pos:])
	msg := fmt.Sprintf("wrong char %q (u+%x)", r, r)
	return err.New(WrongCharError, msg, l.name, line, col)
}

func (l *Lexer) leadingZeroError(text string, line, col int) *err.Error {
	return err.New(LeadingZeroError, fmt.Sprintf("leading zero in integer %q", text), l.name, line, col)
}

func (l *Lexer) integerRangeError(text string, line, col int) *err.Error {
	return err.New(IntegerRangeError, fmt.Sprintf("integer %q out of range", text), l.name, line, col)
}

// Next fetches token starting at current position and advances current position.
// Returns End token if there is nothing left but blanks; every further call returns End token again.
// Returns nil token and *errors.Error and does not make any changes if there is a lexical error.
func (l *Lexer) Next() (*Token, error) {
	pos, line, col := l.pos, l.line, l.col
	for pos < len(l.input) && isBlank(l.input[pos]) {
		if l.input[pos] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
		pos++
	}

	if pos >= len(l.input) {
		l.pos, l.line, l.col = pos, line, col
		return NewToken(End, "", 0, l.name, line, col), nil
	}

	c := l.input[pos]
	size := 1
	tokenType, found := signTypes[c]
	value := 0

	switch {
	case isDigit(c):
		for pos+size < len(l.input) && isDigit(l.input[pos+size]) {
			size++
		}
		text := l.input[pos : pos+size]
		if size > 1 && c == '0' {
			return nil, l.leadingZeroError(text, line, col)
		}

		var e error
		value, e = strconv.Atoi(text)
		if e != nil {
			return nil, l.integerRangeError(text, line, col)
		}

		tokenType = Integer

	case found:

	case l.flags&Comparisons != 0 && (c == '<' || c == '>' || c == '='):
		tokenType, size = l.comparison(pos)

	default:
		return nil, l.wrongCharError(pos, line, col)
	}

	text := l.input[pos : pos+size]
	l.pos, l.line, l.col = pos+size, line, col+size
	return NewToken(tokenType, text, value, l.name, line, col), nil
}

func (l *Lexer) comparison(pos int) (Type, int) {
	var next byte
	if pos+1 < len(l.input) {
		next = l.input[pos+1]
	}

	switch l.input[pos] {
	case '<':
		switch next {
		case '=':
			return LessEqual, 2
		case '>':
			return NotEqual, 2
		}
		return Less, 1

	case '>':
		if next == '=' {
			return GreaterEqual, 2
		}
		return Greater, 1

	default:
		return Equal, 1
	}
}
