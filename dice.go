/*
Package dice evaluates tabletop dice expressions like "2d6 + 3" or "d(1d4 + 2) * 10".

Consists of subpackages:
  - errors: error type and error classes used by other subpackages;
  - lexer: lexical analyzer producing tokens with line and column information;
  - parser: recursive-descent parser building operation trees;
  - optree: operation tree nodes, random sources, and tree traversal;
  - cmd/dice: command line roller and interactive prompt.

Typical usage is either a single call to Roll or parsing an expression once
and evaluating the returned tree as many times as needed:

	op, e := dice.Parse("3d6")
	...
	x, e := op.Evaluate(optree.DefaultRand())

Every evaluation of a tree rolls its dice anew.
*/
package dice

import (
	"github.com/ava12/dice/lexer"
	"github.com/ava12/dice/optree"
	"github.com/ava12/dice/parser"
)

var (
	defaultParser    = parser.New(0)
	comparisonParser = parser.New(lexer.Comparisons)
)

// Parse converts expression to operation tree.
// Returns *errors.Error with lexer or parser error code on failure.
func Parse(text string) (optree.Operation, error) {
	return defaultParser.Parse(text)
}

// ParseWith converts expression to operation tree using given lexer flags.
func ParseWith(text string, flags lexer.Flags) (optree.Operation, error) {
	if flags == 0 {
		return defaultParser.Parse(text)
	}
	if flags == lexer.Comparisons {
		return comparisonParser.Parse(text)
	}

	return parser.New(flags).Parse(text)
}

// Roll parses and evaluates expression once using default random source.
func Roll(text string) (int, error) {
	return RollWith(text, optree.DefaultRand())
}

// RollWith parses and evaluates expression once using r as random source.
// Returns *errors.Error with lexer, parser, or runtime error code on failure.
func RollWith(text string, r optree.Rand) (int, error) {
	op, e := Parse(text)
	if e != nil {
		return 0, e
	}

	return op.Evaluate(r)
}
