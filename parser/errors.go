package parser

import (
	"fmt"

	err "github.com/ava12/dice/errors"
	"github.com/ava12/dice/lexer"
)

// Error codes used by parser:
const (
	// UnexpectedTokenError indicates a token not allowed by grammar at its position.
	UnexpectedTokenError = err.SyntaxErrors + iota

	// UnexpectedEndError indicates that input ended in the middle of expression.
	UnexpectedEndError

	// UnclosedParenthesisError indicates that input ended while some "(" is not closed.
	UnclosedParenthesisError

	// IncompleteParenthesesError indicates ")" found where an operand of enclosed expression is expected, e.g. "()" or "(1+)".
	IncompleteParenthesesError

	// UnopenedParenthesisError indicates ")" with no matching "(".
	UnopenedParenthesisError
)

func posText(t *lexer.Token) string {
	return fmt.Sprintf("line %d col %d", t.Line(), t.Col())
}

func unexpectedTokenError(t *lexer.Token, expected string) *err.Error {
	return err.FormatPos(t, UnexpectedTokenError, "unexpected %s %q, expecting %s", t.TypeName(), t.Text(), expected)
}

func unexpectedEndError(t *lexer.Token, expected string) *err.Error {
	return err.FormatPos(t, UnexpectedEndError, "unexpected end of input, expecting %s", expected)
}

func unclosedParenthesisError(t, open *lexer.Token) *err.Error {
	return err.FormatPos(t, UnclosedParenthesisError, "unexpected end of input, expecting \")\" closing \"(\" at %s", posText(open))
}

func incompleteParenthesesError(t, open *lexer.Token, expected string) *err.Error {
	return err.FormatPos(t, IncompleteParenthesesError, "unexpected \")\", expecting %s inside \"(\" at %s", expected, posText(open))
}

func unopenedParenthesisError(t *lexer.Token) *err.Error {
	return err.FormatPos(t, UnopenedParenthesisError, "unexpected \")\" with no matching \"(\"")
}
