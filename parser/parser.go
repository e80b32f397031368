/*
Package parser builds operation trees from dice expressions.

Grammar, from the loosest binding rule to the tightest
(compare level exists only if lexer.Comparisons flag is set):

	$int = /0|[1-9][0-9]{0,}/; $op = /[-+*\/()dD]|<>|<=|>=|[<>=]/;

	expr = compare;
	compare = additive, [('<' | '>' | '=' | '<=' | '>=' | '<>'), additive];
	additive = multiplic, {('+' | '-'), multiplic};
	multiplic = signed, {('*' | '/'), signed};
	signed = ['+' | '-'], dice-set;
	dice-set = value, ['d', value] | 'd', value;
	value = $int | '(', expr, ')';

Binary operators are left associative, comparison is not associative.
A sign applies to the whole dice set, so "-1d6" negates the roll.
*/
package parser

import (
	"github.com/ava12/dice/lexer"
	"github.com/ava12/dice/optree"
)

const (
	expectOperand = "operand"
	expectValue   = "integer or \"(\""
	expectClose   = "\")\""
	expectEnd     = "end of input"
)

var additiveOps = map[lexer.Type]optree.Operator{
	lexer.Plus:  optree.Add,
	lexer.Minus: optree.Sub,
}

var multiplicOps = map[lexer.Type]optree.Operator{
	lexer.Multiply: optree.Mul,
	lexer.Divide:   optree.Div,
}

var compareOps = map[lexer.Type]optree.Operator{
	lexer.Less:         optree.Less,
	lexer.Greater:      optree.Greater,
	lexer.Equal:        optree.Equal,
	lexer.LessEqual:    optree.LessEqual,
	lexer.GreaterEqual: optree.GreaterEqual,
	lexer.NotEqual:     optree.NotEqual,
}

// Parser converts expression text to operation tree.
// Parser keeps no state between calls, so it is safe for concurrent use.
type Parser struct {
	flags lexer.Flags
}

// New creates parser, flags are passed to lexer.
func New(flags lexer.Flags) *Parser {
	return &Parser{flags}
}

// Parse is the same as ParseNamed with empty name.
func (p *Parser) Parse(text string) (optree.Operation, error) {
	return p.ParseNamed("", text)
}

// ParseNamed parses the whole text as a single expression.
// name is used in error messages.
// Returns *errors.Error containing lexer or parser error code on failure.
func (p *Parser) ParseNamed(name, text string) (optree.Operation, error) {
	pc := newParseContext(p.flags)
	pc.lexer.SetNamedInput(name, text)
	return pc.parse()
}

type parseContext struct {
	lexer  *lexer.Lexer
	token  *lexer.Token
	parens []*lexer.Token
}

func newParseContext(flags lexer.Flags) *parseContext {
	return &parseContext{lexer: lexer.New(flags)}
}

func (pc *parseContext) parse() (optree.Operation, error) {
	e := pc.next()
	if e != nil {
		return nil, e
	}

	op, e := pc.expression()
	if e != nil {
		return nil, e
	}

	if pc.token.Type() != lexer.End {
		return nil, pc.unexpected(expectEnd)
	}

	return op, nil
}

func (pc *parseContext) next() error {
	t, e := pc.lexer.Next()
	if e == nil {
		pc.token = t
	}
	return e
}

func (pc *parseContext) unexpected(expected string) error {
	t := pc.token
	switch t.Type() {
	case lexer.End:
		if len(pc.parens) > 0 {
			return unclosedParenthesisError(t, pc.parens[len(pc.parens)-1])
		}
		return unexpectedEndError(t, expected)

	case lexer.RightParenthesis:
		if len(pc.parens) == 0 {
			return unopenedParenthesisError(t)
		}
		return incompleteParenthesesError(t, pc.parens[len(pc.parens)-1], expected)

	default:
		return unexpectedTokenError(t, expected)
	}
}

func (pc *parseContext) expression() (optree.Operation, error) {
	left, e := pc.additive()
	if e != nil || pc.lexer.Flags()&lexer.Comparisons == 0 {
		return left, e
	}

	op, found := compareOps[pc.token.Type()]
	if !found {
		return left, nil
	}

	e = pc.next()
	if e != nil {
		return nil, e
	}

	right, e := pc.additive()
	if e != nil {
		return nil, e
	}

	return optree.NewBinaryOp(op, left, right), nil
}

func (pc *parseContext) additive() (optree.Operation, error) {
	return pc.binaryChain(additiveOps, pc.multiplic)
}

func (pc *parseContext) multiplic() (optree.Operation, error) {
	return pc.binaryChain(multiplicOps, pc.signed)
}

func (pc *parseContext) binaryChain(ops map[lexer.Type]optree.Operator, operand func() (optree.Operation, error)) (optree.Operation, error) {
	left, e := operand()
	if e != nil {
		return nil, e
	}

	for {
		op, found := ops[pc.token.Type()]
		if !found {
			return left, nil
		}

		e = pc.next()
		if e != nil {
			return nil, e
		}

		right, e := operand()
		if e != nil {
			return nil, e
		}

		left = optree.NewBinaryOp(op, left, right)
	}
}

func (pc *parseContext) signed() (optree.Operation, error) {
	sign, signed := additiveOps[pc.token.Type()]
	if signed {
		e := pc.next()
		if e != nil {
			return nil, e
		}
	}

	op, e := pc.diceSet()
	if e != nil {
		return nil, e
	}

	if op == nil {
		return nil, pc.unexpected(expectOperand)
	}

	if signed {
		op = optree.NewUnaryOp(sign, op)
	}
	return op, nil
}

// diceSet returns nil, nil if current token cannot start a dice set.
func (pc *parseContext) diceSet() (optree.Operation, error) {
	var count optree.Operation
	if pc.token.Type() != lexer.Die {
		var e error
		count, e = pc.value()
		if e != nil || count == nil || pc.token.Type() != lexer.Die {
			return count, e
		}
	}

	e := pc.next()
	if e != nil {
		return nil, e
	}

	faces, e := pc.value()
	if e != nil {
		return nil, e
	}

	if faces == nil {
		return nil, pc.unexpected(expectValue)
	}

	return optree.NewDiceRoll(count, faces), nil
}

// value returns nil, nil if current token cannot start a value.
func (pc *parseContext) value() (optree.Operation, error) {
	switch pc.token.Type() {
	case lexer.Integer:
		op := optree.NewLiteral(pc.token.Value())
		return op, pc.next()

	case lexer.LeftParenthesis:
		return pc.enclosed()

	default:
		return nil, nil
	}
}

func (pc *parseContext) enclosed() (optree.Operation, error) {
	pc.parens = append(pc.parens, pc.token)
	e := pc.next()
	if e != nil {
		return nil, e
	}

	op, e := pc.expression()
	if e != nil {
		return nil, e
	}

	if pc.token.Type() != lexer.RightParenthesis {
		return nil, pc.unexpected(expectClose)
	}

	pc.parens = pc.parens[:len(pc.parens)-1]
	return op, pc.next()
}
