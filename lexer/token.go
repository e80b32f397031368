package lexer

import (
	"strconv"
)

// Type identifies the kind of a token.
type Type int

// Token types. Comparison types are returned only by lexers created with Comparisons flag.
const (
	End Type = iota
	Integer
	Plus
	Minus
	Multiply
	Divide
	LeftParenthesis
	RightParenthesis
	Die
	Less
	Greater
	Equal
	LessEqual
	GreaterEqual
	NotEqual
)

var typeNames = [...]string{
	End:              "END",
	Integer:          "INTEGER",
	Plus:             "PLUS",
	Minus:            "MINUS",
	Multiply:         "MULTIPLY",
	Divide:           "DIVIDE",
	LeftParenthesis:  "LEFT_PARENTHESIS",
	RightParenthesis: "RIGHT_PARENTHESIS",
	Die:              "DIE",
	Less:             "LESS",
	Greater:          "GREATER",
	Equal:            "EQUAL",
	LessEqual:        "LESS_EQUAL",
	GreaterEqual:     "GREATER_EQUAL",
	NotEqual:         "NOT_EQUAL",
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}

	return "Type(" + strconv.Itoa(int(t)) + ")"
}

// Token is an immutable lexeme together with the position where it starts.
type Token struct {
	tokenType  Type
	text       string
	value      int
	sourceName string
	line, col  int
}

// NewToken creates a token. value is meaningful for Integer tokens only.
func NewToken(tokenType Type, text string, value int, sourceName string, line, col int) *Token {
	return &Token{tokenType, text, value, sourceName, line, col}
}

func (t *Token) Type() Type {
	return t.tokenType
}

func (t *Token) TypeName() string {
	return t.tokenType.String()
}

// Text returns source text of the token, empty for End token.
func (t *Token) Text() string {
	return t.text
}

// Value returns integer value of Integer token or 0.
func (t *Token) Value() int {
	return t.value
}

func (t *Token) SourceName() string {
	return t.sourceName
}

func (t *Token) Line() int {
	return t.line
}

func (t *Token) Col() int {
	return t.col
}

func (t *Token) String() string {
	if t.text == "" {
		return "<" + t.TypeName() + ">"
	}

	return t.text
}
