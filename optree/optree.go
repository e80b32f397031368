// Package optree defines executable operation trees produced by parser.
//
// A tree is built bottom-up, each node owns its children exclusively.
// Evaluation never modifies a tree, so the same tree may be evaluated any number of times,
// by several goroutines at once if every goroutine uses a Rand safe for that.
package optree

import (
	"math"
	"strconv"

	err "github.com/ava12/dice/errors"
)

// Error codes used by operation tree evaluation:
const (
	// DivisionByZeroError indicates that right operand of division evaluated to 0.
	DivisionByZeroError = err.RuntimeErrors + iota

	// NonPositiveFacesError indicates a dice roll with face count <= 0.
	NonPositiveFacesError

	// OverflowError indicates that an intermediate result does not fit into int.
	OverflowError

	// TooManyDiceError indicates a dice roll with dice count > MaxDice.
	TooManyDiceError
)

// MaxDice is the largest dice count a single roll may have.
const MaxDice = 1_000_000

func divisionByZeroError(op Operation) *err.Error {
	return err.Format(DivisionByZeroError, "division by zero in %s", op)
}

func nonPositiveFacesError(op Operation, faces int) *err.Error {
	return err.Format(NonPositiveFacesError, "non-positive face count %d in %s", faces, op)
}

func overflowError(op Operation) *err.Error {
	return err.Format(OverflowError, "integer overflow in %s", op)
}

func tooManyDiceError(op Operation, count int) *err.Error {
	return err.Format(TooManyDiceError, "too many dice (%d, max is %d) in %s", count, MaxDice, op)
}

// Operation is a node of operation tree.
type Operation interface {
	// Evaluate computes the value of the subtree, r is used for dice rolls.
	Evaluate(r Rand) (int, error)

	// String returns source text that parses to an equivalent tree.
	String() string
}

// Operator is an arithmetic, sign, or comparison operator.
type Operator int

const (
	Add Operator = iota
	Sub
	Mul
	Div
	Less
	Greater
	Equal
	LessEqual
	GreaterEqual
	NotEqual
)

var operatorTexts = [...]string{
	Add:          "+",
	Sub:          "-",
	Mul:          "*",
	Div:          "/",
	Less:         "<",
	Greater:      ">",
	Equal:        "=",
	LessEqual:    "<=",
	GreaterEqual: ">=",
	NotEqual:     "<>",
}

func (o Operator) String() string {
	if o >= 0 && int(o) < len(operatorTexts) {
		return operatorTexts[o]
	}

	return "Operator(" + strconv.Itoa(int(o)) + ")"
}

// IsComparison reports whether o yields 1 or 0 comparing its operands.
func (o Operator) IsComparison() bool {
	return o >= Less && o <= NotEqual
}

// Literal is a non-negative integer constant.
type Literal struct {
	Value int
}

func NewLiteral(value int) *Literal {
	return &Literal{value}
}

func (l *Literal) Evaluate(Rand) (int, error) {
	return l.Value, nil
}

func (l *Literal) String() string {
	return strconv.Itoa(l.Value)
}

// UnaryOp applies sign (Add or Sub) to its operand.
type UnaryOp struct {
	Sign    Operator
	Operand Operation
}

func NewUnaryOp(sign Operator, operand Operation) *UnaryOp {
	return &UnaryOp{sign, operand}
}

func (u *UnaryOp) Evaluate(r Rand) (int, error) {
	x, e := u.Operand.Evaluate(r)
	if e != nil || u.Sign != Sub {
		return x, e
	}

	if x == math.MinInt {
		return 0, overflowError(u)
	}

	return -x, nil
}

func (u *UnaryOp) String() string {
	if _, nested := u.Operand.(*UnaryOp); nested {
		return u.Sign.String() + "(" + u.Operand.String() + ")"
	}

	return u.Sign.String() + u.Operand.String()
}

// BinaryOp applies arithmetic or comparison operator to its operands.
type BinaryOp struct {
	Op          Operator
	Left, Right Operation
}

func NewBinaryOp(op Operator, left, right Operation) *BinaryOp {
	return &BinaryOp{op, left, right}
}

func (b *BinaryOp) Evaluate(r Rand) (int, error) {
	x, e := b.Left.Evaluate(r)
	if e != nil {
		return 0, e
	}

	y, e := b.Right.Evaluate(r)
	if e != nil {
		return 0, e
	}

	if b.Op.IsComparison() {
		if compare(b.Op, x, y) {
			return 1, nil
		}
		return 0, nil
	}

	res, ok := 0, true
	switch b.Op {
	case Add:
		res, ok = addInt(x, y)
	case Sub:
		res, ok = subInt(x, y)
	case Mul:
		res, ok = mulInt(x, y)
	case Div:
		if y == 0 {
			return 0, divisionByZeroError(b)
		}
		if x == math.MinInt && y == -1 {
			ok = false
		} else {
			res = x / y
		}
	}

	if !ok {
		return 0, overflowError(b)
	}

	return res, nil
}

func (b *BinaryOp) String() string {
	return "(" + b.Left.String() + " " + b.Op.String() + " " + b.Right.String() + ")"
}

func compare(op Operator, x, y int) bool {
	switch op {
	case Less:
		return x < y
	case Greater:
		return x > y
	case Equal:
		return x == y
	case LessEqual:
		return x <= y
	case GreaterEqual:
		return x >= y
	default:
		return x != y
	}
}

func addInt(x, y int) (int, bool) {
	res := x + y
	return res, (y > 0) == (res > x) || y == 0
}

func subInt(x, y int) (int, bool) {
	res := x - y
	return res, (y > 0) == (res < x) || y == 0
}

func mulInt(x, y int) (int, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}

	res := x * y
	if res/x != y || (x == -1 && y == math.MinInt) {
		return 0, false
	}

	return res, true
}

// DiceRoll sums Count random integers in range [1, Faces].
// Both Count and Faces are arbitrary operations evaluated anew on every roll.
type DiceRoll struct {
	Count, Faces Operation
}

// NewDiceRoll creates a dice roll, nil count means a single die.
func NewDiceRoll(count, faces Operation) *DiceRoll {
	if count == nil {
		count = NewLiteral(1)
	}
	return &DiceRoll{count, faces}
}

func (d *DiceRoll) Evaluate(r Rand) (int, error) {
	count, e := d.Count.Evaluate(r)
	if e != nil {
		return 0, e
	}

	faces, e := d.Faces.Evaluate(r)
	if e != nil {
		return 0, e
	}

	if count <= 0 {
		return 0, nil
	}
	if faces <= 0 {
		return 0, nonPositiveFacesError(d, faces)
	}
	if count > MaxDice {
		return 0, tooManyDiceError(d, count)
	}

	sum := 0
	ok := true
	for i := 0; i < count; i++ {
		sum, ok = addInt(sum, r.IntN(faces)+1)
		if !ok {
			return 0, overflowError(d)
		}
	}
	return sum, nil
}

func (d *DiceRoll) String() string {
	return operandString(d.Count) + "d" + operandString(d.Faces)
}

func operandString(op Operation) string {
	switch op.(type) {
	case *Literal, *BinaryOp:
		return op.String()
	default:
		return "(" + op.String() + ")"
	}
}
