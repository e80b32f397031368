package optree

// Children returns direct operands of op in evaluation order.
func Children(op Operation) []Operation {
	switch o := op.(type) {
	case *UnaryOp:
		return []Operation{o.Operand}
	case *BinaryOp:
		return []Operation{o.Left, o.Right}
	case *DiceRoll:
		return []Operation{o.Count, o.Faces}
	default:
		return nil
	}
}

// Label returns short description of op itself, not including its operands.
func Label(op Operation) string {
	switch o := op.(type) {
	case *Literal:
		return o.String()
	case *UnaryOp:
		return "sign " + o.Sign.String()
	case *BinaryOp:
		return "op " + o.Op.String()
	case *DiceRoll:
		return "roll"
	default:
		return "?"
	}
}

// WalkMode defines the order of sibling visits.
type WalkMode int

const (
	WalkLtr WalkMode = 0
	WalkRtl WalkMode = 1
)

// WalkerFlags returned by visitor alter the walk.
type WalkerFlags int

const (
	// WalkerSkipChildren prevents visiting operands of current operation.
	WalkerSkipChildren WalkerFlags = 1 << iota
	// WalkerSkipSiblings prevents visiting remaining siblings of current operation.
	WalkerSkipSiblings
	// WalkerStop stops the walk.
	WalkerStop
)

// WalkStat describes visited operation.
type WalkStat struct {
	Op     Operation
	Parent Operation
	Level  int
}

// Visitor is a function called for every visited operation.
type Visitor func(stat WalkStat) WalkerFlags

// Walk visits root and its descendants depth-first, parents before children.
func Walk(root Operation, mode WalkMode, visitor Visitor) {
	if root != nil {
		walk(WalkStat{Op: root}, mode, visitor)
	}
}

func walk(stat WalkStat, mode WalkMode, v Visitor) WalkerFlags {
	flags := v(stat)
	if flags&(WalkerStop|WalkerSkipChildren) != 0 {
		return flags
	}

	ops := Children(stat.Op)
	for i := range ops {
		op := ops[i]
		if mode == WalkRtl {
			op = ops[len(ops)-1-i]
		}
		cf := walk(WalkStat{op, stat.Op, stat.Level + 1}, mode, v)
		if cf&WalkerStop != 0 {
			return WalkerStop
		}
		if cf&WalkerSkipSiblings != 0 {
			break
		}
	}
	return flags &^ WalkerSkipChildren
}
