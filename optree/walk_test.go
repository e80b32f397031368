package optree

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleTree() Operation {
	return NewBinaryOp(Add, lit(1), NewDiceRoll(lit(2), lit(6)))
}

func TestWalk(t *testing.T) {
	samples := []struct {
		mode     WalkMode
		stopAt   string
		flags    WalkerFlags
		expected []string
	}{
		{WalkLtr, "", 0, []string{"op + 0", "1 1", "roll 1", "2 2", "6 2"}},
		{WalkRtl, "", 0, []string{"op + 0", "roll 1", "6 2", "2 2", "1 1"}},
		{WalkLtr, "roll", WalkerSkipChildren, []string{"op + 0", "1 1", "roll 1"}},
		{WalkLtr, "2", WalkerSkipSiblings, []string{"op + 0", "1 1", "roll 1", "2 2"}},
		{WalkRtl, "roll", WalkerSkipSiblings, []string{"op + 0", "roll 1", "6 2", "2 2"}},
		{WalkLtr, "1", WalkerStop, []string{"op + 0", "1 1"}},
		{WalkRtl, "6", WalkerStop, []string{"op + 0", "roll 1", "6 2"}},
	}

	for i, s := range samples {
		var got []string
		Walk(sampleTree(), s.mode, func(stat WalkStat) WalkerFlags {
			label := Label(stat.Op)
			got = append(got, label+" "+strconv.Itoa(stat.Level))
			if label == s.stopAt {
				return s.flags
			}
			return 0
		})
		if diff := cmp.Diff(s.expected, got); diff != "" {
			t.Errorf("sample #%d: unexpected visits (-expected +got):\n%s", i, diff)
		}
	}
}

func TestWalkParents(t *testing.T) {
	root := sampleTree()
	roll := root.(*BinaryOp).Right
	parents := make(map[string]Operation)
	Walk(root, WalkLtr, func(stat WalkStat) WalkerFlags {
		parents[Label(stat.Op)] = stat.Parent
		return 0
	})

	if parents["op +"] != nil {
		t.Errorf("expecting nil parent for root, got %s", parents["op +"])
	}
	if parents["1"] != root || parents["roll"] != root {
		t.Errorf("expecting root as parent of its operands")
	}
	if parents["2"] != roll || parents["6"] != roll {
		t.Errorf("expecting dice roll as parent of its operands")
	}
}

func TestWalkNil(t *testing.T) {
	Walk(nil, WalkLtr, func(WalkStat) WalkerFlags {
		t.Fatal("visitor called for nil tree")
		return 0
	})
}

func TestChildren(t *testing.T) {
	test := func(op Operation, expected int) {
		if got := len(Children(op)); got != expected {
			t.Errorf("%s: expecting %d children, got %d", op, expected, got)
		}
	}

	test(lit(1), 0)
	test(NewUnaryOp(Sub, lit(1)), 1)
	test(NewBinaryOp(Mul, lit(1), lit(2)), 2)
	test(NewDiceRoll(nil, lit(2)), 2)
	test(NewBinaryOp(LessEqual, lit(1), lit(2)), 2)
}

func TestLabel(t *testing.T) {
	samples := []struct {
		op       Operation
		expected string
	}{
		{lit(12), "12"},
		{NewUnaryOp(Sub, lit(1)), "sign -"},
		{NewBinaryOp(Div, lit(1), lit(2)), "op /"},
		{NewBinaryOp(GreaterEqual, lit(1), lit(2)), "op >="},
		{NewDiceRoll(nil, lit(2)), "roll"},
	}

	for i, s := range samples {
		if got := Label(s.op); got != s.expected {
			t.Errorf("sample #%d: expecting %q, got %q", i, s.expected, got)
		}
	}
}
