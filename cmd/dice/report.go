package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/ava12/dice"
	err "github.com/ava12/dice/errors"
	"github.com/ava12/dice/optree"
)

const histogramWidth = 40

var errorKinds = map[int]string{
	err.LexicalErrors: "lexical error",
	err.SyntaxErrors:  "syntax error",
	err.RuntimeErrors: "runtime error",
}

type reporter struct {
	w           io.Writer
	opts        options
	rand        optree.Rand
	errorColor  *color.Color
	resultColor *color.Color
	treeColor   *color.Color
}

func newReporter(w io.Writer, opts options) *reporter {
	r := &reporter{
		w:           w,
		opts:        opts,
		rand:        optree.DefaultRand(),
		errorColor:  color.New(color.FgRed),
		resultColor: color.New(color.Bold),
		treeColor:   color.New(color.FgCyan),
	}
	if opts.seed != 0 {
		r.rand = optree.NewRand(r.opts.seed)
	}
	return r
}

// run parses and rolls expression, reporting either the result or the error.
func (r *reporter) run(ctx context.Context, expr string) error {
	op, e := dice.ParseWith(expr, r.opts.flags)
	if e != nil {
		r.writeError(e)
		return e
	}

	if r.opts.showTree {
		r.writeTree(op)
	}

	if r.opts.count <= 1 {
		x, e := op.Evaluate(r.rand)
		if e != nil {
			r.writeError(e)
			return e
		}

		fmt.Fprintf(r.w, "%s = %s\n", expr, r.resultColor.Sprint(x))
		return nil
	}

	results, e := dice.Sample(ctx, op, r.opts.count, r.opts.workers, r.opts.seed)
	if e != nil {
		r.writeError(e)
		return e
	}

	r.writeSummary(op, dice.Summarize(results))
	return nil
}

func (r *reporter) writeError(e error) {
	kind := "error"
	var ee *err.Error
	if errors.As(e, &ee) && errorKinds[ee.Class()] != "" {
		kind = errorKinds[ee.Class()]
	}
	fmt.Fprintln(r.w, r.errorColor.Sprintf(" ! %s: %s", kind, e.Error()))
}

func (r *reporter) writeTree(op optree.Operation) {
	optree.Walk(op, optree.WalkLtr, func(stat optree.WalkStat) optree.WalkerFlags {
		fmt.Fprintln(r.w, r.treeColor.Sprint(strings.Repeat("  ", stat.Level)+optree.Label(stat.Op)))
		return 0
	})
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}

func (r *reporter) writeSummary(op optree.Operation, s dice.Summary) {
	fmt.Fprintln(r.w, r.resultColor.Sprint(op.String()))

	table := tablewriter.NewWriter(r.w)
	table.SetHeader([]string{"rolls", "min", "max", "mean", "std dev", "median"})
	table.Append([]string{
		strconv.Itoa(s.Count),
		strconv.Itoa(s.Min),
		strconv.Itoa(s.Max),
		formatFloat(s.Mean),
		formatFloat(s.StdDev),
		formatFloat(s.Median),
	})
	table.Render()

	most := 0
	for _, n := range s.Counts {
		most = max(most, n)
	}

	hist := tablewriter.NewWriter(r.w)
	hist.SetHeader([]string{"value", "count", "%", ""})
	hist.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})
	for _, x := range slices.Sorted(maps.Keys(s.Counts)) {
		n := s.Counts[x]
		hist.Append([]string{
			strconv.Itoa(x),
			strconv.Itoa(n),
			formatFloat(float64(n) * 100 / float64(s.Count)),
			strings.Repeat("#", max(1, n*histogramWidth/most)),
		})
	}
	hist.Render()
}
