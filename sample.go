package dice

import (
	"context"
	"math/rand/v2"
	"runtime"

	"github.com/aclements/go-moremath/stats"
	"golang.org/x/sync/errgroup"

	"github.com/ava12/dice/optree"
)

// Sample evaluates op n times using up to workers goroutines (GOMAXPROCS if workers <= 0).
// Each goroutine has its own random source seeded with seed + goroutine index,
// so a non-zero seed with the same number of workers gives the same results.
// Zero seed means random seeds.
// Returns the first evaluation error or context error, if any.
func Sample(ctx context.Context, op optree.Operation, n, workers int, seed uint64) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	results := make([]int, n)
	chunk := (n + workers - 1) / workers
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		from := i * chunk
		to := min(from+chunk, n)
		if from >= to {
			break
		}

		r := workerRand(seed, i)
		g.Go(func() error {
			for j := from; j < to; j++ {
				if e := ctx.Err(); e != nil {
					return e
				}

				x, e := op.Evaluate(r)
				if e != nil {
					return e
				}

				results[j] = x
			}
			return nil
		})
	}

	if e := g.Wait(); e != nil {
		return nil, e
	}

	return results, nil
}

func workerRand(seed uint64, index int) optree.Rand {
	if seed == 0 {
		return optree.NewRand(rand.Uint64())
	}

	return optree.NewRand(seed + uint64(index))
}

// Summary describes a sample of results.
type Summary struct {
	Count    int
	Min, Max int
	Mean     float64
	StdDev   float64
	Median   float64

	// Counts maps each result to the number of its occurrences.
	Counts map[int]int
}

// Summarize computes Summary for results. Float fields of empty results summary are 0.
func Summarize(results []int) Summary {
	s := Summary{Count: len(results), Counts: make(map[int]int)}
	if len(results) == 0 {
		return s
	}

	sample := stats.Sample{Xs: make([]float64, len(results))}
	s.Min, s.Max = results[0], results[0]
	for i, x := range results {
		sample.Xs[i] = float64(x)
		s.Counts[x]++
		s.Min = min(s.Min, x)
		s.Max = max(s.Max, x)
	}

	sample.Sort()
	s.Mean = sample.Mean()
	s.StdDev = sample.StdDev()
	s.Median = sample.Quantile(0.5)
	return s
}
