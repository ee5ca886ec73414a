package traverse

import "golang.org/x/sync/errgroup"

// forkJoin partitions src, runs process once per partition — each
// writing into its own disjoint, pre-sized output region — and
// compacts the results. outFactor is the worst-case expansion per
// input pair: 2 for an internal-node step (a hit may emit both
// children), 1 for a leaf step (a hit emits at most one result).
//
// When the partitioner returns a single range, process runs inline on
// the caller's goroutine with no errgroup involved — the single-task
// fast path.
func forkJoin(src []Pair, opts Options, outFactor int, process func(taskSrc, out []Pair) int) []Pair {
	parts := partitions(len(src), opts.NumThreads, opts.MinTraversalsPerThread)
	if len(parts) <= 1 {
		out := make([]Pair, outFactor*len(src))
		n := process(src, out)
		return out[:n]
	}

	regions := make([][]Pair, len(parts))
	counts := make([]int, len(parts))

	var g errgroup.Group
	for i, p := range parts {
		i, p := i, p
		regions[i] = make([]Pair, outFactor*(p.Hi-p.Lo))
		g.Go(func() error {
			counts[i] = process(src[p.Lo:p.Hi], regions[i])
			return nil
		})
	}
	g.Wait() // every task is pure CPU and never returns a non-nil error

	return compact(regions, counts)
}
