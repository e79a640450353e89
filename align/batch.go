package align

import "github.com/samber/lo"

// ComputeBatch aligns a heterogeneous-length collection of pairs,
// returning one score per input pair in the same order. Pairs sharing an
// exact (len(S1), len(S2)) are grouped and swept through ComputeVector
// together in chunks of at most maxLanes pairs (the element width's SIMD
// lane count); a pair with no same-length partner runs as a one-pair
// chunk. Chunks are distributed across the engine's worker pool, which
// is the only goroutine-spawning point in the package.
func (e *Engine) ComputeBatch(pairs []Pair) ([]int64, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	type indexed struct {
		idx  int
		pair Pair
	}
	withIdx := make([]indexed, len(pairs))
	for i, p := range pairs {
		withIdx[i] = indexed{idx: i, pair: p}
	}

	buckets := lo.GroupBy(withIdx, func(it indexed) [2]int {
		return [2]int{len(it.pair.S1), len(it.pair.S2)}
	})

	type chunk struct {
		items []indexed
	}
	var chunks []chunk
	for _, items := range buckets {
		for start := 0; start < len(items); start += e.maxLanes {
			end := min(start+e.maxLanes, len(items))
			chunks = append(chunks, chunk{items: items[start:end]})
		}
	}

	results := make([]int64, len(pairs))
	errs := make([]error, len(chunks))

	e.pool.ParallelForAtomic(len(chunks), func(i int) {
		items := chunks[i].items
		batchPairs := lo.Map(items, func(it indexed, _ int) Pair { return it.pair })
		scores, err := e.ComputeVector(batchPairs)
		if err != nil {
			errs[i] = err
			return
		}
		for k, it := range items {
			results[it.idx] = scores[k]
		}
	})

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
