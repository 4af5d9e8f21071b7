package vnd

// combosCache caches combinations(total, k) across calls within a single
// Run, since the same (total, k) pair is recomputed every time n fails to
// improve and the search retries the same width (spec §4.6: "combinations
// of student ids... cached across calls").
type combosCache struct {
	total int
	byK   map[int][][]int
}

func newCombosCache(total int) *combosCache {
	return &combosCache{total: total, byK: make(map[int][][]int)}
}

// combinations returns every k-subset of {0, ..., total-1}, each in
// ascending order, enumerated in lexicographic order.
func (c *combosCache) combinations(k int) [][]int {
	if cached, ok := c.byK[k]; ok {
		return cached
	}
	if k <= 0 || k > c.total {
		c.byK[k] = nil
		return nil
	}

	var out [][]int
	combo := make([]int, k)
	var recurse func(start, depth int)
	recurse = func(start, depth int) {
		if depth == k {
			out = append(out, append([]int(nil), combo...))
			return
		}
		for v := start; v < c.total; v++ {
			combo[depth] = v
			recurse(v+1, depth+1)
		}
	}
	recurse(0, 0)

	c.byK[k] = out
	return out
}
