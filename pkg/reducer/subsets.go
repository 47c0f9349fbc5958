package reducer

import (
	"github.com/rmohr/dhskernel/pkg/hypergraph"
	"gonum.org/v1/gonum/stat/combin"
)

// forEachSubset calls fn for every size-subset of vertices in lexicographic order of positions.
// The slice passed to fn is reused between calls.
func forEachSubset(vertices []hypergraph.Vertex, size int, fn func(subset []hypergraph.Vertex) error) error {
	if size < 0 || size > len(vertices) {
		return nil
	}
	gen := combin.NewCombinationGenerator(len(vertices), size)
	idx := make([]int, size)
	subset := make([]hypergraph.Vertex, size)
	for gen.Next() {
		gen.Combination(idx)
		for i, j := range idx {
			subset[i] = vertices[j]
		}
		if err := fn(subset); err != nil {
			return err
		}
	}
	return nil
}

// boundPow returns base^exp and saturates at the largest int instead of overflowing.
func boundPow(base, exp int) int {
	const maxInt = int(^uint(0) >> 1)
	result := 1
	for i := 0; i < exp; i++ {
		if base != 0 && result > maxInt/base {
			return maxInt
		}
		result *= base
	}
	return result
}
