package solver

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/rmohr/dhskernel/pkg/hypergraph"
	"github.com/rmohr/dhskernel/pkg/sat"
)

func newInstance(g *WithT, n, d, k int, edges ...[]int) *hypergraph.Instance {
	h, err := hypergraph.New(n, len(edges), d, k, hypergraph.FromInts(edges))
	g.Expect(err).ToNot(HaveOccurred())
	return h
}

func TestSolve(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		k        int
		edges    [][]int
		partial  []hypergraph.Vertex
		expected []hypergraph.Vertex
		feasible bool
	}{
		{
			name:     "should return the partial solution without edges",
			n:        3,
			k:        0,
			edges:    [][]int{},
			partial:  []hypergraph.Vertex{2},
			expected: []hypergraph.Vertex{2},
			feasible: true,
		},
		{
			name:     "should fail without budget",
			n:        3,
			k:        0,
			edges:    [][]int{{0, 1}},
			feasible: false,
		},
		{
			name:     "should prefer the highest vertex",
			n:        3,
			k:        1,
			edges:    [][]int{{0, 1, 2}},
			expected: []hypergraph.Vertex{2},
			feasible: true,
		},
		{
			name:     "should backtrack to a shared vertex",
			n:        4,
			k:        1,
			edges:    [][]int{{0, 3}, {0, 2}, {0, 1}},
			expected: []hypergraph.Vertex{0},
			feasible: true,
		},
		{
			name:     "should prepend the partial solution",
			n:        5,
			k:        2,
			edges:    [][]int{{0, 1}, {2, 3}},
			partial:  []hypergraph.Vertex{4},
			expected: []hypergraph.Vertex{4, 3, 1},
			feasible: true,
		},
		{
			name:     "should detect an odd cycle needing more budget",
			n:        5,
			k:        2,
			edges:    [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}},
			feasible: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			h := newInstance(g, tt.n, 3, tt.k, tt.edges...)
			before := h.String()

			solution, ok := Solve(h, tt.partial)

			g.Expect(ok).To(Equal(tt.feasible))
			g.Expect(solution).To(Equal(tt.expected))
			g.Expect(h.String()).To(Equal(before))
		})
	}
}

func TestSolveAgreesWithSAT(t *testing.T) {
	g := NewGomegaWithT(t)
	edges := [][]int{
		{0, 1, 2}, {2, 3, 4}, {4, 5, 6}, {6, 7, 8}, {8, 9, 0}, {1, 4, 7}, {3, 6, 9}, {2, 5, 8},
	}
	for k := 0; k <= 5; k++ {
		h := newInstance(g, 10, 3, k, edges...)

		solution, ok := Solve(h, nil)
		_, satOK := sat.Solve(h)

		g.Expect(ok).To(Equal(satOK), "budget %d", k)
		if ok {
			g.Expect(h.Covers(solution)).To(BeTrue())
			g.Expect(len(solution)).To(BeNumerically("<=", k))
		}
	}
}
