package solver

import (
	"github.com/rmohr/dhskernel/pkg/hypergraph"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// Solve searches a hitting set of kernel with at most kernel.K() vertices by backtracking over the
// active vertices from the highest to the lowest. The first solution found is returned with
// partial prepended. The kernel is not modified.
func Solve(kernel *hypergraph.Instance, partial []hypergraph.Vertex) ([]hypergraph.Vertex, bool) {
	if kernel.EdgeCount() == 0 && kernel.K() >= 0 {
		return slices.Clone(partial), true
	}
	if kernel.K() <= 0 {
		return nil, false
	}

	s := newSearch(kernel)
	vertices := kernel.ActiveVertices()
	slices.Reverse(vertices)
	if !s.backtrack(vertices, kernel.K()) {
		logrus.Debugf("no hitting set with at most %d vertices", kernel.K())
		return nil, false
	}
	return append(slices.Clone(partial), s.chosen...), true
}

type search struct {
	edges map[hypergraph.Vertex][]int
	// hits counts the chosen vertices in every edge
	hits      []int
	uncovered int
	chosen    []hypergraph.Vertex
}

func newSearch(kernel *hypergraph.Instance) *search {
	s := &search{edges: map[hypergraph.Vertex][]int{}}
	for i, id := range kernel.Edges() {
		for _, v := range kernel.Edge(id).Vertices() {
			s.edges[v] = append(s.edges[v], i)
		}
	}
	s.hits = make([]int, kernel.EdgeCount())
	s.uncovered = kernel.EdgeCount()
	return s
}

func (s *search) include(v hypergraph.Vertex) {
	s.chosen = append(s.chosen, v)
	for _, e := range s.edges[v] {
		if s.hits[e] == 0 {
			s.uncovered--
		}
		s.hits[e]++
	}
}

func (s *search) exclude(v hypergraph.Vertex) {
	s.chosen = s.chosen[:len(s.chosen)-1]
	for _, e := range s.edges[v] {
		s.hits[e]--
		if s.hits[e] == 0 {
			s.uncovered++
		}
	}
}

// backtrack tries every vertex of candidates, highest first, as the next element of the solution.
func (s *search) backtrack(candidates []hypergraph.Vertex, budget int) bool {
	for i, v := range candidates {
		s.include(v)
		if s.uncovered == 0 {
			return true
		}
		if budget-1 > 0 && s.backtrack(candidates[i+1:], budget-1) {
			return true
		}
		s.exclude(v)
	}
	return false
}
