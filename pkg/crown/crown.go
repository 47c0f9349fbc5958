package crown

import (
	"fmt"

	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/rmohr/dhskernel/pkg/hypergraph"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat/combin"
)

// Pair matches a (d-1)-sized member of W with a vertex outside of V(W).
type Pair struct {
	Edge   hypergraph.EdgeID
	Vertex hypergraph.Vertex
}

// Crown is the part of the bipartite graph between I and H for which a matching was found.
// Every vertex in Vertices can be deleted from the instance.
type Crown struct {
	Vertices []hypergraph.Vertex
	Edges    []hypergraph.EdgeID
	Pairs    []Pair
}

// Saturated reports whether every matched edge received a distinct partner.
func (c *Crown) Saturated() bool {
	return c != nil && len(c.Pairs) == len(c.Edges)
}

func (c *Crown) Empty() bool {
	return c == nil || len(c.Vertices) == 0
}

func (c *Crown) String() string {
	if c == nil {
		return "no crown"
	}
	return fmt.Sprintf("crown with %d vertices, %d edges, %d pairs", len(c.Vertices), len(c.Edges), len(c.Pairs))
}

// Graph is the bipartite graph between the independent vertices I and the (d-1)-sized members H of W.
type Graph struct {
	I         []hypergraph.Vertex
	H         []hypergraph.EdgeID
	neighbors map[hypergraph.EdgeID][]hypergraph.Vertex
}

// NewGraph derives I and H from the instance and W. A vertex v of I is adjacent to h in H if the
// instance contains an edge of size d which equals h ∪ {v}.
func NewGraph(h *hypergraph.Instance, w hypergraph.Membership) *Graph {
	d := h.D()
	wIDs := w.IDs()
	covered := h.NewSet(h.VerticesOf(wIDs...)...)

	g := &Graph{neighbors: map[hypergraph.EdgeID][]hypergraph.Vertex{}}
	for _, v := range h.ActiveVertices() {
		if !covered.Has(v) {
			g.I = append(g.I, v)
		}
	}
	independent := h.NewSet(g.I...)

	var full []hypergraph.VertexSet
	for _, id := range h.Edges() {
		if h.EdgeDegree(id) == d {
			full = append(full, h.Edge(id))
		}
	}
	for _, id := range wIDs {
		if h.EdgeDegree(id) != d-1 {
			continue
		}
		g.H = append(g.H, id)
		member := h.Edge(id)
		for _, edge := range full {
			if !member.SubsetOf(edge) {
				continue
			}
			diff := edge.Difference(member)
			if len(diff) == 1 && independent.Has(diff[0]) && !slices.Contains(g.neighbors[id], diff[0]) {
				g.neighbors[id] = append(g.neighbors[id], diff[0])
			}
		}
		slices.Sort(g.neighbors[id])
	}
	return g
}

// Neighbors returns the vertices of I adjacent to the member id of H, ascending.
func (g *Graph) Neighbors(id hypergraph.EdgeID) []hypergraph.Vertex {
	return slices.Clone(g.neighbors[id])
}

// Construct searches a crown in the graph between I and H. It returns nil if |I| <= |H| or if no
// group of H has a matching into I.
func Construct(h *hypergraph.Instance, w hypergraph.Membership) (*Crown, error) {
	g := NewGraph(h, w)
	logrus.Debugf("crown graph has %d independent vertices and %d candidate edges", len(g.I), len(g.H))
	if len(g.I) <= len(g.H) {
		return nil, nil
	}
	s := &search{graph: g, crown: &Crown{}}
	remaining := map[hypergraph.Vertex]bool{}
	for _, v := range g.I {
		remaining[v] = true
	}
	found, err := s.find(slices.Clone(g.H), remaining)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	slices.Sort(s.crown.Vertices)
	return s.crown, nil
}

type search struct {
	graph *Graph
	crown *Crown
}

func (s *search) neighborhood(group []hypergraph.EdgeID, remaining map[hypergraph.Vertex]bool) []hypergraph.Vertex {
	var out []hypergraph.Vertex
	for _, id := range group {
		for _, v := range s.graph.neighbors[id] {
			if remaining[v] && !slices.Contains(out, v) {
				out = append(out, v)
			}
		}
	}
	slices.Sort(out)
	return out
}

// find matches groups of hs into the remaining vertices and records them in the crown.
// It reports whether anything was matched.
func (s *search) find(hs []hypergraph.EdgeID, remaining map[hypergraph.Vertex]bool) (bool, error) {
	if len(hs) == 0 {
		return false, nil
	}
	if len(hs) == 1 {
		n := s.neighborhood(hs, remaining)
		if len(n) == 0 {
			return false, nil
		}
		s.record(hs, []hypergraph.Vertex{n[0]}, []Pair{{Edge: hs[0], Vertex: n[0]}})
		delete(remaining, n[0])
		return true, nil
	}

	for size := 1; size < len(hs); size++ {
		gen := combin.NewCombinationGenerator(len(hs), size)
		idx := make([]int, size)
		for gen.Next() {
			gen.Combination(idx)
			group := make([]hypergraph.EdgeID, size)
			for i, j := range idx {
				group[i] = hs[j]
			}
			n := s.neighborhood(group, remaining)
			switch {
			case len(n) == 0:
				continue
			case len(n) == size:
				pairs, err := s.match(group, n)
				if err != nil {
					return false, err
				}
				s.record(group, n, pairs)
				for _, v := range n {
					delete(remaining, v)
				}
			default:
				matched, vertices, pairs := s.greedy(group, remaining)
				if len(pairs) == 0 {
					continue
				}
				s.record(matched, vertices, pairs)
				group = matched
				for _, v := range vertices {
					delete(remaining, v)
				}
			}
			logrus.Debugf("matched group %v into %v", group, n)
			if _, err := s.find(without(hs, group), remaining); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

func (s *search) record(edges []hypergraph.EdgeID, vertices []hypergraph.Vertex, pairs []Pair) {
	s.crown.Edges = append(s.crown.Edges, edges...)
	s.crown.Vertices = append(s.crown.Vertices, vertices...)
	s.crown.Pairs = append(s.crown.Pairs, pairs...)
}

// match computes a maximum matching between group and its neighbourhood n with Hopcroft-Karp.
func (s *search) match(group []hypergraph.EdgeID, n []hypergraph.Vertex) ([]Pair, error) {
	left := make([]interface{}, len(group))
	for i, id := range group {
		left[i] = id
	}
	right := make([]interface{}, len(n))
	for i, v := range n {
		right[i] = v
	}
	graph, err := bipartitegraph.NewBipartiteGraph(left, right, func(l, r interface{}) (bool, error) {
		return slices.Contains(s.graph.neighbors[l.(hypergraph.EdgeID)], r.(hypergraph.Vertex)), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build matching graph: %v", err)
	}
	var pairs []Pair
	for _, e := range graph.LargestMatching() {
		l, r := e.Node1, e.Node2
		if l >= len(left) {
			l, r = r, l
		}
		pairs = append(pairs, Pair{Edge: group[l], Vertex: n[r-len(left)]})
	}
	slices.SortFunc(pairs, func(a, b Pair) int { return int(a.Edge) - int(b.Edge) })
	return pairs, nil
}

// greedy pairs every member of group with its lowest neighbour which is still unused.
func (s *search) greedy(group []hypergraph.EdgeID, remaining map[hypergraph.Vertex]bool) ([]hypergraph.EdgeID, []hypergraph.Vertex, []Pair) {
	used := map[hypergraph.Vertex]bool{}
	var edges []hypergraph.EdgeID
	var vertices []hypergraph.Vertex
	var pairs []Pair
	for _, id := range group {
		for _, v := range s.graph.neighbors[id] {
			if remaining[v] && !used[v] {
				used[v] = true
				edges = append(edges, id)
				vertices = append(vertices, v)
				pairs = append(pairs, Pair{Edge: id, Vertex: v})
				break
			}
		}
	}
	return edges, vertices, pairs
}

func without(hs []hypergraph.EdgeID, group []hypergraph.EdgeID) []hypergraph.EdgeID {
	var out []hypergraph.EdgeID
	for _, id := range hs {
		if !slices.Contains(group, id) {
			out = append(out, id)
		}
	}
	return out
}
