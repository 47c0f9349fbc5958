package crown

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/rmohr/dhskernel/pkg/hypergraph"
)

func newInstance(g *WithT, n, d, k int, edges ...[]int) *hypergraph.Instance {
	h, err := hypergraph.New(n, len(edges), d, k, hypergraph.FromInts(edges))
	g.Expect(err).ToNot(HaveOccurred())
	return h
}

func membership(ids ...hypergraph.EdgeID) hypergraph.Membership {
	m := hypergraph.Membership{}
	for _, id := range ids {
		m.Add(id)
	}
	return m
}

func TestGraph(t *testing.T) {
	g := NewGomegaWithT(t)
	h := newInstance(g, 8, 3, 2,
		[]int{0, 1}, []int{2, 3}, []int{0, 1, 4}, []int{2, 3, 5}, []int{0, 1, 6}, []int{4, 6, 7},
	)

	graph := NewGraph(h, membership(0, 1))

	g.Expect(graph.I).To(Equal([]hypergraph.Vertex{4, 5, 6, 7}))
	g.Expect(graph.H).To(Equal([]hypergraph.EdgeID{0, 1}))
	g.Expect(graph.Neighbors(0)).To(Equal([]hypergraph.Vertex{4, 6}))
	g.Expect(graph.Neighbors(1)).To(Equal([]hypergraph.Vertex{5}))
}

func TestConstructMatchesDistinctNeighbors(t *testing.T) {
	g := NewGomegaWithT(t)
	h := newInstance(g, 8, 3, 2,
		[]int{0, 1}, []int{2, 3}, []int{0, 1, 4}, []int{2, 3, 5}, []int{4, 6, 7},
	)

	c, err := Construct(h, membership(0, 1))

	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(c.Vertices).To(Equal([]hypergraph.Vertex{4, 5}))
	g.Expect(c.Edges).To(ConsistOf(hypergraph.EdgeID(0), hypergraph.EdgeID(1)))
	g.Expect(c.Pairs).To(ConsistOf(Pair{Edge: 0, Vertex: 4}, Pair{Edge: 1, Vertex: 5}))
	g.Expect(c.Saturated()).To(BeTrue())

	before := h.EdgeCount()
	for _, v := range c.Vertices {
		h.DeleteVertex(v)
	}
	g.Expect(h.CheckConsistency()).To(Succeed())
	g.Expect(h.EdgeCount()).To(Equal(before))
	g.Expect(h.Edge(0).Vertices()).To(Equal([]hypergraph.Vertex{0, 1}))
	g.Expect(h.Edge(4).Vertices()).To(Equal([]hypergraph.Vertex{6, 7}))
}

func TestConstructPairsLargerNeighborhoodGreedily(t *testing.T) {
	g := NewGomegaWithT(t)
	h := newInstance(g, 8, 3, 2,
		[]int{0, 1}, []int{2, 3}, []int{0, 1, 4}, []int{0, 1, 5}, []int{5, 6, 7},
	)

	c, err := Construct(h, membership(0, 1))

	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(c.Vertices).To(Equal([]hypergraph.Vertex{4}))
	g.Expect(c.Edges).To(Equal([]hypergraph.EdgeID{0}))
	g.Expect(c.Pairs).To(Equal([]Pair{{Edge: 0, Vertex: 4}}))
	g.Expect(c.Saturated()).To(BeTrue())
}

func TestConstructWithoutCrown(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		edges [][]int
		w     []hypergraph.EdgeID
	}{
		{
			name:  "should not search when I is not larger than H",
			n:     5,
			edges: [][]int{{0, 1}, {2, 3}, {0, 1, 4}},
			w:     []hypergraph.EdgeID{0, 1},
		},
		{
			name:  "should return no crown without adjacency",
			n:     7,
			edges: [][]int{{0, 1}, {2, 3}, {4, 5, 6}},
			w:     []hypergraph.EdgeID{0, 1},
		},
		{
			name:  "should return no crown without candidate edges",
			n:     6,
			edges: [][]int{{0, 1, 2}, {3, 4, 5}},
			w:     []hypergraph.EdgeID{0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			h := newInstance(g, tt.n, 3, 2, tt.edges...)

			c, err := Construct(h, membership(tt.w...))

			g.Expect(err).ToNot(HaveOccurred())
			g.Expect(c).To(BeNil())
			g.Expect(c.Empty()).To(BeTrue())
			g.Expect(c.Saturated()).To(BeFalse())
		})
	}
}
