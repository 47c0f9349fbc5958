package hypergraph

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega"
)

func newTestInstance(g *WithT, n, d, k int, edges ...[]int) *Instance {
	h, err := New(n, len(edges), d, k, FromInts(edges))
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(h.CheckConsistency()).To(Succeed())
	return h
}

func TestNewRejectsInvalidInstances(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		d     int
		k     int
		edges [][]int
	}{
		{name: "should reject negative k", n: 2, d: 2, k: -1, edges: [][]int{{0, 1}}},
		{name: "should reject negative d", n: 2, d: -1, k: 1, edges: [][]int{}},
		{name: "should reject negative vertex count", n: -1, d: 2, k: 1, edges: [][]int{}},
		{name: "should reject out of range vertices", n: 2, d: 2, k: 1, edges: [][]int{{0, 2}}},
		{name: "should reject negative vertices", n: 2, d: 2, k: 1, edges: [][]int{{-1}}},
		{name: "should reject edges larger than d", n: 3, d: 2, k: 1, edges: [][]int{{0, 1, 2}}},
		{name: "should reject duplicate vertices", n: 3, d: 3, k: 1, edges: [][]int{{0, 0, 1}}},
		{name: "should reject empty edges", n: 3, d: 3, k: 1, edges: [][]int{{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			_, err := New(tt.n, len(tt.edges), tt.d, tt.k, FromInts(tt.edges))
			g.Expect(errors.Is(err, ErrInvalidInstance)).To(BeTrue())
		})
	}
}

func TestNewRejectsMissingEdges(t *testing.T) {
	g := NewGomegaWithT(t)
	_, err := New(3, 2, 3, 1, FromInts([][]int{{0, 1}}))
	g.Expect(err).To(MatchError(ErrInvalidInstance))

	_, err = New(3, 1, 3, 1, nil)
	g.Expect(err).To(MatchError(ErrInvalidInstance))
}

func TestIncidenceQueries(t *testing.T) {
	g := NewGomegaWithT(t)
	h := newTestInstance(g, 5, 3, 2, []int{0, 1, 2}, []int{1, 2, 3}, []int{3, 4})

	g.Expect(h.EdgeCount()).To(Equal(3))
	g.Expect(h.EdgesContaining(1)).To(Equal([]EdgeID{0, 1}))
	g.Expect(h.EdgesContaining(4)).To(Equal([]EdgeID{2}))
	g.Expect(h.VerticesOf(0, 2)).To(Equal([]Vertex{0, 1, 2, 3, 4}))
	g.Expect(h.VertexDegree(3)).To(Equal(2))
	g.Expect(h.EdgeDegree(2)).To(Equal(2))
	g.Expect(h.ActiveVertices()).To(Equal([]Vertex{0, 1, 2, 3, 4}))
}

func TestDeleteVertexKeepsEdges(t *testing.T) {
	g := NewGomegaWithT(t)
	h := newTestInstance(g, 4, 3, 2, []int{0, 1, 2}, []int{1, 2, 3})

	h.DeleteVertex(1)

	g.Expect(h.CheckConsistency()).To(Succeed())
	g.Expect(h.EdgeCount()).To(Equal(2))
	g.Expect(h.IsActive(1)).To(BeFalse())
	g.Expect(h.EdgeDegree(0)).To(Equal(2))
	g.Expect(h.Edge(1).Vertices()).To(Equal([]Vertex{2, 3}))
	g.Expect(h.VertexCount()).To(Equal(4))
}

func TestDeleteEdgeKeepsIdentifiersStable(t *testing.T) {
	g := NewGomegaWithT(t)
	h := newTestInstance(g, 4, 2, 2, []int{0, 1}, []int{1, 2}, []int{2, 3})

	g.Expect(h.DeleteEdge(1)).To(BeTrue())
	g.Expect(h.DeleteEdge(1)).To(BeFalse())

	g.Expect(h.CheckConsistency()).To(Succeed())
	g.Expect(h.Edges()).To(Equal([]EdgeID{0, 2}))
	g.Expect(h.Edge(2).Vertices()).To(Equal([]Vertex{2, 3}))
	g.Expect(h.VertexDegree(1)).To(Equal(1))
	g.Expect(h.VertexDegree(2)).To(Equal(1))

	id, err := h.AddEdge(1, 3)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(id).To(Equal(EdgeID(3)))
	g.Expect(h.Edges()).To(Equal([]EdgeID{0, 2, 3}))
	g.Expect(h.CheckConsistency()).To(Succeed())
}

func TestAddEdgeValidatesVertices(t *testing.T) {
	g := NewGomegaWithT(t)
	h := newTestInstance(g, 2, 2, 1, []int{0, 1})

	_, err := h.AddEdge(0, 5)
	g.Expect(err).To(MatchError(ErrInvalidInstance))
	g.Expect(h.EdgeCount()).To(Equal(1))
}

func TestCommitConsumesBudget(t *testing.T) {
	g := NewGomegaWithT(t)
	h := newTestInstance(g, 3, 2, 2, []int{0, 1})

	h.Commit(2)
	h.Commit(0)

	g.Expect(h.K()).To(Equal(0))
	g.Expect(h.PartialSolution()).To(Equal([]Vertex{2, 0}))
}

func TestCovers(t *testing.T) {
	g := NewGomegaWithT(t)
	h := newTestInstance(g, 4, 2, 2, []int{0, 1}, []int{2, 3})

	g.Expect(h.Covers([]Vertex{1, 2})).To(BeTrue())
	g.Expect(h.Covers([]Vertex{0, 1})).To(BeFalse())
	g.Expect(h.Covers(nil)).To(BeFalse())
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGomegaWithT(t)
	h := newTestInstance(g, 4, 3, 2, []int{0, 1, 2}, []int{1, 2, 3})
	c := h.Clone()

	c.DeleteVertex(1)
	c.DeleteEdge(0)
	c.Commit(3)
	_, err := c.AddEdge(0, 3)
	g.Expect(err).ToNot(HaveOccurred())

	g.Expect(h.CheckConsistency()).To(Succeed())
	g.Expect(c.CheckConsistency()).To(Succeed())
	g.Expect(h.Edges()).To(Equal([]EdgeID{0, 1}))
	g.Expect(h.Edge(1).Vertices()).To(Equal([]Vertex{1, 2, 3}))
	g.Expect(h.K()).To(Equal(2))
	g.Expect(h.PartialSolution()).To(BeEmpty())
	g.Expect(c.Edges()).To(Equal([]EdgeID{1, 2}))
	g.Expect(c.Edge(1).Vertices()).To(Equal([]Vertex{2, 3}))
}

func TestCheckConsistencyDetectsCorruption(t *testing.T) {
	g := NewGomegaWithT(t)
	h := newTestInstance(g, 3, 2, 1, []int{0, 1})

	h.vertexDegree[2] = 1
	g.Expect(h.CheckConsistency()).To(MatchError(ErrInconsistent))
}

func TestVertexSet(t *testing.T) {
	g := NewGomegaWithT(t)
	a := NewVertexSet(130, 0, 64, 129)
	b := NewVertexSet(130, 0, 64, 100, 129)

	g.Expect(a.Len()).To(Equal(3))
	g.Expect(a.SubsetOf(b)).To(BeTrue())
	g.Expect(b.SubsetOf(a)).To(BeFalse())
	g.Expect(a.IntersectionLen(b)).To(Equal(3))
	g.Expect(b.Difference(a)).To(Equal([]Vertex{100}))
	g.Expect(a.Equal(a.Clone())).To(BeTrue())
	g.Expect(a.Has(130)).To(BeFalse())
	g.Expect(a.String()).To(Equal("{0,64,129}"))
}

func TestVertexSetIgnoresOutOfRange(t *testing.T) {
	g := NewGomegaWithT(t)
	s := NewVertexSet(3, 1, 5, -1, 3)

	g.Expect(s.Len()).To(Equal(1))
	g.Expect(s.Vertices()).To(Equal([]Vertex{1}))
	g.Expect(NewVertexSet(-2, 0).Len()).To(Equal(0))
}

func TestMembership(t *testing.T) {
	g := NewGomegaWithT(t)
	m := Membership{}
	m.Add(4)
	m.Add(1)
	m.Add(7)
	m.Remove(4)

	g.Expect(m.Contains(1)).To(BeTrue())
	g.Expect(m.Contains(4)).To(BeFalse())
	g.Expect(m.Len()).To(Equal(2))
	g.Expect(m.IDs()).To(Equal([]EdgeID{1, 7}))
}

func TestToAPIListsActiveEdges(t *testing.T) {
	g := NewGomegaWithT(t)
	h := newTestInstance(g, 4, 3, 2, []int{0, 1, 2}, []int{1, 3}, []int{2, 3})
	h.DeleteEdge(1)
	h.DeleteVertex(0)

	out := h.ToAPI("small")

	g.Expect(out.Name).To(Equal("small"))
	g.Expect(out.Vertices).To(Equal(4))
	g.Expect(out.D).To(Equal(3))
	g.Expect(out.K).To(Equal(2))
	g.Expect(out.Edges).To(Equal([][]int{{1, 2}, {2, 3}}))

	back, err := FromAPI(out)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(back.Edges()).To(Equal([]EdgeID{0, 1}))
	g.Expect(back.Edge(1).Vertices()).To(Equal([]Vertex{2, 3}))
}
