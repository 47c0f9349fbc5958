package reducer

import (
	. "github.com/onsi/gomega"
	"github.com/rmohr/dhskernel/pkg/hypergraph"
)

func newInstance(g *WithT, n, d, k int, edges ...[]int) *hypergraph.Instance {
	h, err := hypergraph.New(n, len(edges), d, k, hypergraph.FromInts(edges))
	g.Expect(err).ToNot(HaveOccurred())
	return h
}

func edgeSets(h *hypergraph.Instance) [][]hypergraph.Vertex {
	out := [][]hypergraph.Vertex{}
	for _, id := range h.Edges() {
		out = append(out, h.Edge(id).Vertices())
	}
	return out
}

func vertices(vs ...int) []hypergraph.Vertex {
	return hypergraph.Vertices(vs)
}

func checked() *Kernelizer {
	return NewKernelizer(Options{CheckInvariants: true})
}
