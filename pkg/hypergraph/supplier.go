package hypergraph

import "fmt"

// Supplier yields the vertex subset of the i-th edge while an instance is constructed.
// It may be backed by a random generator, a file or a test fixture.
type Supplier interface {
	Edge(i int) ([]Vertex, error)
}

// SupplierFunc adapts a plain function to a Supplier.
type SupplierFunc func(i int) ([]Vertex, error)

func (f SupplierFunc) Edge(i int) ([]Vertex, error) {
	return f(i)
}

// FromEdges supplies the given edges in order.
func FromEdges(edges [][]Vertex) Supplier {
	return SupplierFunc(func(i int) ([]Vertex, error) {
		if i < 0 || i >= len(edges) {
			return nil, fmt.Errorf("edge %d requested but only %d edges are available", i, len(edges))
		}
		return edges[i], nil
	})
}

// FromInts is FromEdges for plain integer fixtures.
func FromInts(edges [][]int) Supplier {
	converted := make([][]Vertex, 0, len(edges))
	for _, e := range edges {
		vs := make([]Vertex, 0, len(e))
		for _, v := range e {
			vs = append(vs, Vertex(v))
		}
		converted = append(converted, vs)
	}
	return FromEdges(converted)
}
