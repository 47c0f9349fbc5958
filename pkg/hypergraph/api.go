package hypergraph

import (
	"github.com/rmohr/dhskernel/pkg/api"
)

// ToAPI returns the file representation of the active edges in ascending id order.
// Edge positions in the result do not correspond to EdgeIDs once edges were deleted.
func (h *Instance) ToAPI(name string) *api.Instance {
	out := &api.Instance{
		Name:     name,
		Vertices: h.vertices,
		D:        h.d,
		K:        h.k,
		Edges:    make([][]int, 0, len(h.ids)),
	}
	for _, id := range h.ids {
		out.Edges = append(out.Edges, Ints(h.edges[id].Vertices()))
	}
	return out
}

// FromAPI creates an instance from its file representation.
func FromAPI(in *api.Instance) (*Instance, error) {
	return New(in.Vertices, len(in.Edges), in.D, in.K, FromInts(in.Edges))
}

func Ints(vertices []Vertex) []int {
	out := make([]int, len(vertices))
	for i, v := range vertices {
		out[i] = int(v)
	}
	return out
}

func EdgeInts(ids []EdgeID) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}
	return out
}

func Vertices(ints []int) []Vertex {
	out := make([]Vertex, len(ints))
	for i, v := range ints {
		out[i] = Vertex(v)
	}
	return out
}
