package instance

import (
	"fmt"
	"math/rand"

	"github.com/rmohr/dhskernel/pkg/hypergraph"
	"golang.org/x/exp/slices"
)

// Random creates an instance whose edges are independently and uniformly sampled d-subsets of the
// vertices. The same seed always yields the same instance.
func Random(vertices, edges, d, k int, seed int64) (*hypergraph.Instance, error) {
	if d > vertices {
		return nil, fmt.Errorf("%w: can't sample edges of size %d from %d vertices", hypergraph.ErrInvalidInstance, d, vertices)
	}
	rng := rand.New(rand.NewSource(seed))
	return hypergraph.New(vertices, edges, d, k, hypergraph.SupplierFunc(func(i int) ([]hypergraph.Vertex, error) {
		edge := make([]hypergraph.Vertex, 0, d)
		for _, v := range rng.Perm(vertices)[:d] {
			edge = append(edge, hypergraph.Vertex(v))
		}
		slices.Sort(edge)
		return edge, nil
	}))
}
