package reducer

import (
	"github.com/rmohr/dhskernel/pkg/hypergraph"
)

// WeaklyRelated reports whether two edges intersect in at most d-2 vertices while neither
// is a subset of the other.
func WeaklyRelated(d int, a, b hypergraph.VertexSet) bool {
	return a.IntersectionLen(b) <= d-2 && !a.SubsetOf(b) && !b.SubsetOf(a)
}

// MaximalWeaklyRelated builds the maximal set W. It starts with every edge of size at most d-2,
// then visits the remaining edges in ascending order and adds an edge if it is weakly related
// to every current member.
func MaximalWeaklyRelated(h *hypergraph.Instance) hypergraph.Membership {
	d := h.D()
	w := hypergraph.Membership{}
	var members []hypergraph.VertexSet

	ids := h.Edges()
	for _, id := range ids {
		if h.EdgeDegree(id) <= d-2 {
			w.Add(id)
			members = append(members, h.Edge(id))
		}
	}
	for _, id := range ids {
		if w.Contains(id) {
			continue
		}
		edge := h.Edge(id)
		related := true
		for _, member := range members {
			if !WeaklyRelated(d, edge, member) {
				related = false
				break
			}
		}
		if related {
			w.Add(id)
			members = append(members, edge)
		}
	}
	return w
}
