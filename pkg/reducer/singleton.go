package reducer

import (
	"github.com/rmohr/dhskernel/pkg/hypergraph"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// Singleton scans the edges from the highest to the lowest and commits the sole vertex of every
// size-1 edge to the partial solution, consuming one unit of budget per distinct vertex. The
// singleton edge is deleted, other edges containing the vertex are left untouched. The scan stops
// as soon as the budget drops below zero. The committed vertices are returned in commit order.
func Singleton(h *hypergraph.Instance) []hypergraph.Vertex {
	var forced []hypergraph.Vertex
	ids := h.Edges()
	for i := len(ids) - 1; i >= 0; i-- {
		id := ids[i]
		if !h.HasEdge(id) || h.EdgeDegree(id) != 1 {
			continue
		}
		v := h.Edge(id).Vertices()[0]
		if !slices.Contains(forced, v) {
			logrus.Debugf("edge %d is a singleton, forcing vertex %d", id, v)
			forced = append(forced, v)
			h.Commit(v)
		}
		h.DeleteEdge(id)
		if h.K() < 0 {
			break
		}
	}
	return forced
}
