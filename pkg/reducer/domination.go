package reducer

import (
	"github.com/rmohr/dhskernel/pkg/hypergraph"
	"github.com/sirupsen/logrus"
)

// VertexDomination performs one scan from the highest vertex to the lowest and deletes every
// active vertex x for which another active vertex y exists with E(x) ⊆ E(y).
func VertexDomination(h *hypergraph.Instance) bool {
	changed := false
	for v := hypergraph.Vertex(h.VertexCount() - 1); v >= 0; v-- {
		if !h.IsActive(v) {
			continue
		}
		if dominated(h, v) {
			logrus.Debugf("vertex %d is dominated, deleting it", v)
			h.DeleteVertex(v)
			changed = true
		}
	}
	return changed
}

// VertexDominationFixpoint repeats VertexDomination until a scan deletes nothing.
func VertexDominationFixpoint(h *hypergraph.Instance) bool {
	changed := false
	for VertexDomination(h) {
		changed = true
	}
	return changed
}

// dominated reports whether some other vertex is contained in every edge containing x.
func dominated(h *hypergraph.Instance, x hypergraph.Vertex) bool {
	edges := h.EdgesContaining(x)
	if len(edges) == 0 {
		return false
	}
	common := h.Edge(edges[0])
	for _, id := range edges[1:] {
		common = common.Intersect(h.Edge(id))
	}
	// x itself is always part of the intersection
	return common.Len() > 1
}

// EdgeDomination performs one scan from the highest edge to the lowest and deletes every edge
// which duplicates another active edge or strictly contains an active edge of a different size.
func EdgeDomination(h *hypergraph.Instance) bool {
	changed := false
	ids := h.Edges()
	for i := len(ids) - 1; i >= 0; i-- {
		if !h.HasEdge(ids[i]) {
			continue
		}
		if edgeDominated(h, ids[i]) {
			logrus.Debugf("edge %d %s is dominated, deleting it", ids[i], h.Edge(ids[i]))
			h.DeleteEdge(ids[i])
			changed = true
		}
	}
	return changed
}

func edgeDominated(h *hypergraph.Instance, e hypergraph.EdgeID) bool {
	edge := h.Edge(e)
	others := h.Edges()
	for i := len(others) - 1; i >= 0; i-- {
		if others[i] == e {
			continue
		}
		other := h.Edge(others[i])
		if other.Equal(edge) {
			return true
		}
		if other.Len() != edge.Len() && other.SubsetOf(edge) {
			return true
		}
	}
	return false
}

// Dominate alternates edge and vertex domination until neither deletes anything.
func Dominate(h *hypergraph.Instance) bool {
	changed := false
	for {
		edges := EdgeDomination(h)
		vertices := VertexDominationFixpoint(h)
		if !edges && !vertices {
			return changed
		}
		changed = true
	}
}
