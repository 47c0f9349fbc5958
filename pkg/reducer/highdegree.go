package reducer

import (
	"fmt"

	"github.com/rmohr/dhskernel/pkg/hypergraph"
	"github.com/sirupsen/logrus"
)

// HighDegree tries every (d-2)-subset e0 of the active vertices once, in lexicographic order.
// If more than k edges pairwise intersect in exactly e0, all of them are replaced by e0.
// It reports whether any subset fired.
func HighDegree(h *hypergraph.Instance) (bool, error) {
	size := h.D() - 2
	if size < 0 || h.EdgeCount() == 0 {
		return false, nil
	}
	changed := false
	err := forEachSubset(h.ActiveVertices(), size, func(subset []hypergraph.Vertex) error {
		fired, err := forceSubedge(h, subset)
		if err != nil {
			return err
		}
		changed = changed || fired
		return nil
	})
	return changed, err
}

func forceSubedge(h *hypergraph.Instance, subset []hypergraph.Vertex) (bool, error) {
	e0 := h.NewSet(subset...)
	size := len(subset)

	var group []hypergraph.EdgeID
	var groupSets []hypergraph.VertexSet
	for _, id := range h.Edges() {
		edge := h.Edge(id)
		if edge.IntersectionLen(e0) != size {
			continue
		}
		accepted := true
		for _, member := range groupSets {
			if member.IntersectionLen(edge) != size {
				accepted = false
				break
			}
		}
		if accepted {
			group = append(group, id)
			groupSets = append(groupSets, edge)
		}
	}
	if len(group) <= h.K() {
		return false, nil
	}

	logrus.Debugf("subedge %s is the pairwise intersection of %d edges %v, replacing them", e0, len(group), group)
	for _, id := range group {
		h.DeleteEdge(id)
	}
	if _, err := h.AddEdge(subset...); err != nil {
		return false, fmt.Errorf("failed to add subedge %s: %v", e0, err)
	}
	return true, nil
}
