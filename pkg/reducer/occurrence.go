package reducer

import (
	"fmt"

	"github.com/rmohr/dhskernel/pkg/hypergraph"
	"github.com/sirupsen/logrus"
)

// HighOccurrence bounds the size of W. For i from d-2 down to 1 it visits every i-subset e of the
// active vertices in lexicographic order. If more than k^(d-1-i) members of W contain e, they are
// deleted from W and from the instance and e is added to both instead. It returns the number of
// subsets which fired.
func HighOccurrence(h *hypergraph.Instance, w hypergraph.Membership) (int, error) {
	d := h.D()
	k := h.K()
	// vertices only ever lose activity here, so the initial set covers every level
	candidates := h.ActiveVertices()
	fired := 0
	for i := d - 2; i >= 1; i-- {
		bound := boundPow(k, d-1-i)
		err := forEachSubset(candidates, i, func(subset []hypergraph.Vertex) error {
			e := h.NewSet(subset...)
			var we []hypergraph.EdgeID
			for _, id := range w.IDs() {
				if e.SubsetOf(h.Edge(id)) {
					we = append(we, id)
				}
			}
			if len(we) <= bound {
				return nil
			}
			logrus.Debugf("subedge %s occurs in %d members of W (bound %d), replacing them", e, len(we), bound)
			for _, id := range we {
				w.Remove(id)
				h.DeleteEdge(id)
			}
			id, err := h.AddEdge(subset...)
			if err != nil {
				return fmt.Errorf("failed to add subedge %s: %v", e, err)
			}
			w.Add(id)
			fired++
			return nil
		})
		if err != nil {
			return fired, err
		}
	}
	return fired, nil
}
